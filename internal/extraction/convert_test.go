package extraction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pitwall/pkg/contracts/domain"
)

func TestConvert(t *testing.T) {
	raw := &domain.RawTimetable{
		EventName: "FORMULA 1 SINGAPORE GRAND PRIX",
		Location:  "Marina Bay",
		Year:      "2024",
		Version:   "2",
		Days: []domain.DayRecord{
			{
				DayName: "Saturday",
				Date:    "2024-09-21",
				Events: []domain.EventRecord{
					{StartTime: "10:00", EndTime: "10:30", Category: "FORMULA 1", Location: "TRACK", Description: "FREE PRACTICE 1"},
					{Description: "TRACK CLOSED"},
				},
			},
			{
				DayName: "Sunday",
				Date:    "2024-09-22",
				Events: []domain.EventRecord{
					{StartTime: "14:00", Category: "FORMULA 1", Description: "GRAND PRIX"},
				},
			},
		},
	}

	doc := Convert(raw, nil)

	assert.Equal(t, "FORMULA 1 SINGAPORE GRAND PRIX", doc.EventName)
	assert.Equal(t, "Marina Bay", doc.Location)
	assert.Equal(t, "2024", doc.Year)
	assert.Equal(t, "2", doc.Version)
	require.Len(t, doc.Days, 2)

	saturday := doc.Days["2024-09-21"]
	assert.Equal(t, "Saturday", saturday.DayName)
	require.Len(t, saturday.Sessions, 2)
	assert.Equal(t, domain.SessionSpec{
		StartTime: "10:00",
		EndTime:   "10:30",
		Category:  "FORMULA 1",
		Activity:  "FREE PRACTICE 1",
		Location:  "TRACK",
	}, saturday.Sessions[0])
	assert.Equal(t, "TRACK CLOSED", saturday.Sessions[1].Activity)
	assert.NotNil(t, saturday.OtherEvents)
	assert.Empty(t, saturday.OtherEvents)

	sunday := doc.Days["2024-09-22"]
	require.Len(t, sunday.Sessions, 1)
	assert.Equal(t, "GRAND PRIX", sunday.Sessions[0].Activity)
}

func TestConvertSkipsEmptyDates(t *testing.T) {
	raw := &domain.RawTimetable{
		Days: []domain.DayRecord{
			{DayName: "Friday", Date: ""},
			{DayName: "Saturday", Date: "2024-09-21"},
		},
	}

	doc := Convert(raw, nil)
	assert.Len(t, doc.Days, 1)
	assert.Contains(t, doc.Days, "2024-09-21")
}

func TestConvertDuplicateDateKeepsLaterPage(t *testing.T) {
	raw := &domain.RawTimetable{
		Days: []domain.DayRecord{
			{
				DayName: "Saturday",
				Date:    "2024-09-21",
				Events:  []domain.EventRecord{{StartTime: "09:00", Description: "EARLY"}},
			},
			{
				DayName: "Saturday",
				Date:    "2024-09-21",
				Events:  []domain.EventRecord{{StartTime: "10:00", Description: "LATE"}},
			},
		},
	}

	doc := Convert(raw, nil)
	require.Len(t, doc.Days, 1)
	require.Len(t, doc.Days["2024-09-21"].Sessions, 1)
	assert.Equal(t, "LATE", doc.Days["2024-09-21"].Sessions[0].Activity)
}

package exporter

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pitwall/pkg/contracts/domain"
)

// readCSV parses an exported file back into records, checking the BOM.
func readCSV(t *testing.T, path string) [][]string {
	t.Helper()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(string(data), "\xEF\xBB\xBF"), "export must start with a UTF-8 BOM")

	records, err := csv.NewReader(strings.NewReader(string(data[3:]))).ReadAll()
	require.NoError(t, err)
	return records
}

func TestWriteScheduleCSV(t *testing.T) {
	doc := domain.Schedule{
		EventName: "FORMULA 1 SINGAPORE GRAND PRIX",
		Location:  "Marina Bay",
		Days: map[string]domain.DaySchedule{
			"2024-09-22": {
				DayName: "Sunday",
				Sessions: []domain.SessionSpec{
					{StartTime: "20:00", EndTime: "22:00", Category: "FORMULA 1", Activity: "GRAND PRIX", Location: "TRACK"},
				},
			},
			"2024-09-21": {
				DayName: "Saturday",
				Sessions: []domain.SessionSpec{
					{StartTime: "21:00", Category: "FORMULA 1", Activity: "QUALIFYING"},
				},
				OtherEvents: []domain.SessionSpec{
					{StartTime: "18:00", Activity: "PIT LANE WALK"},
				},
			},
		},
	}

	path := filepath.Join(t.TempDir(), "schedule.csv")
	require.NoError(t, WriteScheduleCSV(path, doc))

	records := readCSV(t, path)
	require.Len(t, records, 4)
	assert.Equal(t, []string{"Date", "Day", "Start", "End", "Category", "Activity", "Location"}, records[0])
	// Days in date order, sessions before other events within a day.
	assert.Equal(t, []string{"2024-09-21", "Saturday", "21:00", "", "FORMULA 1", "QUALIFYING", ""}, records[1])
	assert.Equal(t, []string{"2024-09-21", "Saturday", "18:00", "", "", "PIT LANE WALK", ""}, records[2])
	assert.Equal(t, []string{"2024-09-22", "Sunday", "20:00", "22:00", "FORMULA 1", "GRAND PRIX", "TRACK"}, records[3])
}

func TestWriteSessionsCSV(t *testing.T) {
	sessions := []domain.Session{
		{
			Race:          "Singapore Grand Prix",
			Location:      "Marina Bay",
			Day:           "Saturday",
			Date:          "2024-09-21",
			Time:          "20:00",
			Category:      "FORMULA 1",
			Activity:      "QUALIFYING",
			DateTime:      "2024-09-21T12:00:00Z",
			LocalDateTime: "2024-09-21T20:00:00+08:00",
			Timezone:      "Asia/Singapore",
			Timestamp:     1726920000,
		},
	}

	path := filepath.Join(t.TempDir(), "sessions.csv")
	require.NoError(t, WriteSessionsCSV(path, sessions))

	records := readCSV(t, path)
	require.Len(t, records, 2)
	assert.Equal(t, "Singapore Grand Prix", records[1][0])
	assert.Equal(t, "Asia/Singapore", records[1][9])
	assert.Equal(t, "1726920000.000", records[1][10])
}

func TestWriteCSVCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "out", "empty.csv")
	require.NoError(t, WriteSessionsCSV(path, nil))

	records := readCSV(t, path)
	require.Len(t, records, 1)
}

package extraction

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractDayInfo(t *testing.T) {
	tests := []struct {
		name     string
		pageText string
		expected DayInfo
		found    bool
	}{
		{
			name:     "standard day line",
			pageText: "FORMULA 1 GRAND PRIX\nSATURDAY 12 OCTOBER 2024\nTimetable",
			expected: DayInfo{DayName: "Saturday", Date: "2024-10-12"},
			found:    true,
		},
		{
			name:     "single digit day is zero padded",
			pageText: "FRIDAY 6 SEPTEMBER 2024",
			expected: DayInfo{DayName: "Friday", Date: "2024-09-06"},
			found:    true,
		},
		{
			name:     "glued day line without spaces",
			pageText: "SUNDAY22SEPTEMBER2024",
			expected: DayInfo{DayName: "Sunday", Date: "2024-09-22"},
			found:    true,
		},
		{
			name:     "first day line wins",
			pageText: "THURSDAY 19 SEPTEMBER 2024\nFRIDAY 20 SEPTEMBER 2024",
			expected: DayInfo{DayName: "Thursday", Date: "2024-09-19"},
			found:    true,
		},
		{
			name:     "no day line",
			pageText: "just a page of notes\nwith no dates",
			found:    false,
		},
		{
			name:     "day line beyond the header region is ignored",
			pageText: strings.Repeat("filler line\n", 15) + "SATURDAY 12 OCTOBER 2024",
			found:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info, ok := ExtractDayInfo(tt.pageText)
			assert.Equal(t, tt.found, ok)
			if tt.found {
				assert.Equal(t, tt.expected, info)
			}
		})
	}
}

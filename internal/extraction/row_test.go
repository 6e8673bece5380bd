package extraction

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"pitwall/pkg/contracts/domain"
)

func TestParseRow(t *testing.T) {
	tests := []struct {
		name     string
		cells    []string
		expected domain.EventRecord
		kept     bool
	}{
		{
			name:  "full session row",
			cells: []string{"10:00", "10:30", "FORMULA1", "TRACK", "FreePractice1"},
			expected: domain.EventRecord{
				StartTime:   "10:00",
				EndTime:     "10:30",
				Category:    "FORMULA 1",
				Location:    "TRACK",
				Description: "FREE PRACTICE 1",
			},
			kept: true,
		},
		{
			name:  "times merged into one cell",
			cells: []string{"10:00 - 11:00", "", "F1ACADEMY", "", "Practice"},
			expected: domain.EventRecord{
				StartTime:   "10:00",
				EndTime:     "11:00",
				Category:    "F1 ACADEMY",
				Description: "PRACTICE",
			},
			kept: true,
		},
		{
			name:  "duplicate time token is not an end time",
			cells: []string{"10:00", "10:00", "", "", "TRACK CLOSED"},
			expected: domain.EventRecord{
				StartTime: "10:00",
				Location:  "TRACK CLOSED",
			},
			kept: true,
		},
		{
			name:  "time outside the scan window is description text",
			cells: []string{"", "", "", "CURFEW UNTIL 06:00"},
			expected: domain.EventRecord{
				Description: "CURFEW UNTIL 06:00",
			},
			kept: true,
		},
		{
			name:  "category keyword outside cell index two joins description",
			cells: []string{"09:00", "09:30", "Briefing", "FORMULA1 drivers"},
			expected: domain.EventRecord{
				StartTime:   "09:00",
				EndTime:     "09:30",
				Description: "BRIEFING - FORMULA 1 DRIVERS",
			},
			kept: true,
		},
		{
			name:  "first location match wins",
			cells: []string{"12:00", "", "PORSCHE", "PITLANE", "TRACK"},
			expected: domain.EventRecord{
				StartTime: "12:00",
				Category:  "PORSCHE",
				Location:  "PIT LANE",
			},
			kept: true,
		},
		{
			name:  "all cells empty",
			cells: []string{"", "  ", ""},
			kept:  false,
		},
		{
			name:  "no time and no description",
			cells: []string{"", "", "FORMULA1"},
			kept:  false,
		},
		{
			name:  "description only row is kept",
			cells: []string{"", "", "", "NationalAnthem"},
			expected: domain.EventRecord{
				Description: "NATIONAL ANTHEM",
			},
			kept: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			event, ok := ParseRow(tt.cells)
			assert.Equal(t, tt.kept, ok)
			if tt.kept {
				assert.Equal(t, tt.expected, event)
			}
		})
	}
}

package extraction

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
		{
			name:     "uppercases plain text",
			input:    "track closed",
			expected: "TRACK CLOSED",
		},
		{
			name:     "splits FORMULA1",
			input:    "FORMULA1",
			expected: "FORMULA 1",
		},
		{
			name:     "splits glued session name",
			input:    "FreePractice1",
			expected: "FREE PRACTICE 1",
		},
		{
			name:     "splits glued compound chain",
			input:    "PITLANEWALK",
			expected: "PIT LANE WALK",
		},
		{
			name:     "specific rule wins over generic substring",
			input:    "FREEPRACTICE2",
			expected: "FREE PRACTICE 2",
		},
		{
			name:     "spaces punctuation",
			input:    "DRIVERS,OFFICIALS/MEDIA",
			expected: "DRIVERS , OFFICIALS / MEDIA",
		},
		{
			name:     "spaces letter before parenthesis",
			input:    "SESSION(EXTENDED)",
			expected: "SESSION (EXTENDED)",
		},
		{
			name:     "spaces after apostrophe",
			input:    "DRIVERS'PARADE",
			expected: "DRIVERS' PARADE",
		},
		{
			name:     "repairs residual glued suffix",
			input:    "OPENFORFIA/F1ONLY",
			expected: "OPENFOR FIA / F1 ONLY",
		},
		{
			name:     "collapses whitespace and trims",
			input:    "  TRACK   INSPECTION  ",
			expected: "TRACK INSPECTION",
		},
		{
			name:     "paddock club compound",
			input:    "F1EXPERIENCES PADDOCKCLUB GRIDWALK",
			expected: "F1 EXPERIENCES PADDOCK CLUB GRID WALK",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Normalize(tt.input))
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"FORMULA1",
		"FreePractice1",
		"PITLANEWALK",
		"DRIVERS,OFFICIALS/MEDIA",
		"F1EXPERIENCES PADDOCKCLUB",
		"SAFETYCARTEST",
		"TRACKCOMPLETELYCLEAR",
	}

	for _, input := range inputs {
		once := Normalize(input)
		assert.Equal(t, once, Normalize(once), "Normalize must be idempotent for %q", input)
	}
}

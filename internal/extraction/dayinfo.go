package extraction

import (
	"regexp"
	"strings"
)

// DayInfo identifies the calendar day a timetable page covers.
type DayInfo struct {
	DayName string // title-cased weekday, e.g. "Saturday"
	Date    string // ISO yyyy-mm-dd
}

// headerScanLines bounds the day-line search to the page's header region.
const headerScanLines = 15

var dayLineRe = regexp.MustCompile(
	`(MONDAY|TUESDAY|WEDNESDAY|THURSDAY|FRIDAY|SATURDAY|SUNDAY)\s*(\d{1,2})\s*` +
		`(JANUARY|FEBRUARY|MARCH|APRIL|MAY|JUNE|JULY|AUGUST|SEPTEMBER|OCTOBER|NOVEMBER|DECEMBER)\s*(20\d{2})`)

var monthNumbers = map[string]string{
	"JANUARY": "01", "FEBRUARY": "02", "MARCH": "03",
	"APRIL": "04", "MAY": "05", "JUNE": "06",
	"JULY": "07", "AUGUST": "08", "SEPTEMBER": "09",
	"OCTOBER": "10", "NOVEMBER": "11", "DECEMBER": "12",
}

// ExtractDayInfo scans the first 15 lines of a page for a
// "WEEKDAY DAY MONTHNAME YEAR" line and composes the ISO date from it.
// It reports false when no such line exists, which makes the caller skip
// the page.
func ExtractDayInfo(pageText string) (DayInfo, bool) {
	lines := strings.Split(pageText, "\n")
	if len(lines) > headerScanLines {
		lines = lines[:headerScanLines]
	}

	for _, line := range lines {
		m := dayLineRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}

		day := m[2]
		if len(day) == 1 {
			day = "0" + day
		}
		month, ok := monthNumbers[m[3]]
		if !ok {
			month = "00"
		}

		return DayInfo{
			DayName: m[1][:1] + strings.ToLower(m[1][1:]),
			Date:    m[4] + "-" + month + "-" + day,
		}, true
	}

	return DayInfo{}, false
}

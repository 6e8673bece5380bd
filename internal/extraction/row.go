package extraction

import (
	"regexp"
	"strings"

	"pitwall/pkg/contracts/domain"
)

// keywordRule ties a keyword set to the field it classifies. Rules are data,
// not control flow: extending coverage means adding keywords, not branches.
// Matching is a contains-test against the upper-cased, space-stripped cell,
// so a keyword hits whether or not the extractor preserved spaces.
type keywordRule struct {
	keywords []string
}

var categoryRule = keywordRule{
	keywords: []string{
		"FORMULA1", "F1ACADEMY", "PORSCHE", "FIA", "PROMOTER", "PADDOCK",
		"F1EXPERIENCES", "STEMRACING",
	},
}

var locationRule = keywordRule{
	keywords: []string{
		"TRACK", "PITLANE", "PRESSCONFERENCEROOM", "ONLINEMEETING",
	},
}

func (r keywordRule) matches(cell string) bool {
	compact := strings.ReplaceAll(strings.ToUpper(cell), " ", "")
	for _, kw := range r.keywords {
		if strings.Contains(compact, kw) {
			return true
		}
	}
	return false
}

// timeTokenRe matches H:MM and HH:MM wall-clock tokens.
var timeTokenRe = regexp.MustCompile(`\d{1,2}:\d{2}`)

// timeScanCells bounds the start/end time search: the time column is
// occasionally merged with a label, so the first three cells are scanned and
// the first two distinct tokens win.
const timeScanCells = 3

// ParseRow classifies one raw table row into an EventRecord. It reports
// false for rows that carry neither a start time nor a description; such
// rows (stray borders, spacer rows) are noise and must be dropped.
func ParseRow(cells []string) (domain.EventRecord, bool) {
	row := make([]string, len(cells))
	allEmpty := true
	for i, cell := range cells {
		row[i] = strings.TrimSpace(cell)
		if row[i] != "" {
			allEmpty = false
		}
	}
	if allEmpty {
		return domain.EventRecord{}, false
	}

	var event domain.EventRecord

	limit := timeScanCells
	if len(row) < limit {
		limit = len(row)
	}
	for _, cell := range row[:limit] {
		for _, tok := range timeTokenRe.FindAllString(cell, -1) {
			switch {
			case event.StartTime == "":
				event.StartTime = tok
			case event.EndTime == "" && tok != event.StartTime:
				event.EndTime = tok
			}
		}
	}

	for i, cell := range row {
		// The first two cells are the time columns.
		if i < 2 || cell == "" {
			continue
		}

		// Cell index 2 is where the series/category label lives when present.
		if i == 2 && categoryRule.matches(cell) {
			event.Category = Normalize(cell)
			continue
		}

		if locationRule.matches(cell) {
			if event.Location == "" {
				event.Location = Normalize(cell)
			}
			continue
		}

		// Everything else accumulates into the description.
		if event.Description == "" {
			event.Description = Normalize(cell)
		} else {
			event.Description += " - " + Normalize(cell)
		}
	}

	if event.StartTime == "" && event.Description == "" {
		return domain.EventRecord{}, false
	}
	return event, true
}

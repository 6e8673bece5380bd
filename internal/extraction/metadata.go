package extraction

import (
	"regexp"
	"strings"
)

// Metadata carries the event-level fields recovered from a document's first
// page. Every field is optional; absence of one never blocks the others.
type Metadata struct {
	EventName string
	Location  string
	Version   string
	Year      string
}

var (
	eventNameRe = regexp.MustCompile(`(?i)FORMULA\s*1\s+([A-Z\s]+?)\s*GRAND\s*PRIX`)
	camelCaseRe = regexp.MustCompile(`([a-z])([A-Z])`)
	// Venue names are free text; the alternation lists the known venues of
	// the target document family plus the generic "Circuit ..." form.
	venueRe   = regexp.MustCompile(`(?i)(Marina\s*Bay|Monza|Baku|Circuit[^,\n]*)`)
	versionRe = regexp.MustCompile(`(?i)Version\s*(\d+)`)
	yearRe    = regexp.MustCompile(`20\d{2}`)
)

// ExtractMetadata pulls event name, venue, version and year out of a page's
// raw text. Each field is matched independently and left empty on no match;
// the function never fails.
func ExtractMetadata(pageText string) Metadata {
	var meta Metadata

	if m := eventNameRe.FindStringSubmatch(pageText); m != nil {
		// The captured middle segment often loses inter-word spaces; repair
		// camel-case boundaries in the capture only, not the anchors.
		middle := camelCaseRe.ReplaceAllString(strings.TrimSpace(m[1]), "$1 $2")
		meta.EventName = "FORMULA 1 " + middle + " GRAND PRIX"
	}

	if m := venueRe.FindString(pageText); m != "" {
		meta.Location = whitespaceRe.ReplaceAllString(strings.TrimSpace(m), " ")
	}

	if m := versionRe.FindStringSubmatch(pageText); m != nil {
		meta.Version = m[1]
	}

	if m := yearRe.FindString(pageText); m != "" {
		meta.Year = m
	}

	return meta
}

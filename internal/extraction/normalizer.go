package extraction

import (
	"regexp"
	"strings"
)

// compoundRule is a literal substring replacement repairing a compound token
// produced by lossy table extraction.
type compoundRule struct {
	from string
	to   string
}

// compoundRules is the ordered repair table applied to every text field.
// Order matters: a multi-word key must come before any of its substrings so
// a later generic rule cannot undo a more specific one. The vocabulary is
// the closed lexicon of official race-weekend timetables.
var compoundRules = []compoundRule{
	// Core series terms
	{"F1ACADEMY", "F1 ACADEMY"},
	{"F1EXPERIENCES", "F1 EXPERIENCES"},
	{"FORMULA1", "FORMULA 1"},
	{"F1STEWARDS", "F1 STEWARDS"},
	{"F1CAR", "F1 CAR"},
	{"F1DRIVERS", "F1 DRIVERS"},
	{"F1PASS", "F1 PASS"},
	{"F1SYSTEMS", "F1 SYSTEMS"},
	{"TOOF1", "TO F1"},
	{"OPENTOF1", "OPEN TO F1"},

	// Location compounds
	{"PITLANE", "PIT LANE"},
	{"PITLANEWALK", "PIT LANE WALK"},
	{"LANEWALK", "LANE WALK"},
	{"PITLANEOPEN", "PIT LANE OPEN"},
	{"LANEOPEN", "LANE OPEN"},
	{"PRESSCONFERENCEROOM", "PRESS CONFERENCE ROOM"},
	{"PRESSCONFERENCE", "PRESS CONFERENCE"},
	{"ONLINEMEETING", "ONLINE MEETING"},

	// Track state
	{"TRACKCLOSED", "TRACK CLOSED"},
	{"TRACKOPEN", "TRACK OPEN"},
	{"TRACKINSPECTION", "TRACK INSPECTION"},
	{"TRACKACCESS", "TRACK ACCESS"},
	{"TRACKTEST", "TRACK TEST"},
	{"TRACKCOMPLETELYCLEAR", "TRACK COMPLETELY CLEAR"},

	// Safety and medical
	{"SAFETYCAR", "SAFETY CAR"},
	{"SAFETYCARTEST", "SAFETY CAR TEST"},
	{"CARTEST", "CAR TEST"},
	{"MEDICALCAR", "MEDICAL CAR"},
	{"MEDICALCARS", "MEDICAL CARS"},
	{"MEDICALINSPECTION", "MEDICAL INSPECTION"},
	{"MEDICALINTERVENTION", "MEDICAL INTERVENTION"},
	{"INTERVENTIONEXERCISE", "INTERVENTION EXERCISE"},
	{"HIGHSPEEDTRACKTEST", "HIGH SPEED TRACK TEST"},
	{"HIGHSPEEDTRACK", "HIGH SPEED TRACK"},
	{"FIASAFETY", "FIA SAFETY"},

	// Curfew
	{"TEAMCURFEW", "TEAM CURFEW"},
	{"CURFEWENDS", "CURFEW ENDS"},
	{"CURFEWSTARTS", "CURFEW STARTS"},

	// Session types
	{"FREEPRACTICE1", "FREE PRACTICE 1"},
	{"FREEPRACTICE2", "FREE PRACTICE 2"},
	{"FREEPRACTICE3", "FREE PRACTICE 3"},
	{"FREEPRACTICE", "FREE PRACTICE"},
	{"PRACTICESESSION", "PRACTICE SESSION"},
	{"QUALIFYINGSESSION", "QUALIFYING SESSION"},
	{"FIRSTPRACTICE", "FIRST PRACTICE"},
	{"SECONDPRACTICE", "SECOND PRACTICE"},
	{"THIRDPRACTICE", "THIRD PRACTICE"},
	{"GRANDPRIX", "GRAND PRIX"},
	{"GRIDPROCEDURE", "GRID PROCEDURE"},

	// Race specifics
	{"FIRSTRACE", "FIRST RACE"},
	{"SECONDRACE", "SECOND RACE"},
	{"LAPSOR", "LAPS OR"},
	{"LAPS,MAX", "LAPS, MAX"},
	{"MAX30MINS", "MAX 30 MINS"},
	{"30MINS", "30 MINS"},
	{"120MINUTES", "120 MINUTES"},
	{"12LAPS", "12 LAPS"},
	{"14LAPS", "14 LAPS"},
	{"62LAPS", "62 LAPS"},

	// Facilities and events
	{"PASSHOLDERS", "PASS HOLDERS"},
	{"PADDOCKCLUB", "PADDOCK CLUB"},
	{"CLUBPIT", "CLUB PIT"},
	{"COMMUNITYPIT", "COMMUNITY PIT"},
	{"TEAMMANAGERS", "TEAM MANAGERS"},
	{"TEAMSPRESS", "TEAMS PRESS"},
	{"PROMOTERACTIVITY", "PROMOTER ACTIVITY"},
	{"STEMRACING", "STEM RACING"},
	{"PORSCHECARRERACUP", "PORSCHE CARRERA CUP"},
	{"NATIONALANTHEM", "NATIONAL ANTHEM"},
	{"SECURITYBRIEFING", "SECURITY BRIEFING"},

	// Presentation and ceremony
	{"CARPRESENTATION", "CAR PRESENTATION"},
	{"CARCOVERSEALS", "CAR COVER SEALS"},
	{"COVERSEALS", "COVER SEALS"},
	{"SEALSREMOVED", "SEALS REMOVED"},
	{"EXPERIENCESCHAMPIONSCLUB", "EXPERIENCES CHAMPIONS CLUB"},
	{"CHAMPIONSCLUBTROPHY", "CHAMPIONS CLUB TROPHY"},
	{"CLUBTROPHY", "CLUB TROPHY"},
	{"TROPHYPHOTO", "TROPHY PHOTO"},
	{"GRIDWALK", "GRID WALK"},
	{"SYSTEMSCHECKS", "SYSTEMS CHECKS"},
}

var (
	punctSpacingRe = regexp.MustCompile(`\s*([,/\-&])\s*`)
	parenSpacingRe = regexp.MustCompile(`([A-Z])\(`)
	apostropheRe   = regexp.MustCompile(`'([A-Z])`)
	whitespaceRe   = regexp.MustCompile(`\s+`)
)

// Normalize repairs compound words and spacing in text extracted from
// timetable cells. It is a total function (never fails) and idempotent over
// the rule table's domain: Normalize(Normalize(s)) == Normalize(s).
//
// The passes run in a fixed order: uppercase, the compound rule table,
// spacing around , / - &, a space between a letter and an opening
// parenthesis, two residual glued-suffix fixups, a space after an
// apostrophe, and finally whitespace collapse and trim.
func Normalize(text string) string {
	if text == "" {
		return text
	}

	s := strings.ToUpper(text)
	for _, rule := range compoundRules {
		s = strings.ReplaceAll(s, rule.from, rule.to)
	}

	s = punctSpacingRe.ReplaceAllString(s, " $1 ")
	s = parenSpacingRe.ReplaceAllString(s, "$1 (")

	// Residual glued suffixes like "FORFIA/F1ONLY"
	s = strings.ReplaceAll(s, "FORFIA", "FOR FIA")
	s = strings.ReplaceAll(s, "F1ONLY", "F1 ONLY")

	s = apostropheRe.ReplaceAllString(s, "' $1")
	s = whitespaceRe.ReplaceAllString(s, " ")

	return strings.TrimSpace(s)
}

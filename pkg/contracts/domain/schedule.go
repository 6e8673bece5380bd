package domain

// Schedule is the canonical, date-keyed shape of one race weekend. It is the
// stored form of an extraction run and the input to session materialization.
type Schedule struct {
	EventName string `json:"event_name"`
	Location  string `json:"location"`
	Year      string `json:"year"`
	Version   string `json:"version"`
	// RaceName is a display name derived on load (event name, falling back
	// to location, falling back to the source filename). Not persisted.
	RaceName string `json:"race_name,omitempty"`
	// Days maps an ISO yyyy-mm-dd date to the day's schedule. The date is
	// unique within a document.
	Days map[string]DaySchedule `json:"days" validate:"dive,keys,datetime=2006-01-02,endkeys"`
}

// DaySchedule holds the sessions of one calendar day.
type DaySchedule struct {
	DayName string `json:"day_name"`
	// Sessions are the extracted timetable entries, in source order.
	Sessions []SessionSpec `json:"sessions" validate:"dive"`
	// OtherEvents exist for externally curated entries. The extraction
	// pipeline never populates this list.
	OtherEvents []SessionSpec `json:"other_events" validate:"dive"`
}

// SessionSpec is the canonical, presentation-ready event shape.
type SessionSpec struct {
	StartTime string `json:"start_time" validate:"omitempty,datetime=15:04"`
	EndTime   string `json:"end_time" validate:"omitempty,datetime=15:04"`
	Category  string `json:"category"`
	Activity  string `json:"activity"`
	Location  string `json:"location"`
}

// Session is a materialized, timezone-resolved session instance. Sessions
// are derived and transient: they are recomputed on every materialization
// pass and never persisted.
type Session struct {
	Race          string  `json:"race"`
	Location      string  `json:"location"`
	Day           string  `json:"day"`
	Date          string  `json:"date"`
	Time          string  `json:"time"`
	Category      string  `json:"category"`
	Activity      string  `json:"activity"`
	DateTime      string  `json:"datetime"`       // UTC instant, RFC 3339
	LocalDateTime string  `json:"local_datetime"` // venue wall clock with offset, RFC 3339
	Timezone      string  `json:"timezone"`       // IANA zone name
	Timestamp     float64 `json:"timestamp"`      // seconds since epoch
}

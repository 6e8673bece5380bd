package domain

// RawTimetable is the direct output of one extraction run over a single
// official timetable document. It carries everything the extractor could
// recover, page by page, before any canonicalization. A RawTimetable is
// owned by the run that produced it and is never mutated afterwards.
type RawTimetable struct {
	EventName string      `json:"event_name"`
	Location  string      `json:"location"`
	Year      string      `json:"year"`
	Version   string      `json:"version"`
	Days      []DayRecord `json:"days"`
}

// TotalEvents returns the number of events extracted across all days.
func (t *RawTimetable) TotalEvents() int {
	total := 0
	for _, day := range t.Days {
		total += len(day.Events)
	}
	return total
}

// DayRecord holds the events extracted from one page of the timetable.
// Date is always a valid ISO yyyy-mm-dd string; pages whose date could not
// be derived are dropped by the pipeline and never become a DayRecord.
type DayRecord struct {
	DayName string        `json:"day_name"`
	Date    string        `json:"date"`
	Events  []EventRecord `json:"events"`
}

// EventRecord is one classified table row. An EventRecord is only retained
// when StartTime or Description is non-empty; rows with neither are noise.
type EventRecord struct {
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	Category    string `json:"category"`
	Location    string `json:"location"`
	Description string `json:"description"`
}

package extraction

import (
	"log/slog"

	"pitwall/pkg/contracts/domain"
)

// Convert reshapes a raw extraction into the canonical date-keyed schedule.
// It is a pure mapping with no heuristics: each day record with a non-empty
// date becomes one canonical day entry, and each event becomes a session
// spec with description renamed to activity. The converter appends only to
// Sessions; OtherEvents is reserved for externally curated entries.
//
// When two day records share a date the later one wins. The page loop does
// not enforce date uniqueness, so the collision is logged rather than
// treated as an error.
func Convert(raw *domain.RawTimetable, logger *slog.Logger) domain.Schedule {
	if logger == nil {
		logger = slog.Default()
	}

	schedule := domain.Schedule{
		EventName: raw.EventName,
		Location:  raw.Location,
		Year:      raw.Year,
		Version:   raw.Version,
		Days:      make(map[string]domain.DaySchedule, len(raw.Days)),
	}

	for _, day := range raw.Days {
		if day.Date == "" {
			continue
		}
		if _, exists := schedule.Days[day.Date]; exists {
			logger.Warn("duplicate date in extraction, keeping the later page",
				slog.String("date", day.Date))
		}

		daySchedule := domain.DaySchedule{
			DayName:     day.DayName,
			Sessions:    make([]domain.SessionSpec, 0, len(day.Events)),
			OtherEvents: []domain.SessionSpec{},
		}
		for _, event := range day.Events {
			daySchedule.Sessions = append(daySchedule.Sessions, domain.SessionSpec{
				StartTime: event.StartTime,
				EndTime:   event.EndTime,
				Category:  event.Category,
				Activity:  event.Description,
				Location:  event.Location,
			})
		}
		schedule.Days[day.Date] = daySchedule
	}

	return schedule
}

package schedule

import (
	"log/slog"
	"sort"
	"time"

	"pitwall/internal/metrics"
	"pitwall/pkg/contracts/domain"
)

// sessionTimeLayout is the fixed local wall-clock layout of a stored
// session: the document's ISO date plus the HH:MM start time.
const sessionTimeLayout = "2006-01-02 15:04"

// Materializer resolves the local wall-clock times of stored schedules into
// absolute instants and produces the final filtered, sorted session list.
// It never reads a wall clock itself; the caller supplies "now" so every
// pass is deterministic and testable.
type Materializer struct {
	zones   ZoneLookup
	logger  *slog.Logger
	metrics *metrics.Metrics
}

// NewMaterializer creates a materializer with the injected venue timezone
// table.
func NewMaterializer(zones ZoneLookup, logger *slog.Logger, m *metrics.Metrics) *Materializer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Materializer{
		zones:   zones,
		logger:  logger.With(slog.String("component", "materializer")),
		metrics: m,
	}
}

// Materialize walks every document, date and session spec, localizes each
// start time in the venue's zone (seasonal offsets included), and returns
// the strictly future sessions in ascending timestamp order. The sort is
// stable and single-keyed, so equal timestamps keep their input order.
//
// A session with an empty or unparseable start time is skipped silently; a
// bad record never aborts the batch.
func (m *Materializer) Materialize(docs []domain.Schedule, now time.Time) []domain.Session {
	var all []domain.Session

	for _, doc := range docs {
		zoneName := m.zones.Resolve(doc.Location)
		loc, err := time.LoadLocation(zoneName)
		if err != nil {
			m.logger.Warn("unknown timezone, falling back to UTC",
				slog.String("location", doc.Location),
				slog.String("timezone", zoneName))
			zoneName = "UTC"
			loc = time.UTC
		}

		race := doc.RaceName
		if race == "" {
			race = doc.EventName
		}
		if race == "" {
			race = doc.Location
		}

		// Map iteration order is random; dates are visited in ascending
		// order so the stable sort's tie-break stays deterministic.
		dates := make([]string, 0, len(doc.Days))
		for date := range doc.Days {
			dates = append(dates, date)
		}
		sort.Strings(dates)

		for _, date := range dates {
			day := doc.Days[date]
			for _, spec := range day.Sessions {
				if s, ok := m.resolve(race, doc.Location, day.DayName, date, zoneName, loc, spec); ok {
					all = append(all, s)
				}
			}
			for _, spec := range day.OtherEvents {
				if s, ok := m.resolve(race, doc.Location, day.DayName, date, zoneName, loc, spec); ok {
					all = append(all, s)
				}
			}
		}
	}

	cutoff := epochSeconds(now)
	future := make([]domain.Session, 0, len(all))
	for _, s := range all {
		if s.Timestamp > cutoff {
			future = append(future, s)
		}
	}

	sort.SliceStable(future, func(i, j int) bool {
		return future[i].Timestamp < future[j].Timestamp
	})

	if m.metrics != nil {
		m.metrics.SessionsMaterialized.Add(float64(len(future)))
	}

	return future
}

// resolve localizes one session spec. The parse respects the zone's
// historical and seasonal offset rules for the specific calendar date; this
// is a wall-clock-to-instant localization, not fixed offset arithmetic.
func (m *Materializer) resolve(race, location, dayName, date, zoneName string, loc *time.Location, spec domain.SessionSpec) (domain.Session, bool) {
	if spec.StartTime == "" {
		return domain.Session{}, false
	}

	local, err := time.ParseInLocation(sessionTimeLayout, date+" "+spec.StartTime, loc)
	if err != nil {
		m.logger.Debug("skipping session with unparseable time",
			slog.String("date", date),
			slog.String("start_time", spec.StartTime))
		return domain.Session{}, false
	}

	utc := local.UTC()

	return domain.Session{
		Race:          race,
		Location:      location,
		Day:           dayName,
		Date:          date,
		Time:          spec.StartTime,
		Category:      spec.Category,
		Activity:      spec.Activity,
		DateTime:      utc.Format(time.RFC3339),
		LocalDateTime: local.Format(time.RFC3339),
		Timezone:      zoneName,
		Timestamp:     epochSeconds(utc),
	}, true
}

// epochSeconds converts an instant to fractional seconds since the epoch.
func epochSeconds(t time.Time) float64 {
	return float64(t.UnixMilli()) / 1000
}

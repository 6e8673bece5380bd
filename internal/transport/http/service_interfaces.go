package http

import (
	"context"
	"time"

	"pitwall/internal/extraction"
	"pitwall/internal/services"
	"pitwall/pkg/contracts/domain"
)

// ScheduleService is the schedule operations the HTTP handlers depend on.
// Handlers are written against this interface so tests can substitute stubs.
type ScheduleService interface {
	IngestTimetable(ctx context.Context, reader extraction.DocumentReader) (*services.IngestResult, error)
	UpcomingSessions(ctx context.Context, now time.Time) ([]domain.Session, error)
	DataFiles(ctx context.Context) ([]string, error)
}

// HealthService is the health check surface the HTTP handlers depend on.
type HealthService interface {
	Check(ctx context.Context) services.HealthStatus
}

package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"pitwall/internal/extraction"
	"pitwall/internal/metrics"
	"pitwall/internal/schedule"
	"pitwall/pkg/contracts/domain"
)

// ScheduleService coordinates the extraction pipeline, the schedule store
// and the materializer behind one application-facing API.
type ScheduleService struct {
	store        *schedule.Store
	materializer *schedule.Materializer
	pipeline     *extraction.Pipeline
	logger       *slog.Logger
	metrics      *metrics.Metrics
}

// NewScheduleService creates the schedule service.
func NewScheduleService(
	store *schedule.Store,
	materializer *schedule.Materializer,
	pipeline *extraction.Pipeline,
	logger *slog.Logger,
	m *metrics.Metrics,
) *ScheduleService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ScheduleService{
		store:        store,
		materializer: materializer,
		pipeline:     pipeline,
		logger:       logger.With(slog.String("service", "schedule")),
		metrics:      m,
	}
}

// IngestResult describes one completed timetable ingestion.
type IngestResult struct {
	Filename  string `json:"filename"`
	EventName string `json:"event_name"`
	Location  string `json:"location"`
	Year      string `json:"year"`
	Version   string `json:"version"`
	Days      int    `json:"days"`
	Events    int    `json:"events"`
}

// IngestTimetable extracts a timetable from the reader, converts it to the
// canonical schedule form and persists it. A document that yields no day
// records is rejected rather than stored empty.
func (s *ScheduleService) IngestTimetable(ctx context.Context, reader extraction.DocumentReader) (*IngestResult, error) {
	raw, err := s.pipeline.Run(ctx, reader)
	if err != nil {
		return nil, fmt.Errorf("extract timetable: %w", err)
	}
	if len(raw.Days) == 0 {
		return nil, fmt.Errorf("extract timetable: no day schedules found in document")
	}

	doc := extraction.Convert(raw, s.logger)

	filename, err := s.store.Save(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("store schedule: %w", err)
	}

	if s.metrics != nil {
		s.metrics.DocumentsIngested.Inc()
	}

	s.logger.InfoContext(ctx, "timetable ingested",
		slog.String("file", filename),
		slog.String("event", doc.EventName),
		slog.Int("days", len(doc.Days)),
		slog.Int("events", raw.TotalEvents()))

	return &IngestResult{
		Filename:  filename,
		EventName: doc.EventName,
		Location:  doc.Location,
		Year:      doc.Year,
		Version:   doc.Version,
		Days:      len(doc.Days),
		Events:    raw.TotalEvents(),
	}, nil
}

// UpcomingSessions loads every stored schedule and materializes the sessions
// that are still in the future relative to now.
func (s *ScheduleService) UpcomingSessions(ctx context.Context, now time.Time) ([]domain.Session, error) {
	docs, err := s.store.LoadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load schedules: %w", err)
	}

	sessions := s.materializer.Materialize(docs, now)

	s.logger.InfoContext(ctx, "sessions materialized",
		slog.Int("documents", len(docs)),
		slog.Int("sessions", len(sessions)))

	return sessions, nil
}

// DataFiles lists the stored schedule document filenames.
func (s *ScheduleService) DataFiles(ctx context.Context) ([]string, error) {
	files, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list schedules: %w", err)
	}
	return files, nil
}

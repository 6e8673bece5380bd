package services

import (
	"context"
	"log/slog"
	"runtime"
	"time"

	"pitwall/pkg/contracts"
)

// HealthService reports process liveness and build information.
type HealthService struct {
	logger    *slog.Logger
	startTime time.Time
}

// NewHealthService creates the health service.
func NewHealthService(logger *slog.Logger) *HealthService {
	if logger == nil {
		logger = slog.Default()
	}
	return &HealthService{
		logger:    logger.With(slog.String("service", "health")),
		startTime: time.Now(),
	}
}

// HealthStatus is the health endpoint payload.
type HealthStatus struct {
	Status     string    `json:"status"`
	Version    string    `json:"version"`
	Uptime     string    `json:"uptime"`
	Timestamp  time.Time `json:"timestamp"`
	GoVersion  string    `json:"go_version"`
	Goroutines int       `json:"goroutines"`
}

// Check returns the current health status.
func (s *HealthService) Check(ctx context.Context) HealthStatus {
	return HealthStatus{
		Status:     "healthy",
		Version:    contracts.Version,
		Uptime:     time.Since(s.startTime).Round(time.Second).String(),
		Timestamp:  time.Now().UTC(),
		GoVersion:  runtime.Version(),
		Goroutines: runtime.NumGoroutine(),
	}
}

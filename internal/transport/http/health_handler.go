package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"pitwall/pkg/contracts"
)

// HealthHandler serves liveness and version endpoints.
type HealthHandler struct {
	service HealthService
	logger  *slog.Logger
}

// NewHealthHandler creates the health handler.
func NewHealthHandler(service HealthService, logger *slog.Logger) *HealthHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &HealthHandler{
		service: service,
		logger:  logger.With(slog.String("handler", "health")),
	}
}

// RegisterRoutes mounts the health endpoints on the router.
func (h *HealthHandler) RegisterRoutes(r chi.Router) {
	r.Get("/health", h.GetHealth)
	r.Get("/version", h.GetVersion)
}

// GetHealth returns process liveness information.
func (h *HealthHandler) GetHealth(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, h.service.Check(r.Context()))
}

// GetVersion returns build and version information.
func (h *HealthHandler) GetVersion(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, contracts.GetVersionInfo())
}

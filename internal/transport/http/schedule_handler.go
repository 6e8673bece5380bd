package http

import (
	stderrors "errors"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"pitwall/internal/docreader"
	apierrors "pitwall/internal/errors"
	"pitwall/pkg/contracts/domain"
)

// ScheduleHandler serves the schedule API: upcoming sessions, stored
// documents and timetable uploads.
type ScheduleHandler struct {
	service        ScheduleService
	logger         *slog.Logger
	errorHandler   *apierrors.ErrorHandler
	maxUploadBytes int64
	// now is injected so the future-only session filter is testable.
	now func() time.Time
}

// NewScheduleHandler creates the schedule handler.
func NewScheduleHandler(service ScheduleService, logger *slog.Logger, maxUploadBytes int64) *ScheduleHandler {
	if logger == nil {
		logger = slog.Default()
	}
	if maxUploadBytes <= 0 {
		maxUploadBytes = 16 << 20
	}
	return &ScheduleHandler{
		service:        service,
		logger:         logger.With(slog.String("handler", "schedule")),
		errorHandler:   apierrors.NewErrorHandler(logger, false),
		maxUploadBytes: maxUploadBytes,
		now:            time.Now,
	}
}

// WithClock overrides the handler's clock. Intended for tests.
func (h *ScheduleHandler) WithClock(now func() time.Time) *ScheduleHandler {
	h.now = now
	return h
}

// RegisterRoutes mounts the schedule endpoints on the router.
func (h *ScheduleHandler) RegisterRoutes(r chi.Router) {
	r.Get("/sessions", h.GetSessions)
	r.Get("/schedules", h.GetScheduleFiles)
	r.Post("/schedules", h.UploadTimetable)
}

// sessionsResponse is the payload of GET /sessions.
type sessionsResponse struct {
	Sessions    []domain.Session `json:"sessions"`
	Count       int              `json:"count"`
	CurrentTime string           `json:"current_time"`
}

// GetSessions returns every stored session that is still in the future,
// sorted by start instant.
func (h *ScheduleHandler) GetSessions(w http.ResponseWriter, r *http.Request) {
	now := h.now()

	sessions, err := h.service.UpcomingSessions(r.Context(), now)
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}
	if sessions == nil {
		sessions = []domain.Session{}
	}

	render.JSON(w, r, sessionsResponse{
		Sessions:    sessions,
		Count:       len(sessions),
		CurrentTime: now.UTC().Format(time.RFC3339),
	})
}

// filesResponse is the payload of GET /schedules.
type filesResponse struct {
	Files []string `json:"files"`
	Count int      `json:"count"`
}

// GetScheduleFiles lists the stored schedule documents.
func (h *ScheduleHandler) GetScheduleFiles(w http.ResponseWriter, r *http.Request) {
	files, err := h.service.DataFiles(r.Context())
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}
	if files == nil {
		files = []string{}
	}

	render.JSON(w, r, filesResponse{Files: files, Count: len(files)})
}

// UploadTimetable accepts a multipart timetable workbook, extracts it and
// stores the resulting schedule document.
func (h *ScheduleHandler) UploadTimetable(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)
	if err := r.ParseMultipartForm(h.maxUploadBytes); err != nil {
		var maxErr *http.MaxBytesError
		if stderrors.As(err, &maxErr) {
			h.errorHandler.HandleError(w, r, apierrors.ErrPayloadTooLarge)
			return
		}
		h.errorHandler.HandleError(w, r, apierrors.InvalidRequestWithError(err))
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		h.errorHandler.HandleError(w, r, apierrors.ErrValidation("file", "timetable file is required"))
		return
	}
	defer file.Close()

	if !strings.EqualFold(filepath.Ext(header.Filename), ".xlsx") {
		h.errorHandler.HandleError(w, r, apierrors.ErrValidation("file", "only .xlsx timetables are supported"))
		return
	}

	tmpPath, err := h.saveUpload(file)
	if err != nil {
		h.errorHandler.HandleError(w, r, apierrors.FileSystemError("upload", err))
		return
	}
	defer os.Remove(tmpPath)

	h.logger.InfoContext(ctx, "timetable upload received",
		slog.String("filename", header.Filename),
		slog.Int64("size", header.Size))

	reader := docreader.NewExcelReader(tmpPath, h.logger)
	result, err := h.service.IngestTimetable(ctx, reader)
	if err != nil {
		h.errorHandler.HandleError(w, r, apierrors.ExtractionError(err))
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, result)
}

// saveUpload spools the uploaded workbook to a temp file and returns its
// path. The caller removes the file when done.
func (h *ScheduleHandler) saveUpload(src io.Reader) (string, error) {
	tmp, err := os.CreateTemp("", "timetable-*.xlsx")
	if err != nil {
		return "", err
	}
	defer tmp.Close()

	if _, err := io.Copy(tmp, src); err != nil {
		os.Remove(tmp.Name())
		return "", err
	}
	return tmp.Name(), nil
}

package errors

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"pitwall/internal/infrastructure"
)

// Error type URIs following RFC 7807
const (
	TypeValidation  = "/errors/validation"
	TypeNotFound    = "/errors/not-found"
	TypeRateLimit   = "/errors/rate-limit"
	TypeInternal    = "/errors/internal"
	TypeTimeout     = "/errors/timeout"
	TypeExtraction  = "/errors/extraction-failed"
	TypePayloadSize = "/errors/payload-too-large"
)

// ProblemDetails is an RFC 7807 problem document.
type ProblemDetails struct {
	Type       string                 `json:"type"`
	Title      string                 `json:"title"`
	Status     int                    `json:"status"`
	Detail     string                 `json:"detail,omitempty"`
	Instance   string                 `json:"instance,omitempty"`
	Extensions map[string]interface{} `json:"-"`
}

// NewProblem creates a problem document.
func NewProblem(problemType, title string, status int, detail string) *ProblemDetails {
	return &ProblemDetails{
		Type:   problemType,
		Title:  title,
		Status: status,
		Detail: detail,
	}
}

// WithExtension attaches an extension member to the problem document.
func (p *ProblemDetails) WithExtension(key string, value interface{}) *ProblemDetails {
	if p.Extensions == nil {
		p.Extensions = make(map[string]interface{})
	}
	p.Extensions[key] = value
	return p
}

// MarshalJSON inlines extension members next to the standard fields.
func (p *ProblemDetails) MarshalJSON() ([]byte, error) {
	doc := map[string]interface{}{
		"type":   p.Type,
		"title":  p.Title,
		"status": p.Status,
	}
	if p.Detail != "" {
		doc["detail"] = p.Detail
	}
	if p.Instance != "" {
		doc["instance"] = p.Instance
	}
	for k, v := range p.Extensions {
		doc[k] = v
	}
	return json.Marshal(doc)
}

// Render implements render.Renderer.
func (p *ProblemDetails) Render(w http.ResponseWriter, r *http.Request) error {
	w.Header().Set("Content-Type", "application/problem+json")
	render.Status(r, p.Status)
	return nil
}

// ErrorHandler provides centralized error handling at the HTTP boundary.
type ErrorHandler struct {
	logger       *slog.Logger
	includeStack bool
}

// NewErrorHandler creates a new error handler
func NewErrorHandler(logger *slog.Logger, includeStack bool) *ErrorHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ErrorHandler{
		logger:       logger.With(slog.String("component", "error_handler")),
		includeStack: includeStack,
	}
}

// HandleError converts any error to RFC 7807 format and responds
func (h *ErrorHandler) HandleError(w http.ResponseWriter, r *http.Request, err error) {
	if err == nil {
		return
	}

	reqID := infrastructure.GetTraceID(r.Context())

	h.logger.ErrorContext(r.Context(), "request failed",
		slog.String("error", err.Error()),
		slog.String("request_id", reqID),
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
	)

	problem := h.ErrorToProblem(err, r)
	problem.WithExtension("trace_id", reqID)

	render.Render(w, r, problem)
}

// ErrorToProblem converts an error to RFC 7807 Problem Details
func (h *ErrorHandler) ErrorToProblem(err error, r *http.Request) *ProblemDetails {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return NewProblem(TypeTimeout, "Request Timeout", http.StatusGatewayTimeout,
			"The request took too long to process")
	case errors.Is(err, context.Canceled):
		return NewProblem(TypeTimeout, "Request Canceled", 499, "The request was canceled")
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return h.apiErrorToProblem(apiErr, r)
	}

	return NewProblem(TypeInternal, "Internal Server Error", http.StatusInternalServerError,
		"An unexpected error occurred")
}

// apiErrorToProblem maps an APIError onto a problem document.
func (h *ErrorHandler) apiErrorToProblem(apiErr *APIError, r *http.Request) *ProblemDetails {
	problemType := TypeInternal
	switch apiErr.StatusCode {
	case http.StatusBadRequest:
		problemType = TypeValidation
	case http.StatusNotFound:
		problemType = TypeNotFound
	case http.StatusRequestEntityTooLarge:
		problemType = TypePayloadSize
	case http.StatusUnprocessableEntity:
		problemType = TypeExtraction
	case http.StatusTooManyRequests:
		problemType = TypeRateLimit
	}

	problem := NewProblem(problemType, http.StatusText(apiErr.StatusCode), apiErr.StatusCode, apiErr.Message).
		WithExtension("error_code", apiErr.ErrorCode)
	problem.Instance = r.URL.Path

	if apiErr.Details != nil {
		problem.WithExtension("details", apiErr.Details)
	}

	return problem
}

// NotFound renders a problem document for unmatched routes.
func (h *ErrorHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	problem := NewProblem(TypeNotFound, "Not Found", http.StatusNotFound,
		"The requested resource was not found").
		WithExtension("trace_id", infrastructure.GetTraceID(r.Context()))
	problem.Instance = r.URL.Path
	render.Render(w, r, problem)
}

// MethodNotAllowed renders a problem document for unsupported methods.
func (h *ErrorHandler) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	problem := NewProblem(TypeValidation, "Method Not Allowed", http.StatusMethodNotAllowed,
		"The request method is not allowed for this resource")
	problem.Instance = r.URL.Path
	render.Render(w, r, problem)
}

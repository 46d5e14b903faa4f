package http

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/goliatone/go-agency-site/internal/content"
	"github.com/goliatone/go-agency-site/internal/estimate"
	"github.com/goliatone/go-agency-site/internal/validation"
)

type envelope struct {
	Success bool                         `json:"success"`
	Data    any                          `json:"data,omitempty"`
	Error   string                       `json:"error,omitempty"`
	Message string                       `json:"message,omitempty"`
	Issues  []validation.ValidationIssue `json:"issues,omitempty"`
}

func success(data any) envelope {
	return envelope{Success: true, Data: data}
}

func failure(code, message string, issues []validation.ValidationIssue) envelope {
	return envelope{Error: code, Message: message, Issues: issues}
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	encoder := json.NewEncoder(w)
	encoder.SetEscapeHTML(false)
	_ = encoder.Encode(payload)
}

func (api *SiteAPI) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, payload := mapError(err)
	if status >= http.StatusInternalServerError {
		api.logger.Error("site.http.request_failed",
			"method", r.Method,
			"path", r.URL.Path,
			"status", status,
			"error", err,
		)
	}
	writeJSON(w, status, payload)
}

func mapError(err error) (int, envelope) {
	var (
		notFound        *content.NotFoundError
		readErr         *content.ReadError
		estimateMissing *estimate.NotFoundError
		tooLarge        *http.MaxBytesError
	)

	switch {
	case errors.Is(err, validation.ErrSchemaValidation):
		return http.StatusBadRequest, failure("validation_failed", "request validation failed", validation.Issues(err))
	case errors.As(err, &notFound):
		return http.StatusNotFound, failure("not_found", "content not found", nil)
	case errors.As(err, &estimateMissing):
		return http.StatusNotFound, failure("not_found", "estimate not found", nil)
	case errors.As(err, &tooLarge):
		return http.StatusRequestEntityTooLarge, failure("payload_too_large", "request body too large", nil)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable, failure("unavailable", "request cancelled", nil)
	case errors.As(err, &readErr):
		return http.StatusInternalServerError, failure("read_failed", "content could not be read", nil)
	default:
		return http.StatusInternalServerError, failure("internal_error", "internal server error", nil)
	}
}

func badRequest(err error) error {
	return &validation.PayloadValidationError{
		Issues: []validation.ValidationIssue{{Message: err.Error()}},
		Cause:  err,
	}
}

func (api *SiteAPI) readBody(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	if r.Body == nil {
		return nil, badRequest(errors.New("request body is required"))
	}
	defer r.Body.Close()
	return io.ReadAll(http.MaxBytesReader(w, r.Body, api.maxBodyBytes))
}

func joinPath(base, suffix string) string {
	base = strings.TrimRight(base, "/")
	suffix = strings.TrimLeft(suffix, "/")
	if suffix == "" {
		if base == "" {
			return "/"
		}
		return base
	}
	if base == "" {
		return "/" + suffix
	}
	return base + "/" + suffix
}

func (api *SiteAPI) handleRouteNotFound(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusNotFound, failure("not_found", "route not found", nil))
}

package http

import (
	"net/http"
	"time"

	"github.com/goliatone/go-agency-site/internal/logging"
	"github.com/goliatone/go-agency-site/pkg/interfaces"
)

type statusRecorder struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (r *statusRecorder) WriteHeader(status int) {
	if r.status == 0 {
		r.status = status
	}
	r.ResponseWriter.WriteHeader(status)
}

func (r *statusRecorder) Write(p []byte) (int, error) {
	if r.status == 0 {
		r.status = http.StatusOK
	}
	n, err := r.ResponseWriter.Write(p)
	r.bytes += n
	return n, err
}

// RequestLogger logs one entry per request and converts handler panics into
// a 500 envelope.
func RequestLogger(logger interfaces.Logger) func(http.Handler) http.Handler {
	if logger == nil {
		logger = logging.NoOp()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w}

			defer func() {
				if recovered := recover(); recovered != nil {
					logger.Error("site.http.panic",
						"method", r.Method,
						"path", r.URL.Path,
						"panic", recovered,
					)
					if rec.status == 0 {
						writeJSON(rec, http.StatusInternalServerError, failure("internal_error", "internal server error", nil))
					}
				}

				status := rec.status
				if status == 0 {
					status = http.StatusOK
				}
				logger.Info("site.http.request",
					"method", r.Method,
					"path", r.URL.Path,
					"status", status,
					"bytes", rec.bytes,
					"duration_ms", time.Since(start).Milliseconds(),
				)
			}()

			next.ServeHTTP(rec, r)
		})
	}
}

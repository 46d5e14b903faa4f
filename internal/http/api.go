package http

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/goliatone/go-agency-site/internal/contact"
	"github.com/goliatone/go-agency-site/internal/content"
	"github.com/goliatone/go-agency-site/internal/estimate"
	"github.com/goliatone/go-agency-site/internal/logging"
	"github.com/goliatone/go-agency-site/pkg/interfaces"
)

const defaultMaxBodyBytes = 1 << 20

// ContentReader is the read side of the content store.
type ContentReader interface {
	List(ctx context.Context, kind content.Kind, locale string) ([]*content.Item, error)
	Get(ctx context.Context, kind content.Kind, slug, locale string) (*content.Item, error)
}

// SiteAPI registers the public endpoints of the site.
type SiteAPI struct {
	basePath      string
	content       ContentReader
	estimates     estimate.Service
	contact       contact.Service
	logger        interfaces.Logger
	defaultLocale string
	maxBodyBytes  int64
	started       time.Time
	now           func() time.Time
}

// Option mutates the SiteAPI configuration.
type Option func(*SiteAPI)

// NewSiteAPI constructs a SiteAPI instance.
func NewSiteAPI(opts ...Option) *SiteAPI {
	api := &SiteAPI{
		basePath:      "/api",
		logger:        logging.NoOp(),
		defaultLocale: "nl",
		maxBodyBytes:  defaultMaxBodyBytes,
		now:           time.Now,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(api)
		}
	}
	api.started = api.now()
	return api
}

// WithBasePath overrides the base API path (defaults to "/api").
func WithBasePath(path string) Option {
	return func(api *SiteAPI) {
		if trimmed := strings.TrimSpace(path); trimmed != "" {
			api.basePath = trimmed
		}
	}
}

// WithContent wires the content store.
func WithContent(reader ContentReader) Option {
	return func(api *SiteAPI) {
		api.content = reader
	}
}

// WithEstimateService wires the estimate service.
func WithEstimateService(service estimate.Service) Option {
	return func(api *SiteAPI) {
		api.estimates = service
	}
}

// WithContactService wires the contact service.
func WithContactService(service contact.Service) Option {
	return func(api *SiteAPI) {
		api.contact = service
	}
}

// WithLogger sets the logger used for request and failure logs.
func WithLogger(logger interfaces.Logger) Option {
	return func(api *SiteAPI) {
		if logger != nil {
			api.logger = logger
		}
	}
}

// WithDefaultLocale sets the locale used when ?lang is absent (defaults to "nl").
func WithDefaultLocale(locale string) Option {
	return func(api *SiteAPI) {
		if trimmed := strings.ToLower(strings.TrimSpace(locale)); trimmed != "" {
			api.defaultLocale = trimmed
		}
	}
}

// WithMaxBodyBytes caps request bodies.
func WithMaxBodyBytes(limit int64) Option {
	return func(api *SiteAPI) {
		if limit > 0 {
			api.maxBodyBytes = limit
		}
	}
}

// WithClock overrides the clock reported by the health endpoint.
func WithClock(clock func() time.Time) Option {
	return func(api *SiteAPI) {
		if clock != nil {
			api.now = clock
		}
	}
}

// Register mounts every route on mux.
func (api *SiteAPI) Register(mux *http.ServeMux) error {
	if mux == nil {
		return fmt.Errorf("http: mux is required")
	}
	if api == nil {
		return fmt.Errorf("http: site api is nil")
	}

	base := joinPath(api.basePath, "")

	api.registerContentRoutes(mux, base)
	api.registerEstimateRoutes(mux, base)
	api.registerContactRoutes(mux, base)
	mux.HandleFunc("GET "+joinPath(base, "health"), api.handleHealth)

	// unmatched paths under base get the JSON envelope instead of the mux default
	fallback := base
	if !strings.HasSuffix(fallback, "/") {
		fallback += "/"
	}
	mux.HandleFunc(fallback, api.handleRouteNotFound)

	return nil
}

// Handler returns a ServeMux with every route mounted, wrapped in the
// request logging middleware.
func (api *SiteAPI) Handler() (http.Handler, error) {
	mux := http.NewServeMux()
	if err := api.Register(mux); err != nil {
		return nil, err
	}
	return RequestLogger(api.logger)(mux), nil
}

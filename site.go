package site

import (
	"net/http"

	contentcmd "github.com/goliatone/go-agency-site/internal/commands/content"
	estimatecmd "github.com/goliatone/go-agency-site/internal/commands/estimate"
	"github.com/goliatone/go-agency-site/internal/contact"
	"github.com/goliatone/go-agency-site/internal/content"
	"github.com/goliatone/go-agency-site/internal/di"
	"github.com/goliatone/go-agency-site/internal/estimate"
	"github.com/goliatone/go-agency-site/pkg/interfaces"
)

// ContentStore exports the read-only content store.
type ContentStore = *content.Store

// ContentItem exports a content item.
type ContentItem = content.Item

// ContentKind exports the content kind type.
type ContentKind = content.Kind

// Content kinds served by the site.
const (
	KindServices    = content.KindServices
	KindCaseStudies = content.KindCaseStudies
	KindBlog        = content.KindBlog
)

// EstimateService exports the estimate service contract.
type EstimateService = estimate.Service

// EstimateRequest exports the calculator input.
type EstimateRequest = estimate.Request

// ContactService exports the contact service contract.
type ContactService = contact.Service

// MarkdownService exports the markdown service contract.
type MarkdownService = interfaces.MarkdownService

// EstimateCommand exports the estimate command message.
type EstimateCommand = estimatecmd.CalculateEstimateCommand

// CheckContentCommand exports the content lint command message.
type CheckContentCommand = contentcmd.CheckContentCommand

// CheckReport exports the content lint report.
type CheckReport = contentcmd.Report

// Option customises module wiring.
type Option = di.Option

// Wiring options re-exported for callers outside this module.
var (
	WithLoggerProvider     = di.WithLoggerProvider
	WithContentFS          = di.WithContentFS
	WithBunDB              = di.WithBunDB
	WithRouteManager       = di.WithRouteManager
	WithEstimateRepository = di.WithEstimateRepository
	WithContactRepository  = di.WithContactRepository
	WithCommandRegistry    = di.WithCommandRegistry
)

// Module represents the top level site runtime façade.
type Module struct {
	container *di.Container
}

// New constructs a site module using the provided configuration and optional overrides.
func New(cfg Config, opts ...Option) (*Module, error) {
	container, err := di.NewContainer(cfg, opts...)
	if err != nil {
		return nil, err
	}
	return &Module{container: container}, nil
}

// Container exposes the underlying container for advanced integrations.
func (m *Module) Container() *di.Container {
	return m.container
}

// Handler returns the HTTP API wrapped in request logging.
func (m *Module) Handler() (http.Handler, error) {
	return m.container.API().Handler()
}

// Register mounts the API routes on an existing mux without middleware.
func (m *Module) Register(mux *http.ServeMux) error {
	return m.container.API().Register(mux)
}

// Content returns the content store.
func (m *Module) Content() ContentStore {
	return m.container.ContentStore()
}

// Markdown returns the markdown service.
func (m *Module) Markdown() MarkdownService {
	return m.container.Markdown()
}

// Estimates returns the estimate service.
func (m *Module) Estimates() EstimateService {
	return m.container.EstimateService()
}

// Contact returns the contact service.
func (m *Module) Contact() ContactService {
	return m.container.ContactService()
}

// EstimateHandler returns the estimate command handler.
func (m *Module) EstimateHandler() *estimatecmd.CalculateEstimateHandler {
	return m.container.EstimateCommands().Calculate
}

// CheckHandler returns the content lint command handler.
func (m *Module) CheckHandler() *contentcmd.CheckContentHandler {
	return m.container.CheckCommand()
}

// Logger returns a named logger from the configured provider.
func (m *Module) Logger(name string) interfaces.Logger {
	return m.container.LoggerProvider().GetLogger(name)
}

// Close releases the database when the module opened it.
func (m *Module) Close() error {
	if m == nil || m.container == nil {
		return nil
	}
	return m.container.Close()
}

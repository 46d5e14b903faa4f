package di

import (
	"context"
	"fmt"
	"io/fs"
	"time"

	urlkit "github.com/goliatone/go-urlkit"
	"github.com/uptrace/bun"

	"github.com/goliatone/go-agency-site/internal/commands"
	contentcmd "github.com/goliatone/go-agency-site/internal/commands/content"
	estimatecmd "github.com/goliatone/go-agency-site/internal/commands/estimate"
	"github.com/goliatone/go-agency-site/internal/contact"
	"github.com/goliatone/go-agency-site/internal/content"
	"github.com/goliatone/go-agency-site/internal/estimate"
	sitehttp "github.com/goliatone/go-agency-site/internal/http"
	"github.com/goliatone/go-agency-site/internal/logging"
	"github.com/goliatone/go-agency-site/internal/logging/gologger"
	"github.com/goliatone/go-agency-site/internal/markdown"
	"github.com/goliatone/go-agency-site/internal/runtimeconfig"
	"github.com/goliatone/go-agency-site/internal/storage"
	"github.com/goliatone/go-agency-site/pkg/interfaces"
)

const migrateTimeout = 30 * time.Second

// Container wires the site services from a runtime configuration.
type Container struct {
	Config runtimeconfig.Config

	loggerProvider interfaces.LoggerProvider
	contentFS      fs.FS
	bunDB          *bun.DB
	ownsDB         bool
	routeManager   *urlkit.RouteManager
	registry       CommandRegistry

	markdownSvc  *markdown.Service
	contentStore *content.Store
	estimateRepo estimate.Repository
	contactRepo  contact.Repository
	estimateSvc  estimate.Service
	contactSvc   contact.Service
	api          *sitehttp.SiteAPI

	estimateCommands *estimatecmd.HandlerSet
	checkCommand     *contentcmd.CheckContentHandler
}

// CommandRegistry receives every command handler built by the container.
type CommandRegistry = commands.CommandRegistry

// Option mutates the container before services are built.
type Option func(*Container)

// WithLoggerProvider overrides the go-logger provider built from the logging config.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(c *Container) {
		if provider != nil {
			c.loggerProvider = provider
		}
	}
}

// WithContentFS serves content from filesystem instead of Content.Dir.
func WithContentFS(filesystem fs.FS) Option {
	return func(c *Container) {
		c.contentFS = filesystem
	}
}

// WithBunDB uses an existing database instead of opening one from the storage config.
// The caller keeps ownership and closes it.
func WithBunDB(db *bun.DB) Option {
	return func(c *Container) {
		c.bunDB = db
	}
}

// WithRouteManager overrides the permalink routes.
func WithRouteManager(manager *urlkit.RouteManager) Option {
	return func(c *Container) {
		c.routeManager = manager
	}
}

// WithEstimateRepository overrides the estimate log repository.
func WithEstimateRepository(repo estimate.Repository) Option {
	return func(c *Container) {
		c.estimateRepo = repo
	}
}

// WithContactRepository overrides the contact submission repository.
func WithContactRepository(repo contact.Repository) Option {
	return func(c *Container) {
		c.contactRepo = repo
	}
}

// WithCommandRegistry registers the command handlers with registry.
func WithCommandRegistry(registry CommandRegistry) Option {
	return func(c *Container) {
		c.registry = registry
	}
}

// NewContainer validates cfg and builds every service.
func NewContainer(cfg runtimeconfig.Config, opts ...Option) (*Container, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := &Container{Config: cfg}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}

	steps := []func() error{
		c.configureLogger,
		c.configureMarkdown,
		c.configureContent,
		c.configureStorage,
		c.configureServices,
		c.configureCommands,
		c.configureAPI,
	}
	for _, step := range steps {
		if err := step(); err != nil {
			_ = c.Close()
			return nil, err
		}
	}
	return c, nil
}

func (c *Container) configureLogger() error {
	if c.loggerProvider != nil {
		return nil
	}
	provider, err := gologger.NewProvider(gologger.Config{
		Level:     c.Config.Logging.Level,
		Format:    c.Config.Logging.Format,
		AddSource: c.Config.Logging.AddSource,
		Focus:     c.Config.Logging.Focus,
	})
	if err != nil {
		return err
	}
	c.loggerProvider = provider
	return nil
}

func (c *Container) configureMarkdown() error {
	svc, err := markdown.NewService(markdown.Config{
		BasePath: c.Config.Content.Dir,
		FS:       c.contentFS,
		Locales:  c.Config.Content.NormalizedLocales(),
		Engine:   c.Config.Content.Renderer,
		Parser: interfaces.ParseOptions{
			Extensions: c.Config.Content.Extensions,
			HardWraps:  c.Config.Content.HardWraps,
			SafeMode:   c.Config.Content.SafeMode,
		},
	}, nil)
	if err != nil {
		return fmt.Errorf("site: markdown: %w", err)
	}
	c.markdownSvc = svc
	return nil
}

func (c *Container) configureContent() error {
	opts := []content.StoreOption{
		content.WithLogger(logging.ContentLogger(c.loggerProvider)),
	}
	if c.Config.Routes.Enabled {
		if c.routeManager == nil {
			c.routeManager = urlkit.NewRouteManager(content.DefaultRouteConfig(c.Config.Routes.BaseURL))
		}
		opts = append(opts, content.WithPermalinks(content.NewURLKitPermalinks(content.URLKitOptions{
			Manager: c.routeManager,
		})))
	}
	c.contentStore = content.NewStore(c.markdownSvc, opts...)
	return nil
}

func (c *Container) configureStorage() error {
	if c.bunDB == nil && c.Config.Storage.Enabled {
		ctx, cancel := context.WithTimeout(context.Background(), migrateTimeout)
		defer cancel()

		db, err := storage.Open(ctx, storage.Config{
			Driver: c.Config.Storage.Driver,
			DSN:    c.Config.Storage.DSN,
		})
		if err != nil {
			return err
		}
		c.bunDB = db
		c.ownsDB = true
	}
	if c.bunDB == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), migrateTimeout)
	defer cancel()
	if err := storage.Migrate(ctx, c.bunDB, (*estimate.Record)(nil), (*contact.Record)(nil)); err != nil {
		return err
	}

	if c.estimateRepo == nil && c.Config.Estimate.Persist {
		c.estimateRepo = estimate.NewBunRepository(c.bunDB)
	}
	if c.contactRepo == nil {
		c.contactRepo = contact.NewBunRepository(c.bunDB)
	}
	return nil
}

func (c *Container) configureServices() error {
	estimateOpts := []estimate.ServiceOption{
		estimate.WithLogger(logging.EstimateLogger(c.loggerProvider)),
	}
	if c.estimateRepo != nil {
		estimateOpts = append(estimateOpts, estimate.WithRepository(c.estimateRepo))
	}
	c.estimateSvc = estimate.NewService(c.Config.Estimate.PriceBand, estimateOpts...)

	if c.contactRepo == nil {
		c.contactRepo = contact.NewMemoryRepository()
	}
	c.contactSvc = contact.NewService(c.contactRepo,
		contact.WithLocales(c.Config.Content.NormalizedLocales()...),
		contact.WithLogger(logging.ContactLogger(c.loggerProvider)),
	)
	return nil
}

func (c *Container) configureCommands() error {
	set, err := estimatecmd.RegisterEstimateCommands(c.registry, c.estimateSvc, c.loggerProvider)
	if err != nil {
		return err
	}
	c.estimateCommands = set

	check, err := contentcmd.RegisterContentCommands(c.registry, c.markdownSvc, c.loggerProvider)
	if err != nil {
		return err
	}
	c.checkCommand = check
	return nil
}

func (c *Container) configureAPI() error {
	c.api = sitehttp.NewSiteAPI(
		sitehttp.WithContent(c.contentStore),
		sitehttp.WithEstimateService(c.estimateSvc),
		sitehttp.WithContactService(c.contactSvc),
		sitehttp.WithLogger(logging.HTTPLogger(c.loggerProvider)),
		sitehttp.WithDefaultLocale(c.Config.Content.DefaultLocale),
		sitehttp.WithMaxBodyBytes(c.Config.Server.MaxBodyBytes),
	)
	return nil
}

// LoggerProvider returns the logger provider.
func (c *Container) LoggerProvider() interfaces.LoggerProvider { return c.loggerProvider }

// Markdown returns the markdown service.
func (c *Container) Markdown() *markdown.Service { return c.markdownSvc }

// ContentStore returns the content store.
func (c *Container) ContentStore() *content.Store { return c.contentStore }

// EstimateService returns the estimate service.
func (c *Container) EstimateService() estimate.Service { return c.estimateSvc }

// ContactService returns the contact service.
func (c *Container) ContactService() contact.Service { return c.contactSvc }

// EstimateRepository returns the estimate log, nil when persistence is off.
func (c *Container) EstimateRepository() estimate.Repository { return c.estimateRepo }

// ContactRepository returns the contact submission repository.
func (c *Container) ContactRepository() contact.Repository { return c.contactRepo }

// API returns the HTTP API.
func (c *Container) API() *sitehttp.SiteAPI { return c.api }

// EstimateCommands returns the estimate command handlers.
func (c *Container) EstimateCommands() *estimatecmd.HandlerSet { return c.estimateCommands }

// CheckCommand returns the content check handler.
func (c *Container) CheckCommand() *contentcmd.CheckContentHandler { return c.checkCommand }

// DB returns the database, nil when storage is disabled.
func (c *Container) DB() *bun.DB { return c.bunDB }

// Close releases the database when the container opened it.
func (c *Container) Close() error {
	if c == nil || c.bunDB == nil || !c.ownsDB {
		return nil
	}
	err := c.bunDB.Close()
	c.bunDB = nil
	return err
}

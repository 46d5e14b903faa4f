package runtimeconfig

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"
)

var (
	ErrServerAddrRequired        = errors.New("site config: server address is required")
	ErrContentDirRequired        = errors.New("site config: content directory is required")
	ErrContentLocalesRequired    = errors.New("site config: at least one content locale is required")
	ErrDefaultLocaleUnknown      = errors.New("site config: default locale must be one of the content locales")
	ErrRendererInvalid           = errors.New("site config: content renderer is invalid")
	ErrPriceBandInvalid          = errors.New("site config: estimate price band must be between 0 and 1")
	ErrStorageDriverInvalid      = errors.New("site config: storage driver is invalid")
	ErrStorageDSNRequired        = errors.New("site config: storage dsn is required when storage is enabled")
	ErrEstimatePersistNeedsStore = errors.New("site config: estimate persistence requires storage to be enabled")
	ErrLoggingLevelInvalid       = errors.New("site config: logging level is invalid")
	ErrLoggingFormatInvalid      = errors.New("site config: logging format is invalid")
)

// Config aggregates the runtime settings of the site API.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Content  ContentConfig  `mapstructure:"content"`
	Routes   RoutesConfig   `mapstructure:"routes"`
	Estimate EstimateConfig `mapstructure:"estimate"`
	Storage  StorageConfig  `mapstructure:"storage"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

// ServerConfig captures HTTP listener settings.
type ServerConfig struct {
	Addr            string        `mapstructure:"addr"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	IdleTimeout     time.Duration `mapstructure:"idle_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	MaxBodyBytes    int64         `mapstructure:"max_body_bytes"`
}

// ContentConfig locates the Markdown content tree and selects the renderer.
type ContentConfig struct {
	Dir           string   `mapstructure:"dir"`
	Locales       []string `mapstructure:"locales"`
	DefaultLocale string   `mapstructure:"default_locale"`
	Renderer      string   `mapstructure:"renderer"`
	Extensions    []string `mapstructure:"extensions"`
	HardWraps     bool     `mapstructure:"hard_wraps"`
	SafeMode      bool     `mapstructure:"safe_mode"`
}

// RoutesConfig controls permalink generation.
type RoutesConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	BaseURL string `mapstructure:"base_url"`
}

// EstimateConfig tunes the estimate service.
type EstimateConfig struct {
	PriceBand float64 `mapstructure:"price_band"`
	Persist   bool    `mapstructure:"persist"`
}

// StorageConfig selects the optional database.
type StorageConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Driver  string `mapstructure:"driver"`
	DSN     string `mapstructure:"dsn"`
}

// LoggingConfig captures go-logger options.
type LoggingConfig struct {
	Level     string   `mapstructure:"level"`
	Format    string   `mapstructure:"format"`
	AddSource bool     `mapstructure:"add_source"`
	Focus     []string `mapstructure:"focus"`
}

// DefaultConfig returns the settings used when nothing is configured.
func DefaultConfig() Config {
	return Config{
		Server: ServerConfig{
			Addr:            ":8080",
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    15 * time.Second,
			IdleTimeout:     60 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			MaxBodyBytes:    1 << 20,
		},
		Content: ContentConfig{
			Dir:           "public/content",
			Locales:       []string{"nl", "en"},
			DefaultLocale: "nl",
			Renderer:      "site",
		},
		Routes: RoutesConfig{
			Enabled: true,
		},
		Estimate: EstimateConfig{
			PriceBand: 0.10,
		},
		Storage: StorageConfig{
			Driver: "sqlite3",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// Validate performs high-level consistency checks.
func (cfg Config) Validate() error {
	if strings.TrimSpace(cfg.Server.Addr) == "" {
		return ErrServerAddrRequired
	}
	if strings.TrimSpace(cfg.Content.Dir) == "" {
		return ErrContentDirRequired
	}
	locales := cfg.Content.NormalizedLocales()
	if len(locales) == 0 {
		return ErrContentLocalesRequired
	}
	if !slices.Contains(locales, strings.ToLower(strings.TrimSpace(cfg.Content.DefaultLocale))) {
		return fmt.Errorf("%w: %s", ErrDefaultLocaleUnknown, cfg.Content.DefaultLocale)
	}
	if !isSupportedRenderer(cfg.Content.Renderer) {
		return fmt.Errorf("%w: %s", ErrRendererInvalid, cfg.Content.Renderer)
	}
	if cfg.Estimate.PriceBand <= 0 || cfg.Estimate.PriceBand >= 1 {
		return fmt.Errorf("%w: %v", ErrPriceBandInvalid, cfg.Estimate.PriceBand)
	}
	if cfg.Storage.Enabled {
		if !isSupportedDriver(cfg.Storage.Driver) {
			return fmt.Errorf("%w: %s", ErrStorageDriverInvalid, cfg.Storage.Driver)
		}
		if strings.TrimSpace(cfg.Storage.DSN) == "" {
			return ErrStorageDSNRequired
		}
	}
	if cfg.Estimate.Persist && !cfg.Storage.Enabled {
		return ErrEstimatePersistNeedsStore
	}
	if level := strings.TrimSpace(cfg.Logging.Level); level != "" && !isSupportedLevel(level) {
		return fmt.Errorf("%w: %s", ErrLoggingLevelInvalid, level)
	}
	if format := strings.TrimSpace(cfg.Logging.Format); format != "" && !isSupportedFormat(format) {
		return fmt.Errorf("%w: %s", ErrLoggingFormatInvalid, format)
	}
	return nil
}

// NormalizedLocales returns the configured locales lowercased and deduplicated.
func (c ContentConfig) NormalizedLocales() []string {
	out := make([]string, 0, len(c.Locales))
	for _, locale := range c.Locales {
		code := strings.ToLower(strings.TrimSpace(locale))
		if code == "" || slices.Contains(out, code) {
			continue
		}
		out = append(out, code)
	}
	return out
}

func isSupportedRenderer(renderer string) bool {
	switch strings.ToLower(strings.TrimSpace(renderer)) {
	case "", "site", "goldmark":
		return true
	default:
		return false
	}
}

func isSupportedDriver(driver string) bool {
	switch strings.ToLower(strings.TrimSpace(driver)) {
	case "", "sqlite", "sqlite3", "postgres", "postgresql", "pg":
		return true
	default:
		return false
	}
}

func isSupportedLevel(level string) bool {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal":
		return true
	default:
		return false
	}
}

func isSupportedFormat(format string) bool {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json", "console", "pretty":
		return true
	default:
		return false
	}
}

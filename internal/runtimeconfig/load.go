package runtimeconfig

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. AGENCY_SERVER_ADDR.
const EnvPrefix = "AGENCY"

// LoadOptions controls where configuration is read from.
type LoadOptions struct {
	// File is an explicit config file. When set it must exist.
	File string
	// SearchPaths are scanned for config.yaml when File is empty.
	SearchPaths []string
}

// Load reads defaults, an optional YAML file and AGENCY_* environment
// variables, in increasing order of precedence. It returns the config file
// used, if any.
func Load(opts LoadOptions) (Config, string, error) {
	v := viper.New()
	setDefaults(v, DefaultConfig())

	if opts.File != "" {
		v.SetConfigFile(opts.File)
	} else {
		paths := opts.SearchPaths
		if len(paths) == 0 {
			paths = []string{"."}
		}
		for _, path := range paths {
			v.AddConfigPath(path)
		}
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	used := ""
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) || opts.File != "" {
			return Config{}, "", fmt.Errorf("site config: read %s: %w", opts.File, err)
		}
	} else {
		used = v.ConfigFileUsed()
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, used, fmt.Errorf("site config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, used, err
	}
	return cfg, used, nil
}

// setDefaults registers every key so AutomaticEnv can override it.
func setDefaults(v *viper.Viper, cfg Config) {
	v.SetDefault("server.addr", cfg.Server.Addr)
	v.SetDefault("server.read_timeout", cfg.Server.ReadTimeout)
	v.SetDefault("server.write_timeout", cfg.Server.WriteTimeout)
	v.SetDefault("server.idle_timeout", cfg.Server.IdleTimeout)
	v.SetDefault("server.shutdown_timeout", cfg.Server.ShutdownTimeout)
	v.SetDefault("server.max_body_bytes", cfg.Server.MaxBodyBytes)

	v.SetDefault("content.dir", cfg.Content.Dir)
	v.SetDefault("content.locales", cfg.Content.Locales)
	v.SetDefault("content.default_locale", cfg.Content.DefaultLocale)
	v.SetDefault("content.renderer", cfg.Content.Renderer)
	v.SetDefault("content.extensions", cfg.Content.Extensions)
	v.SetDefault("content.hard_wraps", cfg.Content.HardWraps)
	v.SetDefault("content.safe_mode", cfg.Content.SafeMode)

	v.SetDefault("routes.enabled", cfg.Routes.Enabled)
	v.SetDefault("routes.base_url", cfg.Routes.BaseURL)

	v.SetDefault("estimate.price_band", cfg.Estimate.PriceBand)
	v.SetDefault("estimate.persist", cfg.Estimate.Persist)

	v.SetDefault("storage.enabled", cfg.Storage.Enabled)
	v.SetDefault("storage.driver", cfg.Storage.Driver)
	v.SetDefault("storage.dsn", cfg.Storage.DSN)

	v.SetDefault("logging.level", cfg.Logging.Level)
	v.SetDefault("logging.format", cfg.Logging.Format)
	v.SetDefault("logging.add_source", cfg.Logging.AddSource)
	v.SetDefault("logging.focus", cfg.Logging.Focus)
}

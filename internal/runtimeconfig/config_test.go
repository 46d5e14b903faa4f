package runtimeconfig_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-agency-site/internal/runtimeconfig"
)

func TestDefaultConfigIsValid(t *testing.T) {
	if err := runtimeconfig.DefaultConfig().Validate(); err != nil {
		t.Fatalf("Validate() returned unexpected error: %v", err)
	}
}

func TestConfigValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*runtimeconfig.Config)
		want   error
	}{
		{"addr", func(c *runtimeconfig.Config) { c.Server.Addr = " " }, runtimeconfig.ErrServerAddrRequired},
		{"content dir", func(c *runtimeconfig.Config) { c.Content.Dir = "" }, runtimeconfig.ErrContentDirRequired},
		{"locales", func(c *runtimeconfig.Config) { c.Content.Locales = []string{" "} }, runtimeconfig.ErrContentLocalesRequired},
		{"default locale", func(c *runtimeconfig.Config) { c.Content.DefaultLocale = "de" }, runtimeconfig.ErrDefaultLocaleUnknown},
		{"renderer", func(c *runtimeconfig.Config) { c.Content.Renderer = "pandoc" }, runtimeconfig.ErrRendererInvalid},
		{"band", func(c *runtimeconfig.Config) { c.Estimate.PriceBand = 1.2 }, runtimeconfig.ErrPriceBandInvalid},
		{"driver", func(c *runtimeconfig.Config) {
			c.Storage.Enabled = true
			c.Storage.Driver = "oracle"
			c.Storage.DSN = "x"
		}, runtimeconfig.ErrStorageDriverInvalid},
		{"dsn", func(c *runtimeconfig.Config) { c.Storage.Enabled = true }, runtimeconfig.ErrStorageDSNRequired},
		{"persist", func(c *runtimeconfig.Config) { c.Estimate.Persist = true }, runtimeconfig.ErrEstimatePersistNeedsStore},
		{"level", func(c *runtimeconfig.Config) { c.Logging.Level = "loud" }, runtimeconfig.ErrLoggingLevelInvalid},
		{"format", func(c *runtimeconfig.Config) { c.Logging.Format = "xml" }, runtimeconfig.ErrLoggingFormatInvalid},
	}

	for _, tc := range cases {
		cfg := runtimeconfig.DefaultConfig()
		tc.mutate(&cfg)
		if err := cfg.Validate(); !errors.Is(err, tc.want) {
			t.Fatalf("%s: expected %v, got %v", tc.name, tc.want, err)
		}
	}
}

func TestNormalizedLocales(t *testing.T) {
	cfg := runtimeconfig.ContentConfig{Locales: []string{" NL", "en", "nl", ""}}
	if diff := cmp.Diff([]string{"nl", "en"}, cfg.NormalizedLocales()); diff != "" {
		t.Fatalf("unexpected locales (-want +got):\n%s", diff)
	}
}

func TestLoadDefaultsWithoutFile(t *testing.T) {
	cfg, used, err := runtimeconfig.Load(runtimeconfig.LoadOptions{SearchPaths: []string{t.TempDir()}})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if used != "" {
		t.Fatalf("expected no config file, got %q", used)
	}
	defaults := runtimeconfig.DefaultConfig()
	if cfg.Server != defaults.Server {
		t.Fatalf("expected default server config, got %#v", cfg.Server)
	}
	if diff := cmp.Diff(defaults.Content.Locales, cfg.Content.Locales); diff != "" {
		t.Fatalf("unexpected locales (-want +got):\n%s", diff)
	}
	if cfg.Content.Dir != defaults.Content.Dir || cfg.Estimate != defaults.Estimate || cfg.Storage != defaults.Storage {
		t.Fatalf("expected defaults, got %#v", cfg)
	}
}

func TestLoadFileAndEnvironment(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	data := []byte(`
server:
  addr: ":9090"
  shutdown_timeout: 3s
content:
  dir: ./content
  renderer: goldmark
estimate:
  price_band: 0.05
storage:
  enabled: true
  dsn: "file:site.db"
`)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("AGENCY_LOGGING_LEVEL", "debug")
	t.Setenv("AGENCY_ESTIMATE_PERSIST", "true")

	cfg, used, err := runtimeconfig.Load(runtimeconfig.LoadOptions{File: path})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if used != path {
		t.Fatalf("expected config file %q, got %q", path, used)
	}
	if cfg.Server.Addr != ":9090" || cfg.Server.ShutdownTimeout != 3*time.Second {
		t.Fatalf("unexpected server config %#v", cfg.Server)
	}
	if cfg.Content.Renderer != "goldmark" || cfg.Content.DefaultLocale != "nl" {
		t.Fatalf("unexpected content config %#v", cfg.Content)
	}
	if cfg.Estimate.PriceBand != 0.05 || !cfg.Estimate.Persist {
		t.Fatalf("unexpected estimate config %#v", cfg.Estimate)
	}
	if cfg.Logging.Level != "debug" {
		t.Fatalf("expected env override, got %q", cfg.Logging.Level)
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, _, err := runtimeconfig.Load(runtimeconfig.LoadOptions{File: filepath.Join(t.TempDir(), "missing.yaml")})
	if err == nil {
		t.Fatalf("expected error for missing explicit file")
	}
}

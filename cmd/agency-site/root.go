package main

import (
	"strings"

	"github.com/spf13/cobra"

	site "github.com/goliatone/go-agency-site"
)

type rootOptions struct {
	configFile string
	contentDir string
	logLevel   string
	logFormat  string
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "agency-site",
		Short:         "Content and estimate API for the agency website",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := cmd.PersistentFlags()
	flags.StringVarP(&opts.configFile, "config", "c", "", "config file (defaults to ./config.yaml when present)")
	flags.StringVar(&opts.contentDir, "content-dir", "", "content root, overrides content.dir")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level, overrides logging.level")
	flags.StringVar(&opts.logFormat, "log-format", "", "log format (json, console, pretty)")

	cmd.AddCommand(
		newServeCommand(opts),
		newEstimateCommand(opts),
		newCheckCommand(opts),
		newRenderCommand(opts),
		newEstimatesCommand(opts),
		newInboxCommand(opts),
	)
	return cmd
}

// loadConfig reads the config file and environment, then applies flag overrides.
func (o *rootOptions) loadConfig() (site.Config, error) {
	cfg, _, err := site.LoadConfig(site.LoadOptions{File: o.configFile})
	if err != nil {
		return site.Config{}, err
	}
	if dir := strings.TrimSpace(o.contentDir); dir != "" {
		cfg.Content.Dir = dir
	}
	if level := strings.TrimSpace(o.logLevel); level != "" {
		cfg.Logging.Level = level
	}
	if format := strings.TrimSpace(o.logFormat); format != "" {
		cfg.Logging.Format = format
	}
	return cfg, cfg.Validate()
}

func (o *rootOptions) newModule(mutate func(*site.Config)) (*site.Module, site.Config, error) {
	cfg, err := o.loadConfig()
	if err != nil {
		return nil, site.Config{}, err
	}
	if mutate != nil {
		mutate(&cfg)
	}
	module, err := site.New(cfg)
	if err != nil {
		return nil, site.Config{}, err
	}
	return module, cfg, nil
}

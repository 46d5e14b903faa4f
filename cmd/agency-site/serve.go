package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	site "github.com/goliatone/go-agency-site"
)

func newServeCommand(root *rootOptions) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			module, cfg, err := root.newModule(func(c *site.Config) {
				if addr != "" {
					c.Server.Addr = addr
				}
			})
			if err != nil {
				return err
			}
			defer module.Close()

			handler, err := module.Handler()
			if err != nil {
				return err
			}

			logger := module.Logger("site.server")
			srv := &http.Server{
				Addr:         cfg.Server.Addr,
				Handler:      handler,
				ReadTimeout:  cfg.Server.ReadTimeout,
				WriteTimeout: cfg.Server.WriteTimeout,
				IdleTimeout:  cfg.Server.IdleTimeout,
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			errCh := make(chan error, 1)
			go func() {
				logger.Info("site.server.listening", "addr", srv.Addr, "content_dir", cfg.Content.Dir)
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					errCh <- err
				}
				close(errCh)
			}()

			select {
			case err := <-errCh:
				return err
			case <-ctx.Done():
			}

			logger.Info("site.server.shutting_down")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				return err
			}
			logger.Info("site.server.stopped")
			return nil
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address, overrides server.addr")
	return cmd
}

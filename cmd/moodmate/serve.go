package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/ewilliams-labs/moodmate/internal/adapters/rest"
	"github.com/ewilliams-labs/moodmate/internal/logging"
)

func newServeCommand(ctx *commandContext) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve classify, recommend, quote and suggest over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			svc, err := ctx.orchestrator()
			if err != nil {
				return err
			}
			if addr == "" {
				addr = cfg.Server.Addr
			}

			if !cfg.Spotify.HasCredentials() {
				logging.Warn().Msg("SPOTIFY_CLIENT_ID or SPOTIFY_CLIENT_SECRET not set; recommendations will be unavailable")
			}

			handler := rest.NewHandler(svc, rest.Options{
				CatalogConfigured: cfg.Spotify.HasCredentials(),
				DefaultModel:      cfg.Ollama.Model,
			})

			srv := &http.Server{
				Addr:              addr,
				Handler:           handler,
				ReadHeaderTimeout: 15 * time.Second,
			}

			serverErr := make(chan error, 1)
			go func() {
				err := srv.ListenAndServe()
				if err != nil && !errors.Is(err, http.ErrServerClosed) {
					serverErr <- err
					return
				}
				serverErr <- nil
			}()

			logging.Info().
				Str("addr", addr).
				Str("model", cfg.Ollama.Model).
				Bool("catalog_configured", cfg.Spotify.HasCredentials()).
				Msg("moodmate API listening")

			sigCtx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			select {
			case err := <-serverErr:
				return err
			case <-sigCtx.Done():
				logging.Info().Msg("shutting down server")
				shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
				defer cancel()
				if err := srv.Shutdown(shutdownCtx); err != nil {
					logging.Error().Err(err).Msg("shutdown error")
					return err
				}
				return <-serverErr
			}
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (default from config)")
	return cmd
}

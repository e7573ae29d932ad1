package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/DOCtorActoAntohich/fsa/internal/cli"
	httpAdapter "github.com/DOCtorActoAntohich/fsa/pkg/adapters/http"
	"github.com/DOCtorActoAntohich/fsa/pkg/observability"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long: `Exposes validation, regex synthesis and diagrams as a JSON API over HTTP,
with the OpenAPI document at /openapi.yaml and Prometheus metrics at /metrics.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := setup(cmd)
		if err != nil {
			return err
		}

		cfg.MaxLength = cfg.ServerMaxLength()

		ctx := cli.NewSignalContext(cmd.Context())
		defer ctx.Cancel()

		metrics := observability.NewMetrics()
		engine, closeEngine, err := cli.NewEngine(ctx, cfg, logger, metrics.Hooks())
		if err != nil {
			return err
		}
		defer closeEngine()

		handler, err := httpAdapter.NewHandler(engine,
			httpAdapter.WithLogger(logger),
			httpAdapter.WithMetrics(metrics.Handler()),
			httpAdapter.WithRequestTimeout(cfg.HTTP.Timeout),
		)
		if err != nil {
			return err
		}

		srv := &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.HTTP.Port),
			Handler:           handler,
			ReadHeaderTimeout: 10 * time.Second,
		}

		// Channel to listen for errors coming from the listener.
		serverErrors := make(chan error, 1)

		go func() {
			logger.Info("Starting FSA Server", "address", srv.Addr, "cache", cfg.Cache.Driver,
				"max_length", cfg.MaxLength, "timeout", cfg.HTTP.Timeout)
			serverErrors <- srv.ListenAndServe()
		}()

		select {
		case err := <-serverErrors:
			return fmt.Errorf("server error: %w", err)

		case <-ctx.Done():
			logger.Info("Start shutdown", "signal", ctx.Signal())

			// Give outstanding requests a deadline for completion.
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			if err := srv.Shutdown(shutdownCtx); err != nil {
				logger.Warn("Graceful shutdown did not complete", "timeout", 5*time.Second, "error", err)
				if err := srv.Close(); err != nil {
					return fmt.Errorf("error killing server: %w", err)
				}
			}
			logger.Info("FSA Server stopped gracefully")
			return nil
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().IntP("port", "p", 8080, "Port to listen on")
	addServerEngineFlags(serveCmd)
}

package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/3-lines-studio/folio"
	"github.com/3-lines-studio/folio/internal/adapters/env"
	"github.com/3-lines-studio/folio/internal/core"
	"github.com/3-lines-studio/folio/internal/logging"
	"github.com/3-lines-studio/folio/internal/metrics"
)

const shutdownTimeout = 5 * time.Second

func newServeCmd(opts *rootOptions) *cobra.Command {
	var (
		addr string
		dev  bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve pages with server-side rendering",
		Long: `Serve pages with server-side rendering.

In dev mode (--dev or FOLIO_DEV=1) the source shell is re-read on every
request. Otherwise the shell written by 'folio export' is required.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("addr") {
				cfg.Server.Addr = addr
			}

			mode := env.DetectMode()
			if dev {
				mode = core.ModeDev
			}

			logger, err := logging.New(mode)
			if err != nil {
				return fmt.Errorf("failed to create logger: %w", err)
			}
			defer func() { _ = logger.Sync() }()

			appOpts := []folio.Option{folio.WithLogger(logger), folio.WithMode(mode)}
			if cfg.Server.Metrics {
				appOpts = append(appOpts, folio.WithMetrics(metrics.NewCollector()))
			}

			app, err := folio.New(cfg, appOpts...)
			if err != nil {
				return err
			}
			handler, err := app.Handler()
			if err != nil {
				return err
			}

			logger.Info("starting folio",
				zap.String("mode", mode.String()),
				zap.String("addr", cfg.Server.Addr),
				zap.Int("posts", len(app.Store().Posts())),
			)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return serve(ctx, cfg.Server.Addr, handler, logger)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides server.addr)")
	cmd.Flags().BoolVar(&dev, "dev", false, "dev mode: read the source shell on every request")
	return cmd
}

// serve runs the server until ctx is done, then shuts it down gracefully.
func serve(ctx context.Context, addr string, handler http.Handler, logger *zap.Logger) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("listening", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const shutdownGrace = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		logger.Info("starting", cfg.Fields()...)
		a, err := newApp(cfg, logger)
		if err != nil {
			return err
		}
		defer func() {
			if err := a.close(); err != nil {
				logger.Warn("close database", zap.Error(err))
			}
		}()

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		return serve(ctx, a.echo(), ":"+cfg.Port, logger)
	},
}

// serve runs e on addr until ctx is done, then shuts it down gracefully.
func serve(ctx context.Context, e *echo.Echo, addr string, log *zap.Logger) error {
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("listening", zap.String("addr", addr))
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		log.Info("shutting down")
		sctx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
		defer cancel()
		return e.Shutdown(sctx)
	})
	return g.Wait()
}

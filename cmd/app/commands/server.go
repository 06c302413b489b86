package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"github.com/allisson/legacyvault/internal/app"
	"github.com/allisson/legacyvault/internal/config"
)

// runnable is a server that blocks in Start until Shutdown is called.
type runnable interface {
	Start(ctx context.Context) error
	Shutdown(ctx context.Context) error
}

// RunServer starts the API server and, when metrics are enabled, the metrics server.
// Blocks until SIGINT/SIGTERM or until one of the servers fails, then shuts both down
// within DBConnMaxLifetime.
func RunServer(ctx context.Context, version string) error {
	cfg := config.Load()

	gin.SetMode(cfg.GetGinMode())

	container := app.NewContainer(cfg)

	logger := container.Logger()
	logger.Info("starting server", slog.String("version", version))

	defer closeContainer(container, logger)

	server, err := container.HTTPServer()
	if err != nil {
		return fmt.Errorf("failed to initialize HTTP server: %w", err)
	}

	metricsServer, err := container.MetricsServer()
	if err != nil {
		return fmt.Errorf("failed to initialize metrics server: %w", err)
	}

	servers := []runnable{server}
	if metricsServer != nil {
		servers = append(servers, metricsServer)
	}

	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	return serve(ctx, logger, cfg.DBConnMaxLifetime, servers...)
}

// serve runs every server until ctx is done or one of them fails. A server that
// fails cancels the others.
func serve(ctx context.Context, logger *slog.Logger, shutdownTimeout time.Duration, servers ...runnable) error {
	g, gctx := errgroup.WithContext(ctx)

	for _, srv := range servers {
		g.Go(func() error {
			if err := srv.Start(gctx); err != nil {
				return err
			}
			// A server that stops on its own still takes the others down.
			if gctx.Err() == nil {
				return errors.New("server stopped unexpectedly")
			}
			return nil
		})
	}

	g.Go(func() error {
		<-gctx.Done()
		if ctx.Err() != nil {
			logger.Info("shutdown signal received")
		}

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer shutdownCancel()

		var shutdownErrors []error
		for _, srv := range servers {
			if err := srv.Shutdown(shutdownCtx); err != nil {
				shutdownErrors = append(shutdownErrors, err)
			}
		}
		return errors.Join(shutdownErrors...)
	})

	if err := g.Wait(); err != nil {
		logger.Error("server stopped with error", slog.Any("error", err))
		return err
	}
	return nil
}

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

	"github.com/allisson/mediport/internal/app"
	"github.com/allisson/mediport/internal/config"
)

// Lifecycle is a server that blocks in Start until Shutdown is called.
type Lifecycle interface {
	Start(ctx context.Context) error
	Shutdown(ctx context.Context) error
}

// RunServer starts the gateway and, when enabled, the metrics server. It blocks until
// SIGINT/SIGTERM or a server failure, then stops both within DBConnMaxLifetime.
func RunServer(ctx context.Context, version string) error {
	cfg := config.Load()

	gin.SetMode(cfg.GetGinMode())

	container := app.NewContainer(cfg)
	logger := container.Logger()
	logger.Info("starting server", slog.String("version", version))

	defer closeContainer(container, logger)

	server, err := container.HTTPServer(ctx)
	if err != nil {
		return fmt.Errorf("failed to initialize HTTP server: %w", err)
	}

	servers := map[string]Lifecycle{"api server": server}

	metricsServer, err := container.MetricsServer()
	if err != nil {
		return fmt.Errorf("failed to initialize metrics server: %w", err)
	}
	if metricsServer != nil {
		servers["metrics server"] = metricsServer
	}

	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	return Serve(ctx, logger, cfg.DBConnMaxLifetime, servers)
}

// Serve runs every server until ctx is done or one of them fails, then shuts all of them
// down within shutdownTimeout. A failing server's error is returned joined with any
// shutdown errors.
func Serve(ctx context.Context, logger *slog.Logger, shutdownTimeout time.Duration, servers map[string]Lifecycle) error {
	group, groupCtx := errgroup.WithContext(ctx)

	for name, server := range servers {
		group.Go(func() error {
			if err := server.Start(groupCtx); err != nil {
				return fmt.Errorf("%s error: %w", name, err)
			}
			return nil
		})
	}

	var shutdownErr error
	group.Go(func() error {
		<-groupCtx.Done()
		if ctx.Err() != nil {
			logger.Info("shutdown signal received")
		} else {
			logger.Error("server error, initiating shutdown")
		}

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer shutdownCancel()

		var errs []error
		for name, server := range servers {
			if err := server.Shutdown(shutdownCtx); err != nil {
				errs = append(errs, fmt.Errorf("%s shutdown: %w", name, err))
			}
		}
		shutdownErr = errors.Join(errs...)
		return nil
	})

	if err := group.Wait(); err != nil {
		return errors.Join(err, shutdownErr)
	}
	return shutdownErr
}

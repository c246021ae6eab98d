// cmd/portal-server/main.go
package main

import (
	"context"
	stderrors "errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"college-portal/internal/api"
	"college-portal/internal/common/collation"
	"college-portal/internal/common/config"
	"college-portal/internal/common/logger"
	"college-portal/internal/common/observability"
	"college-portal/internal/common/storage"
)

// retryWithBackoff attempts to execute a function with exponential backoff
func retryWithBackoff(operation func() error, maxRetries int, initialDelay time.Duration, log *zap.Logger, operationName string) error {
	var err error
	delay := initialDelay

	for i := 0; i < maxRetries; i++ {
		err = operation()
		if err == nil {
			return nil
		}

		if i < maxRetries-1 {
			log.Warn(fmt.Sprintf("%s failed, retrying...", operationName),
				zap.Error(err),
				zap.Int("attempt", i+1),
				zap.Int("maxRetries", maxRetries),
				zap.Duration("nextRetryIn", delay),
			)
			time.Sleep(delay)
			delay *= 2
		}
	}

	return fmt.Errorf("%s failed after %d attempts: %w", operationName, maxRetries, err)
}

func main() {
	bootLog := logger.New("info", "console")

	cfg, err := config.Load()
	if err != nil {
		bootLog.Fatal("config load failed", zap.Error(err))
	}

	zapLog := logger.New(cfg.Logging.Level, cfg.Logging.Format, cfg.Logging.Output)
	defer zapLog.Sync()
	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("Starting portal server...",
		zap.String("environment", cfg.App.Environment),
		zap.String("storageDriver", cfg.Storage.Driver),
	)

	obs := observability.New(cfg.App.Name, log)
	defer obs.Shutdown()

	ctx := context.Background()

	// --- Storage backend with retry ---
	var backend *storage.Backend
	err = retryWithBackoff(func() error {
		var err error
		backend, err = storage.Open(ctx, cfg, log)
		return err
	}, 5, 2*time.Second, zapLog, "Storage backend initialization")
	if err != nil {
		zapLog.Fatal("storage unavailable", zap.Error(err))
	}
	defer func() {
		if err := backend.Close(); err != nil {
			zapLog.Error("Error closing storage backend", zap.Error(err))
		}
	}()

	// --- Features and HTTP API ---
	deps, err := api.Build(ctx, cfg, backend, log, obs)
	if err != nil {
		zapLog.Fatal("failed to wire features", zap.Error(err))
	}
	deps.Ready = backend.Ping

	server, err := api.NewServer(deps, &api.Config{
		Locale:       collation.DefaultLocale,
		ReadTimeout:  config.GetDuration(cfg.Server.ReadTimeout),
		WriteTimeout: config.GetDuration(cfg.Server.WriteTimeout),
	})
	if err != nil {
		zapLog.Fatal("failed to create api server", zap.Error(err))
	}

	httpServer := server.HTTPServer(cfg.Server.Address)
	go func() {
		zapLog.Info("API listening", zap.String("address", cfg.Server.Address))
		if err := httpServer.ListenAndServe(); err != nil && !stderrors.Is(err, http.ErrServerClosed) {
			zapLog.Fatal("API server failed", zap.Error(err))
		}
	}()

	// --- Graceful Shutdown ---
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	zapLog.Info("Shutdown signal received, draining requests...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), config.GetDuration(cfg.Server.ShutdownTimeout))
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		zapLog.Error("Error shutting down API server", zap.Error(err))
	}

	zapLog.Info("Portal server stopped gracefully")
}

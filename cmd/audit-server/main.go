// cmd/audit-server/main.go
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/Mattthebillionaire/lead-audit-tool--Kortex-labs/internal/api"
	"github.com/Mattthebillionaire/lead-audit-tool--Kortex-labs/internal/catalog"
	"github.com/Mattthebillionaire/lead-audit-tool--Kortex-labs/internal/common/aws"
	"github.com/Mattthebillionaire/lead-audit-tool--Kortex-labs/internal/common/config"
	"github.com/Mattthebillionaire/lead-audit-tool--Kortex-labs/internal/common/database"
	"github.com/Mattthebillionaire/lead-audit-tool--Kortex-labs/internal/common/logger"
	"github.com/Mattthebillionaire/lead-audit-tool--Kortex-labs/internal/common/observability"
	"github.com/Mattthebillionaire/lead-audit-tool--Kortex-labs/internal/session"
	"github.com/Mattthebillionaire/lead-audit-tool--Kortex-labs/internal/submission"
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
			delay *= 2 // Exponential backoff
		}
	}

	return fmt.Errorf("%s failed after %d attempts: %w", operationName, maxRetries, err)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config load failed: %v\n", err)
		os.Exit(1)
	}

	zapLog := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zapLog.Sync()
	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("Starting audit server...",
		zap.String("environment", cfg.App.Environment),
		zap.String("version", cfg.App.Version),
	)

	obs := observability.New(cfg.App.Name)
	defer obs.Shutdown()

	ctx := context.Background()

	// --- Question catalog ---
	cat := catalog.Default()
	if cfg.Catalog.Path != "" {
		cat, err = catalog.LoadFile(cfg.Catalog.Path)
		if err != nil {
			zapLog.Fatal("catalog file rejected", zap.String("path", cfg.Catalog.Path), zap.Error(err))
		}
		zapLog.Info("external catalog loaded",
			zap.String("path", cfg.Catalog.Path),
			zap.Int("questions", cat.Len()),
		)
	}

	// --- Session store ---
	var store session.Store
	switch cfg.Session.Store {
	case "redis":
		var redisClient *database.RedisClient
		err = retryWithBackoff(func() error {
			var err error
			redisClient, err = database.NewRedis(cfg.Database.Redis)
			if err != nil {
				return err
			}
			return redisClient.Ping(ctx)
		}, 15, 2*time.Second, zapLog, "Redis connection")
		if err != nil {
			zapLog.Fatal("redis failed after retries", zap.Error(err))
		}
		defer redisClient.Close()
		store = session.NewRedisStore(redisClient, cfg.Session.TTLDuration())
		zapLog.Info("Redis session store connected", zap.String("address", cfg.Database.Redis.Address))
	default:
		store = session.NewMemoryStore(cfg.Session.TTLDuration())
		zapLog.Info("using in-memory session store", zap.Duration("ttl", cfg.Session.TTLDuration()))
	}

	// --- Lead notification clients ---
	var emailSender aws.EmailSender
	if cfg.Notifications.Email.Enabled {
		sesClient, err := aws.NewSESClient(ctx, cfg.Notifications.Email.Region)
		if err != nil {
			zapLog.Fatal("SES client init failed", zap.Error(err))
		}
		emailSender = sesClient
		zapLog.Info("SES email notifications enabled", zap.String("region", cfg.Notifications.Email.Region))
	}

	var publisher aws.TopicPublisher
	if cfg.Notifications.SNS.Enabled {
		snsClient, err := aws.NewSNSClient(ctx, cfg.Notifications.SNS.Region)
		if err != nil {
			zapLog.Fatal("SNS client init failed", zap.Error(err))
		}
		publisher = snsClient
		zapLog.Info("SNS lead notifications enabled", zap.String("topic", cfg.Notifications.SNS.TopicARN))
	}

	// --- Submission pipeline ---
	forwarder := submission.NewForwarder(cfg.Submission.Endpoint, cfg.Submission.TimeoutDuration(), log)
	notifier := submission.NewNotifier(emailSender, publisher, cfg.Notifications, log)
	dispatcher := submission.NewAsyncDispatcher(forwarder, notifier, cfg.Submission.TimeoutDuration())

	// --- HTTP server ---
	server := api.NewServer(cfg.Server, cat, store, dispatcher, obs, log)

	go func() {
		if err := server.Start(); err != nil && err != http.ErrServerClosed {
			zapLog.Fatal("server failed", zap.Error(err))
		}
	}()

	zapLog.Info("Audit server started", zap.String("addr", cfg.Server.Addr()))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zapLog.Info("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := server.Stop(shutdownCtx); err != nil {
		zapLog.Error("graceful shutdown failed", zap.Error(err))
	}

	zapLog.Info("Shutdown complete")
}

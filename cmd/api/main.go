package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Dan9191/finplan-service/internal/config"
	"github.com/Dan9191/finplan-service/internal/handler"
	"github.com/Dan9191/finplan-service/internal/notify"
	"github.com/Dan9191/finplan-service/internal/repository"
	"github.com/Dan9191/finplan-service/internal/scheduler"
	"github.com/Dan9191/finplan-service/internal/service"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

func main() {
	// Initialize logger
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})

	// Load configuration
	cfg, err := config.NewConfig()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}
	logLevel, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)
	if cfg.UsesDefaultSecret() {
		logger.Warn("JWT_SECRET is not set, session tokens are signed with the default development secret")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		logger.Fatalf("Failed to open session store: %v", err)
	}
	defer closeStore()
	logger.Infof("Using %s session store", cfg.SessionStore)

	var mailer service.Mailer
	if cfg.MailEnabled() {
		mailer = notify.NewSender(cfg, logger)
	} else {
		logger.Warn("SMTP is not configured, plan e-mails are disabled")
	}

	// Initialize layers
	svc := service.NewService(store, mailer, logger, cfg)
	h := handler.NewHandler(svc, logger)

	sweeper, err := scheduler.NewSweeper(ctx, cfg.SweepSchedule, svc, logger)
	if err != nil {
		logger.Fatalf("Failed to schedule session sweep: %v", err)
	}
	sweeper.Start()
	defer sweeper.Stop()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      h.Router(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Errorf("Server shutdown failed: %v", err)
		}
	}()

	logger.Infof("Starting server on %s", addr)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatalf("Server failed: %v", err)
	}
	logger.Info("Server stopped")
}

// openStore returns the configured session store and a function releasing it
func openStore(ctx context.Context, cfg *config.Config) (repository.SessionStore, func(), error) {
	switch cfg.SessionStore {
	case config.StorePostgres:
		db, err := sql.Open("postgres", cfg.DBConn)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		if err := db.PingContext(ctx); err != nil {
			db.Close()
			return nil, nil, fmt.Errorf("failed to ping database: %w", err)
		}
		store := repository.NewPostgresStore(db)
		if err := store.EnsureSchema(ctx); err != nil {
			db.Close()
			return nil, nil, err
		}
		return store, func() { db.Close() }, nil
	case config.StoreRedis:
		store := repository.NewRedisStore(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err := store.Ping(ctx); err != nil {
			store.Close()
			return nil, nil, err
		}
		return store, func() { store.Close() }, nil
	default:
		return repository.NewMemoryStore(), func() {}, nil
	}
}

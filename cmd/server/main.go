package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq" // PostgreSQL driver
	"github.com/redis/go-redis/v9"

	"github.com/ignite/mersal-sms/internal/api"
	"github.com/ignite/mersal-sms/internal/config"
	"github.com/ignite/mersal-sms/internal/hudhud"
	"github.com/ignite/mersal-sms/internal/pkg/logger"
	"github.com/ignite/mersal-sms/internal/repository/postgres"
	"github.com/ignite/mersal-sms/internal/sender"
	"github.com/ignite/mersal-sms/internal/session"
)

func main() {
	cfg, err := config.LoadFromEnv("config/config.yaml")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.SetLevel(logger.ParseLevel(cfg.Logging.Level))
	if cfg.Logging.RedactPII != nil {
		logger.SetRedactPII(*cfg.Logging.RedactPII)
	}

	if cfg.Database.URL == "" {
		log.Fatal("database URL is required (set DATABASE_URL or database.url)")
	}
	db, err := sql.Open("postgres", cfg.Database.URL)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	pingCtx, pingCancel := context.WithTimeout(context.Background(), 5*time.Second)
	if err := db.PingContext(pingCtx); err != nil {
		log.Fatalf("Failed to reach database: %v", err)
	}
	pingCancel()

	// Sessions live in Redis when configured, in process memory otherwise.
	var (
		sessions    session.Store
		redisClient *redis.Client
	)
	if cfg.Redis.Addr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		sessions = session.NewRedisStore(redisClient, cfg.Upload.SessionTTL())
		logger.Info("session store", "backend", "redis", "addr", cfg.Redis.Addr)
	} else {
		sessions = session.NewMemoryStore(cfg.Upload.SessionTTL())
		logger.Info("session store", "backend", "memory")
	}

	keys := postgres.NewAPIKeyRepo(db)
	logs := postgres.NewSendLogRepo(db)
	gateway := hudhud.NewClient(cfg.Gateway)
	sendSvc := sender.NewService(gateway, keys, logs, sender.NewTemplateService())

	health := api.NewHealthChecker(db, redisClient)
	handlers := api.NewHandlers(sessions, sendSvc, keys, logs, cfg.Upload.MaxFileSize(), health)
	server := api.NewServer(cfg.Server, handlers)

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		logger.Info("server starting", "addr", cfg.Server.Addr(), "gateway", cfg.Gateway.BaseURL)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-done
	logger.Info("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", "error", err)
	}

	if redisClient != nil {
		redisClient.Close()
	}
	logger.Info("server stopped")
}

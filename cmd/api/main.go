// Package main is the entry point for the BudgetEase API server.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/budgetease/backend/config"
	"github.com/budgetease/backend/internal/application/adapter"
	"github.com/budgetease/backend/internal/domain/entity"
	"github.com/budgetease/backend/internal/infra/cache"
	"github.com/budgetease/backend/internal/infra/db"
	"github.com/budgetease/backend/internal/infra/dependency"
	"github.com/budgetease/backend/internal/integration/messaging"
	"github.com/budgetease/backend/internal/integration/persistence"
	"github.com/budgetease/backend/internal/integration/persistence/model"
)

const rateLimitCleanupInterval = 5 * time.Minute

func main() {
	// Load .env file if it exists (development only)
	_ = godotenv.Load()

	// Load configuration
	cfg := config.Load()

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.Log.SlogLevel(),
	}))
	slog.SetDefault(logger)

	slog.Info("Starting BudgetEase API",
		"environment", cfg.Server.Environment,
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
		"db_driver", cfg.Database.Driver,
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Initialize database connection
	database, err := db.NewConnection(&cfg.Database)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := database.Close(); err != nil {
			slog.Error("Failed to close database connection", "error", err)
		}
	}()

	// Run database migrations
	if err := database.AutoMigrate(model.AllModels()...); err != nil {
		slog.Error("Failed to run database migrations", "error", err)
		os.Exit(1)
	}
	if err := persistence.NewCategoryRepository(database.DB()).SeedGlobals(ctx, entity.DefaultCategories()); err != nil {
		slog.Error("Failed to seed default categories", "error", err)
		os.Exit(1)
	}
	slog.Info("Database migrations completed successfully")

	// Optional infrastructure
	var redisClient *redis.Client
	if cfg.Redis.Enabled {
		redisClient, err = cache.NewRedisClient(&cfg.Redis)
		if err != nil {
			slog.Warn("Redis unavailable, rate limiting falls back to in-process counters", "error", err)
		} else {
			defer redisClient.Close()
		}
	}

	publisher := newLedgerPublisher(&cfg.AMQP)
	if closer, ok := publisher.(interface{ Close() error }); ok {
		defer closer.Close()
	}

	injector := dependency.NewInjector(cfg, database.DB(), dependency.Options{
		Redis:     redisClient,
		Publisher: publisher,
		Clock:     adapter.SystemClock{},
	})
	if injector.MemoryStore != nil {
		go injector.MemoryStore.RunCleanup(ctx, rateLimitCleanupInterval)
	}

	engine := injector.Router.Setup(cfg.Server.Environment)

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in a goroutine
	go func() {
		slog.Info("Server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	<-ctx.Done()
	slog.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited properly")
}

// newLedgerPublisher connects to the broker, or discards events when none is configured.
func newLedgerPublisher(cfg *config.AMQPConfig) adapter.LedgerEventPublisher {
	if cfg.URL == "" {
		slog.Info("AMQP_URL not set, ledger events are disabled")
		return messaging.NoopPublisher{}
	}

	publisher, err := messaging.NewAMQPPublisher(cfg.URL, cfg.Exchange)
	if err != nil {
		slog.Warn("AMQP broker unavailable, ledger events are disabled", "error", err)
		return messaging.NoopPublisher{}
	}
	return publisher
}

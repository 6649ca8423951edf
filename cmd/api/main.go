// cmd/api/main.go
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/your-org/gearshop-backend/internal/config"
	"github.com/your-org/gearshop-backend/internal/domain/cart"
	"github.com/your-org/gearshop-backend/internal/domain/catalog"
	"github.com/your-org/gearshop-backend/internal/domain/checkout"
	"github.com/your-org/gearshop-backend/internal/domain/customer"
	"github.com/your-org/gearshop-backend/internal/domain/order"
	"github.com/your-org/gearshop-backend/internal/infrastructure/database/postgres"
	"github.com/your-org/gearshop-backend/internal/infrastructure/database/redis"
	"github.com/your-org/gearshop-backend/internal/interfaces/http"
	"github.com/your-org/gearshop-backend/internal/interfaces/http/routes"
	"github.com/your-org/gearshop-backend/internal/pkg/auth"
	"github.com/your-org/gearshop-backend/internal/pkg/logger"
	"github.com/your-org/gearshop-backend/internal/pkg/notification"
	"github.com/your-org/gearshop-backend/internal/pkg/pdf"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLog := logger.New(cfg)
	appLog.WithField("environment", cfg.App.Environment).
		Infof("Starting %s v%s", cfg.App.Name, cfg.App.Version)

	db, err := postgres.NewConnection(cfg)
	if err != nil {
		appLog.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	redisClient, err := redis.NewConnection(cfg)
	if err != nil {
		appLog.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()

	if err := db.Health(); err != nil {
		appLog.Fatalf("Database health check failed: %v", err)
	}
	if err := redisClient.Health(); err != nil {
		appLog.Fatalf("Redis health check failed: %v", err)
	}

	migration := postgres.NewMigration(db.GetDB())
	if err := migration.RunAutoMigrations(); err != nil {
		appLog.Fatalf("Database migration failed: %v", err)
	}
	if err := migration.CreateIndexes(); err != nil {
		appLog.Warnf("Index creation failed: %v", err)
	}
	if err := migration.SeedCatalog(); err != nil {
		appLog.Warnf("Catalog seeding failed: %v", err)
	}

	// Wire domain services.
	feed := notification.NewFeed(redisClient.GetClient(), appLog)
	catalogService := catalog.NewService(db.GetDB(), redisClient.GetClient(), cfg)
	carts := cart.NewManager(
		cart.NewRedisStore(redisClient.GetClient(), cfg.Session.StateTTL), feed)
	customerRepo := customer.NewGormRepository(db.GetDB())
	sessions := customer.NewManager(
		customer.NewRedisStore(redisClient.GetClient(), cfg.Session.StateTTL),
		customerRepo, carts, feed)
	checkoutService := checkout.NewService(carts, sessions, cfg.Pricing)
	orderService := order.NewService(
		order.NewGormStore(db.GetDB()),
		customerRepo,
		carts,
		sessions,
		order.NewRedisHistory(redisClient.GetClient(), cfg.Session.StateTTL),
		feed,
		cfg.Session.ConfirmationDelay,
		appLog,
	)

	receipts := pdf.NewService(cfg)

	tokens := auth.NewSessionTokenManager(
		cfg.Session.TokenSecret, cfg.Session.TokenExpiry, cfg.App.Name)

	deps := &routes.Dependencies{
		Catalog:  catalogService,
		Carts:    carts,
		Sessions: sessions,
		Checkout: checkoutService,
		Orders:   orderService,
		Receipts: receipts,
		Feed:     feed,
	}

	server := http.NewServer(cfg, db.GetDB(), redisClient.GetClient(), deps, tokens, appLog)

	go func() {
		if err := server.Start(); err != nil {
			appLog.Fatalf("Failed to start HTTP server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	appLog.Info("Shutting down gracefully")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Stop(ctx); err != nil {
		appLog.Errorf("Failed to shutdown HTTP server gracefully: %v", err)
	}

	appLog.Info("Server shutdown completed")
}

package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/pedelocal/pedelocal-order-service/internal/config"
	httpdelivery "github.com/pedelocal/pedelocal-order-service/internal/delivery/http"
	"github.com/pedelocal/pedelocal-order-service/internal/delivery/http/handlers"
	"github.com/pedelocal/pedelocal-order-service/internal/infrastructure/kafka"
	"github.com/pedelocal/pedelocal-order-service/internal/infrastructure/logger"
	"github.com/pedelocal/pedelocal-order-service/internal/infrastructure/metrics"
	"github.com/pedelocal/pedelocal-order-service/internal/infrastructure/migrate"
	"github.com/pedelocal/pedelocal-order-service/internal/infrastructure/postgres"
	"github.com/pedelocal/pedelocal-order-service/internal/infrastructure/postgres/repository"
	cartusecase "github.com/pedelocal/pedelocal-order-service/internal/usecase/cart"
	orderusecase "github.com/pedelocal/pedelocal-order-service/internal/usecase/order"
	settlementusecase "github.com/pedelocal/pedelocal-order-service/internal/usecase/settlement"
	storeusecase "github.com/pedelocal/pedelocal-order-service/internal/usecase/store"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("failed to load .env")
	}
	// Reading config
	cfg := config.MustLoad()
	logger.MustSetup(cfg.LogConfig)

	// Init database
	db := postgres.MustInitDB(cfg)
	if err := migrate.RunMigrations(db, cfg.OrderDB.MigrationsPath); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	// Kafka publisher for order and settlement events
	brokers := []string{fmt.Sprintf("%s:%s", cfg.KafkaService.Host, cfg.KafkaService.Port)}
	pub := kafka.NewDefaultKafkaPublisher(brokers)

	// Repositories
	orderRepo := repository.NewDefaultOrderRepository(db)
	storeRepo := repository.NewDefaultStoreRepository(db)
	settlementRepo := repository.NewDefaultSettlementRepository(db)
	auditSink := repository.NewPGAuditSink(db)

	orderMetrics := metrics.NewOrderMetrics()

	defaultLoc, err := time.LoadLocation(cfg.Marketplace.DefaultTimezone)
	if err != nil {
		log.Fatalf("failed to load default timezone %q: %v", cfg.Marketplace.DefaultTimezone, err)
	}

	// Usecases
	orderUc := orderusecase.NewDefaultOrderUsecase(orderRepo, auditSink, pub, orderMetrics)
	storeUc := storeusecase.NewDefaultStoreUsecase(storeRepo, auditSink, defaultLoc)
	settlementUc := settlementusecase.NewDefaultSettlementUsecase(
		settlementRepo,
		orderRepo,
		storeRepo,
		auditSink,
		pub,
		orderMetrics,
	)
	cartUc := cartusecase.NewDefaultCartUsecase(cartusecase.NewSessionStore(), storeRepo, orderUc, defaultLoc)

	router := httpdelivery.BuildRouter(httpdelivery.RouterDeps{
		OrderHandler:      handlers.NewOrderHandler(orderUc),
		StoreHandler:      handlers.NewStoreHandler(storeUc),
		SettlementHandler: handlers.NewSettlementHandler(settlementUc),
		CartHandler:       handlers.NewCartHandler(cartUc),
		JWTSecret:         cfg.Auth.JWTSecret,
		DB:                db,
	})

	addr := fmt.Sprintf("%s:%s", cfg.HTTPServer.Host, cfg.HTTPServer.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		slog.Info("http server started", "addr", addr, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("failed to serve: %v\n", err)
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("graceful shutdown failed", "error", err.Error())
	}
}

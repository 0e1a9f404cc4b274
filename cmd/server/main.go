package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	httpAdapter "github.com/omDesai-1905/SmartHisab-sub000/internal/adapter/http"
	"github.com/omDesai-1905/SmartHisab-sub000/internal/adapter/http/handler"
	"github.com/omDesai-1905/SmartHisab-sub000/internal/adapter/http/middleware"
	postgresRepo "github.com/omDesai-1905/SmartHisab-sub000/internal/adapter/repository/postgres"
	redisRepo "github.com/omDesai-1905/SmartHisab-sub000/internal/adapter/repository/redis"
	"github.com/omDesai-1905/SmartHisab-sub000/internal/infrastructure/auth"
	"github.com/omDesai-1905/SmartHisab-sub000/internal/infrastructure/config"
	"github.com/omDesai-1905/SmartHisab-sub000/internal/infrastructure/logger"
	"github.com/omDesai-1905/SmartHisab-sub000/internal/infrastructure/metrics"
	"github.com/omDesai-1905/SmartHisab-sub000/internal/infrastructure/postgres"
	"github.com/omDesai-1905/SmartHisab-sub000/internal/infrastructure/redis"
	"github.com/omDesai-1905/SmartHisab-sub000/internal/usecase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	log.Logger = logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
	zerolog.DefaultContextLogger = &log.Logger

	ctx := context.Background()

	pool, err := postgres.NewPool(ctx, cfg.DatabaseURL, cfg.DatabaseMaxConns, cfg.DatabaseMinConns)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	defer pool.Close()
	log.Info().Msg("connected to postgres")

	if err := postgres.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	redisClient, err := redis.NewClient(ctx, cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer redisClient.Close()
	log.Info().Msg("connected to redis")

	// Repositories and infrastructure
	txManager := postgresRepo.NewTxManager(pool)
	retrier := postgresRepo.NewRetrier()
	userRepo := postgresRepo.NewUserRepository(pool)
	customerRepo := postgresRepo.NewCustomerRepository(pool)
	txnRepo := postgresRepo.NewTransactionRepository(pool)
	cashbookRepo := postgresRepo.NewCashbookRepository(pool)
	messageRepo := postgresRepo.NewMessageRepository(pool)
	activityRepo := postgresRepo.NewActivityRepository(pool)
	cache := redisRepo.NewCache(redisClient)
	idempotencyStore := redisRepo.NewIdempotencyStore(redisClient)
	idGen := postgresRepo.NewULIDGenerator()
	businessMetrics := metrics.New()

	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTExpiration)

	// Use cases
	userUC := usecase.NewUserUseCase(userRepo, idGen).WithMetrics(businessMetrics)
	customerUC := usecase.NewCustomerUseCase(
		txManager, retrier, customerRepo, txnRepo, activityRepo, cache, idGen,
	).WithMetrics(businessMetrics)
	txnUC := usecase.NewTransactionUseCase(txnRepo, customerRepo, activityRepo, cache, idGen).
		WithMetrics(businessMetrics)
	cashbookUC := usecase.NewCashbookUseCase(cashbookRepo, activityRepo, cache, idGen).
		WithMetrics(businessMetrics)
	analyticsUC := usecase.NewAnalyticsUseCase(customerRepo, txnRepo, cashbookRepo, cache).
		WithMetrics(businessMetrics)
	messageUC := usecase.NewMessageUseCase(messageRepo, customerRepo, idGen).
		WithMetrics(businessMetrics)
	activityUC := usecase.NewActivityUseCase(activityRepo)

	// Router
	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		AuthHandler:        handler.NewAuthHandler(userUC, customerUC, jwtManager),
		CustomerHandler:    handler.NewCustomerHandler(customerUC, txnUC),
		TransactionHandler: handler.NewTransactionHandler(txnUC),
		CashbookHandler:    handler.NewCashbookHandler(cashbookUC),
		AnalyticsHandler:   handler.NewAnalyticsHandler(analyticsUC),
		MessageHandler:     handler.NewMessageHandler(messageUC),
		PortalHandler:      handler.NewPortalHandler(txnUC, messageUC),
		AdminHandler:       handler.NewAdminHandler(userUC),
		ActivityHandler:    handler.NewActivityHandler(activityUC),
		HealthHandler:      handler.NewHealthHandler(pool, redisClient),

		JWTManager:       jwtManager,
		IdempotencyStore: idempotencyStore,
		RateLimiter:      middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst),
		AllowedOrigins:   cfg.AllowedOrigins,
		Logger:           middleware.NewLoggingMiddleware(log.Logger),
	})

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	go func() {
		log.Info().Str("port", cfg.HTTPPort).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}

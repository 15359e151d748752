package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	httpAdapter "github.com/duarte/gocontas/internal/adapter/http"
	"github.com/duarte/gocontas/internal/adapter/http/handler"
	"github.com/duarte/gocontas/internal/adapter/http/middleware"
	postgresRepo "github.com/duarte/gocontas/internal/adapter/repository/postgres"
	redisRepo "github.com/duarte/gocontas/internal/adapter/repository/redis"
	"github.com/duarte/gocontas/internal/infrastructure/config"
	"github.com/duarte/gocontas/internal/infrastructure/logger"
	"github.com/duarte/gocontas/internal/infrastructure/metrics"
	"github.com/duarte/gocontas/internal/infrastructure/postgres"
	"github.com/duarte/gocontas/internal/infrastructure/redis"
	"github.com/duarte/gocontas/internal/usecase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})

	ctx := context.Background()

	if err := postgres.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	pool, err := postgres.NewPoolWithConfig(ctx, postgres.PoolConfig{
		DatabaseURL:    cfg.DatabaseURL,
		MaxConns:       cfg.DatabaseMaxConns,
		MinConns:       cfg.DatabaseMinConns,
		ConnectTimeout: cfg.DatabaseTimeout,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	defer pool.Close()
	log.Info().Msg("connected to postgres")

	redisClient, err := redis.NewClient(ctx, cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer redisClient.Close()
	log.Info().Msg("connected to redis")

	m := metrics.New()

	// Repositories
	txManager := postgresRepo.NewTxManager(pool)
	cashAccountRepo := postgresRepo.NewCashAccountRepository(pool)
	categoryRepo := postgresRepo.NewCategoryRepository(pool)
	partyRepo := postgresRepo.NewPartyRepository(pool)
	obligationRepo := postgresRepo.NewObligationRepository(pool)
	entryRepo := postgresRepo.NewLedgerEntryRepository(pool)
	paramRepo := postgresRepo.NewParameterRepository(pool)
	idGen := postgresRepo.NewULIDGenerator()
	docRefs := postgresRepo.NewRandomDocRefGenerator()
	retrier := postgresRepo.NewRetrier()

	cache := redisRepo.NewCache(redisClient)
	idempotencyStore := redisRepo.NewIdempotencyStore(redisClient)

	// Use cases
	cashAccountUC := usecase.NewCashAccountUseCase(cashAccountRepo, entryRepo, idGen)
	categoryUC := usecase.NewCategoryUseCase(categoryRepo, idGen)
	partyUC := usecase.NewPartyUseCase(partyRepo, idGen)
	obligationUC := usecase.NewObligationUseCase(txManager, obligationRepo, categoryRepo, partyRepo, idGen, docRefs, m)
	settlementUC := usecase.NewSettlementUseCase(txManager, obligationRepo, cashAccountRepo, categoryRepo, entryRepo, idGen, m)
	ledgerUC := usecase.NewLedgerUseCase(txManager, entryRepo, cashAccountRepo, categoryRepo, obligationRepo, idGen, m)
	cashFlowUC := usecase.NewCashFlowUseCase(entryRepo, cashAccountRepo, paramRepo, cache, retrier)
	dashboardUC := usecase.NewDashboardUseCase(partyRepo, entryRepo, obligationRepo)
	parameterUC := usecase.NewParameterUseCase(paramRepo, cache)

	// Handlers
	routerCfg := httpAdapter.RouterConfig{
		CashAccountHandler: handler.NewCashAccountHandler(cashAccountUC),
		CategoryHandler:    handler.NewCategoryHandler(categoryUC),
		PartyHandler:       handler.NewPartyHandler(partyUC),
		ObligationHandler:  handler.NewObligationHandler(obligationUC, settlementUC),
		EntryHandler:       handler.NewEntryHandler(ledgerUC),
		CashFlowHandler:    handler.NewCashFlowHandler(cashFlowUC),
		DashboardHandler:   handler.NewDashboardHandler(dashboardUC),
		ParameterHandler:   handler.NewParameterHandler(parameterUC),
		HealthHandler:      handler.NewHealthHandler(pool, redisClient),
		IdempotencyStore:   idempotencyStore,
		IdempotencyTTL:     cfg.IdempotencyTTL,
		Logging:            middleware.NewLoggingMiddleware(log),
	}
	if cfg.RateLimitRPS > 0 {
		routerCfg.RateLimiter = middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
	}

	router := httpAdapter.NewRouter(routerCfg)

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

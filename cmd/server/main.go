package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	httpAdapter "github.com/kindredhq/ledgerd/internal/adapter/http"
	"github.com/kindredhq/ledgerd/internal/adapter/http/handler"
	"github.com/kindredhq/ledgerd/internal/adapter/repository/memory"
	postgresRepo "github.com/kindredhq/ledgerd/internal/adapter/repository/postgres"
	redisRepo "github.com/kindredhq/ledgerd/internal/adapter/repository/redis"
	"github.com/kindredhq/ledgerd/internal/authz"
	"github.com/kindredhq/ledgerd/internal/infrastructure/auth"
	"github.com/kindredhq/ledgerd/internal/infrastructure/config"
	"github.com/kindredhq/ledgerd/internal/infrastructure/eventpublisher"
	"github.com/kindredhq/ledgerd/internal/infrastructure/logger"
	"github.com/kindredhq/ledgerd/internal/infrastructure/metrics"
	"github.com/kindredhq/ledgerd/internal/infrastructure/postgres"
	"github.com/kindredhq/ledgerd/internal/infrastructure/redis"
	"github.com/kindredhq/ledgerd/internal/usecase"

	"github.com/jackc/pgx/v5/pgxpool"
	redislib "github.com/redis/go-redis/v9"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	// Setup logger
	log.Logger = logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})

	ctx := context.Background()

	// Wire the account store and event log for the selected backend.
	var (
		store    usecase.AccountStore
		eventLog usecase.EventLog
		pool     *pgxpool.Pool
	)

	switch cfg.StoreBackend {
	case "memory":
		memStore := memory.NewStore()
		store = memStore
		eventLog = memStore
		log.Info().Msg("using in-memory store")
	default:
		if err := postgres.RunMigrations(cfg.DatabaseURL); err != nil {
			log.Fatal().Err(err).Msg("failed to run migrations")
		}

		connectCtx, cancelConnect := context.WithTimeout(ctx, cfg.DatabaseTimeout)
		pool, err = postgres.NewPool(connectCtx, cfg.DatabaseURL, cfg.DatabaseMaxConns, cfg.DatabaseMinConns)
		cancelConnect()
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to postgres")
		}
		defer pool.Close()

		// Deadlocks between concurrent opposite-direction transfers are
		// retried here; version conflicts are not.
		store = postgresRepo.NewRetryingAccountStore(
			postgresRepo.NewAccountStore(pool),
			postgresRepo.NewRetrier(),
		)
		eventLog = postgresRepo.NewEventLog(pool)
		log.Info().Msg("connected to postgres")
	}

	// Redis is optional: without it, idempotency replay is disabled and
	// subscriber checkpoints live in memory.
	var (
		redisClient      *redislib.Client
		idempotencyStore usecase.IdempotencyStore
		checkpointStore  usecase.CheckpointStore
	)

	if cfg.RedisURL != "" {
		redisClient, err = redis.NewClient(ctx, cfg.RedisURL)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to redis")
		}
		defer redisClient.Close()

		idempotencyStore = redisRepo.NewIdempotencyStore(redisClient)
		checkpointStore = redisRepo.NewCheckpointStore(redisClient)
		log.Info().Msg("connected to redis")
	} else {
		checkpointStore = memory.NewCheckpointStore()
	}

	// Initialize use cases
	idGen := postgresRepo.NewULIDGenerator()
	gate := authz.NewOwnerGate(store)
	engine := usecase.NewEngine(idGen)
	coordinator := usecase.NewCoordinator(store, gate, engine, idGen)
	accountUC := usecase.NewAccountUseCase(store, gate, idGen)

	m := metrics.New()

	// Authentication
	var jwtManager *auth.JWTManager
	if cfg.AuthEnabled && cfg.JWTSecret != "" {
		jwtManager = auth.NewJWTManager(cfg.JWTSecret, cfg.JWTExpiration)
		log.Info().Msg("authentication enabled")
	} else {
		log.Warn().Msg("authentication disabled, all requests act as admin")
	}

	// Initialize handlers
	accountHandler := handler.NewAccountHandler(accountUC, m)
	transactionHandler := handler.NewTransactionHandler(coordinator, m)
	eventHandler := handler.NewEventHandler(eventLog)
	healthHandler := handler.NewHealthHandler(pool, redisClient)

	// Create router
	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		AccountHandler:     accountHandler,
		TransactionHandler: transactionHandler,
		EventHandler:       eventHandler,
		HealthHandler:      healthHandler,
		IdempotencyStore:   idempotencyStore,
		IdempotencyTTL:     cfg.IdempotencyTTL,
		Metrics:            m,
		JWTManager:         jwtManager,
	})

	// Start the event dispatcher
	dispatcherCtx, stopDispatcher := context.WithCancel(ctx)
	defer stopDispatcher()

	dispatcher := eventpublisher.NewDispatcher(eventpublisher.Config{
		Log:        eventLog,
		Checkpoint: checkpointStore,
		Subscriber: eventpublisher.NewLogSubscriber("log", nil),
		Metrics:    m,
		BatchSize:  cfg.PublishBatchSize,
		Interval:   cfg.PublishInterval,
	})

	go func() {
		if err := dispatcher.Start(dispatcherCtx); err != nil && err != context.Canceled {
			log.Error().Err(err).Msg("event dispatcher stopped")
		}
	}()

	// Create server
	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("port", cfg.HTTPPort).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server...")

	stopDispatcher()

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}

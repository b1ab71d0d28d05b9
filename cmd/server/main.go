package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	redislib "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	httpAdapter "github.com/pickndrop/walletd/internal/adapter/http"
	"github.com/pickndrop/walletd/internal/adapter/http/handler"
	"github.com/pickndrop/walletd/internal/adapter/http/middleware"
	postgresRepo "github.com/pickndrop/walletd/internal/adapter/repository/postgres"
	redisRepo "github.com/pickndrop/walletd/internal/adapter/repository/redis"
	"github.com/pickndrop/walletd/internal/infrastructure/auth"
	"github.com/pickndrop/walletd/internal/infrastructure/config"
	"github.com/pickndrop/walletd/internal/infrastructure/logger"
	"github.com/pickndrop/walletd/internal/infrastructure/metrics"
	"github.com/pickndrop/walletd/internal/infrastructure/postgres"
	"github.com/pickndrop/walletd/internal/infrastructure/redis"
	"github.com/pickndrop/walletd/internal/usecase"
)

func main() {
	// Best effort: a missing .env file is fine in containers.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	log.Logger = logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})

	ctx, cancel := context.WithTimeout(context.Background(), cfg.DatabaseTimeout)
	defer cancel()

	// Connect to PostgreSQL
	pool, err := postgres.NewPool(ctx, cfg.DatabaseURL, cfg.DatabaseMaxConns, cfg.DatabaseMinConns)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	defer pool.Close()
	log.Info().Msg("connected to postgres")

	if err := postgres.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	// Connect to Redis if configured; the record cache is optional.
	var cache usecase.Cache
	redisClient, err := redisClientFromConfig(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	if redisClient != nil {
		defer redisClient.Close()
		cache = redisRepo.NewCache(redisClient)
		log.Info().Msg("connected to redis")
	}

	m := metrics.New()

	// Initialize repositories
	txManager := postgresRepo.NewTxManager(pool)
	partyRepo := postgresRepo.NewPartyRepository(pool)
	recordRepo := postgresRepo.NewRecordRepository(pool)
	retrier := postgresRepo.NewRetrier(log.Logger)
	idGen := postgresRepo.NewULIDGenerator()

	// Initialize use cases
	transferUC := usecase.NewTransferUseCase(txManager, partyRepo, recordRepo, retrier, idGen, m)
	partyUC := usecase.NewPartyUseCase(partyRepo, idGen)
	historyUC := usecase.NewHistoryUseCase(recordRepo, cache)

	// Initialize handlers
	transferHandler := handler.NewTransferHandler(transferUC, historyUC)
	partyHandler := handler.NewPartyHandler(partyUC)
	recordHandler := handler.NewRecordHandler(historyUC)
	healthHandler := handler.NewHealthHandler(pool, redisClient)

	var jwtManager *auth.JWTManager
	if cfg.AuthEnabled && cfg.JWTSecret != "" {
		jwtManager = auth.NewJWTManager(cfg.JWTSecret, cfg.JWTExpiration)
	}

	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		PartyHandler:    partyHandler,
		TransferHandler: transferHandler,
		RecordHandler:   recordHandler,
		HealthHandler:   healthHandler,
		Logger:          log.Logger,
		RateLimiter:     middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst),
		JWTManager:      jwtManager,
	})

	server := &http.Server{
		Addr:         listenAddr(cfg.HTTPPort),
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

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}

func listenAddr(port string) string {
	return fmt.Sprintf(":%s", port)
}

func redisClientFromConfig(ctx context.Context, cfg *config.Config) (*redislib.Client, error) {
	if cfg.RedisURL == "" {
		return nil, nil
	}
	return redis.NewClient(ctx, cfg.RedisURL)
}

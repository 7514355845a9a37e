package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/trip-planner-service/internal/config"
	"github.com/trip-planner-service/internal/domain/repository"
	"github.com/trip-planner-service/internal/pkg/logger"
	"github.com/trip-planner-service/internal/repository/postgres"
	redisRepo "github.com/trip-planner-service/internal/repository/redis"
	"github.com/trip-planner-service/internal/usecase"
	"github.com/trip-planner-service/internal/worker"
	"github.com/trip-planner-service/internal/worker/stats"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// Check if worker is enabled
	if !cfg.Worker.Enabled {
		fmt.Println("Worker is disabled in configuration. Set WORKER_ENABLED=true to enable.")
		os.Exit(0)
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Stats Snapshot Worker")
	log.Info("Configuration loaded",
		zap.String("consumer_group", cfg.Worker.ConsumerGroup),
		zap.String("storage_backend", cfg.Storage.Backend))

	// 3. Connect to Redis (stream + stats cache)
	redisClient, err := redisRepo.NewRedis(&cfg.Redis, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis connection", zap.Error(err))
		}
	}()

	// 4. Initialize repositories for the configured storage backend
	var (
		tripRepo repository.TripRepository
		userRepo repository.UserRepository
	)

	switch cfg.Storage.Backend {
	case config.StorageBackendPostgres:
		db, err := postgres.New(&cfg.Database, log)
		if err != nil {
			log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
		}
		defer func() {
			if err := db.Close(); err != nil {
				log.Error("Failed to close PostgreSQL connection", zap.Error(err))
			}
		}()
		tripRepo = postgres.NewTripRepository(db)
		userRepo = postgres.NewUserRepository(db)

	default:
		// Для memory-бэкенда воркеру нечем поделиться с API-процессом,
		// поэтому он тоже читает слоты из Redis
		tripRepo = redisRepo.NewTripRepository(redisClient)
		userRepo = redisRepo.NewUserRepository(redisClient)
	}

	cacheRepo := redisRepo.NewCacheRepository(redisClient)
	streamRepo := redisRepo.NewStreamRepository(redisClient.Client(), log)

	// 5. Initialize use cases
	statsUC := usecase.NewStatsUseCase(tripRepo, userRepo, cacheRepo, log, cfg.Cache.StatsSnapshotTTL)

	// 6. Initialize workers
	statsWorker := stats.NewStatsSnapshotWorker(
		streamRepo,
		statsUC,
		cfg.Worker.ConsumerGroup,
		log,
	)

	// 7. Create worker manager and register workers
	workerManager := worker.NewWorkerManager(log)
	workerManager.Register(statsWorker)

	// 8. Setup graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := workerManager.Start(ctx); err != nil {
		log.Fatal("Failed to start workers", zap.Error(err))
	}

	log.Info("Stats Snapshot Worker started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down workers...")
	cancel()

	if err := workerManager.Stop(); err != nil {
		log.Error("Workers forced to shutdown", zap.Error(err))
	}

	log.Info("Workers exited")
}

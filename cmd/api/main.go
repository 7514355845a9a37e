package main

// @title Trip Planner Service API
// @version 1.0.0
// @description Сервис планирования путешествий. Ведёт коллекцию поездок с маршрутами из точек интереса, начисляет очки и значки за посещения, подбирает кандидатов POI вокруг координаты и оценивает время в пути.
// @description
// @description Основные возможности:
// @description - Поездки: создание, редактирование, выбор текущей, списки предстоящих/текущих/прошедших
// @description - Маршруты: добавление, удаление и перестановка POI, отметка посещений
// @description - Награды: очки по категориям, значки за три посещения категории, уровни профиля
// @description - Обнаружение: кандидаты POI вокруг координаты, текстовый поиск, оценка времени в пути

// @contact.name API Support
// @contact.email support@trip-planner-service.com

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	_ "github.com/trip-planner-service/docs/swagger"
	"github.com/trip-planner-service/internal/config"
	httpDelivery "github.com/trip-planner-service/internal/delivery/http"
	"github.com/trip-planner-service/internal/delivery/http/handler"
	"github.com/trip-planner-service/internal/domain/repository"
	"github.com/trip-planner-service/internal/events"
	"github.com/trip-planner-service/internal/location"
	"github.com/trip-planner-service/internal/pkg/logger"
	"github.com/trip-planner-service/internal/repository/memory"
	"github.com/trip-planner-service/internal/repository/postgres"
	redisRepo "github.com/trip-planner-service/internal/repository/redis"
	"github.com/trip-planner-service/internal/usecase"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Trip Planner Service")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
		zap.String("storage_backend", cfg.Storage.Backend),
	)

	// 3. Initialize storage backend
	var (
		tripRepo  repository.TripRepository
		userRepo  repository.UserRepository
		cacheRepo repository.CacheRepository
		notifier  repository.Notifier
	)

	switch cfg.Storage.Backend {
	case config.StorageBackendRedis:
		redisClient, err := redisRepo.NewRedis(&cfg.Redis, log)
		if err != nil {
			log.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		defer func() {
			if err := redisClient.Close(); err != nil {
				log.Error("Failed to close Redis connection", zap.Error(err))
			}
		}()

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := redisClient.Health(ctx); err != nil {
			log.Fatal("Redis health check failed", zap.Error(err))
		}
		log.Info("Redis connected")

		tripRepo = redisRepo.NewTripRepository(redisClient)
		userRepo = redisRepo.NewUserRepository(redisClient)
		cacheRepo = redisRepo.NewCacheRepository(redisClient)

		streamRepo := redisRepo.NewStreamRepository(redisClient.Client(), log)
		notifier = events.NewStreamNotifier(streamRepo, log)

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
		log.Info("PostgreSQL connected")

		tripRepo = postgres.NewTripRepository(db)
		userRepo = postgres.NewUserRepository(db)

		// Кеш и стрим живут в Redis независимо от бэкенда хранения
		redisClient, err := redisRepo.NewRedis(&cfg.Redis, log)
		if err != nil {
			log.Warn("Redis unavailable, stats cache and stream events disabled", zap.Error(err))
		} else {
			defer func() {
				if err := redisClient.Close(); err != nil {
					log.Error("Failed to close Redis connection", zap.Error(err))
				}
			}()
			cacheRepo = redisRepo.NewCacheRepository(redisClient)
			streamRepo := redisRepo.NewStreamRepository(redisClient.Client(), log)
			notifier = events.NewStreamNotifier(streamRepo, log)
		}

	case config.StorageBackendMemory:
		store := memory.NewStore()
		tripRepo = store
		userRepo = store
		log.Info("In-memory storage selected, data will not survive restarts")

	default:
		log.Fatal("Unknown storage backend", zap.String("backend", cfg.Storage.Backend))
	}

	// Внутрипроцессная шина дополняет стрим-нотификатор
	bus := events.NewBus(log)
	if notifier != nil {
		notifier = events.FanOut{bus, notifier}
	} else {
		notifier = bus
	}

	log.Info("Repositories initialized")

	// 4. Initialize Use Cases
	itineraryUC := usecase.NewItineraryUseCase()
	rewardsUC := usecase.NewRewardsUseCase(log)

	tripUC := usecase.NewTripUseCase(tripRepo, itineraryUC, rewardsUC, notifier, log)
	prefUC := usecase.NewPreferencesUseCase(userRepo, rewardsUC, notifier, log)
	statsUC := usecase.NewStatsUseCase(tripRepo, userRepo, cacheRepo, log, cfg.Cache.StatsSnapshotTTL)

	seed := cfg.Discovery.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	provider := location.NewStaticProvider()
	discoveryUC := usecase.NewDiscoveryUseCase(
		rand.New(rand.NewSource(seed)),
		provider,
		log,
		cfg.Discovery.CandidateCount,
		cfg.Discovery.SearchRadiusKm,
	)

	// 5. Load state from storage. Ошибки загрузки нефатальны:
	// сервис стартует с данными по умолчанию
	loadCtx, loadCancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := tripUC.Load(loadCtx); err != nil {
		log.Warn("Trip collection loaded with defaults", zap.Error(err))
	}
	if err := prefUC.Load(loadCtx); err != nil {
		log.Warn("User profile loaded with defaults", zap.Error(err))
	}
	loadCancel()

	// 6. Initialize Handlers
	tripHandler := handler.NewTripHandler(tripUC, prefUC, log)
	discoveryHandler := handler.NewDiscoveryHandler(discoveryUC, provider, log)
	userHandler := handler.NewUserHandler(prefUC, log)
	statsHandler := handler.NewStatsHandler(statsUC, log)

	// 7. Initialize HTTP Server
	server := httpDelivery.NewServer(
		cfg,
		log,
		tripHandler,
		discoveryHandler,
		userHandler,
		statsHandler,
	)

	// 8. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Trip Planner Service started")

	// 9. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited")
}

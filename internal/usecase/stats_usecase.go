package usecase

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/trip-planner-service/internal/domain"
	"github.com/trip-planner-service/internal/domain/repository"
)

// StatsUseCase - агрегированная статистика по поездкам и пользователю.
// Срез кешируется; воркер статистики обновляет кеш по событиям изменений.
type StatsUseCase struct {
	tripRepo  repository.TripRepository
	userRepo  repository.UserRepository
	cacheRepo repository.CacheRepository
	logger    *zap.Logger
	cacheTTL  time.Duration
}

// NewStatsUseCase - создание нового StatsUseCase
func NewStatsUseCase(
	tripRepo repository.TripRepository,
	userRepo repository.UserRepository,
	cacheRepo repository.CacheRepository,
	logger *zap.Logger,
	cacheTTL time.Duration,
) *StatsUseCase {
	return &StatsUseCase{
		tripRepo:  tripRepo,
		userRepo:  userRepo,
		cacheRepo: cacheRepo,
		logger:    logger,
		cacheTTL:  cacheTTL,
	}
}

// GetSnapshot возвращает срез статистики: из кеша, либо пересчитанный
func (uc *StatsUseCase) GetSnapshot(ctx context.Context) (*domain.StatsSnapshot, error) {
	if uc.cacheRepo != nil {
		snapshot, err := uc.cacheRepo.GetStatsSnapshot(ctx)
		if err != nil {
			uc.logger.Warn("Failed to read stats snapshot from cache", zap.Error(err))
		} else if snapshot != nil {
			return snapshot, nil
		}
	}
	return uc.RefreshSnapshot(ctx)
}

// RefreshSnapshot пересчитывает срез статистики из хранилища и
// обновляет кеш
func (uc *StatsUseCase) RefreshSnapshot(ctx context.Context) (*domain.StatsSnapshot, error) {
	trips, err := uc.tripRepo.LoadTrips(ctx)
	if err != nil {
		uc.logger.Warn("Stats computed over fallback trip collection", zap.Error(err))
	}
	user, err := uc.userRepo.LoadUser(ctx)
	if err != nil {
		uc.logger.Warn("Stats computed over fallback user record", zap.Error(err))
	}

	snapshot := &domain.StatsSnapshot{
		TotalTrips:  len(trips),
		UserLevel:   user.TravelStats.Level(),
		GeneratedAt: time.Now().UTC(),
	}
	for _, t := range trips {
		snapshot.TotalPlacesVisited += len(t.VisitedPOIs)
		snapshot.TotalPoints += t.EarnedPoints
		snapshot.TotalBadges += len(t.Badges)
	}

	if uc.cacheRepo != nil {
		if err := uc.cacheRepo.SetStatsSnapshot(ctx, snapshot, uc.cacheTTL); err != nil {
			uc.logger.Warn("Failed to cache stats snapshot", zap.Error(err))
		}
	}

	return snapshot, nil
}

package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/trip-planner-service/internal/domain"
	"github.com/trip-planner-service/internal/domain/repository"
	apperrors "github.com/trip-planner-service/internal/pkg/errors"
)

type tripRepository struct {
	client *redis.Client
	logger *zap.Logger
}

// NewTripRepository создает TripRepository поверх фиксированного
// Redis-слота. Значение слота заменяется целиком одной записью.
func NewTripRepository(r *Redis) repository.TripRepository {
	return &tripRepository{
		client: r.Client(),
		logger: r.logger,
	}
}

// LoadTrips читает слот коллекции поездок. Отсутствующий слот - пустая
// коллекция без ошибки; повреждённые данные - пустая коллекция и
// нефатальная ошибка CORRUPTED_DATA.
func (r *tripRepository) LoadTrips(ctx context.Context) ([]domain.Trip, error) {
	data, err := r.client.Get(ctx, KeyTripsSlot).Bytes()
	if err == redis.Nil {
		return []domain.Trip{}, nil
	}
	if err != nil {
		r.logger.Error("Failed to read trips slot", zap.Error(err))
		return []domain.Trip{}, fmt.Errorf("read trips slot: %w", err)
	}

	var trips []domain.Trip
	if err := json.Unmarshal(data, &trips); err != nil {
		r.logger.Error("Trips slot is corrupted, falling back to empty collection", zap.Error(err))
		return []domain.Trip{}, apperrors.ErrCorruptedData
	}
	return trips, nil
}

// SaveTrips сериализует и атомарно записывает коллекцию в слот
func (r *tripRepository) SaveTrips(ctx context.Context, trips []domain.Trip) error {
	data, err := json.Marshal(trips)
	if err != nil {
		r.logger.Error("Failed to marshal trips", zap.Error(err))
		return fmt.Errorf("marshal trips: %w", err)
	}

	if err := r.client.Set(ctx, KeyTripsSlot, data, 0).Err(); err != nil {
		r.logger.Error("Failed to write trips slot", zap.Error(err))
		return fmt.Errorf("write trips slot: %w", err)
	}

	r.logger.Debug("Trips saved", zap.Int("count", len(trips)))
	return nil
}

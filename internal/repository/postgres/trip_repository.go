package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/trip-planner-service/internal/domain"
	"github.com/trip-planner-service/internal/domain/repository"
	apperrors "github.com/trip-planner-service/internal/pkg/errors"
)

type tripRepository struct {
	db     *DB
	logger *zap.Logger
	mu     sync.Mutex
}

// NewTripRepository создает TripRepository поверх jsonb-слота в kv_slots.
// Конкурентные сохранения сериализуются мьютексом: слот заменяется
// целиком и не должен перемешиваться.
func NewTripRepository(db *DB) repository.TripRepository {
	return &tripRepository{
		db:     db,
		logger: db.logger,
	}
}

// LoadTrips читает слот коллекции поездок. Отсутствующая строка -
// пустая коллекция без ошибки; повреждённые данные - пустая коллекция
// и нефатальная ошибка CORRUPTED_DATA.
func (r *tripRepository) LoadTrips(ctx context.Context) ([]domain.Trip, error) {
	var data []byte
	err := r.db.GetContext(ctx, &data, `SELECT value FROM kv_slots WHERE key = $1`, KeyTripsSlot)
	if errors.Is(err, sql.ErrNoRows) {
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

// SaveTrips сериализует коллекцию и заменяет значение слота целиком
func (r *tripRepository) SaveTrips(ctx context.Context, trips []domain.Trip) error {
	data, err := json.Marshal(trips)
	if err != nil {
		r.logger.Error("Failed to marshal trips", zap.Error(err))
		return fmt.Errorf("marshal trips: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO kv_slots (key, value, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()`,
		KeyTripsSlot, data)
	if err != nil {
		r.logger.Error("Failed to write trips slot", zap.Error(err))
		return fmt.Errorf("write trips slot: %w", err)
	}

	r.logger.Debug("Trips saved", zap.Int("count", len(trips)))
	return nil
}

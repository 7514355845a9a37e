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

type userRepository struct {
	db     *DB
	logger *zap.Logger
	mu     sync.Mutex
}

// NewUserRepository создает UserRepository поверх jsonb-слота в kv_slots
func NewUserRepository(db *DB) repository.UserRepository {
	return &userRepository{
		db:     db,
		logger: db.logger,
	}
}

// LoadUser читает слот профиля. Отсутствующая строка - профиль по
// умолчанию без ошибки; повреждённые данные - профиль по умолчанию и
// нефатальная ошибка CORRUPTED_DATA. Декодирование идёт поверх
// профиля по умолчанию, поэтому отсутствующие поля сохраняют дефолты.
func (r *userRepository) LoadUser(ctx context.Context) (*domain.User, error) {
	var data []byte
	err := r.db.GetContext(ctx, &data, `SELECT value FROM kv_slots WHERE key = $1`, KeyUserSlot)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.NewDefaultUser(), nil
	}
	if err != nil {
		r.logger.Error("Failed to read user slot", zap.Error(err))
		return domain.NewDefaultUser(), fmt.Errorf("read user slot: %w", err)
	}

	user := domain.NewDefaultUser()
	if err := json.Unmarshal(data, user); err != nil {
		r.logger.Error("User slot is corrupted, falling back to default profile", zap.Error(err))
		return domain.NewDefaultUser(), apperrors.ErrCorruptedData
	}
	return user, nil
}

// SaveUser сериализует профиль и заменяет значение слота целиком
func (r *userRepository) SaveUser(ctx context.Context, user *domain.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		r.logger.Error("Failed to marshal user", zap.Error(err))
		return fmt.Errorf("marshal user: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO kv_slots (key, value, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()`,
		KeyUserSlot, data)
	if err != nil {
		r.logger.Error("Failed to write user slot", zap.Error(err))
		return fmt.Errorf("write user slot: %w", err)
	}

	r.logger.Debug("User profile saved", zap.String("user_id", user.ID.String()))
	return nil
}

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

type userRepository struct {
	client *redis.Client
	logger *zap.Logger
}

// NewUserRepository создает UserRepository поверх фиксированного
// Redis-слота
func NewUserRepository(r *Redis) repository.UserRepository {
	return &userRepository{
		client: r.Client(),
		logger: r.logger,
	}
}

// LoadUser читает слот записи пользователя. Отсутствующий слот -
// пользователь по умолчанию без ошибки; повреждённые данные -
// пользователь по умолчанию и нефатальная ошибка CORRUPTED_DATA.
func (r *userRepository) LoadUser(ctx context.Context) (*domain.User, error) {
	data, err := r.client.Get(ctx, KeyUserSlot).Bytes()
	if err == redis.Nil {
		return domain.NewDefaultUser(), nil
	}
	if err != nil {
		r.logger.Error("Failed to read user slot", zap.Error(err))
		return domain.NewDefaultUser(), fmt.Errorf("read user slot: %w", err)
	}

	// Декодируем поверх значений по умолчанию: поля, отсутствующие в
	// старых записях, сохраняют документированные дефолты
	user := domain.NewDefaultUser()
	if err := json.Unmarshal(data, user); err != nil {
		r.logger.Error("User slot is corrupted, falling back to default user", zap.Error(err))
		return domain.NewDefaultUser(), apperrors.ErrCorruptedData
	}
	return user, nil
}

// SaveUser сериализует и атомарно записывает запись пользователя в слот
func (r *userRepository) SaveUser(ctx context.Context, user *domain.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		r.logger.Error("Failed to marshal user", zap.Error(err))
		return fmt.Errorf("marshal user: %w", err)
	}

	if err := r.client.Set(ctx, KeyUserSlot, data, 0).Err(); err != nil {
		r.logger.Error("Failed to write user slot", zap.Error(err))
		return fmt.Errorf("write user slot: %w", err)
	}

	r.logger.Debug("User saved", zap.String("user_id", user.ID.String()))
	return nil
}

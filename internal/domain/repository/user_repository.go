package repository

import (
	"context"

	"github.com/trip-planner-service/internal/domain"
)

// UserRepository определяет методы для хранения единственной записи пользователя.
//
// Контракт загрузки: отсутствующий слот - пользователь по умолчанию без
// ошибки; повреждённые данные - пользователь по умолчанию и нефатальная
// ошибка (errors.ErrCorruptedData).
type UserRepository interface {
	// LoadUser загружает запись пользователя
	LoadUser(ctx context.Context) (*domain.User, error)

	// SaveUser атомарно сохраняет запись пользователя целиком
	SaveUser(ctx context.Context, user *domain.User) error
}

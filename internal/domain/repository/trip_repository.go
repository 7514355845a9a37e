package repository

import (
	"context"

	"github.com/trip-planner-service/internal/domain"
)

// TripRepository определяет методы для долговременного хранения коллекции поездок.
// Хранение целиком заменяет значение слота: частичных записей нет.
//
// Контракт загрузки: отсутствующий слот - пустая коллекция без ошибки;
// повреждённые данные - пустая коллекция и нефатальная ошибка
// (errors.ErrCorruptedData), чтобы вызывающий мог показать предупреждение.
type TripRepository interface {
	// LoadTrips загружает коллекцию поездок
	LoadTrips(ctx context.Context) ([]domain.Trip, error)

	// SaveTrips атомарно сохраняет коллекцию поездок целиком
	SaveTrips(ctx context.Context, trips []domain.Trip) error
}

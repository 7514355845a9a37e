package repository

import (
	"context"

	"github.com/trip-planner-service/internal/domain"
)

// LocationProvider - контракт внешнего источника геолокации.
// Отсутствие координаты означает "обнаружение/оценка недоступны",
// а не ошибку.
type LocationProvider interface {
	// CurrentLocation возвращает текущую координату или nil, если она неизвестна
	CurrentLocation(ctx context.Context) *domain.LatLon

	// AuthorizationStatus возвращает состояние авторизации геолокации
	AuthorizationStatus() domain.LocationAuthStatus
}

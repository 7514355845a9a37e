package location

import (
	"context"
	"sync"

	"github.com/trip-planner-service/internal/domain"
)

// StaticProvider - источник геолокации с изменяемой вручную позицией.
// Сервис не привязан к датчику устройства: позиция задаётся через API
// (или конфигурацией) и раздаётся остальным слоям.
type StaticProvider struct {
	mu       sync.RWMutex
	location *domain.LatLon
	status   domain.LocationAuthStatus
}

// NewStaticProvider создает провайдер без известной позиции
func NewStaticProvider() *StaticProvider {
	return &StaticProvider{status: domain.LocationAuthNotDetermined}
}

// NewStaticProviderAt создает провайдер с заданной позицией
func NewStaticProviderAt(lat, lon float64) *StaticProvider {
	return &StaticProvider{
		location: &domain.LatLon{Lat: lat, Lon: lon},
		status:   domain.LocationAuthAuthorized,
	}
}

// CurrentLocation возвращает текущую координату или nil
func (p *StaticProvider) CurrentLocation(ctx context.Context) *domain.LatLon {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.location == nil {
		return nil
	}
	loc := *p.location
	return &loc
}

// AuthorizationStatus возвращает состояние авторизации геолокации
func (p *StaticProvider) AuthorizationStatus() domain.LocationAuthStatus {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.status
}

// SetLocation обновляет текущую позицию и отмечает доступ разрешённым
func (p *StaticProvider) SetLocation(lat, lon float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.location = &domain.LatLon{Lat: lat, Lon: lon}
	p.status = domain.LocationAuthAuthorized
}

// ClearLocation сбрасывает позицию в неизвестную
func (p *StaticProvider) ClearLocation() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.location = nil
	p.status = domain.LocationAuthDenied
}

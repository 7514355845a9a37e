package repository

import (
	"context"
	"time"

	"github.com/trip-planner-service/internal/domain"
)

// CacheRepository определяет методы для работы с кешем
type CacheRepository interface {
	// Get возвращает значение по ключу (nil при промахе)
	Get(ctx context.Context, key string) ([]byte, error)

	// Set сохраняет значение с TTL
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete удаляет значение по ключу
	Delete(ctx context.Context, key string) error

	// GetStatsSnapshot возвращает срез статистики из кеша (nil при промахе)
	GetStatsSnapshot(ctx context.Context) (*domain.StatsSnapshot, error)

	// SetStatsSnapshot сохраняет срез статистики в кеше
	SetStatsSnapshot(ctx context.Context, snapshot *domain.StatsSnapshot, ttl time.Duration) error
}

package events

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/trip-planner-service/internal/domain"
)

// Handler - обработчик события изменения состояния
type Handler func(ctx context.Context, event domain.ChangeEvent)

// Bus - внутрипроцессная шина событий. Подписчики вызываются
// синхронно в порядке подписки; публикация никогда не возвращает
// ошибку и не прерывает мутацию.
type Bus struct {
	mu       sync.RWMutex
	handlers []Handler
	logger   *zap.Logger
}

// NewBus создает внутрипроцессную шину событий
func NewBus(logger *zap.Logger) *Bus {
	return &Bus{logger: logger}
}

// Subscribe регистрирует обработчик для всех событий
func (b *Bus) Subscribe(handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers = append(b.handlers, handler)
}

// Notify доставляет событие всем подписчикам
func (b *Bus) Notify(ctx context.Context, event domain.ChangeEvent) {
	b.mu.RLock()
	handlers := make([]Handler, len(b.handlers))
	copy(handlers, b.handlers)
	b.mu.RUnlock()

	b.logger.Debug("Publishing change event",
		zap.String("kind", string(event.Kind)),
		zap.String("trip_id", event.TripID.String()))

	for _, handler := range handlers {
		handler(ctx, event)
	}
}

package events

import (
	"context"

	"go.uber.org/zap"

	"github.com/trip-planner-service/internal/domain"
	"github.com/trip-planner-service/internal/domain/repository"
)

// StreamNotifier публикует события изменений в Redis Stream для
// внешних потребителей (воркер статистики). Ошибки публикации
// логируются и не прерывают мутацию.
type StreamNotifier struct {
	streamRepo repository.StreamRepository
	logger     *zap.Logger
}

// NewStreamNotifier создает нотификатор поверх Redis Streams
func NewStreamNotifier(streamRepo repository.StreamRepository, logger *zap.Logger) *StreamNotifier {
	return &StreamNotifier{
		streamRepo: streamRepo,
		logger:     logger,
	}
}

// Notify публикует событие в stream:trips:changed
func (n *StreamNotifier) Notify(ctx context.Context, event domain.ChangeEvent) {
	if err := n.streamRepo.PublishToStream(ctx, domain.StreamTripsChanged, event); err != nil {
		n.logger.Warn("Failed to publish change event to stream",
			zap.String("kind", string(event.Kind)),
			zap.Error(err))
	}
}

// FanOut рассылает событие нескольким нотификаторам по порядку
type FanOut []repository.Notifier

// Notify доставляет событие каждому нотификатору
func (f FanOut) Notify(ctx context.Context, event domain.ChangeEvent) {
	for _, n := range f {
		n.Notify(ctx, event)
	}
}

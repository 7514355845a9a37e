package stats

import (
	"context"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/trip-planner-service/internal/domain"
	"github.com/trip-planner-service/internal/domain/repository"
	"github.com/trip-planner-service/internal/usecase"
	"github.com/trip-planner-service/internal/worker"
)

const (
	maxBatchSize    = 20                     // максимум сообщений за раз
	emptyQueueSleep = 100 * time.Millisecond // пауза если очередь пуста
)

// StatsSnapshotWorker пересчитывает кешированный срез статистики по
// событиям изменения поездок из Redis Stream. Батч событий любого
// вида приводит к одному пересчёту: срез агрегируется из слотов
// целиком, поэтому содержимое событий не важно, важен сам факт
// изменения.
type StatsSnapshotWorker struct {
	*worker.BaseWorker
	streamRepo   repository.StreamRepository
	statsUC      *usecase.StatsUseCase
	consumerName string
}

// NewStatsSnapshotWorker создает новый StatsSnapshotWorker
func NewStatsSnapshotWorker(
	streamRepo repository.StreamRepository,
	statsUC *usecase.StatsUseCase,
	consumerGroup string,
	logger *zap.Logger,
) *StatsSnapshotWorker {
	hostname, _ := os.Hostname()
	consumerName := fmt.Sprintf("%s-%d", hostname, os.Getpid())

	return &StatsSnapshotWorker{
		BaseWorker:   worker.NewBaseWorker("stats-snapshot", consumerGroup, logger),
		streamRepo:   streamRepo,
		statsUC:      statsUC,
		consumerName: consumerName,
	}
}

// Start запускает воркер
func (w *StatsSnapshotWorker) Start(ctx context.Context) error {
	logger := w.Logger()
	logger.Info("Starting StatsSnapshotWorker (batch mode)",
		zap.String("consumer_group", w.ConsumerGroup()),
		zap.String("consumer_name", w.consumerName),
		zap.Int("max_batch_size", maxBatchSize))

	// Создаем consumer group
	if err := w.streamRepo.CreateConsumerGroup(ctx, domain.StreamTripsChanged, w.ConsumerGroup()); err != nil {
		logger.Error("Failed to create consumer group", zap.Error(err))
		return fmt.Errorf("failed to create consumer group: %w", err)
	}

	// Основной цикл обработки
	for {
		select {
		case <-w.StopChan():
			logger.Info("Worker stopped")
			return nil

		case <-ctx.Done():
			logger.Info("Context cancelled")
			return ctx.Err()

		default:
			processed, err := w.processBatch(ctx)
			if err != nil {
				logger.Error("Failed to process batch", zap.Error(err))
				time.Sleep(time.Second) // пауза при ошибке
				continue
			}

			// Если ничего не обработали - короткая пауза
			if processed == 0 {
				time.Sleep(emptyQueueSleep)
			}
		}
	}
}

// processBatch читает batch событий и пересчитывает срез статистики.
// Возвращает количество обработанных сообщений
func (w *StatsSnapshotWorker) processBatch(ctx context.Context) (int, error) {
	logger := w.Logger()

	messages, err := w.streamRepo.ConsumeBatch(
		ctx,
		domain.StreamTripsChanged,
		w.ConsumerGroup(),
		w.consumerName,
		maxBatchSize,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to consume batch: %w", err)
	}

	if len(messages) == 0 {
		return 0, nil // очередь пуста
	}

	logger.Debug("Processing change events",
		zap.Int("message_count", len(messages)))

	// Один пересчёт на весь batch
	snapshot, err := w.statsUC.RefreshSnapshot(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to refresh stats snapshot: %w", err)
	}

	// ACK после успешного пересчёта: при сбое batch переигрывается,
	// пересчёт идемпотентен
	for _, msg := range messages {
		if err := w.streamRepo.AckMessage(ctx, domain.StreamTripsChanged, w.ConsumerGroup(), msg.ID); err != nil {
			logger.Warn("Failed to ack message",
				zap.String("message_id", msg.ID),
				zap.Error(err))
		}
	}

	logger.Info("Stats snapshot refreshed",
		zap.Int("total_trips", snapshot.TotalTrips),
		zap.Int("total_places_visited", snapshot.TotalPlacesVisited),
		zap.Int("message_count", len(messages)))

	return len(messages), nil
}

package events_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/trip-planner-service/internal/domain"
	"github.com/trip-planner-service/internal/events"
)

func TestBus_Notify(t *testing.T) {
	ctx := context.Background()

	t.Run("delivers event to all subscribers in order", func(t *testing.T) {
		bus := events.NewBus(zap.NewNop())

		var order []string
		bus.Subscribe(func(ctx context.Context, event domain.ChangeEvent) {
			order = append(order, "first")
		})
		bus.Subscribe(func(ctx context.Context, event domain.ChangeEvent) {
			order = append(order, "second")
		})

		bus.Notify(ctx, domain.ChangeEvent{Kind: domain.ChangeTripCreated})

		assert.Equal(t, []string{"first", "second"}, order)
	})

	t.Run("passes event payload through unchanged", func(t *testing.T) {
		bus := events.NewBus(zap.NewNop())
		tripID := uuid.New()
		occurredAt := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)

		var got domain.ChangeEvent
		bus.Subscribe(func(ctx context.Context, event domain.ChangeEvent) {
			got = event
		})

		bus.Notify(ctx, domain.ChangeEvent{
			Kind:       domain.ChangePOIVisited,
			TripID:     tripID,
			OccurredAt: occurredAt,
		})

		assert.Equal(t, domain.ChangePOIVisited, got.Kind)
		assert.Equal(t, tripID, got.TripID)
		assert.True(t, occurredAt.Equal(got.OccurredAt))
	})

	t.Run("no subscribers is a no-op", func(t *testing.T) {
		bus := events.NewBus(zap.NewNop())

		assert.NotPanics(t, func() {
			bus.Notify(ctx, domain.ChangeEvent{Kind: domain.ChangeTripDeleted})
		})
	})
}

type failingStreamRepo struct{}

func (f *failingStreamRepo) PublishToStream(ctx context.Context, stream string, data interface{}) error {
	return errors.New("redis down")
}

func (f *failingStreamRepo) CreateConsumerGroup(ctx context.Context, stream, group string) error {
	return nil
}

func (f *failingStreamRepo) ConsumeBatch(ctx context.Context, stream, group, consumer string, count int) ([]domain.StreamMessage, error) {
	return nil, nil
}

func (f *failingStreamRepo) AckMessage(ctx context.Context, stream, group, messageID string) error {
	return nil
}

func TestStreamNotifier_PublishFailureIsNonFatal(t *testing.T) {
	notifier := events.NewStreamNotifier(&failingStreamRepo{}, zap.NewNop())

	// A broken stream must never break the mutation path
	assert.NotPanics(t, func() {
		notifier.Notify(context.Background(), domain.ChangeEvent{Kind: domain.ChangeTripUpdated})
	})
}

func TestFanOut_NotifiesEveryTarget(t *testing.T) {
	bus1 := events.NewBus(zap.NewNop())
	bus2 := events.NewBus(zap.NewNop())

	var hits []string
	bus1.Subscribe(func(ctx context.Context, event domain.ChangeEvent) {
		hits = append(hits, "bus1")
	})
	bus2.Subscribe(func(ctx context.Context, event domain.ChangeEvent) {
		hits = append(hits, "bus2")
	})

	fan := events.FanOut{bus1, bus2}
	fan.Notify(context.Background(), domain.ChangeEvent{Kind: domain.ChangeTripCreated})

	assert.Equal(t, []string{"bus1", "bus2"}, hits)
}

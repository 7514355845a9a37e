package usecase

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/trip-planner-service/internal/domain"
	"github.com/trip-planner-service/internal/domain/repository"
	"github.com/trip-planner-service/internal/pkg/errors"
)

// TripUseCase - корневой агрегат поездок. Держит единственный
// экземпляр коллекции поездок на процесс; репозиторий - единственная
// граница долговременности. Память остаётся источником истины
// независимо от успеха сохранения.
type TripUseCase struct {
	mu            sync.Mutex
	trips         []domain.Trip
	currentTripID *uuid.UUID

	tripRepo    repository.TripRepository
	itineraryUC *ItineraryUseCase
	rewardsUC   *RewardsUseCase
	notifier    repository.Notifier
	logger      *zap.Logger
	now         func() time.Time
}

// NewTripUseCase - создание нового TripUseCase
func NewTripUseCase(
	tripRepo repository.TripRepository,
	itineraryUC *ItineraryUseCase,
	rewardsUC *RewardsUseCase,
	notifier repository.Notifier,
	logger *zap.Logger,
) *TripUseCase {
	return &TripUseCase{
		trips:       []domain.Trip{},
		tripRepo:    tripRepo,
		itineraryUC: itineraryUC,
		rewardsUC:   rewardsUC,
		notifier:    notifier,
		logger:      logger,
		now:         time.Now,
	}
}

// Load загружает коллекцию поездок из хранилища. Повреждённые данные
// дают пустую коллекцию и нефатальную ошибку для предупреждения
// пользователю.
func (uc *TripUseCase) Load(ctx context.Context) error {
	trips, err := uc.tripRepo.LoadTrips(ctx)
	uc.mu.Lock()
	uc.trips = trips
	uc.mu.Unlock()
	if err != nil {
		uc.logger.Warn("Trips loaded with fallback to defaults", zap.Error(err))
		return err
	}
	uc.logger.Info("Trips loaded", zap.Int("count", len(trips)))
	return nil
}

// Trips возвращает снимок коллекции поездок
func (uc *TripUseCase) Trips() []domain.Trip {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return cloneTrips(uc.trips)
}

// GetTrip возвращает поездку по id
func (uc *TripUseCase) GetTrip(id uuid.UUID) (domain.Trip, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	for _, t := range uc.trips {
		if t.ID == id {
			return t.Clone(), nil
		}
	}
	return domain.Trip{}, errors.ErrTripNotFound
}

// CreateTrip создаёт новую поездку без маршрута, добавляет её в
// коллекцию и сохраняет. Дата окончания раньше даты начала отклоняется.
func (uc *TripUseCase) CreateTrip(ctx context.Context, name, destination string, startDate, endDate time.Time, description string) (domain.Trip, error) {
	if endDate.Before(startDate) {
		return domain.Trip{}, errors.ErrInvalidDateRange
	}

	trip := domain.Trip{
		ID:          uuid.New(),
		Name:        name,
		Destination: destination,
		StartDate:   startDate,
		EndDate:     endDate,
		Description: description,
	}

	uc.mu.Lock()
	uc.trips = append(uc.trips, trip)
	uc.mu.Unlock()

	uc.persist(ctx)
	uc.notify(ctx, domain.ChangeTripCreated, trip.ID)

	uc.logger.Info("Trip created",
		zap.String("trip_id", trip.ID.String()),
		zap.String("destination", destination))

	return trip.Clone(), nil
}

// UpdateTrip заменяет поездку с совпадающим id и сохраняет.
// Отсутствующий id - no-op.
func (uc *TripUseCase) UpdateTrip(ctx context.Context, trip domain.Trip) {
	uc.mu.Lock()
	replaced := false
	for i := range uc.trips {
		if uc.trips[i].ID == trip.ID {
			uc.trips[i] = trip.Clone()
			replaced = true
			break
		}
	}
	uc.mu.Unlock()

	if !replaced {
		return
	}

	uc.persist(ctx)
	uc.notify(ctx, domain.ChangeTripUpdated, trip.ID)
}

// DeleteTrip удаляет поездку по id и сохраняет. Сбрасывает выбор
// текущей поездки, если он указывал на удалённую. Отсутствующий id - no-op.
func (uc *TripUseCase) DeleteTrip(ctx context.Context, id uuid.UUID) {
	uc.mu.Lock()
	removed := false
	kept := uc.trips[:0]
	for _, t := range uc.trips {
		if t.ID == id {
			removed = true
			continue
		}
		kept = append(kept, t)
	}
	uc.trips = kept
	if uc.currentTripID != nil && *uc.currentTripID == id {
		uc.currentTripID = nil
	}
	uc.mu.Unlock()

	if !removed {
		return
	}

	uc.persist(ctx)
	uc.notify(ctx, domain.ChangeTripDeleted, id)
}

// AddPOIToTrip добавляет POI в маршрут поездки, лениво создавая маршрут,
// и сохраняет
func (uc *TripUseCase) AddPOIToTrip(ctx context.Context, tripID uuid.UUID, poi domain.POI) (domain.Trip, error) {
	trip, err := uc.mutateTrip(tripID, func(t domain.Trip) domain.Trip {
		if t.Itinerary == nil {
			it := uc.itineraryUC.CreateItinerary(t.ID)
			t.Itinerary = &it
		}
		next := uc.itineraryUC.AddPOI(*t.Itinerary, poi)
		t.Itinerary = &next
		return t
	})
	if err != nil {
		return domain.Trip{}, err
	}

	uc.persist(ctx)
	uc.notify(ctx, domain.ChangePOIAdded, tripID)
	return trip, nil
}

// RemovePOIFromTrip удаляет POI из маршрута поездки и сохраняет
func (uc *TripUseCase) RemovePOIFromTrip(ctx context.Context, tripID, poiID uuid.UUID) (domain.Trip, error) {
	trip, err := uc.mutateTrip(tripID, func(t domain.Trip) domain.Trip {
		if t.Itinerary == nil {
			return t
		}
		next := uc.itineraryUC.RemovePOI(*t.Itinerary, poiID)
		t.Itinerary = &next
		return t
	})
	if err != nil {
		return domain.Trip{}, err
	}

	uc.persist(ctx)
	uc.notify(ctx, domain.ChangePOIRemoved, tripID)
	return trip, nil
}

// ReorderPOIs переставляет POI в маршруте поездки и сохраняет
func (uc *TripUseCase) ReorderPOIs(ctx context.Context, tripID uuid.UUID, fromIndices []int, toIndex int) (domain.Trip, error) {
	trip, err := uc.mutateTrip(tripID, func(t domain.Trip) domain.Trip {
		if t.Itinerary == nil {
			return t
		}
		next := uc.itineraryUC.ReorderPOI(*t.Itinerary, fromIndices, toIndex)
		t.Itinerary = &next
		return t
	})
	if err != nil {
		return domain.Trip{}, err
	}

	uc.persist(ctx)
	uc.notify(ctx, domain.ChangePOIReordered, tripID)
	return trip, nil
}

// MarkPOIVisited отмечает POI посещённым через движок наград и сохраняет
func (uc *TripUseCase) MarkPOIVisited(ctx context.Context, tripID uuid.UUID, poi domain.POI) (domain.Trip, error) {
	trip, err := uc.mutateTrip(tripID, func(t domain.Trip) domain.Trip {
		return uc.rewardsUC.MarkVisited(t, poi)
	})
	if err != nil {
		return domain.Trip{}, err
	}

	uc.persist(ctx)
	uc.notify(ctx, domain.ChangePOIVisited, tripID)
	return trip, nil
}

// CompleteTrip помечает поездку завершённой и сохраняет. Возвращает
// true только при первом переходе в завершённое состояние: повторный
// вызов - no-op, чтобы поездка не вливалась в статистику дважды.
func (uc *TripUseCase) CompleteTrip(ctx context.Context, tripID uuid.UUID) (domain.Trip, bool, error) {
	var alreadyCompleted bool
	trip, err := uc.mutateTrip(tripID, func(t domain.Trip) domain.Trip {
		alreadyCompleted = t.IsCompleted
		t.IsCompleted = true
		return t
	})
	if err != nil {
		return domain.Trip{}, false, err
	}

	if alreadyCompleted {
		return trip, false, nil
	}

	uc.persist(ctx)
	uc.notify(ctx, domain.ChangeTripCompleted, tripID)
	return trip, true, nil
}

// SetCurrentTrip запоминает выбранную поездку
func (uc *TripUseCase) SetCurrentTrip(id uuid.UUID) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	for _, t := range uc.trips {
		if t.ID == id {
			uc.currentTripID = &id
			return nil
		}
	}
	return errors.ErrTripNotFound
}

// CurrentTrip возвращает выбранную поездку, если она задана
func (uc *TripUseCase) CurrentTrip() (domain.Trip, bool) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if uc.currentTripID == nil {
		return domain.Trip{}, false
	}
	for _, t := range uc.trips {
		if t.ID == *uc.currentTripID {
			return t.Clone(), true
		}
	}
	return domain.Trip{}, false
}

// UpcomingTrips возвращает незавершённые поездки с датой начала в будущем,
// по возрастанию даты начала
func (uc *TripUseCase) UpcomingTrips() []domain.Trip {
	now := uc.now()
	uc.mu.Lock()
	defer uc.mu.Unlock()

	out := make([]domain.Trip, 0)
	for _, t := range uc.trips {
		if t.StartDate.After(now) && !t.IsCompleted {
			out = append(out, t.Clone())
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].StartDate.Before(out[j].StartDate)
	})
	return out
}

// CurrentTrips возвращает незавершённые поездки, идущие прямо сейчас
func (uc *TripUseCase) CurrentTrips() []domain.Trip {
	now := uc.now()
	uc.mu.Lock()
	defer uc.mu.Unlock()

	out := make([]domain.Trip, 0)
	for _, t := range uc.trips {
		if !t.StartDate.After(now) && !t.EndDate.Before(now) && !t.IsCompleted {
			out = append(out, t.Clone())
		}
	}
	return out
}

// PastTrips возвращает завершённые или прошедшие поездки,
// по убыванию даты начала
func (uc *TripUseCase) PastTrips() []domain.Trip {
	now := uc.now()
	uc.mu.Lock()
	defer uc.mu.Unlock()

	out := make([]domain.Trip, 0)
	for _, t := range uc.trips {
		if t.EndDate.Before(now) || t.IsCompleted {
			out = append(out, t.Clone())
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].StartDate.After(out[j].StartDate)
	})
	return out
}

// mutateTrip применяет мутацию к поездке по id и возвращает новый снимок
func (uc *TripUseCase) mutateTrip(id uuid.UUID, mutate func(domain.Trip) domain.Trip) (domain.Trip, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	for i := range uc.trips {
		if uc.trips[i].ID == id {
			next := mutate(uc.trips[i].Clone())
			uc.trips[i] = next
			return next.Clone(), nil
		}
	}
	return domain.Trip{}, errors.ErrTripNotFound
}

// persist сохраняет коллекцию целиком. Ошибка сохранения нефатальна:
// память остаётся источником истины.
func (uc *TripUseCase) persist(ctx context.Context) {
	uc.mu.Lock()
	snapshot := cloneTrips(uc.trips)
	uc.mu.Unlock()

	if err := uc.tripRepo.SaveTrips(ctx, snapshot); err != nil {
		uc.logger.Warn("Failed to save trips, in-memory state kept", zap.Error(err))
	}
}

func (uc *TripUseCase) notify(ctx context.Context, kind domain.ChangeKind, tripID uuid.UUID) {
	if uc.notifier == nil {
		return
	}
	uc.notifier.Notify(ctx, domain.ChangeEvent{
		Kind:       kind,
		TripID:     tripID,
		OccurredAt: uc.now().UTC(),
	})
}

func cloneTrips(trips []domain.Trip) []domain.Trip {
	out := make([]domain.Trip, len(trips))
	for i, t := range trips {
		out[i] = t.Clone()
	}
	return out
}

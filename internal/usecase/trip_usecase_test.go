package usecase_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/trip-planner-service/internal/domain"
	apperrors "github.com/trip-planner-service/internal/pkg/errors"
	"github.com/trip-planner-service/internal/usecase"
)

// MockTripRepository is a mock of TripRepository
type MockTripRepository struct {
	mock.Mock
}

func (m *MockTripRepository) LoadTrips(ctx context.Context) ([]domain.Trip, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Trip), args.Error(1)
}

func (m *MockTripRepository) SaveTrips(ctx context.Context, trips []domain.Trip) error {
	args := m.Called(ctx, trips)
	return args.Error(0)
}

// recordingNotifier collects published change events
type recordingNotifier struct {
	mu     sync.Mutex
	events []domain.ChangeEvent
}

func (n *recordingNotifier) Notify(ctx context.Context, event domain.ChangeEvent) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = append(n.events, event)
}

func (n *recordingNotifier) kinds() []domain.ChangeKind {
	n.mu.Lock()
	defer n.mu.Unlock()
	kinds := make([]domain.ChangeKind, 0, len(n.events))
	for _, e := range n.events {
		kinds = append(kinds, e.Kind)
	}
	return kinds
}

func newTripUseCase(repo *MockTripRepository, notifier *recordingNotifier) *usecase.TripUseCase {
	logger := zap.NewNop()
	return usecase.NewTripUseCase(
		repo,
		usecase.NewItineraryUseCase(),
		usecase.NewRewardsUseCaseWithClock(logger, fixedClock()),
		notifier,
		logger,
	)
}

func TestTripUseCase_CreateTrip(t *testing.T) {
	ctx := context.Background()
	start := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	t.Run("creates, persists and notifies", func(t *testing.T) {
		repo := &MockTripRepository{}
		repo.On("SaveTrips", mock.Anything, mock.Anything).Return(nil)
		notifier := &recordingNotifier{}
		uc := newTripUseCase(repo, notifier)

		trip, err := uc.CreateTrip(ctx, "Summer", "Barcelona, Spain", start, start.AddDate(0, 0, 7), "")
		require.NoError(t, err)

		assert.Equal(t, "Summer", trip.Name)
		assert.Nil(t, trip.Itinerary)
		assert.Len(t, uc.Trips(), 1)
		assert.Equal(t, []domain.ChangeKind{domain.ChangeTripCreated}, notifier.kinds())
		repo.AssertCalled(t, "SaveTrips", mock.Anything, mock.Anything)
	})

	t.Run("rejects end before start", func(t *testing.T) {
		repo := &MockTripRepository{}
		uc := newTripUseCase(repo, &recordingNotifier{})

		_, err := uc.CreateTrip(ctx, "Bad", "Rome, Italy", start, start.AddDate(0, 0, -1), "")
		assert.ErrorIs(t, err, apperrors.ErrInvalidDateRange)
		assert.Empty(t, uc.Trips())
	})

	t.Run("save failure keeps in-memory state", func(t *testing.T) {
		repo := &MockTripRepository{}
		repo.On("SaveTrips", mock.Anything, mock.Anything).Return(apperrors.ErrStorageError)
		uc := newTripUseCase(repo, &recordingNotifier{})

		trip, err := uc.CreateTrip(ctx, "Persisted anyway", "Oslo, Norway", start, start.AddDate(0, 0, 3), "")
		require.NoError(t, err)

		got, err := uc.GetTrip(trip.ID)
		require.NoError(t, err)
		assert.Equal(t, "Persisted anyway", got.Name)
	})
}

func TestTripUseCase_GetTrip(t *testing.T) {
	ctx := context.Background()
	repo := &MockTripRepository{}
	repo.On("SaveTrips", mock.Anything, mock.Anything).Return(nil)
	uc := newTripUseCase(repo, &recordingNotifier{})

	start := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	trip, err := uc.CreateTrip(ctx, "Trip", "Lisbon, Portugal", start, start.AddDate(0, 0, 2), "")
	require.NoError(t, err)

	t.Run("found", func(t *testing.T) {
		got, err := uc.GetTrip(trip.ID)
		require.NoError(t, err)
		assert.Equal(t, trip.ID, got.ID)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := uc.GetTrip(uuid.New())
		assert.ErrorIs(t, err, apperrors.ErrTripNotFound)
	})

	t.Run("returned snapshot is independent", func(t *testing.T) {
		got, err := uc.GetTrip(trip.ID)
		require.NoError(t, err)
		got.Name = "Mutated"

		again, err := uc.GetTrip(trip.ID)
		require.NoError(t, err)
		assert.Equal(t, "Trip", again.Name)
	})
}

func TestTripUseCase_ItineraryOperations(t *testing.T) {
	ctx := context.Background()
	repo := &MockTripRepository{}
	repo.On("SaveTrips", mock.Anything, mock.Anything).Return(nil)
	notifier := &recordingNotifier{}
	uc := newTripUseCase(repo, notifier)

	start := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	trip, err := uc.CreateTrip(ctx, "Trip", "Paris, France", start, start.AddDate(0, 0, 4), "")
	require.NoError(t, err)

	poi := newPOI("Louvre", 7200)

	t.Run("add poi lazily creates itinerary", func(t *testing.T) {
		next, err := uc.AddPOIToTrip(ctx, trip.ID, poi)
		require.NoError(t, err)

		require.NotNil(t, next.Itinerary)
		assert.Equal(t, trip.ID, next.Itinerary.TripID)
		assert.Len(t, next.Itinerary.PointsOfInterest, 1)
		assert.Equal(t, 7200, next.Itinerary.TotalEstimatedDuration)
	})

	t.Run("mark visited awards points", func(t *testing.T) {
		next, err := uc.MarkPOIVisited(ctx, trip.ID, poi)
		require.NoError(t, err)

		assert.Len(t, next.VisitedPOIs, 1)
		assert.Equal(t, domain.CategoryMuseum.Points(), next.EarnedPoints)
	})

	t.Run("remove poi recomputes duration", func(t *testing.T) {
		next, err := uc.RemovePOIFromTrip(ctx, trip.ID, poi.ID)
		require.NoError(t, err)

		assert.Empty(t, next.Itinerary.PointsOfInterest)
		assert.Equal(t, 0, next.Itinerary.TotalEstimatedDuration)
	})

	t.Run("operations on unknown trip fail", func(t *testing.T) {
		_, err := uc.AddPOIToTrip(ctx, uuid.New(), poi)
		assert.ErrorIs(t, err, apperrors.ErrTripNotFound)
	})

	t.Run("events published per mutation", func(t *testing.T) {
		kinds := notifier.kinds()
		assert.Contains(t, kinds, domain.ChangeTripCreated)
		assert.Contains(t, kinds, domain.ChangePOIAdded)
		assert.Contains(t, kinds, domain.ChangePOIVisited)
		assert.Contains(t, kinds, domain.ChangePOIRemoved)
	})
}

func TestTripUseCase_DeleteTrip(t *testing.T) {
	ctx := context.Background()
	repo := &MockTripRepository{}
	repo.On("SaveTrips", mock.Anything, mock.Anything).Return(nil)
	notifier := &recordingNotifier{}
	uc := newTripUseCase(repo, notifier)

	start := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	trip, err := uc.CreateTrip(ctx, "Doomed", "Berlin, Germany", start, start.AddDate(0, 0, 2), "")
	require.NoError(t, err)
	require.NoError(t, uc.SetCurrentTrip(trip.ID))

	uc.DeleteTrip(ctx, trip.ID)

	assert.Empty(t, uc.Trips())
	_, ok := uc.CurrentTrip()
	assert.False(t, ok, "current trip selection must be cleared")
	assert.Contains(t, notifier.kinds(), domain.ChangeTripDeleted)

	// Deleting again is a no-op and publishes nothing new
	before := len(notifier.kinds())
	uc.DeleteTrip(ctx, trip.ID)
	assert.Len(t, notifier.kinds(), before)
}

func TestTripUseCase_TimeWindows(t *testing.T) {
	ctx := context.Background()
	repo := &MockTripRepository{}
	repo.On("SaveTrips", mock.Anything, mock.Anything).Return(nil)
	uc := newTripUseCase(repo, &recordingNotifier{})

	now := time.Now()

	past, err := uc.CreateTrip(ctx, "Past", "Rome, Italy", now.AddDate(0, 0, -10), now.AddDate(0, 0, -5), "")
	require.NoError(t, err)
	ongoing, err := uc.CreateTrip(ctx, "Ongoing", "Kyoto, Japan", now.AddDate(0, 0, -1), now.AddDate(0, 0, 1), "")
	require.NoError(t, err)
	soon, err := uc.CreateTrip(ctx, "Soon", "Oslo, Norway", now.AddDate(0, 0, 5), now.AddDate(0, 0, 9), "")
	require.NoError(t, err)
	later, err := uc.CreateTrip(ctx, "Later", "Quito, Ecuador", now.AddDate(0, 0, 20), now.AddDate(0, 0, 25), "")
	require.NoError(t, err)

	t.Run("upcoming sorted ascending by start", func(t *testing.T) {
		upcoming := uc.UpcomingTrips()
		require.Len(t, upcoming, 2)
		assert.Equal(t, soon.ID, upcoming[0].ID)
		assert.Equal(t, later.ID, upcoming[1].ID)
	})

	t.Run("ongoing within date range", func(t *testing.T) {
		current := uc.CurrentTrips()
		require.Len(t, current, 1)
		assert.Equal(t, ongoing.ID, current[0].ID)
	})

	t.Run("past sorted descending by start", func(t *testing.T) {
		pastTrips := uc.PastTrips()
		require.Len(t, pastTrips, 1)
		assert.Equal(t, past.ID, pastTrips[0].ID)
	})

	t.Run("completed trip moves to past", func(t *testing.T) {
		_, completed, err := uc.CompleteTrip(ctx, ongoing.ID)
		require.NoError(t, err)
		assert.True(t, completed)

		assert.Empty(t, uc.CurrentTrips())
		pastTrips := uc.PastTrips()
		require.Len(t, pastTrips, 2)
		// ongoing started later than past, so it sorts first
		assert.Equal(t, ongoing.ID, pastTrips[0].ID)
	})
}

func TestTripUseCase_CompleteTrip(t *testing.T) {
	ctx := context.Background()
	start := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	t.Run("first completion transitions and notifies", func(t *testing.T) {
		repo := &MockTripRepository{}
		repo.On("SaveTrips", mock.Anything, mock.Anything).Return(nil)
		notifier := &recordingNotifier{}
		uc := newTripUseCase(repo, notifier)

		trip, err := uc.CreateTrip(ctx, "Rome", "Rome, Italy", start, start.AddDate(0, 0, 3), "")
		require.NoError(t, err)

		completed, transitioned, err := uc.CompleteTrip(ctx, trip.ID)
		require.NoError(t, err)
		assert.True(t, transitioned)
		assert.True(t, completed.IsCompleted)
		assert.Contains(t, notifier.kinds(), domain.ChangeTripCompleted)
	})

	t.Run("repeated completion is a no-op", func(t *testing.T) {
		repo := &MockTripRepository{}
		repo.On("SaveTrips", mock.Anything, mock.Anything).Return(nil)
		notifier := &recordingNotifier{}
		uc := newTripUseCase(repo, notifier)

		trip, err := uc.CreateTrip(ctx, "Rome", "Rome, Italy", start, start.AddDate(0, 0, 3), "")
		require.NoError(t, err)

		_, transitioned, err := uc.CompleteTrip(ctx, trip.ID)
		require.NoError(t, err)
		require.True(t, transitioned)

		again, transitioned, err := uc.CompleteTrip(ctx, trip.ID)
		require.NoError(t, err)
		assert.False(t, transitioned)
		assert.True(t, again.IsCompleted)

		// Only one completion event for the pair of calls
		completions := 0
		for _, kind := range notifier.kinds() {
			if kind == domain.ChangeTripCompleted {
				completions++
			}
		}
		assert.Equal(t, 1, completions)
	})

	t.Run("stats folded in once across repeated completions", func(t *testing.T) {
		repo := &MockTripRepository{}
		repo.On("SaveTrips", mock.Anything, mock.Anything).Return(nil)
		uc := newTripUseCase(repo, &recordingNotifier{})

		userRepo := &MockUserRepository{}
		userRepo.On("SaveUser", mock.Anything, mock.Anything).Return(nil)
		prefUC := newPreferencesUseCase(userRepo, &recordingNotifier{})

		trip, err := uc.CreateTrip(ctx, "Rome", "Rome, Italy", start, start.AddDate(0, 0, 3), "")
		require.NoError(t, err)

		// Two museum visits: 15 points each
		_, err = uc.MarkPOIVisited(ctx, trip.ID, categoryPOI(domain.CategoryMuseum))
		require.NoError(t, err)
		_, err = uc.MarkPOIVisited(ctx, trip.ID, categoryPOI(domain.CategoryMuseum))
		require.NoError(t, err)

		for i := 0; i < 2; i++ {
			completed, transitioned, err := uc.CompleteTrip(ctx, trip.ID)
			require.NoError(t, err)
			if transitioned {
				prefUC.ApplyTripToStats(ctx, completed)
			}
		}

		user := prefUC.User()
		assert.Equal(t, 1, user.TravelStats.TotalTrips)
		assert.Equal(t, 30, user.TravelStats.TotalPoints)
		assert.Equal(t, 2, user.TravelStats.TotalPlacesVisited)
	})

	t.Run("unknown trip returns not found", func(t *testing.T) {
		repo := &MockTripRepository{}
		uc := newTripUseCase(repo, &recordingNotifier{})

		_, _, err := uc.CompleteTrip(ctx, uuid.New())
		assert.ErrorIs(t, err, apperrors.ErrTripNotFound)
	})
}

func TestTripUseCase_Load(t *testing.T) {
	ctx := context.Background()

	t.Run("loads collection from repository", func(t *testing.T) {
		stored := []domain.Trip{{ID: uuid.New(), Name: "Restored"}}
		repo := &MockTripRepository{}
		repo.On("LoadTrips", mock.Anything).Return(stored, nil)
		uc := newTripUseCase(repo, &recordingNotifier{})

		require.NoError(t, uc.Load(ctx))
		trips := uc.Trips()
		require.Len(t, trips, 1)
		assert.Equal(t, "Restored", trips[0].Name)
	})

	t.Run("corrupted data loads fallback and propagates error", func(t *testing.T) {
		repo := &MockTripRepository{}
		repo.On("LoadTrips", mock.Anything).Return([]domain.Trip{}, apperrors.ErrCorruptedData)
		uc := newTripUseCase(repo, &recordingNotifier{})

		err := uc.Load(ctx)
		assert.ErrorIs(t, err, apperrors.ErrCorruptedData)
		assert.Empty(t, uc.Trips())
	})
}

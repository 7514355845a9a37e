package usecase_test

import (
	"context"
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

// MockCacheRepository is a mock of CacheRepository
type MockCacheRepository struct {
	mock.Mock
}

func (m *MockCacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockCacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

func (m *MockCacheRepository) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockCacheRepository) GetStatsSnapshot(ctx context.Context) (*domain.StatsSnapshot, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StatsSnapshot), args.Error(1)
}

func (m *MockCacheRepository) SetStatsSnapshot(ctx context.Context, snapshot *domain.StatsSnapshot, ttl time.Duration) error {
	args := m.Called(ctx, snapshot, ttl)
	return args.Error(0)
}

func statsFixtureTrips() []domain.Trip {
	return []domain.Trip{
		{
			ID:           uuid.New(),
			EarnedPoints: 45,
			VisitedPOIs:  []domain.POI{{ID: uuid.New()}, {ID: uuid.New()}},
			Badges:       []domain.TravelBadge{{Name: "Museum Explorer"}},
		},
		{
			ID:           uuid.New(),
			EarnedPoints: 24,
			VisitedPOIs:  []domain.POI{{ID: uuid.New()}},
		},
	}
}

func TestStatsUseCase_GetSnapshot(t *testing.T) {
	ctx := context.Background()
	logger := zap.NewNop()

	t.Run("cache hit short-circuits", func(t *testing.T) {
		cached := &domain.StatsSnapshot{TotalTrips: 9}
		cache := &MockCacheRepository{}
		cache.On("GetStatsSnapshot", mock.Anything).Return(cached, nil)

		tripRepo := &MockTripRepository{}
		userRepo := &MockUserRepository{}
		uc := usecase.NewStatsUseCase(tripRepo, userRepo, cache, logger, time.Minute)

		snapshot, err := uc.GetSnapshot(ctx)
		require.NoError(t, err)

		assert.Equal(t, cached, snapshot)
		tripRepo.AssertNotCalled(t, "LoadTrips", mock.Anything)
	})

	t.Run("cache miss recomputes and caches", func(t *testing.T) {
		cache := &MockCacheRepository{}
		cache.On("GetStatsSnapshot", mock.Anything).Return(nil, nil)
		cache.On("SetStatsSnapshot", mock.Anything, mock.Anything, time.Minute).Return(nil)

		tripRepo := &MockTripRepository{}
		tripRepo.On("LoadTrips", mock.Anything).Return(statsFixtureTrips(), nil)
		userRepo := &MockUserRepository{}
		userRepo.On("LoadUser", mock.Anything).Return(&domain.User{TravelStats: domain.TravelStats{TotalPoints: 250}}, nil)

		uc := usecase.NewStatsUseCase(tripRepo, userRepo, cache, logger, time.Minute)

		snapshot, err := uc.GetSnapshot(ctx)
		require.NoError(t, err)

		assert.Equal(t, 2, snapshot.TotalTrips)
		assert.Equal(t, 3, snapshot.TotalPlacesVisited)
		assert.Equal(t, 69, snapshot.TotalPoints)
		assert.Equal(t, 1, snapshot.TotalBadges)
		assert.Equal(t, 3, snapshot.UserLevel)
		cache.AssertCalled(t, "SetStatsSnapshot", mock.Anything, mock.Anything, time.Minute)
	})

	t.Run("works without cache repository", func(t *testing.T) {
		tripRepo := &MockTripRepository{}
		tripRepo.On("LoadTrips", mock.Anything).Return([]domain.Trip{}, nil)
		userRepo := &MockUserRepository{}
		userRepo.On("LoadUser", mock.Anything).Return(domain.NewDefaultUser(), nil)

		uc := usecase.NewStatsUseCase(tripRepo, userRepo, nil, logger, time.Minute)

		snapshot, err := uc.GetSnapshot(ctx)
		require.NoError(t, err)
		assert.Equal(t, 0, snapshot.TotalTrips)
		assert.Equal(t, 1, snapshot.UserLevel)
	})
}

func TestStatsUseCase_RefreshSnapshot(t *testing.T) {
	ctx := context.Background()
	logger := zap.NewNop()

	t.Run("storage fallback still yields a snapshot", func(t *testing.T) {
		tripRepo := &MockTripRepository{}
		tripRepo.On("LoadTrips", mock.Anything).Return([]domain.Trip{}, apperrors.ErrCorruptedData)
		userRepo := &MockUserRepository{}
		userRepo.On("LoadUser", mock.Anything).Return(domain.NewDefaultUser(), apperrors.ErrCorruptedData)

		uc := usecase.NewStatsUseCase(tripRepo, userRepo, nil, logger, time.Minute)

		snapshot, err := uc.RefreshSnapshot(ctx)
		require.NoError(t, err)
		assert.Equal(t, 0, snapshot.TotalTrips)
		assert.NotZero(t, snapshot.GeneratedAt)
	})

	t.Run("cache write failure is non-fatal", func(t *testing.T) {
		cache := &MockCacheRepository{}
		cache.On("SetStatsSnapshot", mock.Anything, mock.Anything, mock.Anything).Return(apperrors.ErrCacheError)

		tripRepo := &MockTripRepository{}
		tripRepo.On("LoadTrips", mock.Anything).Return(statsFixtureTrips(), nil)
		userRepo := &MockUserRepository{}
		userRepo.On("LoadUser", mock.Anything).Return(domain.NewDefaultUser(), nil)

		uc := usecase.NewStatsUseCase(tripRepo, userRepo, cache, logger, time.Minute)

		snapshot, err := uc.RefreshSnapshot(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, snapshot.TotalTrips)
	})
}

package usecase_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/trip-planner-service/internal/domain"
	"github.com/trip-planner-service/internal/usecase"
)

func fixedClock() func() time.Time {
	at := time.Date(2026, 7, 14, 12, 0, 0, 0, time.UTC)
	return func() time.Time { return at }
}

func tripWithItinerary(pois ...domain.POI) domain.Trip {
	return domain.Trip{
		ID: uuid.New(),
		Itinerary: &domain.Itinerary{
			ID:                     uuid.New(),
			PointsOfInterest:       pois,
			TotalEstimatedDuration: domain.SumVisitDurations(pois),
		},
	}
}

func categoryPOI(category domain.Category) domain.POI {
	return domain.POI{
		ID:                     uuid.New(),
		Name:                   string(category) + " poi",
		Category:               category,
		EstimatedVisitDuration: 3600,
	}
}

func TestRewardsUseCase_MarkVisited(t *testing.T) {
	uc := usecase.NewRewardsUseCaseWithClock(zap.NewNop(), fixedClock())

	t.Run("awards points and records visit", func(t *testing.T) {
		poi := categoryPOI(domain.CategoryMuseum)
		trip := tripWithItinerary(poi)

		next := uc.MarkVisited(trip, poi)

		require.Len(t, next.VisitedPOIs, 1)
		assert.Equal(t, 15, next.EarnedPoints)
		assert.True(t, next.VisitedPOIs[0].IsVisited)
		require.NotNil(t, next.VisitedPOIs[0].VisitedDate)
		assert.Equal(t, fixedClock()(), *next.VisitedPOIs[0].VisitedDate)

		// Itinerary copy reflects the visit too
		assert.True(t, next.Itinerary.PointsOfInterest[0].IsVisited)

		// Input trip untouched
		assert.Empty(t, trip.VisitedPOIs)
		assert.False(t, trip.Itinerary.PointsOfInterest[0].IsVisited)
	})

	t.Run("idempotent on repeated visit", func(t *testing.T) {
		poi := categoryPOI(domain.CategoryPark)
		trip := tripWithItinerary(poi)

		once := uc.MarkVisited(trip, poi)
		twice := uc.MarkVisited(once, poi)

		assert.Equal(t, once.EarnedPoints, twice.EarnedPoints)
		assert.Len(t, twice.VisitedPOIs, 1)
		assert.Equal(t, len(once.Badges), len(twice.Badges))
	})

	t.Run("unlocks badge after three visits in category", func(t *testing.T) {
		pois := []domain.POI{
			categoryPOI(domain.CategoryMuseum),
			categoryPOI(domain.CategoryMuseum),
			categoryPOI(domain.CategoryMuseum),
		}
		trip := tripWithItinerary(pois...)

		next := trip
		for _, p := range pois {
			next = uc.MarkVisited(next, p)
		}

		require.Len(t, next.Badges, 1)
		assert.Equal(t, "Museum Explorer", next.Badges[0].Name)
		assert.Equal(t, domain.BadgeCategoryHistorical, next.Badges[0].Category)
		assert.Equal(t, 45, next.EarnedPoints)
	})

	t.Run("badge not duplicated on fourth visit", func(t *testing.T) {
		pois := []domain.POI{
			categoryPOI(domain.CategoryCafe),
			categoryPOI(domain.CategoryCafe),
			categoryPOI(domain.CategoryCafe),
			categoryPOI(domain.CategoryCafe),
		}
		trip := tripWithItinerary(pois...)

		next := trip
		for _, p := range pois {
			next = uc.MarkVisited(next, p)
		}

		assert.Len(t, next.Badges, 1)
		assert.Equal(t, "Cafe Explorer", next.Badges[0].Name)
	})

	t.Run("multiple badges can unlock in one call", func(t *testing.T) {
		// A trip restored from storage can carry visit history without
		// badges; the next visit then unlocks every earned badge at once
		trip := tripWithItinerary(categoryPOI(domain.CategoryMuseum))
		trip.VisitedPOIs = []domain.POI{
			categoryPOI(domain.CategoryMuseum),
			categoryPOI(domain.CategoryMuseum),
			categoryPOI(domain.CategoryPark),
			categoryPOI(domain.CategoryPark),
			categoryPOI(domain.CategoryPark),
		}

		next := uc.MarkVisited(trip, trip.Itinerary.PointsOfInterest[0])

		require.Len(t, next.Badges, 2)
		assert.True(t, next.HasBadge("Museum Explorer"))
		assert.True(t, next.HasBadge("Park Explorer"))
	})
}

func TestRewardsUseCase_UpdateTravelStats(t *testing.T) {
	uc := usecase.NewRewardsUseCaseWithClock(zap.NewNop(), fixedClock())

	start := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)

	t.Run("accumulates totals", func(t *testing.T) {
		trip := domain.Trip{
			ID:          uuid.New(),
			Destination: "Barcelona, Spain",
			StartDate:   start,
			EndDate:     start.AddDate(0, 0, 5),
			VisitedPOIs: []domain.POI{
				categoryPOI(domain.CategoryMuseum),
				categoryPOI(domain.CategoryPark),
			},
			EarnedPoints:  27,
			TotalDistance: 12.5,
			Badges: []domain.TravelBadge{
				{Name: "Museum Explorer", Category: domain.BadgeCategoryHistorical},
			},
		}

		next := uc.UpdateTravelStats(domain.TravelStats{}, trip)

		assert.Equal(t, 1, next.TotalTrips)
		assert.Equal(t, 2, next.TotalPlacesVisited)
		assert.Equal(t, 27, next.TotalPoints)
		assert.Equal(t, 1, next.BadgesEarned)
		assert.InDelta(t, 12.5, next.TotalDistanceTraveled, 1e-9)
		assert.Equal(t, 5, next.LongestTrip)
		assert.Equal(t, []string{"Spain"}, next.CountriesVisited)
		assert.Equal(t, domain.CategoryHistorical, next.FavoriteCategory)
	})

	t.Run("country not duplicated", func(t *testing.T) {
		stats := domain.TravelStats{CountriesVisited: []string{"Spain"}}
		trip := domain.Trip{Destination: "Madrid, Spain", StartDate: start, EndDate: start.AddDate(0, 0, 2)}

		next := uc.UpdateTravelStats(stats, trip)

		assert.Equal(t, []string{"Spain"}, next.CountriesVisited)
	})

	t.Run("destination without comma used whole", func(t *testing.T) {
		trip := domain.Trip{Destination: "Iceland", StartDate: start, EndDate: start.AddDate(0, 0, 3)}

		next := uc.UpdateTravelStats(domain.TravelStats{}, trip)

		assert.Equal(t, []string{"Iceland"}, next.CountriesVisited)
	})

	t.Run("longest trip keeps maximum", func(t *testing.T) {
		stats := domain.TravelStats{LongestTrip: 10}
		trip := domain.Trip{Destination: "Rome, Italy", StartDate: start, EndDate: start.AddDate(0, 0, 4)}

		next := uc.UpdateTravelStats(stats, trip)

		assert.Equal(t, 10, next.LongestTrip)
	})

	t.Run("favorite category tie broken by fixed priority", func(t *testing.T) {
		trip := domain.Trip{
			Destination: "Lisbon, Portugal",
			StartDate:   start,
			EndDate:     start.AddDate(0, 0, 2),
			Badges: []domain.TravelBadge{
				{Name: "Park Explorer", Category: domain.BadgeCategoryNature},
				{Name: "Cafe Explorer", Category: domain.BadgeCategoryCulinary},
			},
		}

		next := uc.UpdateTravelStats(domain.TravelStats{}, trip)

		// culinary outranks nature in the priority order
		assert.Equal(t, domain.CategoryRestaurant, next.FavoriteCategory)
	})

	t.Run("input stats untouched", func(t *testing.T) {
		stats := domain.TravelStats{
			CountriesVisited:    []string{"Spain"},
			BadgeCategoryCounts: map[domain.BadgeCategory]int{domain.BadgeCategoryNature: 1},
		}
		trip := domain.Trip{
			Destination: "Tokyo, Japan",
			StartDate:   start,
			EndDate:     start.AddDate(0, 0, 2),
			Badges: []domain.TravelBadge{
				{Name: "Park Explorer", Category: domain.BadgeCategoryNature},
			},
		}

		_ = uc.UpdateTravelStats(stats, trip)

		assert.Equal(t, []string{"Spain"}, stats.CountriesVisited)
		assert.Equal(t, 1, stats.BadgeCategoryCounts[domain.BadgeCategoryNature])
	})
}

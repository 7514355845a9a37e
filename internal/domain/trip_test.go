package domain_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trip-planner-service/internal/domain"
)

func makePOI(category domain.Category, duration int) domain.POI {
	return domain.POI{
		ID:                     uuid.New(),
		Name:                   "Test POI",
		Category:               category,
		Lat:                    41.38,
		Lon:                    2.17,
		Rating:                 4.2,
		EstimatedVisitDuration: duration,
	}
}

func TestTrip_CompletionPercentage(t *testing.T) {
	t.Run("zero without itinerary", func(t *testing.T) {
		trip := domain.Trip{ID: uuid.New()}
		assert.Equal(t, 0.0, trip.CompletionPercentage())
	})

	t.Run("zero with empty itinerary", func(t *testing.T) {
		trip := domain.Trip{
			ID:        uuid.New(),
			Itinerary: &domain.Itinerary{PointsOfInterest: []domain.POI{}},
		}
		assert.Equal(t, 0.0, trip.CompletionPercentage())
	})

	t.Run("ratio of visited to planned", func(t *testing.T) {
		p1 := makePOI(domain.CategoryMuseum, 3600)
		p2 := makePOI(domain.CategoryPark, 3600)
		trip := domain.Trip{
			ID: uuid.New(),
			Itinerary: &domain.Itinerary{
				PointsOfInterest: []domain.POI{p1, p2},
			},
			VisitedPOIs: []domain.POI{p1},
		}
		assert.InDelta(t, 0.5, trip.CompletionPercentage(), 1e-9)
	})
}

func TestTrip_DurationDays(t *testing.T) {
	start := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

	t.Run("whole days between dates", func(t *testing.T) {
		trip := domain.Trip{StartDate: start, EndDate: start.AddDate(0, 0, 7)}
		assert.Equal(t, 7, trip.DurationDays())
	})

	t.Run("partial day truncated", func(t *testing.T) {
		trip := domain.Trip{StartDate: start, EndDate: start.Add(36 * time.Hour)}
		assert.Equal(t, 1, trip.DurationDays())
	})

	t.Run("zero when end before start", func(t *testing.T) {
		trip := domain.Trip{StartDate: start, EndDate: start.AddDate(0, 0, -1)}
		assert.Equal(t, 0, trip.DurationDays())
	})
}

func TestTrip_HasVisitedAndHasBadge(t *testing.T) {
	poi := makePOI(domain.CategoryCafe, 1800)
	trip := domain.Trip{
		VisitedPOIs: []domain.POI{poi},
		Badges:      []domain.TravelBadge{{Name: "Museum Explorer"}},
	}

	assert.True(t, trip.HasVisited(poi.ID))
	assert.False(t, trip.HasVisited(uuid.New()))
	assert.True(t, trip.HasBadge("Museum Explorer"))
	assert.False(t, trip.HasBadge("Park Explorer"))
}

func TestTrip_CloneIsIndependent(t *testing.T) {
	poi := makePOI(domain.CategoryMuseum, 3600)
	trip := domain.Trip{
		ID: uuid.New(),
		Itinerary: &domain.Itinerary{
			ID:               uuid.New(),
			PointsOfInterest: []domain.POI{poi},
		},
		VisitedPOIs: []domain.POI{poi},
		Badges:      []domain.TravelBadge{{Name: "Museum Explorer"}},
	}

	clone := trip.Clone()
	clone.Itinerary.PointsOfInterest[0].Name = "Changed"
	clone.VisitedPOIs[0].Name = "Changed"
	clone.Badges[0].Name = "Changed"

	assert.Equal(t, "Test POI", trip.Itinerary.PointsOfInterest[0].Name)
	assert.Equal(t, "Test POI", trip.VisitedPOIs[0].Name)
	assert.Equal(t, "Museum Explorer", trip.Badges[0].Name)
}

func TestTripCollection_JSONRoundTrip(t *testing.T) {
	visitedAt := time.Date(2026, 7, 14, 12, 0, 0, 0, time.UTC)
	visited := makePOI(domain.CategoryMuseum, 5400)
	visited.IsVisited = true
	visited.VisitedDate = &visitedAt
	visited.HistoricalFacts = []string{"Built in 1882"}
	visited.HasARContent = true
	visited.PriceLevel = domain.PriceLevelFree

	planned := makePOI(domain.CategoryPark, 1800)

	full := domain.Trip{
		ID:          uuid.New(),
		Name:        "Summer in Barcelona",
		Destination: "Barcelona, Spain",
		StartDate:   time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2026, 6, 8, 0, 0, 0, 0, time.UTC),
		Description: "A week of museums and beaches",
		Itinerary: &domain.Itinerary{
			ID:               uuid.New(),
			PointsOfInterest: []domain.POI{visited, planned},
			DailyPlans: []domain.DailyPlan{
				{
					ID:              uuid.New(),
					Date:            time.Date(2026, 6, 2, 0, 0, 0, 0, time.UTC),
					PlannedPOIs:     []domain.POI{planned},
					Notes:           "Park morning",
					EstimatedBudget: 40,
				},
			},
			TotalEstimatedDuration: 7200,
		},
		VisitedPOIs:   []domain.POI{visited},
		TotalDistance: 12.5,
		EarnedPoints:  15,
		Badges: []domain.TravelBadge{
			{
				ID:         uuid.New(),
				Name:       "Museum Explorer",
				Category:   domain.BadgeCategoryHistorical,
				EarnedDate: visitedAt,
			},
		},
		IsCompleted: true,
	}
	minimal := domain.Trip{
		ID:        uuid.New(),
		Name:      "Draft",
		StartDate: time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 9, 3, 0, 0, 0, 0, time.UTC),
	}

	collection := []domain.Trip{full, minimal}

	data, err := json.Marshal(collection)
	require.NoError(t, err)

	var decoded []domain.Trip
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, collection, decoded)
}

func TestSumVisitDurations(t *testing.T) {
	pois := []domain.POI{
		makePOI(domain.CategoryMuseum, 3600),
		makePOI(domain.CategoryPark, 1800),
		makePOI(domain.CategoryCafe, 2700),
	}
	assert.Equal(t, 8100, domain.SumVisitDurations(pois))
	assert.Equal(t, 0, domain.SumVisitDurations(nil))
}

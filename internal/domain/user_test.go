package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trip-planner-service/internal/domain"
)

func TestTravelStats_Level(t *testing.T) {
	tests := []struct {
		name   string
		points int
		level  int
	}{
		{"zero points is level 1", 0, 1},
		{"just below second level", 99, 1},
		{"exactly second level", 100, 2},
		{"mid range", 1050, 11},
		{"just below cap", 4899, 49},
		{"at cap boundary", 4900, 50},
		{"beyond cap stays capped", 500000, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stats := domain.TravelStats{TotalPoints: tt.points}
			assert.Equal(t, tt.level, stats.Level())
		})
	}
}

func TestTravelStats_ProgressToNextLevel(t *testing.T) {
	t.Run("fraction within level", func(t *testing.T) {
		stats := domain.TravelStats{TotalPoints: 150}
		assert.InDelta(t, 0.5, stats.ProgressToNextLevel(), 1e-9)
	})

	t.Run("zero at level boundary", func(t *testing.T) {
		stats := domain.TravelStats{TotalPoints: 200}
		assert.InDelta(t, 0.0, stats.ProgressToNextLevel(), 1e-9)
	})

	t.Run("clamped to one at max level", func(t *testing.T) {
		stats := domain.TravelStats{TotalPoints: 123456}
		assert.Equal(t, 1.0, stats.ProgressToNextLevel())
	})
}

func TestTravelStats_HasVisitedCountry(t *testing.T) {
	stats := domain.TravelStats{CountriesVisited: []string{"Spain", "Japan"}}
	assert.True(t, stats.HasVisitedCountry("Japan"))
	assert.False(t, stats.HasVisitedCountry("France"))
}

func TestUserPreferences_UnmarshalJSON_Defaults(t *testing.T) {
	t.Run("empty object gets defaults", func(t *testing.T) {
		var prefs domain.UserPreferences
		require.NoError(t, json.Unmarshal([]byte(`{}`), &prefs))

		assert.Equal(t, domain.TravelStyleBalanced, prefs.TravelStyle)
		assert.Equal(t, domain.BudgetRangeModerate, prefs.BudgetRange)
		assert.Equal(t, []domain.TransportMode{domain.TransportModeWalking}, prefs.PreferredTransport)
		assert.Equal(t, "en", prefs.LanguagePreference)
		assert.True(t, prefs.NotificationsEnabled)
	})

	t.Run("explicit values survive", func(t *testing.T) {
		raw := `{"travel_style":"packed","budget_range":"luxury","preferred_transport":["car"]}`
		var prefs domain.UserPreferences
		require.NoError(t, json.Unmarshal([]byte(raw), &prefs))

		assert.Equal(t, domain.TravelStylePacked, prefs.TravelStyle)
		assert.Equal(t, domain.BudgetRangeLuxury, prefs.BudgetRange)
		assert.Equal(t, []domain.TransportMode{domain.TransportModeCar}, prefs.PreferredTransport)
	})

	t.Run("empty transport list replaced with walking", func(t *testing.T) {
		raw := `{"preferred_transport":[]}`
		var prefs domain.UserPreferences
		require.NoError(t, json.Unmarshal([]byte(raw), &prefs))

		assert.Equal(t, []domain.TransportMode{domain.TransportModeWalking}, prefs.PreferredTransport)
	})
}

func TestNewDefaultUser(t *testing.T) {
	user := domain.NewDefaultUser()

	assert.Equal(t, "Traveler", user.Name)
	assert.False(t, user.HasCompletedOnboarding)
	assert.Equal(t, domain.DefaultPreferences(), user.Preferences)
	assert.Equal(t, 1, user.TravelStats.Level())
	assert.NotZero(t, user.ID)
}

package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// MaxLevel - максимальный уровень пользователя
const MaxLevel = 50

// PointsPerLevel - количество очков на один уровень
const PointsPerLevel = 100

// User представляет локального пользователя приложения.
// На установку существует ровно один пользователь.
type User struct {
	ID                     uuid.UUID       `json:"id"`
	Name                   string          `json:"name"`
	ProfileImageName       string          `json:"profile_image_name,omitempty"`
	Preferences            UserPreferences `json:"preferences"`
	TravelStats            TravelStats     `json:"travel_stats"`
	HasCompletedOnboarding bool            `json:"has_completed_onboarding"`
	CreatedDate            time.Time       `json:"created_date"`
}

// TravelStyle представляет стиль путешествий
type TravelStyle string

const (
	TravelStyleRelaxed  TravelStyle = "relaxed"
	TravelStyleBalanced TravelStyle = "balanced"
	TravelStylePacked   TravelStyle = "packed"
)

// BudgetRange представляет бюджетный диапазон
type BudgetRange string

const (
	BudgetRangeBudget   BudgetRange = "budget"
	BudgetRangeModerate BudgetRange = "moderate"
	BudgetRangeLuxury   BudgetRange = "luxury"
)

// UserPreferences - настройки путешествий пользователя
type UserPreferences struct {
	FavoriteCategories   []Category      `json:"favorite_categories,omitempty"`
	TravelStyle          TravelStyle     `json:"travel_style"`
	BudgetRange          BudgetRange     `json:"budget_range"`
	PreferredTransport   []TransportMode `json:"preferred_transport"`
	Interests            []string        `json:"interests,omitempty"`
	LanguagePreference   string          `json:"language_preference"`
	NotificationsEnabled bool            `json:"notifications_enabled"`
	ARFeaturesEnabled    bool            `json:"ar_features_enabled"`
}

// UnmarshalJSON декодирует настройки, подставляя значения по умолчанию
// для полей, отсутствующих в старых записях
func (p *UserPreferences) UnmarshalJSON(data []byte) error {
	type alias UserPreferences
	a := alias(DefaultPreferences())
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	if len(a.PreferredTransport) == 0 {
		a.PreferredTransport = []TransportMode{TransportModeWalking}
	}
	*p = UserPreferences(a)
	return nil
}

// TravelStats - накопленная статистика путешествий пользователя.
// BadgeCategoryCounts - накопительный счётчик бейджей по категориям;
// по нему детерминированно пересчитывается FavoriteCategory.
type TravelStats struct {
	TotalTrips            int                   `json:"total_trips"`
	TotalPlacesVisited    int                   `json:"total_places_visited"`
	TotalDistanceTraveled float64               `json:"total_distance_traveled"`
	TotalPoints           int                   `json:"total_points"`
	BadgesEarned          int                   `json:"badges_earned"`
	CountriesVisited      []string              `json:"countries_visited,omitempty"`
	FavoriteCategory      Category              `json:"favorite_category,omitempty"`
	LongestTrip           int                   `json:"longest_trip"` // days
	BadgeCategoryCounts   map[BadgeCategory]int `json:"badge_category_counts,omitempty"`
}

// Level возвращает уровень пользователя как чистую функцию от очков
func (s TravelStats) Level() int {
	level := s.TotalPoints/PointsPerLevel + 1
	if level > MaxLevel {
		return MaxLevel
	}
	return level
}

// ProgressToNextLevel возвращает прогресс до следующего уровня как долю [0,1].
// На максимальном уровне прогресс ограничен единицей и на уровень не влияет.
func (s TravelStats) ProgressToNextLevel() float64 {
	level := s.Level()
	progress := float64(s.TotalPoints-(level-1)*PointsPerLevel) / float64(PointsPerLevel)
	if progress > 1 {
		return 1
	}
	return progress
}

// HasVisitedCountry проверяет наличие страны в множестве посещённых
func (s TravelStats) HasVisitedCountry(country string) bool {
	for _, c := range s.CountriesVisited {
		if c == country {
			return true
		}
	}
	return false
}

// DefaultPreferences возвращает настройки по умолчанию
func DefaultPreferences() UserPreferences {
	return UserPreferences{
		TravelStyle:          TravelStyleBalanced,
		BudgetRange:          BudgetRangeModerate,
		PreferredTransport:   []TransportMode{TransportModeWalking},
		LanguagePreference:   "en",
		NotificationsEnabled: true,
	}
}

// NewDefaultUser возвращает пользователя по умолчанию.
// Используется при первом запуске и как фолбэк при повреждённых данных.
func NewDefaultUser() *User {
	return &User{
		ID:          uuid.New(),
		Name:        "Traveler",
		Preferences: DefaultPreferences(),
		CreatedDate: time.Now().UTC(),
	}
}

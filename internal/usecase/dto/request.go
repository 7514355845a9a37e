package dto

import (
	"time"

	"github.com/google/uuid"
)

// CreateTripRequest - запрос на создание поездки.
// Дата окончания раньше даты начала отклоняется на границе,
// до обращения к use case.
type CreateTripRequest struct {
	Name        string    `json:"name" validate:"required,min=1,max=200"`
	Destination string    `json:"destination" validate:"required,min=1,max=200"`
	StartDate   time.Time `json:"start_date" validate:"required"`
	EndDate     time.Time `json:"end_date" validate:"required"`
	Description string    `json:"description,omitempty" validate:"max=2000"`
}

// UpdateTripRequest - запрос на обновление поездки
type UpdateTripRequest struct {
	Name        string    `json:"name" validate:"required,min=1,max=200"`
	Destination string    `json:"destination" validate:"required,min=1,max=200"`
	StartDate   time.Time `json:"start_date" validate:"required"`
	EndDate     time.Time `json:"end_date" validate:"required"`
	Description string    `json:"description,omitempty" validate:"max=2000"`
	IsCompleted bool      `json:"is_completed"`
}

// AddPOIRequest - запрос на добавление POI в маршрут поездки
type AddPOIRequest struct {
	ID                     uuid.UUID `json:"id,omitempty"`
	Name                   string    `json:"name" validate:"required,min=1,max=200"`
	Description            string    `json:"description,omitempty" validate:"max=2000"`
	Category               string    `json:"category" validate:"required"`
	Lat                    float64   `json:"lat" validate:"min=-90,max=90"`
	Lon                    float64   `json:"lon" validate:"min=-180,max=180"`
	Address                string    `json:"address,omitempty"`
	Rating                 float64   `json:"rating" validate:"min=0,max=5"`
	PriceLevel             string    `json:"price_level,omitempty"`
	EstimatedVisitDuration int       `json:"estimated_visit_duration,omitempty" validate:"omitempty,min=1"`
	HistoricalFacts        []string  `json:"historical_facts,omitempty"`
	HasARContent           bool      `json:"has_ar_content,omitempty"`
}

// ReorderPOIsRequest - запрос на перестановку POI в маршруте
type ReorderPOIsRequest struct {
	FromIndices []int `json:"from_indices" validate:"required,min=1,dive,min=0"`
	ToIndex     int   `json:"to_index" validate:"min=0"`
}

// MarkVisitedRequest - запрос на отметку POI посещённым
type MarkVisitedRequest struct {
	POIID uuid.UUID `json:"poi_id" validate:"required"`
}

// NearbyRequest - запрос кандидатов POI вокруг координаты
type NearbyRequest struct {
	Lat      float64 `json:"lat" validate:"min=-90,max=90"`
	Lon      float64 `json:"lon" validate:"min=-180,max=180"`
	RadiusKm float64 `json:"radius_km" validate:"omitempty,min=0.1,max=100"`
}

// SearchPOIRequest - запрос текстового поиска POI.
// Пустой запрос отсекается на границе: сервис обнаружения его не
// обрабатывает особо.
type SearchPOIRequest struct {
	Query string   `json:"query" validate:"required,min=1"`
	Lat   *float64 `json:"lat,omitempty" validate:"omitempty,min=-90,max=90"`
	Lon   *float64 `json:"lon,omitempty" validate:"omitempty,min=-180,max=180"`
}

// TravelTimeRequest - запрос оценки времени в пути до точки
type TravelTimeRequest struct {
	Lat  float64 `json:"lat" validate:"min=-90,max=90"`
	Lon  float64 `json:"lon" validate:"min=-180,max=180"`
	Mode string  `json:"mode" validate:"required,oneof=walking bicycle publicTransport car rideshare"`
}

// UpdatePreferencesRequest - запрос на обновление настроек путешествий
type UpdatePreferencesRequest struct {
	FavoriteCategories   []string `json:"favorite_categories,omitempty"`
	TravelStyle          string   `json:"travel_style" validate:"required,oneof=relaxed balanced packed"`
	BudgetRange          string   `json:"budget_range" validate:"required,oneof=budget moderate luxury"`
	PreferredTransport   []string `json:"preferred_transport,omitempty" validate:"omitempty,dive,oneof=walking bicycle publicTransport car rideshare"`
	Interests            []string `json:"interests,omitempty"`
	LanguagePreference   string   `json:"language_preference,omitempty"`
	NotificationsEnabled bool     `json:"notifications_enabled"`
	ARFeaturesEnabled    bool     `json:"ar_features_enabled"`
}

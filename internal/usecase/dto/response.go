package dto

import (
	"github.com/trip-planner-service/internal/domain"
)

// TripResponse - поездка с производными полями для слоя представления
type TripResponse struct {
	domain.Trip
	CompletionPercentage float64 `json:"completion_percentage"`
	DurationDays         int     `json:"duration_days"`
}

// NewTripResponse собирает TripResponse из доменной поездки
func NewTripResponse(t domain.Trip) TripResponse {
	return TripResponse{
		Trip:                 t,
		CompletionPercentage: t.CompletionPercentage(),
		DurationDays:         t.DurationDays(),
	}
}

// NewTripResponses собирает срез TripResponse
func NewTripResponses(trips []domain.Trip) []TripResponse {
	out := make([]TripResponse, 0, len(trips))
	for _, t := range trips {
		out = append(out, NewTripResponse(t))
	}
	return out
}

// UserResponse - пользователь с производными полями уровня
type UserResponse struct {
	domain.User
	Level               int     `json:"level"`
	ProgressToNextLevel float64 `json:"progress_to_next_level"`
}

// NewUserResponse собирает UserResponse из доменного пользователя
func NewUserResponse(u domain.User) UserResponse {
	return UserResponse{
		User:                u,
		Level:               u.TravelStats.Level(),
		ProgressToNextLevel: u.TravelStats.ProgressToNextLevel(),
	}
}

// TravelTimeResponse - оценка времени в пути
type TravelTimeResponse struct {
	DistanceKm      float64              `json:"distance_km"`
	Mode            domain.TransportMode `json:"mode"`
	DurationSeconds float64              `json:"duration_seconds"`
}

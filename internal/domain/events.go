package domain

import (
	"time"

	"github.com/google/uuid"
)

// Stream names
const (
	StreamTripsChanged = "stream:trips:changed"
)

// ChangeKind - тип изменения доменного состояния
type ChangeKind string

const (
	ChangeTripCreated        ChangeKind = "trip_created"
	ChangeTripUpdated        ChangeKind = "trip_updated"
	ChangeTripDeleted        ChangeKind = "trip_deleted"
	ChangeTripCompleted      ChangeKind = "trip_completed"
	ChangePOIAdded           ChangeKind = "poi_added"
	ChangePOIRemoved         ChangeKind = "poi_removed"
	ChangePOIReordered       ChangeKind = "poi_reordered"
	ChangePOIVisited         ChangeKind = "poi_visited"
	ChangePreferencesUpdated ChangeKind = "preferences_updated"
)

// ChangeEvent - событие изменения состояния, публикуемое для подписчиков
// (слой представления, воркер статистики)
type ChangeEvent struct {
	Kind       ChangeKind `json:"kind"`
	TripID     uuid.UUID  `json:"trip_id,omitempty"`
	OccurredAt time.Time  `json:"occurred_at"`
}

// StreamMessage - сообщение из Redis Stream
type StreamMessage struct {
	ID   string
	Data string
}

// LocationAuthStatus - состояние авторизации доступа к геолокации
type LocationAuthStatus string

const (
	LocationAuthNotDetermined LocationAuthStatus = "not_determined"
	LocationAuthAuthorized    LocationAuthStatus = "authorized"
	LocationAuthDenied        LocationAuthStatus = "denied"
)

// StatsSnapshot - агрегированный срез статистики, кешируемый воркером
type StatsSnapshot struct {
	TotalTrips         int       `json:"total_trips"`
	TotalPlacesVisited int       `json:"total_places_visited"`
	TotalPoints        int       `json:"total_points"`
	TotalBadges        int       `json:"total_badges"`
	UserLevel          int       `json:"user_level"`
	GeneratedAt        time.Time `json:"generated_at"`
}

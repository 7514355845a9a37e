package domain

import (
	"time"

	"github.com/google/uuid"
)

// Trip представляет поездку пользователя.
// Itinerary создаётся лениво при добавлении первого POI.
// VisitedPOIs хранит независимые копии посещённых POI (не ссылки на
// элементы маршрута).
type Trip struct {
	ID            uuid.UUID     `json:"id"`
	Name          string        `json:"name"`
	Destination   string        `json:"destination"`
	StartDate     time.Time     `json:"start_date"`
	EndDate       time.Time     `json:"end_date"`
	Description   string        `json:"description,omitempty"`
	Itinerary     *Itinerary    `json:"itinerary,omitempty"`
	VisitedPOIs   []POI         `json:"visited_pois,omitempty"`
	TotalDistance float64       `json:"total_distance"`
	EarnedPoints  int           `json:"earned_points"`
	Badges        []TravelBadge `json:"badges,omitempty"`
	IsCompleted   bool          `json:"is_completed"`
}

// Itinerary представляет упорядоченный план точек интереса для поездки.
// TotalEstimatedDuration всегда равна сумме длительностей POI и
// пересчитывается после каждой мутации.
type Itinerary struct {
	ID                     uuid.UUID   `json:"id"`
	TripID                 uuid.UUID   `json:"trip_id"`
	PointsOfInterest       []POI       `json:"points_of_interest"`
	DailyPlans             []DailyPlan `json:"daily_plans,omitempty"`
	TotalEstimatedDuration int         `json:"total_estimated_duration"` // seconds
}

// DailyPlan представляет план на один день поездки
type DailyPlan struct {
	ID              uuid.UUID `json:"id"`
	Date            time.Time `json:"date"`
	PlannedPOIs     []POI     `json:"planned_pois,omitempty"`
	Notes           string    `json:"notes,omitempty"`
	EstimatedBudget float64   `json:"estimated_budget"`
}

// TotalDuration возвращает суммарную длительность посещений за день (секунды).
// Производное значение, не хранится.
func (d DailyPlan) TotalDuration() int {
	total := 0
	for _, p := range d.PlannedPOIs {
		total += p.EstimatedVisitDuration
	}
	return total
}

// SumVisitDurations возвращает сумму длительностей посещения POI (секунды)
func SumVisitDurations(pois []POI) int {
	total := 0
	for _, p := range pois {
		total += p.EstimatedVisitDuration
	}
	return total
}

// Clone возвращает глубокую копию маршрута
func (i Itinerary) Clone() Itinerary {
	cp := i
	if i.PointsOfInterest != nil {
		cp.PointsOfInterest = make([]POI, len(i.PointsOfInterest))
		for j, p := range i.PointsOfInterest {
			cp.PointsOfInterest[j] = p.Clone()
		}
	}
	if i.DailyPlans != nil {
		cp.DailyPlans = make([]DailyPlan, len(i.DailyPlans))
		for j, d := range i.DailyPlans {
			cp.DailyPlans[j] = d.Clone()
		}
	}
	return cp
}

// Clone возвращает глубокую копию дневного плана
func (d DailyPlan) Clone() DailyPlan {
	cp := d
	if d.PlannedPOIs != nil {
		cp.PlannedPOIs = make([]POI, len(d.PlannedPOIs))
		for j, p := range d.PlannedPOIs {
			cp.PlannedPOIs[j] = p.Clone()
		}
	}
	return cp
}

// Clone возвращает глубокую копию поездки
func (t Trip) Clone() Trip {
	cp := t
	if t.Itinerary != nil {
		it := t.Itinerary.Clone()
		cp.Itinerary = &it
	}
	if t.VisitedPOIs != nil {
		cp.VisitedPOIs = make([]POI, len(t.VisitedPOIs))
		for j, p := range t.VisitedPOIs {
			cp.VisitedPOIs[j] = p.Clone()
		}
	}
	if t.Badges != nil {
		cp.Badges = append([]TravelBadge(nil), t.Badges...)
	}
	return cp
}

// CompletionPercentage возвращает долю посещённых POI маршрута [0,1].
// Ноль для поездки без маршрута или с пустым маршрутом.
func (t Trip) CompletionPercentage() float64 {
	if t.Itinerary == nil || len(t.Itinerary.PointsOfInterest) == 0 {
		return 0
	}
	return float64(len(t.VisitedPOIs)) / float64(len(t.Itinerary.PointsOfInterest))
}

// DurationDays возвращает длительность поездки в целых днях
func (t Trip) DurationDays() int {
	if t.EndDate.Before(t.StartDate) {
		return 0
	}
	return int(t.EndDate.Sub(t.StartDate).Hours() / 24)
}

// HasVisited проверяет, отмечен ли POI как посещённый в этой поездке
func (t Trip) HasVisited(poiID uuid.UUID) bool {
	for _, p := range t.VisitedPOIs {
		if p.ID == poiID {
			return true
		}
	}
	return false
}

// HasBadge проверяет наличие бейджа по имени
func (t Trip) HasBadge(name string) bool {
	for _, b := range t.Badges {
		if b.Name == name {
			return true
		}
	}
	return false
}

package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// DefaultVisitDuration - длительность посещения POI по умолчанию (секунды)
const DefaultVisitDuration = 3600

// POI представляет точку интереса
type POI struct {
	ID                     uuid.UUID  `json:"id"`
	Name                   string     `json:"name"`
	Description            string     `json:"description,omitempty"`
	Category               Category   `json:"category"`
	Lat                    float64    `json:"lat"`
	Lon                    float64    `json:"lon"`
	Address                string     `json:"address,omitempty"`
	Rating                 float64    `json:"rating"`
	PriceLevel             PriceLevel `json:"price_level"`
	EstimatedVisitDuration int        `json:"estimated_visit_duration"` // seconds
	IsVisited              bool       `json:"is_visited"`
	VisitedDate            *time.Time `json:"visited_date,omitempty"`
	HistoricalFacts        []string   `json:"historical_facts,omitempty"`
	HasARContent           bool       `json:"has_ar_content"`
}

// UnmarshalJSON декодирует POI, подставляя длительность по умолчанию,
// если поле отсутствует в старых записях
func (p *POI) UnmarshalJSON(data []byte) error {
	type alias POI
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	if a.EstimatedVisitDuration <= 0 {
		a.EstimatedVisitDuration = DefaultVisitDuration
	}
	*p = POI(a)
	return nil
}

// Clone возвращает независимую копию POI
func (p POI) Clone() POI {
	cp := p
	if p.VisitedDate != nil {
		d := *p.VisitedDate
		cp.VisitedDate = &d
	}
	if p.HistoricalFacts != nil {
		cp.HistoricalFacts = append([]string(nil), p.HistoricalFacts...)
	}
	return cp
}

// LatLon - координаты точки
type LatLon struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// PriceLevel представляет ценовую категорию POI
type PriceLevel string

const (
	PriceLevelFree      PriceLevel = "free"
	PriceLevelCheap     PriceLevel = "$"
	PriceLevelModerate  PriceLevel = "$$"
	PriceLevelExpensive PriceLevel = "$$$"
	PriceLevelLuxury    PriceLevel = "$$$$"
)

// ValidPriceLevels returns list of valid price levels
func ValidPriceLevels() []PriceLevel {
	return []PriceLevel{
		PriceLevelFree,
		PriceLevelCheap,
		PriceLevelModerate,
		PriceLevelExpensive,
		PriceLevelLuxury,
	}
}

package domain

import (
	"time"

	"github.com/google/uuid"
)

// BadgeCategory представляет категорию бейджа
type BadgeCategory string

const (
	BadgeCategoryHistorical  BadgeCategory = "historical"
	BadgeCategoryCulinary    BadgeCategory = "culinary"
	BadgeCategoryNature      BadgeCategory = "nature"
	BadgeCategoryCulture     BadgeCategory = "culture"
	BadgeCategoryAdventure   BadgeCategory = "adventure"
	BadgeCategoryPhotography BadgeCategory = "photography"
)

// BadgeCategoryPriority - фиксированный порядок категорий бейджей.
// Используется для детерминированного разрешения ничьих при подсчёте
// любимой категории пользователя.
var BadgeCategoryPriority = []BadgeCategory{
	BadgeCategoryHistorical,
	BadgeCategoryCulinary,
	BadgeCategoryNature,
	BadgeCategoryCulture,
	BadgeCategoryAdventure,
	BadgeCategoryPhotography,
}

// TravelBadge представляет награду за достижение.
// Name служит естественным ключом дедупликации: бейдж с уже
// существующим именем повторно не выдаётся.
type TravelBadge struct {
	ID          uuid.UUID     `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description,omitempty"`
	IconName    string        `json:"icon_name,omitempty"`
	Category    BadgeCategory `json:"category"`
	EarnedDate  time.Time     `json:"earned_date"`
}

// BadgeCategoryToPOICategory возвращает POI-категорию, соответствующую
// категории бейджа (первая по таблице атрибутов в фиксированном порядке категорий)
func BadgeCategoryToPOICategory(bc BadgeCategory) Category {
	for _, c := range ValidCategories() {
		if c.Attributes().BadgeCategory == bc {
			return c
		}
	}
	return ""
}

package usecase

import (
	"sort"

	"github.com/google/uuid"

	"github.com/trip-planner-service/internal/domain"
)

// ItineraryUseCase - чистые операции над маршрутом поездки.
// Все операции возвращают новый снимок (copy-on-write): вызывающий
// никогда не наблюдает частичную мутацию. Персистентность - забота
// вызывающего (TripUseCase).
type ItineraryUseCase struct{}

// NewItineraryUseCase - создание нового ItineraryUseCase
func NewItineraryUseCase() *ItineraryUseCase {
	return &ItineraryUseCase{}
}

// CreateItinerary возвращает новый пустой маршрут, привязанный к поездке
func (uc *ItineraryUseCase) CreateItinerary(tripID uuid.UUID) domain.Itinerary {
	return domain.Itinerary{
		ID:               uuid.New(),
		TripID:           tripID,
		PointsOfInterest: []domain.POI{},
	}
}

// AddPOI добавляет POI в конец маршрута и пересчитывает длительность.
// POI копируется в маршрут как значение, а не как ссылка на каталожную
// запись.
func (uc *ItineraryUseCase) AddPOI(itinerary domain.Itinerary, poi domain.POI) domain.Itinerary {
	next := itinerary.Clone()
	if poi.EstimatedVisitDuration <= 0 {
		poi.EstimatedVisitDuration = domain.DefaultVisitDuration
	}
	next.PointsOfInterest = append(next.PointsOfInterest, poi.Clone())
	next.TotalEstimatedDuration = domain.SumVisitDurations(next.PointsOfInterest)
	return next
}

// RemovePOI удаляет все вхождения POI с данным id и пересчитывает
// длительность. Отсутствующий id - no-op, не ошибка.
func (uc *ItineraryUseCase) RemovePOI(itinerary domain.Itinerary, poiID uuid.UUID) domain.Itinerary {
	next := itinerary.Clone()
	kept := next.PointsOfInterest[:0]
	for _, p := range next.PointsOfInterest {
		if p.ID != poiID {
			kept = append(kept, p)
		}
	}
	next.PointsOfInterest = kept
	next.TotalEstimatedDuration = domain.SumVisitDurations(next.PointsOfInterest)
	return next
}

// ReorderPOI перемещает указанные позиции к новой позиции, сохраняя
// относительный порядок перемещаемых элементов. Индексы вне диапазона
// игнорируются. Пересчёт длительности от порядка не зависит, но
// выполняется для единообразия с остальными мутациями.
func (uc *ItineraryUseCase) ReorderPOI(itinerary domain.Itinerary, fromIndices []int, toIndex int) domain.Itinerary {
	next := itinerary.Clone()
	pois := next.PointsOfInterest

	// Нормализуем индексы: валидные, уникальные, по возрастанию
	seen := make(map[int]bool, len(fromIndices))
	indices := make([]int, 0, len(fromIndices))
	for _, idx := range fromIndices {
		if idx < 0 || idx >= len(pois) || seen[idx] {
			continue
		}
		seen[idx] = true
		indices = append(indices, idx)
	}
	if len(indices) == 0 {
		return next
	}
	sort.Ints(indices)

	if toIndex < 0 {
		toIndex = 0
	}
	if toIndex > len(pois) {
		toIndex = len(pois)
	}

	moved := make([]domain.POI, 0, len(indices))
	remaining := make([]domain.POI, 0, len(pois)-len(indices))
	// Позиция вставки в remaining: toIndex минус число перемещаемых
	// элементов, стоявших до него
	insertAt := toIndex
	for i, p := range pois {
		if seen[i] {
			moved = append(moved, p)
			if i < toIndex {
				insertAt--
			}
		} else {
			remaining = append(remaining, p)
		}
	}

	reordered := make([]domain.POI, 0, len(pois))
	reordered = append(reordered, remaining[:insertAt]...)
	reordered = append(reordered, moved...)
	reordered = append(reordered, remaining[insertAt:]...)

	next.PointsOfInterest = reordered
	next.TotalEstimatedDuration = domain.SumVisitDurations(next.PointsOfInterest)
	return next
}

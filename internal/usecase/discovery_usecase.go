package usecase

import (
	"context"
	"math/rand"
	"strings"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/trip-planner-service/internal/domain"
	"github.com/trip-planner-service/internal/domain/repository"
	"github.com/trip-planner-service/internal/pkg/errors"
	"github.com/trip-planner-service/internal/pkg/utils"
)

const (
	// coordinateScatter - разброс координат кандидатов вокруг центра (градусы на ось)
	coordinateScatter = 0.01

	minVisitDuration = 1800
	maxVisitDuration = 7200

	minRating = 3.0
	maxRating = 5.0
)

// DiscoveryUseCase - генерация и фильтрация кандидатов POI.
// Источник данных мок-генератор с инжектируемым сидированным
// генератором случайных чисел, чтобы результаты были воспроизводимы
// в тестах. Геолокация приходит от внешнего коллаборатора; её
// отсутствие означает недоступность оценки, а не ошибку.
type DiscoveryUseCase struct {
	mu             sync.Mutex
	rng            *rand.Rand
	location       repository.LocationProvider
	logger         *zap.Logger
	candidateCount int
	searchRadiusKm float64
}

// NewDiscoveryUseCase - создание нового DiscoveryUseCase
func NewDiscoveryUseCase(
	rng *rand.Rand,
	location repository.LocationProvider,
	logger *zap.Logger,
	candidateCount int,
	searchRadiusKm float64,
) *DiscoveryUseCase {
	if candidateCount <= 0 {
		candidateCount = 20
	}
	if searchRadiusKm <= 0 {
		searchRadiusKm = 10
	}
	return &DiscoveryUseCase{
		rng:            rng,
		location:       location,
		logger:         logger,
		candidateCount: candidateCount,
		searchRadiusKm: searchRadiusKm,
	}
}

// Nearby возвращает ограниченный набор кандидатов POI вокруг координаты.
// Радиус носит рекомендательный характер: разброс фиксирован
// (±coordinateScatter по каждой оси) и от радиуса не зависит.
func (uc *DiscoveryUseCase) Nearby(ctx context.Context, center domain.LatLon, radiusKm float64) ([]domain.POI, error) {
	if !utils.ValidateCoordinates(center.Lat, center.Lon) {
		return nil, errors.ErrInvalidCoordinates
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	categories := domain.ValidCategories()
	pois := make([]domain.POI, 0, uc.candidateCount)
	for i := 0; i < uc.candidateCount; i++ {
		category := categories[uc.rng.Intn(len(categories))]
		pois = append(pois, uc.generatePOI(i, category, center))
	}

	uc.logger.Debug("Nearby candidates generated",
		zap.Float64("lat", center.Lat),
		zap.Float64("lon", center.Lon),
		zap.Int("count", len(pois)))

	return pois, nil
}

// Search вызывает Nearby с поисковым радиусом и фильтрует кандидатов,
// у которых название, описание или метка категории содержат запрос без
// учёта регистра. Пустой запрос не обрабатывается особо - это
// ответственность вызывающего.
func (uc *DiscoveryUseCase) Search(ctx context.Context, query string, center domain.LatLon) ([]domain.POI, error) {
	candidates, err := uc.Nearby(ctx, center, uc.searchRadiusKm)
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(query)
	matched := make([]domain.POI, 0)
	for _, p := range candidates {
		if strings.Contains(strings.ToLower(p.Name), needle) ||
			strings.Contains(strings.ToLower(p.Description), needle) ||
			strings.Contains(strings.ToLower(p.Category.Label()), needle) {
			matched = append(matched, p)
		}
	}

	uc.logger.Debug("Search completed",
		zap.String("query", query),
		zap.Int("matched", len(matched)))

	return matched, nil
}

// EstimatedTravelTime возвращает оценку времени в пути в секундах от
// текущей локации до точки. Неизвестная локация - ErrLocationUnavailable.
func (uc *DiscoveryUseCase) EstimatedTravelTime(ctx context.Context, destination domain.LatLon, mode domain.TransportMode) (float64, float64, error) {
	if !domain.IsValidTransportMode(mode) {
		return 0, 0, errors.ErrInvalidTransportMode
	}

	current := uc.location.CurrentLocation(ctx)
	if current == nil {
		return 0, 0, errors.ErrLocationUnavailable
	}

	distanceKm := utils.HaversineDistance(current.Lat, current.Lon, destination.Lat, destination.Lon)
	seconds := utils.TravelTimeSeconds(distanceKm, domain.TransportSpeedKmh[mode])
	return seconds, distanceKm, nil
}

// CurrentLocation возвращает текущую координату, если она известна
func (uc *DiscoveryUseCase) CurrentLocation(ctx context.Context) *domain.LatLon {
	return uc.location.CurrentLocation(ctx)
}

// generatePOI собирает одного кандидата из шаблонов категории
func (uc *DiscoveryUseCase) generatePOI(index int, category domain.Category, center domain.LatLon) domain.POI {
	names := poiNameTemplates[category]
	name := names[index%len(names)]

	poi := domain.POI{
		ID:                     uuid.New(),
		Name:                   name,
		Description:            poiDescriptionTemplates[category],
		Category:               category,
		Lat:                    center.Lat + (uc.rng.Float64()*2-1)*coordinateScatter,
		Lon:                    center.Lon + (uc.rng.Float64()*2-1)*coordinateScatter,
		Rating:                 minRating + uc.rng.Float64()*(maxRating-minRating),
		PriceLevel:             randomPriceLevel(uc.rng),
		EstimatedVisitDuration: minVisitDuration + uc.rng.Intn(maxVisitDuration-minVisitDuration+1),
		HasARContent:           uc.rng.Intn(2) == 1,
	}

	if category == domain.CategoryHistorical {
		poi.HistoricalFacts = append([]string(nil), historicalFacts...)
	}

	return poi
}

func randomPriceLevel(rng *rand.Rand) domain.PriceLevel {
	levels := domain.ValidPriceLevels()
	return levels[rng.Intn(len(levels))]
}

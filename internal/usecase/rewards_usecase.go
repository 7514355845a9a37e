package usecase

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/trip-planner-service/internal/domain"
)

// badgeUnlockThreshold - число посещений одной категории для разблокировки бейджа
const badgeUnlockThreshold = 3

// RewardsUseCase - начисление очков, отметка посещений и разблокировка
// бейджей. Часы инжектируются для воспроизводимости в тестах.
type RewardsUseCase struct {
	logger *zap.Logger
	now    func() time.Time
}

// NewRewardsUseCase - создание нового RewardsUseCase
func NewRewardsUseCase(logger *zap.Logger) *RewardsUseCase {
	return &RewardsUseCase{
		logger: logger,
		now:    time.Now,
	}
}

// NewRewardsUseCaseWithClock - RewardsUseCase с фиксированными часами (для тестов)
func NewRewardsUseCaseWithClock(logger *zap.Logger, now func() time.Time) *RewardsUseCase {
	return &RewardsUseCase{
		logger: logger,
		now:    now,
	}
}

// MarkVisited отмечает POI посещённым и возвращает новый снимок поездки.
// Операция идемпотентна: уже посещённый POI - no-op. Начисляет очки по
// категории, синхронизирует копию POI в маршруте и перепроверяет
// разблокировку бейджей.
func (uc *RewardsUseCase) MarkVisited(trip domain.Trip, poi domain.POI) domain.Trip {
	if trip.HasVisited(poi.ID) {
		return trip.Clone()
	}

	next := trip.Clone()
	visitedAt := uc.now().UTC()

	visited := poi.Clone()
	visited.IsVisited = true
	visited.VisitedDate = &visitedAt
	next.VisitedPOIs = append(next.VisitedPOIs, visited)

	points := poi.Category.Points()
	next.EarnedPoints += points

	// Маршрут хранит собственную копию POI: отражаем посещение и в ней
	if next.Itinerary != nil {
		for i, p := range next.Itinerary.PointsOfInterest {
			if p.ID == poi.ID {
				next.Itinerary.PointsOfInterest[i] = visited.Clone()
			}
		}
	}

	unlocked := uc.evaluateBadges(next, visitedAt)
	next.Badges = append(next.Badges, unlocked...)

	uc.logger.Debug("POI marked visited",
		zap.String("trip_id", next.ID.String()),
		zap.String("poi_id", poi.ID.String()),
		zap.String("category", string(poi.Category)),
		zap.Int("points", points),
		zap.Int("badges_unlocked", len(unlocked)))

	return next
}

// evaluateBadges полностью перепроверяет условия разблокировки по
// посещённым POI поездки. Повторная выдача бейджа с существующим именем
// исключена; за один вызов может разблокироваться несколько бейджей.
func (uc *RewardsUseCase) evaluateBadges(trip domain.Trip, earnedAt time.Time) []domain.TravelBadge {
	counts := make(map[domain.Category]int)
	for _, p := range trip.VisitedPOIs {
		counts[p.Category]++
	}

	var unlocked []domain.TravelBadge
	for _, category := range domain.ValidCategories() {
		if counts[category] < badgeUnlockThreshold {
			continue
		}
		attrs := category.Attributes()
		name := fmt.Sprintf("%s Explorer", attrs.Label)
		if trip.HasBadge(name) {
			continue
		}
		unlocked = append(unlocked, domain.TravelBadge{
			ID:          uuid.New(),
			Name:        name,
			Description: fmt.Sprintf("Visited %d %s places in one trip", badgeUnlockThreshold, strings.ToLower(attrs.Label)),
			IconName:    attrs.Icon,
			Category:    attrs.BadgeCategory,
			EarnedDate:  earnedAt,
		})
	}
	return unlocked
}

// UpdateTravelStats переносит итоги поездки в накопленную статистику
// пользователя и возвращает обновлённую копию
func (uc *RewardsUseCase) UpdateTravelStats(stats domain.TravelStats, trip domain.Trip) domain.TravelStats {
	next := stats
	next.CountriesVisited = append([]string(nil), stats.CountriesVisited...)
	next.BadgeCategoryCounts = make(map[domain.BadgeCategory]int, len(stats.BadgeCategoryCounts))
	for bc, n := range stats.BadgeCategoryCounts {
		next.BadgeCategoryCounts[bc] = n
	}

	next.TotalTrips++
	next.TotalPlacesVisited += len(trip.VisitedPOIs)
	next.TotalDistanceTraveled += trip.TotalDistance
	next.TotalPoints += trip.EarnedPoints
	next.BadgesEarned += len(trip.Badges)

	if days := trip.DurationDays(); days > next.LongestTrip {
		next.LongestTrip = days
	}

	if country := extractCountry(trip.Destination); country != "" && !next.HasVisitedCountry(country) {
		next.CountriesVisited = append(next.CountriesVisited, country)
	}

	for _, b := range trip.Badges {
		next.BadgeCategoryCounts[b.Category]++
	}
	next.FavoriteCategory = favoriteCategory(next.BadgeCategoryCounts, stats.FavoriteCategory)

	uc.logger.Info("Travel stats updated",
		zap.String("trip_id", trip.ID.String()),
		zap.Int("total_points", next.TotalPoints),
		zap.Int("level", next.Level()))

	return next
}

// extractCountry извлекает страну из строки направления: последний
// сегмент после запятой, без пробелов по краям
func extractCountry(destination string) string {
	parts := strings.Split(destination, ",")
	return strings.TrimSpace(parts[len(parts)-1])
}

// favoriteCategory пересчитывает любимую категорию как POI-категорию,
// соответствующую самой частой категории бейджей среди всех накопленных.
// Ничьи разрешаются фиксированным порядком domain.BadgeCategoryPriority.
func favoriteCategory(counts map[domain.BadgeCategory]int, current domain.Category) domain.Category {
	best := domain.BadgeCategory("")
	bestCount := 0
	for _, bc := range domain.BadgeCategoryPriority {
		if counts[bc] > bestCount {
			best = bc
			bestCount = counts[bc]
		}
	}
	if best == "" {
		return current
	}
	return domain.BadgeCategoryToPOICategory(best)
}

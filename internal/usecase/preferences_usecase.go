package usecase

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/trip-planner-service/internal/domain"
	"github.com/trip-planner-service/internal/domain/repository"
)

// PreferencesUseCase - владелец единственной записи пользователя:
// настройки путешествий, онбординг и накопленная статистика.
// Запись пользователя одна на процесс; сохранение нефатально.
type PreferencesUseCase struct {
	mu   sync.Mutex
	user *domain.User

	userRepo  repository.UserRepository
	rewardsUC *RewardsUseCase
	notifier  repository.Notifier
	logger    *zap.Logger
}

// NewPreferencesUseCase - создание нового PreferencesUseCase
func NewPreferencesUseCase(
	userRepo repository.UserRepository,
	rewardsUC *RewardsUseCase,
	notifier repository.Notifier,
	logger *zap.Logger,
) *PreferencesUseCase {
	return &PreferencesUseCase{
		user:      domain.NewDefaultUser(),
		userRepo:  userRepo,
		rewardsUC: rewardsUC,
		notifier:  notifier,
		logger:    logger,
	}
}

// Load загружает запись пользователя из хранилища. Повреждённые данные
// дают пользователя по умолчанию и нефатальную ошибку.
func (uc *PreferencesUseCase) Load(ctx context.Context) error {
	user, err := uc.userRepo.LoadUser(ctx)
	uc.mu.Lock()
	uc.user = user
	uc.mu.Unlock()
	if err != nil {
		uc.logger.Warn("User loaded with fallback to defaults", zap.Error(err))
		return err
	}
	uc.logger.Info("User loaded", zap.String("user_id", user.ID.String()))
	return nil
}

// User возвращает снимок записи пользователя
func (uc *PreferencesUseCase) User() domain.User {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return cloneUser(*uc.user)
}

// UpdatePreferences заменяет настройки путешествий целиком и сохраняет
func (uc *PreferencesUseCase) UpdatePreferences(ctx context.Context, prefs domain.UserPreferences) domain.User {
	if len(prefs.PreferredTransport) == 0 {
		prefs.PreferredTransport = []domain.TransportMode{domain.TransportModeWalking}
	}

	uc.mu.Lock()
	uc.user.Preferences = prefs
	snapshot := cloneUser(*uc.user)
	uc.mu.Unlock()

	uc.persist(ctx)
	uc.notify(ctx, domain.ChangePreferencesUpdated)

	return snapshot
}

// SetFavoriteCategories обновляет любимые категории и сохраняет
func (uc *PreferencesUseCase) SetFavoriteCategories(ctx context.Context, categories []domain.Category) domain.User {
	uc.mu.Lock()
	uc.user.Preferences.FavoriteCategories = append([]domain.Category(nil), categories...)
	snapshot := cloneUser(*uc.user)
	uc.mu.Unlock()

	uc.persist(ctx)
	uc.notify(ctx, domain.ChangePreferencesUpdated)

	return snapshot
}

// CompleteOnboarding отмечает онбординг пройденным и сохраняет
func (uc *PreferencesUseCase) CompleteOnboarding(ctx context.Context) domain.User {
	uc.mu.Lock()
	uc.user.HasCompletedOnboarding = true
	snapshot := cloneUser(*uc.user)
	uc.mu.Unlock()

	uc.persist(ctx)
	uc.notify(ctx, domain.ChangePreferencesUpdated)

	return snapshot
}

// ApplyTripToStats переносит итоги завершённой поездки в статистику
// пользователя и сохраняет
func (uc *PreferencesUseCase) ApplyTripToStats(ctx context.Context, trip domain.Trip) domain.User {
	uc.mu.Lock()
	uc.user.TravelStats = uc.rewardsUC.UpdateTravelStats(uc.user.TravelStats, trip)
	snapshot := cloneUser(*uc.user)
	uc.mu.Unlock()

	uc.persist(ctx)
	uc.notify(ctx, domain.ChangeTripCompleted)

	return snapshot
}

// persist сохраняет запись пользователя. Ошибка нефатальна: память
// остаётся источником истины.
func (uc *PreferencesUseCase) persist(ctx context.Context) {
	uc.mu.Lock()
	snapshot := cloneUser(*uc.user)
	uc.mu.Unlock()

	if err := uc.userRepo.SaveUser(ctx, &snapshot); err != nil {
		uc.logger.Warn("Failed to save user, in-memory state kept", zap.Error(err))
	}
}

func (uc *PreferencesUseCase) notify(ctx context.Context, kind domain.ChangeKind) {
	if uc.notifier == nil {
		return
	}
	uc.notifier.Notify(ctx, domain.ChangeEvent{
		Kind:       kind,
		OccurredAt: time.Now().UTC(),
	})
}

func cloneUser(u domain.User) domain.User {
	cp := u
	cp.Preferences.FavoriteCategories = append([]domain.Category(nil), u.Preferences.FavoriteCategories...)
	cp.Preferences.PreferredTransport = append([]domain.TransportMode(nil), u.Preferences.PreferredTransport...)
	cp.Preferences.Interests = append([]string(nil), u.Preferences.Interests...)
	cp.TravelStats.CountriesVisited = append([]string(nil), u.TravelStats.CountriesVisited...)
	if u.TravelStats.BadgeCategoryCounts != nil {
		cp.TravelStats.BadgeCategoryCounts = make(map[domain.BadgeCategory]int, len(u.TravelStats.BadgeCategoryCounts))
		for k, v := range u.TravelStats.BadgeCategoryCounts {
			cp.TravelStats.BadgeCategoryCounts[k] = v
		}
	}
	return cp
}

package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/trip-planner-service/internal/domain"
	apperrors "github.com/trip-planner-service/internal/pkg/errors"
	"github.com/trip-planner-service/internal/pkg/utils"
	"github.com/trip-planner-service/internal/pkg/validator"
	"github.com/trip-planner-service/internal/usecase"
	"github.com/trip-planner-service/internal/usecase/dto"
)

// UserHandler - обработчик запросов профиля и настроек путешествий
type UserHandler struct {
	prefUC *usecase.PreferencesUseCase
	logger *zap.Logger
}

// NewUserHandler - создание нового UserHandler
func NewUserHandler(prefUC *usecase.PreferencesUseCase, logger *zap.Logger) *UserHandler {
	return &UserHandler{
		prefUC: prefUC,
		logger: logger,
	}
}

// GetUser godoc
// @Summary Get the user profile
// @Tags User
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Router /api/v1/user [get]
func (h *UserHandler) GetUser(c *fiber.Ctx) error {
	return utils.SendSuccess(c, dto.NewUserResponse(h.prefUC.User()), nil)
}

// UpdatePreferences godoc
// @Summary Update travel preferences
// @Description Пустой список транспорта заменяется на walking
// @Tags User
// @Accept json
// @Produce json
// @Param request body dto.UpdatePreferencesRequest true "Preferences"
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/user/preferences [put]
func (h *UserHandler) UpdatePreferences(c *fiber.Ctx) error {
	var req dto.UpdatePreferencesRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	prefs, err := preferencesFromRequest(req)
	if err != nil {
		return utils.SendError(c, err)
	}

	user := h.prefUC.UpdatePreferences(c.Context(), prefs)
	return utils.SendSuccess(c, dto.NewUserResponse(user), nil)
}

// SetFavoriteCategories godoc
// @Summary Replace favorite POI categories
// @Tags User
// @Accept json
// @Produce json
// @Param request body object true "Categories"
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/user/preferences/categories [put]
func (h *UserHandler) SetFavoriteCategories(c *fiber.Ctx) error {
	var req struct {
		Categories []string `json:"categories" validate:"required"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	categories := make([]domain.Category, 0, len(req.Categories))
	for _, raw := range req.Categories {
		category := domain.Category(raw)
		if !domain.IsValidCategory(category) {
			return utils.SendError(c, apperrors.ErrInvalidCategory.WithDetails(map[string]interface{}{
				"category": raw,
			}))
		}
		categories = append(categories, category)
	}

	user := h.prefUC.SetFavoriteCategories(c.Context(), categories)
	return utils.SendSuccess(c, dto.NewUserResponse(user), nil)
}

// CompleteOnboarding godoc
// @Summary Mark onboarding as completed
// @Tags User
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Router /api/v1/user/onboarding/complete [post]
func (h *UserHandler) CompleteOnboarding(c *fiber.Ctx) error {
	user := h.prefUC.CompleteOnboarding(c.Context())
	return utils.SendSuccess(c, dto.NewUserResponse(user), nil)
}

// preferencesFromRequest собирает доменные настройки из запроса,
// проверяя категории и режимы транспорта
func preferencesFromRequest(req dto.UpdatePreferencesRequest) (domain.UserPreferences, error) {
	categories := make([]domain.Category, 0, len(req.FavoriteCategories))
	for _, raw := range req.FavoriteCategories {
		category := domain.Category(raw)
		if !domain.IsValidCategory(category) {
			return domain.UserPreferences{}, apperrors.ErrInvalidCategory.WithDetails(map[string]interface{}{
				"category": raw,
			})
		}
		categories = append(categories, category)
	}

	transport := make([]domain.TransportMode, 0, len(req.PreferredTransport))
	for _, raw := range req.PreferredTransport {
		mode := domain.TransportMode(raw)
		if !domain.IsValidTransportMode(mode) {
			return domain.UserPreferences{}, apperrors.ErrInvalidTransportMode.WithDetails(map[string]interface{}{
				"mode": raw,
			})
		}
		transport = append(transport, mode)
	}

	return domain.UserPreferences{
		FavoriteCategories:   categories,
		TravelStyle:          domain.TravelStyle(req.TravelStyle),
		BudgetRange:          domain.BudgetRange(req.BudgetRange),
		PreferredTransport:   transport,
		Interests:            req.Interests,
		LanguagePreference:   req.LanguagePreference,
		NotificationsEnabled: req.NotificationsEnabled,
		ARFeaturesEnabled:    req.ARFeaturesEnabled,
	}, nil
}

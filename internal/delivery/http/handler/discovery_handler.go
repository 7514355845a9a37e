package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/trip-planner-service/internal/domain"
	"github.com/trip-planner-service/internal/location"
	apperrors "github.com/trip-planner-service/internal/pkg/errors"
	"github.com/trip-planner-service/internal/pkg/utils"
	"github.com/trip-planner-service/internal/pkg/validator"
	"github.com/trip-planner-service/internal/usecase"
	"github.com/trip-planner-service/internal/usecase/dto"
)

// DiscoveryHandler - обработчик запросов обнаружения POI и геолокации
type DiscoveryHandler struct {
	discoveryUC *usecase.DiscoveryUseCase
	provider    *location.StaticProvider
	logger      *zap.Logger
}

// NewDiscoveryHandler - создание нового DiscoveryHandler
func NewDiscoveryHandler(discoveryUC *usecase.DiscoveryUseCase, provider *location.StaticProvider, logger *zap.Logger) *DiscoveryHandler {
	return &DiscoveryHandler{
		discoveryUC: discoveryUC,
		provider:    provider,
		logger:      logger,
	}
}

// Nearby godoc
// @Summary Discover POI candidates around a coordinate
// @Description Детерминированно при фиксированном seed: одинаковый запрос даёт одинаковых кандидатов
// @Tags Discovery
// @Accept json
// @Produce json
// @Param request body dto.NearbyRequest true "Center and radius"
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/discovery/nearby [post]
func (h *DiscoveryHandler) Nearby(c *fiber.Ctx) error {
	var req dto.NearbyRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	pois, err := h.discoveryUC.Nearby(c.Context(), domain.LatLon{Lat: req.Lat, Lon: req.Lon}, req.RadiusKm)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, pois, &utils.Meta{Total: len(pois)})
}

// Search godoc
// @Summary Search POIs by text query
// @Tags Discovery
// @Accept json
// @Produce json
// @Param request body dto.SearchPOIRequest true "Query and optional center"
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 503 {object} utils.ErrorResponse
// @Router /api/v1/discovery/search [post]
func (h *DiscoveryHandler) Search(c *fiber.Ctx) error {
	var req dto.SearchPOIRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	// Центр поиска: явно переданная координата либо текущая позиция
	var center domain.LatLon
	if req.Lat != nil && req.Lon != nil {
		center = domain.LatLon{Lat: *req.Lat, Lon: *req.Lon}
	} else {
		loc := h.discoveryUC.CurrentLocation(c.Context())
		if loc == nil {
			return utils.SendError(c, apperrors.ErrLocationUnavailable)
		}
		center = *loc
	}

	pois, err := h.discoveryUC.Search(c.Context(), req.Query, center)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, pois, &utils.Meta{Total: len(pois)})
}

// TravelTime godoc
// @Summary Estimate travel time from the current location
// @Tags Discovery
// @Accept json
// @Produce json
// @Param request body dto.TravelTimeRequest true "Destination and transport mode"
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 503 {object} utils.ErrorResponse
// @Router /api/v1/discovery/travel-time [post]
func (h *DiscoveryHandler) TravelTime(c *fiber.Ctx) error {
	var req dto.TravelTimeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	mode := domain.TransportMode(req.Mode)
	seconds, distanceKm, err := h.discoveryUC.EstimatedTravelTime(c.Context(), domain.LatLon{Lat: req.Lat, Lon: req.Lon}, mode)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, dto.TravelTimeResponse{
		DistanceKm:      distanceKm,
		Mode:            mode,
		DurationSeconds: seconds,
	}, nil)
}

// GetLocation godoc
// @Summary Get the current location and authorization status
// @Tags Location
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Router /api/v1/location [get]
func (h *DiscoveryHandler) GetLocation(c *fiber.Ctx) error {
	loc := h.discoveryUC.CurrentLocation(c.Context())
	return utils.SendSuccess(c, fiber.Map{
		"location": loc,
		"status":   h.provider.AuthorizationStatus(),
	}, nil)
}

// SetLocation godoc
// @Summary Set the current location
// @Tags Location
// @Accept json
// @Produce json
// @Param request body dto.NearbyRequest true "Coordinates"
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/location [put]
func (h *DiscoveryHandler) SetLocation(c *fiber.Ctx) error {
	var req dto.NearbyRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	if !utils.ValidateCoordinates(req.Lat, req.Lon) {
		return utils.SendError(c, apperrors.ErrInvalidCoordinates)
	}

	h.provider.SetLocation(req.Lat, req.Lon)
	h.logger.Info("Current location updated",
		zap.Float64("lat", req.Lat),
		zap.Float64("lon", req.Lon))

	return utils.SendSuccess(c, fiber.Map{
		"location": domain.LatLon{Lat: req.Lat, Lon: req.Lon},
		"status":   h.provider.AuthorizationStatus(),
	}, nil)
}

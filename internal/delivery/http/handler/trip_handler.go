package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/trip-planner-service/internal/domain"
	apperrors "github.com/trip-planner-service/internal/pkg/errors"
	"github.com/trip-planner-service/internal/pkg/utils"
	"github.com/trip-planner-service/internal/pkg/validator"
	"github.com/trip-planner-service/internal/usecase"
	"github.com/trip-planner-service/internal/usecase/dto"
)

// TripHandler - обработчик запросов управления поездками и маршрутами
type TripHandler struct {
	tripUC *usecase.TripUseCase
	prefUC *usecase.PreferencesUseCase
	logger *zap.Logger
}

// NewTripHandler - создание нового TripHandler
func NewTripHandler(tripUC *usecase.TripUseCase, prefUC *usecase.PreferencesUseCase, logger *zap.Logger) *TripHandler {
	return &TripHandler{
		tripUC: tripUC,
		prefUC: prefUC,
		logger: logger,
	}
}

// ListTrips godoc
// @Summary List all trips
// @Description Возвращает все поездки пользователя
// @Tags Trips
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Router /api/v1/trips [get]
func (h *TripHandler) ListTrips(c *fiber.Ctx) error {
	trips := h.tripUC.Trips()
	return utils.SendSuccess(c, dto.NewTripResponses(trips), &utils.Meta{
		Total: len(trips),
	})
}

// GetTrip godoc
// @Summary Get trip by id
// @Tags Trips
// @Produce json
// @Param id path string true "Trip ID"
// @Success 200 {object} utils.SuccessResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/trips/{id} [get]
func (h *TripHandler) GetTrip(c *fiber.Ctx) error {
	id, err := parseTripID(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	trip, err := h.tripUC.GetTrip(id)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, dto.NewTripResponse(trip), nil)
}

// CreateTrip godoc
// @Summary Create a trip
// @Description Создаёт поездку без маршрута. Дата окончания раньше даты начала отклоняется
// @Tags Trips
// @Accept json
// @Produce json
// @Param request body dto.CreateTripRequest true "Trip data"
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/trips [post]
func (h *TripHandler) CreateTrip(c *fiber.Ctx) error {
	var req dto.CreateTripRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	trip, err := h.tripUC.CreateTrip(c.Context(), req.Name, req.Destination, req.StartDate, req.EndDate, req.Description)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, dto.NewTripResponse(trip), nil)
}

// UpdateTrip godoc
// @Summary Update trip fields
// @Tags Trips
// @Accept json
// @Produce json
// @Param id path string true "Trip ID"
// @Param request body dto.UpdateTripRequest true "Trip data"
// @Success 200 {object} utils.SuccessResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/trips/{id} [put]
func (h *TripHandler) UpdateTrip(c *fiber.Ctx) error {
	id, err := parseTripID(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	var req dto.UpdateTripRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	if req.EndDate.Before(req.StartDate) {
		return utils.SendError(c, apperrors.ErrInvalidDateRange)
	}

	trip, err := h.tripUC.GetTrip(id)
	if err != nil {
		return utils.SendError(c, err)
	}

	trip.Name = req.Name
	trip.Destination = req.Destination
	trip.StartDate = req.StartDate
	trip.EndDate = req.EndDate
	trip.Description = req.Description
	trip.IsCompleted = req.IsCompleted

	h.tripUC.UpdateTrip(c.Context(), trip)

	return utils.SendSuccess(c, dto.NewTripResponse(trip), nil)
}

// DeleteTrip godoc
// @Summary Delete a trip
// @Tags Trips
// @Produce json
// @Param id path string true "Trip ID"
// @Success 200 {object} utils.SuccessResponse
// @Router /api/v1/trips/{id} [delete]
func (h *TripHandler) DeleteTrip(c *fiber.Ctx) error {
	id, err := parseTripID(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	h.tripUC.DeleteTrip(c.Context(), id)

	return utils.SendSuccess(c, fiber.Map{"deleted": true}, nil)
}

// UpcomingTrips godoc
// @Summary List upcoming trips
// @Tags Trips
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Router /api/v1/trips/upcoming [get]
func (h *TripHandler) UpcomingTrips(c *fiber.Ctx) error {
	trips := h.tripUC.UpcomingTrips()
	return utils.SendSuccess(c, dto.NewTripResponses(trips), &utils.Meta{Total: len(trips)})
}

// CurrentTrips godoc
// @Summary List trips happening now
// @Tags Trips
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Router /api/v1/trips/ongoing [get]
func (h *TripHandler) CurrentTrips(c *fiber.Ctx) error {
	trips := h.tripUC.CurrentTrips()
	return utils.SendSuccess(c, dto.NewTripResponses(trips), &utils.Meta{Total: len(trips)})
}

// PastTrips godoc
// @Summary List past trips
// @Tags Trips
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Router /api/v1/trips/past [get]
func (h *TripHandler) PastTrips(c *fiber.Ctx) error {
	trips := h.tripUC.PastTrips()
	return utils.SendSuccess(c, dto.NewTripResponses(trips), &utils.Meta{Total: len(trips)})
}

// GetCurrentTrip godoc
// @Summary Get the selected trip
// @Tags Trips
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/trips/selected [get]
func (h *TripHandler) GetCurrentTrip(c *fiber.Ctx) error {
	trip, ok := h.tripUC.CurrentTrip()
	if !ok {
		return utils.SendError(c, apperrors.ErrTripNotFound)
	}
	return utils.SendSuccess(c, dto.NewTripResponse(trip), nil)
}

// SetCurrentTrip godoc
// @Summary Select a trip as current
// @Tags Trips
// @Produce json
// @Param id path string true "Trip ID"
// @Success 200 {object} utils.SuccessResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/trips/{id}/select [post]
func (h *TripHandler) SetCurrentTrip(c *fiber.Ctx) error {
	id, err := parseTripID(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	if err := h.tripUC.SetCurrentTrip(id); err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, fiber.Map{"selected": true}, nil)
}

// AddPOI godoc
// @Summary Add a POI to the trip itinerary
// @Tags Itinerary
// @Accept json
// @Produce json
// @Param id path string true "Trip ID"
// @Param request body dto.AddPOIRequest true "POI data"
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/trips/{id}/pois [post]
func (h *TripHandler) AddPOI(c *fiber.Ctx) error {
	id, err := parseTripID(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	var req dto.AddPOIRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	poi, err := poiFromRequest(req)
	if err != nil {
		return utils.SendError(c, err)
	}

	trip, err := h.tripUC.AddPOIToTrip(c.Context(), id, poi)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, dto.NewTripResponse(trip), nil)
}

// RemovePOI godoc
// @Summary Remove a POI from the trip itinerary
// @Tags Itinerary
// @Produce json
// @Param id path string true "Trip ID"
// @Param poi_id path string true "POI ID"
// @Success 200 {object} utils.SuccessResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/trips/{id}/pois/{poi_id} [delete]
func (h *TripHandler) RemovePOI(c *fiber.Ctx) error {
	id, err := parseTripID(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	poiID, err := uuid.Parse(c.Params("poi_id"))
	if err != nil {
		return utils.SendError(c, apperrors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"poi_id": c.Params("poi_id"),
		}))
	}

	trip, err := h.tripUC.RemovePOIFromTrip(c.Context(), id, poiID)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, dto.NewTripResponse(trip), nil)
}

// ReorderPOIs godoc
// @Summary Reorder POIs inside the trip itinerary
// @Description Переносит указанные позиции к целевому индексу, сохраняя их относительный порядок
// @Tags Itinerary
// @Accept json
// @Produce json
// @Param id path string true "Trip ID"
// @Param request body dto.ReorderPOIsRequest true "Move description"
// @Success 200 {object} utils.SuccessResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/trips/{id}/pois/reorder [post]
func (h *TripHandler) ReorderPOIs(c *fiber.Ctx) error {
	id, err := parseTripID(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	var req dto.ReorderPOIsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	trip, err := h.tripUC.ReorderPOIs(c.Context(), id, req.FromIndices, req.ToIndex)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, dto.NewTripResponse(trip), nil)
}

// MarkVisited godoc
// @Summary Mark an itinerary POI as visited
// @Description Идемпотентно: повторная отметка того же POI не меняет ни очки, ни значки
// @Tags Itinerary
// @Accept json
// @Produce json
// @Param id path string true "Trip ID"
// @Param request body dto.MarkVisitedRequest true "POI reference"
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/trips/{id}/visits [post]
func (h *TripHandler) MarkVisited(c *fiber.Ctx) error {
	id, err := parseTripID(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	var req dto.MarkVisitedRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	trip, err := h.tripUC.GetTrip(id)
	if err != nil {
		return utils.SendError(c, err)
	}

	poi, ok := findItineraryPOI(trip, req.POIID)
	if !ok {
		return utils.SendError(c, apperrors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"poi_id": req.POIID.String(),
			"reason": "poi is not part of the trip itinerary",
		}))
	}

	updated, err := h.tripUC.MarkPOIVisited(c.Context(), id, poi)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, dto.NewTripResponse(updated), nil)
}

// CompleteTrip godoc
// @Summary Complete a trip and fold it into travel stats
// @Tags Trips
// @Produce json
// @Param id path string true "Trip ID"
// @Success 200 {object} utils.SuccessResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/trips/{id}/complete [post]
func (h *TripHandler) CompleteTrip(c *fiber.Ctx) error {
	id, err := parseTripID(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	trip, completed, err := h.tripUC.CompleteTrip(c.Context(), id)
	if err != nil {
		return utils.SendError(c, err)
	}

	// Поездка вливается в накопленную статистику профиля только при
	// первом завершении; повторный запрос возвращает текущее состояние
	user := h.prefUC.User()
	if completed {
		user = h.prefUC.ApplyTripToStats(c.Context(), trip)
	}

	return utils.SendSuccess(c, fiber.Map{
		"trip": dto.NewTripResponse(trip),
		"user": dto.NewUserResponse(user),
	}, nil)
}

// parseTripID разбирает path-параметр id
func parseTripID(c *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return uuid.Nil, apperrors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"id": c.Params("id"),
		})
	}
	return id, nil
}

// poiFromRequest собирает доменный POI из запроса, проверяя категорию,
// координаты и ценовую категорию
func poiFromRequest(req dto.AddPOIRequest) (domain.POI, error) {
	category := domain.Category(req.Category)
	if !domain.IsValidCategory(category) {
		return domain.POI{}, apperrors.ErrInvalidCategory.WithDetails(map[string]interface{}{
			"category": req.Category,
		})
	}

	if !utils.ValidateCoordinates(req.Lat, req.Lon) {
		return domain.POI{}, apperrors.ErrInvalidCoordinates
	}

	priceLevel := domain.PriceLevelFree
	if req.PriceLevel != "" {
		priceLevel = domain.PriceLevel(req.PriceLevel)
		valid := false
		for _, pl := range domain.ValidPriceLevels() {
			if pl == priceLevel {
				valid = true
				break
			}
		}
		if !valid {
			return domain.POI{}, apperrors.ErrInvalidRequest.WithDetails(map[string]interface{}{
				"price_level": req.PriceLevel,
			})
		}
	}

	id := req.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	duration := req.EstimatedVisitDuration
	if duration <= 0 {
		duration = domain.DefaultVisitDuration
	}

	return domain.POI{
		ID:                     id,
		Name:                   req.Name,
		Description:            req.Description,
		Category:               category,
		Lat:                    req.Lat,
		Lon:                    req.Lon,
		Address:                req.Address,
		Rating:                 req.Rating,
		PriceLevel:             priceLevel,
		EstimatedVisitDuration: duration,
		HistoricalFacts:        req.HistoricalFacts,
		HasARContent:           req.HasARContent,
	}, nil
}

// findItineraryPOI ищет POI маршрута по id
func findItineraryPOI(trip domain.Trip, poiID uuid.UUID) (domain.POI, bool) {
	if trip.Itinerary == nil {
		return domain.POI{}, false
	}
	for _, poi := range trip.Itinerary.PointsOfInterest {
		if poi.ID == poiID {
			return poi.Clone(), true
		}
	}
	return domain.POI{}, false
}

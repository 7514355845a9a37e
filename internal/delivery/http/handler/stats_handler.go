package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/trip-planner-service/internal/pkg/utils"
	"github.com/trip-planner-service/internal/usecase"
)

// StatsHandler обрабатывает запросы агрегированной статистики
type StatsHandler struct {
	statsUC *usecase.StatsUseCase
	logger  *zap.Logger
}

// NewStatsHandler создает новый экземпляр StatsHandler
func NewStatsHandler(statsUC *usecase.StatsUseCase, logger *zap.Logger) *StatsHandler {
	return &StatsHandler{
		statsUC: statsUC,
		logger:  logger,
	}
}

// GetStats godoc
// @Summary Get aggregated travel statistics
// @Description Возвращает кешированный срез статистики, пересчитывая его при промахе кеша
// @Tags Statistics
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/stats [get]
func (h *StatsHandler) GetStats(c *fiber.Ctx) error {
	ctx := c.Context()

	h.logger.Debug("Handling get stats request")

	snapshot, err := h.statsUC.GetSnapshot(ctx)
	if err != nil {
		h.logger.Error("Failed to get stats snapshot", zap.Error(err))
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, snapshot, nil)
}

// RefreshStats godoc
// @Summary Force a stats snapshot recomputation
// @Tags Statistics
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/stats/refresh [post]
func (h *StatsHandler) RefreshStats(c *fiber.Ctx) error {
	snapshot, err := h.statsUC.RefreshSnapshot(c.Context())
	if err != nil {
		h.logger.Error("Failed to refresh stats snapshot", zap.Error(err))
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, snapshot, nil)
}

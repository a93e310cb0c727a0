package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/place-microservice/internal/pkg/utils"
	"github.com/place-microservice/internal/usecase"
	"go.uber.org/zap"
)

// StatsHandler - обработчик статистики
type StatsHandler struct {
	statsUC *usecase.StatsUseCase
	logger  *zap.Logger
}

// NewStatsHandler - создание нового StatsHandler
func NewStatsHandler(statsUC *usecase.StatsUseCase, logger *zap.Logger) *StatsHandler {
	return &StatsHandler{
		statsUC: statsUC,
		logger:  logger,
	}
}

// GetStatistics godoc
// @Summary Статистика по местам
// @Description Возвращает количество мест и фотографий и разбивку по тегам
// @Tags Stats
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=domain.Statistics}
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/stats [get]
func (h *StatsHandler) GetStatistics(c *fiber.Ctx) error {
	stats, err := h.statsUC.GetStatistics(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, stats, &utils.Meta{
		Total: stats.TotalPlaces,
	})
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sovoz-hq/sovoz/internal/application/ticket/usecases"
	"github.com/sovoz-hq/sovoz/internal/shared/logger"
	"github.com/sovoz-hq/sovoz/internal/shared/utils"
)

type StatisticsHandler struct {
	getStatisticsUC usecases.GetStatisticsExecutor
	logger          logger.Interface
}

func NewStatisticsHandler(getStatisticsUC usecases.GetStatisticsExecutor, logger logger.Interface) *StatisticsHandler {
	return &StatisticsHandler{
		getStatisticsUC: getStatisticsUC,
		logger:          logger,
	}
}

// GetStatistics handles GET /api/statistics. Admin-only, enforced by the
// route middleware.
func (h *StatisticsHandler) GetStatistics(c *gin.Context) {
	result, err := h.getStatisticsUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

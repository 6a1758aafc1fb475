package http

import (
	"net/http"

	statsDto "github.com/tashifkhan/LeetCode-Stats-API/internal/modules/stats/dto"
	stats "github.com/tashifkhan/LeetCode-Stats-API/internal/modules/stats/service"
	"github.com/tashifkhan/LeetCode-Stats-API/pkg/validator"
	"github.com/gin-gonic/gin"
)

type StatsHandler struct {
	statsService stats.StatsService
}

func NewStatsHandler(statsService stats.StatsService) *StatsHandler {
	return &StatsHandler{statsService: statsService}
}

type statsParams struct {
	Username string `uri:"username" binding:"required,max=64"`
}

// GetStats serves GET /:username. Every reply is HTTP 200; errors are only
// visible through the body status field.
func (h *StatsHandler) GetStats(c *gin.Context) {
	var params statsParams
	if err := c.ShouldBindUri(&params); err != nil {
		c.JSON(http.StatusOK, statsDto.ErrorStatsResponse("error", validator.FormatValidationError(err)))
		return
	}

	c.JSON(http.StatusOK, h.statsService.GetUserStats(c.Request.Context(), params.Username))
}

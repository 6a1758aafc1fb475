package http

import (
	"net/http"

	contestDto "github.com/tashifkhan/LeetCode-Stats-API/internal/modules/contest/dto"
	contest "github.com/tashifkhan/LeetCode-Stats-API/internal/modules/contest/service"
	"github.com/tashifkhan/LeetCode-Stats-API/pkg/validator"
	"github.com/gin-gonic/gin"
)

type ContestHandler struct {
	contestService contest.ContestService
}

func NewContestHandler(contestService contest.ContestService) *ContestHandler {
	return &ContestHandler{contestService: contestService}
}

type contestParams struct {
	Username string `uri:"username" binding:"required,max=64"`
}

// GetContestRanking serves GET /:username/contests.
func (h *ContestHandler) GetContestRanking(c *gin.Context) {
	var params contestParams
	if err := c.ShouldBindUri(&params); err != nil {
		c.JSON(http.StatusOK, contestDto.ErrorContestRankingResponse("error", validator.FormatValidationError(err)))
		return
	}

	c.JSON(http.StatusOK, h.contestService.GetContestRanking(c.Request.Context(), params.Username))
}

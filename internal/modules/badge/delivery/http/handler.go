package http

import (
	"net/http"

	badgeDto "github.com/tashifkhan/LeetCode-Stats-API/internal/modules/badge/dto"
	badge "github.com/tashifkhan/LeetCode-Stats-API/internal/modules/badge/service"
	"github.com/tashifkhan/LeetCode-Stats-API/pkg/validator"
	"github.com/gin-gonic/gin"
)

type BadgeHandler struct {
	badgeService badge.BadgeService
}

func NewBadgeHandler(badgeService badge.BadgeService) *BadgeHandler {
	return &BadgeHandler{badgeService: badgeService}
}

type badgeParams struct {
	Username string `uri:"username" binding:"required,max=64"`
}

// GetBadges serves GET /:username/badges.
func (h *BadgeHandler) GetBadges(c *gin.Context) {
	var params badgeParams
	if err := c.ShouldBindUri(&params); err != nil {
		c.JSON(http.StatusOK, badgeDto.ErrorBadgesResponse("error", validator.FormatValidationError(err)))
		return
	}

	c.JSON(http.StatusOK, h.badgeService.GetUserBadges(c.Request.Context(), params.Username))
}

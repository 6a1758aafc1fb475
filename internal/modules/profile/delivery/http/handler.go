package http

import (
	"net/http"

	profileDto "github.com/tashifkhan/LeetCode-Stats-API/internal/modules/profile/dto"
	profile "github.com/tashifkhan/LeetCode-Stats-API/internal/modules/profile/service"
	"github.com/tashifkhan/LeetCode-Stats-API/pkg/validator"
	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	profileService profile.ProfileService
}

func NewProfileHandler(profileService profile.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

type profileParams struct {
	Username string `uri:"username" binding:"required,max=64"`
}

// GetProfile serves GET /:username/profile.
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	var params profileParams
	if err := c.ShouldBindUri(&params); err != nil {
		c.JSON(http.StatusOK, profileDto.ErrorProfileResponse("error", validator.FormatValidationError(err)))
		return
	}

	c.JSON(http.StatusOK, h.profileService.GetUserProfile(c.Request.Context(), params.Username))
}

package controller

import (
	"strconv"

	"pattern_edu_backend/internal/service"
	"pattern_edu_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ProfileController struct {
	service *service.ProfileService
}

func NewProfileController(s *service.ProfileService) *ProfileController {
	return &ProfileController{service: s}
}

// GetPatternProfile godoc
// @Summary The current student's learning profile for one pattern
// @Description Created lazily on first fetch
// @Tags learning-profile
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "pattern id"
// @Success 200 {object} util.Response{data=model.StudentPatternLearningProfile}
// @Router /api/pattern-profile/{id} [get]
func (c *ProfileController) GetPatternProfile(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	patternID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, "invalid pattern id")
		return
	}

	profile, err := c.service.GetForStudent(claims.UserID, uint(patternID))
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"profile": profile})
}

// ListPatternProfiles godoc
// @Summary All of the current student's pattern learning profiles
// @Tags learning-profile
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=object}
// @Router /api/pattern-profile [get]
func (c *ProfileController) ListPatternProfiles(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	profiles, err := c.service.ListForStudent(claims.UserID)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"profiles": profiles})
}

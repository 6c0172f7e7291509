package controller

import (
	"strconv"

	"pattern_edu_backend/internal/service"
	"pattern_edu_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ReflectionController struct {
	service *service.ReflectionService
}

func NewReflectionController(s *service.ReflectionService) *ReflectionController {
	return &ReflectionController{service: s}
}

// GetForm godoc
// @Summary The active reflective form for a pattern
// @Description Returns the form, its questions in order, and the shared scale
// @Tags reflection
// @Produce json
// @Security ApiKeyAuth
// @Param patternId path int true "pattern id"
// @Success 200 {object} util.Response{data=service.FormBundle}
// @Failure 404 {object} util.Response
// @Router /api/reflection/form/{patternId} [get]
func (c *ReflectionController) GetForm(ctx *gin.Context) {
	patternID, err := strconv.Atoi(ctx.Param("patternId"))
	if err != nil {
		util.BadRequest(ctx, "invalid pattern id")
		return
	}

	bundle, err := c.service.GetForm(uint(patternID))
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, bundle)
}

// swagger:model SubmitReflectionRequest
type SubmitReflectionRequest struct {
	PatternID uint         `json:"patternId" binding:"required"`
	Answers   map[uint]int `json:"answers" binding:"required"`
}

// SubmitResponses godoc
// @Summary Submit answers to the pattern's active form
// @Description Marks the student's reflection complete for the pattern
// @Tags reflection
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body SubmitReflectionRequest true "answers keyed by question id"
// @Success 200 {object} util.Response{data=object}
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/reflection/submit [post]
func (c *ReflectionController) SubmitResponses(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req SubmitReflectionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.service.SubmitResponses(claims.UserID, req.PatternID, req.Answers); err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"success": true})
}

// ListResponses godoc
// @Summary Educator view of responses to a pattern's active form
// @Tags reflection
// @Produce json
// @Security ApiKeyAuth
// @Param patternId path int true "pattern id"
// @Param page query int false "page" default(1)
// @Param pageSize query int false "page size" default(20)
// @Success 200 {object} util.Response{data=object}
// @Router /api/educator/reflection/{patternId}/responses [get]
func (c *ReflectionController) ListResponses(ctx *gin.Context) {
	patternID, err := strconv.Atoi(ctx.Param("patternId"))
	if err != nil {
		util.BadRequest(ctx, "invalid pattern id")
		return
	}

	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(ctx.DefaultQuery("pageSize", "20"))

	responses, total, err := c.service.ListResponses(uint(patternID), page, pageSize)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{
		"items": responses,
		"total": total,
		"page":  page,
	})
}

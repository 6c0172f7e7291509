package controller

import (
	"strconv"

	"pattern_edu_backend/internal/service"
	"pattern_edu_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type PracticeController struct {
	service *service.PracticeService
}

func NewPracticeController(s *service.PracticeService) *PracticeController {
	return &PracticeController{service: s}
}

// GetQuestions godoc
// @Summary Practice questions for a pattern
// @Tags practice
// @Produce json
// @Security ApiKeyAuth
// @Param patternId path int true "pattern id"
// @Success 200 {object} util.Response{data=object}
// @Router /api/practice/{patternId}/questions [get]
func (c *PracticeController) GetQuestions(ctx *gin.Context) {
	patternID, err := strconv.Atoi(ctx.Param("patternId"))
	if err != nil {
		util.BadRequest(ctx, "invalid pattern id")
		return
	}

	questions, err := c.service.Questions(uint(patternID))
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"questions": questions})
}

// swagger:model SubmitPracticeRequest
type SubmitPracticeRequest struct {
	PatternID uint            `json:"patternId" binding:"required"`
	Answers   map[uint]string `json:"answers" binding:"required"`
}

// Submit godoc
// @Summary Score a practice run
// @Description Unlimited retries, scored immediately
// @Tags practice
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body SubmitPracticeRequest true "answers keyed by question id"
// @Success 200 {object} util.Response{data=model.PracticeSubmission}
// @Router /api/practice/submit [post]
func (c *PracticeController) Submit(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req SubmitPracticeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	submission, err := c.service.Submit(claims.UserID, req.PatternID, req.Answers)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, submission)
}

// GetHistory godoc
// @Summary The current student's practice history
// @Tags practice
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=object}
// @Router /api/practice/history [get]
func (c *PracticeController) GetHistory(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	submissions, err := c.service.History(claims.UserID)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"submissions": submissions})
}

package controller

import (
	"pattern_edu_backend/internal/service"
	"pattern_edu_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type QuizController struct {
	service *service.QuizService
}

func NewQuizController(s *service.QuizService) *QuizController {
	return &QuizController{service: s}
}

// GetGate godoc
// @Summary Whether the student may start the final quiz
// @Description An existing result record blocks retakes
// @Tags final-quiz
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=object}
// @Router /api/final-quiz/gate [get]
func (c *QuizController) GetGate(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	canTake, err := c.service.CanTake(claims.UserID)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"canTake": canTake})
}

// StartAttempt godoc
// @Summary Start a final quiz attempt
// @Tags final-quiz
// @Produce json
// @Security ApiKeyAuth
// @Success 201 {object} util.Response{data=object}
// @Failure 409 {object} util.Response
// @Router /api/final-quiz/start [post]
func (c *QuizController) StartAttempt(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	attempt, err := c.service.StartAttempt(claims.UserID)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}

	questions, err := c.service.Questions()
	if err != nil {
		util.RespondError(ctx, err)
		return
	}

	util.Created(ctx, gin.H{
		"attempt":   attempt,
		"questions": questions,
	})
}

// swagger:model SubmitQuizRequest
type SubmitQuizRequest struct {
	AttemptID string          `json:"attemptId" binding:"required"`
	Answers   map[uint]string `json:"answers" binding:"required"`
}

// SubmitAttempt godoc
// @Summary Submit final quiz answers
// @Tags final-quiz
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body SubmitQuizRequest true "answers keyed by question id"
// @Success 200 {object} util.Response{data=model.FinalQuizResult}
// @Failure 403 {object} util.Response
// @Failure 409 {object} util.Response
// @Router /api/final-quiz/submit [post]
func (c *QuizController) SubmitAttempt(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req SubmitQuizRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.service.Submit(claims.UserID, req.AttemptID, req.Answers)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, result)
}

// swagger:model CheatSheetAccessRequest
type CheatSheetAccessRequest struct {
	AttemptID string `json:"attemptId" binding:"required"`
	PatternID uint   `json:"patternId"`
}

// LogCheatSheetAccess godoc
// @Summary Record cheat-sheet use during an attempt
// @Description The attempt must belong to the authenticated student
// @Tags final-quiz
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body CheatSheetAccessRequest true "attempt reference"
// @Success 200 {object} util.Response{data=object}
// @Failure 403 {object} util.Response
// @Router /api/final-quiz/cheat-sheet-access [post]
func (c *QuizController) LogCheatSheetAccess(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req CheatSheetAccessRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.service.LogCheatSheetAccess(claims.UserID, req.AttemptID, req.PatternID); err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"success": true})
}

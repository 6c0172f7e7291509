package controller

import (
	"strconv"

	"pattern_edu_backend/internal/service"
	"pattern_edu_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// diagram uploads are images; keep them small
const maxDiagramSize = 10 << 20

type UmlController struct {
	service *service.UmlService
}

func NewUmlController(s *service.UmlService) *UmlController {
	return &UmlController{service: s}
}

// GetExercises godoc
// @Summary UML exercises for a pattern
// @Tags uml
// @Produce json
// @Security ApiKeyAuth
// @Param patternId path int true "pattern id"
// @Success 200 {object} util.Response{data=object}
// @Router /api/uml/exercises/{patternId} [get]
func (c *UmlController) GetExercises(ctx *gin.Context) {
	patternID, err := strconv.Atoi(ctx.Param("patternId"))
	if err != nil {
		util.BadRequest(ctx, "invalid pattern id")
		return
	}

	exercises, err := c.service.Exercises(uint(patternID))
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"exercises": exercises})
}

// SubmitDiagram godoc
// @Summary Upload a diagram image for a UML exercise
// @Tags uml
// @Accept mpfd
// @Produce json
// @Security ApiKeyAuth
// @Param exerciseId formData int true "exercise id"
// @Param note formData string false "free-text note"
// @Param diagram formData file true "diagram image"
// @Success 201 {object} util.Response{data=model.UmlSubmission}
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/uml/submissions [post]
func (c *UmlController) SubmitDiagram(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	exerciseID, err := strconv.Atoi(ctx.PostForm("exerciseId"))
	if err != nil {
		util.BadRequest(ctx, "invalid exercise id")
		return
	}

	fileHeader, err := ctx.FormFile("diagram")
	if err != nil {
		util.BadRequest(ctx, "diagram image is required")
		return
	}
	if fileHeader.Size > maxDiagramSize {
		util.BadRequest(ctx, "diagram image too large")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	defer file.Close()

	submission, err := c.service.SubmitDiagram(
		ctx.Request.Context(),
		claims.UserID,
		uint(exerciseID),
		fileHeader.Filename,
		file,
		fileHeader.Size,
		fileHeader.Header.Get("Content-Type"),
		ctx.PostForm("note"),
	)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Created(ctx, submission)
}

// GetMySubmissions godoc
// @Summary The current student's UML submissions
// @Tags uml
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=object}
// @Router /api/uml/submissions/my [get]
func (c *UmlController) GetMySubmissions(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	submissions, err := c.service.SubmissionsForStudent(claims.UserID)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"submissions": submissions})
}

// ListSubmissions godoc
// @Summary Educator view of submissions for one exercise
// @Tags uml
// @Produce json
// @Security ApiKeyAuth
// @Param exerciseId path int true "exercise id"
// @Param page query int false "page" default(1)
// @Param pageSize query int false "page size" default(20)
// @Success 200 {object} util.Response{data=object}
// @Router /api/educator/uml/{exerciseId}/submissions [get]
func (c *UmlController) ListSubmissions(ctx *gin.Context) {
	exerciseID, err := strconv.Atoi(ctx.Param("exerciseId"))
	if err != nil {
		util.BadRequest(ctx, "invalid exercise id")
		return
	}

	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(ctx.DefaultQuery("pageSize", "20"))

	submissions, total, err := c.service.SubmissionsForExercise(uint(exerciseID), page, pageSize)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{
		"items": submissions,
		"total": total,
		"page":  page,
	})
}

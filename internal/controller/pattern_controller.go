package controller

import (
	"strconv"

	"pattern_edu_backend/internal/service"
	"pattern_edu_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type PatternController struct {
	service *service.PatternService
}

func NewPatternController(s *service.PatternService) *PatternController {
	return &PatternController{service: s}
}

// ListPatterns godoc
// @Summary List the design pattern catalog
// @Description Patterns are returned ordered alphabetically by name
// @Tags patterns
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=object}
// @Router /api/patterns [get]
func (c *PatternController) ListPatterns(ctx *gin.Context) {
	patterns, err := c.service.List()
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"patterns": patterns})
}

// GetPattern godoc
// @Summary One catalog entry, including its cheat sheet
// @Tags patterns
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "pattern id"
// @Success 200 {object} util.Response{data=model.DesignPattern}
// @Failure 404 {object} util.Response
// @Router /api/patterns/{id} [get]
func (c *PatternController) GetPattern(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, "invalid pattern id")
		return
	}

	pattern, err := c.service.Get(uint(id))
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, pattern)
}

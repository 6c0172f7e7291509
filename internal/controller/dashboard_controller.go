package controller

import (
	"strconv"

	"pattern_edu_backend/internal/service"
	"pattern_edu_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type DashboardController struct {
	service     *service.DashboardService
	userService *service.UserService
}

func NewDashboardController(s *service.DashboardService, users *service.UserService) *DashboardController {
	return &DashboardController{service: s, userService: users}
}

// GetOverview godoc
// @Summary Educator dashboard aggregates
// @Tags dashboard
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=service.DashboardOverview}
// @Router /api/educator/dashboard [get]
func (c *DashboardController) GetOverview(ctx *gin.Context) {
	overview, err := c.service.Overview()
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, overview)
}

// ListStudents godoc
// @Summary Paged student roster
// @Tags dashboard
// @Produce json
// @Security ApiKeyAuth
// @Param page query int false "page" default(1)
// @Param pageSize query int false "page size" default(20)
// @Success 200 {object} util.Response{data=object}
// @Router /api/educator/students [get]
func (c *DashboardController) ListStudents(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(ctx.DefaultQuery("pageSize", "20"))

	students, total, err := c.userService.ListStudents(page, pageSize)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{
		"items": students,
		"total": total,
		"page":  page,
	})
}

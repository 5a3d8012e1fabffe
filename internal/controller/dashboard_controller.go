package controller

import (
	"job_portal_backend/internal/service"
	"job_portal_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type DashboardController struct {
	DashboardService *service.DashboardService
}

func NewDashboardController(dashboardService *service.DashboardService) *DashboardController {
	return &DashboardController{DashboardService: dashboardService}
}

// GetDashboard godoc
// @Summary 用户仪表盘
// @Tags 仪表盘
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} service.Dashboard
// @Failure 401 {object} util.Response
// @Router /api/user/dashboard [get]
func (c *DashboardController) GetDashboard(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	dashboard, err := c.DashboardService.GetUserDashboard(ctx.Request.Context(), userID)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, dashboard)
}

// GetAnalytics godoc
// @Summary 学习与求职统计
// @Tags 仪表盘
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} service.Analytics
// @Router /api/user/analytics [get]
func (c *DashboardController) GetAnalytics(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	analytics, err := c.DashboardService.GetAnalytics(ctx.Request.Context(), userID)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, analytics)
}

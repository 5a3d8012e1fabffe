package controller

import (
	"job_portal_backend/internal/service"
	"job_portal_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type InternshipController struct {
	InternshipService *service.InternshipService
}

func NewInternshipController(internshipService *service.InternshipService) *InternshipController {
	return &InternshipController{InternshipService: internshipService}
}

// ListInternships godoc
// @Summary 实习列表
// @Tags 实习
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} model.Internship
// @Router /api/user/internships [get]
func (c *InternshipController) ListInternships(ctx *gin.Context) {
	items, err := c.InternshipService.ListInternships(ctx.Request.Context())
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, items)
}

// Apply godoc
// @Summary 申请实习
// @Tags 实习
// @Produce json
// @Security ApiKeyAuth
// @Param internId path int true "实习ID"
// @Success 200 {object} object
// @Failure 404 {object} util.Response
// @Router /api/user/internships/{internId}/apply [post]
func (c *InternshipController) Apply(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	internID, ok := pathID(ctx, "internId")
	if !ok {
		return
	}

	if err := c.InternshipService.Apply(ctx.Request.Context(), userID, internID); err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"message": "Applied"})
}

// CompleteTask godoc
// @Summary 完成实习任务
// @Tags 实习
// @Produce json
// @Security ApiKeyAuth
// @Param internId path int true "实习ID"
// @Param taskId path int true "任务ID"
// @Success 200 {object} object
// @Failure 404 {object} util.Response
// @Router /api/user/internships/{internId}/tasks/{taskId}/complete [post]
func (c *InternshipController) CompleteTask(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	internID, ok := pathID(ctx, "internId")
	if !ok {
		return
	}
	taskID, ok := pathID(ctx, "taskId")
	if !ok {
		return
	}

	if err := c.InternshipService.CompleteTask(ctx.Request.Context(), userID, internID, taskID); err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"message": "Task completed"})
}

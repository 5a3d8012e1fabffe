package controller

import (
	"job_portal_backend/internal/service"
	"job_portal_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type JobController struct {
	JobService *service.JobService
}

func NewJobController(jobService *service.JobService) *JobController {
	return &JobController{JobService: jobService}
}

// ListJobs godoc
// @Summary 职位列表
// @Tags 职位
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} model.Job
// @Router /api/user/jobs [get]
func (c *JobController) ListJobs(ctx *gin.Context) {
	jobs, err := c.JobService.ListJobs(ctx.Request.Context())
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, jobs)
}

// Apply godoc
// @Summary 投递职位
// @Tags 职位
// @Produce json
// @Security ApiKeyAuth
// @Param jobId path int true "职位ID"
// @Success 200 {object} object
// @Failure 400 {object} util.Response "已投递"
// @Failure 404 {object} util.Response
// @Router /api/user/jobs/{jobId}/apply [post]
func (c *JobController) Apply(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	jobID, ok := pathID(ctx, "jobId")
	if !ok {
		return
	}

	if err := c.JobService.Apply(ctx.Request.Context(), userID, jobID); err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"message": "Applied"})
}

// Bookmark godoc
// @Summary 收藏职位
// @Tags 职位
// @Produce json
// @Security ApiKeyAuth
// @Param jobId path int true "职位ID"
// @Success 200 {object} object
// @Failure 404 {object} util.Response
// @Router /api/user/jobs/{jobId}/bookmark [post]
func (c *JobController) Bookmark(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	jobID, ok := pathID(ctx, "jobId")
	if !ok {
		return
	}

	if err := c.JobService.Bookmark(ctx.Request.Context(), userID, jobID); err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"message": "Bookmarked"})
}

package controller

import (
	"job_portal_backend/internal/service"
	"job_portal_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// AdminController 管理员创建各类内容
type AdminController struct {
	CourseService     *service.CourseService
	JobService        *service.JobService
	MentorService     *service.MentorService
	TestService       *service.TestService
	ChallengeService  *service.ChallengeService
	InternshipService *service.InternshipService
}

// CreateCourse godoc
// @Summary 创建课程
// @Tags 管理
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.CreateCourseReq true "课程"
// @Success 201 {object} model.Course
// @Router /api/admin/courses [post]
func (c *AdminController) CreateCourse(ctx *gin.Context) {
	var req service.CreateCourseReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	course, err := c.CourseService.CreateCourse(ctx.Request.Context(), req)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Created(ctx, course)
}

// CreateJob godoc
// @Summary 发布职位
// @Tags 管理
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.CreateJobReq true "职位"
// @Success 201 {object} model.Job
// @Router /api/admin/jobs [post]
func (c *AdminController) CreateJob(ctx *gin.Context) {
	var req service.CreateJobReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	job, err := c.JobService.CreateJob(ctx.Request.Context(), req)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Created(ctx, job)
}

// CreateMentor godoc
// @Summary 添加导师
// @Tags 管理
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.CreateMentorReq true "导师"
// @Success 201 {object} model.Mentor
// @Router /api/admin/mentors [post]
func (c *AdminController) CreateMentor(ctx *gin.Context) {
	var req service.CreateMentorReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	mentor, err := c.MentorService.CreateMentor(ctx.Request.Context(), req)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Created(ctx, mentor)
}

// CreateTest godoc
// @Summary 创建测验
// @Tags 管理
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.CreateTestReq true "测验"
// @Success 201 {object} model.Test
// @Failure 400 {object} util.Response
// @Router /api/admin/tests [post]
func (c *AdminController) CreateTest(ctx *gin.Context) {
	var req service.CreateTestReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	test, err := c.TestService.CreateTest(ctx.Request.Context(), req)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Created(ctx, test)
}

// CreateChallenge godoc
// @Summary 创建挑战
// @Tags 管理
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.CreateChallengeReq true "挑战"
// @Success 201 {object} model.Challenge
// @Router /api/admin/challenges [post]
func (c *AdminController) CreateChallenge(ctx *gin.Context) {
	var req service.CreateChallengeReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	ch, err := c.ChallengeService.CreateChallenge(ctx.Request.Context(), req)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Created(ctx, ch)
}

// CreateInternship godoc
// @Summary 创建实习
// @Tags 管理
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.CreateInternshipReq true "实习及任务"
// @Success 201 {object} model.Internship
// @Router /api/admin/internships [post]
func (c *AdminController) CreateInternship(ctx *gin.Context) {
	var req service.CreateInternshipReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	item, err := c.InternshipService.CreateInternship(ctx.Request.Context(), req)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Created(ctx, item)
}

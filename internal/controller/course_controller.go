package controller

import (
	"job_portal_backend/internal/service"
	"job_portal_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type CourseController struct {
	CourseService *service.CourseService
}

func NewCourseController(courseService *service.CourseService) *CourseController {
	return &CourseController{CourseService: courseService}
}

// ListCourses godoc
// @Summary 课程列表
// @Description 每周按 ISO 周序号轮换一门免费课程，isFreeThisWeek 标记
// @Tags 课程
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} service.CourseListItem
// @Router /api/user/courses [get]
func (c *CourseController) ListCourses(ctx *gin.Context) {
	courses, err := c.CourseService.ListCourses(ctx.Request.Context())
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, courses)
}

// Enroll godoc
// @Summary 选课
// @Tags 课程
// @Produce json
// @Security ApiKeyAuth
// @Param courseId path int true "课程ID"
// @Success 200 {object} object
// @Failure 404 {object} util.Response
// @Router /api/user/courses/{courseId}/enroll [post]
func (c *CourseController) Enroll(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	courseID, ok := pathID(ctx, "courseId")
	if !ok {
		return
	}

	if err := c.CourseService.Enroll(ctx.Request.Context(), userID, courseID); err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"message": "Enrolled"})
}

// Progress godoc
// @Summary 已选课程
// @Tags 课程
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} model.Course
// @Router /api/user/courses/progress [get]
func (c *CourseController) Progress(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	courses, err := c.CourseService.EnrolledCourses(ctx.Request.Context(), userID)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, courses)
}

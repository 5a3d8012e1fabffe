package controller

import (
	"job_portal_backend/internal/service"
	"job_portal_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type MentorController struct {
	MentorService *service.MentorService
}

func NewMentorController(mentorService *service.MentorService) *MentorController {
	return &MentorController{MentorService: mentorService}
}

// ListMentors godoc
// @Summary 导师列表
// @Tags 导师
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} model.Mentor
// @Router /api/user/mentors [get]
func (c *MentorController) ListMentors(ctx *gin.Context) {
	mentors, err := c.MentorService.ListMentors(ctx.Request.Context())
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, mentors)
}

// Book godoc
// @Summary 预约导师
// @Tags 导师
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.BookMentorReq true "预约信息"
// @Success 201 {object} model.MentorSession
// @Failure 404 {object} util.Response
// @Router /api/user/mentors/book [post]
func (c *MentorController) Book(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	var req service.BookMentorReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	session, err := c.MentorService.Book(ctx.Request.Context(), userID, req)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Created(ctx, session)
}

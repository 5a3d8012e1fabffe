package controller

import (
	"job_portal_backend/internal/service"
	"job_portal_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type NotificationController struct {
	NotificationService *service.NotificationService
	Hub                 *service.NotificationHub
}

func NewNotificationController(s *service.NotificationService, hub *service.NotificationHub) *NotificationController {
	return &NotificationController{NotificationService: s, Hub: hub}
}

// List godoc
// @Summary 通知列表
// @Tags 通知
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} model.Notification
// @Router /api/user/notifications [get]
func (c *NotificationController) List(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	list, err := c.NotificationService.List(ctx.Request.Context(), userID)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, list)
}

// MarkRead godoc
// @Summary 标记通知已读
// @Tags 通知
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "通知ID"
// @Success 200 {object} object
// @Failure 404 {object} util.Response
// @Router /api/user/notifications/{id}/read [patch]
func (c *NotificationController) MarkRead(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	if err := c.NotificationService.MarkRead(ctx.Request.Context(), userID, id); err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"message": "Marked as read"})
}

// HandleWS godoc
// @Summary 通知 WebSocket
// @Description 建立连接后实时接收通知推送
// @Tags 通知
// @Security ApiKeyAuth
// @Param token query string false "JWT Token"
// @Success 101 {string} string "Switching Protocols"
// @Router /api/user/notifications/ws [get]
func (c *NotificationController) HandleWS(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	service.ServeWs(c.Hub, ctx.Writer, ctx.Request, userID)
}

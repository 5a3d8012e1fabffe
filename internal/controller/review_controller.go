package controller

import (
	"job_portal_backend/internal/model"
	"job_portal_backend/internal/service"
	"job_portal_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ReviewController struct {
	ReviewService *service.ReviewService
}

func NewReviewController(reviewService *service.ReviewService) *ReviewController {
	return &ReviewController{ReviewService: reviewService}
}

// Create godoc
// @Summary 发表评价
// @Tags 评价
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.CreateReviewReq true "评价"
// @Success 201 {object} model.Review
// @Failure 404 {object} util.Response "评价对象不存在"
// @Router /api/user/reviews [post]
func (c *ReviewController) Create(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	var req service.CreateReviewReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	review, err := c.ReviewService.Create(ctx.Request.Context(), userID, req)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Created(ctx, review)
}

// List godoc
// @Summary 评价列表
// @Tags 评价
// @Produce json
// @Security ApiKeyAuth
// @Param type query string false "mentor/course/challenge/internship"
// @Param relatedId query int false "对象ID"
// @Success 200 {array} model.Review
// @Failure 400 {object} util.Response "relatedId 非法"
// @Router /api/user/reviews [get]
func (c *ReviewController) List(ctx *gin.Context) {
	relatedID, ok := queryID(ctx, "relatedId")
	if !ok {
		return
	}
	t := model.ReviewType(ctx.Query("type"))

	list, err := c.ReviewService.List(ctx.Request.Context(), t, relatedID)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, list)
}

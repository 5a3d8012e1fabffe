package controller

import (
	"job_portal_backend/internal/service"
	"job_portal_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type RecommendationController struct {
	RecommendationService *service.RecommendationService
}

func NewRecommendationController(s *service.RecommendationService) *RecommendationController {
	return &RecommendationController{RecommendationService: s}
}

// Recommend godoc
// @Summary 按技能推荐课程与职位
// @Tags 推荐
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} service.Recommendations
// @Router /api/user/recommendations [get]
func (c *RecommendationController) Recommend(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	rec, err := c.RecommendationService.ForUser(ctx.Request.Context(), userID)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, rec)
}

package controller

import (
	"job_portal_backend/internal/model"
	"job_portal_backend/internal/service"
	"job_portal_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ChallengeController struct {
	ChallengeService *service.ChallengeService
}

func NewChallengeController(challengeService *service.ChallengeService) *ChallengeController {
	return &ChallengeController{ChallengeService: challengeService}
}

func (c *ChallengeController) list(ctx *gin.Context, t model.ChallengeType) {
	list, err := c.ChallengeService.List(ctx.Request.Context(), t)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, list)
}

// Daily godoc
// @Summary 每日挑战
// @Tags 挑战
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} model.Challenge
// @Router /api/user/challenges/daily [get]
func (c *ChallengeController) Daily(ctx *gin.Context) {
	c.list(ctx, model.ChallengeDaily)
}

// Weekly godoc
// @Summary 每周挑战
// @Tags 挑战
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} model.Challenge
// @Router /api/user/challenges/weekly [get]
func (c *ChallengeController) Weekly(ctx *gin.Context) {
	c.list(ctx, model.ChallengeWeekly)
}

// Submit godoc
// @Summary 提交挑战
// @Tags 挑战
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param challengeId path int true "挑战ID"
// @Param body body service.SubmitChallengeReq false "提交内容"
// @Success 200 {object} object
// @Failure 404 {object} util.Response
// @Router /api/user/challenges/{challengeId}/submit [post]
func (c *ChallengeController) Submit(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	challengeID, ok := pathID(ctx, "challengeId")
	if !ok {
		return
	}

	var req service.SubmitChallengeReq
	if ctx.Request.ContentLength > 0 {
		if err := ctx.ShouldBindJSON(&req); err != nil {
			util.BadRequest(ctx, err.Error())
			return
		}
	}

	if err := c.ChallengeService.Submit(ctx.Request.Context(), userID, challengeID, req.Content); err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"message": "Submitted"})
}

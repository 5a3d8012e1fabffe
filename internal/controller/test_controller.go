package controller

import (
	"job_portal_backend/internal/service"
	"job_portal_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type TestController struct {
	TestService *service.TestService
}

func NewTestController(testService *service.TestService) *TestController {
	return &TestController{TestService: testService}
}

// SubmitTestRequest 答案按题目顺序排列，未作答填 null
type SubmitTestRequest struct {
	Answers []*int `json:"answers" swaggertype:"array,integer"`
}

// ListTests godoc
// @Summary 测验列表
// @Tags 测验
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} service.TestSummary
// @Router /api/user/tests [get]
func (c *TestController) ListTests(ctx *gin.Context) {
	tests, err := c.TestService.ListTests(ctx.Request.Context())
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, tests)
}

// StartTest godoc
// @Summary 开始测验
// @Description 返回题目与选项，不含正确答案和排行榜
// @Tags 测验
// @Produce json
// @Security ApiKeyAuth
// @Param testId path int true "测验ID"
// @Success 200 {object} service.TestPaper
// @Failure 404 {object} util.Response
// @Router /api/user/tests/{testId}/start [get]
func (c *TestController) StartTest(ctx *gin.Context) {
	testID, ok := pathID(ctx, "testId")
	if !ok {
		return
	}

	paper, err := c.TestService.StartTest(ctx.Request.Context(), testID)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, paper)
}

// SubmitTest godoc
// @Summary 提交测验
// @Description 计算得分百分比并更新排行榜
// @Tags 测验
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param testId path int true "测验ID"
// @Param body body SubmitTestRequest true "答案"
// @Success 200 {object} service.SubmitResult
// @Failure 404 {object} util.Response
// @Failure 409 {object} util.Response "排行榜并发冲突"
// @Router /api/user/tests/{testId}/submit [post]
func (c *TestController) SubmitTest(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	testID, ok := pathID(ctx, "testId")
	if !ok {
		return
	}

	var req SubmitTestRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.TestService.SubmitTest(ctx.Request.Context(), testID, userID, req.Answers)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, result)
}

// Leaderboard godoc
// @Summary 测验排行榜
// @Tags 测验
// @Produce json
// @Security ApiKeyAuth
// @Param testId path int true "测验ID"
// @Success 200 {array} service.RankedEntry
// @Failure 404 {object} util.Response
// @Router /api/user/tests/{testId}/leaderboard [get]
func (c *TestController) Leaderboard(ctx *gin.Context) {
	testID, ok := pathID(ctx, "testId")
	if !ok {
		return
	}

	board, err := c.TestService.GetLeaderboard(ctx.Request.Context(), testID)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, board)
}

package controller

import (
	"job_portal_backend/internal/service"
	"job_portal_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ResumeController struct {
	ResumeService *service.ResumeService
}

func NewResumeController(resumeService *service.ResumeService) *ResumeController {
	return &ResumeController{ResumeService: resumeService}
}

// Save godoc
// @Summary 保存简历
// @Tags 简历
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.SaveResumeReq true "简历数据"
// @Success 200 {object} model.Resume
// @Router /api/user/resume [post]
func (c *ResumeController) Save(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	var req service.SaveResumeReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	resume, err := c.ResumeService.Save(ctx.Request.Context(), userID, req.Data)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, resume)
}

// Get godoc
// @Summary 获取简历
// @Tags 简历
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} model.Resume
// @Failure 404 {object} util.Response "No resume found"
// @Router /api/user/resume [get]
func (c *ResumeController) Get(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	resume, err := c.ResumeService.Get(ctx.Request.Context(), userID)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, resume)
}

// UploadPDF godoc
// @Summary 上传简历 PDF
// @Tags 简历
// @Accept multipart/form-data
// @Produce json
// @Security ApiKeyAuth
// @Param file formData file true "PDF 文件"
// @Success 200 {object} model.Resume
// @Failure 400 {object} util.Response
// @Router /api/user/resume/pdf [post]
func (c *ResumeController) UploadPDF(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	fh, err := ctx.FormFile("file")
	if err != nil {
		util.BadRequest(ctx, "file is required")
		return
	}

	resume, err := c.ResumeService.UploadPDF(ctx.Request.Context(), userID, fh)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, resume)
}

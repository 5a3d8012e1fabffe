package util

import (
	"errors"
	"job_portal_backend/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Response 错误响应结构；成功时直接返回数据本身
type Response struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

func Error(c *gin.Context, code int, message string) {
	c.JSON(code, Response{
		Code:    code,
		Message: message,
	})
}

func Unauthorized(c *gin.Context) {
	Error(c, http.StatusUnauthorized, "Unauthorized")
}

func Forbidden(c *gin.Context) {
	Error(c, http.StatusForbidden, "Forbidden")
}

func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

func NotFound(c *gin.Context, message string) {
	if message == "" {
		message = "Resource not found"
	}
	Error(c, http.StatusNotFound, message)
}

func Conflict(c *gin.Context, message string) {
	Error(c, http.StatusConflict, message)
}

func InternalServerError(c *gin.Context) {
	Error(c, http.StatusInternalServerError, "Server error")
}

func LogInternalError(c *gin.Context, err error) {
	logger.Log.Error("Internal server error",
		zap.Error(err),
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
	)
	InternalServerError(c)
}

var notFoundErrors = []error{
	ErrUserNotFound, ErrCourseNotFound, ErrJobNotFound, ErrMentorNotFound,
	ErrTestNotFound, ErrChallengeNotFound, ErrInternshipNotFound, ErrTaskNotFound,
	ErrResumeNotFound, ErrNotificationMissing, ErrReviewTargetMissing,
}

var badRequestErrors = []error{
	ErrEmailRegistered, ErrInvalidCredentials, ErrAlreadyApplied,
	ErrInvalidFileType, ErrFileTooLarge, ErrInvalidResumeData, ErrInvalidQuestion,
}

// HandleError 将业务错误映射为状态码，未识别的错误按 500 处理
func HandleError(c *gin.Context, err error) {
	for _, target := range notFoundErrors {
		if errors.Is(err, target) {
			NotFound(c, target.Error())
			return
		}
	}
	for _, target := range badRequestErrors {
		if errors.Is(err, target) {
			BadRequest(c, target.Error())
			return
		}
	}
	switch {
	case errors.Is(err, ErrLeaderboardConflict):
		Conflict(c, err.Error())
	case errors.Is(err, ErrPermissionDenied):
		Forbidden(c)
	default:
		LogInternalError(c, err)
	}
}

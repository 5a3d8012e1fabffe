package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"job_portal_backend/internal/model"
	"job_portal_backend/internal/util"
	"job_portal_backend/pkg/logger"
	"mime/multipart"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ResumeRepo interface {
	FindByUser(ctx context.Context, userID uint) (*model.Resume, error)
	Upsert(ctx context.Context, resume *model.Resume, columns ...string) error
}

// ObjectStore 简历 PDF 的存储，替换或回滚时需要删除对象
type ObjectStore interface {
	Upload(ctx context.Context, key string, reader io.Reader, size int64, contentType string) (string, error)
	Delete(ctx context.Context, key string) error
}

type ResumeService struct {
	Repo    ResumeRepo
	Storage ObjectStore
}

func NewResumeService(repo ResumeRepo, storage ObjectStore) *ResumeService {
	return &ResumeService{Repo: repo, Storage: storage}
}

type SaveResumeReq struct {
	Data json.RawMessage `json:"data" binding:"required"`
}

func (s *ResumeService) Get(ctx context.Context, userID uint) (*model.Resume, error) {
	resume, err := s.Repo.FindByUser(ctx, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrResumeNotFound
	}
	if err != nil {
		return nil, err
	}
	return resume, nil
}

// Save 创建或覆盖用户的简历数据，已上传的 PDF 不受影响
func (s *ResumeService) Save(ctx context.Context, userID uint, data json.RawMessage) (*model.Resume, error) {
	if !json.Valid(data) {
		return nil, util.ErrInvalidResumeData
	}
	resume := &model.Resume{
		UserID: userID,
		Data:   datatypes.JSON(data),
	}
	if err := s.Repo.Upsert(ctx, resume, "data"); err != nil {
		return nil, err
	}
	return s.Get(ctx, userID)
}

// UploadPDF 校验文件内容为 PDF 后上传，并记录访问地址。
// 记录成功后删除旧文件；记录失败时删除刚上传的文件。
func (s *ResumeService) UploadPDF(ctx context.Context, userID uint, fh *multipart.FileHeader) (*model.Resume, error) {
	if fh.Size > util.MaxResumeSize {
		return nil, util.ErrFileTooLarge
	}

	file, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer file.Close()

	mimeType, err := util.ValidateMimeType(file, []string{util.MimePDF})
	if err != nil || !util.IsPDF(mimeType) {
		return nil, util.ErrInvalidFileType
	}
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}

	var oldKey string
	if prev, err := s.Repo.FindByUser(ctx, userID); err == nil {
		oldKey = resumeKey(prev.PDFURL)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	key := fmt.Sprintf("resumes/%d/%s.pdf", userID, uuid.New().String())
	url, err := s.Storage.Upload(ctx, key, file, fh.Size, util.MimePDF)
	if err != nil {
		return nil, err
	}
	logger.Log.Info("resume pdf uploaded", zap.Uint("userId", userID), zap.String("key", key))

	resume := &model.Resume{
		UserID: userID,
		Data:   datatypes.JSON("{}"),
		PDFURL: url,
	}
	if err := s.Repo.Upsert(ctx, resume, "pdf_url"); err != nil {
		s.deleteObject(ctx, key)
		return nil, err
	}

	if oldKey != "" && oldKey != key {
		s.deleteObject(ctx, oldKey)
	}
	return s.Get(ctx, userID)
}

func (s *ResumeService) deleteObject(ctx context.Context, key string) {
	if err := s.Storage.Delete(ctx, key); err != nil {
		logger.Log.Warn("failed to delete resume pdf", zap.String("key", key), zap.Error(err))
	}
}

// resumeKey 从访问地址中取回对象 key，各存储的地址都以 key 结尾
func resumeKey(url string) string {
	i := strings.Index(url, "resumes/")
	if i < 0 {
		return ""
	}
	return url[i:]
}

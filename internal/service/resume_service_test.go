package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"job_portal_backend/internal/model"
	"job_portal_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeResumeRepo struct {
	byUser    map[uint]*model.Resume
	upsertErr error
}

func (r *fakeResumeRepo) FindByUser(ctx context.Context, userID uint) (*model.Resume, error) {
	res, ok := r.byUser[userID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *res
	return &cp, nil
}

func (r *fakeResumeRepo) Upsert(ctx context.Context, resume *model.Resume, columns ...string) error {
	if r.upsertErr != nil {
		return r.upsertErr
	}
	existing, ok := r.byUser[resume.UserID]
	if !ok {
		cp := *resume
		r.byUser[resume.UserID] = &cp
		return nil
	}
	for _, col := range columns {
		switch col {
		case "data":
			existing.Data = resume.Data
		case "pdf_url":
			existing.PDFURL = resume.PDFURL
		}
	}
	return nil
}

func fileHeader(t *testing.T, name string, content []byte) *multipart.FileHeader {
	t.Helper()
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	part, err := w.CreateFormFile("file", name)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/", body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(1<<20))
	return req.MultipartForm.File["file"][0]
}

func TestResumeService_SaveAndGet(t *testing.T) {
	svc := NewResumeService(&fakeResumeRepo{byUser: map[uint]*model.Resume{}}, nil)
	ctx := context.Background()

	_, err := svc.Get(ctx, 1)
	assert.ErrorIs(t, err, util.ErrResumeNotFound)

	_, err = svc.Save(ctx, 1, json.RawMessage(`{"skills":`))
	assert.ErrorIs(t, err, util.ErrInvalidResumeData)

	saved, err := svc.Save(ctx, 1, json.RawMessage(`{"skills":["go"]}`))
	require.NoError(t, err)
	assert.JSONEq(t, `{"skills":["go"]}`, string(saved.Data))

	saved, err = svc.Save(ctx, 1, json.RawMessage(`{"skills":["go","sql"]}`))
	require.NoError(t, err)
	assert.JSONEq(t, `{"skills":["go","sql"]}`, string(saved.Data))
}

func TestResumeService_UploadPDF(t *testing.T) {
	root := t.TempDir()
	repo := &fakeResumeRepo{byUser: map[uint]*model.Resume{}}
	svc := NewResumeService(repo, &StorageService{Provider: &LocalStorageProvider{Root: root}})
	ctx := context.Background()

	_, err := svc.Save(ctx, 3, json.RawMessage(`{"name":"Ann"}`))
	require.NoError(t, err)

	pdf := []byte("%PDF-1.4\n1 0 obj\n<<>>\nendobj\ntrailer\n<<>>\n%%EOF\n")
	resume, err := svc.UploadPDF(ctx, 3, fileHeader(t, "cv.pdf", pdf))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(resume.PDFURL, "/uploads/resumes/3/"))
	assert.True(t, strings.HasSuffix(resume.PDFURL, ".pdf"))
	// 上传 PDF 不覆盖已有数据
	assert.JSONEq(t, `{"name":"Ann"}`, string(resume.Data))

	stored, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(strings.TrimPrefix(resume.PDFURL, "/uploads/"))))
	require.NoError(t, err)
	assert.Equal(t, pdf, stored)
}

func TestResumeService_UploadRejectsNonPDF(t *testing.T) {
	svc := NewResumeService(&fakeResumeRepo{byUser: map[uint]*model.Resume{}},
		&StorageService{Provider: &LocalStorageProvider{Root: t.TempDir()}})

	_, err := svc.UploadPDF(context.Background(), 3, fileHeader(t, "cv.pdf", []byte("just some text pretending")))
	assert.ErrorIs(t, err, util.ErrInvalidFileType)
}

func storedFiles(t *testing.T, root string) []string {
	t.Helper()
	var files []string
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			rel, _ := filepath.Rel(root, path)
			files = append(files, filepath.ToSlash(rel))
		}
		return nil
	})
	require.NoError(t, err)
	return files
}

func TestResumeService_UploadReplacesPreviousPDF(t *testing.T) {
	root := t.TempDir()
	svc := NewResumeService(&fakeResumeRepo{byUser: map[uint]*model.Resume{}},
		&StorageService{Provider: &LocalStorageProvider{Root: root}})
	ctx := context.Background()
	pdf := []byte("%PDF-1.4\n%%EOF\n")

	first, err := svc.UploadPDF(ctx, 4, fileHeader(t, "a.pdf", pdf))
	require.NoError(t, err)
	second, err := svc.UploadPDF(ctx, 4, fileHeader(t, "b.pdf", pdf))
	require.NoError(t, err)
	require.NotEqual(t, first.PDFURL, second.PDFURL)

	assert.Equal(t, []string{strings.TrimPrefix(second.PDFURL, "/uploads/")}, storedFiles(t, root))
}

func TestResumeService_UploadRollsBackOnSaveFailure(t *testing.T) {
	root := t.TempDir()
	repo := &fakeResumeRepo{byUser: map[uint]*model.Resume{}, upsertErr: errors.New("db down")}
	svc := NewResumeService(repo, &StorageService{Provider: &LocalStorageProvider{Root: root}})

	_, err := svc.UploadPDF(context.Background(), 4, fileHeader(t, "a.pdf", []byte("%PDF-1.4\n%%EOF\n")))
	assert.EqualError(t, err, "db down")
	assert.Empty(t, storedFiles(t, root))
}

func TestResumeKey(t *testing.T) {
	assert.Equal(t, "resumes/1/x.pdf", resumeKey("/uploads/resumes/1/x.pdf"))
	assert.Equal(t, "resumes/1/x.pdf", resumeKey("https://bucket.oss-cn-hangzhou.aliyuncs.com/resumes/1/x.pdf"))
	assert.Equal(t, "", resumeKey(""))
}

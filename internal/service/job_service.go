package service

import (
	"context"
	"errors"
	"job_portal_backend/internal/model"
	"job_portal_backend/internal/util"
	"job_portal_backend/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type JobRepo interface {
	List(ctx context.Context) ([]model.Job, error)
	FindByID(ctx context.Context, id uint) (*model.Job, error)
	Create(ctx context.Context, job *model.Job) error
	Apply(ctx context.Context, userID, jobID uint) (bool, error)
	Bookmark(ctx context.Context, userID, jobID uint) error
}

type JobService struct {
	Repo     JobRepo
	Notifier Notifier
}

func NewJobService(repo JobRepo, notifier Notifier) *JobService {
	return &JobService{Repo: repo, Notifier: notifier}
}

type CreateJobReq struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	CompanyName string `json:"companyName"`
	Location    string `json:"location"`
	Type        string `json:"type"`
}

func (s *JobService) findJob(ctx context.Context, id uint) (*model.Job, error) {
	job, err := s.Repo.FindByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrJobNotFound
	}
	if err != nil {
		return nil, err
	}
	return job, nil
}

func (s *JobService) ListJobs(ctx context.Context) ([]model.Job, error) {
	return s.Repo.List(ctx)
}

func (s *JobService) Apply(ctx context.Context, userID, jobID uint) error {
	job, err := s.findJob(ctx, jobID)
	if err != nil {
		return err
	}

	created, err := s.Repo.Apply(ctx, userID, jobID)
	if err != nil {
		return err
	}
	if !created {
		return util.ErrAlreadyApplied
	}

	if s.Notifier != nil {
		if err := s.Notifier.Notify(ctx, userID, "Application Submitted", "Applied to "+job.Title); err != nil {
			logger.Log.Error("failed to create application notification", zap.Error(err), zap.Uint("jobId", jobID))
		}
	}
	return nil
}

func (s *JobService) Bookmark(ctx context.Context, userID, jobID uint) error {
	if _, err := s.findJob(ctx, jobID); err != nil {
		return err
	}
	return s.Repo.Bookmark(ctx, userID, jobID)
}

func (s *JobService) CreateJob(ctx context.Context, req CreateJobReq) (*model.Job, error) {
	job := &model.Job{
		Title:       req.Title,
		Description: req.Description,
		CompanyName: req.CompanyName,
		Location:    req.Location,
		Type:        req.Type,
	}
	if err := s.Repo.Create(ctx, job); err != nil {
		return nil, err
	}
	return job, nil
}

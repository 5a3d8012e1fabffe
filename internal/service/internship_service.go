package service

import (
	"context"
	"errors"
	"job_portal_backend/internal/model"
	"job_portal_backend/internal/util"
	"job_portal_backend/pkg/logger"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type InternshipRepo interface {
	List(ctx context.Context) ([]model.Internship, error)
	FindByID(ctx context.Context, id uint) (*model.Internship, error)
	Create(ctx context.Context, item *model.Internship) error
	Apply(ctx context.Context, userID, internshipID uint) error
	CompleteTask(ctx context.Context, userID, taskID uint) error
}

type InternshipService struct {
	Repo     InternshipRepo
	Notifier Notifier
}

func NewInternshipService(repo InternshipRepo, notifier Notifier) *InternshipService {
	return &InternshipService{Repo: repo, Notifier: notifier}
}

type InternshipTaskReq struct {
	Title       string     `json:"title" binding:"required"`
	Description string     `json:"description"`
	DueDate     *time.Time `json:"dueDate"`
}

type CreateInternshipReq struct {
	Title          string              `json:"title" binding:"required"`
	Description    string              `json:"description"`
	CertificateURL string              `json:"certificateUrl"`
	Tasks          []InternshipTaskReq `json:"tasks" binding:"dive"`
}

func (s *InternshipService) findInternship(ctx context.Context, id uint) (*model.Internship, error) {
	item, err := s.Repo.FindByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrInternshipNotFound
	}
	if err != nil {
		return nil, err
	}
	return item, nil
}

func (s *InternshipService) ListInternships(ctx context.Context) ([]model.Internship, error) {
	return s.Repo.List(ctx)
}

func (s *InternshipService) Apply(ctx context.Context, userID, internshipID uint) error {
	item, err := s.findInternship(ctx, internshipID)
	if err != nil {
		return err
	}
	if err := s.Repo.Apply(ctx, userID, item.ID); err != nil {
		return err
	}

	if s.Notifier != nil {
		if err := s.Notifier.Notify(ctx, userID, "Internship applied", "Applied to "+item.Title); err != nil {
			logger.Log.Error("failed to create internship notification", zap.Error(err), zap.Uint("internshipId", item.ID))
		}
	}
	return nil
}

// CompleteTask 任务必须属于该实习
func (s *InternshipService) CompleteTask(ctx context.Context, userID, internshipID, taskID uint) error {
	item, err := s.findInternship(ctx, internshipID)
	if err != nil {
		return err
	}

	for _, task := range item.Tasks {
		if task.ID == taskID {
			return s.Repo.CompleteTask(ctx, userID, taskID)
		}
	}
	return util.ErrTaskNotFound
}

func (s *InternshipService) CreateInternship(ctx context.Context, req CreateInternshipReq) (*model.Internship, error) {
	item := &model.Internship{
		Title:          req.Title,
		Description:    req.Description,
		CertificateURL: req.CertificateURL,
	}
	for i, t := range req.Tasks {
		item.Tasks = append(item.Tasks, model.InternshipTask{
			Title:       t.Title,
			Description: t.Description,
			DueDate:     t.DueDate,
			Order:       i,
		})
	}
	if err := s.Repo.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

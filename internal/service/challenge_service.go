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

type ChallengeRepo interface {
	ListByType(ctx context.Context, t model.ChallengeType) ([]model.Challenge, error)
	FindByID(ctx context.Context, id uint) (*model.Challenge, error)
	Create(ctx context.Context, ch *model.Challenge) error
	UpsertSubmission(ctx context.Context, sub *model.ChallengeSubmission) error
}

type ChallengeService struct {
	Repo     ChallengeRepo
	Notifier Notifier
}

func NewChallengeService(repo ChallengeRepo, notifier Notifier) *ChallengeService {
	return &ChallengeService{Repo: repo, Notifier: notifier}
}

type CreateChallengeReq struct {
	Title       string              `json:"title" binding:"required"`
	Description string              `json:"description"`
	Type        model.ChallengeType `json:"type" binding:"omitempty,oneof=daily weekly"`
	Deadline    *time.Time          `json:"deadline"`
	Points      *int                `json:"points" binding:"omitempty,min=0"`
}

type SubmitChallengeReq struct {
	Content string `json:"content"`
}

func (s *ChallengeService) List(ctx context.Context, t model.ChallengeType) ([]model.Challenge, error) {
	return s.Repo.ListByType(ctx, t)
}

// Submit 同一挑战重复提交只保留最新内容
func (s *ChallengeService) Submit(ctx context.Context, userID, challengeID uint, content string) error {
	ch, err := s.Repo.FindByID(ctx, challengeID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return util.ErrChallengeNotFound
	}
	if err != nil {
		return err
	}

	sub := &model.ChallengeSubmission{
		ChallengeID: ch.ID,
		UserID:      userID,
		Content:     content,
	}
	if err := s.Repo.UpsertSubmission(ctx, sub); err != nil {
		return err
	}

	if s.Notifier != nil {
		if err := s.Notifier.Notify(ctx, userID, "Challenge submitted", "Submitted "+ch.Title); err != nil {
			logger.Log.Error("failed to create challenge notification", zap.Error(err), zap.Uint("challengeId", ch.ID))
		}
	}
	return nil
}

func (s *ChallengeService) CreateChallenge(ctx context.Context, req CreateChallengeReq) (*model.Challenge, error) {
	ch := &model.Challenge{
		Title:       req.Title,
		Description: req.Description,
		Type:        req.Type,
		Deadline:    req.Deadline,
		Points:      model.DefaultChallengePoints,
	}
	if ch.Type == "" {
		ch.Type = model.ChallengeDaily
	}
	// 未传 points 时使用默认分值，显式的 0 保留
	if req.Points != nil {
		ch.Points = *req.Points
	}
	if err := s.Repo.Create(ctx, ch); err != nil {
		return nil, err
	}
	return ch, nil
}

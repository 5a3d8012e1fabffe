package service

import (
	"context"
	"job_portal_backend/internal/model"
	"job_portal_backend/internal/util"
)

type ReviewRepo interface {
	Create(ctx context.Context, review *model.Review) error
	List(ctx context.Context, t model.ReviewType, relatedID uint) ([]model.Review, error)
	TargetExists(ctx context.Context, t model.ReviewType, id uint) (bool, error)
}

type ReviewService struct {
	Repo ReviewRepo
}

func NewReviewService(repo ReviewRepo) *ReviewService {
	return &ReviewService{Repo: repo}
}

type CreateReviewReq struct {
	Type      model.ReviewType `json:"type" binding:"required,oneof=mentor course challenge internship"`
	RelatedID uint             `json:"relatedId" binding:"required"`
	Rating    int              `json:"rating" binding:"required,min=1,max=5"`
	Feedback  string           `json:"feedback"`
}

func (s *ReviewService) Create(ctx context.Context, userID uint, req CreateReviewReq) (*model.Review, error) {
	ok, err := s.Repo.TargetExists(ctx, req.Type, req.RelatedID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, util.ErrReviewTargetMissing
	}

	review := &model.Review{
		Type:      req.Type,
		RelatedID: req.RelatedID,
		Rating:    req.Rating,
		Feedback:  req.Feedback,
		UserID:    userID,
	}
	if err := s.Repo.Create(ctx, review); err != nil {
		return nil, err
	}
	return review, nil
}

func (s *ReviewService) List(ctx context.Context, t model.ReviewType, relatedID uint) ([]model.Review, error) {
	return s.Repo.List(ctx, t, relatedID)
}

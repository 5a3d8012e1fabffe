package repository

import (
	"context"
	"job_portal_backend/internal/model"

	"gorm.io/gorm"
)

type ReviewRepository struct {
	DB *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{DB: db}
}

func (r *ReviewRepository) Create(ctx context.Context, review *model.Review) error {
	return r.DB.WithContext(ctx).Create(review).Error
}

func (r *ReviewRepository) List(ctx context.Context, t model.ReviewType, relatedID uint) ([]model.Review, error) {
	var list []model.Review
	query := r.DB.WithContext(ctx).Model(&model.Review{})
	if t != "" {
		query = query.Where("type = ?", t)
	}
	if relatedID > 0 {
		query = query.Where("related_id = ?", relatedID)
	}
	err := query.Order("created_at desc").Find(&list).Error
	return list, err
}

// TargetExists 检查被评价对象是否存在
func (r *ReviewRepository) TargetExists(ctx context.Context, t model.ReviewType, id uint) (bool, error) {
	var target interface{}
	switch t {
	case model.ReviewMentor:
		target = &model.Mentor{}
	case model.ReviewCourse:
		target = &model.Course{}
	case model.ReviewChallenge:
		target = &model.Challenge{}
	case model.ReviewInternship:
		target = &model.Internship{}
	default:
		return false, nil
	}

	var count int64
	err := r.DB.WithContext(ctx).Model(target).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

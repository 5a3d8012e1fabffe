package repository

import (
	"context"
	"job_portal_backend/internal/model"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ChallengeRepository struct {
	DB *gorm.DB
}

func NewChallengeRepository(db *gorm.DB) *ChallengeRepository {
	return &ChallengeRepository{DB: db}
}

func (r *ChallengeRepository) ListByType(ctx context.Context, t model.ChallengeType) ([]model.Challenge, error) {
	var list []model.Challenge
	err := r.DB.WithContext(ctx).Where("type = ?", t).Order("created_at desc").Find(&list).Error
	return list, err
}

func (r *ChallengeRepository) FindByID(ctx context.Context, id uint) (*model.Challenge, error) {
	var ch model.Challenge
	err := r.DB.WithContext(ctx).First(&ch, id).Error
	return &ch, err
}

func (r *ChallengeRepository) Create(ctx context.Context, ch *model.Challenge) error {
	return r.DB.WithContext(ctx).Create(ch).Error
}

// UpsertSubmission 同一用户重复提交时覆盖内容
func (r *ChallengeRepository) UpsertSubmission(ctx context.Context, sub *model.ChallengeSubmission) error {
	return r.DB.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "challenge_id"}, {Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"content", "updated_at"}),
		}).
		Create(sub).Error
}

func (r *ChallengeRepository) CountSubmissionsSince(ctx context.Context, userID uint, t model.ChallengeType, since time.Time) (int64, error) {
	var count int64
	err := r.DB.WithContext(ctx).
		Model(&model.ChallengeSubmission{}).
		Joins("JOIN challenges c ON c.id = challenge_submissions.challenge_id").
		Where("challenge_submissions.user_id = ? AND c.type = ? AND challenge_submissions.updated_at >= ?", userID, t, since).
		Count(&count).Error
	return count, err
}

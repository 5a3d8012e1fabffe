package repository

import (
	"context"
	"job_portal_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ResumeRepository struct {
	DB *gorm.DB
}

func NewResumeRepository(db *gorm.DB) *ResumeRepository {
	return &ResumeRepository{DB: db}
}

func (r *ResumeRepository) FindByUser(ctx context.Context, userID uint) (*model.Resume, error) {
	var resume model.Resume
	err := r.DB.WithContext(ctx).Where("user_id = ?", userID).First(&resume).Error
	return &resume, err
}

// Upsert 按 user_id 唯一键插入或更新 columns 指定的列
func (r *ResumeRepository) Upsert(ctx context.Context, resume *model.Resume, columns ...string) error {
	return r.DB.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns(append(columns, "updated_at")),
		}).
		Create(resume).Error
}

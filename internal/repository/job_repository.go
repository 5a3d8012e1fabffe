package repository

import (
	"context"
	"job_portal_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type JobRepository struct {
	DB *gorm.DB
}

func NewJobRepository(db *gorm.DB) *JobRepository {
	return &JobRepository{DB: db}
}

func (r *JobRepository) List(ctx context.Context) ([]model.Job, error) {
	var jobs []model.Job
	err := r.DB.WithContext(ctx).Order("created_at desc").Find(&jobs).Error
	return jobs, err
}

func (r *JobRepository) FindByID(ctx context.Context, id uint) (*model.Job, error) {
	var job model.Job
	err := r.DB.WithContext(ctx).First(&job, id).Error
	return &job, err
}

func (r *JobRepository) Create(ctx context.Context, job *model.Job) error {
	return r.DB.WithContext(ctx).Create(job).Error
}

// Apply 写入投递记录；已投递过时返回 false
func (r *JobRepository) Apply(ctx context.Context, userID, jobID uint) (bool, error) {
	res := r.DB.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&model.JobApplication{UserID: userID, JobID: jobID})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *JobRepository) Bookmark(ctx context.Context, userID, jobID uint) error {
	return r.DB.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&model.JobBookmark{UserID: userID, JobID: jobID}).Error
}

func (r *JobRepository) CountApplied(ctx context.Context, userID uint) (int64, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&model.JobApplication{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}

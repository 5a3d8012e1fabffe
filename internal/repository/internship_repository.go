package repository

import (
	"context"
	"job_portal_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type InternshipRepository struct {
	DB *gorm.DB
}

func NewInternshipRepository(db *gorm.DB) *InternshipRepository {
	return &InternshipRepository{DB: db}
}

func orderedTasks(db *gorm.DB) *gorm.DB {
	return db.Order("`order` asc, id asc")
}

func (r *InternshipRepository) List(ctx context.Context) ([]model.Internship, error) {
	var items []model.Internship
	err := r.DB.WithContext(ctx).Preload("Tasks", orderedTasks).Order("created_at desc").Find(&items).Error
	return items, err
}

func (r *InternshipRepository) FindByID(ctx context.Context, id uint) (*model.Internship, error) {
	var item model.Internship
	err := r.DB.WithContext(ctx).Preload("Tasks", orderedTasks).First(&item, id).Error
	return &item, err
}

// Create 同时写入内嵌任务
func (r *InternshipRepository) Create(ctx context.Context, item *model.Internship) error {
	return r.DB.WithContext(ctx).Create(item).Error
}

func (r *InternshipRepository) Apply(ctx context.Context, userID, internshipID uint) error {
	return r.DB.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&model.InternshipApplication{UserID: userID, InternshipID: internshipID}).Error
}

func (r *InternshipRepository) CompleteTask(ctx context.Context, userID, taskID uint) error {
	return r.DB.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&model.TaskCompletion{UserID: userID, TaskID: taskID}).Error
}

func (r *InternshipRepository) CountApplications(ctx context.Context, userID uint) (int64, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&model.InternshipApplication{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}

func (r *InternshipRepository) CountCompletedTasks(ctx context.Context, userID uint) (int64, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&model.TaskCompletion{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}

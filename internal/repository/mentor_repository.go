package repository

import (
	"context"
	"job_portal_backend/internal/model"
	"time"

	"gorm.io/gorm"
)

type MentorRepository struct {
	DB *gorm.DB
}

func NewMentorRepository(db *gorm.DB) *MentorRepository {
	return &MentorRepository{DB: db}
}

func (r *MentorRepository) List(ctx context.Context) ([]model.Mentor, error) {
	var mentors []model.Mentor
	err := r.DB.WithContext(ctx).Order("rating desc, id asc").Find(&mentors).Error
	return mentors, err
}

func (r *MentorRepository) FindByID(ctx context.Context, id uint) (*model.Mentor, error) {
	var mentor model.Mentor
	err := r.DB.WithContext(ctx).First(&mentor, id).Error
	return &mentor, err
}

func (r *MentorRepository) Create(ctx context.Context, mentor *model.Mentor) error {
	return r.DB.WithContext(ctx).Create(mentor).Error
}

func (r *MentorRepository) CreateSession(ctx context.Context, session *model.MentorSession) error {
	return r.DB.WithContext(ctx).Create(session).Error
}

// NextBookedSession 返回 from 之后最早的已预约会话，没有时返回 nil
func (r *MentorRepository) NextBookedSession(ctx context.Context, userID uint, from time.Time) (*model.MentorSession, error) {
	var sessions []model.MentorSession
	err := r.DB.WithContext(ctx).
		Preload("Mentor").
		Where("user_id = ? AND status = ? AND time >= ?", userID, model.SessionBooked, from).
		Order("time asc").
		Limit(1).
		Find(&sessions).Error
	if err != nil || len(sessions) == 0 {
		return nil, err
	}
	return &sessions[0], nil
}

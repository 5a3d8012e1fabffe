package service

import (
	"context"
	"errors"
	"fmt"
	"job_portal_backend/internal/model"
	"job_portal_backend/internal/util"
	"job_portal_backend/pkg/logger"
	"time"

	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type MentorRepo interface {
	List(ctx context.Context) ([]model.Mentor, error)
	FindByID(ctx context.Context, id uint) (*model.Mentor, error)
	Create(ctx context.Context, mentor *model.Mentor) error
	CreateSession(ctx context.Context, session *model.MentorSession) error
}

type MentorService struct {
	Repo     MentorRepo
	Notifier Notifier
}

func NewMentorService(repo MentorRepo, notifier Notifier) *MentorService {
	return &MentorService{Repo: repo, Notifier: notifier}
}

type BookMentorReq struct {
	MentorID uint      `json:"mentorId" binding:"required"`
	Time     time.Time `json:"time" binding:"required"`
	Notes    string    `json:"notes"`
}

type CreateMentorReq struct {
	Name           string      `json:"name" binding:"required"`
	Bio            string      `json:"bio"`
	Skills         []string    `json:"skills"`
	AvailableSlots []time.Time `json:"availableSlots"`
	Rating         float64     `json:"rating" binding:"min=0,max=5"`
}

func (s *MentorService) ListMentors(ctx context.Context) ([]model.Mentor, error) {
	return s.Repo.List(ctx)
}

func (s *MentorService) Book(ctx context.Context, userID uint, req BookMentorReq) (*model.MentorSession, error) {
	mentor, err := s.Repo.FindByID(ctx, req.MentorID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrMentorNotFound
	}
	if err != nil {
		return nil, err
	}

	session := &model.MentorSession{
		MentorID: mentor.ID,
		UserID:   userID,
		Time:     req.Time,
		Notes:    req.Notes,
		Status:   model.SessionBooked,
	}
	if err := s.Repo.CreateSession(ctx, session); err != nil {
		return nil, err
	}

	if s.Notifier != nil {
		msg := fmt.Sprintf("Session with %s booked at %s", mentor.Name, req.Time.Format(util.TimeFormat))
		if err := s.Notifier.Notify(ctx, userID, "Mentor booked", msg); err != nil {
			logger.Log.Error("failed to create booking notification", zap.Error(err), zap.Uint("mentorId", mentor.ID))
		}
	}
	return session, nil
}

func (s *MentorService) CreateMentor(ctx context.Context, req CreateMentorReq) (*model.Mentor, error) {
	mentor := &model.Mentor{
		Name:           req.Name,
		Bio:            req.Bio,
		Skills:         datatypes.JSONSlice[string](req.Skills),
		AvailableSlots: datatypes.JSONSlice[time.Time](req.AvailableSlots),
		Rating:         req.Rating,
	}
	if err := s.Repo.Create(ctx, mentor); err != nil {
		return nil, err
	}
	return mentor, nil
}

package service

import (
	"context"
	"errors"
	"fmt"
	"job_portal_backend/internal/model"
	"job_portal_backend/internal/util"
	"time"

	"gorm.io/gorm"
)

type DashboardService struct {
	UserRepo       UserRepo
	CourseRepo     interface{ CountEnrolled(ctx context.Context, userID uint) (int64, error) }
	JobRepo        interface{ CountApplied(ctx context.Context, userID uint) (int64, error) }
	InternshipRepo interface {
		CountApplications(ctx context.Context, userID uint) (int64, error)
		CountCompletedTasks(ctx context.Context, userID uint) (int64, error)
	}
	MentorRepo interface {
		NextBookedSession(ctx context.Context, userID uint, from time.Time) (*model.MentorSession, error)
	}
	ChallengeRepo interface {
		CountSubmissionsSince(ctx context.Context, userID uint, t model.ChallengeType, since time.Time) (int64, error)
	}
	Now func() time.Time
}

type Dashboard struct {
	Welcome                   string               `json:"welcome"`
	CourseProgress            string               `json:"courseProgress"`
	Internships               int64                `json:"internships"`
	AppliedJobs               int64                `json:"appliedJobs"`
	NextMentorship            *model.MentorSession `json:"nextMentorship"`
	WeeklyChallengesCompleted int64                `json:"weeklyChallengesCompleted"`
}

type Analytics struct {
	TotalCourses   int64 `json:"totalCourses"`
	TotalApplied   int64 `json:"totalApplied"`
	CompletedTasks int64 `json:"completedTasks"`
}

func (s *DashboardService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *DashboardService) GetUserDashboard(ctx context.Context, userID uint) (*Dashboard, error) {
	user, err := s.UserRepo.FindByID(ctx, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}

	enrolled, err := s.CourseRepo.CountEnrolled(ctx, userID)
	if err != nil {
		return nil, err
	}

	internships, err := s.InternshipRepo.CountApplications(ctx, userID)
	if err != nil {
		return nil, err
	}

	applied, err := s.JobRepo.CountApplied(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	next, err := s.MentorRepo.NextBookedSession(ctx, userID, now)
	if err != nil {
		return nil, err
	}

	// 最近 7 天的周挑战提交数
	weekly, err := s.ChallengeRepo.CountSubmissionsSince(ctx, userID, model.ChallengeWeekly, now.AddDate(0, 0, -7))
	if err != nil {
		return nil, err
	}

	return &Dashboard{
		Welcome:                   user.Name,
		CourseProgress:            fmt.Sprintf("%d enrolled", enrolled),
		Internships:               internships,
		AppliedJobs:               applied,
		NextMentorship:            next,
		WeeklyChallengesCompleted: weekly,
	}, nil
}

func (s *DashboardService) GetAnalytics(ctx context.Context, userID uint) (*Analytics, error) {
	courses, err := s.CourseRepo.CountEnrolled(ctx, userID)
	if err != nil {
		return nil, err
	}
	applied, err := s.JobRepo.CountApplied(ctx, userID)
	if err != nil {
		return nil, err
	}
	tasks, err := s.InternshipRepo.CountCompletedTasks(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &Analytics{TotalCourses: courses, TotalApplied: applied, CompletedTasks: tasks}, nil
}

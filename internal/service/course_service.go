package service

import (
	"context"
	"encoding/json"
	"errors"
	"job_portal_backend/internal/model"
	"job_portal_backend/internal/util"
	"job_portal_backend/pkg/logger"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const courseListCacheKey = "courses:all"

type CourseRepo interface {
	List(ctx context.Context) ([]model.Course, error)
	FindByID(ctx context.Context, id uint) (*model.Course, error)
	Create(ctx context.Context, course *model.Course) error
	Enroll(ctx context.Context, userID, courseID uint) error
	ListEnrolled(ctx context.Context, userID uint) ([]model.Course, error)
}

type CourseService struct {
	Repo     CourseRepo
	Redis    *redis.Client
	CacheTTL time.Duration
	Now      func() time.Time
}

func NewCourseService(repo CourseRepo, rdb *redis.Client, cacheTTL time.Duration) *CourseService {
	return &CourseService{
		Repo:     repo,
		Redis:    rdb,
		CacheTTL: cacheTTL,
		Now:      time.Now,
	}
}

type CourseListItem struct {
	model.Course
	IsFreeThisWeek bool `json:"isFreeThisWeek"`
}

type CreateCourseReq struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description"`
	Price       float64  `json:"price" binding:"min=0"`
	Content     []string `json:"content"`
}

// WeeklyFreeIndex 按 ISO 周序号轮换：week mod count。count 为 0 时返回 -1。
func WeeklyFreeIndex(now time.Time, count int) int {
	if count <= 0 {
		return -1
	}
	_, week := now.ISOWeek()
	return week % count
}

// AnnotateWeeklyFree 标记本周免费课程，课程顺序保持不变
func AnnotateWeeklyFree(courses []model.Course, now time.Time) []CourseListItem {
	items := make([]CourseListItem, 0, len(courses))
	free := WeeklyFreeIndex(now, len(courses))
	for i, c := range courses {
		items = append(items, CourseListItem{Course: c, IsFreeThisWeek: i == free})
	}
	return items
}

func (s *CourseService) ListCourses(ctx context.Context) ([]CourseListItem, error) {
	courses, err := s.loadCourses(ctx)
	if err != nil {
		return nil, err
	}
	return AnnotateWeeklyFree(courses, s.Now()), nil
}

// loadCourses 先读 Redis 缓存，未命中或 Redis 异常时回源数据库
func (s *CourseService) loadCourses(ctx context.Context) ([]model.Course, error) {
	if s.Redis != nil {
		val, err := s.Redis.Get(ctx, courseListCacheKey).Bytes()
		if err == nil {
			var courses []model.Course
			if err := json.Unmarshal(val, &courses); err == nil {
				return courses, nil
			}
			logger.Log.Warn("corrupt course cache entry, reloading", zap.Error(err))
		} else if err != redis.Nil {
			logger.Log.Warn("course cache read failed", zap.Error(err))
		}
	}

	courses, err := s.Repo.List(ctx)
	if err != nil {
		return nil, err
	}

	if s.Redis != nil {
		if data, err := json.Marshal(courses); err == nil {
			if err := s.Redis.Set(ctx, courseListCacheKey, data, s.CacheTTL).Err(); err != nil {
				logger.Log.Warn("course cache write failed", zap.Error(err))
			}
		}
	}
	return courses, nil
}

func (s *CourseService) invalidate(ctx context.Context) {
	if s.Redis == nil {
		return
	}
	if err := s.Redis.Del(ctx, courseListCacheKey).Err(); err != nil {
		logger.Log.Warn("course cache invalidation failed", zap.Error(err))
	}
}

func (s *CourseService) Enroll(ctx context.Context, userID, courseID uint) error {
	if _, err := s.Repo.FindByID(ctx, courseID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrCourseNotFound
		}
		return err
	}
	return s.Repo.Enroll(ctx, userID, courseID)
}

func (s *CourseService) EnrolledCourses(ctx context.Context, userID uint) ([]model.Course, error) {
	return s.Repo.ListEnrolled(ctx, userID)
}

func (s *CourseService) CreateCourse(ctx context.Context, req CreateCourseReq) (*model.Course, error) {
	course := &model.Course{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Content:     datatypes.JSONSlice[string](req.Content),
	}
	if err := s.Repo.Create(ctx, course); err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return course, nil
}

package service

import (
	"context"
	"errors"
	"job_portal_backend/internal/model"
	"job_portal_backend/internal/util"
	"sort"
	"strings"

	"gorm.io/gorm"
)

const recommendationLimit = 5

type RecommendationService struct {
	UserRepo   UserRepo
	CourseRepo interface{ List(ctx context.Context) ([]model.Course, error) }
	JobRepo    interface{ List(ctx context.Context) ([]model.Job, error) }
}

type Recommendations struct {
	Courses []model.Course `json:"courses"`
	Jobs    []model.Job    `json:"jobs"`
}

// SkillMatches 统计出现在文本中的技能数，不区分大小写
func SkillMatches(skills []string, text string) int {
	text = strings.ToLower(text)
	n := 0
	for _, skill := range skills {
		skill = strings.ToLower(strings.TrimSpace(skill))
		if skill != "" && strings.Contains(text, skill) {
			n++
		}
	}
	return n
}

// topMatches 按匹配数稳定降序，取前 limit 个下标
func topMatches(skills []string, texts []string, limit int) []int {
	idx := make([]int, len(texts))
	scores := make([]int, len(texts))
	for i, t := range texts {
		idx[i] = i
		scores[i] = SkillMatches(skills, t)
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return scores[idx[a]] > scores[idx[b]]
	})
	if len(idx) > limit {
		idx = idx[:limit]
	}
	return idx
}

func RecommendCourses(skills []string, courses []model.Course) []model.Course {
	texts := make([]string, len(courses))
	for i, c := range courses {
		texts[i] = c.Title + " " + c.Description
	}
	out := make([]model.Course, 0, recommendationLimit)
	for _, i := range topMatches(skills, texts, recommendationLimit) {
		out = append(out, courses[i])
	}
	return out
}

func RecommendJobs(skills []string, jobs []model.Job) []model.Job {
	texts := make([]string, len(jobs))
	for i, j := range jobs {
		texts[i] = j.Title + " " + j.Description
	}
	out := make([]model.Job, 0, recommendationLimit)
	for _, i := range topMatches(skills, texts, recommendationLimit) {
		out = append(out, jobs[i])
	}
	return out
}

func (s *RecommendationService) ForUser(ctx context.Context, userID uint) (*Recommendations, error) {
	user, err := s.UserRepo.FindByID(ctx, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}

	courses, err := s.CourseRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	jobs, err := s.JobRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	return &Recommendations{
		Courses: RecommendCourses(user.Skills, courses),
		Jobs:    RecommendJobs(user.Skills, jobs),
	}, nil
}

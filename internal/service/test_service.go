package service

import (
	"context"
	"errors"
	"fmt"
	"job_portal_backend/internal/model"
	"job_portal_backend/internal/util"
	"job_portal_backend/pkg/logger"
	"job_portal_backend/pkg/monitoring"
	"job_portal_backend/pkg/tracing"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// maxLeaderboardAttempts 乐观锁冲突时的最大尝试次数
const maxLeaderboardAttempts = 5

type TestRepo interface {
	List(ctx context.Context) ([]model.Test, error)
	FindByID(ctx context.Context, id uint) (*model.Test, error)
	Create(ctx context.Context, test *model.Test) error
	SaveLeaderboard(ctx context.Context, id uint, version int, board []model.LeaderboardEntry) (bool, error)
}

// Notifier 给用户发送站内通知
type Notifier interface {
	Notify(ctx context.Context, userID uint, title, message string) error
}

type TestService struct {
	Repo     TestRepo
	Notifier Notifier
}

func NewTestService(repo TestRepo, notifier Notifier) *TestService {
	return &TestService{Repo: repo, Notifier: notifier}
}

// TestSummary 列表视图，不含答案与排行榜
type TestSummary struct {
	ID            uint      `json:"id"`
	Title         string    `json:"title"`
	CourseID      *uint     `json:"course,omitempty"`
	QuestionCount int       `json:"questionCount"`
	CreatedAt     time.Time `json:"createdAt"`
}

type PaperQuestion struct {
	Q       string   `json:"q"`
	Options []string `json:"options"`
}

// TestPaper 开始答题时下发的试卷，省略排行榜与正确答案
type TestPaper struct {
	ID        uint            `json:"id"`
	Title     string          `json:"title"`
	CourseID  *uint           `json:"course,omitempty"`
	Questions []PaperQuestion `json:"questions"`
	CreatedAt time.Time       `json:"createdAt"`
}

type RankedEntry struct {
	Rank   int  `json:"rank"`
	UserID uint `json:"user"`
	Score  int  `json:"score"`
}

type SubmitResult struct {
	Percent int    `json:"percent"`
	Message string `json:"message"`
}

type TestQuestionReq struct {
	Q            string   `json:"q" binding:"required"`
	Options      []string `json:"options" binding:"required,min=2"`
	CorrectIndex int      `json:"correctIndex" binding:"min=0"`
}

type CreateTestReq struct {
	Title     string            `json:"title" binding:"required"`
	CourseID  *uint             `json:"course"`
	Questions []TestQuestionReq `json:"questions" binding:"dive"`
}

func (s *TestService) findTest(ctx context.Context, testID uint) (*model.Test, error) {
	test, err := s.Repo.FindByID(ctx, testID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrTestNotFound
	}
	if err != nil {
		return nil, err
	}
	return test, nil
}

func (s *TestService) ListTests(ctx context.Context) ([]TestSummary, error) {
	tests, err := s.Repo.List(ctx)
	if err != nil {
		return nil, err
	}

	list := make([]TestSummary, 0, len(tests))
	for _, t := range tests {
		list = append(list, TestSummary{
			ID:            t.ID,
			Title:         t.Title,
			CourseID:      t.CourseID,
			QuestionCount: len(t.Questions),
			CreatedAt:     t.CreatedAt,
		})
	}
	return list, nil
}

func (s *TestService) StartTest(ctx context.Context, testID uint) (*TestPaper, error) {
	test, err := s.findTest(ctx, testID)
	if err != nil {
		return nil, err
	}

	paper := &TestPaper{
		ID:        test.ID,
		Title:     test.Title,
		CourseID:  test.CourseID,
		Questions: make([]PaperQuestion, 0, len(test.Questions)),
		CreatedAt: test.CreatedAt,
	}
	for _, q := range test.Questions {
		paper.Questions = append(paper.Questions, PaperQuestion{Q: q.Q, Options: q.Options})
	}
	return paper, nil
}

func (s *TestService) GetLeaderboard(ctx context.Context, testID uint) ([]RankedEntry, error) {
	test, err := s.findTest(ctx, testID)
	if err != nil {
		return nil, err
	}

	ranked := make([]RankedEntry, 0, len(test.Leaderboard))
	for i, e := range test.Leaderboard {
		ranked = append(ranked, RankedEntry{Rank: i + 1, UserID: e.UserID, Score: e.Score})
	}
	return ranked, nil
}

// SubmitTest 评分并更新排行榜。排行榜写入带 version 条件，
// 与并发提交冲突时重新读取测验再次合并，超过次数返回 ErrLeaderboardConflict。
func (s *TestService) SubmitTest(ctx context.Context, testID, userID uint, answers []*int) (*SubmitResult, error) {
	ctx, span := tracing.Tracer.Start(ctx, "TestService.SubmitTest")
	defer span.End()
	span.SetAttributes(attribute.Int64("test.id", int64(testID)), attribute.Int64("user.id", int64(userID)))

	var (
		test    *model.Test
		percent int
	)
	for attempt := 1; ; attempt++ {
		var err error
		test, err = s.findTest(ctx, testID)
		if err != nil {
			monitoring.TestSubmissions.WithLabelValues("error").Inc()
			return nil, err
		}

		percent = ScoreAnswers(test.Questions, answers)
		board := RankEntry(test.Leaderboard, userID, percent)

		saved, err := s.Repo.SaveLeaderboard(ctx, test.ID, test.Version, board)
		if err != nil {
			monitoring.TestSubmissions.WithLabelValues("error").Inc()
			return nil, err
		}
		if saved {
			test.Leaderboard = datatypes.JSONSlice[model.LeaderboardEntry](board)
			test.Version++
			break
		}

		if attempt >= maxLeaderboardAttempts {
			monitoring.TestSubmissions.WithLabelValues("conflict").Inc()
			logger.Log.Warn("leaderboard update gave up after conflicts",
				zap.Uint("testId", testID), zap.Uint("userId", userID), zap.Int("attempts", attempt))
			return nil, util.ErrLeaderboardConflict
		}
		monitoring.LeaderboardRetries.Inc()
		logger.Log.Debug("leaderboard version conflict, retrying",
			zap.Uint("testId", testID), zap.Int("attempt", attempt))
	}

	monitoring.TestSubmissions.WithLabelValues("ok").Inc()
	span.SetAttributes(attribute.Int("test.percent", percent))

	// 成绩已落库，通知失败只记录日志
	if s.Notifier != nil {
		msg := fmt.Sprintf("You scored %d%% in %s", percent, test.Title)
		if err := s.Notifier.Notify(ctx, userID, "Test submitted", msg); err != nil {
			logger.Log.Error("failed to create test notification",
				zap.Error(err), zap.Uint("testId", testID), zap.Uint("userId", userID))
		}
	}

	return &SubmitResult{Percent: percent, Message: "Submitted"}, nil
}

func (s *TestService) CreateTest(ctx context.Context, req CreateTestReq) (*model.Test, error) {
	questions := make([]model.TestQuestion, 0, len(req.Questions))
	for _, q := range req.Questions {
		if len(q.Options) < 2 || q.CorrectIndex < 0 || q.CorrectIndex >= len(q.Options) {
			return nil, util.ErrInvalidQuestion
		}
		questions = append(questions, model.TestQuestion{
			Q:            q.Q,
			Options:      q.Options,
			CorrectIndex: q.CorrectIndex,
		})
	}

	test := &model.Test{
		Title:       req.Title,
		CourseID:    req.CourseID,
		Questions:   datatypes.JSONSlice[model.TestQuestion](questions),
		Leaderboard: datatypes.JSONSlice[model.LeaderboardEntry]{},
	}
	if err := s.Repo.Create(ctx, test); err != nil {
		return nil, err
	}
	return test, nil
}

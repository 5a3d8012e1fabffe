package service

import (
	"context"
	"errors"
	"testing"

	"job_portal_backend/internal/model"
	"job_portal_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func sampleTest(id uint) *model.Test {
	t := &model.Test{
		Title:     "Go basics",
		Questions: datatypes.JSONSlice[model.TestQuestion](threeQuestions()),
	}
	t.ID = id
	return t
}

func TestSubmitTest_ScoresAndRecords(t *testing.T) {
	repo := newFakeTestRepo(sampleTest(1))
	notifier := &fakeNotifier{}
	svc := NewTestService(repo, notifier)

	res, err := svc.SubmitTest(context.Background(), 1, 7, answersOf(1, 0, 2))
	require.NoError(t, err)
	assert.Equal(t, 100, res.Percent)
	assert.Equal(t, "Submitted", res.Message)

	board, err := svc.GetLeaderboard(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, []RankedEntry{{Rank: 1, UserID: 7, Score: 100}}, board)

	require.Len(t, notifier.sent, 1)
	assert.Equal(t, sentNotification{UserID: 7, Title: "Test submitted", Message: "You scored 100% in Go basics"}, notifier.sent[0])
}

func TestSubmitTest_Resubmission(t *testing.T) {
	repo := newFakeTestRepo(sampleTest(1))
	svc := NewTestService(repo, nil)
	ctx := context.Background()

	_, err := svc.SubmitTest(ctx, 1, 7, answersOf(1, 0, 2))
	require.NoError(t, err)
	_, err = svc.SubmitTest(ctx, 1, 8, answersOf(1, 0, 0))
	require.NoError(t, err)
	res, err := svc.SubmitTest(ctx, 1, 7, answersOf(0, 0, 0))
	require.NoError(t, err)
	assert.Equal(t, 33, res.Percent)

	board, err := svc.GetLeaderboard(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, []RankedEntry{
		{Rank: 1, UserID: 8, Score: 67},
		{Rank: 2, UserID: 7, Score: 33},
	}, board)
}

func TestSubmitTest_UnknownTest(t *testing.T) {
	svc := NewTestService(newFakeTestRepo(), &fakeNotifier{})

	_, err := svc.SubmitTest(context.Background(), 42, 1, answersOf(0))
	assert.ErrorIs(t, err, util.ErrTestNotFound)

	_, err = svc.StartTest(context.Background(), 42)
	assert.ErrorIs(t, err, util.ErrTestNotFound)

	_, err = svc.GetLeaderboard(context.Background(), 42)
	assert.ErrorIs(t, err, util.ErrTestNotFound)
}

func TestSubmitTest_ZeroQuestions(t *testing.T) {
	empty := &model.Test{Title: "empty"}
	empty.ID = 3
	svc := NewTestService(newFakeTestRepo(empty), nil)

	res, err := svc.SubmitTest(context.Background(), 3, 1, answersOf(0, 1))
	require.NoError(t, err)
	assert.Equal(t, 0, res.Percent)
}

func TestSubmitTest_RetriesOnVersionConflict(t *testing.T) {
	repo := newFakeTestRepo(sampleTest(1))
	repo.conflicts = 2
	// 另一个请求在本次读写之间写入了用户 99 的成绩
	repo.concurrent = func(t *model.Test) {
		t.Leaderboard = datatypes.JSONSlice[model.LeaderboardEntry](RankEntry(t.Leaderboard, 99, 80))
	}
	svc := NewTestService(repo, nil)

	res, err := svc.SubmitTest(context.Background(), 1, 7, answersOf(1, 0, 2))
	require.NoError(t, err)
	assert.Equal(t, 100, res.Percent)
	assert.Equal(t, 3, repo.saves)

	board, err := svc.GetLeaderboard(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, []RankedEntry{
		{Rank: 1, UserID: 7, Score: 100},
		{Rank: 2, UserID: 99, Score: 80},
	}, board)
}

func TestSubmitTest_PersistentConflict(t *testing.T) {
	repo := newFakeTestRepo(sampleTest(1))
	repo.conflicts = 100
	notifier := &fakeNotifier{}
	svc := NewTestService(repo, notifier)

	_, err := svc.SubmitTest(context.Background(), 1, 7, answersOf(1, 0, 2))
	assert.ErrorIs(t, err, util.ErrLeaderboardConflict)
	assert.Equal(t, maxLeaderboardAttempts, repo.saves)
	assert.Empty(t, notifier.sent)
}

func TestSubmitTest_NotificationFailureIgnored(t *testing.T) {
	repo := newFakeTestRepo(sampleTest(1))
	svc := NewTestService(repo, &fakeNotifier{err: errors.New("db down")})

	res, err := svc.SubmitTest(context.Background(), 1, 7, answersOf(1, 0, 2))
	require.NoError(t, err)
	assert.Equal(t, 100, res.Percent)
}

func TestStartTest_HidesAnswers(t *testing.T) {
	test := sampleTest(1)
	test.Leaderboard = datatypes.JSONSlice[model.LeaderboardEntry]{{UserID: 1, Score: 50}}
	svc := NewTestService(newFakeTestRepo(test), nil)

	paper, err := svc.StartTest(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, paper.Questions, 3)
	assert.Equal(t, PaperQuestion{Q: "q1", Options: []string{"a", "b", "c"}}, paper.Questions[0])

	list, err := svc.ListTests(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, 3, list[0].QuestionCount)
}

func TestCreateTest_ValidatesQuestions(t *testing.T) {
	svc := NewTestService(newFakeTestRepo(), nil)

	_, err := svc.CreateTest(context.Background(), CreateTestReq{
		Title:     "bad",
		Questions: []TestQuestionReq{{Q: "q", Options: []string{"a", "b"}, CorrectIndex: 2}},
	})
	assert.ErrorIs(t, err, util.ErrInvalidQuestion)

	created, err := svc.CreateTest(context.Background(), CreateTestReq{
		Title:     "ok",
		Questions: []TestQuestionReq{{Q: "q", Options: []string{"a", "b"}, CorrectIndex: 1}},
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Empty(t, created.Leaderboard)
}

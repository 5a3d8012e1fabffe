package service

import (
	"context"
	"testing"
	"time"

	"job_portal_backend/internal/model"
	"job_portal_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type dashboardFixture struct {
	svc         *DashboardService
	user        *model.User
	courses     *fakeCourseRepo
	jobs        *fakeJobRepo
	internships *fakeInternshipRepo
	mentors     *fakeMentorRepo
	challenges  *fakeChallengeRepo
	now         time.Time
}

func newDashboardFixture(t *testing.T) *dashboardFixture {
	t.Helper()
	f := &dashboardFixture{
		courses:     &fakeCourseRepo{},
		jobs:        &fakeJobRepo{applied: map[[2]uint]bool{}, bookmarked: map[[2]uint]bool{}},
		internships: &fakeInternshipRepo{},
		mentors:     &fakeMentorRepo{},
		challenges:  &fakeChallengeRepo{},
		now:         time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC),
	}

	users := &fakeUserRepo{}
	f.user = &model.User{Name: "Ann", Email: "ann@b.com"}
	require.NoError(t, users.Create(context.Background(), f.user))

	f.svc = &DashboardService{
		UserRepo:       users,
		CourseRepo:     f.courses,
		JobRepo:        f.jobs,
		InternshipRepo: f.internships,
		MentorRepo:     f.mentors,
		ChallengeRepo:  f.challenges,
		Now:            func() time.Time { return f.now },
	}
	return f
}

func (f *dashboardFixture) book(userID uint, at time.Time, status model.SessionStatus) {
	f.mentors.sessions = append(f.mentors.sessions, model.MentorSession{
		MentorID: 1, UserID: userID, Time: at, Status: status,
	})
}

func (f *dashboardFixture) submitAt(t *testing.T, userID, challengeID uint, at time.Time) {
	t.Helper()
	f.challenges.now = at
	require.NoError(t, f.challenges.UpsertSubmission(context.Background(), &model.ChallengeSubmission{
		ChallengeID: challengeID, UserID: userID, Content: "x",
	}))
}

func TestDashboardService_Counts(t *testing.T) {
	f := newDashboardFixture(t)
	ctx := context.Background()
	uid := f.user.ID

	require.NoError(t, f.courses.Enroll(ctx, uid, 1))
	require.NoError(t, f.courses.Enroll(ctx, uid, 2))
	require.NoError(t, f.courses.Enroll(ctx, uid, 2))
	require.NoError(t, f.courses.Enroll(ctx, 99, 1))

	_, err := f.jobs.Apply(ctx, uid, 1)
	require.NoError(t, err)
	_, err = f.jobs.Apply(ctx, 99, 1)
	require.NoError(t, err)

	require.NoError(t, f.internships.Apply(ctx, uid, 1))
	require.NoError(t, f.internships.CompleteTask(ctx, uid, 4))
	require.NoError(t, f.internships.CompleteTask(ctx, 99, 4))

	d, err := f.svc.GetUserDashboard(ctx, uid)
	require.NoError(t, err)
	assert.Equal(t, "Ann", d.Welcome)
	assert.Equal(t, "2 enrolled", d.CourseProgress)
	assert.Equal(t, int64(1), d.AppliedJobs)
	assert.Equal(t, int64(1), d.Internships)
	assert.Nil(t, d.NextMentorship)
	assert.Zero(t, d.WeeklyChallengesCompleted)

	a, err := f.svc.GetAnalytics(ctx, uid)
	require.NoError(t, err)
	assert.Equal(t, &Analytics{TotalCourses: 2, TotalApplied: 1, CompletedTasks: 1}, a)
}

func TestDashboardService_NextMentorship(t *testing.T) {
	f := newDashboardFixture(t)
	ctx := context.Background()
	uid := f.user.ID

	f.book(uid, f.now.Add(-24*time.Hour), model.SessionBooked)
	f.book(uid, f.now.Add(time.Hour), model.SessionCancelled)
	f.book(99, f.now.Add(time.Hour), model.SessionBooked)
	f.book(uid, f.now.Add(72*time.Hour), model.SessionBooked)
	f.book(uid, f.now.Add(48*time.Hour), model.SessionBooked)

	d, err := f.svc.GetUserDashboard(ctx, uid)
	require.NoError(t, err)
	require.NotNil(t, d.NextMentorship)
	assert.Equal(t, f.now.Add(48*time.Hour), d.NextMentorship.Time)

	// 恰好在当前时刻的会话也算
	f.book(uid, f.now, model.SessionBooked)
	d, err = f.svc.GetUserDashboard(ctx, uid)
	require.NoError(t, err)
	require.NotNil(t, d.NextMentorship)
	assert.Equal(t, f.now, d.NextMentorship.Time)
}

func TestDashboardService_WeeklyChallengeWindow(t *testing.T) {
	f := newDashboardFixture(t)
	ctx := context.Background()
	uid := f.user.ID

	f.challenges.challenges = []model.Challenge{
		{BaseModel: model.BaseModel{ID: 1}, Title: "w1", Type: model.ChallengeWeekly},
		{BaseModel: model.BaseModel{ID: 2}, Title: "w2", Type: model.ChallengeWeekly},
		{BaseModel: model.BaseModel{ID: 3}, Title: "d1", Type: model.ChallengeDaily},
	}

	f.submitAt(t, uid, 1, f.now.AddDate(0, 0, -8))
	f.submitAt(t, uid, 2, f.now.AddDate(0, 0, -6))
	f.submitAt(t, uid, 3, f.now.Add(-time.Hour))
	f.submitAt(t, 99, 2, f.now.Add(-time.Hour))

	d, err := f.svc.GetUserDashboard(ctx, uid)
	require.NoError(t, err)
	assert.Equal(t, int64(1), d.WeeklyChallengesCompleted)

	// 重新提交刷新时间，回到 7 天窗口内
	f.submitAt(t, uid, 1, f.now.Add(-time.Hour))
	d, err = f.svc.GetUserDashboard(ctx, uid)
	require.NoError(t, err)
	assert.Equal(t, int64(2), d.WeeklyChallengesCompleted)

	// w2 的提交恰好在 7 天前，仍计入；再晚一秒则移出窗口
	f.now = f.now.AddDate(0, 0, 1)
	d, err = f.svc.GetUserDashboard(ctx, uid)
	require.NoError(t, err)
	assert.Equal(t, int64(2), d.WeeklyChallengesCompleted)

	f.now = f.now.Add(time.Second)
	d, err = f.svc.GetUserDashboard(ctx, uid)
	require.NoError(t, err)
	assert.Equal(t, int64(1), d.WeeklyChallengesCompleted)
}

func TestDashboardService_UnknownUser(t *testing.T) {
	f := newDashboardFixture(t)

	_, err := f.svc.GetUserDashboard(context.Background(), 404)
	assert.ErrorIs(t, err, util.ErrUserNotFound)
}

package service

import (
	"context"
	"testing"
	"time"

	"job_portal_backend/internal/model"
	"job_portal_backend/internal/util"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func coursesN(n int) []model.Course {
	out := make([]model.Course, n)
	for i := range out {
		out[i].ID = uint(i + 1)
		out[i].Title = "course"
	}
	return out
}

func freeIndex(items []CourseListItem) int {
	idx := -1
	for i, it := range items {
		if it.IsFreeThisWeek {
			if idx != -1 {
				return -2
			}
			idx = i
		}
	}
	return idx
}

func TestWeeklyFreeIndex(t *testing.T) {
	// 2024-01-10 属于 ISO 第 2 周，2024-01-15 属于第 3 周
	week2 := time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)
	week3 := time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, 2, WeeklyFreeIndex(week2, 3))
	assert.Equal(t, 0, WeeklyFreeIndex(week3, 3))
	assert.Equal(t, 0, WeeklyFreeIndex(week2, 1))
	assert.Equal(t, -1, WeeklyFreeIndex(week2, 0))
}

func TestWeeklyFreeIndex_StableWithinWeek(t *testing.T) {
	monday := time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC)
	for d := 0; d < 7; d++ {
		assert.Equal(t, WeeklyFreeIndex(monday, 5), WeeklyFreeIndex(monday.AddDate(0, 0, d), 5))
	}
	assert.NotEqual(t, WeeklyFreeIndex(monday, 5), WeeklyFreeIndex(monday.AddDate(0, 0, 7), 5))
}

func TestAnnotateWeeklyFree(t *testing.T) {
	now := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)

	items := AnnotateWeeklyFree(coursesN(3), now)
	require.Len(t, items, 3)
	assert.Equal(t, 2, freeIndex(items))
	for i, it := range items {
		assert.Equal(t, uint(i+1), it.ID)
	}

	assert.Empty(t, AnnotateWeeklyFree(nil, now))
}

func TestListCourses_UsesRedisCache(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer rdb.Close()

	repo := &fakeCourseRepo{courses: coursesN(3)}
	svc := NewCourseService(repo, rdb, time.Minute)
	svc.Now = func() time.Time { return time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC) }
	ctx := context.Background()

	first, err := svc.ListCourses(ctx)
	require.NoError(t, err)
	second, err := svc.ListCourses(ctx)
	require.NoError(t, err)

	assert.Equal(t, 1, repo.listCalls)
	assert.True(t, mr.Exists(courseListCacheKey))
	require.Len(t, second, 3)
	assert.Equal(t, freeIndex(first), freeIndex(second))

	// 缓存不固定周次，换周后重新计算
	svc.Now = func() time.Time { return time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC) }
	third, err := svc.ListCourses(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, freeIndex(third))
	assert.Equal(t, 1, repo.listCalls)
}

func TestCreateCourse_InvalidatesCache(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer rdb.Close()

	repo := &fakeCourseRepo{courses: coursesN(2)}
	svc := NewCourseService(repo, rdb, time.Minute)
	ctx := context.Background()

	_, err = svc.ListCourses(ctx)
	require.NoError(t, err)

	_, err = svc.CreateCourse(ctx, CreateCourseReq{Title: "new", Content: []string{"intro"}})
	require.NoError(t, err)
	assert.False(t, mr.Exists(courseListCacheKey))

	items, err := svc.ListCourses(ctx)
	require.NoError(t, err)
	assert.Len(t, items, 3)
	assert.Equal(t, 2, repo.listCalls)
}

func TestListCourses_WithoutRedis(t *testing.T) {
	repo := &fakeCourseRepo{courses: coursesN(4)}
	svc := NewCourseService(repo, nil, time.Minute)

	items, err := svc.ListCourses(context.Background())
	require.NoError(t, err)
	assert.Len(t, items, 4)
	assert.GreaterOrEqual(t, freeIndex(items), 0)
}

func TestEnroll(t *testing.T) {
	repo := &fakeCourseRepo{courses: coursesN(2)}
	svc := NewCourseService(repo, nil, time.Minute)
	ctx := context.Background()

	assert.ErrorIs(t, svc.Enroll(ctx, 1, 99), util.ErrCourseNotFound)

	require.NoError(t, svc.Enroll(ctx, 1, 2))
	require.NoError(t, svc.Enroll(ctx, 1, 2))

	enrolled, err := svc.EnrolledCourses(ctx, 1)
	require.NoError(t, err)
	require.Len(t, enrolled, 1)
	assert.Equal(t, uint(2), enrolled[0].ID)
}

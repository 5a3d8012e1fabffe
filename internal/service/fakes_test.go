package service

import (
	"context"
	"sync"

	"job_portal_backend/internal/model"

	"gorm.io/gorm"
)

type sentNotification struct {
	UserID  uint
	Title   string
	Message string
}

type fakeNotifier struct {
	mu   sync.Mutex
	sent []sentNotification
	err  error
}

func (f *fakeNotifier) Notify(ctx context.Context, userID uint, title, message string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, sentNotification{UserID: userID, Title: title, Message: message})
	return f.err
}

// fakeTestRepo 在内存中模拟 tests 表的 version 条件写入
type fakeTestRepo struct {
	mu    sync.Mutex
	tests map[uint]*model.Test
	saves int

	// conflicts 为剩余的强制冲突次数，每次冲突前调用 concurrent 模拟其他请求的写入
	conflicts  int
	concurrent func(t *model.Test)
}

func newFakeTestRepo(tests ...*model.Test) *fakeTestRepo {
	r := &fakeTestRepo{tests: map[uint]*model.Test{}}
	for _, t := range tests {
		r.tests[t.ID] = t
	}
	return r
}

func (r *fakeTestRepo) List(ctx context.Context) ([]model.Test, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []model.Test
	for _, t := range r.tests {
		out = append(out, *t)
	}
	return out, nil
}

func (r *fakeTestRepo) FindByID(ctx context.Context, id uint) (*model.Test, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.tests[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *t
	cp.Leaderboard = append(cp.Leaderboard[:0:0], t.Leaderboard...)
	return &cp, nil
}

func (r *fakeTestRepo) Create(ctx context.Context, test *model.Test) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	test.ID = uint(len(r.tests) + 1)
	r.tests[test.ID] = test
	return nil
}

func (r *fakeTestRepo) SaveLeaderboard(ctx context.Context, id uint, version int, board []model.LeaderboardEntry) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.saves++

	t, ok := r.tests[id]
	if !ok {
		return false, nil
	}
	if r.conflicts > 0 {
		r.conflicts--
		if r.concurrent != nil {
			r.concurrent(t)
		}
		t.Version++
	}
	if t.Version != version {
		return false, nil
	}
	t.Leaderboard = append(t.Leaderboard[:0:0], board...)
	t.Version++
	return true, nil
}

type fakeNotificationRepo struct {
	mu    sync.Mutex
	items []model.Notification
}

func (r *fakeNotificationRepo) Create(ctx context.Context, n *model.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	n.ID = uint(len(r.items) + 1)
	r.items = append(r.items, *n)
	return nil
}

func (r *fakeNotificationRepo) ListByUser(ctx context.Context, userID uint) ([]model.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []model.Notification
	for _, n := range r.items {
		if n.UserID == userID {
			out = append(out, n)
		}
	}
	return out, nil
}

func (r *fakeNotificationRepo) MarkRead(ctx context.Context, userID, id uint) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].ID == id && r.items[i].UserID == userID {
			r.items[i].IsRead = true
			return true, nil
		}
	}
	return false, nil
}

type fakeUserRepo struct {
	mu    sync.Mutex
	users []*model.User
}

func (r *fakeUserRepo) Create(ctx context.Context, user *model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == user.Email {
			return gorm.ErrDuplicatedKey
		}
	}
	user.ID = uint(len(r.users) + 1)
	r.users = append(r.users, user)
	return nil
}

func (r *fakeUserRepo) FindByID(ctx context.Context, id uint) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

type fakeCourseRepo struct {
	courses   []model.Course
	listCalls int
	enrolled  map[uint][]uint
}

func (r *fakeCourseRepo) List(ctx context.Context) ([]model.Course, error) {
	r.listCalls++
	return append([]model.Course(nil), r.courses...), nil
}

func (r *fakeCourseRepo) FindByID(ctx context.Context, id uint) (*model.Course, error) {
	for i := range r.courses {
		if r.courses[i].ID == id {
			return &r.courses[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeCourseRepo) Create(ctx context.Context, course *model.Course) error {
	course.ID = uint(len(r.courses) + 1)
	r.courses = append(r.courses, *course)
	return nil
}

func (r *fakeCourseRepo) Enroll(ctx context.Context, userID, courseID uint) error {
	if r.enrolled == nil {
		r.enrolled = map[uint][]uint{}
	}
	for _, id := range r.enrolled[userID] {
		if id == courseID {
			return nil
		}
	}
	r.enrolled[userID] = append(r.enrolled[userID], courseID)
	return nil
}

func (r *fakeCourseRepo) CountEnrolled(ctx context.Context, userID uint) (int64, error) {
	return int64(len(r.enrolled[userID])), nil
}

func (r *fakeCourseRepo) ListEnrolled(ctx context.Context, userID uint) ([]model.Course, error) {
	var out []model.Course
	for _, id := range r.enrolled[userID] {
		c, err := r.FindByID(ctx, id)
		if err != nil {
			return nil, err
		}
		out = append(out, *c)
	}
	return out, nil
}

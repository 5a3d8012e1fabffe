package service

import (
	"context"
	"testing"

	"job_portal_backend/internal/model"
	"job_portal_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeInternshipRepo struct {
	items       []*model.Internship
	applied     map[[2]uint]bool
	completions [][2]uint
	nextTaskID  uint
}

func (r *fakeInternshipRepo) List(ctx context.Context) ([]model.Internship, error) {
	var out []model.Internship
	for _, it := range r.items {
		out = append(out, *it)
	}
	return out, nil
}

func (r *fakeInternshipRepo) FindByID(ctx context.Context, id uint) (*model.Internship, error) {
	for _, it := range r.items {
		if it.ID == id {
			return it, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeInternshipRepo) Create(ctx context.Context, item *model.Internship) error {
	item.ID = uint(len(r.items) + 1)
	for i := range item.Tasks {
		r.nextTaskID++
		item.Tasks[i].ID = r.nextTaskID
		item.Tasks[i].InternshipID = item.ID
	}
	r.items = append(r.items, item)
	return nil
}

func (r *fakeInternshipRepo) Apply(ctx context.Context, userID, internshipID uint) error {
	if r.applied == nil {
		r.applied = map[[2]uint]bool{}
	}
	r.applied[[2]uint{userID, internshipID}] = true
	return nil
}

func (r *fakeInternshipRepo) CompleteTask(ctx context.Context, userID, taskID uint) error {
	for _, c := range r.completions {
		if c == [2]uint{userID, taskID} {
			return nil
		}
	}
	r.completions = append(r.completions, [2]uint{userID, taskID})
	return nil
}

func (r *fakeInternshipRepo) CountApplications(ctx context.Context, userID uint) (int64, error) {
	var n int64
	for key := range r.applied {
		if key[0] == userID {
			n++
		}
	}
	return n, nil
}

func (r *fakeInternshipRepo) CountCompletedTasks(ctx context.Context, userID uint) (int64, error) {
	var n int64
	for _, c := range r.completions {
		if c[0] == userID {
			n++
		}
	}
	return n, nil
}

func TestInternshipService_CreateApplyComplete(t *testing.T) {
	repo := &fakeInternshipRepo{}
	notifier := &fakeNotifier{}
	svc := NewInternshipService(repo, notifier)
	ctx := context.Background()

	a, err := svc.CreateInternship(ctx, CreateInternshipReq{
		Title: "Backend intern",
		Tasks: []InternshipTaskReq{{Title: "setup"}, {Title: "first PR"}},
	})
	require.NoError(t, err)
	require.Len(t, a.Tasks, 2)
	assert.Equal(t, 0, a.Tasks[0].Order)
	assert.Equal(t, 1, a.Tasks[1].Order)

	b, err := svc.CreateInternship(ctx, CreateInternshipReq{Title: "Other", Tasks: []InternshipTaskReq{{Title: "x"}}})
	require.NoError(t, err)

	require.NoError(t, svc.Apply(ctx, 9, a.ID))
	assert.True(t, repo.applied[[2]uint{9, a.ID}])
	require.Len(t, notifier.sent, 1)
	assert.Equal(t, "Internship applied", notifier.sent[0].Title)

	require.NoError(t, svc.CompleteTask(ctx, 9, a.ID, a.Tasks[1].ID))
	assert.Equal(t, [][2]uint{{9, a.Tasks[1].ID}}, repo.completions)

	// 任务属于其他实习
	assert.ErrorIs(t, svc.CompleteTask(ctx, 9, a.ID, b.Tasks[0].ID), util.ErrTaskNotFound)
	assert.ErrorIs(t, svc.CompleteTask(ctx, 9, 77, 1), util.ErrInternshipNotFound)
	assert.ErrorIs(t, svc.Apply(ctx, 9, 77), util.ErrInternshipNotFound)
}

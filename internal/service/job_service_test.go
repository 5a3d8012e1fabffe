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

type fakeJobRepo struct {
	jobs       []model.Job
	applied    map[[2]uint]bool
	bookmarked map[[2]uint]bool
}

func (r *fakeJobRepo) List(ctx context.Context) ([]model.Job, error) { return r.jobs, nil }

func (r *fakeJobRepo) FindByID(ctx context.Context, id uint) (*model.Job, error) {
	for i := range r.jobs {
		if r.jobs[i].ID == id {
			return &r.jobs[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeJobRepo) Create(ctx context.Context, job *model.Job) error {
	job.ID = uint(len(r.jobs) + 1)
	r.jobs = append(r.jobs, *job)
	return nil
}

func (r *fakeJobRepo) Apply(ctx context.Context, userID, jobID uint) (bool, error) {
	key := [2]uint{userID, jobID}
	if r.applied[key] {
		return false, nil
	}
	r.applied[key] = true
	return true, nil
}

func (r *fakeJobRepo) CountApplied(ctx context.Context, userID uint) (int64, error) {
	var n int64
	for key := range r.applied {
		if key[0] == userID {
			n++
		}
	}
	return n, nil
}

func (r *fakeJobRepo) Bookmark(ctx context.Context, userID, jobID uint) error {
	r.bookmarked[[2]uint{userID, jobID}] = true
	return nil
}

func TestJobService_Apply(t *testing.T) {
	repo := &fakeJobRepo{applied: map[[2]uint]bool{}, bookmarked: map[[2]uint]bool{}}
	notifier := &fakeNotifier{}
	svc := NewJobService(repo, notifier)
	ctx := context.Background()

	job, err := svc.CreateJob(ctx, CreateJobReq{Title: "Go Developer", CompanyName: "Acme"})
	require.NoError(t, err)

	require.NoError(t, svc.Apply(ctx, 1, job.ID))
	assert.ErrorIs(t, svc.Apply(ctx, 1, job.ID), util.ErrAlreadyApplied)
	assert.ErrorIs(t, svc.Apply(ctx, 1, 999), util.ErrJobNotFound)

	require.Len(t, notifier.sent, 1)
	assert.Equal(t, sentNotification{UserID: 1, Title: "Application Submitted", Message: "Applied to Go Developer"}, notifier.sent[0])
}

func TestJobService_Bookmark(t *testing.T) {
	repo := &fakeJobRepo{applied: map[[2]uint]bool{}, bookmarked: map[[2]uint]bool{}}
	svc := NewJobService(repo, nil)
	ctx := context.Background()

	job, err := svc.CreateJob(ctx, CreateJobReq{Title: "SRE"})
	require.NoError(t, err)

	require.NoError(t, svc.Bookmark(ctx, 2, job.ID))
	assert.True(t, repo.bookmarked[[2]uint{2, job.ID}])
	assert.False(t, repo.applied[[2]uint{2, job.ID}])

	assert.ErrorIs(t, svc.Bookmark(ctx, 2, 999), util.ErrJobNotFound)
}

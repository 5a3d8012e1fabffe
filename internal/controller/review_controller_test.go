package controller

import (
	"context"
	"net/http"
	"testing"

	"job_portal_backend/internal/middleware"
	"job_portal_backend/internal/model"
	"job_portal_backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memReviewRepo struct {
	reviews []model.Review
}

func (r *memReviewRepo) Create(ctx context.Context, review *model.Review) error {
	review.ID = uint(len(r.reviews) + 1)
	r.reviews = append(r.reviews, *review)
	return nil
}

func (r *memReviewRepo) List(ctx context.Context, t model.ReviewType, relatedID uint) ([]model.Review, error) {
	out := []model.Review{}
	for _, rv := range r.reviews {
		if t != "" && rv.Type != t {
			continue
		}
		if relatedID > 0 && rv.RelatedID != relatedID {
			continue
		}
		out = append(out, rv)
	}
	return out, nil
}

func (r *memReviewRepo) TargetExists(ctx context.Context, t model.ReviewType, id uint) (bool, error) {
	return id == 1 || id == 2, nil
}

func setupReviewRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	repo := &memReviewRepo{reviews: []model.Review{
		{Type: model.ReviewCourse, RelatedID: 1, Rating: 5, UserID: 3},
		{Type: model.ReviewCourse, RelatedID: 2, Rating: 2, UserID: 3},
	}}
	ctl := NewReviewController(service.NewReviewService(repo))

	r := gin.New()
	user := r.Group("/api/user", middleware.AuthMiddleware(secret), middleware.RoleMiddleware(model.RoleUser))
	user.GET("/reviews", ctl.List)
	user.POST("/reviews", ctl.Create)
	return r
}

func TestReviewController_ListFiltersByRelatedID(t *testing.T) {
	r := setupReviewRouter()
	token := userToken(t, 3)

	w := call(r, http.MethodGet, "/api/user/reviews?type=course&relatedId=2", token, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"rating":2`)
	assert.NotContains(t, w.Body.String(), `"rating":5`)

	w = call(r, http.MethodGet, "/api/user/reviews", token, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"rating":5`)
}

func TestReviewController_ListRejectsBadRelatedID(t *testing.T) {
	r := setupReviewRouter()
	token := userToken(t, 3)

	for _, q := range []string{"abc", "-1", "0"} {
		w := call(r, http.MethodGet, "/api/user/reviews?relatedId="+q, token, "")
		assert.Equal(t, http.StatusBadRequest, w.Code, "relatedId=%s", q)
		assert.Contains(t, w.Body.String(), "invalid relatedId")
	}
}

func TestReviewController_CreateMissingTarget(t *testing.T) {
	r := setupReviewRouter()

	w := call(r, http.MethodPost, "/api/user/reviews", userToken(t, 3), `{"type":"mentor","relatedId":99,"rating":4}`)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = call(r, http.MethodPost, "/api/user/reviews", userToken(t, 3), `{"type":"mentor","relatedId":1,"rating":4}`)
	assert.Equal(t, http.StatusCreated, w.Code)
}

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"job_portal_backend/internal/model"
	"job_portal_backend/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "a-secret-that-is-long-enough-for-tests"

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/user/ping",
		AuthMiddleware(testSecret),
		RoleMiddleware(model.RoleUser),
		func(c *gin.Context) {
			claims := util.GetUserFromContext(c)
			c.JSON(http.StatusOK, gin.H{"id": claims.UserID})
		},
	)
	return r
}

func tokenFor(t *testing.T, id uint, role model.UserRole, secret string, ttl time.Duration) string {
	t.Helper()
	u := &model.User{Role: role, Email: "a@b.c"}
	u.ID = id
	token, err := util.GenerateJWT(u, secret, ttl)
	require.NoError(t, err)
	return token
}

func doRequest(r *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/user/ping", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware_MissingToken(t *testing.T) {
	w := doRequest(newRouter(), "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Unauthorized")
}

func TestAuthMiddleware_BadSignature(t *testing.T) {
	token := tokenFor(t, 1, model.RoleUser, "some-other-secret-value-entirely", time.Hour)
	w := doRequest(newRouter(), token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_ExpiredToken(t *testing.T) {
	token := tokenFor(t, 1, model.RoleUser, testSecret, -time.Minute)
	w := doRequest(newRouter(), token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRoleMiddleware_WrongRole(t *testing.T) {
	for _, role := range []model.UserRole{model.RoleEmployer, model.RoleMentor, model.RoleAdmin} {
		token := tokenFor(t, 7, role, testSecret, time.Hour)
		w := doRequest(newRouter(), token)
		assert.Equal(t, http.StatusForbidden, w.Code, "role %s", role)
	}
}

func TestRoleMiddleware_UserAllowed(t *testing.T) {
	token := tokenFor(t, 42, model.RoleUser, testSecret, time.Hour)
	w := doRequest(newRouter(), token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":42}`, w.Body.String())
}

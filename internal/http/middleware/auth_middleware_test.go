package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"repairdesk/internal/domain/entity"
	"repairdesk/internal/domain/policy"
	"repairdesk/internal/utils"
)

type stubUserRepo struct {
	users map[int64]*entity.User
	err   error
}

func (s *stubUserRepo) FindActiveByID(id int64) (*entity.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.users[id], nil
}

func activeUser(id int64, roleName string) *entity.User {
	return &entity.User{
		UserID:    id,
		UUID:      "aB3dE5fG7h",
		Email:     "tech@example.test",
		IsActive:  true,
		CompanyID: 1,
		Role:      &entity.Role{RoleID: 1, Name: roleName, IsActive: true},
	}
}

func callMiddleware(t *testing.T, cfg *AuthMiddlewareConfig, authHeader string) (*httptest.ResponseRecorder, *entity.Actor) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var actor *entity.Actor
	handler := NewAuthMiddleware(cfg)(func(c echo.Context) error {
		actor, _ = c.Get("actor").(*entity.Actor)
		return c.NoContent(http.StatusOK)
	})
	require.NoError(t, handler(c))
	return rec, actor
}

func TestAuthMiddlewareResolvesActor(t *testing.T) {
	t.Setenv("JWT_SEED", "middleware-test-seed")
	t.Setenv("USR_ADMIN", "admin")

	user := activeUser(7, "user")
	token, err := utils.IssueToken(user)
	require.NoError(t, err)

	cfg := &AuthMiddlewareConfig{
		UserRepo:   &stubUserRepo{users: map[int64]*entity.User{7: user}},
		RolePolicy: policy.NewRolePolicy(),
	}

	rec, actor := callMiddleware(t, cfg, "Bearer "+token)
	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, actor)
	assert.Equal(t, int64(7), actor.User.UserID)
	assert.False(t, actor.Elevated)
}

func TestAuthMiddlewareElevatesAdminRoles(t *testing.T) {
	t.Setenv("JWT_SEED", "middleware-test-seed")
	t.Setenv("USR_ADMIN", "admin,root")

	user := activeUser(8, "Admin")
	token, err := utils.IssueToken(user)
	require.NoError(t, err)

	cfg := &AuthMiddlewareConfig{
		UserRepo:   &stubUserRepo{users: map[int64]*entity.User{8: user}},
		RolePolicy: policy.NewRolePolicy(),
	}

	rec, actor := callMiddleware(t, cfg, "Bearer "+token)
	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, actor)
	assert.True(t, actor.Elevated)
}

func TestAuthMiddlewareRejectsBadToken(t *testing.T) {
	t.Setenv("JWT_SEED", "middleware-test-seed")

	cfg := &AuthMiddlewareConfig{
		UserRepo:   &stubUserRepo{},
		RolePolicy: policy.NewRolePolicy(),
	}

	rec, actor := callMiddleware(t, cfg, "Bearer not-a-token")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Nil(t, actor)

	rec, _ = callMiddleware(t, cfg, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddlewareRejectsDeactivatedUser(t *testing.T) {
	t.Setenv("JWT_SEED", "middleware-test-seed")

	user := activeUser(9, "user")
	token, err := utils.IssueToken(user)
	require.NoError(t, err)

	// The repository only returns active rows; a deactivated user is nil.
	cfg := &AuthMiddlewareConfig{
		UserRepo:   &stubUserRepo{users: map[int64]*entity.User{}},
		RolePolicy: policy.NewRolePolicy(),
	}

	rec, actor := callMiddleware(t, cfg, "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Nil(t, actor)
}

func TestAuthMiddlewareRejectsInactiveRole(t *testing.T) {
	t.Setenv("JWT_SEED", "middleware-test-seed")

	user := activeUser(10, "user")
	user.Role.IsActive = false
	token, err := utils.IssueToken(user)
	require.NoError(t, err)

	cfg := &AuthMiddlewareConfig{
		UserRepo:   &stubUserRepo{users: map[int64]*entity.User{10: user}},
		RolePolicy: policy.NewRolePolicy(),
	}

	rec, actor := callMiddleware(t, cfg, "Bearer "+token)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Nil(t, actor)
}

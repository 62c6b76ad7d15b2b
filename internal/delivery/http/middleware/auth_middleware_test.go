package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"devnet/config"
	"devnet/internal/domain/entity"
	"devnet/internal/infra/auth"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAuthMiddleware(t *testing.T, ttl time.Duration) (*AuthMiddleware, func(*entity.User) string) {
	cfg := &config.Config{Auth: &config.AuthConfig{TokenTTL: ttl}}
	cfg.SecretKey.Access = "test_access_secret_key_very_long_for_testing"

	tokenService, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	sign := func(user *entity.User) string {
		token, err := tokenService.GenerateToken(user)
		require.NoError(t, err)

		return token
	}

	return NewAuthMiddleware(tokenService), sign
}

func invoke(m *AuthMiddleware, authorization string) (*httptest.ResponseRecorder, bool) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/users/current", nil)
	if authorization != "" {
		req.Header.Set(echo.HeaderAuthorization, authorization)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	reached := false
	handler := m.Authenticate(func(c echo.Context) error {
		reached = true

		return c.NoContent(http.StatusOK)
	})

	_ = handler(c)

	return rec, reached
}

func TestAuthenticate_ValidToken(t *testing.T) {
	m, sign := newTestAuthMiddleware(t, time.Hour)

	user := &entity.User{ID: uuid.New(), Name: "A"}
	rec, reached := invoke(m, "Bearer "+sign(user))

	assert.True(t, reached)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthenticate_SetsUserID(t *testing.T) {
	m, sign := newTestAuthMiddleware(t, time.Hour)
	user := &entity.User{ID: uuid.New(), Name: "A"}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/users/current", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+sign(user))
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := m.Authenticate(func(c echo.Context) error {
		got, ok := c.Get("userID").(uuid.UUID)
		assert.True(t, ok)
		assert.Equal(t, user.ID, got)

		return c.NoContent(http.StatusOK)
	})(c)
	assert.NoError(t, err)
}

func TestAuthenticate_MissingHeader(t *testing.T) {
	m, _ := newTestAuthMiddleware(t, time.Hour)

	rec, reached := invoke(m, "")
	assert.False(t, reached)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticate_NotBearer(t *testing.T) {
	m, sign := newTestAuthMiddleware(t, time.Hour)
	user := &entity.User{ID: uuid.New()}

	rec, reached := invoke(m, "Token "+sign(user))
	assert.False(t, reached)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticate_ExpiredToken(t *testing.T) {
	m, sign := newTestAuthMiddleware(t, time.Nanosecond)
	user := &entity.User{ID: uuid.New()}

	token := sign(user)
	time.Sleep(10 * time.Millisecond)

	rec, reached := invoke(m, "Bearer "+token)
	assert.False(t, reached)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticate_GarbageToken(t *testing.T) {
	m, _ := newTestAuthMiddleware(t, time.Hour)

	rec, reached := invoke(m, "Bearer not-a-token")
	assert.False(t, reached)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

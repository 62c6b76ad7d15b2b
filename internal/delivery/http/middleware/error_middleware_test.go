package middleware

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	domainerrors "devnet/internal/domain/errors"
)

func handleError(t *testing.T, err error) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/users/register", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewErrorMiddleware(slog.Default()).HandleHTTPError(err, c)

	return rec
}

func TestHandleHTTPError_FieldError(t *testing.T) {
	rec := handleError(t, domainerrors.ErrEmailExists)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"email":"Email already exist"}`, rec.Body.String())
}

func TestHandleHTTPError_WrappedFieldError(t *testing.T) {
	// Workflow errors keep their payload through wrapping.
	rec := handleError(t, pkgerrors.Wrap(domainerrors.ErrUserNotFound, "login failed"))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"email":"User not found"}`, rec.Body.String())
}

func TestHandleHTTPError_StorageError(t *testing.T) {
	err := domainerrors.NewStorageError(pkgerrors.New("connection reset"), "failed to create user")

	rec := handleError(t, pkgerrors.Wrap(err, "failed to create user during registration"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Storage failure: failed to create user"}`, rec.Body.String())
}

func TestHandleHTTPError_EchoHTTPError(t *testing.T) {
	rec := handleError(t, echo.NewHTTPError(http.StatusNotFound, "Not Found"))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Not Found"}`, rec.Body.String())
}

func TestHandleHTTPError_UnknownError(t *testing.T) {
	rec := handleError(t, pkgerrors.New("boom"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Internal server error"}`, rec.Body.String())
}

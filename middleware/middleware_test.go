package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/prajwal000/Egharbari-sub001/apperr"
	"github.com/prajwal000/Egharbari-sub001/logger"
	"github.com/prajwal000/Egharbari-sub001/models"
	"github.com/prajwal000/Egharbari-sub001/utils"
)

func issue(t *testing.T, tokens *utils.TokenManager, role models.Role, active bool) string {
	t.Helper()
	token, err := tokens.Generate(&models.User{
		ID:       primitive.NewObjectID(),
		Email:    "asha@example.com",
		Role:     role,
		IsActive: active,
	})
	require.NoError(t, err)
	return token
}

func run(mw echo.MiddlewareFunc, req *http.Request) (*models.Session, error) {
	e := echo.New()
	c := e.NewContext(req, httptest.NewRecorder())
	var seen *models.Session
	err := mw(func(c echo.Context) error {
		seen = SessionFrom(c)
		return nil
	})(c)
	return seen, err
}

func TestRequireAuth(t *testing.T) {
	tokens := utils.NewTokenManager("test-secret", time.Hour)
	auth := NewAuth(tokens)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	_, err := run(auth.RequireAuth(), req)
	assert.Equal(t, apperr.KindUnauthenticated, apperr.KindOf(err))

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+issue(t, tokens, models.RoleUser, true))
	session, err := run(auth.RequireAuth(), req)
	require.NoError(t, err)
	require.NotNil(t, session)
	assert.Equal(t, "asha@example.com", session.Email)

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: TokenCookie, Value: issue(t, tokens, models.RoleUser, true)})
	session, err = run(auth.RequireAuth(), req)
	require.NoError(t, err)
	assert.NotNil(t, session)

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+issue(t, tokens, models.RoleUser, false))
	_, err = run(auth.RequireAuth(), req)
	assert.Equal(t, apperr.KindUnauthenticated, apperr.KindOf(err))

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+issue(t, utils.NewTokenManager("other", time.Hour), models.RoleUser, true))
	_, err = run(auth.RequireAuth(), req)
	assert.Equal(t, apperr.KindUnauthenticated, apperr.KindOf(err))
}

func TestOptionalAuthContinuesAnonymously(t *testing.T) {
	auth := NewAuth(utils.NewTokenManager("test-secret", time.Hour))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer garbage")
	session, err := run(auth.OptionalAuth(), req)
	require.NoError(t, err)
	assert.Nil(t, session)
}

func TestAdminOnly(t *testing.T) {
	tokens := utils.NewTokenManager("test-secret", time.Hour)
	auth := NewAuth(tokens)
	chain := func(next echo.HandlerFunc) echo.HandlerFunc {
		return auth.RequireAuth()(AdminOnly()(next))
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+issue(t, tokens, models.RoleUser, true))
	_, err := run(chain, req)
	assert.Equal(t, apperr.KindForbidden, apperr.KindOf(err))

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+issue(t, tokens, models.RoleAdmin, true))
	session, err := run(chain, req)
	require.NoError(t, err)
	assert.True(t, session.IsAdmin())
}

func TestRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	e := echo.New()
	e.Use(RequestLogger(base))
	e.GET("/ping", func(c echo.Context) error {
		assert.Same(t, LoggerFrom(c), logger.FromContext(c.Request().Context()))
		return c.String(http.StatusTeapot, "pong")
	})

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(echo.HeaderXRequestID, "req-123")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Equal(t, "req-123", rec.Header().Get(echo.HeaderXRequestID))
	assert.Contains(t, buf.String(), `"request_id":"req-123"`)
	assert.Contains(t, buf.String(), `"status_code":418`)

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))
}

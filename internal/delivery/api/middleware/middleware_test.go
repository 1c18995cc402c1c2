package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"jobtrack/config"
	"jobtrack/internal/delivery/api/response"
	deliverycontext "jobtrack/internal/delivery/context"
	"jobtrack/internal/domain/constants"
	"jobtrack/internal/domain/entity"
	domainerrors "jobtrack/internal/domain/errors"
	"jobtrack/internal/errors"
	mockSvc "jobtrack/internal/mocks/service"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newConfig(env string) *config.Config {
	cfg := &config.Config{}
	cfg.Env.Env = env

	return cfg
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) response.ErrorEnvelope {
	t.Helper()

	var body response.ErrorEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func TestErrorMiddleware_AppError(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	deliverycontext.BindRequest(c, "req-1", nil)

	NewErrorMiddleware(newDiscardLogger(), newConfig("development")).
		HandleHTTPError(errors.WithStack(domainerrors.ErrFieldNotAllowed.WithDetails("not updatable: userId")), c)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	body := decodeError(t, rec)
	assert.False(t, body.Success)
	assert.Nil(t, body.Data)
	assert.Equal(t, 400, body.StatusCode)
	assert.Equal(t, "FIELD_NOT_ALLOWED", body.ErrorCode)
	assert.Equal(t, "Invalid updates", body.Message)
	assert.Equal(t, "not updatable: userId", body.Details)
	assert.Equal(t, "req-1", body.RequestID)
	assert.NotEmpty(t, body.Stack)
}

func TestErrorMiddleware_HidesStackInProduction(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	NewErrorMiddleware(newDiscardLogger(), newConfig(config.EnvProduction)).
		HandleHTTPError(domainerrors.ErrApplicationCreateFailed.Wrap(errors.New("socket closed")), c)

	assert.Equal(t, http.StatusNotImplemented, rec.Code)

	body := decodeError(t, rec)
	assert.Empty(t, body.Stack)
	assert.Empty(t, body.Details)
	assert.NotContains(t, rec.Body.String(), "socket closed")
}

func TestErrorMiddleware_EchoHTTPError(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	NewErrorMiddleware(newDiscardLogger(), newConfig("development")).HandleHTTPError(echo.ErrNotFound, c)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "HTTP_ERROR", decodeError(t, rec).ErrorCode)
}

func TestErrorMiddleware_UnknownError(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	NewErrorMiddleware(newDiscardLogger(), newConfig(config.EnvProduction)).HandleHTTPError(errors.New("nil map"), c)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	body := decodeError(t, rec)
	assert.Equal(t, "INTERNAL_ERROR", body.ErrorCode)
	assert.NotContains(t, rec.Body.String(), "nil map")
}

func TestAuthMiddleware(t *testing.T) {
	identity := &entity.Identity{UserID: "u1", Email: "a@b.co"}

	tests := []struct {
		name      string
		prepare   func(req *http.Request)
		mockSetup func(m *mockSvc.MockTokenService)
		want      *domainerrors.BaseError
	}{
		{
			name:    "cookie",
			prepare: func(req *http.Request) { req.AddCookie(&http.Cookie{Name: constants.CookieAccessToken, Value: "tok"}) },
			mockSetup: func(m *mockSvc.MockTokenService) {
				m.EXPECT().VerifyAccessToken("tok").Return(identity, nil)
			},
		},
		{
			name:    "bearer header",
			prepare: func(req *http.Request) { req.Header.Set(echo.HeaderAuthorization, "Bearer tok") },
			mockSetup: func(m *mockSvc.MockTokenService) {
				m.EXPECT().VerifyAccessToken("tok").Return(identity, nil)
			},
		},
		{
			name:    "missing",
			prepare: func(*http.Request) {},
			want:    domainerrors.ErrUnauthorized,
		},
		{
			name:    "wrong scheme",
			prepare: func(req *http.Request) { req.Header.Set(echo.HeaderAuthorization, "Basic abc") },
			want:    domainerrors.ErrUnauthorized,
		},
		{
			name:    "expired",
			prepare: func(req *http.Request) { req.Header.Set(echo.HeaderAuthorization, "Bearer old") },
			mockSetup: func(m *mockSvc.MockTokenService) {
				m.EXPECT().VerifyAccessToken("old").Return(nil, errors.New("token is expired"))
			},
			want: domainerrors.ErrInvalidAccessToken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokenSvc := mockSvc.NewMockTokenService(t)
			if tt.mockSetup != nil {
				tt.mockSetup(tokenSvc)
			}

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			tt.prepare(req)
			c := echo.New().NewContext(req, httptest.NewRecorder())

			called := false
			err := NewAuthMiddleware(tokenSvc).Authenticate(func(c echo.Context) error {
				called = true
				got, ok := deliverycontext.Caller(c)
				assert.True(t, ok)
				assert.Equal(t, "u1", got.UserID)

				return nil
			})(c)

			if tt.want == nil {
				require.NoError(t, err)
				assert.True(t, called)

				return
			}
			assert.False(t, called)
			assert.True(t, errors.Is(err, tt.want))
		})
	}
}

func TestOwnFilesOnly(t *testing.T) {
	tests := []struct {
		name     string
		param    string
		identity *entity.Identity
		want     error
	}{
		{name: "own file", param: "u1/Ada+Lovelace-SRE.pdf", identity: &entity.Identity{UserID: "u1"}},
		{name: "escaped own file", param: "u1%2FAda+Lovelace-SRE.pdf", identity: &entity.Identity{UserID: "u1"}},
		{name: "another user's file", param: "u2/cv.pdf", identity: &entity.Identity{UserID: "u1"}, want: domainerrors.ErrNotOwner},
		{name: "prefix of another user id", param: "u10/cv.pdf", identity: &entity.Identity{UserID: "u1"}, want: domainerrors.ErrNotOwner},
		{name: "dot segments", param: "u1/../u2/cv.pdf", identity: &entity.Identity{UserID: "u1"}, want: domainerrors.ErrNotOwner},
		{name: "user directory itself", param: "u1", identity: &entity.Identity{UserID: "u1"}, want: domainerrors.ErrNotOwner},
		{name: "no identity", param: "u1/cv.pdf", want: domainerrors.ErrUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/files/"+tt.param, nil), httptest.NewRecorder())
			c.SetParamNames("*")
			c.SetParamValues(tt.param)
			if tt.identity != nil {
				deliverycontext.SetCaller(c, tt.identity)
			}

			called := false
			err := OwnFilesOnly(func(echo.Context) error {
				called = true

				return nil
			})(c)

			if tt.want == nil {
				require.NoError(t, err)
				assert.True(t, called)

				return
			}
			assert.False(t, called)
			assert.True(t, errors.Is(err, tt.want))
		})
	}
}

func TestRateLimitMiddleware(t *testing.T) {
	cfg := &config.Config{RateLimit: &config.RateLimitConfig{Enabled: true, RPS: 1, Burst: 2, TTL: time.Minute}}
	m := NewRateLimitMiddleware(cfg, newDiscardLogger())

	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return now }

	handler := m.Limit(func(echo.Context) error { return nil })
	call := func(ip string) error {
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		req.Header.Set(echo.HeaderXRealIP, ip)

		return handler(echo.New().NewContext(req, httptest.NewRecorder()))
	}

	require.NoError(t, call("10.0.0.1"))
	require.NoError(t, call("10.0.0.1"))
	assert.True(t, errors.Is(call("10.0.0.1"), domainerrors.ErrRateLimited))

	// Other clients keep their own budget.
	require.NoError(t, call("10.0.0.2"))

	now = now.Add(time.Second)
	require.NoError(t, call("10.0.0.1"))

	now = now.Add(2 * time.Minute)
	require.NoError(t, call("10.0.0.3"))
	m.mu.Lock()
	assert.Len(t, m.visitors, 1)
	m.mu.Unlock()
}

func TestRateLimitMiddleware_Disabled(t *testing.T) {
	m := NewRateLimitMiddleware(&config.Config{}, newDiscardLogger())
	handler := m.Limit(func(echo.Context) error { return nil })

	for range 50 {
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		require.NoError(t, handler(echo.New().NewContext(req, httptest.NewRecorder())))
	}
}

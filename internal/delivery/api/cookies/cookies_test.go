package cookies

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"jobtrack/config"
	"jobtrack/internal/domain/constants"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cookiesByName(rec *httptest.ResponseRecorder) map[string]*http.Cookie {
	out := map[string]*http.Cookie{}
	for _, cookie := range rec.Result().Cookies() {
		out[cookie.Name] = cookie
	}

	return out
}

func TestWriter_SetTokens(t *testing.T) {
	cfg := &config.Config{Cookies: &config.CookiesConfig{
		Access:  config.CookieConfig{Secure: true, SameSite: "Strict", MaxAge: time.Hour},
		Refresh: config.CookieConfig{HTTPOnly: true, Secure: true, SameSite: "None", MaxAge: 48 * time.Hour},
	}}

	rec := httptest.NewRecorder()
	c := echo.New().NewContext(httptest.NewRequest(http.MethodPost, "/", nil), rec)

	NewWriter(cfg).SetTokens(c, "a", "r")

	got := cookiesByName(rec)
	require.Len(t, got, 2)

	access := got[constants.CookieAccessToken]
	assert.Equal(t, "a", access.Value)
	assert.False(t, access.HttpOnly)
	assert.Equal(t, http.SameSiteStrictMode, access.SameSite)
	assert.Equal(t, 3600, access.MaxAge)

	refresh := got[constants.CookieRefreshToken]
	assert.Equal(t, "r", refresh.Value)
	assert.True(t, refresh.HttpOnly)
	assert.Equal(t, http.SameSiteNoneMode, refresh.SameSite)
	assert.Equal(t, 48*3600, refresh.MaxAge)
}

func TestWriter_ClearTokens(t *testing.T) {
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(httptest.NewRequest(http.MethodPost, "/", nil), rec)

	NewWriter(&config.Config{}).ClearTokens(c)

	for _, name := range []string{constants.CookieAccessToken, constants.CookieRefreshToken} {
		cookie := cookiesByName(rec)[name]
		require.NotNil(t, cookie, name)
		assert.Empty(t, cookie.Value)
		assert.Equal(t, -1, cookie.MaxAge)
	}
}

// Package cookies writes and expires the token cookies.
package cookies

import (
	"net/http"
	"strings"
	"time"

	"jobtrack/config"
	"jobtrack/internal/domain/constants"

	"github.com/labstack/echo/v4"
)

// Writer sets the accessToken and refreshToken cookies with configured attributes.
type Writer struct {
	access  config.CookieConfig
	refresh config.CookieConfig
}

func NewWriter(cfg *config.Config) *Writer {
	w := &Writer{
		access:  config.CookieConfig{Secure: true, SameSite: "Lax", MaxAge: time.Hour},
		refresh: config.CookieConfig{HTTPOnly: true, Secure: true, SameSite: "Lax", MaxAge: 7 * 24 * time.Hour},
	}
	if cfg.Cookies != nil {
		w.access = cfg.Cookies.Access
		w.refresh = cfg.Cookies.Refresh
	}

	return w
}

// SetTokens writes both token cookies.
func (w *Writer) SetTokens(c echo.Context, accessToken, refreshToken string) {
	c.SetCookie(newCookie(constants.CookieAccessToken, accessToken, w.access))
	c.SetCookie(newCookie(constants.CookieRefreshToken, refreshToken, w.refresh))
}

// ClearTokens expires both token cookies.
func (w *Writer) ClearTokens(c echo.Context) {
	for name, attrs := range map[string]config.CookieConfig{
		constants.CookieAccessToken:  w.access,
		constants.CookieRefreshToken: w.refresh,
	} {
		cookie := newCookie(name, "", attrs)
		cookie.MaxAge = -1
		cookie.Expires = time.Unix(0, 0)
		c.SetCookie(cookie)
	}
}

func newCookie(name, value string, attrs config.CookieConfig) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		HttpOnly: attrs.HTTPOnly,
		Secure:   attrs.Secure,
		SameSite: sameSite(attrs.SameSite),
		MaxAge:   int(attrs.MaxAge.Seconds()),
	}
}

func sameSite(value string) http.SameSite {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "strict":
		return http.SameSiteStrictMode
	case "none":
		return http.SameSiteNoneMode
	case "lax":
		return http.SameSiteLaxMode
	default:
		return http.SameSiteDefaultMode
	}
}

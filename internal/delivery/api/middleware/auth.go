package middleware

import (
	"net/url"
	"path"
	"strings"

	deliverycontext "jobtrack/internal/delivery/context"
	"jobtrack/internal/domain/constants"
	domainerrors "jobtrack/internal/domain/errors"
	"jobtrack/internal/domain/service"
	"jobtrack/internal/errors"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware provides middleware for JWT authentication.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the access token from the accessToken cookie or the
// Authorization header and stores the caller's identity.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := accessToken(c)
		if token == "" {
			return errors.WithStack(domainerrors.ErrUnauthorized)
		}

		identity, err := m.tokenSvc.VerifyAccessToken(token)
		if err != nil {
			return domainerrors.ErrInvalidAccessToken.Wrap(err)
		}

		deliverycontext.SetCaller(c, identity)

		return next(c)
	}
}

func accessToken(c echo.Context) string {
	if cookie, err := c.Cookie(constants.CookieAccessToken); err == nil && strings.TrimSpace(cookie.Value) != "" {
		return strings.TrimSpace(cookie.Value)
	}

	header := c.Request().Header.Get(echo.HeaderAuthorization)
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}

	return strings.TrimSpace(token)
}

// OwnFilesOnly restricts a wildcard file route to objects stored under the
// caller's user prefix. It must run after Authenticate.
func OwnFilesOnly(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		identity, ok := deliverycontext.Caller(c)
		if !ok {
			return errors.WithStack(domainerrors.ErrUnauthorized)
		}

		name, err := url.PathUnescape(c.Param("*"))
		if err != nil {
			return errors.WithStack(domainerrors.ErrNotFound)
		}
		if !strings.HasPrefix(path.Clean("/"+name), "/"+identity.UserID+"/") {
			return errors.WithStack(domainerrors.ErrNotOwner)
		}

		return next(c)
	}
}

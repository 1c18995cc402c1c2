// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"strings"

	"jobtrack/internal/delivery/api/cookies"
	"jobtrack/internal/delivery/api/response"
	"jobtrack/internal/domain/constants"
	"jobtrack/internal/errors"
	"jobtrack/internal/usecase"

	"github.com/labstack/echo/v4"
)

// UserHandler holds dependencies for user-related handlers.
type UserHandler struct {
	uc      usecase.UserUsecase
	cookies *cookies.Writer
	logger  *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.UserUsecase, cookieWriter *cookies.Writer, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		uc:      uc,
		cookies: cookieWriter,
		logger:  logger,
	}
}

// Register handles the user registration request.
func (h *UserHandler) Register(c echo.Context) error {
	input := new(usecase.RegisterInput)
	if err := bindBody(c, input); err != nil {
		return err
	}

	output, err := h.uc.Register(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, map[string]any{"user": output.User}, "User registered successfully")
}

// Login handles the user login request. Both tokens are set as cookies and returned in the body.
func (h *UserHandler) Login(c echo.Context) error {
	input := new(usecase.LoginInput)
	if err := bindBody(c, input); err != nil {
		return err
	}

	output, err := h.uc.Login(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	h.cookies.SetTokens(c, output.AccessToken, output.RefreshToken)

	return response.OK(c, map[string]any{
		"user":         output.User,
		"accessToken":  output.AccessToken,
		"refreshToken": output.RefreshToken,
	}, "User logged in successfully")
}

type refreshTokenRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// RefreshToken rotates the refresh token taken from the cookie or, failing that, the body.
func (h *UserHandler) RefreshToken(c echo.Context) error {
	token := ""
	if cookie, err := c.Cookie(constants.CookieRefreshToken); err == nil {
		token = strings.TrimSpace(cookie.Value)
	}
	if token == "" {
		req := new(refreshTokenRequest)
		if err := bindBody(c, req); err != nil {
			return err
		}
		token = req.RefreshToken
	}

	pair, err := h.uc.RefreshToken(c.Request().Context(), token)
	if err != nil {
		return errors.WithStack(err)
	}

	h.cookies.SetTokens(c, pair.AccessToken, pair.RefreshToken)

	return response.OK(c, map[string]string{
		"accessToken":  pair.AccessToken,
		"refreshToken": pair.RefreshToken,
	}, "Access token refreshed")
}

// Logout empties the stored refresh token and expires both cookies.
func (h *UserHandler) Logout(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	if err := h.uc.Logout(c.Request().Context(), userID); err != nil {
		return errors.WithStack(err)
	}

	h.cookies.ClearTokens(c)

	return response.OK(c, map[string]any{}, "User logged out successfully")
}

func (h *UserHandler) CurrentUser(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	user, err := h.uc.GetCurrentUser(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, user, "Current user fetched successfully")
}

func (h *UserHandler) UpdateProfile(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	input := new(usecase.UpdateProfileInput)
	fields, err := bindPatch(c, input)
	if err != nil {
		return err
	}
	input.UserID = userID
	input.Fields = fields

	user, err := h.uc.UpdateProfile(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, user, "Profile updated successfully")
}

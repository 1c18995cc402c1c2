package handler

import (
	"encoding/json"
	"io"
	"strings"

	deliverycontext "jobtrack/internal/delivery/context"
	"jobtrack/internal/domain/entity"
	domainerrors "jobtrack/internal/domain/errors"
	"jobtrack/internal/errors"

	"github.com/labstack/echo/v4"
)

// callerID returns the authenticated user's ID.
func callerID(c echo.Context) (string, error) {
	identity, ok := deliverycontext.Caller(c)
	if !ok {
		return "", errors.WithStack(domainerrors.ErrUnauthorized)
	}

	return identity.UserID, nil
}

// bindBody decodes a JSON request body into dst.
func bindBody(c echo.Context, dst any) error {
	if err := c.Bind(dst); err != nil {
		return invalidBody(err)
	}

	return nil
}

// bindPatch decodes a JSON update into dst and returns every top-level key
// the client sent, including keys dst has no field for.
func bindPatch(c echo.Context, dst any) ([]string, error) {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return nil, invalidBody(err)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, invalidBody(err)
	}
	if err := json.Unmarshal(body, dst); err != nil {
		return nil, invalidBody(err)
	}

	fields := make([]string, 0, len(raw))
	for key := range raw {
		fields = append(fields, key)
	}

	return fields, nil
}

func invalidBody(cause error) error {
	details := "request body must be a JSON object"
	if httpErr, ok := errors.AsType[*echo.HTTPError](cause); ok {
		if msg, ok := httpErr.Message.(string); ok {
			details = strings.ToLower(msg)
		}
	}

	return domainerrors.ErrValidationFailed.WithMessage("Invalid request body").WithDetails(details).Wrap(cause)
}

// pageRequest reads page and limit from the query string.
func pageRequest(c echo.Context) (entity.PageRequest, error) {
	var page, limit int64
	err := echo.QueryParamsBinder(c).
		Int64("page", &page).
		Int64("limit", &limit).
		BindError()
	if err != nil {
		return entity.PageRequest{}, domainerrors.ErrValidationFailed.
			WithMessage("page and limit must be positive integers").Wrap(err)
	}

	return entity.NewPageRequest(page, limit), nil
}

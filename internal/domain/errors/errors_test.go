package errors

import (
	"net/http"
	"testing"

	"jobtrack/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaseError_WithDetailsKeepsIdentity(t *testing.T) {
	err := ErrValidationFailed.WithDetails("companyName is required")

	assert.True(t, errors.Is(err, ErrValidationFailed))
	assert.False(t, errors.Is(err, ErrFieldNotAllowed))
	assert.Equal(t, "companyName is required", err.Details())
	assert.Equal(t, "All fields are required: companyName is required", err.Error())
}

func TestBaseError_WithMessage(t *testing.T) {
	err := ErrValidationFailed.WithMessage("position is required")

	assert.Equal(t, "position is required", err.Message())
	assert.Equal(t, http.StatusBadRequest, err.HTTPCode())
	assert.True(t, errors.Is(err, ErrValidationFailed))
}

func TestBaseError_WrapKeepsCauseAndAppError(t *testing.T) {
	cause := errors.New("connection reset")
	err := ErrContactCreateFailed.Wrap(cause)

	var appErr AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusNotImplemented, appErr.HTTPCode())
	assert.Equal(t, "CONTACT_CREATE_FAILED", appErr.ErrorCode())
	assert.True(t, errors.Is(err, cause))
	assert.True(t, errors.Is(err, ErrContactCreateFailed))
	assert.Contains(t, err.Error(), "connection reset")
}

func TestBaseError_WrapMessage(t *testing.T) {
	err := ErrNotOwner.WrapMessage("contact belongs to another user")

	appErr, ok := errors.AsType[AppError](err)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, appErr.HTTPCode())
}

func TestPerEndpointFailureCodes(t *testing.T) {
	tests := []struct {
		err  *BaseError
		code int
	}{
		{ErrApplicationCreateFailed, http.StatusNotImplemented},
		{ErrApplicationUpdateFailed, http.StatusNotImplemented},
		{ErrApplicationDeleteFailed, http.StatusNotImplemented},
		{ErrContactCreateFailed, http.StatusNotImplemented},
		{ErrContactUpdateFailed, http.StatusInternalServerError},
		{ErrContactDeleteFailed, http.StatusInternalServerError},
		{ErrInterviewCreateFailed, http.StatusNotImplemented},
		{ErrInterviewUpdateFailed, http.StatusNotImplemented},
		{ErrInterviewDeleteFailed, http.StatusInternalServerError},
		{ErrInvalidCredentials, http.StatusBadRequest},
		{ErrUserAlreadyExists, http.StatusUnauthorized},
		{ErrInvalidStatus, http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.err.ErrorCode(), func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.HTTPCode())
		})
	}
}

// Package validator adapts the shared validation rules to echo.Validator.
package validator

import (
	"jobtrack/internal/validation"

	"github.com/labstack/echo/v4"
)

type echoValidator struct{}

// New returns an echo.Validator backed by the shared validator instance.
func New() echo.Validator {
	return echoValidator{}
}

// Validate reports the first failed rule as a VALIDATION_FAILED error.
func (echoValidator) Validate(i any) error {
	return validation.Struct(i)
}

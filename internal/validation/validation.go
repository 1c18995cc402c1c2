// Package validation wraps go-playground/validator with the rules used by request DTOs.
package validation

import (
	"reflect"
	"regexp"
	"strings"
	"sync"

	"jobtrack/internal/domain/entity"
	domainerrors "jobtrack/internal/domain/errors"
	"jobtrack/internal/errors"

	"github.com/go-playground/validator/v10"
)

var (
	phonePattern = regexp.MustCompile(`^\+?[1-9]\d{1,14}$`)
	emailPattern = regexp.MustCompile(`^[\w\-.]+@([\w-]+\.)+[\w-]{2,4}$`)

	once     sync.Once
	instance *validator.Validate
)

// Validator returns the shared, fully registered validator instance.
func Validator() *validator.Validate {
	once.Do(func() {
		instance = newValidate()
	})

	return instance
}

func newValidate() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return field.Name
		}

		return name
	})

	mustRegister(v, "notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	mustRegister(v, "phone", func(fl validator.FieldLevel) bool {
		return phonePattern.MatchString(fl.Field().String())
	})
	mustRegister(v, "contactemail", func(fl validator.FieldLevel) bool {
		return emailPattern.MatchString(fl.Field().String())
	})
	mustRegister(v, "appstatus", func(fl validator.FieldLevel) bool {
		return entity.ApplicationStatus(fl.Field().String()).Valid()
	})
	mustRegister(v, "roundtype", func(fl validator.FieldLevel) bool {
		return entity.RoundType(fl.Field().String()).Valid()
	})
	mustRegister(v, "experience", func(fl validator.FieldLevel) bool {
		return entity.ExperienceLevel(fl.Field().String()).Valid()
	})

	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(err)
	}
}

// Struct validates s and converts the first failure into a VALIDATION_FAILED AppError.
func Struct(s any) error {
	err := Validator().Struct(s)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) || len(validationErrs) == 0 {
		return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails(err.Error()))
	}

	first := validationErrs[0]

	return errors.WithStack(domainerrors.ErrValidationFailed.
		WithMessage(describe(first)).
		WithDetails(first.Namespace()))
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "notblank":
		return fe.Field() + " is required"
	case "contactemail", "email":
		return fe.Field() + " must be a valid email address"
	case "phone":
		return fe.Field() + " must be a valid phone number"
	case "appstatus", "roundtype", "experience", "oneof":
		return fe.Field() + " has an unsupported value"
	case "min", "gte":
		return fe.Field() + " must be at least " + fe.Param()
	default:
		return fe.Field() + " is invalid"
	}
}

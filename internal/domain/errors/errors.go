package errors

import (
	"net/http"

	"jobtrack/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	if e.details != "" {
		return e.message + ": " + e.details
	}

	return e.message
}

// Is matches any BaseError carrying the same business error code, so copies
// produced by WithDetails or WithMessage still satisfy errors.Is against the predefined value.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == t.errorCode && e.httpCode == t.httpCode
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// Wrap annotates cause with the error's context while keeping the AppError reachable through errors.As.
func (e *BaseError) Wrap(cause error) error {
	if cause == nil {
		return errors.WithStack(e)
	}

	return errors.WithStack(&wrappedError{BaseError: e, cause: cause})
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// WithMessage replaces the user-facing message and keeps the code
func (e *BaseError) WithMessage(message string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   message,
		details:   e.details,
	}
}

// wrappedError pairs an AppError with the underlying cause.
type wrappedError struct {
	*BaseError
	cause error
}

func (w *wrappedError) Error() string {
	return w.BaseError.Error() + ": " + w.cause.Error()
}

func (w *wrappedError) Unwrap() []error {
	return []error{w.BaseError, w.cause}
}

// Predefined error types
var (
	// Generic errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"All fields are required",
		"",
	)

	ErrFieldNotAllowed = NewBaseError(
		http.StatusBadRequest,
		"FIELD_NOT_ALLOWED",
		"Invalid updates",
		"",
	)

	ErrNotOwner = NewBaseError(
		http.StatusUnauthorized,
		"NOT_OWNER",
		"You are not authorized to access this resource",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)

	ErrRateLimited = NewBaseError(
		http.StatusTooManyRequests,
		"RATE_LIMITED",
		"Too many requests, please try again later",
		"",
	)

	ErrServiceUnavailable = NewBaseError(
		http.StatusServiceUnavailable,
		"SERVICE_UNAVAILABLE",
		"Service is not ready",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)

	// Authentication-related errors
	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"Unauthorized request",
		"",
	)

	ErrInvalidAccessToken = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_ACCESS_TOKEN",
		"Invalid or expired access token",
		"",
	)

	ErrRefreshTokenInvalid = NewBaseError(
		http.StatusUnauthorized,
		"REFRESH_TOKEN_INVALID",
		"Invalid or expired refresh token",
		"",
	)

	ErrRefreshTokenReused = NewBaseError(
		http.StatusUnauthorized,
		"REFRESH_TOKEN_REUSED",
		"Refresh token is expired or used",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusBadRequest,
		"INVALID_CREDENTIALS",
		"Invalid user credentials",
		"",
	)

	ErrTokenIssueFailed = NewBaseError(
		http.StatusInternalServerError,
		"TOKEN_ISSUE_FAILED",
		"Something went wrong while generating tokens",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"Password could not be processed",
		"",
	)

	// User-related errors
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"User does not exist",
		"",
	)

	ErrUserAlreadyExists = NewBaseError(
		http.StatusUnauthorized,
		"USER_ALREADY_EXISTS",
		"User already exists !!",
		"",
	)

	ErrUserRegistrationFailed = NewBaseError(
		http.StatusInternalServerError,
		"USER_REGISTRATION_FAILED",
		"User could not be registered !!",
		"",
	)

	ErrUserUpdateFailed = NewBaseError(
		http.StatusInternalServerError,
		"USER_UPDATE_FAILED",
		"User profile could not be updated",
		"",
	)

	// Application-related errors
	ErrApplicationNotFound = NewBaseError(
		http.StatusNotFound,
		"APPLICATION_NOT_FOUND",
		"Application not found",
		"",
	)

	ErrApplicationCreateFailed = NewBaseError(
		http.StatusNotImplemented,
		"APPLICATION_CREATE_FAILED",
		"Application could not be created",
		"",
	)

	ErrApplicationUpdateFailed = NewBaseError(
		http.StatusNotImplemented,
		"APPLICATION_UPDATE_FAILED",
		"Application could not be updated",
		"",
	)

	ErrApplicationDeleteFailed = NewBaseError(
		http.StatusNotImplemented,
		"APPLICATION_DELETE_FAILED",
		"Application could not be deleted",
		"",
	)

	ErrApplicationListFailed = NewBaseError(
		http.StatusInternalServerError,
		"APPLICATION_LIST_FAILED",
		"Applications could not be fetched",
		"",
	)

	ErrInvalidStatus = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_STATUS",
		"Invalid application status",
		"",
	)

	ErrInvalidAppliedOn = NewBaseError(
		http.StatusBadRequest,
		"INVALID_APPLIED_ON",
		"Invalid applied date",
		"",
	)

	ErrAppliedOnInFuture = NewBaseError(
		http.StatusBadRequest,
		"APPLIED_ON_IN_FUTURE",
		"Applied date cannot be in the future",
		"",
	)

	// Contact-related errors
	ErrContactNotFound = NewBaseError(
		http.StatusNotFound,
		"CONTACT_NOT_FOUND",
		"Contact not found",
		"",
	)

	ErrContactCreateFailed = NewBaseError(
		http.StatusNotImplemented,
		"CONTACT_CREATE_FAILED",
		"Contact could not be created",
		"",
	)

	ErrContactUpdateFailed = NewBaseError(
		http.StatusInternalServerError,
		"CONTACT_UPDATE_FAILED",
		"Contact could not be updated",
		"",
	)

	ErrContactDeleteFailed = NewBaseError(
		http.StatusInternalServerError,
		"CONTACT_DELETE_FAILED",
		"Contact could not be deleted",
		"",
	)

	ErrContactListFailed = NewBaseError(
		http.StatusInternalServerError,
		"CONTACT_LIST_FAILED",
		"Contacts could not be fetched",
		"",
	)

	ErrContactEmailTaken = NewBaseError(
		http.StatusBadRequest,
		"CONTACT_EMAIL_TAKEN",
		"A contact with this email already exists",
		"",
	)

	// Interview-related errors
	ErrInterviewNotFound = NewBaseError(
		http.StatusNotFound,
		"INTERVIEW_NOT_FOUND",
		"Interview round not found",
		"",
	)

	ErrInterviewCreateFailed = NewBaseError(
		http.StatusNotImplemented,
		"INTERVIEW_CREATE_FAILED",
		"Interview round could not be created",
		"",
	)

	ErrInterviewUpdateFailed = NewBaseError(
		http.StatusNotImplemented,
		"INTERVIEW_UPDATE_FAILED",
		"Interview round could not be updated",
		"",
	)

	ErrInterviewDeleteFailed = NewBaseError(
		http.StatusInternalServerError,
		"INTERVIEW_DELETE_FAILED",
		"Interview round could not be deleted",
		"",
	)

	ErrInterviewListFailed = NewBaseError(
		http.StatusInternalServerError,
		"INTERVIEW_LIST_FAILED",
		"Interview rounds could not be fetched",
		"",
	)

	ErrInvalidScheduledOn = NewBaseError(
		http.StatusBadRequest,
		"INVALID_SCHEDULED_ON",
		"Invalid scheduled date",
		"",
	)

	// Resume-related errors
	ErrResumeFileMissing = NewBaseError(
		http.StatusBadRequest,
		"RESUME_FILE_MISSING",
		"Please upload a resume !!",
		"",
	)

	ErrResumeFileTooLarge = NewBaseError(
		http.StatusBadRequest,
		"RESUME_FILE_TOO_LARGE",
		"Resume file is too large",
		"",
	)

	ErrResumeFileType = NewBaseError(
		http.StatusBadRequest,
		"RESUME_FILE_TYPE",
		"Only PDF, DOC and DOCX files are allowed",
		"",
	)

	ErrResumeUploadFailed = NewBaseError(
		http.StatusInternalServerError,
		"RESUME_UPLOAD_FAILED",
		"Resume could not be uploaded",
		"",
	)

	ErrResumeCreateFailed = NewBaseError(
		http.StatusNotImplemented,
		"RESUME_CREATE_FAILED",
		"Resume could not be saved",
		"",
	)

	ErrResumeListFailed = NewBaseError(
		http.StatusInternalServerError,
		"RESUME_LIST_FAILED",
		"Resumes could not be fetched",
		"",
	)
)

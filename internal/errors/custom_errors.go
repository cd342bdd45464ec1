package errors

import (
	"errors"
)

// Error kinds. Every AppError carries exactly one of these so callers can
// branch with errors.Is.
var (
	ErrValidation         = errors.New("validation failed")
	ErrAuthRequired       = errors.New("authentication required")
	ErrPayloadTooLarge    = errors.New("payload too large")
	ErrServiceUnavailable = errors.New("service temporarily unavailable")
	ErrServerRejected     = errors.New("request rejected by server")
	ErrUnclassified       = errors.New("unclassified server error")
	ErrNetwork            = errors.New("network error")
	ErrNotFound           = errors.New("not found")
	ErrRateLimited        = errors.New("rate limit exceeded")
)

// AppError represents a structured application error with user-friendly and technical details.
type AppError struct {
	Kind             error
	TechnicalMessage string
	UserMessage      string
	Code             string
	HTTPStatus       int
	OriginalError    error
}

// Error implements the error interface.
func (e *AppError) Error() string {
	return e.UserMessage
}

// Unwrap exposes both the kind and the original error for error chaining.
func (e *AppError) Unwrap() []error {
	errs := make([]error, 0, 2)
	if e.Kind != nil {
		errs = append(errs, e.Kind)
	}
	if e.OriginalError != nil {
		errs = append(errs, e.OriginalError)
	}
	return errs
}

// NewAppError creates a new AppError instance.
func NewAppError(kind error, technicalMessage, userMessage, code string, status int, originalErr error) *AppError {
	return &AppError{
		Kind:             kind,
		TechnicalMessage: technicalMessage,
		UserMessage:      userMessage,
		Code:             code,
		HTTPStatus:       status,
		OriginalError:    originalErr,
	}
}

// NewValidationError reports a local precondition failure on a single field.
func NewValidationError(message string) *AppError {
	return &AppError{
		Kind:             ErrValidation,
		TechnicalMessage: message,
		UserMessage:      message,
		Code:             ErrCodeValidation,
	}
}

// NewNetworkError reports that no response was obtained.
func NewNetworkError(err error) *AppError {
	return &AppError{
		Kind:             ErrNetwork,
		TechnicalMessage: err.Error(),
		UserMessage:      MsgNetworkError,
		Code:             ErrCodeNetwork,
		OriginalError:    err,
	}
}

// Common error codes
const (
	ErrCodeValidation         = "VALIDATION_FAILED"
	ErrCodeAuthRequired       = "AUTH_REQUIRED"
	ErrCodePayloadTooLarge    = "PAYLOAD_TOO_LARGE"
	ErrCodeServiceUnavailable = "SERVICE_UNAVAILABLE"
	ErrCodeInvalidRequest     = "INVALID_REQUEST"
	ErrCodeCreateFailed       = "CREATE_FAILED"
	ErrCodeLoadFailed         = "LOAD_FAILED"
	ErrCodeNetwork            = "NETWORK_ERROR"
	ErrCodePropertyNotFound   = "PROPERTY_NOT_FOUND"
	ErrCodeRateLimited        = "RATE_LIMITED"
	ErrCodeInternal           = "INTERNAL_ERROR"
	ErrCodeInvalidCredentials = "INVALID_CREDENTIALS"
	ErrCodeEmailTaken         = "EMAIL_TAKEN"
)

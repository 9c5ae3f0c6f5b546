package errors

import (
	stdErrors "errors"
	"fmt"
)

type ErrorCode int

const (
	ErrInvalidInput               ErrorCode = 4000
	ErrInvalidRequestData         ErrorCode = 4001
	ErrUnauthorized               ErrorCode = 4010
	ErrTokenExpired               ErrorCode = 4011
	ErrInvalidTokenFormat         ErrorCode = 4012
	ErrMissingAuthorizationHeader ErrorCode = 4013
	ErrForbidden                  ErrorCode = 4030
	ErrNotFound                   ErrorCode = 4040
	ErrAlreadyExists              ErrorCode = 4090
	ErrInvalidStateTransition     ErrorCode = 4091

	ErrInternalServer     ErrorCode = 5000
	ErrGetFailed          ErrorCode = 5001
	ErrCreateFailed       ErrorCode = 5002
	ErrUpdateFailed       ErrorCode = 5003
	ErrDeleteFailed       ErrorCode = 5004
	ErrServiceUnavailable ErrorCode = 5030
)

// AppError is the error type returned by services. Err keeps the underlying
// cause (usually a store error) reachable through errors.Is / errors.As.
type AppError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Details any       `json:"details,omitempty"`
	Err     error     `json:"-"`
}

func NewAppError(code ErrorCode, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

func NewValidationError(message string, details any) *AppError {
	return &AppError{
		Code:    ErrInvalidInput,
		Message: message,
		Details: details,
	}
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// CodeOf returns the code of the first AppError in err's chain, or
// ErrInternalServer when there is none.
func CodeOf(err error) ErrorCode {
	var appErr *AppError
	if stdErrors.As(err, &appErr) && appErr != nil {
		return appErr.Code
	}
	return ErrInternalServer
}

// IsAuthentication reports whether code rejects the caller's credential.
func IsAuthentication(code ErrorCode) bool {
	switch code {
	case ErrUnauthorized, ErrTokenExpired, ErrInvalidTokenFormat, ErrMissingAuthorizationHeader:
		return true
	}
	return false
}

package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrCurrencyNotFound indicates that a currency referenced by another resource does not exist.
// It wraps ErrNotFound so callers checking for ErrNotFound also match it.
var ErrCurrencyNotFound = fmt.Errorf("referenced currency not found: %w", ErrNotFound)

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrReferenced indicates that a resource cannot be removed while other resources point at it.
var ErrReferenced = errors.New("resource is referenced by other resources")

// ErrStorageUnavailable indicates the backing store could not be reached or the query failed.
var ErrStorageUnavailable = errors.New("storage unavailable")

// AppError is an error carrying the HTTP status it should be reported with.
type AppError struct {
	Code    int
	Message string
	Err     error
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

// NewAppError creates an AppError with the given status code, message and cause.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewValidationError creates a 400 AppError that matches ErrValidation.
func NewValidationError(message string) *AppError {
	return NewAppError(http.StatusBadRequest, message, ErrValidation)
}

// NewNotFoundError creates a 404 AppError that matches ErrNotFound.
func NewNotFoundError(message string) *AppError {
	return NewAppError(http.StatusNotFound, message, ErrNotFound)
}

// NewStorageError wraps a driver error so that it matches ErrStorageUnavailable
// while keeping the original cause reachable through errors.Is/As.
func NewStorageError(message string, err error) *AppError {
	return NewAppError(http.StatusInternalServerError, message, errors.Join(ErrStorageUnavailable, err))
}

// StatusCode maps an error produced anywhere in the application to the HTTP status
// it should be reported with.
func StatusCode(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrDuplicate), errors.Is(err, ErrReferenced):
		return http.StatusConflict
	}
	var appErr *AppError
	if errors.As(err, &appErr) && appErr.Code != 0 {
		return appErr.Code
	}
	return http.StatusInternalServerError
}

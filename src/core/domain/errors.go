package domain

import (
	"errors"
	"fmt"
	"net/http"
)

// Domain error kinds for consistent error handling across the application.
// Every DomainError wraps exactly one of these so callers can use errors.Is.

var (
	// ErrNotFound is returned when a requested resource does not exist.
	ErrNotFound = errors.New("resource not found")

	// ErrInvalidInput is returned when input validation fails.
	ErrInvalidInput = errors.New("invalid input")

	// ErrConflict is returned when there's a conflict with the current state.
	ErrConflict = errors.New("conflict")
)

// Catalog error codes. These are part of the public API contract.
const (
	CodeJokeNotExist       = "JOKE_NOT_EXIST"
	CodeJokeContentNull    = "JOKE_CONTENT_NULL"
	CodeJokeContentEmpty   = "JOKE_CONTENT_EMPTY"
	CodeJokeContentInvalid = "JOKE_CONTENT_INVALID"
	CodeRoleNotExist       = "ROLE_NOT_EXIST"
	CodePagingPageInvalid  = "PAGING_PAGE_INVALID"
	CodePagingLimitInvalid = "PAGING_LIMIT_INVALID"
	CodeConflict           = "CONFLICT"
)

// DomainError is the single error shape surfaced by the facades.
// It carries a machine-readable code, a human message and the HTTP status the
// controller layer should answer with.
type DomainError struct {
	// Base is the underlying error kind (e.g., ErrNotFound)
	Base error

	// Code is the stable machine-readable code (e.g., JOKE_NOT_EXIST)
	Code string

	// Message provides human-readable context
	Message string

	// Field indicates which field caused the error (for validation errors)
	Field string

	// Status is the HTTP status associated with the error
	Status int
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s: %s (field: %s)", e.Base.Error(), e.Code, e.Message, e.Field)
	}
	if e.Code != "" {
		return fmt.Sprintf("%s: %s: %s", e.Base.Error(), e.Code, e.Message)
	}
	if e.Message != "" {
		return fmt.Sprintf("%s: %s", e.Base.Error(), e.Message)
	}
	return e.Base.Error()
}

// Unwrap returns the base error for errors.Is/As support.
func (e *DomainError) Unwrap() error {
	return e.Base
}

// NewNotFoundError creates a 404 error with the given code and message.
func NewNotFoundError(code, message string) *DomainError {
	return &DomainError{
		Base:    ErrNotFound,
		Code:    code,
		Message: message,
		Status:  http.StatusNotFound,
	}
}

// NewValidationError creates a 422 error for a specific field.
func NewValidationError(field, code, message string) *DomainError {
	return &DomainError{
		Base:    ErrInvalidInput,
		Code:    code,
		Message: message,
		Field:   field,
		Status:  http.StatusUnprocessableEntity,
	}
}

// NewConflictError creates a 409 error with context.
func NewConflictError(message string) *DomainError {
	return &DomainError{
		Base:    ErrConflict,
		Code:    CodeConflict,
		Message: message,
		Status:  http.StatusConflict,
	}
}

// JokeNotExist is returned when no joke has the requested UUID.
func JokeNotExist() *DomainError {
	return NewNotFoundError(CodeJokeNotExist, "Joke doesn't exist.")
}

// JokeContentNull is returned when a joke request carries no content.
func JokeContentNull() *DomainError {
	return NewValidationError("content", CodeJokeContentNull, "Content mustn't be null.")
}

// JokeContentEmpty is returned when a joke request carries an empty content string.
func JokeContentEmpty() *DomainError {
	return NewValidationError("content", CodeJokeContentEmpty, "Content mustn't be empty string.")
}

// JokeContentInvalid is returned when content holds characters the store cannot keep (NUL).
func JokeContentInvalid() *DomainError {
	return NewValidationError("content", CodeJokeContentInvalid, "Content mustn't contain NUL characters.")
}

// RoleNotExist is returned when no role has the requested id.
func RoleNotExist() *DomainError {
	return NewNotFoundError(CodeRoleNotExist, "Role doesn't exist.")
}

// PagingPageInvalid is returned for a page number below one.
func PagingPageInvalid() *DomainError {
	return NewValidationError("page", CodePagingPageInvalid, "Page number must be greater than zero.")
}

// PagingLimitInvalid is returned for a page limit below one.
func PagingLimitInvalid() *DomainError {
	return NewValidationError("limit", CodePagingLimitInvalid, "Page limit must be greater than zero.")
}

// AsDomainError extracts a *DomainError from err, if any.
func AsDomainError(err error) (*DomainError, bool) {
	var de *DomainError
	if errors.As(err, &de) {
		return de, true
	}
	return nil, false
}

// IsNotFound checks if an error is a not found error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsValidationError checks if an error is a validation error.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsConflict checks if an error is a conflict error.
func IsConflict(err error) bool {
	return errors.Is(err, ErrConflict)
}

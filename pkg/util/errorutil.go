package util

import (
	"errors"
	"fmt"
	"net/http"
)

// DomainError standardizes application errors. Code is machine-readable and
// used for logs and metrics; only Message and HTTPStatus reach the client.
type DomainError struct {
	Code       string
	Message    string
	HTTPStatus int
	Err        error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewDomainError constructs a DomainError.
func NewDomainError(code, message string, status int) *DomainError {
	return &DomainError{Code: code, Message: message, HTTPStatus: status}
}

func NewValidationError(message string) error {
	return NewDomainError("VALIDATION_FAILED", message, http.StatusBadRequest)
}

func NewNotFound(message string) error {
	return NewDomainError("NOT_FOUND", message, http.StatusNotFound)
}

func NewConflict(message string) error {
	return NewDomainError("CONFLICT", message, http.StatusConflict)
}

func NewUnauthorized(message string) error {
	return NewDomainError("UNAUTHORIZED", message, http.StatusUnauthorized)
}

// NewMissingToken rejects requests without a usable bearer credential.
func NewMissingToken() error {
	return NewDomainError("MISSING_TOKEN", "authentication token not found", http.StatusUnauthorized)
}

// NewInvalidToken covers bad signatures, malformed tokens, revoked tokens and
// an unreachable revocation store. The client is never told which one.
func NewInvalidToken() error {
	return NewDomainError("INVALID_TOKEN", "authentication token is invalid", http.StatusUnauthorized)
}

func NewTokenExpired() error {
	return NewDomainError("TOKEN_EXPIRED", "authentication token has expired", http.StatusUnauthorized)
}

func NewForbidden() error {
	return NewDomainError("FORBIDDEN", "you do not have access to this resource", http.StatusForbidden)
}

func NewInternalError(err error) error {
	return &DomainError{
		Code:       "INTERNAL_ERROR",
		Message:    "internal server error",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

// ToDomainError converts generic errors to DomainError.
func ToDomainError(err error) *DomainError {
	if err == nil {
		return nil
	}
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr
	}
	return &DomainError{
		Code:       "INTERNAL_ERROR",
		Message:    "internal server error",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

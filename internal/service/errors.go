package service

import (
	"errors"

	"github.com/cloudblog-api/internal/moderation"
	"github.com/cloudblog-api/internal/validation"
)

// Sentinel errors mapped to HTTP statuses at the handler boundary.
var (
	// ErrNotFound means the entity did not resolve (404).
	ErrNotFound = errors.New("not found")
	// ErrInvalidCredentials means the login email/password pair failed (422,
	// surfaced as a field error so the frontend renders it inline).
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrAccountInactive means the account exists but has been deactivated (403).
	ErrAccountInactive = errors.New("account is inactive")
)

// ForbiddenError is any authorization denial. Wrong-owner and wrong-role are
// deliberately not distinguished to the caller (both 403), but the internal
// reason is kept for logging and tests.
type ForbiddenError struct {
	Reason moderation.Reason
}

func (e *ForbiddenError) Error() string {
	return "forbidden: " + string(e.Reason)
}

// Forbidden wraps a denial reason into an error
func Forbidden(reason moderation.Reason) error {
	return &ForbiddenError{Reason: reason}
}

// AsForbidden unwraps a ForbiddenError if err is one
func AsForbidden(err error) (*ForbiddenError, bool) {
	var fe *ForbiddenError
	if errors.As(err, &fe) {
		return fe, true
	}
	return nil, false
}

// ValidationError carries field-level detail for 422 responses
type ValidationError struct {
	Fields validation.Errors
}

func (e *ValidationError) Error() string {
	return "validation failed"
}

// Invalid wraps field errors into a ValidationError
func Invalid(fields validation.Errors) error {
	return &ValidationError{Fields: fields}
}

// AsValidation unwraps a ValidationError if err is one
func AsValidation(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

package models

import "errors"

// Model validation and operation errors
var (
	// General errors
	ErrNotFound     = errors.New("resource not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrUnauthorized = errors.New("unauthorized")

	// Page routing errors
	ErrUnknownPage = errors.New("unknown page")

	// Session errors
	ErrNoSession      = errors.New("no active session")
	ErrSessionExpired = errors.New("session has expired")
	ErrSessionInvalid = errors.New("session token is invalid")

	// Preference errors
	ErrInvalidTheme    = errors.New("invalid theme selection")
	ErrInvalidLanguage = errors.New("invalid language selection")
)

// IsNotFoundError returns true if the error is a not found error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrUnknownPage)
}

// IsValidationError returns true if the error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput) ||
		errors.Is(err, ErrInvalidTheme) ||
		errors.Is(err, ErrInvalidLanguage)
}

// IsAuthError returns true if the error is an authentication error
func IsAuthError(err error) bool {
	return errors.Is(err, ErrUnauthorized) ||
		errors.Is(err, ErrNoSession) ||
		errors.Is(err, ErrSessionExpired) ||
		errors.Is(err, ErrSessionInvalid)
}

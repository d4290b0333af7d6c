// Package common defines shared constants and sentinel errors used across
// SiteKeeper components. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Validation errors.
	ErrInvalidValue = errors.New("invalid value")

	// Login flow errors.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrIncompleteCode     = errors.New("please enter complete 6-digit code")
	ErrInvalidDigit       = errors.New("code slot accepts a single numeral")
	ErrInvalidTransition  = errors.New("operation not available in current state")

	// Role errors.
	ErrForbidden = errors.New("not permitted for current role")

	// Field and external service errors.
	ErrLocationUnavailable    = errors.New("GPS verification failed: site access requires active location services")
	ErrExternalService        = errors.New("external service failure")
	ErrReconfigureCredentials = errors.New("API entity not found, your key may need reconfiguration")
)

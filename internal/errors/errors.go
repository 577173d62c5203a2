package errors

import (
	"errors"
	"fmt"
)

// Common error types for the SaaS server. Services return these as typed
// outcomes; the server package is responsible for mapping them onto
// transport status codes.
var (
	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrMissingToken       = errors.New("missing token")
	ErrInvalidToken       = errors.New("invalid token")

	// Account errors
	ErrEmailTaken      = errors.New("email already registered")
	ErrAccountNotFound = errors.New("account not found")

	// Organization / membership errors
	ErrNotMember        = errors.New("not a member")
	ErrInsufficientRole = errors.New("insufficient role")
	ErrOrgNotFound      = errors.New("organization not found")

	// Billing errors
	ErrPlanExists   = errors.New("plan already exists")
	ErrPlanNotFound = errors.New("plan not found")

	// Catalog errors
	ErrCategoryExists  = errors.New("category already exists")
	ErrSKUExists       = errors.New("product SKU already exists")
	ErrProductNotFound = errors.New("product not found for given SKU")

	// General errors
	ErrAlreadyExists = errors.New("already exists")
	ErrNotFound      = errors.New("not found")
	ErrInternal      = errors.New("internal error")
	ErrUnavailable   = errors.New("store unavailable")
)

// Wrapf wraps an error with context using fmt.Errorf
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf(format+": %w", append(args, err)...)
}

// Is reports whether any error in err's chain matches target
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// Unwrap returns the result of calling Unwrap on err, if available
func Unwrap(err error) error {
	return errors.Unwrap(err)
}

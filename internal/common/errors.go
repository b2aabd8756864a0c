// Package common provides shared utilities and types used across the application.
package common

import (
	"errors"
	"fmt"
)

// Common application errors.
var (
	// Rule and resolution errors.
	ErrUnknownCountry   = errors.New("unknown country")
	ErrUnknownIncoterm  = errors.New("unknown incoterm")
	ErrUnknownMode      = errors.New("unknown transport mode")
	ErrUnknownCommodity = errors.New("unknown commodity")
	ErrWildcardInput    = errors.New("wildcard value not allowed in selection")

	// Storage errors.
	ErrNotFound = errors.New("not found")

	// Configuration errors.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// UserError represents an error that should be shown to the user.
type UserError struct {
	Err         error
	UserMessage string
}

func (e *UserError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.UserMessage, e.Err)
	}
	return e.UserMessage
}

func (e *UserError) Unwrap() error {
	return e.Err
}

// NewUserError creates a new user-friendly error.
func NewUserError(userMessage string, err error) error {
	return &UserError{
		UserMessage: userMessage,
		Err:         err,
	}
}

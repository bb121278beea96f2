// Package common defines shared constants and sentinel errors used across
// the phonestock client layers. Callers should use errors.Is to match
// these values.
package common

import "errors"

var (
	// Transport-level errors.
	ErrUnavailable = errors.New("server unavailable")

	// Auth errors.
	ErrorUnauthorized = errors.New("unauthorized")
	ErrInvalidToken   = errors.New("invalid token")
	ErrTokenExpired   = errors.New("token expired")

	// Session flow control.
	ErrBusy                 = errors.New("another request is in flight")
	ErrSessionLoading       = errors.New("session is still loading")
	ErrLoginRequired        = errors.New("login required")
	ErrAlreadyAuthenticated = errors.New("already authenticated")

	// Storage errors.
	ErrorNotFound = errors.New("not found")
)

package api

import (
	"fmt"

	"phonestock/internal/common"
)

// ServerError is a non-2xx API response carrying the server's message
// payload. The message is surfaced to the user verbatim. A malformed success
// body (missing required fields) is also reported as a ServerError so
// callers never observe half-populated values.
type ServerError struct {
	Status  int
	Message string
}

func (e *ServerError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("HTTP error! status: %d", e.Status)
}

// Unwrap lets errors.Is(err, common.ErrorUnauthorized) match 401 responses.
func (e *ServerError) Unwrap() error {
	if e.Status == 401 {
		return common.ErrorUnauthorized
	}
	return nil
}

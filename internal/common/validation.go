package common

// ValidationError reports a locally detected form problem (missing or
// mismatched required fields). It blocks submission before any network call
// is made.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(msg string) *ValidationError {
	return &ValidationError{Message: msg}
}

package service

import (
	"errors"
	"fmt"
)

// ErrCouldNotAuthenticate is the single error returned for every login
// failure. It deliberately does not say whether the email or the password
// was wrong, so callers cannot enumerate accounts.
var ErrCouldNotAuthenticate = errors.New("could not authenticate")

// ValidationError reports bad or duplicate input the caller can correct.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func validationErr(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

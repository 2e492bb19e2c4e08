package signup

import (
	"errors"
	"fmt"
	"strings"
)

// User-visible messages.
const (
	MissingFieldsMessage = "Please fill in all fields"
	SuccessMessage       = "Account Created Successfully!"
	FallbackErrorMessage = "An error occurred during signup"
)

var (
	// ErrSubmitting is returned by Submit while an attempt is in flight.
	ErrSubmitting = errors.New("signup: submission already in progress")

	// ErrCompleted is returned by Submit after an account was created and
	// before the form is reset.
	ErrCompleted = errors.New("signup: account already created")

	// ErrStaleAttempt is returned by Resolve for an outcome whose attempt was
	// superseded by a reset or a newer submission.
	ErrStaleAttempt = errors.New("signup: outcome belongs to a superseded attempt")
)

// ValidationError reports required fields that were left empty.
type ValidationError struct {
	Missing []Field
}

func (e *ValidationError) Error() string {
	return MissingFieldsMessage
}

// Detail lists the missing fields, for logs.
func (e *ValidationError) Detail() string {
	names := make([]string, len(e.Missing))
	for i, f := range e.Missing {
		names[i] = f.String()
	}
	return "missing " + strings.Join(names, ", ")
}

// RemoteError is a rejection returned by the account service.
// Message is empty when the service did not provide one.
type RemoteError struct {
	StatusCode int
	Message    string
}

func (e *RemoteError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("signup rejected with status %d", e.StatusCode)
	}
	return e.Message
}

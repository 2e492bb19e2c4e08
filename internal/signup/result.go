package signup

import (
	"encoding/json"
	"errors"
)

// Account is the opaque account data returned by a successful signup.
// User is kept raw so the form never depends on its shape.
type Account struct {
	Token string          `json:"token"`
	User  json.RawMessage `json:"user,omitempty"`
}

// Request is the payload sent to the account service.
type Request struct {
	// Attempt identifies the submission this request belongs to. It must be
	// passed back to Resolve with the outcome.
	Attempt int `json:"-"`

	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Result is the outcome of a signup call: either Success or Failure.
type Result interface {
	isResult()
}

// Success carries the account data of a created account.
type Success struct {
	Account Account
}

// Failure carries the service-provided message, which may be empty.
type Failure struct {
	Message string
}

func (Success) isResult() {}
func (Failure) isResult() {}

// ResultOf converts a service call's return values into a Result.
// A *RemoteError contributes its message; any other error yields a Failure
// with no message so the generic fallback is shown.
func ResultOf(acc Account, err error) Result {
	if err == nil {
		return Success{Account: acc}
	}
	var remote *RemoteError
	if errors.As(err, &remote) {
		return Failure{Message: remote.Message}
	}
	return Failure{}
}

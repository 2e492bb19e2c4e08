package app

import (
	"github.com/henrilemoine/fitpro/internal/signup"
)

// Message types for the bubbletea app.

// SignupResolvedMsg is sent when the account service answers a submission.
type SignupResolvedMsg struct {
	Attempt int
	Result  signup.Result
	// Err is the raw service error, kept for logging.
	Err error
}

// ReloadMsg is sent when the post-signup delay has elapsed.
type ReloadMsg struct {
	Attempt int
}

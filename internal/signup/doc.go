// Package signup implements the registration form controller.
//
// A Form owns the sign-up field values, derives the advisory password
// strength score, validates required fields, and moves through the
// submission state machine (Idle -> Submitting -> Succeeded, with failures
// returning to Idle). It performs no I/O: Submit hands the caller a Request
// to send to the account service, and Resolve applies the outcome, forwarding
// successful accounts to the injected SessionRecorder.
package signup

package signup

import (
	"fmt"
	"time"
)

// DefaultReloadDelay is how long a successful form waits before asking its
// host to reset.
const DefaultReloadDelay = 2 * time.Second

// Field identifies a form input.
type Field int

const (
	FieldName Field = iota
	FieldEmail
	FieldPassword
)

func (f Field) String() string {
	switch f {
	case FieldName:
		return "name"
	case FieldEmail:
		return "email"
	case FieldPassword:
		return "password"
	}
	return fmt.Sprintf("Field(%d)", int(f))
}

// Phase is the submission state.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseSubmitting
	PhaseSucceeded
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseSubmitting:
		return "submitting"
	case PhaseSucceeded:
		return "succeeded"
	}
	return fmt.Sprintf("Phase(%d)", int(p))
}

// FormState is a snapshot of everything the form shows.
type FormState struct {
	Name             string
	Email            string
	Password         string
	PasswordStrength int
	IsSubmitting     bool
	Error            string
	Success          string
}

// SessionRecorder receives the account of a successful signup and makes it
// available to the rest of the application.
type SessionRecorder interface {
	RecordSignup(acc Account) error
}

// EventKind tells the host what to do after an outcome is applied.
type EventKind int

const (
	EventNone EventKind = iota
	// EventReload asks the host to reset the form after Event.After.
	EventReload
)

// Event is returned by Resolve.
type Event struct {
	Kind  EventKind
	After time.Duration
}

// Option configures a Form.
type Option func(*Form)

// WithReloadDelay overrides DefaultReloadDelay.
func WithReloadDelay(d time.Duration) Option {
	return func(f *Form) {
		if d >= 0 {
			f.reloadDelay = d
		}
	}
}

// Form is the registration form controller. It is not safe for concurrent
// use; all calls are expected from the UI event loop.
type Form struct {
	state       FormState
	phase       Phase
	attempt     int
	store       SessionRecorder
	reloadDelay time.Duration
}

// New creates an empty form that records successful signups in store.
func New(store SessionRecorder, opts ...Option) *Form {
	f := &Form{
		store:       store,
		reloadDelay: DefaultReloadDelay,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// State returns the current form state.
func (f *Form) State() FormState {
	return f.state
}

// Phase returns the current submission phase.
func (f *Form) Phase() Phase {
	return f.phase
}

// Attempt returns the number of the latest submission attempt.
func (f *Form) Attempt() int {
	return f.attempt
}

// CanSubmit reports whether a Submit call would be considered.
func (f *Form) CanSubmit() bool {
	return f.phase == PhaseIdle
}

// SetField updates a field value. Name and email are stored as-is;
// password goes through SetPassword so the strength stays current.
func (f *Form) SetField(field Field, value string) error {
	switch field {
	case FieldName:
		f.state.Name = value
	case FieldEmail:
		f.state.Email = value
	case FieldPassword:
		f.SetPassword(value)
	default:
		return fmt.Errorf("signup: unknown field %v", field)
	}
	return nil
}

// SetPassword updates the password and recomputes its strength.
func (f *Form) SetPassword(value string) {
	f.state.Password = value
	f.state.PasswordStrength = Strength(value)
}

// Validate checks that every field is non-empty. On failure it sets the
// form error and returns false. Whitespace counts as a value.
func (f *Form) Validate() bool {
	if err := f.missingFields(); err != nil {
		f.state.Error = err.Error()
		return false
	}
	return true
}

func (f *Form) missingFields() *ValidationError {
	var missing []Field
	if f.state.Name == "" {
		missing = append(missing, FieldName)
	}
	if f.state.Email == "" {
		missing = append(missing, FieldEmail)
	}
	if f.state.Password == "" {
		missing = append(missing, FieldPassword)
	}
	if len(missing) == 0 {
		return nil
	}
	return &ValidationError{Missing: missing}
}

// Submit starts a submission attempt.
//
// It returns ErrSubmitting or ErrCompleted without touching state when the
// form is not idle. Otherwise it clears the previous error and success
// messages and validates; a *ValidationError leaves the form idle. On
// success the form is Submitting and the returned Request must be sent to
// the account service, with the outcome passed to Resolve.
func (f *Form) Submit() (Request, error) {
	switch f.phase {
	case PhaseSubmitting:
		return Request{}, ErrSubmitting
	case PhaseSucceeded:
		return Request{}, ErrCompleted
	}

	f.state.Error = ""
	f.state.Success = ""
	f.state.IsSubmitting = true

	if err := f.missingFields(); err != nil {
		f.state.Error = err.Error()
		f.state.IsSubmitting = false
		return Request{}, err
	}

	f.attempt++
	f.phase = PhaseSubmitting
	return Request{
		Attempt:  f.attempt,
		Name:     f.state.Name,
		Email:    f.state.Email,
		Password: f.state.Password,
	}, nil
}

// Resolve applies the outcome of attempt.
//
// A Success is recorded in the session store and yields an EventReload; a
// Failure sets the error message (falling back to FallbackErrorMessage) and
// returns the form to idle. If the session store fails, the attempt is
// treated as a failure and the store error is returned for logging.
// Outcomes for a superseded attempt are ignored with ErrStaleAttempt.
func (f *Form) Resolve(attempt int, result Result) (Event, error) {
	if f.phase != PhaseSubmitting || attempt != f.attempt {
		return Event{}, ErrStaleAttempt
	}
	f.state.IsSubmitting = false

	switch r := result.(type) {
	case Success:
		if err := f.store.RecordSignup(r.Account); err != nil {
			f.fail("Could not save your session: " + err.Error())
			return Event{}, fmt.Errorf("record session: %w", err)
		}
		f.phase = PhaseSucceeded
		f.state.Error = ""
		f.state.Success = SuccessMessage
		return Event{Kind: EventReload, After: f.reloadDelay}, nil

	case Failure:
		f.fail(r.Message)
		return Event{}, nil

	default:
		f.fail("")
		return Event{}, fmt.Errorf("signup: unexpected result %T", result)
	}
}

func (f *Form) fail(message string) {
	if message == "" {
		message = FallbackErrorMessage
	}
	f.phase = PhaseIdle
	f.state.Success = ""
	f.state.Error = message
}

// Reset clears the form back to its initial state. Any in-flight attempt
// becomes stale.
func (f *Form) Reset() {
	f.state = FormState{}
	f.phase = PhaseIdle
	f.attempt++
}

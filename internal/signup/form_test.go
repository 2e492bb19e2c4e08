package signup

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	accounts []Account
	err      error
}

func (r *recorder) RecordSignup(acc Account) error {
	if r.err != nil {
		return r.err
	}
	r.accounts = append(r.accounts, acc)
	return nil
}

func filledForm(t *testing.T, store SessionRecorder) *Form {
	t.Helper()
	f := New(store)
	require.NoError(t, f.SetField(FieldName, "Jo"))
	require.NoError(t, f.SetField(FieldEmail, "jo@x.com"))
	f.SetPassword("Abcdef1!")
	return f
}

func TestNewForm(t *testing.T) {
	f := New(&recorder{})

	assert.Equal(t, FormState{}, f.State())
	assert.Equal(t, PhaseIdle, f.Phase())
	assert.True(t, f.CanSubmit())
	assert.Equal(t, DefaultReloadDelay, f.reloadDelay)

	f = New(&recorder{}, WithReloadDelay(500*time.Millisecond))
	assert.Equal(t, 500*time.Millisecond, f.reloadDelay)
}

func TestSetField(t *testing.T) {
	f := New(&recorder{})

	require.NoError(t, f.SetField(FieldName, "Jo"))
	require.NoError(t, f.SetField(FieldEmail, "jo@x.com"))
	require.NoError(t, f.SetField(FieldPassword, "Abcdefg"))

	s := f.State()
	assert.Equal(t, "Jo", s.Name)
	assert.Equal(t, "jo@x.com", s.Email)
	assert.Equal(t, "Abcdefg", s.Password)
	assert.Equal(t, 2, s.PasswordStrength)
	assert.Empty(t, s.Error, "setting fields must not validate")

	assert.Error(t, f.SetField(Field(42), "x"))
}

func TestSetPasswordRecomputesStrength(t *testing.T) {
	f := New(&recorder{})

	for _, step := range []struct {
		value string
		want  int
	}{
		{"a", 0},
		{"abcdefg", 1},
		{"Abcdefg", 2},
		{"Abcdefg1!", 3},
		{"", 0},
	} {
		f.SetPassword(step.value)
		assert.Equal(t, step.want, f.State().PasswordStrength, "password %q", step.value)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name, email, password string
		want                  bool
	}{
		{"Jo", "jo@x.com", "pw", true},
		{"", "jo@x.com", "pw", false},
		{"Jo", "", "pw", false},
		{"Jo", "jo@x.com", "", false},
		{"", "", "", false},
		{" ", "not-an-email", "a", true}, // permissive: no trimming or format checks
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%q/%q/%q", tt.name, tt.email, tt.password), func(t *testing.T) {
			f := New(&recorder{})
			_ = f.SetField(FieldName, tt.name)
			_ = f.SetField(FieldEmail, tt.email)
			f.SetPassword(tt.password)

			assert.Equal(t, tt.want, f.Validate())
			if tt.want {
				assert.Empty(t, f.State().Error)
			} else {
				assert.Equal(t, MissingFieldsMessage, f.State().Error)
			}
		})
	}
}

func TestSubmitWithMissingFields(t *testing.T) {
	store := &recorder{}
	f := New(store)
	_ = f.SetField(FieldName, "Jo")
	f.SetPassword("secret")

	req, err := f.Submit()

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []Field{FieldEmail}, verr.Missing)
	assert.Equal(t, "missing email", verr.Detail())
	assert.Equal(t, Request{}, req)

	s := f.State()
	assert.Equal(t, MissingFieldsMessage, s.Error)
	assert.Empty(t, s.Success)
	assert.False(t, s.IsSubmitting)
	assert.Equal(t, PhaseIdle, f.Phase())
	assert.Equal(t, 0, f.Attempt(), "no request may be issued")
}

func TestSubmitClearsPreviousMessages(t *testing.T) {
	f := filledForm(t, &recorder{})
	f.state.Error = "old error"
	f.state.Success = "old success"

	_, err := f.Submit()
	require.NoError(t, err)

	s := f.State()
	assert.Empty(t, s.Error)
	assert.Empty(t, s.Success)
	assert.True(t, s.IsSubmitting)
	assert.Equal(t, PhaseSubmitting, f.Phase())
}

func TestSubmitBuildsRequest(t *testing.T) {
	f := filledForm(t, &recorder{})

	req, err := f.Submit()
	require.NoError(t, err)

	assert.Equal(t, Request{Attempt: 1, Name: "Jo", Email: "jo@x.com", Password: "Abcdef1!"}, req)
}

func TestSubmitSuppressesDuplicates(t *testing.T) {
	f := filledForm(t, &recorder{})

	calls := 0
	for i := 0; i < 3; i++ {
		if _, err := f.Submit(); err == nil {
			calls++
		} else {
			assert.ErrorIs(t, err, ErrSubmitting)
		}
	}

	assert.Equal(t, 1, calls)
	assert.True(t, f.State().IsSubmitting)
}

func TestResolveSuccess(t *testing.T) {
	store := &recorder{}
	f := filledForm(t, store)
	req, err := f.Submit()
	require.NoError(t, err)

	acc := Account{Token: "tok", User: []byte(`{"name":"Jo"}`)}
	ev, err := f.Resolve(req.Attempt, Success{Account: acc})
	require.NoError(t, err)

	assert.Equal(t, Event{Kind: EventReload, After: 2 * time.Second}, ev)
	require.Len(t, store.accounts, 1)
	assert.Equal(t, acc, store.accounts[0])

	s := f.State()
	assert.Equal(t, SuccessMessage, s.Success)
	assert.Empty(t, s.Error)
	assert.False(t, s.IsSubmitting)
	assert.Equal(t, PhaseSucceeded, f.Phase())

	_, err = f.Submit()
	assert.ErrorIs(t, err, ErrCompleted)
	assert.Len(t, store.accounts, 1)
}

func TestResolveFailure(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    string
	}{
		{"service message", "User already exists", "User already exists"},
		{"no message", "", FallbackErrorMessage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &recorder{}
			f := filledForm(t, store)
			req, err := f.Submit()
			require.NoError(t, err)

			ev, err := f.Resolve(req.Attempt, Failure{Message: tt.message})
			require.NoError(t, err)

			assert.Equal(t, EventNone, ev.Kind)
			assert.Empty(t, store.accounts)

			s := f.State()
			assert.Equal(t, tt.want, s.Error)
			assert.Empty(t, s.Success)
			assert.False(t, s.IsSubmitting)
			assert.True(t, f.CanSubmit(), "failure must allow a retry")
		})
	}
}

func TestRetryAfterFailure(t *testing.T) {
	store := &recorder{}
	f := filledForm(t, store)

	req, _ := f.Submit()
	_, _ = f.Resolve(req.Attempt, Failure{Message: "boom"})

	req, err := f.Submit()
	require.NoError(t, err)
	assert.Equal(t, 2, req.Attempt)
	assert.Empty(t, f.State().Error, "retry clears the previous error")

	_, err = f.Resolve(req.Attempt, Success{Account: Account{Token: "t"}})
	require.NoError(t, err)
	assert.Len(t, store.accounts, 1)
}

func TestResolveSessionStoreFailure(t *testing.T) {
	store := &recorder{err: errors.New("disk full")}
	f := filledForm(t, store)
	req, _ := f.Submit()

	ev, err := f.Resolve(req.Attempt, Success{Account: Account{Token: "t"}})
	require.Error(t, err)
	assert.ErrorIs(t, err, store.err)

	assert.Equal(t, EventNone, ev.Kind)
	assert.Equal(t, "Could not save your session: disk full", f.State().Error)
	assert.Empty(t, f.State().Success)
	assert.Equal(t, PhaseIdle, f.Phase())
}

func TestResolveStaleAttempt(t *testing.T) {
	store := &recorder{}
	f := filledForm(t, store)
	req, _ := f.Submit()

	f.Reset()

	_, err := f.Resolve(req.Attempt, Success{Account: Account{Token: "t"}})
	assert.ErrorIs(t, err, ErrStaleAttempt)
	assert.Empty(t, store.accounts)
	assert.Equal(t, FormState{}, f.State())

	// Nothing in flight.
	_, err = f.Resolve(f.Attempt(), Failure{})
	assert.ErrorIs(t, err, ErrStaleAttempt)
}

func TestReset(t *testing.T) {
	f := filledForm(t, &recorder{})
	req, _ := f.Submit()
	_, _ = f.Resolve(req.Attempt, Success{Account: Account{Token: "t"}})

	f.Reset()

	assert.Equal(t, FormState{}, f.State())
	assert.Equal(t, PhaseIdle, f.Phase())
	assert.True(t, f.CanSubmit())
	assert.Greater(t, f.Attempt(), req.Attempt)
}

func TestResultOf(t *testing.T) {
	acc := Account{Token: "t"}
	assert.Equal(t, Success{Account: acc}, ResultOf(acc, nil))

	remote := fmt.Errorf("post: %w", &RemoteError{StatusCode: 409, Message: "User already exists"})
	assert.Equal(t, Failure{Message: "User already exists"}, ResultOf(Account{}, remote))

	assert.Equal(t, Failure{}, ResultOf(Account{}, &RemoteError{StatusCode: 500}))
	assert.Equal(t, Failure{}, ResultOf(Account{}, errors.New("connection refused")))
}

func TestEndToEnd(t *testing.T) {
	store := &recorder{}
	f := New(store)

	_ = f.SetField(FieldName, "Jo")
	_ = f.SetField(FieldEmail, "jo@x.com")
	f.SetPassword("Abcdef1!")
	assert.Equal(t, MaxStrength, f.State().PasswordStrength)

	req, err := f.Submit()
	require.NoError(t, err)

	ev, err := f.Resolve(req.Attempt, ResultOf(Account{Token: "abc"}, nil))
	require.NoError(t, err)

	assert.Equal(t, SuccessMessage, f.State().Success)
	assert.Equal(t, EventReload, ev.Kind)
	assert.Equal(t, 2000*time.Millisecond, ev.After)
	assert.Len(t, store.accounts, 1)
}

package account

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/henrilemoine/fitpro/internal/signup"
)

func TestOfflineSignUp(t *testing.T) {
	svc := NewOffline(0)

	acc, err := svc.SignUp(context.Background(), signup.Request{Name: "Jo", Email: "jo@x.com", Password: "pw"})
	require.NoError(t, err)
	assert.NotEmpty(t, acc.Token)

	var user offlineUser
	require.NoError(t, json.Unmarshal(acc.User, &user))
	assert.Equal(t, "Jo", user.Name)
	assert.Equal(t, "jo@x.com", user.Email)
	assert.NotEmpty(t, user.ID)

	other, err := svc.SignUp(context.Background(), signup.Request{Name: "Al", Email: "al@x.com", Password: "pw"})
	require.NoError(t, err)
	assert.NotEqual(t, acc.Token, other.Token)
}

func TestOfflineRejectsDuplicateEmail(t *testing.T) {
	svc := NewOffline(0)
	_, err := svc.SignUp(context.Background(), signup.Request{Email: "jo@x.com"})
	require.NoError(t, err)

	_, err = svc.SignUp(context.Background(), signup.Request{Email: "JO@x.com"})

	var remote *signup.RemoteError
	require.ErrorAs(t, err, &remote)
	assert.Equal(t, DuplicateEmailMessage, remote.Message)
	assert.Equal(t, signup.Failure{Message: DuplicateEmailMessage}, signup.ResultOf(signup.Account{}, err))
}

func TestOfflineLatencyHonorsContext(t *testing.T) {
	svc := NewOffline(time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.SignUp(ctx, signup.Request{Email: "jo@x.com"})
	assert.ErrorIs(t, err, context.Canceled)

	// A canceled attempt must not reserve the email.
	fast := NewOffline(0)
	fast.emails = svc.emails
	_, err = fast.SignUp(context.Background(), signup.Request{Email: "jo@x.com"})
	assert.NoError(t, err)
}

var _ Service = (*Client)(nil)
var _ Service = (*Offline)(nil)

package account

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/henrilemoine/fitpro/internal/signup"
)

// DuplicateEmailMessage is returned by Offline for an email it has seen.
const DuplicateEmailMessage = "User already exists"

// Offline is an in-memory account service.
type Offline struct {
	latency time.Duration

	mu     sync.Mutex
	emails map[string]bool
}

// NewOffline creates an in-memory service that answers after latency.
func NewOffline(latency time.Duration) *Offline {
	return &Offline{
		latency: latency,
		emails:  make(map[string]bool),
	}
}

type offlineUser struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// SignUp registers the email, rejecting duplicates case-insensitively.
func (o *Offline) SignUp(ctx context.Context, req signup.Request) (signup.Account, error) {
	if o.latency > 0 {
		timer := time.NewTimer(o.latency)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-ctx.Done():
			return signup.Account{}, ctx.Err()
		}
	}

	key := strings.ToLower(req.Email)

	o.mu.Lock()
	defer o.mu.Unlock()

	if o.emails[key] {
		return signup.Account{}, &signup.RemoteError{StatusCode: http.StatusConflict, Message: DuplicateEmailMessage}
	}

	user, err := json.Marshal(offlineUser{
		ID:    uuid.NewString(),
		Name:  req.Name,
		Email: req.Email,
	})
	if err != nil {
		return signup.Account{}, err
	}

	o.emails[key] = true
	return signup.Account{Token: uuid.NewString(), User: user}, nil
}

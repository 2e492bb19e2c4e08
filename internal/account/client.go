package account

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/henrilemoine/fitpro/internal/debug"
	"github.com/henrilemoine/fitpro/internal/signup"
)

// SignUpPath is the endpoint that creates an account.
const SignUpPath = "/user/signup"

// maxResponseSize bounds how much of a response body is read.
const maxResponseSize = 1 << 20

// Service creates accounts.
type Service interface {
	SignUp(ctx context.Context, req signup.Request) (signup.Account, error)
}

// Client is the HTTP account service client.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a client for the service at baseURL.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// errorBody is the optional error payload of a rejected signup.
type errorBody struct {
	Message string `json:"message"`
}

// SignUp posts the request and decodes the created account.
// Non-2xx responses become *signup.RemoteError.
func (c *Client) SignUp(ctx context.Context, req signup.Request) (signup.Account, error) {
	defer debug.Timed("account signup")()

	body, err := json.Marshal(req)
	if err != nil {
		return signup.Account{}, fmt.Errorf("encode signup request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+SignUpPath, bytes.NewReader(body))
	if err != nil {
		return signup.Account{}, fmt.Errorf("create signup request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return signup.Account{}, fmt.Errorf("signup request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return signup.Account{}, fmt.Errorf("read signup response: %w", err)
	}

	debug.Log("signup response", "status", resp.StatusCode, "bytes", len(data))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var e errorBody
		// A body that is not JSON still counts as a rejection, just without a message.
		_ = json.Unmarshal(data, &e)
		return signup.Account{}, &signup.RemoteError{StatusCode: resp.StatusCode, Message: e.Message}
	}

	var acc signup.Account
	if err := json.Unmarshal(data, &acc); err != nil {
		return signup.Account{}, fmt.Errorf("decode signup response: %w", err)
	}
	return acc, nil
}

// Package identity wraps the external identity-provider session
// exchange so callers depend on an interface and tests can substitute
// a double.
package identity

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Profile is what the provider returns for a valid session id.
type Profile struct {
	Email        string `json:"email"`
	Name         string `json:"name"`
	Picture      string `json:"picture"`
	SessionToken string `json:"session_token"`
}

type Exchanger interface {
	Exchange(ctx context.Context, sessionID string) (*Profile, error)
}

// HTTPExchanger calls the provider's session-data endpoint. Failures of
// any kind (transport, non-2xx, bad body) come back as plain errors;
// the auth layer maps them to a bad-request response.
type HTTPExchanger struct {
	url    string
	client *http.Client
}

func NewHTTPExchanger(url string, timeout time.Duration) *HTTPExchanger {
	return &HTTPExchanger{
		url:    url,
		client: &http.Client{Timeout: timeout},
	}
}

func (e *HTTPExchanger) Exchange(ctx context.Context, sessionID string) (*Profile, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("X-Session-ID", sessionID)

	resp, err := e.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("identity exchange returned status %d", resp.StatusCode)
	}

	var profile Profile
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

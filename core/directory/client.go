package directory

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"request-portal/core/identity"
)

// Profile is whatever the directory endpoint returns. The shape is not
// ours to define; callers must tolerate any field being absent.
type Profile map[string]any

func (p Profile) GetString(key string) string {
	if p == nil {
		return ""
	}
	if v, ok := p[key].(string); ok {
		return v
	}
	return ""
}

type Client struct {
	client     *http.Client
	profileURL string
	tokens     identity.TokenProvider
}

func NewClient(profileURL string, timeout time.Duration, tokens identity.TokenProvider) *Client {
	if tokens == nil {
		tokens = identity.StaticTokenProvider{}
	}
	return &Client{
		client:     &http.Client{Timeout: timeout},
		profileURL: profileURL,
		tokens:     tokens,
	}
}

// FetchProfile exchanges the principal for a fresh token and reads the
// directory profile. Failures here are cosmetic; callers log and move on.
func (c *Client) FetchProfile(ctx context.Context, p identity.Principal) (Profile, error) {
	if strings.TrimSpace(c.profileURL) == "" {
		return nil, errors.New("directory profile url not configured")
	}
	token, err := c.tokens.Token(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("acquire token: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.profileURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("directory status %d", resp.StatusCode)
	}
	var profile Profile
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return nil, err
	}
	return profile, nil
}

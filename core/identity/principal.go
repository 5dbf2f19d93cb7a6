package identity

import (
	"context"
	"errors"
	"strings"
)

// Principal is the already-authenticated identity handed over by the
// upstream identity collaborator. It is read-only for the lifetime of a
// portal session and never persisted.
type Principal struct {
	DisplayName     string
	LoginIdentifier string
	AccessToken     string
}

func (p Principal) Valid() bool {
	return strings.TrimSpace(p.LoginIdentifier) != ""
}

// TokenProvider exchanges a principal for a fresh short-lived bearer token
// without user interaction. The directory profile fetch uses it so a stale
// AccessToken on the principal does not break the (cosmetic) profile load.
type TokenProvider interface {
	Token(ctx context.Context, p Principal) (string, error)
}

// StaticTokenProvider hands back the token the principal arrived with.
// Used when the upstream collaborator already refreshed it.
type StaticTokenProvider struct{}

func (StaticTokenProvider) Token(_ context.Context, p Principal) (string, error) {
	if strings.TrimSpace(p.AccessToken) == "" {
		return "", errors.New("principal carries no access token")
	}
	return p.AccessToken, nil
}

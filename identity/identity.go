// Package identity turns a bearer credential into a Principal. The only
// implementation today is a placeholder; a real identity provider plugs in by
// implementing Verifier.
package identity

import (
	"context"
	"errors"
)

// ErrEmptyToken is returned when there is no credential to verify.
var ErrEmptyToken = errors.New("empty bearer token")

// Principal is the caller as seen by handlers.
type Principal struct {
	UID   string `json:"uid"`
	Email string `json:"email"`
}

// Verifier resolves a bearer token to a Principal.
type Verifier interface {
	Verify(ctx context.Context, token string) (Principal, error)
}

// PlaceholderPrincipal is what Placeholder returns for every token.
var PlaceholderPrincipal = Principal{UID: "dummy-user-id", Email: "user@example.com"}

// Placeholder accepts any non-empty token without looking at it. ProjectID and
// APIKey are the identity-provider settings a real verifier would need.
type Placeholder struct {
	ProjectID string
	APIKey    string
}

// NewPlaceholder keeps the provider settings for a future real verifier.
func NewPlaceholder(projectID, apiKey string) *Placeholder {
	return &Placeholder{ProjectID: projectID, APIKey: apiKey}
}

// Verify accepts any non-empty token as PlaceholderPrincipal.
func (p *Placeholder) Verify(_ context.Context, token string) (Principal, error) {
	if token == "" {
		return Principal{}, ErrEmptyToken
	}
	return PlaceholderPrincipal, nil
}

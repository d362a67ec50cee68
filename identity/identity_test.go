package identity

import (
	"context"
	"errors"
	"testing"
)

func TestPlaceholderIgnoresTokenContent(t *testing.T) {
	v := NewPlaceholder("proj", "key")
	for _, token := range []string{"abc", "not-a-jwt", "eyJhbGciOiJIUzI1NiJ9.e30.x"} {
		p, err := v.Verify(context.Background(), token)
		if err != nil {
			t.Fatalf("Verify(%q): %v", token, err)
		}
		if p != PlaceholderPrincipal {
			t.Errorf("Expected placeholder principal, got %+v", p)
		}
	}
}

func TestPlaceholderRejectsEmptyToken(t *testing.T) {
	_, err := NewPlaceholder("", "").Verify(context.Background(), "")
	if !errors.Is(err, ErrEmptyToken) {
		t.Errorf("Expected ErrEmptyToken, got %v", err)
	}
}

package util

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestJWTManagerGenerateAndParse(t *testing.T) {
	ttl := time.Minute
	manager := NewJWTManager("top-secret", ttl)

	userID := uuid.New()
	token, expiresAt, err := manager.Generate(userID, "John", "Doe", "johndoe", "Guest")
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token to be non-empty")
	}
	if expiresAt.Before(time.Now()) {
		t.Fatalf("expected expiry in the future")
	}

	claims, err := manager.Parse(token)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if claims.UserID != userID {
		t.Fatalf("expected user id %s, got %s", userID, claims.UserID)
	}
	if claims.Username != "johndoe" {
		t.Fatalf("expected username claim to be set, got %q", claims.Username)
	}
	if claims.FirstName != "John" || claims.LastName != "Doe" {
		t.Fatalf("expected name claims to round-trip, got %q %q", claims.FirstName, claims.LastName)
	}
	if claims.Role != "Guest" {
		t.Fatalf("expected role claim Guest, got %q", claims.Role)
	}
}

func TestJWTManagerParseExpiredToken(t *testing.T) {
	manager := NewJWTManager("secret", time.Millisecond)
	userID := uuid.New()
	token, _, err := manager.Generate(userID, "", "", "", "")
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	time.Sleep(2 * time.Millisecond)

	if _, err := manager.Parse(token); err == nil {
		t.Fatalf("expected parse error for expired token")
	}
}

func TestJWTManagerRejectsForeignSignature(t *testing.T) {
	issuer := NewJWTManager("issuer-secret", time.Minute)
	verifier := NewJWTManager("other-secret", time.Minute)

	token, _, err := issuer.Generate(uuid.New(), "John", "Doe", "johndoe", "Guest")
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if _, err := verifier.Parse(token); err == nil {
		t.Fatalf("expected parse error for token signed with another secret")
	}
}

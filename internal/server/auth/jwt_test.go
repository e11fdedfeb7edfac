package auth

import (
	"testing"
	"time"
)

func TestGenerateAndParse_Success(t *testing.T) {
	t.Parallel()

	secret := []byte("super-secret")

	tok, err := GenerateToken("Alice Smith", "admin", "acc-123", secret, time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	claims, err := ParseClaims(tok, secret)
	if err != nil {
		t.Fatalf("ParseClaims error: %v", err)
	}
	if claims.Name != "Alice Smith" || claims.Role != "admin" || claims.AccountID != "acc-123" {
		t.Fatalf("claims mismatch: %+v", claims)
	}
}

func TestGenerateToken_ExpirySetFromValidity(t *testing.T) {
	t.Parallel()

	secret := []byte("k")
	validity := 14 * 24 * time.Hour

	before := time.Now()
	tok, err := GenerateToken("n", "user", "a1", secret, validity)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}
	after := time.Now()

	claims, err := ParseClaims(tok, secret)
	if err != nil {
		t.Fatalf("ParseClaims error: %v", err)
	}

	exp := claims.ExpiresAt.Time
	// Numeric dates are truncated to whole seconds, so allow that slack.
	if exp.Before(before.Add(validity).Add(-2*time.Second)) || exp.After(after.Add(validity).Add(2*time.Second)) {
		t.Fatalf("expiry %v not within expected window around now+%v", exp, validity)
	}
}

func TestParseClaims_Expired(t *testing.T) {
	t.Parallel()

	secret := []byte("secret")

	tok, err := GenerateToken("n", "user", "u1", secret, -1*time.Second)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	if _, err = ParseClaims(tok, secret); err == nil {
		t.Fatalf("expected error for expired token, got nil")
	}
}

func TestParseClaims_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := GenerateToken("n", "user", "u2", []byte("right-secret"), time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	if _, err = ParseClaims(tok, []byte("wrong-secret")); err == nil {
		t.Fatalf("expected error for invalid signature, got nil")
	}
}

func TestParseClaims_MalformedString(t *testing.T) {
	t.Parallel()

	if _, err := ParseClaims("not.a.jwt", []byte("k")); err == nil {
		t.Fatalf("expected error for malformed token, got nil")
	}
}

package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/bloghive/blog-platform/internal/core/domain"
)

func newTestService() *JWTService {
	svc, err := NewJWTService("access-secret", "reset-secret")
	if err != nil {
		panic(err)
	}
	return svc
}

func TestJWTService_DistinctSecretsRequired(t *testing.T) {
	if _, err := NewJWTService("", "reset"); err == nil {
		t.Fatalf("expected error for empty access secret")
	}
	if _, err := NewJWTService("same", "same"); err == nil {
		t.Fatalf("expected error for identical secrets")
	}
}

func TestJWTService_AccessRoundTrip(t *testing.T) {
	svc := newTestService()

	token, err := svc.IssueAccess("alice")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if token == "" {
		t.Fatalf("expected non-empty token")
	}

	username, err := svc.VerifyAccess(token)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if username != "alice" {
		t.Fatalf("expected alice, got %q", username)
	}
}

func TestJWTService_ResetRoundTrip(t *testing.T) {
	svc := newTestService()

	token, err := svc.IssueReset("a@x.com")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	email, err := svc.VerifyReset(token)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if email != "a@x.com" {
		t.Fatalf("expected a@x.com, got %q", email)
	}
}

func TestJWTService_CrossPurposeFails(t *testing.T) {
	svc := newTestService()

	accessToken, _ := svc.IssueAccess("alice")
	resetToken, _ := svc.IssueReset("a@x.com")

	if _, err := svc.VerifyReset(accessToken); !errors.Is(err, domain.ErrTokenInvalid) {
		t.Fatalf("access token against reset secret: expected ErrTokenInvalid, got %v", err)
	}
	if _, err := svc.VerifyAccess(resetToken); !errors.Is(err, domain.ErrTokenInvalid) {
		t.Fatalf("reset token against access secret: expected ErrTokenInvalid, got %v", err)
	}
}

func TestJWTService_MalformedToken(t *testing.T) {
	svc := newTestService()

	for _, token := range []string{"", "not-a-token", "a.b.c"} {
		if _, err := svc.VerifyAccess(token); !errors.Is(err, domain.ErrTokenInvalid) {
			t.Fatalf("token %q: expected ErrTokenInvalid, got %v", token, err)
		}
	}
}

func TestJWTService_Expiry(t *testing.T) {
	svc := &JWTService{
		accessSecret: "access-secret",
		resetSecret:  "reset-secret",
		accessTTL:    -time.Minute,
		resetTTL:     2 * time.Second,
	}

	expired, err := svc.IssueAccess("alice")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if _, err := svc.VerifyAccess(expired); !errors.Is(err, domain.ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}

	// A token still inside its ttl verifies fine.
	fresh, err := svc.IssueReset("a@x.com")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if _, err := svc.VerifyReset(fresh); err != nil {
		t.Fatalf("fresh token rejected: %v", err)
	}
}

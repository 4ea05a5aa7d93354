package auth

import (
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/hireboard/recruitment-service/internal/domain"
)

func TestPasswordRoundTrip(t *testing.T) {
	hash, err := HashPassword("s3cret", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if hash == "s3cret" {
		t.Fatal("plaintext stored")
	}
	if err := ComparePassword(hash, "s3cret"); err != nil {
		t.Fatalf("compare: %v", err)
	}
	if err := ComparePassword(hash, "wrong"); err == nil {
		t.Fatal("expected mismatch")
	}
}

func TestTokenRoundTrip(t *testing.T) {
	tm := NewTokenManager("secret", time.Minute)
	token, expiresAt, err := tm.GenerateToken(42, domain.RoleRecruiter, "sess-1")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if time.Until(expiresAt) <= 0 {
		t.Fatal("expected future expiry")
	}
	claims, err := tm.ParseToken(token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.UserID != 42 || claims.Role != domain.RoleRecruiter || claims.SessionID != "sess-1" {
		t.Fatalf("unexpected claims %+v", claims)
	}
}

func TestTokenRejectsForeignSecret(t *testing.T) {
	token, _, err := NewTokenManager("one", time.Minute).GenerateToken(1, domain.RoleAdmin, "s")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if _, err := NewTokenManager("two", time.Minute).ParseToken(token); err == nil {
		t.Fatal("expected signature failure")
	}
}

func TestTokenRejectsExpired(t *testing.T) {
	tm := NewTokenManager("secret", time.Minute)
	tm.ttl = -time.Minute
	token, _, err := tm.GenerateToken(1, domain.RoleApplicant, "s")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if _, err := tm.ParseToken(token); err == nil {
		t.Fatal("expected expiry failure")
	}
}

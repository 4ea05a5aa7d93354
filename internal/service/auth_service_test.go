package service

import (
	"context"
	"testing"

	"github.com/hireboard/recruitment-service/internal/domain"
)

func TestRegisterThenAuthenticate(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	for _, role := range domain.Roles {
		creds := Credentials{Username: "user-" + string(role), Password: "secret", Role: role}
		registered, err := h.auth.Register(ctx, creds)
		if err != nil {
			t.Fatalf("register %s: %v", role, err)
		}
		if registered.PasswordHash == "secret" {
			t.Fatal("plaintext password stored")
		}
		user, err := h.auth.Authenticate(ctx, creds)
		if err != nil {
			t.Fatalf("authenticate %s: %v", role, err)
		}
		if user.Role != role {
			t.Fatalf("expected role %s, got %s", role, user.Role)
		}
	}
}

func TestAuthenticateFailuresAreUniform(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	if _, err := h.auth.Register(ctx, Credentials{Username: "sam", Password: "secret", Role: domain.RoleRecruiter}); err != nil {
		t.Fatalf("register: %v", err)
	}

	attempts := []Credentials{
		{Username: "sam", Password: "wrong", Role: domain.RoleRecruiter},
		{Username: "sam", Password: "secret", Role: domain.RoleApplicant},
		{Username: "nobody", Password: "secret", Role: domain.RoleRecruiter},
	}
	var messages []string
	for _, creds := range attempts {
		_, err := h.auth.Authenticate(ctx, creds)
		if errorCode(err) != "UNAUTHORIZED" {
			t.Fatalf("expected UNAUTHORIZED for %+v, got %v", creds, err)
		}
		messages = append(messages, err.Error())
	}
	for _, m := range messages[1:] {
		if m != messages[0] {
			t.Fatalf("failure messages differ: %q vs %q", m, messages[0])
		}
	}
}

func TestRegisterRejectsDuplicateUsername(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	creds := Credentials{Username: "sam", Password: "secret", Role: domain.RoleApplicant}
	if _, err := h.auth.Register(ctx, creds); err != nil {
		t.Fatalf("register: %v", err)
	}
	creds.Role = domain.RoleAdmin
	if _, err := h.auth.Register(ctx, creds); errorCode(err) != "DUPLICATE_USERNAME" {
		t.Fatalf("expected DUPLICATE_USERNAME, got %v", err)
	}
}

func TestRegisterValidatesInput(t *testing.T) {
	h := newHarness(t)
	_, err := h.auth.Register(context.Background(), Credentials{Username: " ", Password: "", Role: "manager"})
	if errorCode(err) != "VALIDATION_FAILED" {
		t.Fatalf("expected VALIDATION_FAILED, got %v", err)
	}
	users, _ := h.store.Users().List(context.Background())
	if len(users) != 0 {
		t.Fatalf("expected nothing written, got %d users", len(users))
	}
}

func TestLogoutRevokesSession(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	sess := h.login(t, "andy", domain.RoleApplicant)

	if _, err := h.sessions.Get(ctx, sess.ID); err != nil {
		t.Fatalf("session should exist: %v", err)
	}
	if err := h.auth.Logout(ctx, sess.ID); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if _, err := h.sessions.Get(ctx, sess.ID); err == nil {
		t.Fatal("session should be gone after logout")
	}
}

func TestLoginIssuesTokenBoundToSession(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	creds := Credentials{Username: "rita", Password: "pw", Role: domain.RoleRecruiter}
	if _, err := h.auth.Register(ctx, creds); err != nil {
		t.Fatalf("register: %v", err)
	}
	result, err := h.auth.Login(ctx, creds)
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	claims, err := h.auth.TokenManager().ParseToken(result.Token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.SessionID != result.Session.ID || claims.UserID != result.User.ID {
		t.Fatalf("token not bound to session: %+v", claims)
	}
}

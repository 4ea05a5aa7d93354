package errorutil

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/puddle/v2"
)

func TestToDomainErrorMapping(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		code   string
		status int
	}{
		{"no rows", fmt.Errorf("load: %w", pgx.ErrNoRows), "NOT_FOUND", http.StatusNotFound},
		{"unique", &pgconn.PgError{Code: "23505"}, "CONFLICT", http.StatusConflict},
		{"foreign key", &pgconn.PgError{Code: "23503"}, "INTEGRITY_VIOLATION", http.StatusConflict},
		{"closed pool", fmt.Errorf("acquire: %w", puddle.ErrClosedPool), "CONNECTION_FAILURE", http.StatusServiceUnavailable},
		{"domain passthrough", NewForbidden("nope"), "FORBIDDEN", http.StatusForbidden},
		{"unknown", errors.New("boom"), "INTERNAL_ERROR", http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ToDomainError(tc.err)
			if got.Code != tc.code || got.HTTPStatus != tc.status {
				t.Fatalf("expected %s/%d, got %s/%d", tc.code, tc.status, got.Code, got.HTTPStatus)
			}
		})
	}
	if ToDomainError(nil) != nil {
		t.Fatal("nil error should stay nil")
	}
}

func TestFromValidationCollectsFields(t *testing.T) {
	input := struct {
		Name  string `json:"name"`
		Email string `json:"email"`
	}{}
	err := validation.ValidateStruct(&input,
		validation.Field(&input.Name, validation.Required),
		validation.Field(&input.Email, validation.Required),
	)
	domainErr := ToDomainError(FromValidation("bad input", err))
	if domainErr.Code != "VALIDATION_FAILED" {
		t.Fatalf("unexpected code %s", domainErr.Code)
	}
	if _, ok := domainErr.Details["name"]; !ok {
		t.Fatalf("missing name detail: %+v", domainErr.Details)
	}
	if _, ok := domainErr.Details["email"]; !ok {
		t.Fatalf("missing email detail: %+v", domainErr.Details)
	}
	if FromValidation("ok", nil) != nil {
		t.Fatal("nil validation error should stay nil")
	}
}

package jwt

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestGenerateAndValidate(t *testing.T) {
	svc := NewService("test-secret", time.Hour)
	adminID := uuid.New()

	token, err := svc.Generate(adminID, "admin@example.com")
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	claims, err := svc.Validate(token)
	if err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if claims.AdminID != adminID {
		t.Fatalf("AdminID = %v, want %v", claims.AdminID, adminID)
	}
	if claims.Email != "admin@example.com" {
		t.Fatalf("Email = %q", claims.Email)
	}
}

func TestValidateRejectsWrongSecret(t *testing.T) {
	token, err := NewService("secret-a", time.Hour).Generate(uuid.New(), "a@b.c")
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	_, err = NewService("secret-b", time.Hour).Validate(token)
	if !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("Validate() error = %v, want ErrInvalidToken", err)
	}
}

func TestValidateRejectsExpired(t *testing.T) {
	svc := NewService("test-secret", -time.Minute)
	token, err := svc.Generate(uuid.New(), "a@b.c")
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	_, err = svc.Validate(token)
	if !errors.Is(err, ErrExpiredToken) {
		t.Fatalf("Validate() error = %v, want ErrExpiredToken", err)
	}
}

func TestValidateRejectsGarbage(t *testing.T) {
	svc := NewService("test-secret", time.Hour)
	for _, tok := range []string{"", "not.a.token", "aaaa"} {
		if _, err := svc.Validate(tok); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("Validate(%q) error = %v, want ErrInvalidToken", tok, err)
		}
	}
}

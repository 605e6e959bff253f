package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/artfoliopro/portfolio-api/internal/core/domain"
	"github.com/artfoliopro/portfolio-api/internal/core/ports"
)

func TestAuthService_Register_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, "secret", time.Hour)

	token, user, err := svc.Register(context.Background(), ports.RegisterInput{
		Email:       "Alice@Example.com",
		Password:    "pass123",
		DisplayName: "Alice",
		Role:        domain.RoleArtist,
	})
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token, got empty")
	}
	if user.Email != "alice@example.com" {
		t.Fatalf("expected lowercased email, got %q", user.Email)
	}
	if user.PasswordHash == "pass123" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("pass123")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
}

func TestAuthService_Register_Validation(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, "secret", time.Hour)

	cases := []ports.RegisterInput{
		{Email: "", Password: "pass123", DisplayName: "x", Role: domain.RoleClient},
		{Email: "a@b.com", Password: "short", DisplayName: "x", Role: domain.RoleClient},
		{Email: "a@b.com", Password: "pass123", DisplayName: "", Role: domain.RoleClient},
		{Email: "a@b.com", Password: "pass123", DisplayName: "x", Role: "admin"},
	}
	for _, input := range cases {
		if _, _, err := svc.Register(context.Background(), input); !errors.Is(err, domain.ErrInvalidCredentials) {
			t.Fatalf("input %+v: expected ErrInvalidCredentials, got %v", input, err)
		}
	}
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, "secret", time.Hour)

	input := ports.RegisterInput{Email: "bob@example.com", Password: "pass123", DisplayName: "Bob", Role: domain.RoleClient}
	if _, _, err := svc.Register(context.Background(), input); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	if _, _, err := svc.Register(context.Background(), input); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, "secret", time.Hour)

	_, registered, err := svc.Register(context.Background(), ports.RegisterInput{
		Email: "carol@example.com", Password: "s3cret1", DisplayName: "Carol", Role: domain.RoleArtist,
	})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	token, user, err := svc.Login(context.Background(), "carol@example.com", "s3cret1")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if user.ID != registered.ID {
		t.Fatalf("unexpected user: %+v", user)
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token invalid: %v", err)
	}
	if claims["user_id"] != registered.ID {
		t.Fatalf("expected user_id claim %q, got %v", registered.ID, claims["user_id"])
	}
	if claims["role"] != domain.RoleArtist {
		t.Fatalf("expected role claim artist, got %v", claims["role"])
	}
	if _, ok := claims["exp"]; !ok {
		t.Fatalf("expected exp claim")
	}
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, "secret", time.Hour)

	// An unknown address must be indistinguishable from a bad password.
	if _, _, err := svc.Login(context.Background(), "nobody@example.com", "whatever"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, "secret", time.Hour)

	_, _, err := svc.Register(context.Background(), ports.RegisterInput{
		Email: "dave@example.com", Password: "correct1", DisplayName: "Dave", Role: domain.RoleClient,
	})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	if _, _, err := svc.Login(context.Background(), "dave@example.com", "wrong"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_UpdatesLastLogin(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, "secret", time.Hour)

	_, registered, err := svc.Register(context.Background(), ports.RegisterInput{
		Email: "erin@example.com", Password: "pass123", DisplayName: "Erin", Role: domain.RoleClient,
	})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	before := repo.users[registered.ID].LastLogin
	time.Sleep(5 * time.Millisecond)

	if _, _, err := svc.Login(context.Background(), "erin@example.com", "pass123"); err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if !repo.users[registered.ID].LastLogin.After(before) {
		t.Fatalf("expected last login to advance")
	}
}

func TestAuthService_Validate(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, "secret", time.Hour)

	_, registered, err := svc.Register(context.Background(), ports.RegisterInput{
		Email: "fay@example.com", Password: "pass123", DisplayName: "Fay", Role: domain.RoleArtist,
	})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	user, err := svc.Validate(context.Background(), registered.ID)
	if err != nil {
		t.Fatalf("validate failed: %v", err)
	}
	if user.ID != registered.ID {
		t.Fatalf("unexpected user: %+v", user)
	}

	if _, err := svc.Validate(context.Background(), "missing"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"promoadmin/internal/domain"

	"golang.org/x/crypto/bcrypt"
)

type mockSessionRepo struct {
	createFn        func(ctx context.Context, token, issuedVia string, expiresAt time.Time) error
	getByTokenFn    func(ctx context.Context, token string) (*domain.Session, error)
	deleteFn        func(ctx context.Context, token string) error
	deleteExpiredFn func(ctx context.Context) error
}

func (m *mockSessionRepo) Create(ctx context.Context, token, issuedVia string, expiresAt time.Time) error {
	if m.createFn != nil {
		return m.createFn(ctx, token, issuedVia, expiresAt)
	}
	return nil
}

func (m *mockSessionRepo) GetByToken(ctx context.Context, token string) (*domain.Session, error) {
	if m.getByTokenFn != nil {
		return m.getByTokenFn(ctx, token)
	}
	return nil, errors.New("not found")
}

func (m *mockSessionRepo) Delete(ctx context.Context, token string) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, token)
	}
	return nil
}

func (m *mockSessionRepo) DeleteExpired(ctx context.Context) error {
	if m.deleteExpiredFn != nil {
		return m.deleteExpiredFn(ctx)
	}
	return nil
}

func TestAuthService_Login_Success(t *testing.T) {
	ctx := context.Background()

	sessions := &mockSessionRepo{
		createFn: func(ctx context.Context, token, issuedVia string, expiresAt time.Time) error {
			if token == "" {
				t.Error("token should not be empty")
			}
			if issuedVia != "password" {
				t.Errorf("expected issued_via 'password', got %q", issuedVia)
			}
			if until := time.Until(expiresAt); until < 23*time.Hour || until > 25*time.Hour {
				t.Errorf("expected ~24h expiry, got %v", until)
			}
			return nil
		},
	}

	svc := NewAuthService("opensesame", "", sessions, 24*time.Hour)
	token, err := svc.Login(ctx, "opensesame")

	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if token == "" {
		t.Error("expected token, got empty string")
	}
}

func TestAuthService_Login_WrongSecret(t *testing.T) {
	ctx := context.Background()

	created := false
	sessions := &mockSessionRepo{
		createFn: func(ctx context.Context, token, issuedVia string, expiresAt time.Time) error {
			created = true
			return nil
		},
	}

	svc := NewAuthService("opensesame", "", sessions, 24*time.Hour)
	_, err := svc.Login(ctx, "wrong")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
	if created {
		t.Error("no session may be created for a wrong secret")
	}
}

func TestAuthService_Login_BcryptHash(t *testing.T) {
	ctx := context.Background()
	hash, _ := bcrypt.GenerateFromPassword([]byte("opensesame"), bcrypt.DefaultCost)

	svc := NewAuthService("", string(hash), &mockSessionRepo{}, 24*time.Hour)

	if _, err := svc.Login(ctx, "opensesame"); err != nil {
		t.Fatalf("expected hash match, got %v", err)
	}
	if _, err := svc.Login(ctx, "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_NoSecretConfigured(t *testing.T) {
	svc := NewAuthService("", "", &mockSessionRepo{}, 24*time.Hour)
	if _, err := svc.Login(context.Background(), ""); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("empty configured secret must never verify, got %v", err)
	}
}

func TestAuthService_ValidateSession_Valid(t *testing.T) {
	ctx := context.Background()

	sessions := &mockSessionRepo{
		getByTokenFn: func(ctx context.Context, token string) (*domain.Session, error) {
			return &domain.Session{
				Token:     token,
				IssuedVia: "password",
				ExpiresAt: time.Now().Add(1 * time.Hour),
			}, nil
		},
	}

	svc := NewAuthService("x", "", sessions, 24*time.Hour)
	if err := svc.ValidateSession(ctx, "validtoken"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

func TestAuthService_ValidateSession_Expired(t *testing.T) {
	ctx := context.Background()

	deleted := false
	sessions := &mockSessionRepo{
		getByTokenFn: func(ctx context.Context, token string) (*domain.Session, error) {
			return &domain.Session{
				Token:     token,
				ExpiresAt: time.Now().Add(-1 * time.Hour),
			}, nil
		},
		deleteFn: func(ctx context.Context, token string) error {
			deleted = true
			return nil
		},
	}

	svc := NewAuthService("x", "", sessions, 24*time.Hour)
	if err := svc.ValidateSession(ctx, "expiredtoken"); !errors.Is(err, ErrSessionExpired) {
		t.Errorf("expected ErrSessionExpired, got %v", err)
	}
	if !deleted {
		t.Error("expected expired session to be deleted")
	}
}

func TestAuthService_ValidateSession_Missing(t *testing.T) {
	ctx := context.Background()

	sessions := &mockSessionRepo{
		getByTokenFn: func(ctx context.Context, token string) (*domain.Session, error) {
			return nil, nil
		},
	}

	svc := NewAuthService("x", "", sessions, 24*time.Hour)
	if err := svc.ValidateSession(ctx, "unknown"); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("expected ErrSessionNotFound, got %v", err)
	}
	if err := svc.ValidateSession(ctx, ""); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("expected ErrSessionNotFound for empty token, got %v", err)
	}
}

func TestAuthService_Logout(t *testing.T) {
	ctx := context.Background()

	var deletedToken string
	sessions := &mockSessionRepo{
		deleteFn: func(ctx context.Context, token string) error {
			deletedToken = token
			return nil
		},
	}

	svc := NewAuthService("x", "", sessions, 24*time.Hour)
	if err := svc.Logout(ctx, "tok"); err != nil {
		t.Fatalf("Logout: %v", err)
	}
	if deletedToken != "tok" {
		t.Errorf("expected 'tok' deleted, got %q", deletedToken)
	}
}

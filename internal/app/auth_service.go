// Package app holds the application services and business logic.
package app

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"time"

	"promoadmin/internal/domain"

	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrInvalidCredentials indicates that the submitted secret was wrong.
	// The message is deliberately generic.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrSessionNotFound indicates that the requested session does not exist.
	ErrSessionNotFound = errors.New("session not found")
	// ErrSessionExpired indicates that the session has expired.
	ErrSessionExpired = errors.New("session expired")
)

// AuthService verifies the shared operator credential and manages sessions.
type AuthService struct {
	secret     string
	secretHash string
	sessions   domain.SessionRepository
	ttl        time.Duration
}

// NewAuthService creates an authentication service. Either secret or
// secretHash (a bcrypt hash) must be non-empty; when both are set the hash
// wins.
func NewAuthService(secret, secretHash string, sessions domain.SessionRepository, ttl time.Duration) *AuthService {
	return &AuthService{
		secret:     secret,
		secretHash: secretHash,
		sessions:   sessions,
		ttl:        ttl,
	}
}

// Login verifies the submitted secret and creates a session on success.
func (s *AuthService) Login(ctx context.Context, password string) (string, error) {
	if !s.verify(password) {
		return "", ErrInvalidCredentials
	}
	return s.issue(ctx, "password")
}

// LoginSSO creates a session for an operator already authenticated by the
// identity provider. The caller is responsible for having verified the ID
// token first.
func (s *AuthService) LoginSSO(ctx context.Context) (string, error) {
	return s.issue(ctx, "sso")
}

// Logout invalidates a session. Unknown tokens are not an error.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	return s.sessions.Delete(ctx, token)
}

// ValidateSession checks that a session token exists and has not expired.
// Expired sessions are deleted on sight.
func (s *AuthService) ValidateSession(ctx context.Context, token string) error {
	if token == "" {
		return ErrSessionNotFound
	}
	session, err := s.sessions.GetByToken(ctx, token)
	if err != nil || session == nil {
		return ErrSessionNotFound
	}
	if time.Now().After(session.ExpiresAt) {
		_ = s.sessions.Delete(ctx, token)
		return ErrSessionExpired
	}
	return nil
}

// TTL returns the configured session lifetime.
func (s *AuthService) TTL() time.Duration {
	return s.ttl
}

func (s *AuthService) verify(password string) bool {
	if s.secretHash != "" {
		return bcrypt.CompareHashAndPassword([]byte(s.secretHash), []byte(password)) == nil
	}
	if s.secret == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(s.secret), []byte(password)) == 1
}

func (s *AuthService) issue(ctx context.Context, via string) (string, error) {
	token, err := generateToken()
	if err != nil {
		return "", err
	}
	expiresAt := time.Now().Add(s.ttl)
	if err := s.sessions.Create(ctx, token, via, expiresAt); err != nil {
		return "", err
	}
	return token, nil
}

func generateToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.URLEncoding.EncodeToString(b), nil
}

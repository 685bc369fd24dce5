package domain

import (
	"context"
	"time"
)

// Session represents an active operator session. There is a single shared
// operator role, so a session carries no user identity beyond how it was
// issued.
type Session struct {
	Token     string
	IssuedVia string // "password" or "sso"
	ExpiresAt time.Time
	CreatedAt time.Time
}

// SessionRepository defines the port for session persistence operations.
type SessionRepository interface {
	Create(ctx context.Context, token, issuedVia string, expiresAt time.Time) error
	GetByToken(ctx context.Context, token string) (*Session, error)
	Delete(ctx context.Context, token string) error
	DeleteExpired(ctx context.Context) error
}

package session

import (
	"context"
	"errors"
	"time"
)

var ErrNotFound = errors.New("session not found")

// Session is one authenticated browser session, identified by an opaque
// token stored in the session cookie.
type Session struct {
	Token     string
	UserID    string
	IP        string
	UserAgent string
	ExpiresAt time.Time
	CreatedAt time.Time
}

func (s Session) Expired() bool {
	return time.Now().After(s.ExpiresAt)
}

type Repository interface {
	GetByToken(ctx context.Context, token string) (Session, error)
	Create(ctx context.Context, s Session) error
	Delete(ctx context.Context, token string) error
	DeleteByUserID(ctx context.Context, userID string) error
}

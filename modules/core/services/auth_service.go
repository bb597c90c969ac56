package services

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"time"

	"github.com/katzedaze/portfolio/modules/core/domain/aggregates/user"
	"github.com/katzedaze/portfolio/modules/core/domain/entities/session"
	"github.com/katzedaze/portfolio/pkg/configuration"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

type AuthService struct {
	users    user.Repository
	sessions session.Repository
}

func NewAuthService(users user.Repository, sessions session.Repository) *AuthService {
	return &AuthService{users: users, sessions: sessions}
}

func newSessionToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

// Login verifies the credentials and opens a session.
func (s *AuthService) Login(ctx context.Context, email, password, ip, userAgent string) (user.User, session.Session, error) {
	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.User{}, session.Session{}, ErrInvalidCredentials
		}
		return user.User{}, session.Session{}, err
	}
	if err := u.CheckPassword(password); err != nil {
		return user.User{}, session.Session{}, ErrInvalidCredentials
	}

	token, err := newSessionToken()
	if err != nil {
		return user.User{}, session.Session{}, err
	}
	sess := session.Session{
		Token:     token,
		UserID:    u.ID(),
		IP:        ip,
		UserAgent: userAgent,
		ExpiresAt: time.Now().Add(configuration.Use().SessionDuration),
	}
	if err := s.sessions.Create(ctx, sess); err != nil {
		return user.User{}, session.Session{}, err
	}
	return u, sess, nil
}

func (s *AuthService) Logout(ctx context.Context, token string) error {
	return s.sessions.Delete(ctx, token)
}

// Authorize resolves a session token to its user. Expired sessions are
// removed and reported as not found.
func (s *AuthService) Authorize(ctx context.Context, token string) (user.User, session.Session, error) {
	sess, err := s.sessions.GetByToken(ctx, token)
	if err != nil {
		return user.User{}, session.Session{}, err
	}
	if sess.Expired() {
		_ = s.sessions.Delete(ctx, token)
		return user.User{}, session.Session{}, session.ErrNotFound
	}
	u, err := s.users.GetByID(ctx, sess.UserID)
	if err != nil {
		return user.User{}, session.Session{}, err
	}
	return u, sess, nil
}

package persistence

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/katzedaze/portfolio/modules/core/domain/entities/session"
	"github.com/katzedaze/portfolio/pkg/composables"
)

const (
	selectSessionQuery = `
		SELECT token, user_id, ip, user_agent, expires_at, created_at
		FROM sessions
		WHERE token = $1`
	insertSessionQuery = `
		INSERT INTO sessions (token, user_id, ip, user_agent, expires_at)
		VALUES ($1, $2, $3, $4, $5)`
	deleteSessionQuery        = `DELETE FROM sessions WHERE token = $1`
	deleteUserSessionsQuery   = `DELETE FROM sessions WHERE user_id = $1`
	deleteExpiredSessionQuery = `DELETE FROM sessions WHERE expires_at < now()`
)

type SessionRepository struct{}

func NewSessionRepository() session.Repository {
	return &SessionRepository{}
}

func (r *SessionRepository) GetByToken(ctx context.Context, token string) (session.Session, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return session.Session{}, err
	}

	var s session.Session
	err = tx.QueryRow(ctx, selectSessionQuery, token).Scan(
		&s.Token, &s.UserID, &s.IP, &s.UserAgent, &s.ExpiresAt, &s.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return session.Session{}, session.ErrNotFound
		}
		return session.Session{}, err
	}
	return s, nil
}

func (r *SessionRepository) Create(ctx context.Context, s session.Session) error {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return err
	}

	_, err = tx.Exec(ctx, insertSessionQuery, s.Token, s.UserID, s.IP, s.UserAgent, s.ExpiresAt)
	return err
}

func (r *SessionRepository) Delete(ctx context.Context, token string) error {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return err
	}

	_, err = tx.Exec(ctx, deleteSessionQuery, token)
	return err
}

func (r *SessionRepository) DeleteByUserID(ctx context.Context, userID string) error {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return err
	}

	_, err = tx.Exec(ctx, deleteUserSessionsQuery, userID)
	return err
}

// DeleteExpired reaps sessions past their expiry.
func (r *SessionRepository) DeleteExpired(ctx context.Context) error {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return err
	}

	_, err = tx.Exec(ctx, deleteExpiredSessionQuery)
	return err
}

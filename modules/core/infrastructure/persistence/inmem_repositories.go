package persistence

import (
	"context"
	"sync"
	"time"

	"github.com/katzedaze/portfolio/modules/core/domain/aggregates/user"
	"github.com/katzedaze/portfolio/modules/core/domain/entities/session"
)

// InmemUserRepository keeps users in memory. Used by service tests.
type InmemUserRepository struct {
	mu    sync.RWMutex
	users map[string]user.User
}

func NewInmemUserRepository() *InmemUserRepository {
	return &InmemUserRepository{users: make(map[string]user.User)}
}

func (r *InmemUserRepository) GetByID(ctx context.Context, id string) (user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, found := r.users[id]
	if !found {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}

func (r *InmemUserRepository) GetByEmail(ctx context.Context, email string) (user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if u.Email() == email {
			return u, nil
		}
	}
	return user.User{}, user.ErrNotFound
}

func (r *InmemUserRepository) Create(ctx context.Context, u user.User) (user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now()
	created := user.Hydrate(u.ID(), u.Email(), u.Name(), u.PasswordHash(), now, now)
	r.users[created.ID()] = created
	return created, nil
}

func (r *InmemUserRepository) Update(ctx context.Context, u user.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, found := r.users[u.ID()]
	if !found {
		return user.ErrNotFound
	}
	r.users[u.ID()] = user.Hydrate(u.ID(), u.Email(), u.Name(), u.PasswordHash(), existing.CreatedAt(), time.Now())
	return nil
}

type InmemSessionRepository struct {
	mu       sync.RWMutex
	sessions map[string]session.Session
}

func NewInmemSessionRepository() *InmemSessionRepository {
	return &InmemSessionRepository{sessions: make(map[string]session.Session)}
}

func (r *InmemSessionRepository) GetByToken(ctx context.Context, token string) (session.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, found := r.sessions[token]
	if !found {
		return session.Session{}, session.ErrNotFound
	}
	return s, nil
}

func (r *InmemSessionRepository) Create(ctx context.Context, s session.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s.CreatedAt.IsZero() {
		s.CreatedAt = time.Now()
	}
	r.sessions[s.Token] = s
	return nil
}

func (r *InmemSessionRepository) Delete(ctx context.Context, token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, token)
	return nil
}

func (r *InmemSessionRepository) DeleteByUserID(ctx context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for token, s := range r.sessions {
		if s.UserID == userID {
			delete(r.sessions, token)
		}
	}
	return nil
}

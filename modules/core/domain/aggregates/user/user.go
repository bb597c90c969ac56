package user

import (
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidPassword = errors.New("invalid password")

// User is the single admin account. IDs are opaque strings so seeded
// accounts can carry stable identifiers.
type User struct {
	id           string
	email        string
	name         string
	passwordHash string
	createdAt    time.Time
	updatedAt    time.Time
}

func New(id, email, name, password string) (User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return User{}, err
	}
	return User{
		id:           id,
		email:        strings.ToLower(strings.TrimSpace(email)),
		name:         strings.TrimSpace(name),
		passwordHash: string(hash),
	}, nil
}

func Hydrate(id, email, name, passwordHash string, createdAt, updatedAt time.Time) User {
	return User{
		id:           id,
		email:        email,
		name:         name,
		passwordHash: passwordHash,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func (u User) ID() string           { return u.id }
func (u User) Email() string        { return u.email }
func (u User) Name() string         { return u.name }
func (u User) PasswordHash() string { return u.passwordHash }
func (u User) CreatedAt() time.Time { return u.createdAt }
func (u User) UpdatedAt() time.Time { return u.updatedAt }

// CheckPassword compares the candidate against the stored bcrypt hash.
func (u User) CheckPassword(password string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(u.passwordHash), []byte(password)); err != nil {
		return ErrInvalidPassword
	}
	return nil
}

// WithEmail returns a copy with the email replaced.
func (u User) WithEmail(email string) User {
	u.email = strings.ToLower(strings.TrimSpace(email))
	return u
}

// WithPassword returns a copy with the password re-hashed.
func (u User) WithPassword(password string) (User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return User{}, err
	}
	u.passwordHash = string(hash)
	return u, nil
}

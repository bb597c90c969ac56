package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/katzedaze/portfolio/modules/core/domain/aggregates/user"
	"github.com/katzedaze/portfolio/pkg/composables"
)

const (
	selectUsersQuery = `
		SELECT id, email, name, password_hash, created_at, updated_at
		FROM users`
	insertUserQuery = `
		INSERT INTO users (id, email, name, password_hash)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at, updated_at`
	updateUserQuery = `
		UPDATE users
		SET email = $2, name = $3, password_hash = $4, updated_at = now()
		WHERE id = $1`
)

type UserRepository struct{}

func NewUserRepository() user.Repository {
	return &UserRepository{}
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (user.User, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return user.User{}, err
	}

	return scanUser(tx.QueryRow(ctx, selectUsersQuery+` WHERE id = $1`, id))
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (user.User, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return user.User{}, err
	}

	return scanUser(tx.QueryRow(ctx, selectUsersQuery+` WHERE email = $1`, email))
}

func (r *UserRepository) Create(ctx context.Context, u user.User) (user.User, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return user.User{}, err
	}

	var createdAt, updatedAt time.Time
	err = tx.QueryRow(ctx, insertUserQuery, u.ID(), u.Email(), u.Name(), u.PasswordHash()).Scan(&createdAt, &updatedAt)
	if err != nil {
		return user.User{}, err
	}
	return user.Hydrate(u.ID(), u.Email(), u.Name(), u.PasswordHash(), createdAt, updatedAt), nil
}

func (r *UserRepository) Update(ctx context.Context, u user.User) error {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return err
	}

	tag, err := tx.Exec(ctx, updateUserQuery, u.ID(), u.Email(), u.Name(), u.PasswordHash())
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return user.ErrNotFound
	}
	return nil
}

func scanUser(row pgx.Row) (user.User, error) {
	var (
		id, email, name, passwordHash string
		createdAt, updatedAt          time.Time
	)
	if err := row.Scan(&id, &email, &name, &passwordHash, &createdAt, &updatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrNotFound
		}
		return user.User{}, err
	}
	return user.Hydrate(id, email, name, passwordHash, createdAt, updatedAt), nil
}

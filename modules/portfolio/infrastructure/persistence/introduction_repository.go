package persistence

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"

	"github.com/katzedaze/portfolio/modules/portfolio/domain/entities/introduction"
	"github.com/katzedaze/portfolio/pkg/composables"
)

const (
	selectIntroductionsQuery = `
		SELECT id, title, content, display_order, created_at, updated_at
		FROM introduction`
	insertIntroductionQuery = `
		INSERT INTO introduction (title, content, display_order)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at`
	updateIntroductionQuery = `
		UPDATE introduction
		SET title = $2, content = $3, display_order = $4, updated_at = now()
		WHERE id = $1`
	deleteIntroductionQuery = `DELETE FROM introduction WHERE id = $1`
)

type IntroductionRepository struct{}

func NewIntroductionRepository() introduction.Repository {
	return &IntroductionRepository{}
}

func (r *IntroductionRepository) GetAll(ctx context.Context) ([]introduction.Introduction, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := tx.Query(ctx, selectIntroductionsQuery+` ORDER BY display_order`)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list introductions")
	}
	defer rows.Close()

	out := make([]introduction.Introduction, 0)
	for rows.Next() {
		i, err := scanIntroduction(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, i)
	}
	return out, rows.Err()
}

func (r *IntroductionRepository) GetByID(ctx context.Context, id uuid.UUID) (introduction.Introduction, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return introduction.Introduction{}, err
	}

	row := tx.QueryRow(ctx, selectIntroductionsQuery+` WHERE id = $1`, id)
	i, err := scanIntroduction(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return introduction.Introduction{}, introduction.ErrNotFound
		}
		return introduction.Introduction{}, err
	}
	return i, nil
}

func (r *IntroductionRepository) Create(ctx context.Context, i introduction.Introduction) (introduction.Introduction, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return introduction.Introduction{}, err
	}

	var id uuid.UUID
	var createdAt, updatedAt time.Time
	err = tx.QueryRow(ctx, insertIntroductionQuery, i.Title(), i.Content(), i.DisplayOrder()).
		Scan(&id, &createdAt, &updatedAt)
	if err != nil {
		return introduction.Introduction{}, errors.Wrap(err, "failed to create introduction")
	}

	return introduction.Hydrate(id, i.Title(), i.Content(), i.DisplayOrder(), createdAt, updatedAt), nil
}

func (r *IntroductionRepository) Update(ctx context.Context, i introduction.Introduction) error {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return err
	}

	tag, err := tx.Exec(ctx, updateIntroductionQuery, i.ID(), i.Title(), i.Content(), i.DisplayOrder())
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return introduction.ErrNotFound
	}
	return nil
}

func (r *IntroductionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return err
	}

	tag, err := tx.Exec(ctx, deleteIntroductionQuery, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return introduction.ErrNotFound
	}
	return nil
}

func scanIntroduction(row pgx.Row) (introduction.Introduction, error) {
	var (
		id                   uuid.UUID
		title, content       string
		displayOrder         int
		createdAt, updatedAt time.Time
	)
	if err := row.Scan(&id, &title, &content, &displayOrder, &createdAt, &updatedAt); err != nil {
		return introduction.Introduction{}, err
	}
	return introduction.Hydrate(id, title, content, displayOrder, createdAt, updatedAt), nil
}

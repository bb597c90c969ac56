package persistence

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"

	"github.com/katzedaze/portfolio/modules/portfolio/domain/entities/skill"
	"github.com/katzedaze/portfolio/pkg/composables"
)

const (
	selectSkillsQuery = `
		SELECT id, name, category, proficiency, years_of_experience, display_order, created_at, updated_at
		FROM skill`
	insertSkillQuery = `
		INSERT INTO skill (name, category, proficiency, years_of_experience, display_order)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at`
	updateSkillQuery = `
		UPDATE skill
		SET name = $2, category = $3, proficiency = $4, years_of_experience = $5, display_order = $6, updated_at = now()
		WHERE id = $1`
	deleteSkillQuery = `DELETE FROM skill WHERE id = $1`
)

type SkillRepository struct{}

func NewSkillRepository() skill.Repository {
	return &SkillRepository{}
}

func (r *SkillRepository) GetAll(ctx context.Context) ([]skill.Skill, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := tx.Query(ctx, selectSkillsQuery+` ORDER BY display_order, name`)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list skills")
	}
	defer rows.Close()

	out := make([]skill.Skill, 0)
	for rows.Next() {
		s, err := scanSkill(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *SkillRepository) GetByID(ctx context.Context, id uuid.UUID) (skill.Skill, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return skill.Skill{}, err
	}

	row := tx.QueryRow(ctx, selectSkillsQuery+` WHERE id = $1`, id)
	s, err := scanSkill(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return skill.Skill{}, skill.ErrNotFound
		}
		return skill.Skill{}, err
	}
	return s, nil
}

func (r *SkillRepository) Create(ctx context.Context, s skill.Skill) (skill.Skill, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return skill.Skill{}, err
	}

	var id uuid.UUID
	var createdAt, updatedAt time.Time
	err = tx.QueryRow(ctx, insertSkillQuery,
		s.Name(), string(s.Category()), s.Proficiency(), s.ExperienceTenths(), s.DisplayOrder(),
	).Scan(&id, &createdAt, &updatedAt)
	if err != nil {
		return skill.Skill{}, errors.Wrap(err, "failed to create skill")
	}

	return skill.Hydrate(id, s.Name(), s.Category(), s.Proficiency(), s.ExperienceTenths(), s.DisplayOrder(), createdAt, updatedAt), nil
}

func (r *SkillRepository) Update(ctx context.Context, s skill.Skill) error {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return err
	}

	tag, err := tx.Exec(ctx, updateSkillQuery,
		s.ID(), s.Name(), string(s.Category()), s.Proficiency(), s.ExperienceTenths(), s.DisplayOrder(),
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return skill.ErrNotFound
	}
	return nil
}

func (r *SkillRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return err
	}

	tag, err := tx.Exec(ctx, deleteSkillQuery, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return skill.ErrNotFound
	}
	return nil
}

func scanSkill(row pgx.Row) (skill.Skill, error) {
	var (
		id                   uuid.UUID
		name                 string
		category             string
		proficiency          string
		experienceTenths     int
		displayOrder         int
		createdAt, updatedAt time.Time
	)
	if err := row.Scan(&id, &name, &category, &proficiency, &experienceTenths, &displayOrder, &createdAt, &updatedAt); err != nil {
		return skill.Skill{}, err
	}
	return skill.Hydrate(id, name, skill.Category(category), proficiency, experienceTenths, displayOrder, createdAt, updatedAt), nil
}

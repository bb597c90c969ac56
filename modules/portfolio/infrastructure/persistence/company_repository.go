package persistence

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"

	"github.com/katzedaze/portfolio/modules/portfolio/domain/entities/company"
	"github.com/katzedaze/portfolio/pkg/composables"
)

const (
	selectCompaniesQuery = `
		SELECT id, name, industry, description, join_date, leave_date, display_order, created_at, updated_at
		FROM company`
	insertCompanyQuery = `
		INSERT INTO company (name, industry, description, join_date, leave_date, display_order)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at`
	updateCompanyQuery = `
		UPDATE company
		SET name = $2, industry = $3, description = $4, join_date = $5, leave_date = $6, display_order = $7, updated_at = now()
		WHERE id = $1`
	deleteCompanyQuery = `DELETE FROM company WHERE id = $1`
)

type CompanyRepository struct{}

func NewCompanyRepository() company.Repository {
	return &CompanyRepository{}
}

func (r *CompanyRepository) GetAll(ctx context.Context) ([]company.Company, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := tx.Query(ctx, selectCompaniesQuery+` ORDER BY display_order, name`)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list companies")
	}
	defer rows.Close()

	out := make([]company.Company, 0)
	for rows.Next() {
		c, err := scanCompany(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *CompanyRepository) GetByID(ctx context.Context, id uuid.UUID) (company.Company, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return company.Company{}, err
	}

	row := tx.QueryRow(ctx, selectCompaniesQuery+` WHERE id = $1`, id)
	c, err := scanCompany(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return company.Company{}, company.ErrNotFound
		}
		return company.Company{}, err
	}
	return c, nil
}

func (r *CompanyRepository) Create(ctx context.Context, c company.Company) (company.Company, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return company.Company{}, err
	}

	var id uuid.UUID
	var createdAt, updatedAt time.Time
	err = tx.QueryRow(ctx, insertCompanyQuery,
		c.Name(), nullableString(c.Industry()), nullableString(c.Description()), c.JoinDate(), c.LeaveDate(), c.DisplayOrder(),
	).Scan(&id, &createdAt, &updatedAt)
	if err != nil {
		return company.Company{}, errors.Wrap(err, "failed to create company")
	}

	return company.Hydrate(id, c.Name(), c.Industry(), c.Description(), c.JoinDate(), c.LeaveDate(), c.DisplayOrder(), createdAt, updatedAt), nil
}

func (r *CompanyRepository) Update(ctx context.Context, c company.Company) error {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return err
	}

	tag, err := tx.Exec(ctx, updateCompanyQuery,
		c.ID(), c.Name(), nullableString(c.Industry()), nullableString(c.Description()), c.JoinDate(), c.LeaveDate(), c.DisplayOrder(),
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return company.ErrNotFound
	}
	return nil
}

func (r *CompanyRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return err
	}

	// Dependent projects keep living; their company_id is cleared by the
	// schema's ON DELETE SET NULL.
	tag, err := tx.Exec(ctx, deleteCompanyQuery, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return company.ErrNotFound
	}
	return nil
}

func scanCompany(row pgx.Row) (company.Company, error) {
	var (
		id                    uuid.UUID
		name                  string
		industry, description *string
		joinDate, leaveDate   *time.Time
		displayOrder          int
		createdAt, updatedAt  time.Time
	)
	if err := row.Scan(&id, &name, &industry, &description, &joinDate, &leaveDate, &displayOrder, &createdAt, &updatedAt); err != nil {
		return company.Company{}, err
	}
	return company.Hydrate(id, name, deref(industry), deref(description), joinDate, leaveDate, displayOrder, createdAt, updatedAt), nil
}

func nullableString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

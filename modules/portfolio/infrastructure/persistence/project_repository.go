package persistence

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"

	"github.com/katzedaze/portfolio/modules/portfolio/domain/entities/company"
	"github.com/katzedaze/portfolio/modules/portfolio/domain/entities/project"
	"github.com/katzedaze/portfolio/pkg/composables"
)

const (
	selectProjectsQuery = `
		SELECT id, company_id, title, start_date, end_date, technologies, description, responsibilities, achievements, display_order, created_at, updated_at
		FROM project`
	selectProjectsWithCompanyQuery = `
		SELECT p.id, p.company_id, p.title, p.start_date, p.end_date, p.technologies, p.description, p.responsibilities, p.achievements, p.display_order, p.created_at, p.updated_at,
		       c.id, c.name, c.industry, c.description, c.join_date, c.leave_date, c.display_order, c.created_at, c.updated_at
		FROM project p
		LEFT JOIN company c ON c.id = p.company_id
		ORDER BY p.display_order, p.start_date DESC`
	insertProjectQuery = `
		INSERT INTO project (company_id, title, start_date, end_date, technologies, description, responsibilities, achievements, display_order)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at, updated_at`
	updateProjectQuery = `
		UPDATE project
		SET company_id = $2, title = $3, start_date = $4, end_date = $5, technologies = $6, description = $7, responsibilities = $8, achievements = $9, display_order = $10, updated_at = now()
		WHERE id = $1`
	deleteProjectQuery = `DELETE FROM project WHERE id = $1`
)

type ProjectRepository struct{}

func NewProjectRepository() project.Repository {
	return &ProjectRepository{}
}

func (r *ProjectRepository) GetAll(ctx context.Context) ([]project.WithCompany, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := tx.Query(ctx, selectProjectsWithCompanyQuery)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list projects")
	}
	defer rows.Close()

	out := make([]project.WithCompany, 0)
	for rows.Next() {
		var (
			id                             uuid.UUID
			companyID                      *uuid.UUID
			title                          string
			startDate                      time.Time
			endDate                        *time.Time
			technologies                   []string
			description                    string
			responsibilities, achievements *string
			displayOrder                   int
			createdAt, updatedAt           time.Time

			cID                     *uuid.UUID
			cName                   *string
			cIndustry, cDescription *string
			cJoinDate, cLeaveDate   *time.Time
			cDisplayOrder           *int
			cCreatedAt, cUpdatedAt  *time.Time
		)
		if err := rows.Scan(
			&id, &companyID, &title, &startDate, &endDate, &technologies, &description, &responsibilities, &achievements, &displayOrder, &createdAt, &updatedAt,
			&cID, &cName, &cIndustry, &cDescription, &cJoinDate, &cLeaveDate, &cDisplayOrder, &cCreatedAt, &cUpdatedAt,
		); err != nil {
			return nil, err
		}

		entity := project.Hydrate(id, companyID, title, startDate, endDate, technologies,
			description, deref(responsibilities), deref(achievements), displayOrder, createdAt, updatedAt)

		var joined *company.Company
		if cID != nil {
			c := company.Hydrate(*cID, deref(cName), deref(cIndustry), deref(cDescription),
				cJoinDate, cLeaveDate, derefInt(cDisplayOrder), derefTime(cCreatedAt), derefTime(cUpdatedAt))
			joined = &c
		}
		out = append(out, project.WithCompany{Project: entity, Company: joined})
	}
	return out, rows.Err()
}

func (r *ProjectRepository) GetByID(ctx context.Context, id uuid.UUID) (project.Project, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return project.Project{}, err
	}

	row := tx.QueryRow(ctx, selectProjectsQuery+` WHERE id = $1`, id)
	p, err := scanProject(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return project.Project{}, project.ErrNotFound
		}
		return project.Project{}, err
	}
	return p, nil
}

func (r *ProjectRepository) Create(ctx context.Context, p project.Project) (project.Project, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return project.Project{}, err
	}

	var id uuid.UUID
	var createdAt, updatedAt time.Time
	err = tx.QueryRow(ctx, insertProjectQuery,
		p.CompanyID(), p.Title(), p.StartDate(), p.EndDate(), p.Technologies(),
		p.Description(), nullableString(p.Responsibilities()), nullableString(p.Achievements()), p.DisplayOrder(),
	).Scan(&id, &createdAt, &updatedAt)
	if err != nil {
		return project.Project{}, errors.Wrap(err, "failed to create project")
	}

	return project.Hydrate(id, p.CompanyID(), p.Title(), p.StartDate(), p.EndDate(), p.Technologies(),
		p.Description(), p.Responsibilities(), p.Achievements(), p.DisplayOrder(), createdAt, updatedAt), nil
}

func (r *ProjectRepository) Update(ctx context.Context, p project.Project) error {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return err
	}

	tag, err := tx.Exec(ctx, updateProjectQuery,
		p.ID(), p.CompanyID(), p.Title(), p.StartDate(), p.EndDate(), p.Technologies(),
		p.Description(), nullableString(p.Responsibilities()), nullableString(p.Achievements()), p.DisplayOrder(),
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return project.ErrNotFound
	}
	return nil
}

func (r *ProjectRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return err
	}

	tag, err := tx.Exec(ctx, deleteProjectQuery, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return project.ErrNotFound
	}
	return nil
}

func scanProject(row pgx.Row) (project.Project, error) {
	var (
		id                             uuid.UUID
		companyID                      *uuid.UUID
		title                          string
		startDate                      time.Time
		endDate                        *time.Time
		technologies                   []string
		description                    string
		responsibilities, achievements *string
		displayOrder                   int
		createdAt, updatedAt           time.Time
	)
	if err := row.Scan(&id, &companyID, &title, &startDate, &endDate, &technologies, &description, &responsibilities, &achievements, &displayOrder, &createdAt, &updatedAt); err != nil {
		return project.Project{}, err
	}
	return project.Hydrate(id, companyID, title, startDate, endDate, technologies,
		description, deref(responsibilities), deref(achievements), displayOrder, createdAt, updatedAt), nil
}

func derefInt(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}

func derefTime(v *time.Time) time.Time {
	if v == nil {
		return time.Time{}
	}
	return *v
}

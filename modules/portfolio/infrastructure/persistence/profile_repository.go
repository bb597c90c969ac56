package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/katzedaze/portfolio/modules/portfolio/domain/entities/profile"
	"github.com/katzedaze/portfolio/pkg/composables"
)

const (
	selectProfilesQuery = `
		SELECT id, user_id, name, email, phone, postal_code, address, website,
			github_url, twitter_url, linkedin_url, bio, avatar_url, created_at, updated_at
		FROM profile`
	upsertProfileQuery = `
		INSERT INTO profile (
			user_id, name, email, phone, postal_code, address, website,
			github_url, twitter_url, linkedin_url, bio, avatar_url
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (user_id) DO UPDATE SET
			name = EXCLUDED.name,
			email = EXCLUDED.email,
			phone = EXCLUDED.phone,
			postal_code = EXCLUDED.postal_code,
			address = EXCLUDED.address,
			website = EXCLUDED.website,
			github_url = EXCLUDED.github_url,
			twitter_url = EXCLUDED.twitter_url,
			linkedin_url = EXCLUDED.linkedin_url,
			bio = EXCLUDED.bio,
			avatar_url = EXCLUDED.avatar_url,
			updated_at = now()
		RETURNING id, created_at, updated_at`
)

type ProfileRepository struct{}

func NewProfileRepository() profile.Repository {
	return &ProfileRepository{}
}

func (r *ProfileRepository) GetFirst(ctx context.Context) (profile.Profile, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return profile.Profile{}, err
	}

	row := tx.QueryRow(ctx, selectProfilesQuery+` ORDER BY created_at LIMIT 1`)
	p, err := scanProfile(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return profile.Profile{}, profile.ErrNotFound
		}
		return profile.Profile{}, err
	}
	return p, nil
}

func (r *ProfileRepository) GetByUserID(ctx context.Context, userID string) (profile.Profile, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return profile.Profile{}, err
	}

	row := tx.QueryRow(ctx, selectProfilesQuery+` WHERE user_id = $1`, userID)
	p, err := scanProfile(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return profile.Profile{}, profile.ErrNotFound
		}
		return profile.Profile{}, err
	}
	return p, nil
}

func (r *ProfileRepository) Upsert(ctx context.Context, p profile.Profile) (profile.Profile, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return profile.Profile{}, err
	}

	var id uuid.UUID
	var createdAt, updatedAt time.Time
	err = tx.QueryRow(ctx, upsertProfileQuery,
		p.UserID(), p.Name(), p.Email(), p.Phone(), p.PostalCode(), p.Address(), p.Website(),
		p.GithubURL(), p.TwitterURL(), p.LinkedinURL(), p.Bio(), p.AvatarURL(),
	).Scan(&id, &createdAt, &updatedAt)
	if err != nil {
		return profile.Profile{}, err
	}

	return profile.Hydrate(
		id, p.UserID(), p.Name(), p.Email(), p.Phone(),
		p.PostalCode(), p.Address(), p.Website(), p.GithubURL(), p.TwitterURL(), p.LinkedinURL(), p.Bio(), p.AvatarURL(),
		createdAt, updatedAt,
	), nil
}

func scanProfile(row pgx.Row) (profile.Profile, error) {
	var (
		id                   uuid.UUID
		userID               string
		name, email, phone   string
		postalCode, address  string
		website              string
		githubURL            string
		twitterURL           string
		linkedinURL          string
		bio, avatarURL       string
		createdAt, updatedAt time.Time
	)
	if err := row.Scan(
		&id, &userID, &name, &email, &phone, &postalCode, &address, &website,
		&githubURL, &twitterURL, &linkedinURL, &bio, &avatarURL, &createdAt, &updatedAt,
	); err != nil {
		return profile.Profile{}, err
	}
	return profile.Hydrate(
		id, userID, name, email, phone,
		postalCode, address, website, githubURL, twitterURL, linkedinURL, bio, avatarURL,
		createdAt, updatedAt,
	), nil
}

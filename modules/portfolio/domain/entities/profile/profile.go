package profile

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Profile is the site owner's public contact card. One row per user.
type Profile struct {
	id          uuid.UUID
	userID      string
	name        string
	email       string
	phone       string
	postalCode  string
	address     string
	website     string
	githubURL   string
	twitterURL  string
	linkedinURL string
	bio         string
	avatarURL   string
	createdAt   time.Time
	updatedAt   time.Time
}

func New(userID, name, email, phone string) Profile {
	return Profile{
		userID: userID,
		name:   strings.TrimSpace(name),
		email:  strings.TrimSpace(email),
		phone:  strings.TrimSpace(phone),
	}
}

func Hydrate(
	id uuid.UUID,
	userID, name, email, phone string,
	postalCode, address, website, githubURL, twitterURL, linkedinURL, bio, avatarURL string,
	createdAt, updatedAt time.Time,
) Profile {
	return Profile{
		id:          id,
		userID:      userID,
		name:        name,
		email:       email,
		phone:       phone,
		postalCode:  postalCode,
		address:     address,
		website:     website,
		githubURL:   githubURL,
		twitterURL:  twitterURL,
		linkedinURL: linkedinURL,
		bio:         bio,
		avatarURL:   avatarURL,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (p Profile) ID() uuid.UUID        { return p.id }
func (p Profile) UserID() string       { return p.userID }
func (p Profile) Name() string         { return p.name }
func (p Profile) Email() string        { return p.email }
func (p Profile) Phone() string        { return p.phone }
func (p Profile) PostalCode() string   { return p.postalCode }
func (p Profile) Address() string      { return p.address }
func (p Profile) Website() string      { return p.website }
func (p Profile) GithubURL() string    { return p.githubURL }
func (p Profile) TwitterURL() string   { return p.twitterURL }
func (p Profile) LinkedinURL() string  { return p.linkedinURL }
func (p Profile) Bio() string          { return p.bio }
func (p Profile) AvatarURL() string    { return p.avatarURL }
func (p Profile) CreatedAt() time.Time { return p.createdAt }
func (p Profile) UpdatedAt() time.Time { return p.updatedAt }

// WithDetails returns a copy carrying the optional fields.
func (p Profile) WithDetails(postalCode, address, website, githubURL, twitterURL, linkedinURL, bio, avatarURL string) Profile {
	p.postalCode = postalCode
	p.address = address
	p.website = website
	p.githubURL = githubURL
	p.twitterURL = twitterURL
	p.linkedinURL = linkedinURL
	p.bio = bio
	p.avatarURL = avatarURL
	return p
}

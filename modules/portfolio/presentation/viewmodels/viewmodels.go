package viewmodels

import "time"

// JSON shapes served by the content API. Field names follow the public
// contract consumed by the admin client and the marketing page.

type Skill struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	Category          string    `json:"category"`
	Proficiency       string    `json:"proficiency"`
	YearsOfExperience float64   `json:"yearsOfExperience"`
	DisplayOrder      int       `json:"displayOrder"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

type Introduction struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Content      string    `json:"content"`
	DisplayOrder int       `json:"displayOrder"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type Company struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Industry     *string    `json:"industry"`
	Description  *string    `json:"description"`
	JoinDate     *time.Time `json:"joinDate"`
	LeaveDate    *time.Time `json:"leaveDate"`
	DisplayOrder int        `json:"displayOrder"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

type Project struct {
	ID               string     `json:"id"`
	CompanyID        *string    `json:"companyId"`
	Title            string     `json:"title"`
	StartDate        time.Time  `json:"startDate"`
	EndDate          *time.Time `json:"endDate"`
	Technologies     []string   `json:"technologies"`
	Description      string     `json:"description"`
	Responsibilities *string    `json:"responsibilities"`
	Achievements     *string    `json:"achievements"`
	DisplayOrder     int        `json:"displayOrder"`
	CreatedAt        time.Time  `json:"createdAt"`
	UpdatedAt        time.Time  `json:"updatedAt"`
	Company          *Company   `json:"company"`
}

type Profile struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	PostalCode  *string   `json:"postalCode"`
	Address     *string   `json:"address"`
	Website     *string   `json:"website"`
	GithubURL   *string   `json:"githubUrl"`
	TwitterURL  *string   `json:"twitterUrl"`
	LinkedinURL *string   `json:"linkedinUrl"`
	Bio         *string   `json:"bio"`
	AvatarURL   *string   `json:"avatarUrl"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

package profile

import (
	"strings"

	"github.com/katzedaze/portfolio/pkg/constants"
	"github.com/katzedaze/portfolio/pkg/httpapi"
	"github.com/katzedaze/portfolio/pkg/serrors"
)

type UpsertDTO struct {
	Name        string `json:"name" validate:"required,max=100"`
	Email       string `json:"email" validate:"required,email"`
	Phone       string `json:"phone" validate:"required,max=20"`
	PostalCode  string `json:"postalCode" validate:"max=10"`
	Address     string `json:"address" validate:"max=200"`
	Website     string `json:"website" validate:"omitempty,url"`
	GithubURL   string `json:"githubUrl" validate:"omitempty,url"`
	TwitterURL  string `json:"twitterUrl" validate:"omitempty,url"`
	LinkedinURL string `json:"linkedinUrl" validate:"omitempty,url"`
	Bio         string `json:"bio" validate:"max=5000"`
	AvatarURL   string `json:"avatarUrl"`
}

var fieldNames = serrors.FieldNames{
	"Name":        "name",
	"Email":       "email",
	"Phone":       "phone",
	"PostalCode":  "postalCode",
	"Address":     "address",
	"Website":     "website",
	"GithubURL":   "githubUrl",
	"TwitterURL":  "twitterUrl",
	"LinkedinURL": "linkedinUrl",
	"Bio":         "bio",
}

var fieldMessages = serrors.Messages{
	"Name.required":   "名前は必須です",
	"Name.max":        "名前は100文字以内で入力してください",
	"Email.required":  "メールアドレスは必須です",
	"Email.email":     "有効なメールアドレスを入力してください",
	"Phone.required":  "電話番号は必須です",
	"Phone.max":       "電話番号は20文字以内で入力してください",
	"PostalCode.max":  "郵便番号は10文字以内で入力してください",
	"Address.max":     "住所は200文字以内で入力してください",
	"Website.url":     "有効なURLを入力してください",
	"GithubURL.url":   "有効なURLを入力してください",
	"TwitterURL.url":  "有効なURLを入力してください",
	"LinkedinURL.url": "有効なURLを入力してください",
	"Bio.max":         "自己紹介は5000文字以内で入力してください",
}

func (d *UpsertDTO) Normalize() {
	d.Name = strings.TrimSpace(d.Name)
	d.Email = strings.TrimSpace(d.Email)
	d.Phone = strings.TrimSpace(d.Phone)
}

func (d *UpsertDTO) Ok() ([]httpapi.Detail, bool) {
	d.Normalize()
	if err := constants.Validate.Struct(d); err != nil {
		return serrors.ProcessValidatorErrors(err, fieldNames, fieldMessages), false
	}
	return nil, true
}

func (d *UpsertDTO) ToEntity(userID string) Profile {
	return New(userID, d.Name, d.Email, d.Phone).WithDetails(
		d.PostalCode, d.Address, d.Website, d.GithubURL, d.TwitterURL, d.LinkedinURL, d.Bio, d.AvatarURL,
	)
}

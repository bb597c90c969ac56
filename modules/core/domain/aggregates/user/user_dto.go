package user

import (
	"strings"

	"github.com/katzedaze/portfolio/pkg/constants"
	"github.com/katzedaze/portfolio/pkg/httpapi"
	"github.com/katzedaze/portfolio/pkg/serrors"
)

type LoginDTO struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

var loginFieldNames = serrors.FieldNames{
	"Email":    "email",
	"Password": "password",
}

var loginFieldMessages = serrors.Messages{
	"Email.required":    "メールアドレスを入力してください",
	"Email.email":       "有効なメールアドレスを入力してください",
	"Password.required": "パスワードを入力してください",
}

func (d *LoginDTO) Normalize() {
	d.Email = strings.ToLower(strings.TrimSpace(d.Email))
}

func (d *LoginDTO) Ok() ([]httpapi.Detail, bool) {
	d.Normalize()
	if err := constants.Validate.Struct(d); err != nil {
		return serrors.ProcessValidatorErrors(err, loginFieldNames, loginFieldMessages), false
	}
	return nil, true
}

type ChangeEmailDTO struct {
	NewEmail string `json:"newEmail" validate:"required,email"`
}

var emailFieldNames = serrors.FieldNames{
	"NewEmail": "newEmail",
}

var emailFieldMessages = serrors.Messages{
	"NewEmail.required": "有効なメールアドレスを入力してください",
	"NewEmail.email":    "有効なメールアドレスを入力してください",
}

func (d *ChangeEmailDTO) Normalize() {
	d.NewEmail = strings.ToLower(strings.TrimSpace(d.NewEmail))
}

func (d *ChangeEmailDTO) Ok() ([]httpapi.Detail, bool) {
	d.Normalize()
	if err := constants.Validate.Struct(d); err != nil {
		return serrors.ProcessValidatorErrors(err, emailFieldNames, emailFieldMessages), false
	}
	return nil, true
}

type ChangePasswordDTO struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=8"`
}

var passwordFieldNames = serrors.FieldNames{
	"CurrentPassword": "currentPassword",
	"NewPassword":     "newPassword",
}

var passwordFieldMessages = serrors.Messages{
	"CurrentPassword.required": "現在のパスワードを入力してください",
	"NewPassword.required":     "パスワードは8文字以上で設定してください",
	"NewPassword.min":          "パスワードは8文字以上で設定してください",
}

func (d *ChangePasswordDTO) Ok() ([]httpapi.Detail, bool) {
	if err := constants.Validate.Struct(d); err != nil {
		return serrors.ProcessValidatorErrors(err, passwordFieldNames, passwordFieldMessages), false
	}
	return nil, true
}

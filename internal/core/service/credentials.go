package service

import (
	"github.com/go-playground/validator/v10"

	"github.com/memberhub/members-portal/internal/core/domain"
)

// Shape rules for submitted credentials: alphanumeric usernames up to 20
// characters, a syntactically valid email, passwords up to 20 characters.
type signupCredentials struct {
	Username string `validate:"required,alphanum,max=20"`
	Email    string `validate:"required,email"`
	Password string `validate:"required,max=20"`
}

type loginCredentials struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required,max=20"`
}

var validate = validator.New()

// ValidateSignup checks field presence first, in a fixed order, then shape as
// a whole. Presence failures name the field (the form already reveals which
// fields exist); shape failures collapse into the generic ErrValidationFailed
// so responses do not enumerate per-field rules. Pure, no side effects.
func ValidateSignup(username, email, password string) error {
	if username == "" {
		return &domain.MissingFieldError{Field: "username"}
	}
	if email == "" {
		return &domain.MissingFieldError{Field: "email"}
	}
	if password == "" {
		return &domain.MissingFieldError{Field: "password"}
	}
	if err := validate.Struct(signupCredentials{Username: username, Email: email, Password: password}); err != nil {
		return domain.ErrValidationFailed
	}
	return nil
}

// ValidateLogin checks the login subset: email and password only. All
// violations, missing or malformed, report the generic ErrValidationFailed.
func ValidateLogin(email, password string) error {
	if err := validate.Struct(loginCredentials{Email: email, Password: password}); err != nil {
		return domain.ErrValidationFailed
	}
	return nil
}

package service

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/AlibekovAA/secure-notes/internal/common/constants"
	commonerrors "github.com/AlibekovAA/secure-notes/internal/common/errors"
	"github.com/AlibekovAA/secure-notes/internal/common/validate"
)

type credentials struct {
	Username string `validate:"min=1,max=64,nonul"`
	Password string `validate:"required"`
}

type CredentialValidator struct {
	validate *validator.Validate
}

func NewCredentialValidator() CredentialValidator {
	return CredentialValidator{validate: validate.New()}
}

// Validate counts username length in characters and password length in
// bytes, since bcrypt only reads the first 72 bytes of its input.
func (cv CredentialValidator) Validate(username, password string) error {
	if err := cv.validate.Struct(credentials{Username: username, Password: password}); err != nil {
		return credentialError(err)
	}

	if len(password) > constants.PasswordMaxBytes {
		return commonerrors.ErrValidation.WithMessage(
			fmt.Sprintf("password must be at most %d bytes", constants.PasswordMaxBytes),
		)
	}

	return nil
}

// StorableUsername reports whether username can be looked up at all. Login
// treats an unstorable name like an unknown one.
func (cv CredentialValidator) StorableUsername(username string) bool {
	return cv.validate.Var(username, validate.NoNUL) == nil
}

func credentialError(err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return commonerrors.ErrValidation.WithCause(err)
	}

	fe := fieldErrs[0]
	switch {
	case fe.Tag() == validate.NoNUL:
		return commonerrors.ErrValidation.WithMessage("username must not contain NUL characters")
	case fe.Field() == "Username":
		return commonerrors.ErrValidation.WithMessage(fmt.Sprintf(
			"username must be between %d and %d characters",
			constants.UsernameMinLength, constants.UsernameMaxLength,
		))
	default:
		return commonerrors.ErrValidation.WithMessage("password is required")
	}
}

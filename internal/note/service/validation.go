package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/AlibekovAA/secure-notes/internal/common/constants"
	commonerrors "github.com/AlibekovAA/secure-notes/internal/common/errors"
	"github.com/AlibekovAA/secure-notes/internal/common/validate"
)

type noteFields struct {
	Title string `validate:"max=50,nonul"`
	Text  string `validate:"max=300,nonul"`
}

type searchFields struct {
	Fragment string `validate:"required,nonul"`
}

type NoteValidator struct {
	validate *validator.Validate
}

func NewNoteValidator() NoteValidator {
	return NoteValidator{validate: validate.New()}
}

// ValidateNote counts characters, not bytes.
func (nv NoteValidator) ValidateNote(title, text string) error {
	err := nv.validate.Struct(noteFields{Title: title, Text: text})
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return commonerrors.ErrValidation.WithCause(err)
	}

	fe := fieldErrs[0]
	if fe.Tag() == validate.NoNUL {
		return commonerrors.ErrValidation.WithMessage(
			fmt.Sprintf("%s must not contain NUL characters", strings.ToLower(fe.Field())),
		)
	}

	if fe.Field() == "Title" {
		return commonerrors.ErrValidation.WithMessage(
			fmt.Sprintf("title must be at most %d characters", constants.NoteTitleMaxLength),
		)
	}
	return commonerrors.ErrValidation.WithMessage(
		fmt.Sprintf("text must be at most %d characters", constants.NoteTextMaxLength),
	)
}

func (nv NoteValidator) ValidateFragment(fragment string) error {
	err := nv.validate.Struct(searchFields{Fragment: fragment})
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return commonerrors.ErrValidation.WithCause(err)
	}

	if fieldErrs[0].Tag() == validate.NoNUL {
		return commonerrors.ErrValidation.WithMessage("search fragment must not contain NUL characters")
	}
	return commonerrors.ErrValidation.WithMessage("search fragment is required")
}

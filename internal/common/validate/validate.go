package validate

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// NoNUL is the tag for strings that end up in PostgreSQL text columns,
// which cannot store U+0000.
const NoNUL = "nonul"

func New() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.RegisterValidation(NoNUL, noNUL); err != nil {
		panic(err)
	}
	return v
}

func noNUL(fl validator.FieldLevel) bool {
	return !strings.ContainsRune(fl.Field().String(), 0)
}

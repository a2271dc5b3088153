package validate

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Title string `validate:"max=5,nonul"`
}

func TestNoNUL(t *testing.T) {
	v := New()

	assert.NoError(t, v.Struct(sample{Title: "abc"}))
	assert.NoError(t, v.Struct(sample{Title: ""}))

	err := v.Struct(sample{Title: "a\x00b"})
	var fieldErrs validator.ValidationErrors
	require.ErrorAs(t, err, &fieldErrs)
	assert.Equal(t, NoNUL, fieldErrs[0].Tag())
}

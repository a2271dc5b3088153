package service_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/AlibekovAA/secure-notes/internal/auth/service"
	commonerrors "github.com/AlibekovAA/secure-notes/internal/common/errors"
)

func TestCredentialValidator(t *testing.T) {
	v := service.NewCredentialValidator()

	assert.NoError(t, v.Validate("alice", "pw1"))
	assert.NoError(t, v.Validate(strings.Repeat("ж", 64), strings.Repeat("p", 72)))

	err := v.Validate(strings.Repeat("ж", 65), "pw1")
	assert.ErrorIs(t, err, commonerrors.ErrValidation)
	de, _ := commonerrors.AsDomainError(err)
	assert.Equal(t, "username must be between 1 and 64 characters", de.Message())

	err = v.Validate("alice", strings.Repeat("ж", 37))
	assert.ErrorIs(t, err, commonerrors.ErrValidation)
	de, _ = commonerrors.AsDomainError(err)
	assert.Equal(t, "password must be at most 72 bytes", de.Message())

	err = v.Validate("ali\x00ce", "pw1")
	assert.ErrorIs(t, err, commonerrors.ErrValidation)
	de, _ = commonerrors.AsDomainError(err)
	assert.Equal(t, "username must not contain NUL characters", de.Message())

	assert.ErrorIs(t, v.Validate("", "pw1"), commonerrors.ErrValidation)
	assert.ErrorIs(t, v.Validate("alice", ""), commonerrors.ErrValidation)
}

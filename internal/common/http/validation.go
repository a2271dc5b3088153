package http

import (
	"github.com/google/uuid"

	commonerrors "github.com/AlibekovAA/secure-notes/internal/common/errors"
)

// CanonicalUUID returns the lowercase hyphenated form of s.
func CanonicalUUID(s string) (string, error) {
	if s == "" {
		return "", commonerrors.ErrEmptyUUID
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

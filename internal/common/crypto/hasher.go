package crypto

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/AlibekovAA/secure-notes/internal/common/constants"
)

type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password string, hash string) bool
}

type BcryptHasher struct {
	cost int
}

func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = constants.DefaultBcryptCost
	}
	return &BcryptHasher{cost: cost}
}

// Hash salts every call, so hashing the same password twice yields two
// different records.
func (h *BcryptHasher) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Verify reports false for a mismatch and for a malformed hash record.
func (h *BcryptHasher) Verify(password string, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

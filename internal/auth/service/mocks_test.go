package service_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/AlibekovAA/secure-notes/internal/auth/service"
	"github.com/AlibekovAA/secure-notes/internal/common/clock"
	"github.com/AlibekovAA/secure-notes/internal/common/constants"
	"github.com/AlibekovAA/secure-notes/internal/common/logger"
	userdomain "github.com/AlibekovAA/secure-notes/internal/user/domain"
	userrepo "github.com/AlibekovAA/secure-notes/internal/user/repository"
)

type mockUserRepo struct {
	createFunc         func(ctx context.Context, username, passwordHash string) (userdomain.User, error)
	findByUsernameFunc func(ctx context.Context, username string) (userdomain.User, error)
}

func (m *mockUserRepo) Create(ctx context.Context, username, passwordHash string) (userdomain.User, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, username, passwordHash)
	}
	return userdomain.User{ID: "user-123", Username: username, PasswordHash: passwordHash}, nil
}

func (m *mockUserRepo) FindByUsername(ctx context.Context, username string) (userdomain.User, error) {
	if m.findByUsernameFunc != nil {
		return m.findByUsernameFunc(ctx, username)
	}
	return userdomain.User{}, userrepo.ErrUserNotFound
}

type mockHasher struct {
	hashFunc    func(password string) (string, error)
	verifyFunc  func(password, hash string) bool
	verifyCalls []string
}

func (m *mockHasher) Hash(password string) (string, error) {
	if m.hashFunc != nil {
		return m.hashFunc(password)
	}
	return "hashed_" + password, nil
}

func (m *mockHasher) Verify(password, hash string) bool {
	m.verifyCalls = append(m.verifyCalls, hash)
	if m.verifyFunc != nil {
		return m.verifyFunc(password, hash)
	}
	return strings.TrimPrefix(hash, "hashed_") == password
}

type mockIDGenerator struct {
	newIDFunc func() (string, error)
}

func (m *mockIDGenerator) NewID() (string, error) {
	if m.newIDFunc != nil {
		return m.newIDFunc()
	}
	return "test-id-123", nil
}

type mockTokenIssuer struct {
	issueFunc func(user userdomain.User) (string, error)
}

func (m *mockTokenIssuer) Issue(user userdomain.User) (string, error) {
	if m.issueFunc != nil {
		return m.issueFunc(user)
	}
	return "token-for-" + string(user.ID), nil
}

func newTestClock() *clock.MockClock {
	return clock.NewMockClock(time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC))
}

func newTestTokenService(c clock.Clock) *service.TokenService {
	return service.NewTokenService(constants.TestJWTSecret, constants.TestAccessTokenTTL, &mockIDGenerator{}, c)
}

func setupAuthService(t *testing.T) (*service.AuthService, *mockUserRepo, *mockHasher, *mockTokenIssuer) {
	t.Helper()

	repo := &mockUserRepo{}
	hasher := &mockHasher{}
	tokens := &mockTokenIssuer{}

	svc := service.NewAuthService(repo, hasher, tokens, logger.NewNop())
	return svc, repo, hasher, tokens
}

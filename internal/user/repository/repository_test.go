package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgconn"
	pgx "github.com/jackc/pgx/v4"
	"github.com/pashagolub/pgxmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AlibekovAA/secure-notes/internal/user/domain"
)

const (
	insertUserSQL = `INSERT INTO users (username, password_hash) VALUES ($1, $2) RETURNING id, created_at`
	selectUserSQL = `SELECT id, username, password_hash, created_at FROM users WHERE username = $1`
)

func newMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		mock.Close()
	})
	return mock
}

func TestPgRepository_Create(t *testing.T) {
	mock := newMock(t)
	repo := NewPgRepository(mock)
	created := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta(insertUserSQL)).
		WithArgs("alice", "$2a$hash").
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).
			AddRow("0b9f1c3e-1d2a-4c5b-8e7f-6a5b4c3d2e1f", created))

	user, err := repo.Create(context.Background(), "alice", "$2a$hash")
	require.NoError(t, err)
	assert.Equal(t, domain.ID("0b9f1c3e-1d2a-4c5b-8e7f-6a5b4c3d2e1f"), user.ID)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, created, user.CreatedAt)
}

func TestPgRepository_Create_Duplicate(t *testing.T) {
	mock := newMock(t)
	repo := NewPgRepository(mock)

	mock.ExpectQuery(regexp.QuoteMeta(insertUserSQL)).
		WithArgs("alice", "$2a$hash").
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_username_key"})

	_, err := repo.Create(context.Background(), "alice", "$2a$hash")
	assert.ErrorIs(t, err, ErrUsernameAlreadyExists)
}

func TestPgRepository_Create_StoreFailure(t *testing.T) {
	mock := newMock(t)
	repo := NewPgRepository(mock)
	cause := errors.New("connection reset by peer")

	mock.ExpectQuery(regexp.QuoteMeta(insertUserSQL)).
		WithArgs("alice", "$2a$hash").
		WillReturnError(cause)

	_, err := repo.Create(context.Background(), "alice", "$2a$hash")
	assert.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, ErrUsernameAlreadyExists)
}

func TestPgRepository_FindByUsername(t *testing.T) {
	mock := newMock(t)
	repo := NewPgRepository(mock)
	created := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta(selectUserSQL)).
		WithArgs("alice").
		WillReturnRows(pgxmock.NewRows([]string{"id", "username", "password_hash", "created_at"}).
			AddRow("0b9f1c3e-1d2a-4c5b-8e7f-6a5b4c3d2e1f", "alice", "$2a$hash", created))

	user, err := repo.FindByUsername(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, "$2a$hash", user.PasswordHash)
}

func TestPgRepository_FindByUsername_NotFound(t *testing.T) {
	mock := newMock(t)
	repo := NewPgRepository(mock)

	mock.ExpectQuery(regexp.QuoteMeta(selectUserSQL)).
		WithArgs("Alice").
		WillReturnError(pgx.ErrNoRows)

	_, err := repo.FindByUsername(context.Background(), "Alice")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

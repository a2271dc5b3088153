package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/AlibekovAA/secure-notes/internal/common/db"
	"github.com/AlibekovAA/secure-notes/internal/user/domain"
)

var (
	ErrUserNotFound          = errors.New("user not found")
	ErrUsernameAlreadyExists = errors.New("username already exists")
)

type Repository interface {
	Create(ctx context.Context, username, passwordHash string) (domain.User, error)
	FindByUsername(ctx context.Context, username string) (domain.User, error)
}

type PgRepository struct {
	db db.Querier
}

func NewPgRepository(q db.Querier) *PgRepository {
	return &PgRepository{db: q}
}

// Create relies on the unique constraint on users.username, so two
// concurrent signups for one name cannot both succeed.
func (r *PgRepository) Create(ctx context.Context, username, passwordHash string) (domain.User, error) {
	start := time.Now()

	var (
		id        string
		createdAt time.Time
	)
	err := r.db.QueryRow(
		ctx,
		`INSERT INTO users (username, password_hash) VALUES ($1, $2) RETURNING id, created_at`,
		username,
		passwordHash,
	).Scan(&id, &createdAt)
	if err != nil {
		db.MeasureQueryDuration("create user", start)
		if db.IsUniqueViolation(err) {
			return domain.User{}, ErrUsernameAlreadyExists
		}
		return domain.User{}, fmt.Errorf("failed to create user: %w", err)
	}
	db.MeasureQueryDuration("create user", start)

	return domain.User{
		ID:           domain.ID(id),
		Username:     username,
		PasswordHash: passwordHash,
		CreatedAt:    createdAt,
	}, nil
}

func (r *PgRepository) FindByUsername(ctx context.Context, username string) (domain.User, error) {
	start := time.Now()

	var (
		id, name, hash string
		createdAt      time.Time
	)
	err := r.db.QueryRow(
		ctx,
		`SELECT id, username, password_hash, created_at FROM users WHERE username = $1`,
		username,
	).Scan(&id, &name, &hash, &createdAt)
	if err := db.HandleQueryError(err, ErrUserNotFound, "find user by username", start); err != nil {
		return domain.User{}, err
	}

	return domain.User{
		ID:           domain.ID(id),
		Username:     name,
		PasswordHash: hash,
		CreatedAt:    createdAt,
	}, nil
}

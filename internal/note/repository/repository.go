package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	pgx "github.com/jackc/pgx/v4"

	"github.com/AlibekovAA/secure-notes/internal/common/db"
	"github.com/AlibekovAA/secure-notes/internal/note/domain"
)

var ErrNoteNotFound = errors.New("note not found")

// Repository methods that touch a single note filter on id and owner in
// the same statement. A note owned by someone else is indistinguishable
// from a missing one.
type Repository interface {
	Create(ctx context.Context, note domain.Note) (domain.Note, error)
	ListByOwner(ctx context.Context, ownerID string) ([]domain.Note, error)
	FindByID(ctx context.Context, ownerID string, id domain.ID) (domain.Note, error)
	UpdateByID(ctx context.Context, ownerID string, id domain.ID, title, text string, modifiedAt time.Time) (domain.Note, error)
	DeleteByID(ctx context.Context, ownerID string, id domain.ID) (domain.Note, error)
	SearchByTitle(ctx context.Context, ownerID, fragment string) ([]domain.Note, error)
}

const noteColumns = `id, title, text, created_at, modified_at, owner_id`

type PgRepository struct {
	db db.Querier
}

func NewPgRepository(q db.Querier) *PgRepository {
	return &PgRepository{db: q}
}

func (r *PgRepository) Create(ctx context.Context, note domain.Note) (domain.Note, error) {
	start := time.Now()

	row := r.db.QueryRow(
		ctx,
		`INSERT INTO notes (id, title, text, created_at, modified_at, owner_id)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING `+noteColumns,
		string(note.ID),
		note.Title,
		note.Text,
		note.CreatedAt,
		note.ModifiedAt,
		note.OwnerID,
	)

	created, err := scanNote(row)
	if err := db.HandleQueryError(err, ErrNoteNotFound, "create note", start); err != nil {
		return domain.Note{}, err
	}
	return created, nil
}

func (r *PgRepository) ListByOwner(ctx context.Context, ownerID string) ([]domain.Note, error) {
	start := time.Now()

	rows, err := r.db.Query(
		ctx,
		`SELECT `+noteColumns+`
		 FROM notes
		 WHERE owner_id = $1
		 ORDER BY created_at ASC, id ASC`,
		ownerID,
	)
	if err != nil {
		return nil, db.HandleExecError(err, "list notes", start)
	}

	notes, err := collectNotes(rows)
	return notes, db.HandleExecError(err, "list notes", start)
}

func (r *PgRepository) FindByID(ctx context.Context, ownerID string, id domain.ID) (domain.Note, error) {
	start := time.Now()

	row := r.db.QueryRow(
		ctx,
		`SELECT `+noteColumns+`
		 FROM notes
		 WHERE id = $1 AND owner_id = $2`,
		string(id),
		ownerID,
	)

	note, err := scanNote(row)
	if err := db.HandleQueryError(err, ErrNoteNotFound, "find note by id", start); err != nil {
		return domain.Note{}, err
	}
	return note, nil
}

func (r *PgRepository) UpdateByID(
	ctx context.Context,
	ownerID string,
	id domain.ID,
	title, text string,
	modifiedAt time.Time,
) (domain.Note, error) {
	start := time.Now()

	row := r.db.QueryRow(
		ctx,
		`UPDATE notes
		 SET title = $3, text = $4, modified_at = $5
		 WHERE id = $1 AND owner_id = $2
		 RETURNING `+noteColumns,
		string(id),
		ownerID,
		title,
		text,
		modifiedAt,
	)

	note, err := scanNote(row)
	if err := db.HandleQueryError(err, ErrNoteNotFound, "update note by id", start); err != nil {
		return domain.Note{}, err
	}
	return note, nil
}

func (r *PgRepository) DeleteByID(ctx context.Context, ownerID string, id domain.ID) (domain.Note, error) {
	start := time.Now()

	row := r.db.QueryRow(
		ctx,
		`DELETE FROM notes
		 WHERE id = $1 AND owner_id = $2
		 RETURNING `+noteColumns,
		string(id),
		ownerID,
	)

	note, err := scanNote(row)
	if err := db.HandleQueryError(err, ErrNoteNotFound, "delete note by id", start); err != nil {
		return domain.Note{}, err
	}
	return note, nil
}

// SearchByTitle matches fragment literally: LIKE wildcards inside it are
// escaped.
func (r *PgRepository) SearchByTitle(ctx context.Context, ownerID, fragment string) ([]domain.Note, error) {
	start := time.Now()

	rows, err := r.db.Query(
		ctx,
		`SELECT `+noteColumns+`
		 FROM notes
		 WHERE owner_id = $1 AND title ILIKE $2 ESCAPE '\'
		 ORDER BY created_at ASC, id ASC`,
		ownerID,
		"%"+EscapeLike(fragment)+"%",
	)
	if err != nil {
		return nil, db.HandleExecError(err, "search notes", start)
	}

	notes, err := collectNotes(rows)
	return notes, db.HandleExecError(err, "search notes", start)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func EscapeLike(s string) string {
	return likeEscaper.Replace(s)
}

func scanNote(row pgx.Row) (domain.Note, error) {
	var (
		id, title, text, ownerID string
		createdAt, modifiedAt    time.Time
	)
	if err := row.Scan(&id, &title, &text, &createdAt, &modifiedAt, &ownerID); err != nil {
		return domain.Note{}, err
	}
	return domain.Note{
		ID:         domain.ID(id),
		Title:      title,
		Text:       text,
		CreatedAt:  createdAt,
		ModifiedAt: modifiedAt,
		OwnerID:    ownerID,
	}, nil
}

func collectNotes(rows pgx.Rows) ([]domain.Note, error) {
	defer rows.Close()

	notes := make([]domain.Note, 0)
	for rows.Next() {
		note, err := scanNote(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan note: %w", err)
		}
		notes = append(notes, note)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return notes, nil
}

package domain

import "time"

type ID string

// Note belongs to exactly one owner for its whole life. OwnerID is set at
// creation and never rewritten.
type Note struct {
	ID         ID
	Title      string
	Text       string
	CreatedAt  time.Time
	ModifiedAt time.Time
	OwnerID    string
}

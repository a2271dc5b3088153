package domain

import "time"

type ID string

// User is a registered account. PasswordHash never leaves the auth
// service.
type User struct {
	ID           ID
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}

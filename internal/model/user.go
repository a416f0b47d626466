package model

import (
	"context"
	"time"
)

// UserStore defines persistence operations for users.
type UserStore interface {
	Create(ctx context.Context, user User) (User, error)
	GetByUsername(ctx context.Context, username string) (User, error)
}

// User represents a registered user. Users are immutable after creation:
// no update or delete operation is exposed.
type User struct {
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}

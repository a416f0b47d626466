package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// NoteStore defines persistence operations for notes. Every read, update and
// delete is scoped by (id, owner): a note that exists but belongs to another
// owner is reported as ErrNotFound.
type NoteStore interface {
	Create(ctx context.Context, note Note) (Note, error)
	GetByID(ctx context.Context, id uuid.UUID, owner string) (Note, error)
	GetByOwner(ctx context.Context, owner string) ([]Note, error)
	Update(ctx context.Context, id uuid.UUID, owner string, update NoteUpdate) error
	Delete(ctx context.Context, id uuid.UUID, owner string) error
}

// Note represents a stored note entity. Owner is assigned by the server at
// creation time and never changes.
type Note struct {
	ID        uuid.UUID
	Title     string
	Content   string
	Owner     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NoteUpdate contains the fields of a note that may change. A nil field is
// left untouched.
type NoteUpdate struct {
	Title   *string
	Content *string
}

// Package memory provides map-backed stores with the same semantics as the
// DynamoDB repositories. They back handler and scenario tests and local runs
// without a database.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/quirknotes/server/internal/model"
)

var (
	_ model.UserStore = (*UserRepository)(nil)
	_ model.NoteStore = (*NoteRepository)(nil)
)

// UserRepository is an in-memory UserStore.
type UserRepository struct {
	mu    sync.RWMutex
	users map[string]model.User
}

func NewUserRepository() *UserRepository {
	return &UserRepository{users: make(map[string]model.User)}
}

// Create inserts a user; the check and insert hold one lock, matching the
// atomicity of the conditional write in the DynamoDB repository.
func (r *UserRepository) Create(_ context.Context, user model.User) (model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.users[user.Username]; exists {
		return model.User{}, model.ErrUsernameTaken
	}
	r.users[user.Username] = user
	return user, nil
}

func (r *UserRepository) GetByUsername(_ context.Context, username string) (model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, exists := r.users[username]
	if !exists {
		return model.User{}, model.ErrNotFound
	}
	return user, nil
}

// NoteRepository is an in-memory NoteStore. Ownership rules are identical to
// the DynamoDB repository: a note owned by someone else is ErrNotFound.
type NoteRepository struct {
	mu    sync.RWMutex
	notes map[uuid.UUID]model.Note
}

func NewNoteRepository() *NoteRepository {
	return &NoteRepository{notes: make(map[uuid.UUID]model.Note)}
}

func (r *NoteRepository) Create(_ context.Context, note model.Note) (model.Note, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.notes[note.ID] = note
	return note, nil
}

func (r *NoteRepository) GetByID(_ context.Context, id uuid.UUID, owner string) (model.Note, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	note, exists := r.notes[id]
	if !exists || note.Owner != owner {
		return model.Note{}, model.ErrNotFound
	}
	return note, nil
}

func (r *NoteRepository) GetByOwner(_ context.Context, owner string) ([]model.Note, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	notes := []model.Note{}
	for _, note := range r.notes {
		if note.Owner == owner {
			notes = append(notes, note)
		}
	}
	return notes, nil
}

func (r *NoteRepository) Update(_ context.Context, id uuid.UUID, owner string, update model.NoteUpdate) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	note, exists := r.notes[id]
	if !exists || note.Owner != owner {
		return model.ErrNotFound
	}
	if update.Title != nil {
		note.Title = *update.Title
	}
	if update.Content != nil {
		note.Content = *update.Content
	}
	note.UpdatedAt = time.Now()
	r.notes[id] = note
	return nil
}

func (r *NoteRepository) Delete(_ context.Context, id uuid.UUID, owner string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	note, exists := r.notes[id]
	if !exists || note.Owner != owner {
		return model.ErrNotFound
	}
	delete(r.notes, id)
	return nil
}

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/quirknotes/server/internal/logger"
	"github.com/quirknotes/server/internal/model"
)

// Note implements note CRUD on behalf of an authenticated owner. Ownership
// is enforced by the store predicates: every read, update and delete carries
// the owner, so another user's note behaves exactly like a missing one.
type Note struct {
	noteStore model.NoteStore
	logger    *logger.Logger
}

// NewNote creates a new Note service.
func NewNote(noteStore model.NoteStore, logger *logger.Logger) *Note {
	return &Note{
		noteStore: noteStore,
		logger:    logger,
	}
}

// Create stores a new note owned by owner and returns it with its generated id.
func (s *Note) Create(ctx context.Context, owner, title, content string) (model.Note, error) {
	if title == "" || content == "" {
		return model.Note{}, model.NewValidationError("Title and content are both required.")
	}

	now := time.Now()
	note := model.Note{
		ID:        uuid.New(),
		Title:     title,
		Content:   content,
		Owner:     owner,
		CreatedAt: now,
		UpdatedAt: now,
	}

	note, err := s.noteStore.Create(ctx, note)
	if err != nil {
		return model.Note{}, fmt.Errorf("failed to create note: %w", err)
	}

	s.logger.Info("Note service: note created",
		"owner", owner,
		"note_id", note.ID)

	return note, nil
}

// Get returns the note with the given id if it is owned by owner.
func (s *Note) Get(ctx context.Context, owner string, id uuid.UUID) (model.Note, error) {
	note, err := s.noteStore.GetByID(ctx, id, owner)
	if err != nil {
		return model.Note{}, fmt.Errorf("failed to get note by id: %w", err)
	}

	return note, nil
}

// List returns every note owned by owner, in no particular order. An owner
// with zero notes gets ErrNotFound, not an empty list.
func (s *Note) List(ctx context.Context, owner string) ([]model.Note, error) {
	notes, err := s.noteStore.GetByOwner(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("failed to get notes by owner: %w", err)
	}

	if len(notes) == 0 {
		return nil, model.ErrNotFound
	}

	return notes, nil
}

// Update changes the supplied fields of the note with the given id if it is
// owned by owner. A nil field is left untouched; a supplied field must be
// non-empty.
func (s *Note) Update(ctx context.Context, owner string, id uuid.UUID, update model.NoteUpdate) error {
	if update.Title == nil && update.Content == nil {
		return model.NewValidationError("Either title or content must be provided for update.")
	}
	if update.Title != nil && *update.Title == "" {
		return model.NewValidationError("Title must not be empty.")
	}
	if update.Content != nil && *update.Content == "" {
		return model.NewValidationError("Content must not be empty.")
	}

	if err := s.noteStore.Update(ctx, id, owner, update); err != nil {
		return fmt.Errorf("failed to update note: %w", err)
	}

	s.logger.Info("Note service: note updated",
		"owner", owner,
		"note_id", id)

	return nil
}

// Delete removes the note with the given id if it is owned by owner.
func (s *Note) Delete(ctx context.Context, owner string, id uuid.UUID) error {
	if err := s.noteStore.Delete(ctx, id, owner); err != nil {
		return fmt.Errorf("failed to delete note: %w", err)
	}

	s.logger.Info("Note service: note deleted",
		"owner", owner,
		"note_id", id)

	return nil
}

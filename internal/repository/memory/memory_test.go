package memory

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quirknotes/server/internal/model"
)

func strPtr(s string) *string {
	return &s
}

func TestUserRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository()

	_, err := repo.GetByUsername(ctx, "alice")
	require.ErrorIs(t, err, model.ErrNotFound)

	_, err = repo.Create(ctx, model.User{Username: "alice", PasswordHash: "hashed"})
	require.NoError(t, err)

	user, err := repo.GetByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "hashed", user.PasswordHash)

	_, err = repo.Create(ctx, model.User{Username: "alice", PasswordHash: "other"})
	require.ErrorIs(t, err, model.ErrUsernameTaken)
}

func TestNoteRepository_OwnershipScoping(t *testing.T) {
	ctx := context.Background()
	repo := NewNoteRepository()

	note := model.Note{ID: uuid.New(), Title: "a", Content: "b", Owner: "alice"}
	_, err := repo.Create(ctx, note)
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, note.ID, "alice")
	require.NoError(t, err)
	assert.Equal(t, note, got)

	_, err = repo.GetByID(ctx, note.ID, "bob")
	require.ErrorIs(t, err, model.ErrNotFound)

	err = repo.Update(ctx, note.ID, "bob", model.NoteUpdate{Title: strPtr("x")})
	require.ErrorIs(t, err, model.ErrNotFound)

	err = repo.Delete(ctx, note.ID, "bob")
	require.ErrorIs(t, err, model.ErrNotFound)

	notes, err := repo.GetByOwner(ctx, "bob")
	require.NoError(t, err)
	assert.Empty(t, notes)
}

func TestNoteRepository_UpdatePartialFields(t *testing.T) {
	ctx := context.Background()
	repo := NewNoteRepository()

	note := model.Note{ID: uuid.New(), Title: "a", Content: "b", Owner: "alice"}
	_, err := repo.Create(ctx, note)
	require.NoError(t, err)

	err = repo.Update(ctx, note.ID, "alice", model.NoteUpdate{Content: strPtr("c")})
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, note.ID, "alice")
	require.NoError(t, err)
	assert.Equal(t, "a", got.Title)
	assert.Equal(t, "c", got.Content)
}

func TestNoteRepository_DeleteThenGet(t *testing.T) {
	ctx := context.Background()
	repo := NewNoteRepository()

	note := model.Note{ID: uuid.New(), Title: "a", Content: "b", Owner: "alice"}
	_, err := repo.Create(ctx, note)
	require.NoError(t, err)

	err = repo.Delete(ctx, note.ID, "alice")
	require.NoError(t, err)

	_, err = repo.GetByID(ctx, note.ID, "alice")
	require.ErrorIs(t, err, model.ErrNotFound)
}

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/quirknotes/server/internal/model"
	"github.com/quirknotes/server/internal/testutil"
)

// MockNoteStore mocks the NoteStore interface
type MockNoteStore struct {
	mock.Mock
}

func (m *MockNoteStore) Create(ctx context.Context, note model.Note) (model.Note, error) {
	args := m.Called(ctx, note)
	return args.Get(0).(model.Note), args.Error(1)
}

func (m *MockNoteStore) GetByID(ctx context.Context, id uuid.UUID, owner string) (model.Note, error) {
	args := m.Called(ctx, id, owner)
	return args.Get(0).(model.Note), args.Error(1)
}

func (m *MockNoteStore) GetByOwner(ctx context.Context, owner string) ([]model.Note, error) {
	args := m.Called(ctx, owner)
	return args.Get(0).([]model.Note), args.Error(1)
}

func (m *MockNoteStore) Update(ctx context.Context, id uuid.UUID, owner string, update model.NoteUpdate) error {
	args := m.Called(ctx, id, owner, update)
	return args.Error(0)
}

func (m *MockNoteStore) Delete(ctx context.Context, id uuid.UUID, owner string) error {
	args := m.Called(ctx, id, owner)
	return args.Error(0)
}

func strPtr(s string) *string {
	return &s
}

func TestNote_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		noteStore := &MockNoteStore{}
		svc := NewNote(noteStore, testutil.MakeNoopLogger())

		noteStore.On("Create", ctx, mock.MatchedBy(func(n model.Note) bool {
			return n.ID != uuid.Nil && n.Title == "a" && n.Content == "b" && n.Owner == "alice"
		})).Return(model.Note{ID: uuid.New(), Title: "a", Content: "b", Owner: "alice"}, nil)

		note, err := svc.Create(ctx, "alice", "a", "b")
		require.NoError(t, err)
		assert.Equal(t, "alice", note.Owner)
		assert.NotEqual(t, uuid.Nil, note.ID)
		noteStore.AssertExpectations(t)
	})

	t.Run("missing fields", func(t *testing.T) {
		svc := NewNote(&MockNoteStore{}, testutil.MakeNoopLogger())

		var vErr *model.ValidationError
		_, err := svc.Create(ctx, "alice", "", "b")
		require.ErrorAs(t, err, &vErr)

		_, err = svc.Create(ctx, "alice", "a", "")
		require.ErrorAs(t, err, &vErr)
	})

	t.Run("store failure", func(t *testing.T) {
		noteStore := &MockNoteStore{}
		svc := NewNote(noteStore, testutil.MakeNoopLogger())

		noteStore.On("Create", ctx, mock.Anything).Return(model.Note{}, errors.New("connection refused"))

		_, err := svc.Create(ctx, "alice", "a", "b")
		require.Error(t, err)
	})
}

func TestNote_Get(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	t.Run("success", func(t *testing.T) {
		noteStore := &MockNoteStore{}
		svc := NewNote(noteStore, testutil.MakeNoopLogger())

		noteStore.On("GetByID", ctx, id, "alice").Return(model.Note{ID: id, Title: "a", Content: "b", Owner: "alice"}, nil)

		note, err := svc.Get(ctx, "alice", id)
		require.NoError(t, err)
		assert.Equal(t, id, note.ID)
	})

	t.Run("not owned reports not found", func(t *testing.T) {
		noteStore := &MockNoteStore{}
		svc := NewNote(noteStore, testutil.MakeNoopLogger())

		noteStore.On("GetByID", ctx, id, "bob").Return(model.Note{}, model.ErrNotFound)

		_, err := svc.Get(ctx, "bob", id)
		require.ErrorIs(t, err, model.ErrNotFound)
	})
}

func TestNote_List(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		noteStore := &MockNoteStore{}
		svc := NewNote(noteStore, testutil.MakeNoopLogger())

		stored := []model.Note{
			{ID: uuid.New(), Title: "a", Content: "b", Owner: "alice"},
			{ID: uuid.New(), Title: "c", Content: "d", Owner: "alice"},
		}
		noteStore.On("GetByOwner", ctx, "alice").Return(stored, nil)

		notes, err := svc.List(ctx, "alice")
		require.NoError(t, err)
		assert.Len(t, notes, 2)
	})

	t.Run("empty list is not found", func(t *testing.T) {
		noteStore := &MockNoteStore{}
		svc := NewNote(noteStore, testutil.MakeNoopLogger())

		noteStore.On("GetByOwner", ctx, "alice").Return([]model.Note{}, nil)

		_, err := svc.List(ctx, "alice")
		require.ErrorIs(t, err, model.ErrNotFound)
	})
}

func TestNote_Update(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	t.Run("single field", func(t *testing.T) {
		noteStore := &MockNoteStore{}
		svc := NewNote(noteStore, testutil.MakeNoopLogger())

		update := model.NoteUpdate{Content: strPtr("c")}
		noteStore.On("Update", ctx, id, "alice", update).Return(nil)

		err := svc.Update(ctx, "alice", id, update)
		require.NoError(t, err)
		noteStore.AssertExpectations(t)
	})

	t.Run("no fields", func(t *testing.T) {
		svc := NewNote(&MockNoteStore{}, testutil.MakeNoopLogger())

		var vErr *model.ValidationError
		err := svc.Update(ctx, "alice", id, model.NoteUpdate{})
		require.ErrorAs(t, err, &vErr)
	})

	t.Run("supplied but empty field", func(t *testing.T) {
		svc := NewNote(&MockNoteStore{}, testutil.MakeNoopLogger())

		var vErr *model.ValidationError
		err := svc.Update(ctx, "alice", id, model.NoteUpdate{Title: strPtr("")})
		require.ErrorAs(t, err, &vErr)

		err = svc.Update(ctx, "alice", id, model.NoteUpdate{Content: strPtr("")})
		require.ErrorAs(t, err, &vErr)
	})

	t.Run("not owned reports not found", func(t *testing.T) {
		noteStore := &MockNoteStore{}
		svc := NewNote(noteStore, testutil.MakeNoopLogger())

		noteStore.On("Update", ctx, id, "bob", mock.Anything).Return(model.ErrNotFound)

		err := svc.Update(ctx, "bob", id, model.NoteUpdate{Title: strPtr("a")})
		require.ErrorIs(t, err, model.ErrNotFound)
	})
}

func TestNote_Delete(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	t.Run("success", func(t *testing.T) {
		noteStore := &MockNoteStore{}
		svc := NewNote(noteStore, testutil.MakeNoopLogger())

		noteStore.On("Delete", ctx, id, "alice").Return(nil)

		err := svc.Delete(ctx, "alice", id)
		require.NoError(t, err)
	})

	t.Run("not owned reports not found", func(t *testing.T) {
		noteStore := &MockNoteStore{}
		svc := NewNote(noteStore, testutil.MakeNoopLogger())

		noteStore.On("Delete", ctx, id, "bob").Return(model.ErrNotFound)

		err := svc.Delete(ctx, "bob", id)
		require.ErrorIs(t, err, model.ErrNotFound)
	})
}

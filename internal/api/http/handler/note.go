package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/quirknotes/server/internal/logger"
	"github.com/quirknotes/server/internal/model"
)

// NoteService defines note CRUD operations on behalf of an owner.
type NoteService interface {
	Create(ctx context.Context, owner, title, content string) (model.Note, error)
	Get(ctx context.Context, owner string, id uuid.UUID) (model.Note, error)
	List(ctx context.Context, owner string) ([]model.Note, error)
	Update(ctx context.Context, owner string, id uuid.UUID, update model.NoteUpdate) error
	Delete(ctx context.Context, owner string, id uuid.UUID) error
}

// Gateway authenticates a request and yields the caller's username.
type Gateway interface {
	Authenticate(r *http.Request) (string, error)
}

// Note handles the note endpoints. Each handler validates its input, then
// authenticates through the gateway, then calls the service; no repository
// call happens before the gateway has accepted the token.
type Note struct {
	noteService NoteService
	gateway     Gateway
	logger      *logger.Logger
}

// NewNote creates a new Note handler.
func NewNote(noteService NoteService, gateway Gateway, logger *logger.Logger) *Note {
	return &Note{
		noteService: noteService,
		gateway:     gateway,
		logger:      logger,
	}
}

type postNoteRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type editNoteRequest struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

type noteResponse struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
	Owner   string `json:"owner"`
}

func toNoteResponse(note model.Note) noteResponse {
	return noteResponse{
		ID:      note.ID.String(),
		Title:   note.Title,
		Content: note.Content,
		Owner:   note.Owner,
	}
}

// noteID validates the path parameter before anything else runs, so a
// malformed id is rejected even when the token is also bad.
func noteID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue("noteId"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid note ID.")
		return uuid.Nil, false
	}
	return id, true
}

// PostNote handles POST /postNote.
func (h *Note) PostNote(w http.ResponseWriter, r *http.Request) {
	var req postNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Title and content are both required.")
		return
	}
	if req.Title == "" || req.Content == "" {
		respondError(w, http.StatusBadRequest, "Title and content are both required.")
		return
	}

	username, err := h.gateway.Authenticate(r)
	if err != nil {
		handleError(w, err)
		return
	}

	note, err := h.noteService.Create(r.Context(), username, req.Title, req.Content)
	if err != nil {
		h.logger.Error("Note handler: create failed",
			"owner", username,
			"error", err.Error())
		handleError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, struct {
		Response   string `json:"response"`
		InsertedID string `json:"insertedId"`
	}{
		Response:   "Note added succesfully.",
		InsertedID: note.ID.String(),
	})
}

// GetNote handles GET /getNote/{noteId}.
func (h *Note) GetNote(w http.ResponseWriter, r *http.Request) {
	id, ok := noteID(w, r)
	if !ok {
		return
	}

	username, err := h.gateway.Authenticate(r)
	if err != nil {
		handleError(w, err)
		return
	}

	note, err := h.noteService.Get(r.Context(), username, id)
	if err != nil {
		if !errors.Is(err, model.ErrNotFound) {
			h.logger.Error("Note handler: get failed",
				"owner", username,
				"note_id", id,
				"error", err.Error())
		}
		handleError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, struct {
		Response noteResponse `json:"response"`
	}{Response: toNoteResponse(note)})
}

// GetAllNotes handles GET /getAllNotes.
func (h *Note) GetAllNotes(w http.ResponseWriter, r *http.Request) {
	username, err := h.gateway.Authenticate(r)
	if err != nil {
		handleError(w, err)
		return
	}

	notes, err := h.noteService.List(r.Context(), username)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			respondError(w, http.StatusNotFound, "No notes found for the user.")
			return
		}
		h.logger.Error("Note handler: list failed",
			"owner", username,
			"error", err.Error())
		handleError(w, err)
		return
	}

	body := make([]noteResponse, 0, len(notes))
	for _, note := range notes {
		body = append(body, toNoteResponse(note))
	}

	respondJSON(w, http.StatusOK, struct {
		Response []noteResponse `json:"response"`
	}{Response: body})
}

// EditNote handles PATCH /editNote/{noteId}.
func (h *Note) EditNote(w http.ResponseWriter, r *http.Request) {
	id, ok := noteID(w, r)
	if !ok {
		return
	}

	username, err := h.gateway.Authenticate(r)
	if err != nil {
		handleError(w, err)
		return
	}

	var req editNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Either title or content must be provided for update.")
		return
	}

	update := model.NoteUpdate{Title: req.Title, Content: req.Content}
	if err := h.noteService.Update(r.Context(), username, id, update); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			respondError(w, http.StatusNotFound, fmt.Sprintf("Note with ID %s not found for the user.", id))
			return
		}
		var vErr *model.ValidationError
		if !errors.As(err, &vErr) {
			h.logger.Error("Note handler: edit failed",
				"owner", username,
				"note_id", id,
				"error", err.Error())
		}
		handleError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, struct {
		Response string `json:"response"`
	}{Response: fmt.Sprintf("Document with ID %s properly updated.", id)})
}

// DeleteNote handles DELETE /deleteNote/{noteId}.
func (h *Note) DeleteNote(w http.ResponseWriter, r *http.Request) {
	id, ok := noteID(w, r)
	if !ok {
		return
	}

	username, err := h.gateway.Authenticate(r)
	if err != nil {
		handleError(w, err)
		return
	}

	if err := h.noteService.Delete(r.Context(), username, id); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			respondError(w, http.StatusNotFound, fmt.Sprintf("Note with ID %s not found for the user.", id))
			return
		}
		h.logger.Error("Note handler: delete failed",
			"owner", username,
			"note_id", id,
			"error", err.Error())
		handleError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, struct {
		Response string `json:"response"`
	}{Response: fmt.Sprintf("Document with ID %s properly deleted.", id)})
}

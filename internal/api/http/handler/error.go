package handler

import (
	"errors"
	"net/http"

	"github.com/quirknotes/server/internal/model"
)

// handleError translates service errors into HTTP responses. Handlers map
// route-specific not-found messages themselves before falling back here.
// Internal failures surface as a bare 500 with no detail leaked.
func handleError(w http.ResponseWriter, err error) {
	var vErr *model.ValidationError

	switch {
	case errors.As(err, &vErr):
		respondError(w, http.StatusBadRequest, vErr.Reason)
	case errors.Is(err, model.ErrUsernameTaken):
		respondError(w, http.StatusBadRequest, "Username already exists.")
	case errors.Is(err, model.ErrInvalidCredentials):
		respondError(w, http.StatusUnauthorized, "Authentication failed.")
	case errors.Is(err, model.ErrInvalidToken):
		respondError(w, http.StatusUnauthorized, "Unauthorized.")
	case errors.Is(err, model.ErrNotFound):
		respondError(w, http.StatusNotFound, "Unable to find note with given ID.")
	default:
		respondError(w, http.StatusInternalServerError, "Internal server error.")
	}
}

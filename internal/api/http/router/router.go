package router

import (
	"net/http"

	"github.com/quirknotes/server/internal/api/http/handler"
	"github.com/quirknotes/server/internal/api/http/middleware"
	"github.com/quirknotes/server/internal/logger"
)

// Router registers the HTTP endpoints and request middleware.
type Router struct {
	authService handler.AuthService
	noteService handler.NoteService
	gateway     handler.Gateway
	logger      *logger.Logger
}

// New creates a new Router instance.
func New(
	authService handler.AuthService,
	noteService handler.NoteService,
	gateway handler.Gateway,
	logger *logger.Logger,
) *Router {
	return &Router{
		authService: authService,
		noteService: noteService,
		gateway:     gateway,
		logger:      logger,
	}
}

// Register builds the route table and wraps it with request logging.
func (r *Router) Register() http.Handler {
	authHandler := handler.NewAuth(r.authService, r.logger)
	noteHandler := handler.NewNote(r.noteService, r.gateway, r.logger)

	mux := http.NewServeMux()
	mux.HandleFunc("POST /registerUser", authHandler.RegisterUser)
	mux.HandleFunc("POST /loginUser", authHandler.LoginUser)
	mux.HandleFunc("POST /postNote", noteHandler.PostNote)
	mux.HandleFunc("GET /getNote/{noteId}", noteHandler.GetNote)
	mux.HandleFunc("GET /getAllNotes", noteHandler.GetAllNotes)
	mux.HandleFunc("PATCH /editNote/{noteId}", noteHandler.EditNote)
	mux.HandleFunc("DELETE /deleteNote/{noteId}", noteHandler.DeleteNote)

	logging := middleware.NewLogging(r.logger)
	return logging.Handler(mux)
}

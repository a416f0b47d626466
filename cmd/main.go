package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/quirknotes/server/internal/api/http/middleware"
	"github.com/quirknotes/server/internal/api/http/router"
	httpserver "github.com/quirknotes/server/internal/api/http/server"
	"github.com/quirknotes/server/internal/config"
	"github.com/quirknotes/server/internal/hash"
	"github.com/quirknotes/server/internal/logger"
	"github.com/quirknotes/server/internal/model"
	"github.com/quirknotes/server/internal/repository/dynamo"
	"github.com/quirknotes/server/internal/service"
	"github.com/quirknotes/server/internal/token"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel)

	db, err := dynamo.NewClient(ctx, cfg.Database.Endpoint)
	if err != nil {
		logger.Fatal("failed to initialize database client", "error", err)
	}

	userRepo := dynamo.NewUserRepository(db, cfg.Database.UsersTable)
	noteRepo := dynamo.NewNoteRepository(db, cfg.Database.NotesTable, cfg.Database.OwnerIndex)

	tokenManager := token.NewJWT(cfg.JWT.Secret, cfg.JWT.TokenTTL)
	hasher := hash.NewBcrypt(cfg.Hash.Cost)

	authService := service.NewAuth(userRepo, hasher, tokenManager, logger)
	noteService := service.NewNote(noteRepo, logger)
	gateway := middleware.NewAuthenticate(tokenManager, logger)

	r := router.New(authService, noteService, gateway, logger)
	srv := httpserver.NewHTTPServer(r.Register(), fmt.Sprintf(":%s", cfg.HTTP.Port))

	var sl model.SecurityLayer
	if cfg.HTTP.EnableHTTPS {
		sl = httpserver.NewTLSListener(cfg.HTTP.CertFileName, cfg.HTTP.PrivateKeyFileName)
	} else {
		sl = httpserver.NewPlainListener()
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func(s model.Server) {
		defer wg.Done()
		logger.Info("Starting server on", "address", s.Address())
		err := s.Start(sl)
		if err != nil {
			logger.Error("failed to start server", "error", err)
		}
	}(srv)

	logAppVersion()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Stop(shutdownCtx); err != nil {
		logger.Error("error during server shutdown", "error", err, "address", srv.Address())
	}

	wg.Wait()
	logger.Info("shutdown complete")
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}

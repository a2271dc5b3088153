package main

import (
	"context"
	"fmt"
	"os"

	"github.com/AlibekovAA/secure-notes/internal/app"
	authservice "github.com/AlibekovAA/secure-notes/internal/auth/service"
	"github.com/AlibekovAA/secure-notes/internal/common/bootstrap"
	"github.com/AlibekovAA/secure-notes/internal/common/clock"
	commoncrypto "github.com/AlibekovAA/secure-notes/internal/common/crypto"
	srv "github.com/AlibekovAA/secure-notes/internal/common/server"
	noteservice "github.com/AlibekovAA/secure-notes/internal/note/service"
)

func main() {
	notesApp, err := bootstrap.NewNotesApp()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to start notes service: %v\n", err)
		os.Exit(1)
	}

	log := notesApp.Log
	cfg := notesApp.Config

	realClock := clock.NewRealClock()
	idGenerator := commoncrypto.NewUUIDGenerator()
	hasher := commoncrypto.NewBcryptHasher(cfg.BcryptCost)

	tokenService := authservice.NewTokenService(cfg.JWTSecret, cfg.AccessTokenTTL, idGenerator, realClock)
	authService := authservice.NewAuthService(notesApp.UserRepo, hasher, tokenService, log)
	noteService := noteservice.NewNoteService(notesApp.NoteRepo, idGenerator, realClock, log)

	handler := app.NewHandler(app.Dependencies{
		Log:            log,
		Auth:           authService,
		Notes:          noteService,
		Verifier:       tokenService,
		Store:          notesApp.Pool,
		RequestTimeout: cfg.RequestTimeout,
	})

	server := srv.NewServer(srv.DefaultServerConfig(cfg.HTTPPort, cfg.RequestTimeout), handler, log)

	shutdownHooks := []srv.ShutdownHook{
		func(ctx context.Context) error {
			log.Infof("notes service: closing database pool")
			return notesApp.Close(ctx)
		},
	}

	srv.StartWithGracefulShutdownAndHooks(server, log, "notes", shutdownHooks)
}

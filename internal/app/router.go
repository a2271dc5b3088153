package app

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	authhttp "github.com/AlibekovAA/secure-notes/internal/auth/http"
	commonhttp "github.com/AlibekovAA/secure-notes/internal/common/http"
	"github.com/AlibekovAA/secure-notes/internal/common/httpmetrics"
	"github.com/AlibekovAA/secure-notes/internal/common/jwtverify"
	"github.com/AlibekovAA/secure-notes/internal/common/logger"
	notehttp "github.com/AlibekovAA/secure-notes/internal/note/http"
	noteservice "github.com/AlibekovAA/secure-notes/internal/note/service"
)

type Dependencies struct {
	Log            *logger.Logger
	Auth           authhttp.AuthService
	Notes          noteservice.Service
	Verifier       jwtverify.Verifier
	Store          commonhttp.Pinger
	RequestTimeout time.Duration
}

// NewHandler returns the complete HTTP surface, wrapped in the base
// middleware chain.
func NewHandler(deps Dependencies) http.Handler {
	r := chi.NewRouter()
	r.Use(httpmetrics.New().Wrap)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		commonhttp.WriteErrorEnvelope(w, http.StatusNotFound, commonhttp.CodeNotFound, "resource not found", commonhttp.TraceIDFromContext(r.Context()))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		commonhttp.WriteErrorEnvelope(w, http.StatusMethodNotAllowed, commonhttp.CodeMethodNotAllowed, "method not allowed", commonhttp.TraceIDFromContext(r.Context()))
	})

	r.Get("/health", commonhttp.HealthHandler(deps.Log, deps.Store))
	r.Handle("/metrics", promhttp.Handler())

	authHandler := authhttp.NewHandler(deps.Auth, deps.RequestTimeout, deps.Log)
	r.Route("/api/user", authHandler.Register)

	noteHandler := notehttp.NewHandler(deps.Notes, deps.RequestTimeout, deps.Log)
	r.Route("/api/notes", func(r chi.Router) {
		r.Use(jwtverify.Middleware(deps.Verifier, deps.Log))
		noteHandler.Register(r)
	})

	return commonhttp.BuildBaseHandler(deps.Log, r)
}

package http

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/AlibekovAA/secure-notes/internal/auth/service"
	commonerrors "github.com/AlibekovAA/secure-notes/internal/common/errors"
	commonhttp "github.com/AlibekovAA/secure-notes/internal/common/http"
	"github.com/AlibekovAA/secure-notes/internal/common/logger"
)

type AuthService interface {
	Signup(ctx context.Context, input service.SignupInput) (service.AuthResult, error)
	Login(ctx context.Context, input service.LoginInput) (service.AuthResult, error)
}

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

type Handler struct {
	auth    AuthService
	timeout time.Duration
	log     *logger.Logger
}

func NewHandler(auth AuthService, requestTimeout time.Duration, log *logger.Logger) *Handler {
	return &Handler{auth: auth, timeout: requestTimeout, log: log}
}

// Register expects r to be scoped to /api/user.
func (h *Handler) Register(r chi.Router) {
	withTimeout := commonhttp.WithTimeout(h.timeout)
	r.Post("/signup", withTimeout(h.signup))
	r.Post("/login", withTimeout(h.login))
}

func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := commonhttp.DecodeJSON(r, &req); err != nil {
		h.log.WithFields(r.Context(), logger.Fields{"action": "signup_invalid_json"}).Warnf("signup failed: %v", err)
		commonhttp.HandleError(w, r, err, h.log)
		return
	}

	result, err := h.auth.Signup(r.Context(), service.SignupInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		commonhttp.HandleError(w, r, err, h.log)
		return
	}

	commonhttp.WriteJSON(w, http.StatusCreated, tokenResponse{Token: result.Token})
}

// login answers an unreadable body the same way as a wrong password.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := commonhttp.DecodeJSON(r, &req); err != nil {
		h.log.WithFields(r.Context(), logger.Fields{"action": "login_invalid_json"}).Warnf("login failed: %v", err)
		commonhttp.HandleError(w, r, commonerrors.ErrInvalidCredentials, h.log)
		return
	}

	result, err := h.auth.Login(r.Context(), service.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		commonhttp.HandleError(w, r, err, h.log)
		return
	}

	commonhttp.WriteJSON(w, http.StatusOK, tokenResponse{Token: result.Token})
}

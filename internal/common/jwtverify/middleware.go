package jwtverify

import (
	"context"
	"net/http"
	"strings"

	commonerrors "github.com/AlibekovAA/secure-notes/internal/common/errors"
	commonhttp "github.com/AlibekovAA/secure-notes/internal/common/http"
	"github.com/AlibekovAA/secure-notes/internal/common/logger"
)

// Identity is what a verified token asserts about its bearer.
type Identity struct {
	UserID   string
	Username string
}

type Verifier interface {
	Verify(token string) (Identity, error)
}

type contextKey string

const identityKey contextKey = "jwt_identity"

const bearerScheme = "Bearer"

func Middleware(verifier Verifier, log *logger.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r.Header.Get("Authorization"))
			if !ok {
				log.WithFields(r.Context(), logger.Fields{
					"path":   r.URL.Path,
					"action": "auth_gate_missing_token",
				}).Warn("jwt auth failed: missing bearer token")
				commonhttp.HandleError(w, r, commonerrors.ErrMissingToken, log)
				return
			}

			identity, err := verifier.Verify(token)
			if err != nil {
				log.WithFields(r.Context(), logger.Fields{
					"path":   r.URL.Path,
					"action": "auth_gate_invalid_token",
				}).Warnf("jwt auth failed: %v", err)
				commonhttp.HandleError(w, r, commonerrors.ErrInvalidToken, log)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), identity)))
		})
	}
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, bearerScheme) {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

func WithIdentity(ctx context.Context, identity Identity) context.Context {
	return context.WithValue(ctx, identityKey, identity)
}

func FromContext(ctx context.Context) (Identity, bool) {
	identity, ok := ctx.Value(identityKey).(Identity)
	return identity, ok
}

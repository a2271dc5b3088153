package http

import (
	"net/http"
	"runtime/debug"

	"github.com/AlibekovAA/secure-notes/internal/common/logger"
	"github.com/AlibekovAA/secure-notes/internal/observability/metrics"
)

func RecoveryMiddleware(log *logger.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				metrics.PanicsRecoveredTotal.Inc()
				log.WithFields(r.Context(), logger.Fields{
					"path":   r.URL.Path,
					"method": r.Method,
					"action": "panic_recovered",
				}).Criticalf("panic recovered: %v\n%s", rec, debug.Stack())

				WriteErrorEnvelope(w, http.StatusInternalServerError, CodeInternal, "internal server error", TraceIDFromContext(r.Context()))
			}()
			next.ServeHTTP(w, r)
		})
	}
}

package http

import (
	"context"
	"net/http"
	"time"

	"github.com/AlibekovAA/secure-notes/internal/common/logger"
)

const healthPingTimeout = 2 * time.Second

// Pinger is satisfied by *pgxpool.Pool.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler answers 503 while the store is unreachable. A nil pinger
// only reports process liveness.
func HealthHandler(log *logger.Logger, store Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if store != nil {
			ctx, cancel := context.WithTimeout(r.Context(), healthPingTimeout)
			defer cancel()

			if err := store.Ping(ctx); err != nil {
				log.WithFields(r.Context(), logger.Fields{"action": "health_store_unreachable"}).Warnf("health check failed: %v", err)
				WriteJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
				return
			}
		}

		WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}

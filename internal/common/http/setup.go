package http

import (
	"net/http"

	"github.com/AlibekovAA/secure-notes/internal/common/constants"
	"github.com/AlibekovAA/secure-notes/internal/common/logger"
)

// BuildBaseHandler wraps handler with the process-wide middleware chain,
// outermost first: security headers, recovery, trace id, body limit.
func BuildBaseHandler(log *logger.Logger, handler http.Handler) http.Handler {
	recovery := RecoveryMiddleware(log)
	maxRequestSize := MaxRequestSizeMiddleware(constants.DefaultMaxRequestSize)

	return SecurityHeadersMiddleware(recovery(TraceIDMiddleware(maxRequestSize(handler))))
}

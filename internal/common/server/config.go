package server

import (
	"net/http"
	"time"

	"github.com/AlibekovAA/secure-notes/internal/common/constants"
	"github.com/AlibekovAA/secure-notes/internal/common/logger"
)

type ServerConfig struct {
	Addr              string
	ReadHeaderTimeout time.Duration
	ReadTimeout       time.Duration
	WriteTimeout      time.Duration
	IdleTimeout       time.Duration
	MaxHeaderBytes    int
}

// DefaultServerConfig keeps WriteTimeout above the per-request store
// timeout so a slow statement still gets its error envelope out.
func DefaultServerConfig(port string, requestTimeout time.Duration) ServerConfig {
	writeTimeout := constants.ServerWriteTimeout
	if requestTimeout+time.Second > writeTimeout {
		writeTimeout = requestTimeout + time.Second
	}

	return ServerConfig{
		Addr:              ":" + port,
		ReadHeaderTimeout: constants.ServerReadHeaderTimeout,
		ReadTimeout:       constants.ServerReadTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       constants.ServerIdleTimeout,
		MaxHeaderBytes:    constants.ServerMaxHeaderBytes,
	}
}

// NewServer routes net/http's own diagnostics into log at warning level.
func NewServer(cfg ServerConfig, handler http.Handler, log *logger.Logger) *http.Server {
	return &http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		ReadTimeout:       cfg.ReadTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
		MaxHeaderBytes:    cfg.MaxHeaderBytes,
		ErrorLog:          log.StdLogger(logger.WARNING),
	}
}

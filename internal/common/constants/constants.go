package constants

import "time"

const (
	UsernameMinLength  = 1
	UsernameMaxLength  = 64
	PasswordMinLength  = 1
	PasswordMaxBytes   = 72
	JWTSecretMinLength = 32

	NoteTitleMaxLength      = 50
	NoteTextMaxLength       = 300
	SearchFragmentMaxLength = NoteTitleMaxLength

	DefaultMaxRequestSize = 1 << 20

	DBPoolMaxOpenConns    = 25
	DBPoolMinOpenConns    = 5
	DBPoolConnMaxLifetime = time.Hour
	DBPoolConnMaxIdleTime = 30 * time.Minute
	DBPoolHealthCheck     = 1 * time.Minute
	DBPoolConnectTimeout  = 5 * time.Second
	DBPoolMaxAttempts     = 10
	DBPoolRetryDelay      = 1 * time.Second
	DBPoolMetricsInterval = 30 * time.Second

	ServerReadHeaderTimeout = 10 * time.Second
	ServerReadTimeout       = 30 * time.Second
	ServerWriteTimeout      = 30 * time.Second
	ServerIdleTimeout       = 120 * time.Second
	ServerMaxHeaderBytes    = 1 << 16

	ShutdownTimeout = 30 * time.Second
	DrainTimeout    = 10 * time.Second

	DefaultNotesHTTPPort       = "3000"
	DefaultAccessTokenTTL      = time.Hour
	DefaultBcryptCost          = 12
	DefaultNotesRequestTimeout = 5 * time.Second

	LoggerMaxSize    = 100
	LoggerMaxBackups = 3
	LoggerMaxAge     = 28

	TestJWTSecret      = "test-secret-key-must-be-at-least-32-bytes-long"
	TestAccessTokenTTL = 15 * time.Minute
)

type TraceIDKeyType string

const TraceIDKey TraceIDKeyType = "trace_id"

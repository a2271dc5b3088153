package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/AlibekovAA/secure-notes/internal/common/constants"
	commonerrors "github.com/AlibekovAA/secure-notes/internal/common/errors"
)

type NotesConfig struct {
	HTTPPort       string
	DatabaseURL    string
	JWTSecret      string
	AccessTokenTTL time.Duration
	BcryptCost     int
	RequestTimeout time.Duration
	MigrateOnStart bool
	LogDir         string
	LogLevel       string
}

func LoadNotesConfig() (NotesConfig, error) {
	jwtSecret, err := mustEnv("JWT_SECRET")
	if err != nil {
		return NotesConfig{}, err
	}

	if err := validateJWTSecret(jwtSecret); err != nil {
		return NotesConfig{}, err
	}

	databaseURL, err := mustEnv("DATABASE_URL")
	if err != nil {
		return NotesConfig{}, err
	}

	return NotesConfig{
		HTTPPort:       getEnv("NOTES_HTTP_PORT", constants.DefaultNotesHTTPPort),
		DatabaseURL:    databaseURL,
		JWTSecret:      jwtSecret,
		AccessTokenTTL: getDurationEnv("ACCESS_TOKEN_TTL", constants.DefaultAccessTokenTTL),
		BcryptCost:     clampBcryptCost(getIntEnv("BCRYPT_COST", constants.DefaultBcryptCost)),
		RequestTimeout: getDurationEnv("NOTES_REQUEST_TIMEOUT", constants.DefaultNotesRequestTimeout),
		MigrateOnStart: getBoolEnv("MIGRATE_ON_START", true),
		LogDir:         getEnv("LOG_DIR", ""),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
	}, nil
}

func validateJWTSecret(secret string) error {
	if len(secret) < constants.JWTSecretMinLength {
		return fmt.Errorf("%w: got %d bytes", commonerrors.ErrInvalidJWTSecret, len(secret))
	}
	return nil
}

func clampBcryptCost(cost int) int {
	if cost < bcrypt.MinCost {
		return bcrypt.MinCost
	}
	if cost > bcrypt.MaxCost {
		return bcrypt.MaxCost
	}
	return cost
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func mustEnv(key string) (string, error) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return "", fmt.Errorf("%w: %s", commonerrors.ErrMissingRequiredEnv, key)
	}
	return v, nil
}

func getDurationEnv(key string, fallback time.Duration) time.Duration {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}

func getIntEnv(key string, fallback int) int {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return i
}

func getBoolEnv(key string, fallback bool) bool {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}

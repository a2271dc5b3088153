package service

import (
	"github.com/AlibekovAA/secure-notes/internal/observability/metrics"
)

func incrementAccessTokensIssued() {
	metrics.AccessTokensIssued.Inc()
}

func recordSignup(result string) {
	metrics.SignupsTotal.WithLabelValues(result).Inc()
}

func recordLogin(result string) {
	metrics.LoginsTotal.WithLabelValues(result).Inc()
}

func recordTokenValidation(err error) {
	metrics.JWTValidationsTotal.Inc()
	if err != nil {
		metrics.JWTValidationsFailed.WithLabelValues(tokenFailureReason(err)).Inc()
	}
}

package service

import (
	"github.com/AlibekovAA/secure-notes/internal/observability/metrics"
)

func recordOperation(operation string, err error) {
	result := "success"
	if err != nil {
		result = "failure"
	}
	metrics.NoteOperationsTotal.WithLabelValues(operation, result).Inc()
}

package httpmetrics

import (
	"strings"

	"github.com/google/uuid"
)

// NormalizePath is the label fallback for requests chi could not route.
// Note ids collapse to {id} and numeric segments to {param}.
func NormalizePath(path string) string {
	segments := strings.Split(strings.Trim(path, "/"), "/")

	for i, seg := range segments {
		switch {
		case seg == "":
		case uuid.Validate(seg) == nil && len(seg) == 36:
			segments[i] = "{id}"
		case isNumeric(seg):
			segments[i] = "{param}"
		}
	}

	return "/" + strings.Join(segments, "/")
}

func isNumeric(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}

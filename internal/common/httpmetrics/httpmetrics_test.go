package httpmetrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/AlibekovAA/secure-notes/internal/observability/metrics"
)

func TestNormalizePath(t *testing.T) {
	cases := map[string]string{
		"":                 "/",
		"/api/notes":       "/api/notes",
		"/api/notes/":      "/api/notes",
		"/api/notes/42":    "/api/notes/{param}",
		"/api/notes/x-42y": "/api/notes/x-42y",

		"/api/notes/3F2504E0-4F89-11D3-9A0C-0305E82C3301": "/api/notes/{id}",
		"/api/notes/0b9f1c3e-1d2a-4c5b-8e7f-6a5b4c3d2e1f": "/api/notes/{id}",
	}

	for in, want := range cases {
		assert.Equal(t, want, NormalizePath(in), in)
	}
}

func TestCollector_UsesRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(New().Wrap)
	r.Get("/api/notes/{id}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	before := testutil.ToFloat64(metrics.NotesRequestsTotal.WithLabelValues(http.MethodGet, "/api/notes/{id}"))

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/notes/not-a-uuid", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	after := testutil.ToFloat64(metrics.NotesRequestsTotal.WithLabelValues(http.MethodGet, "/api/notes/{id}"))
	assert.Equal(t, before+1, after)
	assert.Equal(t, float64(0), testutil.ToFloat64(metrics.NotesRequestsInFlight))
}

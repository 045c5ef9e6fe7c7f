package server

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
)

func captureSlog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	previous := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))
	t.Cleanup(func() { slog.SetDefault(previous) })
	return &buf
}

func serveLogged(path string, status int) *httptest.ResponseRecorder {
	r := chi.NewRouter()
	r.Use(slogMiddleware)
	r.Get(path, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
	})
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestSlogMiddleware_LogsRequest(t *testing.T) {
	buf := captureSlog(t)

	serveLogged("/watch/123", http.StatusOK)

	output := buf.String()
	for _, field := range []string{"method=GET", "path=/watch/123", "status=200", "duration_ms="} {
		if !strings.Contains(output, field) {
			t.Errorf("expected log to contain %q, got: %s", field, output)
		}
	}
}

func TestSlogMiddleware_SkipsHealthCheck(t *testing.T) {
	buf := captureSlog(t)

	rec := serveLogged("/api/health", http.StatusOK)

	if rec.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", rec.Code)
	}
	if buf.String() != "" {
		t.Errorf("expected no log output for /api/health, got: %s", buf.String())
	}
}

func TestSlogMiddleware_RecordsErrorStatus(t *testing.T) {
	buf := captureSlog(t)

	serveLogged("/missing", http.StatusNotFound)

	if !strings.Contains(buf.String(), "status=404") {
		t.Errorf("expected log to contain status=404, got: %s", buf.String())
	}
}

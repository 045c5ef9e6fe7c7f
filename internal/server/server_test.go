package server_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/pashagolub/pgxmock/v4"

	"github.com/clipnote/clipnote/internal/server"
)

type mockPinger struct{ err error }

func (m *mockPinger) Ping(ctx context.Context) error { return m.err }

func newServerWithoutDB() *server.Server {
	return server.New(server.Config{})
}

func newServerWithDB(t *testing.T) (*server.Server, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create pgxmock pool: %v", err)
	}
	t.Cleanup(func() { mock.Close() })

	srv := server.New(server.Config{
		DB:             mock,
		Pinger:         &mockPinger{},
		JWTSecret:      "test-secret",
		BaseURL:        "https://localhost:8080",
		DefaultVideoID: "76979871",
	})
	return srv, mock
}

func executeRequest(srv *server.Server, method, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	return rec
}

func TestHealthEndpointReturnsOK(t *testing.T) {
	srv := newServerWithoutDB()
	rec := executeRequest(srv, http.MethodGet, "/api/health")

	if rec.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", rec.Code)
	}
	if rec.Body.String() != `{"status":"ok"}` {
		t.Errorf("unexpected body %q", rec.Body.String())
	}
}

func TestHealthEndpointReportsUnhealthyDatabase(t *testing.T) {
	srv := server.New(server.Config{Pinger: &mockPinger{err: errors.New("connection refused")}})
	rec := executeRequest(srv, http.MethodGet, "/api/health")

	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("expected status 503, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "unhealthy") {
		t.Errorf("expected unhealthy status in body, got %q", rec.Body.String())
	}
}

func TestLimitsEndpointListsFieldLimits(t *testing.T) {
	srv := newServerWithoutDB()
	rec := executeRequest(srv, http.MethodGet, "/api/limits")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, `"comment":1000`) {
		t.Errorf("expected comment limit in body, got %q", body)
	}
}

func TestCommentListRouteIsOpen(t *testing.T) {
	srv, mock := newServerWithDB(t)

	mock.ExpectQuery(`SELECT c.id, c.user_id, u.name`).
		WithArgs("76979871").
		WillReturnRows(pgxmock.NewRows([]string{"id", "user_id", "name", "body", "timestamp_seconds", "created_at"}))

	rec := executeRequest(srv, http.MethodGet, "/api/video-comments?video_id=76979871")

	if rec.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", rec.Code)
	}
}

func TestCommentCreateRouteRequiresAuth(t *testing.T) {
	srv, _ := newServerWithDB(t)

	req := httptest.NewRequest(http.MethodPost, "/api/video-comments", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected status 401, got %d", rec.Code)
	}
}

func TestCommentDeleteRouteRequiresAuth(t *testing.T) {
	srv, _ := newServerWithDB(t)

	rec := executeRequest(srv, http.MethodDelete, "/api/video-comments/1")

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected status 401, got %d", rec.Code)
	}
}

func TestAuthMeRouteRequiresAuth(t *testing.T) {
	srv, _ := newServerWithDB(t)

	rec := executeRequest(srv, http.MethodGet, "/api/auth/me")

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected status 401, got %d", rec.Code)
	}
}

func TestWatchPageIsServedWithoutDB(t *testing.T) {
	srv := newServerWithoutDB()

	rec := executeRequest(srv, http.MethodGet, "/watch/12345")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `initWatchPage("12345")`) {
		t.Error("expected watch page bootstrap in body")
	}
}

func TestHomeServesDefaultVideo(t *testing.T) {
	srv := server.New(server.Config{DefaultVideoID: "424242"})

	rec := executeRequest(srv, http.MethodGet, "/")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `initWatchPage("424242")`) {
		t.Error("expected configured default video id in body")
	}
}

func TestUnknownAPIEndpointReturns404(t *testing.T) {
	srv := newServerWithoutDB()

	rec := executeRequest(srv, http.MethodGet, "/api/nope")

	if rec.Code != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", rec.Code)
	}
}

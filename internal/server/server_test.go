package server

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"

	"github.com/Miladattar/content-craft-persian/internal/home"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()

	h, err := home.New(t.TempDir())
	if err != nil {
		t.Fatalf("home.New: %v", err)
	}
	srv, err := New(Config{
		Home:   h,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return srv
}

func TestNewDefaults(t *testing.T) {
	srv := newTestServer(t)

	if got := srv.Addr(); got != "127.0.0.1:8787" {
		t.Errorf("Addr = %q, want 127.0.0.1:8787", got)
	}
	if srv.IsRunning() {
		t.Error("IsRunning = true before Start")
	}
	if srv.Registry().Configured() {
		t.Error("registry configured without any config manager")
	}
}

func TestHandlerServesHealth(t *testing.T) {
	srv := newTestServer(t)

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/health", nil))

	if rec.Code != 200 {
		t.Fatalf("GET /health = %d, want 200", rec.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("status = %q, want ok", body["status"])
	}
}

func TestHandlerInjectsServices(t *testing.T) {
	srv := newTestServer(t)

	// /api/templates needs the pack store from the request context.
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/api/templates", nil))

	if rec.Code != 200 {
		t.Fatalf("GET /api/templates = %d, want 200", rec.Code)
	}
	var body struct {
		Templates []struct {
			ID string `json:"id"`
		} `json:"templates"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if len(body.Templates) == 0 {
		t.Error("no templates returned")
	}
}

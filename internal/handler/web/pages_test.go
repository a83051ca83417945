package web

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	xhttp "BotDash/pkg/http"
)

func newServer(t *testing.T) *xhttp.Server {
	t.Helper()
	dir := t.TempDir()
	pages := map[string]string{
		IndexTemplate:      "<html><body><h1>Dashboard</h1></body></html>",
		DisclaimerTemplate: "<html><body><h1>Disclaimer</h1></body></html>",
	}
	for name, body := range pages {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o600); err != nil {
			t.Fatal(err)
		}
	}
	r, err := xhttp.NewTemplateRenderer(dir)
	if err != nil {
		t.Fatal(err)
	}
	return xhttp.NewServer(NewPagesHandler(), xhttp.WithRenderer(r))
}

func TestPagesRender(t *testing.T) {
	srv := newServer(t)

	for path, marker := range map[string]string{"/": "Dashboard", "/disclaimer": "Disclaimer"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		srv.Echo().ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("%s: status = %d", path, rec.Code)
		}
		if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
			t.Fatalf("%s: content type = %q", path, ct)
		}
		if !strings.Contains(rec.Body.String(), marker) {
			t.Fatalf("%s: body = %s", path, rec.Body.String())
		}
	}
}

func TestShippedTemplatesParse(t *testing.T) {
	r, err := xhttp.NewTemplateRenderer(filepath.Join("..", "..", "..", "templates"))
	if err != nil {
		t.Fatalf("templates: %v", err)
	}
	srv := xhttp.NewServer(NewPagesHandler(), xhttp.WithRenderer(r))

	for _, path := range []string{"/", "/disclaimer"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		srv.Echo().ServeHTTP(rec, req)
		if rec.Code != http.StatusOK || rec.Body.Len() == 0 {
			t.Fatalf("%s: status = %d, %d bytes", path, rec.Code, rec.Body.Len())
		}
	}
}

func TestRenderWithoutTemplatesFails(t *testing.T) {
	srv := xhttp.NewServer(NewPagesHandler())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	srv.Echo().ServeHTTP(rec, req)
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
}

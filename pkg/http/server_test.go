package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	applogger "BotDash/pkg/logger"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
)

type routes func(e *echo.Echo)

func (r routes) RegisterRoutes(e *echo.Echo) { r(e) }

func serve(s *Server, method, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	rec := httptest.NewRecorder()
	s.Echo().ServeHTTP(rec, req)
	return rec
}

func TestRecoverAnswersJSONError(t *testing.T) {
	var buf bytes.Buffer
	l := applogger.NewWithWriter(&buf, zerolog.DebugLevel)

	s := NewServer(routes(func(e *echo.Echo) {
		e.GET("/boom", func(echo.Context) error { panic("kaboom") })
	}), WithLogger(l))

	rec := serve(s, http.MethodGet, "/boom")
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d", rec.Code)
	}
	if got := strings.TrimSpace(rec.Body.String()); got != `{"error":"internal server error"}` {
		t.Fatalf("body = %s", got)
	}
	if !strings.Contains(buf.String(), "panic recovered") {
		t.Fatalf("panic not logged: %s", buf.String())
	}
}

func TestErrorsRenderAsErrorBody(t *testing.T) {
	s := NewServer(routes(func(e *echo.Echo) {
		e.GET("/missing", func(c echo.Context) error {
			return ErrorResponse(c, NewAppError("no such thing", http.StatusNotFound))
		})
		e.GET("/plain", func(echo.Context) error { return errors.New("store down") })
	}))

	cases := []struct {
		path   string
		status int
		msg    string
	}{
		{"/missing", http.StatusNotFound, "no such thing"},
		{"/plain", http.StatusInternalServerError, "store down"},
		{"/nope", http.StatusNotFound, "Not Found"},
	}
	for _, tc := range cases {
		rec := serve(s, http.MethodGet, tc.path)
		if rec.Code != tc.status {
			t.Fatalf("%s: status = %d, want %d", tc.path, rec.Code, tc.status)
		}
		var body ErrorBody
		if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
			t.Fatalf("%s: decode: %v", tc.path, err)
		}
		if body.Error != tc.msg {
			t.Fatalf("%s: error = %q, want %q", tc.path, body.Error, tc.msg)
		}
	}
}

func TestMetricsEndpoint(t *testing.T) {
	reg := prometheus.NewRegistry()
	s := NewServer(routes(func(e *echo.Echo) {
		e.GET("/ping", func(c echo.Context) error { return JSONResponse(c, map[string]string{"ok": "yes"}) })
	}), WithMetrics("/metrics", reg))

	serve(s, http.MethodGet, "/ping")
	rec := serve(s, http.MethodGet, "/metrics")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `http_requests_total{method="GET",route="/ping",status="200"} 1`) {
		t.Fatalf("request counter missing:\n%s", rec.Body.String())
	}
}

func TestMetricsEndpointDisabled(t *testing.T) {
	s := NewServer(nil, WithMetrics("", prometheus.NewRegistry()))
	if rec := serve(s, http.MethodGet, "/metrics"); rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestTemplateRenderer(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "hello.html"), []byte(`<p>hello {{.}}</p>`), 0o600); err != nil {
		t.Fatal(err)
	}
	r, err := NewTemplateRenderer(dir)
	if err != nil {
		t.Fatalf("NewTemplateRenderer: %v", err)
	}
	s := NewServer(routes(func(e *echo.Echo) {
		e.GET("/", func(c echo.Context) error { return c.Render(http.StatusOK, "hello.html", "<world>") })
	}), WithRenderer(r))

	rec := serve(s, http.MethodGet, "/")
	if got := rec.Body.String(); got != `<p>hello &lt;world&gt;</p>` {
		t.Fatalf("body = %s", got)
	}
}

func TestTemplateRendererEmptyDir(t *testing.T) {
	if _, err := NewTemplateRenderer(t.TempDir()); err == nil {
		t.Fatal("expected error for a directory without templates")
	}
}

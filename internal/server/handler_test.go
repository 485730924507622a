package server

import (
	"context"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/snake14v/SQL-LEARNX/internal/testutil"
	"github.com/snake14v/SQL-LEARNX/internal/tutor"
)

func newTutor(t *testing.T, reg prometheus.Registerer) *tutor.Service {
	t.Helper()
	svc, err := tutor.New(tutor.Config{Delay: -1, Registerer: reg})
	if err != nil {
		t.Fatalf("new tutor: %v", err)
	}
	return svc
}

// TestNewHandlerServesHealth ensures the health route answers ok.
func TestNewHandlerServesHealth(t *testing.T) {
	handler, err := NewHandler(Config{Tutor: newTutor(t, nil)})
	if err != nil {
		t.Fatalf("new handler: %v", err)
	}
	req := httptest.NewRequest(http.MethodGet, "http://example.com/healthz", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK || resp.Body.String() != "ok" {
		t.Fatalf("unexpected health response %d %q", resp.Code, resp.Body.String())
	}
}

// TestNewHandlerServesMetrics ensures tutor metrics are exposed after a query.
func TestNewHandlerServesMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	handler, err := NewHandler(Config{Tutor: newTutor(t, reg), Gatherer: reg})
	if err != nil {
		t.Fatalf("new handler: %v", err)
	}

	query := httptest.NewRequest(http.MethodPost, "http://example.com/v1/query", strings.NewReader(`{"query":"SELECT * FROM students"}`))
	handler.ServeHTTP(httptest.NewRecorder(), query)

	req := httptest.NewRequest(http.MethodGet, "http://example.com/metrics", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	if body := resp.Body.String(); !strings.Contains(body, `sqltutor_queries_total{outcome="ok"} 1`) {
		t.Fatalf("expected query counter in metrics, got:\n%s", body)
	}
}

// TestNewHandlerWithoutGathererHasNoMetrics ensures /metrics is opt-in.
func TestNewHandlerWithoutGathererHasNoMetrics(t *testing.T) {
	handler, err := NewHandler(Config{Tutor: newTutor(t, nil)})
	if err != nil {
		t.Fatalf("new handler: %v", err)
	}
	req := httptest.NewRequest(http.MethodGet, "http://example.com/metrics", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", resp.Code)
	}
}

// TestNewHandlerServesPracticeDatabase ensures the file endpoint returns the bytes.
func TestNewHandlerServesPracticeDatabase(t *testing.T) {
	dbPath := writeTempDB(t, "duckdb")
	handler, err := NewHandler(Config{Tutor: newTutor(t, nil), PracticeDBPath: dbPath})
	if err != nil {
		t.Fatalf("new handler: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "http://example.com"+PracticeDBRoute, nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	if got := resp.Body.String(); got != "duckdb" {
		t.Fatalf("unexpected db payload: %s", got)
	}

	post := httptest.NewRequest(http.MethodPost, "http://example.com"+PracticeDBRoute, nil)
	resp = httptest.NewRecorder()
	handler.ServeHTTP(resp, post)
	if resp.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected status 405, got %d", resp.Code)
	}
	if allow := resp.Header().Get("Allow"); allow != http.MethodGet {
		t.Fatalf("expected Allow GET, got %q", allow)
	}
	if got := strings.TrimSpace(resp.Body.String()); got != "method not allowed" {
		t.Fatalf("expected plain-text 405 body, got %q", got)
	}
}

// TestNewHandlerRejectsBadConfig ensures missing dependencies fail early.
func TestNewHandlerRejectsBadConfig(t *testing.T) {
	if _, err := NewHandler(Config{}); err == nil {
		t.Fatalf("expected error without tutor")
	}
	missing := filepath.Join(t.TempDir(), "missing.duckdb")
	if _, err := NewHandler(Config{Tutor: newTutor(t, nil), PracticeDBPath: missing}); err == nil {
		t.Fatalf("expected error for missing practice db")
	}
	if _, err := NewHandler(Config{Tutor: newTutor(t, nil), PracticeDBPath: t.TempDir()}); err == nil {
		t.Fatalf("expected error for directory practice db")
	}
}

// TestServeListenerStopsOnCancel ensures the server answers requests and
// shuts down cleanly when the context ends.
func TestServeListenerStopsOnCancel(t *testing.T) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	ctx, cancel := context.WithCancel(testutil.Context(t, 5*time.Second))
	errCh := make(chan error, 1)
	go func() {
		errCh <- ServeListener(ctx, listener, Config{Tutor: newTutor(t, nil)})
	}()

	baseURL := "http://" + listener.Addr().String()
	testutil.WaitHealthy(t, baseURL)

	modules := testutil.HTTPListModules(t, baseURL)
	if len(modules) == 0 {
		t.Fatalf("expected modules from running server")
	}

	cancel()
	select {
	case err := <-errCh:
		if err != nil {
			t.Fatalf("serve returned error: %v", err)
		}
	case <-time.After(ShutdownTimeout + time.Second):
		t.Fatalf("server did not stop")
	}
}

// TestServeRequiresAddr ensures Serve validates its config.
func TestServeRequiresAddr(t *testing.T) {
	if err := Serve(testutil.Context(t, 0), Config{Tutor: newTutor(t, nil)}); err == nil {
		t.Fatalf("expected error without addr")
	}
}

// writeTempDB writes a fake DuckDB file for handler tests.
func writeTempDB(t *testing.T, contents string) string {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "practice.duckdb")
	if err := os.WriteFile(dbPath, []byte(contents), 0o644); err != nil {
		t.Fatalf("write temp db: %v", err)
	}
	return dbPath
}

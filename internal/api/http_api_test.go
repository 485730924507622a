package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"

	"github.com/snake14v/SQL-LEARNX/internal/curriculum"
	"github.com/snake14v/SQL-LEARNX/internal/evaluator"
	"github.com/snake14v/SQL-LEARNX/internal/testutil"
	"github.com/snake14v/SQL-LEARNX/internal/tutor"
)

type stubTutor struct {
	lastTitle string
	lastQuery string
}

func (s *stubTutor) Modules() []curriculum.Module {
	return []curriculum.Module{{ID: "m1", Title: "Stub Module", Topics: []string{"SELECT"}}}
}

func (s *stubTutor) SelectModule(_ context.Context, title string) curriculum.Lesson {
	s.lastTitle = title
	return curriculum.Lesson{Title: "lesson for " + title}
}

func (s *stubTutor) LessonForModule(ctx context.Context, id string) (curriculum.Lesson, bool) {
	if id != "m1" {
		return curriculum.Lesson{}, false
	}
	return s.SelectModule(ctx, "Stub Module"), true
}

func (s *stubTutor) RunQuery(_ context.Context, text string) evaluator.QueryResult {
	s.lastQuery = text
	return evaluator.QueryResult{Columns: []string{"echo"}, Rows: [][]any{{text}}}
}

func newTutorService(t *testing.T) *tutor.Service {
	t.Helper()
	svc, err := tutor.New(tutor.Config{Delay: -1})
	if err != nil {
		t.Fatalf("new tutor: %v", err)
	}
	return svc
}

// TestHTTP_ModulesAndLessons verifies the read routes against the real service.
func TestHTTP_ModulesAndLessons(t *testing.T) {
	runWithTimeout(t, 2*time.Second, func() {
		svc := newTutorService(t)
		srv := testutil.StartServer(t, NewHandler(Config{Tutor: svc}))

		modules := testutil.HTTPListModules(t, srv.BaseURL)
		if diff := cmp.Diff(svc.Modules(), modules); diff != "" {
			t.Fatalf("modules mismatch (-want +got):\n%s", diff)
		}
		for _, module := range modules {
			got := testutil.HTTPModuleLesson(t, srv.BaseURL, module.ID)
			want := svc.SelectModule(context.Background(), module.Title)
			if diff := cmp.Diff(want, got); diff != "" {
				t.Fatalf("lesson mismatch for %s (-want +got):\n%s", module.ID, diff)
			}
		}

		byTitle := testutil.HTTPLessonByTitle(t, srv.BaseURL, "2. Crunching Numbers (Aggregates)")
		if byTitle.ExampleQuery == "" || byTitle.Title == modules[0].Title {
			t.Fatalf("unexpected aggregate lesson %+v", byTitle)
		}
		fallback := testutil.HTTPLessonByTitle(t, srv.BaseURL, "")
		if fallback.Title != "1. The Blueprint of Queries" {
			t.Fatalf("expected default lesson, got %q", fallback.Title)
		}
	})
}

// TestHTTP_QueryReturnsResult verifies queries and failures both answer 200.
func TestHTTP_QueryReturnsResult(t *testing.T) {
	runWithTimeout(t, 2*time.Second, func() {
		srv := testutil.StartServer(t, NewHandler(Config{Tutor: newTutorService(t)}))

		result := testutil.HTTPQuery(t, srv.BaseURL, "SELECT COUNT(*) FROM students")
		want := evaluator.QueryResult{
			Columns: []string{"total_students", "average_score", "best_score"},
			Rows:    [][]any{{float64(5), "82.4", float64(95)}},
		}
		if diff := cmp.Diff(want, result); diff != "" {
			t.Fatalf("result mismatch (-want +got):\n%s", diff)
		}

		failed := testutil.HTTPQuery(t, srv.BaseURL, "DELETE FROM students")
		if failed.Error != evaluator.GenericErrorMessage {
			t.Fatalf("expected generic error, got %q", failed.Error)
		}
		if failed.Columns == nil || failed.Rows == nil {
			t.Fatalf("expected empty arrays in failure result")
		}
	})
}

// TestHTTP_QueryRejectsMalformedJSON verifies invalid bodies get 400.
func TestHTTP_QueryRejectsMalformedJSON(t *testing.T) {
	runWithTimeout(t, 2*time.Second, func() {
		stub := &stubTutor{}
		srv := httptest.NewServer(NewHandler(Config{Tutor: stub}))
		defer srv.Close()

		resp, body := doRequestJSON(t, http.MethodPost, srv.URL+"/v1/query", []byte(`{"query":`))
		if resp.StatusCode != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", resp.StatusCode)
		}
		var parsed errorResponse
		if err := json.Unmarshal(body, &parsed); err != nil {
			t.Fatalf("parse response: %v", err)
		}
		if parsed.Error != "invalid_request" {
			t.Fatalf("expected invalid_request, got %q", parsed.Error)
		}
		if stub.lastQuery != "" {
			t.Fatalf("expected tutor not to be called")
		}
	})
}

// TestHTTP_UnknownModuleReturns404 verifies missing ids and malformed paths.
func TestHTTP_UnknownModuleReturns404(t *testing.T) {
	runWithTimeout(t, 2*time.Second, func() {
		srv := httptest.NewServer(NewHandler(Config{Tutor: &stubTutor{}}))
		defer srv.Close()

		for _, path := range []string{"/v1/modules/missing/lesson", "/v1/modules/m1", "/v1/modules/", "/v1/modules/a/b/lesson"} {
			resp, body := doRequestJSON(t, http.MethodGet, srv.URL+path, nil)
			if resp.StatusCode != http.StatusNotFound {
				t.Fatalf("%s: expected 404, got %d", path, resp.StatusCode)
			}
			var parsed errorResponse
			if err := json.Unmarshal(body, &parsed); err != nil {
				t.Fatalf("%s: parse response: %v", path, err)
			}
			if parsed.Error != "not_found" {
				t.Fatalf("%s: expected not_found, got %q", path, parsed.Error)
			}
		}
	})
}

// TestHTTP_MethodNotAllowed verifies each route rejects other methods.
func TestHTTP_MethodNotAllowed(t *testing.T) {
	runWithTimeout(t, 2*time.Second, func() {
		srv := httptest.NewServer(NewHandler(Config{Tutor: &stubTutor{}}))
		defer srv.Close()

		cases := []struct {
			method string
			path   string
		}{
			{method: http.MethodPost, path: "/v1/modules"},
			{method: http.MethodDelete, path: "/v1/modules/m1/lesson"},
			{method: http.MethodPut, path: "/v1/lesson"},
			{method: http.MethodGet, path: "/v1/query"},
		}
		for _, tc := range cases {
			resp, body := doRequestJSON(t, tc.method, srv.URL+tc.path, nil)
			if resp.StatusCode != http.StatusMethodNotAllowed {
				t.Fatalf("%s %s: expected 405, got %d", tc.method, tc.path, resp.StatusCode)
			}
			if len(body) != 0 {
				t.Fatalf("%s %s: expected empty 405 body, got %q", tc.method, tc.path, body)
			}
		}
	})
}

// TestHTTP_RequestIDHeader verifies every response carries a distinct uuid.
func TestHTTP_RequestIDHeader(t *testing.T) {
	runWithTimeout(t, 2*time.Second, func() {
		stub := &stubTutor{}
		srv := httptest.NewServer(NewHandler(Config{Tutor: stub}))
		defer srv.Close()

		seen := map[string]bool{}
		for _, path := range []string{"/v1/modules", "/v1/lesson?title=Joins", "/v1/modules/missing/lesson"} {
			resp, _ := doRequestJSON(t, http.MethodGet, srv.URL+path, nil)
			id := resp.Header.Get("X-Request-Id")
			if _, err := uuid.Parse(id); err != nil {
				t.Fatalf("%s: invalid request id %q: %v", path, id, err)
			}
			if seen[id] {
				t.Fatalf("%s: request id %q reused", path, id)
			}
			seen[id] = true
		}
		if stub.lastTitle != "Joins" {
			t.Fatalf("expected title query parameter to reach tutor, got %q", stub.lastTitle)
		}
	})
}

// TestHTTP_NilTutorReportsUnavailable verifies a handler without a tutor fails closed.
func TestHTTP_NilTutorReportsUnavailable(t *testing.T) {
	handler := NewHandler(Config{})
	req := httptest.NewRequest(http.MethodGet, "http://example.com/v1/modules", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)
	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", resp.Code)
	}
}

func doRequestJSON(t *testing.T, method, url string, payload []byte) (*http.Response, []byte) {
	t.Helper()
	ctx := testutil.Context(t, 2*time.Second)
	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read response: %v", err)
	}
	return resp, data
}

func runWithTimeout(t *testing.T, timeout time.Duration, fn func()) {
	t.Helper()
	ctx := testutil.Context(t, timeout)
	done := make(chan struct{})
	go func() {
		defer close(done)
		fn()
	}()
	select {
	case <-ctx.Done():
		t.Fatalf("test timed out")
	case <-done:
	}
}

package testutil

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/snake14v/SQL-LEARNX/internal/curriculum"
	"github.com/snake14v/SQL-LEARNX/internal/evaluator"
)

type modulesResponse struct {
	Modules []curriculum.Module `json:"modules"`
}

type queryRequest struct {
	Query string `json:"query"`
}

// HTTPListModules sends a GET /v1/modules request.
func HTTPListModules(t testing.TB, baseURL string) []curriculum.Module {
	t.Helper()
	var resp modulesResponse
	body := doRequest(t, http.MethodGet, baseURL+"/v1/modules", nil)
	if err := json.Unmarshal(body, &resp); err != nil {
		t.Fatalf("decode modules response: %v", err)
	}
	return resp.Modules
}

// HTTPModuleLesson sends a GET /v1/modules/{id}/lesson request.
func HTTPModuleLesson(t testing.TB, baseURL, id string) curriculum.Lesson {
	t.Helper()
	var resp curriculum.Lesson
	body := doRequest(t, http.MethodGet, baseURL+"/v1/modules/"+url.PathEscape(id)+"/lesson", nil)
	if err := json.Unmarshal(body, &resp); err != nil {
		t.Fatalf("decode lesson response: %v", err)
	}
	return resp
}

// HTTPLessonByTitle sends a GET /v1/lesson?title= request.
func HTTPLessonByTitle(t testing.TB, baseURL, title string) curriculum.Lesson {
	t.Helper()
	var resp curriculum.Lesson
	body := doRequest(t, http.MethodGet, baseURL+"/v1/lesson?title="+url.QueryEscape(title), nil)
	if err := json.Unmarshal(body, &resp); err != nil {
		t.Fatalf("decode lesson response: %v", err)
	}
	return resp
}

// HTTPQuery sends a POST /v1/query request.
func HTTPQuery(t testing.TB, baseURL, query string) evaluator.QueryResult {
	t.Helper()
	var resp evaluator.QueryResult
	data, err := json.Marshal(queryRequest{Query: query})
	if err != nil {
		t.Fatalf("marshal query request: %v", err)
	}
	body := doRequest(t, http.MethodPost, baseURL+"/v1/query", data)
	if err := json.Unmarshal(body, &resp); err != nil {
		t.Fatalf("decode query response: %v", err)
	}
	return resp
}

// doRequest executes an HTTP request with a JSON payload and returns the body.
// WaitHealthy polls GET /healthz until the server answers "ok".
func WaitHealthy(t testing.TB, baseURL string) {
	t.Helper()
	Eventually(t, 2*time.Second, 20*time.Millisecond, func() error {
		resp, err := http.Get(baseURL + "/healthz")
		if err != nil {
			return err
		}
		defer resp.Body.Close()
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return err
		}
		if resp.StatusCode != http.StatusOK || string(body) != "ok" {
			return fmt.Errorf("status %d body %q", resp.StatusCode, body)
		}
		return nil
	}, "server did not become healthy")
}

func doRequest(t testing.TB, method, url string, payload []byte) []byte {
	t.Helper()
	ctx := Context(t, 2*time.Second)
	reader := bytes.NewReader(payload)
	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("http request: %v", err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read response: %v", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		t.Fatalf("unexpected status %d for %s %s: %s", resp.StatusCode, method, url, string(body))
	}
	return body
}

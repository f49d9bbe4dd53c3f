package server

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/hullscan/pkg/cache"
	"github.com/matzehuels/hullscan/pkg/pipeline"
)

func newTestServer() *Server {
	logger := log.NewWithOptions(io.Discard, log.Options{})
	runner := pipeline.NewRunner(cache.NewMemoryCache(), nil, logger)
	return New("127.0.0.1:0", runner, logger)
}

func TestHealth(t *testing.T) {
	srv := newTestServer()
	ts := httptest.NewServer(srv.Routes())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/healthz")
	if err != nil {
		t.Fatalf("GET /healthz: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	var body map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("status field = %q, want ok", body["status"])
	}
}

func TestHull(t *testing.T) {
	srv := newTestServer()
	ts := httptest.NewServer(srv.Routes())
	defer ts.Close()

	req := `{"points": [{"x": 0, "y": 0}, {"x": 4, "y": 0}, {"x": 4, "y": 4}, {"x": 0, "y": 4}, {"x": 2, "y": 2}]}`
	resp, err := http.Post(ts.URL+"/api/v1/hull", "application/json", strings.NewReader(req))
	if err != nil {
		t.Fatalf("POST /api/v1/hull: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		t.Fatalf("status = %d, body %s", resp.StatusCode, body)
	}
	if id := resp.Header.Get("X-Request-ID"); id == "" {
		t.Error("response should carry a request ID")
	}

	var body struct {
		PointCount int                  `json:"point_count"`
		Hull       []pipeline.PointSpec `json:"hull"`
		Cached     bool                 `json:"cached"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.PointCount != 5 {
		t.Errorf("point_count = %d, want 5", body.PointCount)
	}
	if len(body.Hull) != 4 {
		t.Errorf("hull has %d vertices, want 4", len(body.Hull))
	}
	if body.Hull[0] != (pipeline.PointSpec{X: 0, Y: 0}) {
		t.Errorf("hull should start at the anchor, got %v", body.Hull[0])
	}
}

func TestHull_CachedSecondCall(t *testing.T) {
	srv := newTestServer()
	ts := httptest.NewServer(srv.Routes())
	defer ts.Close()

	req := `{"points": [{"x": 0, "y": 0}, {"x": 2, "y": 0}, {"x": 1, "y": 2}]}`
	post := func() bool {
		resp, err := http.Post(ts.URL+"/api/v1/hull", "application/json", strings.NewReader(req))
		if err != nil {
			t.Fatalf("POST: %v", err)
		}
		defer resp.Body.Close()
		var body struct {
			Cached bool `json:"cached"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
			t.Fatalf("decode: %v", err)
		}
		return body.Cached
	}

	if post() {
		t.Error("first call should not be cached")
	}
	if !post() {
		t.Error("second call should be cached")
	}
}

func TestHull_BadRequests(t *testing.T) {
	srv := newTestServer()
	ts := httptest.NewServer(srv.Routes())
	defer ts.Close()

	tests := []struct {
		name string
		body string
	}{
		{"malformed json", `{"points": [`},
		{"unknown policy", `{"points": [{"x": 0, "y": 0}], "policy": "corners"}`},
		{"unknown format", `{"points": [{"x": 0, "y": 0}], "formats": ["png"]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := http.Post(ts.URL+"/api/v1/hull", "application/json", strings.NewReader(tt.body))
			if err != nil {
				t.Fatalf("POST: %v", err)
			}
			defer resp.Body.Close()
			if resp.StatusCode != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", resp.StatusCode)
			}
			var body struct {
				Code string `json:"code"`
			}
			if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if body.Code == "" {
				t.Error("error responses should carry a code")
			}
		})
	}
}

func TestHull_RequestIDEcho(t *testing.T) {
	srv := newTestServer()
	ts := httptest.NewServer(srv.Routes())
	defer ts.Close()

	req, err := http.NewRequest(http.MethodGet, ts.URL+"/healthz", nil)
	if err != nil {
		t.Fatal(err)
	}
	req.Header.Set("X-Request-ID", "test-id-42")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	defer resp.Body.Close()
	if got := resp.Header.Get("X-Request-ID"); got != "test-id-42" {
		t.Errorf("request ID = %q, want echo of the caller's ID", got)
	}
}

package httpserver

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	datasetRepo "gantt-chart/internal/dataset/repository/sqlite"
	"gantt-chart/internal/middleware"
	"gantt-chart/pkg/datemath"
	"gantt-chart/pkg/log"
	"gantt-chart/pkg/response"
)

func newTestServer(t *testing.T) *HTTPServer {
	t.Helper()
	db, err := datasetRepo.Open(filepath.Join(t.TempDir(), "gantt.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	p, err := datemath.NewParser("UTC")
	if err != nil {
		t.Fatalf("NewParser: %v", err)
	}

	srv, err := New(log.NewNop(), Config{
		Port:     8080,
		Mode:     gin.TestMode,
		DB:       db,
		DateMath: p,
		SeedDemo: true,
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := srv.mapHandlers(context.Background()); err != nil {
		t.Fatalf("mapHandlers: %v", err)
	}
	return srv
}

func call(t *testing.T, srv *HTTPServer, method, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	srv.gin.ServeHTTP(w, req)

	var resp response.Resp
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	data, _ := resp.Data.(map[string]any)
	return w, data
}

func TestNewValidates(t *testing.T) {
	if _, err := New(log.NewNop(), Config{Port: 8080, Mode: gin.TestMode}); err == nil {
		t.Error("expected an error without a database")
	}
	if _, err := New(nil, Config{}); err == nil {
		t.Error("expected an error without a logger")
	}
}

func TestSystemRoutes(t *testing.T) {
	srv := newTestServer(t)
	for _, path := range []string{"/health", "/ready", "/live"} {
		w, data := call(t, srv, http.MethodGet, path, "")
		if w.Code != http.StatusOK || data["service"] != ServiceName {
			t.Errorf("%s: status = %d body = %s", path, w.Code, w.Body.String())
		}
		if w.Header().Get("X-Request-ID") == "" {
			t.Errorf("%s: missing request id header", path)
		}
	}
}

func TestDemoDatasetRendersThroughAView(t *testing.T) {
	srv := newTestServer(t)

	w, data := call(t, srv, http.MethodGet, "/api/v1/datasets?source=demo", "")
	if w.Code != http.StatusOK {
		t.Fatalf("list: status = %d", w.Code)
	}
	items, _ := data["datasets"].([]any)
	if len(items) != 2 {
		t.Fatalf("seeded %d demo datasets, want 2: %s", len(items), w.Body.String())
	}
	first, _ := items[0].(map[string]any)
	datasetID, _ := first["id"].(string)

	w, data = call(t, srv, http.MethodPost, "/api/v1/views", `{"dataset_id":"`+datasetID+`","width":1400}`)
	if w.Code != http.StatusOK {
		t.Fatalf("create view: status = %d body = %s", w.Code, w.Body.String())
	}
	v, _ := data["view"].(map[string]any)
	viewID, _ := v["id"].(string)
	if viewID == "" {
		t.Fatalf("no view id in %s", w.Body.String())
	}

	w, _ = call(t, srv, http.MethodGet, "/api/v1/views/"+viewID+"/render?format=svg", "")
	if w.Code != http.StatusOK {
		t.Fatalf("render: status = %d body = %s", w.Code, w.Body.String())
	}
	if !strings.HasPrefix(w.Body.String(), "<svg") {
		t.Errorf("render did not return svg: %.80s", w.Body.String())
	}

	w, _ = call(t, srv, http.MethodGet, "/api/v1/views/unknown", "")
	if w.Code != http.StatusNotFound {
		t.Errorf("unknown view: status = %d", w.Code)
	}
}

func TestSeedingIsIdempotent(t *testing.T) {
	srv := newTestServer(t)
	if _, err := srv.setupDatasetDomain(context.Background(), gin.New().Group("/x"), middleware.New(srv.l, srv.rateLimit)); err != nil {
		t.Fatalf("second setup: %v", err)
	}
	_, data := call(t, srv, http.MethodGet, "/api/v1/datasets", "")
	if data["total"] != float64(2) {
		t.Errorf("total = %v, want 2", data["total"])
	}
}

package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"gantt-chart/internal/gantt"
	"gantt-chart/internal/middleware"
	"gantt-chart/internal/view"
	viewHTTP "gantt-chart/internal/view/delivery/http"
	"gantt-chart/pkg/datemath"
	"gantt-chart/pkg/log"
	"gantt-chart/pkg/response"
)

type fakeUseCase struct {
	created  view.CreateInput
	updated  view.UpdateInput
	rendered view.RenderInput
	toggled  view.ToggleInput
	gesture  view.GestureInput
	deleted  string
}

func (f *fakeUseCase) info(id string) view.Info {
	return view.Info{
		ID:          id,
		DatasetID:   "ds-1",
		Width:       1200,
		GroupBy:     gantt.GroupBySprint,
		Transform:   gantt.IdentityTransform(),
		LastClicked: &gantt.Task{ID: "design", Name: "Design"},
	}
}

func (f *fakeUseCase) Create(ctx context.Context, in view.CreateInput) (view.StateOutput, error) {
	f.created = in
	if in.DatasetID == "missing" {
		return view.StateOutput{}, view.ErrViewNotFound
	}
	return view.StateOutput{View: f.info("v-1")}, nil
}

func (f *fakeUseCase) Get(ctx context.Context, id string) (view.StateOutput, error) {
	if id != "v-1" {
		return view.StateOutput{}, view.ErrViewNotFound
	}
	return view.StateOutput{View: f.info(id)}, nil
}

func (f *fakeUseCase) Update(ctx context.Context, in view.UpdateInput) (view.StateOutput, error) {
	f.updated = in
	if in.Width != nil && *in.Width < 290 {
		return view.StateOutput{}, view.ErrInvalidWidth
	}
	return view.StateOutput{View: f.info(in.ID)}, nil
}

func (f *fakeUseCase) Delete(ctx context.Context, id string) error {
	if id != "v-1" {
		return view.ErrViewNotFound
	}
	f.deleted = id
	return nil
}

func (f *fakeUseCase) Render(ctx context.Context, in view.RenderInput) (view.RenderOutput, error) {
	f.rendered = in
	switch in.Format {
	case view.FormatSVG:
		return view.RenderOutput{Format: in.Format, ContentType: "image/svg+xml", Body: []byte("<svg/>"), Revision: 3}, nil
	case view.FormatJSON, "":
		return view.RenderOutput{Format: view.FormatJSON, Scene: gantt.Scene{Width: 1200}, Revision: 3}, nil
	}
	return view.RenderOutput{}, view.ErrNothingToRender
}

func (f *fakeUseCase) ToggleGroup(ctx context.Context, in view.ToggleInput) (view.ToggleOutput, error) {
	f.toggled = in
	if in.Key != "Sprint 1" {
		return view.ToggleOutput{}, view.ErrGroupNotFound
	}
	return view.ToggleOutput{View: f.info(in.ID), Collapsed: true}, nil
}

func (f *fakeUseCase) ToggleTask(ctx context.Context, in view.ToggleInput) (view.ToggleOutput, error) {
	f.toggled = in
	if in.Key == "leaf" {
		return view.ToggleOutput{}, view.ErrTaskNotCollapsible
	}
	return view.ToggleOutput{View: f.info(in.ID)}, nil
}

func (f *fakeUseCase) ClickTask(ctx context.Context, in view.ToggleInput) (view.ClickOutput, error) {
	if in.Key == "hidden" {
		return view.ClickOutput{}, view.ErrTaskNotVisible
	}
	return view.ClickOutput{Task: gantt.Task{ID: in.Key, Name: "Design"}}, nil
}

func (f *fakeUseCase) Gesture(ctx context.Context, in view.GestureInput) (view.GestureOutput, error) {
	f.gesture = in
	return view.GestureOutput{Transform: gantt.Transform{X: in.DX, K: 1}, State: gantt.StateGesturing}, nil
}

func newRouter(t *testing.T, uc view.UseCase) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	p, err := datemath.NewParser("UTC")
	if err != nil {
		t.Fatalf("NewParser: %v", err)
	}
	r := gin.New()
	l := log.NewNop()
	viewHTTP.RegisterRoutes(r.Group("/api/v1"), viewHTTP.New(l, uc, p), middleware.New(l, middleware.Config{}))
	return r
}

func do(r *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, response.Resp) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	var resp response.Resp
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	return w, resp
}

func TestCreate(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus int
	}{
		{name: "ok", body: `{"dataset_id":"ds-1","width":1200,"group_by":"project"}`, wantStatus: http.StatusOK},
		{name: "defaults", body: `{"dataset_id":"ds-1"}`, wantStatus: http.StatusOK},
		{name: "missing dataset id", body: `{"width":1200}`, wantStatus: http.StatusBadRequest},
		{name: "narrow width", body: `{"dataset_id":"ds-1","width":100}`, wantStatus: http.StatusBadRequest},
		{name: "unknown grouping", body: `{"dataset_id":"ds-1","group_by":"owner"}`, wantStatus: http.StatusBadRequest},
		{name: "unknown dataset", body: `{"dataset_id":"missing"}`, wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &fakeUseCase{}
			w, _ := do(newRouter(t, uc), http.MethodPost, "/api/v1/views", tt.body)
			if w.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d: %s", w.Code, tt.wantStatus, w.Body.String())
			}
		})
	}
}

func TestGet(t *testing.T) {
	r := newRouter(t, &fakeUseCase{})

	w, resp := do(r, http.MethodGet, "/api/v1/views/v-1", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	data, _ := resp.Data.(map[string]any)
	v, _ := data["view"].(map[string]any)
	if v["id"] != "v-1" || v["group_by"] != "sprint" {
		t.Errorf("unexpected payload %s", w.Body.String())
	}
	if _, ok := v["scroll_left"]; ok {
		t.Error("scroll_left should be omitted before the initial scroll")
	}
	clicked, _ := v["last_clicked"].(map[string]any)
	if clicked["id"] != "design" {
		t.Errorf("last_clicked = %v", v["last_clicked"])
	}

	w, resp = do(r, http.MethodGet, "/api/v1/views/nope", "")
	if w.Code != http.StatusNotFound || resp.Message != "view not found" {
		t.Errorf("missing: %d %q", w.Code, resp.Message)
	}
}

func TestDelete(t *testing.T) {
	uc := &fakeUseCase{}
	r := newRouter(t, uc)

	w, _ := do(r, http.MethodDelete, "/api/v1/views/v-1", "")
	if w.Code != http.StatusOK || uc.deleted != "v-1" {
		t.Fatalf("status = %d deleted %q", w.Code, uc.deleted)
	}

	w, _ = do(r, http.MethodDelete, "/api/v1/views/nope", "")
	if w.Code != http.StatusNotFound {
		t.Errorf("missing: status = %d", w.Code)
	}
}

func TestUpdate(t *testing.T) {
	uc := &fakeUseCase{}
	r := newRouter(t, uc)

	w, _ := do(r, http.MethodPut, "/api/v1/views/v-1", `{"group_by":"none"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if uc.updated.ID != "v-1" || uc.updated.GroupBy == nil || *uc.updated.GroupBy != gantt.GroupByNone {
		t.Errorf("use case got %+v", uc.updated)
	}
	if uc.updated.Width != nil || uc.updated.DatasetID != nil {
		t.Errorf("omitted fields should stay nil: %+v", uc.updated)
	}

	w, _ = do(r, http.MethodPut, "/api/v1/views/v-1", `{"width":10}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("narrow width: status = %d", w.Code)
	}
}

func TestRender(t *testing.T) {
	uc := &fakeUseCase{}
	r := newRouter(t, uc)

	w, _ := do(r, http.MethodGet, "/api/v1/views/v-1/render?format=svg&today=2025-03-05", "")
	if w.Code != http.StatusOK {
		t.Fatalf("svg: status = %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "image/svg+xml" {
		t.Errorf("content type = %q", ct)
	}
	if w.Body.String() != "<svg/>" || w.Header().Get(viewHTTP.HeaderRevision) != "3" {
		t.Errorf("body = %q revision = %q", w.Body.String(), w.Header().Get(viewHTTP.HeaderRevision))
	}
	if !uc.rendered.Today.Equal(time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("today = %v", uc.rendered.Today)
	}
	if uc.rendered.APIBase != "/api/v1/views/v-1" {
		t.Errorf("api base = %q", uc.rendered.APIBase)
	}

	w, resp := do(r, http.MethodGet, "/api/v1/views/v-1/render", "")
	if w.Code != http.StatusOK {
		t.Fatalf("json: status = %d", w.Code)
	}
	data, _ := resp.Data.(map[string]any)
	if data["revision"] != float64(3) || data["scene"] == nil {
		t.Errorf("json payload %s", w.Body.String())
	}

	tests := []struct {
		name       string
		query      string
		wantStatus int
	}{
		{name: "unknown format", query: "?format=gif", wantStatus: http.StatusBadRequest},
		{name: "bad today", query: "?today=someday", wantStatus: http.StatusBadRequest},
		{name: "nothing to render", query: "?format=png", wantStatus: http.StatusConflict},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, _ := do(r, http.MethodGet, "/api/v1/views/v-1/render"+tt.query, "")
			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}
		})
	}
}

func TestToggleAndClick(t *testing.T) {
	uc := &fakeUseCase{}
	r := newRouter(t, uc)

	w, resp := do(r, http.MethodPost, "/api/v1/views/v-1/groups/Sprint%201/toggle", "")
	if w.Code != http.StatusOK {
		t.Fatalf("toggle group: status = %d", w.Code)
	}
	data, _ := resp.Data.(map[string]any)
	if uc.toggled.Key != "Sprint 1" || data["collapsed"] != true {
		t.Errorf("toggle group: key %q payload %s", uc.toggled.Key, w.Body.String())
	}

	w, _ = do(r, http.MethodPost, "/api/v1/views/v-1/groups/Sprint%209/toggle", "")
	if w.Code != http.StatusNotFound {
		t.Errorf("unknown group: status = %d", w.Code)
	}

	w, _ = do(r, http.MethodPost, "/api/v1/views/v-1/tasks/parent/toggle", "")
	if w.Code != http.StatusOK || uc.toggled.Key != "parent" {
		t.Errorf("toggle task: status = %d key %q", w.Code, uc.toggled.Key)
	}

	w, _ = do(r, http.MethodPost, "/api/v1/views/v-1/tasks/leaf/toggle", "")
	if w.Code != http.StatusConflict {
		t.Errorf("toggle leaf: status = %d", w.Code)
	}

	w, resp = do(r, http.MethodPost, "/api/v1/views/v-1/tasks/design/click", "")
	data, _ = resp.Data.(map[string]any)
	task, _ := data["task"].(map[string]any)
	if w.Code != http.StatusOK || task["id"] != "design" {
		t.Errorf("click: status = %d payload %s", w.Code, w.Body.String())
	}

	w, _ = do(r, http.MethodPost, "/api/v1/views/v-1/tasks/hidden/click", "")
	if w.Code != http.StatusConflict {
		t.Errorf("hidden click: status = %d", w.Code)
	}
}

func TestGesture(t *testing.T) {
	uc := &fakeUseCase{}
	r := newRouter(t, uc)

	w, resp := do(r, http.MethodPost, "/api/v1/views/v-1/viewport", `{"gesture":"pan","phase":"move","dx":-40}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", w.Code, w.Body.String())
	}
	if uc.gesture.ID != "v-1" || uc.gesture.Gesture != view.GesturePan || uc.gesture.Phase != view.PhaseMove || uc.gesture.DX != -40 {
		t.Errorf("use case got %+v", uc.gesture)
	}
	data, _ := resp.Data.(map[string]any)
	tr, _ := data["transform"].(map[string]any)
	if tr["x"] != float64(-40) || data["state"] != "gesturing" {
		t.Errorf("payload %s", w.Body.String())
	}

	for _, body := range []string{`{"gesture":"spin"}`, `{}`, `{"gesture":"wheel","delta_mode":4}`} {
		if w, _ := do(r, http.MethodPost, "/api/v1/views/v-1/viewport", body); w.Code != http.StatusBadRequest {
			t.Errorf("%s: status = %d", body, w.Code)
		}
	}
}

package http

import (
	"gantt-chart/internal/gantt"
	"gantt-chart/internal/view"
	"gantt-chart/pkg/response"
)

// --- Request DTOs ---

type createReq struct {
	DatasetID string  `json:"dataset_id" binding:"required"`
	Width     float64 `json:"width"      binding:"omitempty,gt=290"`
	GroupBy   string  `json:"group_by"   binding:"omitempty,oneof=sprint project none"`
}

func (r createReq) validate() error { return nil }

func (r createReq) toInput() view.CreateInput {
	return view.CreateInput{
		DatasetID: r.DatasetID,
		Width:     r.Width,
		GroupBy:   gantt.GroupBy(r.GroupBy),
	}
}

// ---

type updateReq struct {
	ID        string   `json:"-"` // populated from URI param
	DatasetID *string  `json:"dataset_id"`
	Width     *float64 `json:"width"`
	GroupBy   *string  `json:"group_by"`
}

func (r updateReq) validate() error { return nil }

func (r updateReq) toInput() view.UpdateInput {
	in := view.UpdateInput{
		ID:        r.ID,
		DatasetID: r.DatasetID,
		Width:     r.Width,
	}
	if r.GroupBy != nil {
		g := gantt.GroupBy(*r.GroupBy)
		in.GroupBy = &g
	}
	return in
}

// ---

type renderReq struct {
	ID     string `form:"-"`
	Format string `form:"format" binding:"omitempty,oneof=json svg png html"`
	Today  string `form:"today"` // absolute or relative; empty means now
}

func (r renderReq) validate() error { return nil }

// ---

type gestureReq struct {
	ID        string  `json:"-"`
	Gesture   string  `json:"gesture"    binding:"required,oneof=wheel pan zoom reset"`
	Phase     string  `json:"phase"      binding:"omitempty,oneof=start move end"`
	DX        float64 `json:"dx"`
	DY        float64 `json:"dy"`
	DeltaY    float64 `json:"delta_y"`
	DeltaMode int     `json:"delta_mode" binding:"min=0,max=2"`
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	Factor    float64 `json:"factor"`
}

func (r gestureReq) validate() error { return nil }

func (r gestureReq) toInput() view.GestureInput {
	return view.GestureInput{
		ID:        r.ID,
		Gesture:   view.Gesture(r.Gesture),
		Phase:     view.Phase(r.Phase),
		DX:        r.DX,
		DY:        r.DY,
		DeltaY:    r.DeltaY,
		DeltaMode: r.DeltaMode,
		X:         r.X,
		Y:         r.Y,
		Factor:    r.Factor,
	}
}

// --- Response DTOs ---

type viewResp struct {
	ID              string            `json:"id"`
	DatasetID       string            `json:"dataset_id"`
	Title           string            `json:"title"`
	Width           float64           `json:"width"`
	GroupBy         string            `json:"group_by"`
	CollapsedGroups []string          `json:"collapsed_groups"`
	CollapsedTasks  []string          `json:"collapsed_tasks"`
	Transform       gantt.Transform   `json:"transform"`
	Projections     gantt.Projections `json:"projections"`
	GestureState    string            `json:"gesture_state"`
	DateMin         response.Date     `json:"date_min"`
	DateMax         response.Date     `json:"date_max"`
	Revision        int64             `json:"revision"`
	Moves           int64             `json:"moves"`
	ScrollLeft      *float64          `json:"scroll_left,omitempty"`
	LastClicked     *gantt.Task       `json:"last_clicked,omitempty"`
	CreatedAt       response.DateTime `json:"created_at"`
}

func newViewResp(v view.Info) viewResp {
	resp := viewResp{
		ID:              v.ID,
		DatasetID:       v.DatasetID,
		Title:           v.Title,
		Width:           v.Width,
		GroupBy:         string(v.GroupBy),
		CollapsedGroups: v.CollapsedGroups,
		CollapsedTasks:  v.CollapsedTasks,
		Transform:       v.Transform,
		Projections:     v.Projections,
		GestureState:    string(v.GestureState),
		DateMin:         response.Date(v.DateRange.Min),
		DateMax:         response.Date(v.DateRange.Max),
		Revision:        v.Revision,
		Moves:           v.Moves,
		LastClicked:     v.LastClicked,
		CreatedAt:       response.DateTime(v.CreatedAt),
	}
	if v.ScrollApplied {
		left := v.ScrollLeft
		resp.ScrollLeft = &left
	}
	return resp
}

type stateResp struct {
	View viewResp `json:"view"`
}

func (h *handler) newStateResp(out view.StateOutput) stateResp {
	return stateResp{View: newViewResp(out.View)}
}

type toggleResp struct {
	Collapsed bool     `json:"collapsed"`
	View      viewResp `json:"view"`
}

func (h *handler) newToggleResp(out view.ToggleOutput) toggleResp {
	return toggleResp{Collapsed: out.Collapsed, View: newViewResp(out.View)}
}

type clickResp struct {
	Task gantt.Task `json:"task"`
}

func (h *handler) newClickResp(out view.ClickOutput) clickResp {
	return clickResp{Task: out.Task}
}

type gestureResp struct {
	Transform   gantt.Transform   `json:"transform"`
	Projections gantt.Projections `json:"projections"`
	State       string            `json:"state"`
}

func (h *handler) newGestureResp(out view.GestureOutput) gestureResp {
	return gestureResp{
		Transform:   out.Transform,
		Projections: out.Projections,
		State:       string(out.State),
	}
}

type renderResp struct {
	Revision int64       `json:"revision"`
	Scene    gantt.Scene `json:"scene"`
}

package usecase

import (
	"context"
	"math"

	"gantt-chart/internal/gantt"
	"gantt-chart/internal/view"
)

// ToggleGroup flips a group header between collapsed and expanded.
func (uc *implUseCase) ToggleGroup(ctx context.Context, input view.ToggleInput) (view.ToggleOutput, error) {
	s, err := uc.session(ctx, input.ID)
	if err != nil {
		return view.ToggleOutput{}, err
	}

	s.Lock()
	defer s.Unlock()
	if !hasGroup(s.Chart.Rows(), input.Key) {
		return view.ToggleOutput{}, view.ErrGroupNotFound
	}
	collapsed := s.Chart.ToggleGroup(input.Key)
	uc.l.Debugf(ctx, "view.usecase.ToggleGroup: view=%s group=%q collapsed=%v", s.ID, input.Key, collapsed)
	return view.ToggleOutput{View: info(s), Collapsed: collapsed}, nil
}

// ToggleTask flips a task between showing and hiding its descendants. Only
// tasks with children in their group can be collapsed.
func (uc *implUseCase) ToggleTask(ctx context.Context, input view.ToggleInput) (view.ToggleOutput, error) {
	s, err := uc.session(ctx, input.ID)
	if err != nil {
		return view.ToggleOutput{}, err
	}

	s.Lock()
	defer s.Unlock()
	if !hasTask(s.Chart.Tasks(), input.Key) {
		return view.ToggleOutput{}, view.ErrTaskNotFound
	}
	if !s.Chart.Collapsible(input.Key) {
		return view.ToggleOutput{}, view.ErrTaskNotCollapsible
	}
	collapsed := s.Chart.ToggleTask(input.Key)
	uc.l.Debugf(ctx, "view.usecase.ToggleTask: view=%s task=%q collapsed=%v", s.ID, input.Key, collapsed)
	return view.ToggleOutput{View: info(s), Collapsed: collapsed}, nil
}

// ClickTask forwards a progress-bar or label click to the host callback. Only
// visible tasks can be clicked.
func (uc *implUseCase) ClickTask(ctx context.Context, input view.ToggleInput) (view.ClickOutput, error) {
	s, err := uc.session(ctx, input.ID)
	if err != nil {
		return view.ClickOutput{}, err
	}

	s.Lock()
	defer s.Unlock()
	t, ok := s.Chart.ClickTask(input.Key)
	if !ok {
		if !hasTask(s.Chart.Tasks(), input.Key) {
			return view.ClickOutput{}, view.ErrTaskNotFound
		}
		return view.ClickOutput{}, view.ErrTaskNotVisible
	}
	uc.l.Infof(ctx, "view.usecase.ClickTask: view=%s task=%s name=%q", s.ID, t.ID, t.Name)
	return view.ClickOutput{Task: t}, nil
}

// Gesture moves the shared viewport transform. Rows are not rebuilt; the
// caller re-projects the three surfaces from the returned transform.
func (uc *implUseCase) Gesture(ctx context.Context, input view.GestureInput) (view.GestureOutput, error) {
	s, err := uc.session(ctx, input.ID)
	if err != nil {
		return view.GestureOutput{}, err
	}

	s.Lock()
	defer s.Unlock()
	vp := s.Chart.Viewport()

	switch input.Gesture {
	case view.GestureWheel:
		if !finite(input.DeltaY, input.X, input.Y) {
			return view.GestureOutput{}, view.ErrInvalidGesture
		}
		vp.Wheel(input.DeltaY, input.DeltaMode, input.X, input.Y)

	case view.GesturePan:
		if !finite(input.DX, input.DY) {
			return view.GestureOutput{}, view.ErrInvalidGesture
		}
		moved := input.DX != 0 || input.DY != 0
		switch input.Phase {
		case "":
			vp.Pan(input.DX, input.DY)
			vp.End()
		case view.PhaseStart:
			vp.Begin()
			if moved {
				vp.Pan(input.DX, input.DY)
			}
		case view.PhaseMove:
			vp.Pan(input.DX, input.DY)
		case view.PhaseEnd:
			if moved {
				vp.Pan(input.DX, input.DY)
			}
			vp.End()
		default:
			return view.GestureOutput{}, view.ErrInvalidGesture
		}

	case view.GestureZoom:
		if input.Factor <= 0 || !finite(input.Factor, input.X, input.Y) {
			return view.GestureOutput{}, view.ErrInvalidGesture
		}
		vp.Begin()
		vp.ZoomAt(input.Factor, input.X, input.Y)
		vp.End()

	case view.GestureReset:
		ts, ok := s.Chart.TimeScale()
		if !ok {
			return view.GestureOutput{}, view.ErrNothingToRender
		}
		vp.Set(gantt.InitialTransform(ts, uc.now()))
		vp.End()

	default:
		return view.GestureOutput{}, view.ErrInvalidGesture
	}

	t := vp.Transform()
	return view.GestureOutput{Transform: t, Projections: t.Project(), State: vp.State()}, nil
}

func hasGroup(rows gantt.RowModel, key string) bool {
	for _, r := range rows.Rows {
		if r.Kind == gantt.RowGroup && r.GroupKey == key {
			return true
		}
	}
	return false
}

func hasTask(tasks []gantt.Task, id string) bool {
	for _, t := range tasks {
		if t.ID == id {
			return true
		}
	}
	return false
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

package usecase

import (
	"context"
	"fmt"

	"gantt-chart/internal/gantt"
	"gantt-chart/internal/view"
	"gantt-chart/internal/view/repository"
)

// minWidth is the rail plus the right margin; the time axis needs more.
const minWidth = gantt.MarginLeft + gantt.MarginRight

// Create mounts a chart on a dataset and stores it as a new session.
func (uc *implUseCase) Create(ctx context.Context, input view.CreateInput) (view.StateOutput, error) {
	width := input.Width
	if width == 0 {
		width = uc.cfg.Width
	}
	if width <= minWidth {
		return view.StateOutput{}, view.ErrInvalidWidth
	}
	groupBy := input.GroupBy
	if groupBy == "" {
		groupBy = uc.cfg.GroupBy
	}
	if !groupBy.Valid() {
		return view.StateOutput{}, view.ErrInvalidGroupBy
	}

	ds, err := uc.datasets.Detail(ctx, input.DatasetID)
	if err != nil {
		return view.StateOutput{}, err
	}

	chart := gantt.NewChart(gantt.Options{
		Width:       width,
		GroupBy:     groupBy,
		PaddingDays: uc.cfg.PaddingDays,
	})
	s, err := uc.repo.CreateSession(ctx, repository.CreateSessionOptions{
		DatasetID: ds.Dataset.ID,
		Title:     ds.Dataset.Name,
		Chart:     chart,
		CreatedAt: uc.now().UTC(),
	})
	if err != nil {
		uc.l.Errorf(ctx, "view.usecase.Create: %v", err)
		return view.StateOutput{}, fmt.Errorf("create view: %w", err)
	}

	s.Lock()
	defer s.Unlock()
	mount(s)
	chart.SetDataset(ds.Dataset.ID, ds.Dataset.Tasks)

	uc.l.Infof(ctx, "view.usecase.Create: view=%s dataset=%s width=%v group_by=%s", s.ID, s.DatasetID, width, groupBy)
	return view.StateOutput{View: info(s)}, nil
}

// mount wires the chart's callbacks to the session bookkeeping. They run
// with the session lock held by the caller that triggered them.
func mount(s *view.Session) {
	s.Chart.OnRedraw(func() {
		s.Revision++
	})
	s.Chart.Viewport().Subscribe(func(gantt.Transform) {
		s.Moves++
	})
	s.Chart.SetOnTaskClick(func(t gantt.Task) {
		s.LastClicked = &t
	})
}

func (uc *implUseCase) Get(ctx context.Context, id string) (view.StateOutput, error) {
	s, err := uc.session(ctx, id)
	if err != nil {
		return view.StateOutput{}, err
	}
	s.Lock()
	defer s.Unlock()
	return view.StateOutput{View: info(s)}, nil
}

// Update applies host configuration changes. Switching dataset ids resets
// the frozen date range; re-supplying the same id keeps it.
func (uc *implUseCase) Update(ctx context.Context, input view.UpdateInput) (view.StateOutput, error) {
	if input.Width != nil && *input.Width <= minWidth {
		return view.StateOutput{}, view.ErrInvalidWidth
	}
	if input.GroupBy != nil && !input.GroupBy.Valid() {
		return view.StateOutput{}, view.ErrInvalidGroupBy
	}

	s, err := uc.session(ctx, input.ID)
	if err != nil {
		return view.StateOutput{}, err
	}

	// Load the dataset before taking the session lock.
	var (
		datasetID, title string
		tasks            []gantt.Task
	)
	if input.DatasetID != nil {
		out, err := uc.datasets.Detail(ctx, *input.DatasetID)
		if err != nil {
			return view.StateOutput{}, err
		}
		datasetID, title, tasks = out.Dataset.ID, out.Dataset.Name, out.Dataset.Tasks
	}

	s.Lock()
	defer s.Unlock()
	if input.DatasetID != nil {
		s.DatasetID, s.Title = datasetID, title
		s.Chart.SetDataset(datasetID, tasks)
	}
	if input.Width != nil {
		s.Chart.SetWidth(*input.Width)
	}
	if input.GroupBy != nil {
		s.Chart.SetGroupBy(*input.GroupBy)
	}
	return view.StateOutput{View: info(s)}, nil
}

// Delete unmounts a view. Pending initial scrolls still fire but land on
// the detached session.
func (uc *implUseCase) Delete(ctx context.Context, id string) error {
	s, err := uc.session(ctx, id)
	if err != nil {
		return err
	}
	if err := uc.repo.DeleteSession(ctx, s.ID); err != nil {
		uc.l.Errorf(ctx, "view.usecase.Delete: %v", err)
		return fmt.Errorf("delete view: %w", err)
	}
	uc.l.Infof(ctx, "view.usecase.Delete: view=%s", s.ID)
	return nil
}

func (uc *implUseCase) session(ctx context.Context, id string) (*view.Session, error) {
	if id == "" {
		return nil, view.ErrViewNotFound
	}
	s, err := uc.repo.GetSession(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "view.usecase.session: %v", err)
		return nil, fmt.Errorf("get view: %w", err)
	}
	if s == nil {
		return nil, view.ErrViewNotFound
	}
	return s, nil
}

// info snapshots s. The caller holds the session lock.
func info(s *view.Session) view.Info {
	c := s.Chart
	state := c.State()
	vp := c.Viewport()
	domain, _ := c.DateRange()
	var clicked *gantt.Task
	if s.LastClicked != nil {
		t := *s.LastClicked
		clicked = &t
	}
	return view.Info{
		ID:              s.ID,
		DatasetID:       s.DatasetID,
		Title:           s.Title,
		Width:           c.Width(),
		GroupBy:         c.GroupBy(),
		CollapsedGroups: state.CollapsedGroups().Sorted(),
		CollapsedTasks:  state.CollapsedTasks().Sorted(),
		Transform:       vp.Transform(),
		Projections:     vp.Transform().Project(),
		GestureState:    vp.State(),
		DateRange:       domain,
		Revision:        s.Revision,
		Moves:           s.Moves,
		ScrollLeft:      s.ScrollLeft,
		ScrollApplied:   s.ScrollApplied,
		LastClicked:     clicked,
		CreatedAt:       s.CreatedAt,
	}
}

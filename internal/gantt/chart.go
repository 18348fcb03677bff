package gantt

import "time"

// Options configures a Chart. Zero values fall back to the defaults.
type Options struct {
	Width       float64
	GroupBy     GroupBy
	PaddingDays int
	OnTaskClick func(Task)
}

// Chart is a mounted Gantt chart: the dataset, its frozen date range, the
// host configuration, the collapse state and the viewport. Any change to
// those inputs triggers the redraw listeners; each redraw rebuilds the
// scene from scratch.
type Chart struct {
	datasetID string
	tasks     []Task
	domain    DateRange
	hasDomain bool

	width       float64
	groupBy     GroupBy
	paddingDays int
	onTaskClick func(Task)

	state       *ViewState
	viewport    *Controller
	initialized bool
	scroll      InitialScroll

	redraw []func()
}

// NewChart mounts an empty chart.
func NewChart(opt Options) *Chart {
	if opt.Width <= 0 {
		opt.Width = DefaultWidth
	}
	if !opt.GroupBy.Valid() {
		opt.GroupBy = GroupBySprint
	}
	if opt.PaddingDays <= 0 {
		opt.PaddingDays = DefaultPaddingDays
	}

	c := &Chart{
		width:       opt.Width,
		groupBy:     opt.GroupBy,
		paddingDays: opt.PaddingDays,
		onTaskClick: opt.OnTaskClick,
		state:       NewViewState(),
		viewport:    NewController(IdentityTransform()),
	}
	c.state.Subscribe(c.invalidate)
	return c
}

// OnRedraw registers fn to run whenever the chart must be redrawn.
func (c *Chart) OnRedraw(fn func()) {
	c.redraw = append(c.redraw, fn)
}

func (c *Chart) invalidate() {
	for _, fn := range c.redraw {
		fn()
	}
}

// SetDataset supplies the task list. The date range is frozen per dataset
// id: it is recomputed only when id differs from the current one, so
// positions never shift while the same dataset is shown.
func (c *Chart) SetDataset(id string, tasks []Task) {
	if id != c.datasetID || !c.hasDomain {
		c.domain, c.hasDomain = NewDateRange(tasks, c.paddingDays)
		c.initialized = false
	}
	c.datasetID = id
	c.tasks = tasks
	c.invalidate()
}

// SetWidth changes the declared total width; the domain is kept.
func (c *Chart) SetWidth(w float64) {
	if w <= 0 || w == c.width {
		return
	}
	c.width = w
	c.invalidate()
}

// SetGroupBy changes the grouping mode.
func (c *Chart) SetGroupBy(g GroupBy) {
	if !g.Valid() || g == c.groupBy {
		return
	}
	c.groupBy = g
	c.invalidate()
}

// SetOnTaskClick replaces the click callback.
func (c *Chart) SetOnTaskClick(fn func(Task)) {
	c.onTaskClick = fn
	c.invalidate()
}

// DatasetID returns the id of the mounted dataset.
func (c *Chart) DatasetID() string { return c.datasetID }

// Tasks returns the mounted task list.
func (c *Chart) Tasks() []Task { return c.tasks }

// Width returns the declared total width.
func (c *Chart) Width() float64 { return c.width }

// GroupBy returns the grouping mode.
func (c *Chart) GroupBy() GroupBy { return c.groupBy }

// State exposes the collapse state.
func (c *Chart) State() *ViewState { return c.state }

// Viewport exposes the transform controller.
func (c *Chart) Viewport() *Controller { return c.viewport }

// DateRange returns the frozen domain, or false with no tasks.
func (c *Chart) DateRange() (DateRange, bool) { return c.domain, c.hasDomain }

// TimeScale returns the scale for the current width.
func (c *Chart) TimeScale() (TimeScale, bool) {
	if !c.hasDomain {
		return TimeScale{}, false
	}
	return NewTimeScale(c.domain, c.width), true
}

// ToggleGroup collapses or expands a group header.
func (c *Chart) ToggleGroup(key string) bool { return c.state.ToggleGroup(key) }

// Collapsible reports whether task id has children under the current
// grouping.
func (c *Chart) Collapsible(id string) bool {
	return HasChildTasks(c.tasks, id, c.groupBy)
}

// ToggleTask collapses or expands a task's children. A task without
// children stays expanded and nothing is redrawn.
func (c *Chart) ToggleTask(id string) bool {
	if !c.Collapsible(id) {
		return false
	}
	return c.state.ToggleTask(id)
}

// ClickTask forwards a click on a task's progress bar to the host callback.
// It reports false when the task is not currently visible.
func (c *Chart) ClickTask(id string) (Task, bool) {
	for _, r := range c.Rows().Rows {
		if r.Kind == RowTask && r.ID == id && r.Task != nil {
			t := *r.Task
			if c.onTaskClick != nil {
				c.onTaskClick(t)
			}
			return t, true
		}
	}
	return Task{}, false
}

// Rows builds the current row model.
func (c *Chart) Rows() RowModel {
	return BuildRows(c.tasks, c.rowOptions())
}

func (c *Chart) rowOptions() RowOptions {
	return RowOptions{
		GroupBy:         c.groupBy,
		CollapsedGroups: c.state.CollapsedGroups(),
		CollapsedTasks:  c.state.CollapsedTasks(),
	}
}

// Render lays out the chart. The first render after a dataset is mounted
// positions the viewport so today is near the left edge. It returns false
// when there is nothing to draw.
func (c *Chart) Render(today time.Time) (Scene, bool) {
	if !c.hasDomain || len(c.tasks) == 0 {
		return Scene{}, false
	}
	if !c.initialized {
		c.viewport.Set(InitialTransform(NewTimeScale(c.domain, c.width), today))
		c.initialized = true
	}
	return BuildScene(c.tasks, c.domain, c.width, c.rowOptions(), c.viewport.Transform(), today), true
}

// ScheduleInitialScroll arms the one-shot deferred scroll that brings today
// to the left edge of a scrolling host once layout has settled. apply runs
// on a timer goroutine; callers synchronize it with their own lock.
func (c *Chart) ScheduleInitialScroll(today time.Time, delay time.Duration, apply func(scrollLeft float64)) {
	ts, ok := c.TimeScale()
	if !ok {
		return
	}
	left := InitialScrollLeft(ts, today)
	c.scroll.Schedule(delay, func() { apply(left) })
}

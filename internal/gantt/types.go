package gantt

import "time"

// Task is a schedulable unit of work supplied by the host.
// The engine never mutates a Task; it only derives rows from the list.
type Task struct {
	ID           string    `json:"id" yaml:"id"`
	Name         string    `json:"name" yaml:"name"`
	Resource     string    `json:"resource,omitempty" yaml:"resource,omitempty"`
	Start        time.Time `json:"start" yaml:"start"`
	End          time.Time `json:"end" yaml:"end"`
	Progress     float64   `json:"progress" yaml:"progress"` // 0-100
	Dependencies []string  `json:"dependencies,omitempty" yaml:"dependencies,omitempty"`
	Sprint       string    `json:"sprint,omitempty" yaml:"sprint,omitempty"`
	Project      string    `json:"project,omitempty" yaml:"project,omitempty"`
	ParentID     string    `json:"parent_id,omitempty" yaml:"parent_id,omitempty"`
}

// GroupBy selects which task field clusters rows under group headers.
type GroupBy string

const (
	GroupBySprint  GroupBy = "sprint"
	GroupByProject GroupBy = "project"
	GroupByNone    GroupBy = "none"
)

// Valid reports whether g is one of the known grouping modes.
func (g GroupBy) Valid() bool {
	switch g {
	case GroupBySprint, GroupByProject, GroupByNone:
		return true
	}
	return false
}

// Key returns the group key of t under mode g, or "" when t has none.
func (g GroupBy) Key(t Task) string {
	switch g {
	case GroupBySprint:
		return t.Sprint
	case GroupByProject:
		return t.Project
	}
	return ""
}

// RowKind distinguishes group header rows from task rows.
type RowKind string

const (
	RowGroup RowKind = "group"
	RowTask  RowKind = "task"
)

// Row is one renderable line of the chart. Rows are rebuilt on every redraw.
type Row struct {
	ID          string  `json:"id"`
	Kind        RowKind `json:"kind"`
	Name        string  `json:"name"`
	GroupKey    string  `json:"group_key,omitempty"`
	Task        *Task   `json:"task,omitempty"`
	Level       int     `json:"level"`
	Collapsed   bool    `json:"collapsed"`
	HasChildren bool    `json:"has_children"`
}

// WarningCode classifies a data-integrity problem found while laying out.
type WarningCode string

const (
	WarnParentCycle      WarningCode = "parent_cycle"
	WarnInvertedInterval WarningCode = "inverted_interval"
)

// Warning reports bad input the engine tolerated instead of failing.
type Warning struct {
	Code    WarningCode `json:"code"`
	TaskID  string      `json:"task_id"`
	Message string      `json:"message"`
}

// Layout constants shared by the scales and surfaces.
const (
	DefaultWidth       = 2000
	DefaultPaddingDays = 30

	MarginTop    = 60.0
	MarginRight  = 40.0
	MarginBottom = 40.0
	MarginLeft   = 250.0

	RowHeight      = 50.0
	GroupRowHeight = 40.0
	RowPadding     = 10.0
	BarHeight      = 30.0
	LabelPadding   = 10.0
	IndentPerLevel = 20.0

	HeaderHeight = 50.0
	HeaderAxisY  = 30.0

	BarRadius    = 4.0
	HoverOpacity = 0.8

	OtherGroup = "Other"
)

// Colors used by the surfaces.
const (
	ColorBarBackground = "#e5e7eb"
	ColorBarStroke     = "#d1d5db"
	ColorComplete      = "#10b981"
	ColorInProgress    = "#f59e0b"
	ColorNotStarted    = "#9ca3af"
	ColorLabelLight    = "#ffffff"
	ColorLabelDark     = "#1f2937"
	ColorConnector     = "#6b7280"
	ColorGrid          = "#e5e7eb"
	ColorAxis          = "#6b7280"
	ColorGroupFill     = "#f3f4f6"
	ColorResource      = "#9ca3af"
	ColorToday         = "#ef4444"
)

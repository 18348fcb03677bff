package view

import (
	"sync"
	"time"

	"gantt-chart/internal/gantt"
)

// Format selects how a view is rendered.
type Format string

const (
	FormatJSON Format = "json"
	FormatSVG  Format = "svg"
	FormatPNG  Format = "png"
	FormatHTML Format = "html"
)

// Valid reports whether f is a known format.
func (f Format) Valid() bool {
	switch f {
	case FormatJSON, FormatSVG, FormatPNG, FormatHTML:
		return true
	}
	return false
}

// Gesture names a viewport interaction.
type Gesture string

const (
	GestureWheel Gesture = "wheel"
	GesturePan   Gesture = "pan"
	GestureZoom  Gesture = "zoom"
	GestureReset Gesture = "reset"
)

// Phase splits a pan into a drag sequence. An empty phase is a complete gesture.
type Phase string

const (
	PhaseStart Phase = "start"
	PhaseMove  Phase = "move"
	PhaseEnd   Phase = "end"
)

// --- View Domain Model ---

// Session is one mounted chart. Callers hold the embedded mutex while
// touching Chart or the bookkeeping fields.
type Session struct {
	sync.Mutex

	ID        string
	DatasetID string
	Title     string
	Chart     *gantt.Chart
	CreatedAt time.Time

	// Revision counts redraw notifications from the chart.
	Revision int64
	// Moves counts viewport transform changes.
	Moves int64
	// ScrollLeft is set once by the deferred initial scroll.
	ScrollLeft    float64
	ScrollApplied bool
	LastClicked   *gantt.Task
}

// Info is a snapshot of a session's view state.
type Info struct {
	ID              string
	DatasetID       string
	Title           string
	Width           float64
	GroupBy         gantt.GroupBy
	CollapsedGroups []string
	CollapsedTasks  []string
	Transform       gantt.Transform
	Projections     gantt.Projections
	GestureState    gantt.GestureState
	DateRange       gantt.DateRange
	Revision        int64
	Moves           int64
	ScrollLeft      float64
	ScrollApplied   bool
	LastClicked     *gantt.Task
	CreatedAt       time.Time
}

// --- UseCase Inputs ---

type CreateInput struct {
	DatasetID string
	Width     float64
	GroupBy   gantt.GroupBy
}

// UpdateInput changes the host configuration. Nil fields are left alone.
type UpdateInput struct {
	ID        string
	DatasetID *string
	Width     *float64
	GroupBy   *gantt.GroupBy
}

type RenderInput struct {
	ID     string
	Format Format
	Today  time.Time // zero means now
	// APIBase is embedded in HTML pages for callbacks.
	APIBase string
}

type ToggleInput struct {
	ID  string
	Key string // group key or task id
}

type GestureInput struct {
	ID        string
	Gesture   Gesture
	Phase     Phase
	DX, DY    float64
	DeltaY    float64
	DeltaMode int
	X, Y      float64 // pointer in body-surface pixels
	Factor    float64
}

// --- UseCase Outputs ---

type StateOutput struct {
	View Info
}

type RenderOutput struct {
	Format      Format
	ContentType string
	Body        []byte      // svg, png and html
	Scene       gantt.Scene // json
	Revision    int64
}

type ToggleOutput struct {
	View      Info
	Collapsed bool
}

type ClickOutput struct {
	Task gantt.Task
}

type GestureOutput struct {
	Transform   gantt.Transform
	Projections gantt.Projections
	State       gantt.GestureState
}

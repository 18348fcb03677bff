package gantt

import (
	"fmt"
	"math"
	"strconv"
)

// Bar is the geometry of one task's background and progress rectangles.
type Bar struct {
	TaskID string  `json:"task_id"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Radius float64 `json:"radius"`

	ProgressWidth float64 `json:"progress_width"`
	ProgressColor string  `json:"progress_color"`

	Label *BarLabel `json:"label,omitempty"`
}

// BarLabel is the percentage text centered on the progress rectangle.
type BarLabel struct {
	Text  string  `json:"text"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Color string  `json:"color"`
}

// ProgressColor is the fill policy for the progress rectangle.
func ProgressColor(progress float64) string {
	switch {
	case progress >= 100:
		return ColorComplete
	case progress > 0:
		return ColorInProgress
	default:
		return ColorNotStarted
	}
}

// LabelColor picks light text over fills past the halfway mark.
func LabelColor(progress float64) string {
	if progress > 50 {
		return ColorLabelLight
	}
	return ColorLabelDark
}

// ProgressWidth is the filled share of a bar of width w.
func ProgressWidth(w, progress float64) float64 {
	return w * clampProgress(progress) / 100
}

func clampProgress(p float64) float64 {
	if math.IsNaN(p) {
		return 0
	}
	return math.Max(0, math.Min(100, p))
}

// TaskSpan returns the start and end x of t. An end before the start is
// drawn as a zero-width bar at the start; the bool reports that clamp.
func TaskSpan(t Task, scale TimeScale) (x0, x1 float64, inverted bool) {
	x0 = scale.Position(t.Start)
	if t.End.Before(t.Start) {
		return x0, x0, true
	}
	return x0, scale.Position(t.End), false
}

// LayoutBars computes a Bar for every visible task row.
func LayoutBars(rows []Row, ts TimeScale, rs RowScale) ([]Bar, []Warning) {
	var (
		bars     []Bar
		warnings []Warning
	)
	for _, r := range rows {
		if r.Kind != RowTask || r.Task == nil {
			continue
		}
		band, ok := rs.Band(r.ID)
		if !ok {
			continue
		}

		t := *r.Task
		x0, x1, inverted := TaskSpan(t, ts)
		if inverted {
			warnings = append(warnings, Warning{
				Code:    WarnInvertedInterval,
				TaskID:  t.ID,
				Message: fmt.Sprintf("task %q ends before it starts; drawn with zero width", t.ID),
			})
		}

		progress := clampProgress(t.Progress)
		w := x1 - x0
		b := Bar{
			TaskID:        t.ID,
			X:             x0,
			Y:             band.Center() - BarHeight/2,
			Width:         w,
			Height:        BarHeight,
			Radius:        BarRadius,
			ProgressWidth: ProgressWidth(w, progress),
			ProgressColor: ProgressColor(progress),
		}
		if progress > 0 {
			b.Label = &BarLabel{
				Text:  strconv.FormatFloat(progress, 'f', -1, 64) + "%",
				X:     x0 + b.ProgressWidth/2,
				Y:     band.Center(),
				Color: LabelColor(progress),
			}
		}
		bars = append(bars, b)
	}
	return bars, warnings
}

package gantt

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/gogpu/gg"
)

// Zoom limits. Translation is never clamped.
const (
	MinScale = 0.1
	MaxScale = 5.0
)

// Wheel delta modes as reported by pointer devices.
const (
	DeltaPixel = 0
	DeltaLine  = 1
	DeltaPage  = 2
)

// Transform is the shared pan/zoom state of the three surfaces.
type Transform struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	K float64 `json:"k"`
}

// IdentityTransform is the untranslated, unscaled transform.
func IdentityTransform() Transform {
	return Transform{K: 1}
}

// ChartBody projects the full transform onto the body surface.
func (t Transform) ChartBody() gg.Matrix {
	return gg.Translate(t.X, MarginTop+t.Y).Multiply(gg.Scale(t.K, t.K))
}

// DateHeader follows horizontal pan and zoom only; its vertical position is pinned.
func (t Transform) DateHeader() gg.Matrix {
	return gg.Translate(MarginLeft+t.X, HeaderAxisY).Multiply(gg.Scale(t.K, 1))
}

// RowRail follows vertical pan only so labels keep their size at any zoom.
func (t Transform) RowRail() gg.Matrix {
	return gg.Translate(MarginLeft, MarginTop+t.Y).Multiply(gg.Scale(1, 1))
}

// Projections bundles the per-surface matrices of one transform.
type Projections struct {
	Body   gg.Matrix `json:"-"`
	Header gg.Matrix `json:"-"`
	Rail   gg.Matrix `json:"-"`

	BodySVG   string `json:"body"`
	HeaderSVG string `json:"header"`
	RailSVG   string `json:"rail"`
}

// Project computes all three surface projections.
func (t Transform) Project() Projections {
	p := Projections{Body: t.ChartBody(), Header: t.DateHeader(), Rail: t.RowRail()}
	p.BodySVG = SVGTransform(p.Body)
	p.HeaderSVG = SVGTransform(p.Header)
	p.RailSVG = SVGTransform(p.Rail)
	return p
}

// SVGTransform renders an axis-aligned matrix as an SVG transform attribute.
func SVGTransform(m gg.Matrix) string {
	return fmt.Sprintf("translate(%s,%s) scale(%s,%s)", num(m.C), num(m.F), num(m.A), num(m.E))
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func clampScale(k float64) float64 {
	return math.Max(MinScale, math.Min(MaxScale, k))
}

// InitialTransform places today near the visible left edge. The translation
// is floored at zero so no space before the range start is revealed.
func InitialTransform(scale TimeScale, today time.Time) Transform {
	return Transform{X: math.Max(0, MarginLeft-scale.Position(today)), K: 1}
}

// InitialScrollLeft is the scroll offset of a scrolling host container that
// brings today to the left edge.
func InitialScrollLeft(scale TimeScale, today time.Time) float64 {
	return math.Max(0, scale.Position(today)-MarginLeft)
}

// GestureState is the controller's state.
type GestureState string

const (
	StateIdle      GestureState = "idle"
	StateGesturing GestureState = "gesturing"
)

// Controller owns the current transform and moves it in response to
// gestures. Every change is pushed to subscribers, which re-position the
// three surfaces from the same value.
type Controller struct {
	t         Transform
	state     GestureState
	listeners []func(Transform)
}

// NewController starts idle at initial (scale clamped).
func NewController(initial Transform) *Controller {
	initial.K = clampScale(initial.K)
	return &Controller{t: initial, state: StateIdle}
}

// Transform returns the current transform.
func (c *Controller) Transform() Transform { return c.t }

// State returns the gesture state.
func (c *Controller) State() GestureState { return c.state }

// Subscribe registers fn to receive every new transform.
func (c *Controller) Subscribe(fn func(Transform)) {
	c.listeners = append(c.listeners, fn)
}

// Begin enters the gesturing state.
func (c *Controller) Begin() { c.state = StateGesturing }

// End returns to idle. The transform is kept.
func (c *Controller) End() { c.state = StateIdle }

// Set replaces the transform.
func (c *Controller) Set(t Transform) {
	t.K = clampScale(t.K)
	c.t = t
	c.notify()
}

// Pan translates by a drag delta in surface pixels.
func (c *Controller) Pan(dx, dy float64) {
	if c.state == StateIdle {
		c.Begin()
	}
	c.t.X += dx
	c.t.Y += dy
	c.notify()
}

// ZoomAt multiplies the scale by factor, keeping the surface point (px, py)
// fixed on screen.
func (c *Controller) ZoomAt(factor, px, py float64) {
	if factor <= 0 || math.IsNaN(factor) || math.IsInf(factor, 0) {
		return
	}
	k := clampScale(c.t.K * factor)
	c.t.X = px - (px-c.t.X)/c.t.K*k
	c.t.Y = py - (py-c.t.Y)/c.t.K*k
	c.t.K = k
	c.notify()
}

// Wheel applies one wheel event as a complete zoom gesture anchored at the
// pointer.
func (c *Controller) Wheel(deltaY float64, deltaMode int, px, py float64) {
	c.Begin()
	defer c.End()

	mult := 0.002
	switch deltaMode {
	case DeltaLine:
		mult = 0.05
	case DeltaPage:
		mult = 1
	}
	c.ZoomAt(math.Pow(2, -deltaY*mult), px, py)
}

func (c *Controller) notify() {
	for _, fn := range c.listeners {
		fn(c.t)
	}
}

// Package raster paints a gantt.Scene onto a gg canvas and encodes it as PNG.
package raster

import (
	"fmt"
	"io"
	"math"
	"sync"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"

	"gantt-chart/internal/gantt"
)

const (
	labelSize = 12.0
	smallSize = 10.0
)

var (
	fontOnce   sync.Once
	fontSource *text.FontSource
	fontErr    error
)

func loadFont() (*text.FontSource, error) {
	fontOnce.Do(func() {
		fontSource, fontErr = text.NewFontSource(goregular.TTF)
	})
	return fontSource, fontErr
}

// Render paints s and writes it to w as PNG.
func Render(w io.Writer, s gantt.Scene) error {
	dc, err := Paint(s)
	if err != nil {
		return err
	}
	defer func() { _ = dc.Close() }()

	if err := dc.EncodePNG(w); err != nil {
		return fmt.Errorf("raster: encode png: %w", err)
	}
	return nil
}

// Paint draws s onto a new canvas sized to the scene. The caller closes it.
func Paint(s gantt.Scene) (*gg.Context, error) {
	width, height := int(math.Ceil(s.Width)), int(math.Ceil(s.Height))
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("raster: empty scene %dx%d", width, height)
	}
	src, err := loadFont()
	if err != nil {
		return nil, fmt.Errorf("raster: load font: %w", err)
	}

	p := painter{
		dc:    gg.NewContext(width, height),
		label: src.Face(labelSize),
		small: src.Face(smallSize),
	}
	p.dc.ClearWithColor(gg.White)

	// Body first so the pinned rail and header paint over it.
	p.body(s)
	p.rail(s)
	p.header(s)
	return p.dc, nil
}

type painter struct {
	dc    *gg.Context
	label text.Face
	small text.Face
}

// text draws s with its anchor at the surface point (x, y) under m. Glyphs
// are placed in device space so labels keep their size at any zoom.
func (p painter) text(m gg.Matrix, face text.Face, color, s string, x, y, ax, ay float64) {
	pt := m.TransformPoint(gg.Pt(x, y))
	p.dc.Push()
	p.dc.Identity()
	p.dc.SetFont(face)
	p.dc.SetHexColor(color)
	p.dc.DrawStringAnchored(s, pt.X, pt.Y, ax, ay)
	p.dc.Pop()
}

func (p painter) body(s gantt.Scene) {
	b := s.Body
	// The body surface sits right of the rail.
	m := gg.Translate(gantt.MarginLeft, 0).Multiply(s.Projections.Body)

	p.dc.Push()
	p.dc.ClipRect(gantt.MarginLeft, 0, b.Width, b.Height)
	p.dc.SetTransform(m)

	p.dc.SetHexColor(gantt.ColorGrid)
	p.dc.SetLineWidth(1)
	p.dc.SetDash(2, 2)
	for _, t := range b.Grid {
		p.dc.DrawLine(t.X, 0, t.X, b.RowsHeight)
		_ = p.dc.Stroke()
	}
	p.dc.ClearDash()

	if b.TodayX != nil {
		p.dc.SetHexColor(gantt.ColorToday)
		p.dc.SetLineWidth(1.5)
		p.dc.DrawLine(*b.TodayX, 0, *b.TodayX, b.RowsHeight)
		_ = p.dc.Stroke()
	}

	p.dc.SetLineWidth(gantt.ConnectorWidth)
	for _, c := range b.Connectors {
		p.connector(c)
	}

	for _, bar := range b.Bars {
		p.bar(m, bar)
	}
	p.dc.Pop()
}

func (p painter) connector(c gantt.Connector) {
	p.dc.SetRGBA(hexRGBA(gantt.ColorConnector, gantt.ConnectorOpacity))
	for _, op := range c.Path {
		switch op.Op {
		case "M":
			p.dc.MoveTo(op.Points[0], op.Points[1])
		case "L":
			p.dc.LineTo(op.Points[0], op.Points[1])
		case "Q":
			p.dc.QuadraticTo(op.Points[0], op.Points[1], op.Points[2], op.Points[3])
		}
	}
	_ = p.dc.Stroke()

	// Arrowhead at the end, pointing along the final stub.
	const size = 6.0
	p.dc.MoveTo(c.To.X, c.To.Y)
	p.dc.LineTo(c.To.X-size, c.To.Y-size/2)
	p.dc.LineTo(c.To.X-size, c.To.Y+size/2)
	p.dc.ClosePath()
	_ = p.dc.Fill()
}

func (p painter) bar(m gg.Matrix, b gantt.Bar) {
	p.dc.SetHexColor(gantt.ColorBarBackground)
	p.dc.DrawRoundedRectangle(b.X, b.Y, b.Width, b.Height, b.Radius)
	_ = p.dc.FillPreserve()
	p.dc.SetHexColor(gantt.ColorBarStroke)
	p.dc.SetLineWidth(1)
	_ = p.dc.Stroke()

	if b.ProgressWidth > 0 {
		p.dc.SetHexColor(b.ProgressColor)
		p.dc.DrawRoundedRectangle(b.X, b.Y, b.ProgressWidth, b.Height, b.Radius)
		_ = p.dc.Fill()
	}
	if b.Label != nil {
		p.text(m, p.small, b.Label.Color, b.Label.Text, b.Label.X, b.Label.Y, 0.5, 0.35)
	}
}

func (p painter) rail(s gantt.Scene) {
	r := s.Rail
	m := s.Projections.Rail

	p.dc.Push()
	p.dc.SetHexColor("#ffffff")
	p.dc.DrawRectangle(0, 0, r.Width, r.Height)
	_ = p.dc.Fill()
	p.dc.ClipRect(0, gantt.MarginTop, r.Width, r.Height-gantt.MarginTop)
	p.dc.SetTransform(m)

	for _, it := range r.Items {
		if it.Kind == gantt.RowGroup {
			p.dc.SetHexColor(gantt.ColorGroupFill)
			p.dc.DrawRectangle(-gantt.MarginLeft, it.Top, gantt.MarginLeft, it.Height)
			_ = p.dc.Fill()
		}
		if it.Glyph != "" {
			p.glyph(it)
		}

		y := it.TextY
		if it.Resource != "" {
			y -= 6
		}
		p.text(m, p.label, gantt.ColorLabelDark, it.Text, it.TextX, y, 1, 0.35)
		if it.Resource != "" {
			p.text(m, p.small, gantt.ColorResource, "("+it.Resource+")", it.TextX, it.TextY+8, 1, 0.35)
		}
	}
	p.dc.Pop()
}

// glyph draws the expander as a filled triangle; the bundled font has no
// geometric shapes block.
func (p painter) glyph(it gantt.RailItem) {
	const h = 4.0
	x, y := it.GlyphX, it.TextY
	p.dc.SetHexColor(gantt.ColorAxis)
	if it.Glyph == gantt.GlyphCollapsed {
		p.dc.MoveTo(x-h, y-h)
		p.dc.LineTo(x+h, y)
		p.dc.LineTo(x-h, y+h)
	} else {
		p.dc.MoveTo(x-h, y-h)
		p.dc.LineTo(x+h, y-h)
		p.dc.LineTo(x, y+h)
	}
	p.dc.ClosePath()
	_ = p.dc.Fill()
}

func (p painter) header(s gantt.Scene) {
	h := s.Header
	m := s.Projections.Header

	p.dc.Push()
	p.dc.SetHexColor("#ffffff")
	p.dc.DrawRectangle(0, 0, h.Width, h.Height)
	_ = p.dc.Fill()
	p.dc.ClipRect(gantt.MarginLeft, 0, h.Width-gantt.MarginLeft, h.Height)
	p.dc.SetTransform(m)

	p.dc.SetHexColor(gantt.ColorAxis)
	p.dc.SetLineWidth(1)
	p.dc.DrawLine(0, 0, h.AxisLength, 0)
	_ = p.dc.Stroke()
	for _, t := range h.Ticks {
		p.dc.DrawLine(t.X, 0, t.X, -6)
		_ = p.dc.Stroke()
		p.text(m, p.small, gantt.ColorAxis, t.Label, t.X, -10, 0.5, 0)
	}
	p.dc.Pop()
}

func hexRGBA(hex string, alpha float64) (r, g, b, a float64) {
	c := gg.Hex(hex)
	return c.R, c.G, c.B, alpha
}

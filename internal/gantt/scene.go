package gantt

import (
	"math"
	"time"
)

// Glyphs drawn next to collapsible rows.
const (
	GlyphCollapsed = "▶"
	GlyphExpanded  = "▼"
)

// Scene is everything one redraw produces, split into the three surfaces.
type Scene struct {
	Width     float64   `json:"width"`
	Height    float64   `json:"height"`
	DateRange DateRange `json:"date_range"`

	Header HeaderSurface `json:"header"`
	Rail   RailSurface   `json:"rail"`
	Body   BodySurface   `json:"body"`

	Rows        []Row       `json:"rows"`
	Transform   Transform   `json:"transform"`
	Projections Projections `json:"projections"`
	Warnings    []Warning   `json:"warnings,omitempty"`
}

// HeaderSurface is the date header, pinned vertically.
type HeaderSurface struct {
	Width      float64 `json:"width"`
	Height     float64 `json:"height"`
	AxisLength float64 `json:"axis_length"`
	Ticks      []Tick  `json:"ticks"`
}

// RailSurface is the row-label rail, pinned horizontally.
type RailSurface struct {
	Width  float64    `json:"width"`
	Height float64    `json:"height"`
	Items  []RailItem `json:"items"`
}

// RailItem is the label block of one row. X coordinates are negative,
// measured leftwards from the rail's right edge. Clickable items carry an
// expander glyph that toggles the row.
type RailItem struct {
	RowID     string  `json:"row_id"`
	Kind      RowKind `json:"kind"`
	GroupKey  string  `json:"group_key,omitempty"`
	Top       float64 `json:"top"`
	Height    float64 `json:"height"`
	Text      string  `json:"text"`
	TextX     float64 `json:"text_x"`
	TextY     float64 `json:"text_y"`
	Resource  string  `json:"resource,omitempty"`
	Glyph     string  `json:"glyph,omitempty"`
	GlyphX    float64 `json:"glyph_x"`
	Clickable bool    `json:"clickable"`
}

// BodySurface is the zoomable chart body.
type BodySurface struct {
	Width      float64     `json:"width"`
	Height     float64     `json:"height"`
	RowsHeight float64     `json:"rows_height"`
	Grid       []Tick      `json:"grid"`
	TodayX     *float64    `json:"today_x,omitempty"`
	Bars       []Bar       `json:"bars"`
	Connectors []Connector `json:"connectors"`
}

// BuildScene lays out a full redraw. It is a pure function of its inputs.
func BuildScene(tasks []Task, domain DateRange, width float64, opt RowOptions, t Transform, today time.Time) Scene {
	model := BuildRows(tasks, opt)
	ts := NewTimeScale(domain, width)
	rs := NewRowScale(model.Rows)
	bars, barWarnings := LayoutBars(model.Rows, ts, rs)

	rowsHeight := rs.TotalHeight()
	height := rowsHeight + MarginTop + MarginBottom

	body := BodySurface{
		Width:      width - MarginLeft,
		Height:     height,
		RowsHeight: rowsHeight,
		Grid:       ts.WeekTicks(),
		Bars:       bars,
		Connectors: RouteConnectors(model.Rows, tasks, ts, rs),
	}
	if !today.Before(domain.Min) && !today.After(domain.Max) {
		x := ts.Position(today)
		body.TodayX = &x
	}

	return Scene{
		Width:     width,
		Height:    height,
		DateRange: domain,
		Header: HeaderSurface{
			Width:      width,
			Height:     HeaderHeight,
			AxisLength: ts.Width,
			Ticks:      ts.MonthTicks(),
		},
		Rail: RailSurface{
			Width:  MarginLeft,
			Height: height,
			Items:  railItems(model.Rows, rs),
		},
		Body:        body,
		Rows:        model.Rows,
		Transform:   t,
		Projections: t.Project(),
		Warnings:    append(model.Warnings, barWarnings...),
	}
}

func railItems(rows []Row, rs RowScale) []RailItem {
	items := make([]RailItem, 0, len(rows))
	for _, r := range rows {
		band, ok := rs.Band(r.ID)
		if !ok {
			continue
		}
		slot := band.Height + RowPadding
		top := band.Top - RowPadding/2
		indent := float64(r.Level) * IndentPerLevel

		item := RailItem{
			RowID:     r.ID,
			Kind:      r.Kind,
			GroupKey:  r.GroupKey,
			Top:       top,
			Height:    slot,
			Text:      r.Name,
			TextX:     -LabelPadding - indent,
			TextY:     top + slot/2,
			GlyphX:    -15 - indent,
			Clickable: r.Kind == RowGroup || r.HasChildren,
		}
		if r.Kind == RowGroup || r.HasChildren {
			item.Glyph = GlyphExpanded
			if r.Collapsed {
				item.Glyph = GlyphCollapsed
			}
		}
		if r.Kind == RowTask && r.Task != nil {
			item.Resource = r.Task.Resource
		}
		if item.Glyph != "" {
			// Keep the label clear of the glyph.
			item.TextX = math.Min(item.TextX, item.GlyphX-LabelPadding)
		}
		items = append(items, item)
	}
	return items
}

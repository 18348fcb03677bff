// Package svg draws a gantt.Scene as one SVG document holding the three
// surfaces (date header, row rail, chart body) as nested viewports.
package svg

import (
	"fmt"
	"html"
	"io"
	"math"
	"strconv"
	"strings"

	"gantt-chart/internal/gantt"
)

const (
	fontFamily    = "system-ui, -apple-system, sans-serif"
	labelFontSize = 12
	smallFontSize = 10
)

// Render writes the full chart to w.
func Render(w io.Writer, s gantt.Scene) error {
	var sb strings.Builder
	writeDocument(&sb, s)
	_, err := io.WriteString(w, sb.String())
	return err
}

// String renders the chart to a string.
func String(s gantt.Scene) string {
	var sb strings.Builder
	writeDocument(&sb, s)
	return sb.String()
}

func writeDocument(sb *strings.Builder, s gantt.Scene) {
	fmt.Fprintf(sb, `<svg xmlns="http://www.w3.org/2000/svg" class="gantt" width="%s" height="%s" viewBox="0 0 %s %s" font-family="%s">`,
		n(s.Width), n(s.Height), n(s.Width), n(s.Height), fontFamily)
	sb.WriteString("\n")
	writeDefs(sb)
	fmt.Fprintf(sb, `<rect width="100%%" height="100%%" fill="%s"/>`+"\n", "#ffffff")

	// Body first so the pinned rail and header paint over it.
	writeBody(sb, s)
	writeRail(sb, s)
	writeHeader(sb, s)

	sb.WriteString("</svg>\n")
}

func writeDefs(sb *strings.Builder) {
	sb.WriteString("<defs>\n")
	fmt.Fprintf(sb, `<marker id="%s" viewBox="0 -5 10 10" refX="5" refY="0" markerWidth="6" markerHeight="6" orient="auto"><path d="%s" fill="%s"/></marker>`+"\n",
		gantt.ArrowheadID, gantt.ArrowheadPath, gantt.ColorConnector)
	fmt.Fprintf(sb, "<style>.bar-progress{cursor:pointer}.bar-progress:hover{opacity:%s}.rail-item{cursor:pointer}</style>\n",
		n(gantt.HoverOpacity))
	sb.WriteString("</defs>\n")
}

func writeBody(sb *strings.Builder, s gantt.Scene) {
	b := s.Body
	fmt.Fprintf(sb, `<svg class="gantt-body" x="%s" y="0" width="%s" height="%s" overflow="hidden">`+"\n",
		n(gantt.MarginLeft), n(b.Width), n(b.Height))
	fmt.Fprintf(sb, `<g class="chart-body" transform="%s">`+"\n", s.Projections.BodySVG)

	sb.WriteString(`<g class="grid">` + "\n")
	for _, t := range b.Grid {
		fmt.Fprintf(sb, `<line x1="%s" y1="0" x2="%s" y2="%s" stroke="%s" stroke-dasharray="2,2"/>`+"\n",
			n(t.X), n(t.X), n(b.RowsHeight), gantt.ColorGrid)
	}
	sb.WriteString("</g>\n")

	if b.TodayX != nil {
		fmt.Fprintf(sb, `<line class="today" x1="%s" y1="0" x2="%s" y2="%s" stroke="%s" stroke-width="1.5"/>`+"\n",
			n(*b.TodayX), n(*b.TodayX), n(b.RowsHeight), gantt.ColorToday)
	}

	sb.WriteString(`<g class="connectors">` + "\n")
	for _, c := range b.Connectors {
		fmt.Fprintf(sb, `<path d="%s" fill="none" stroke="%s" stroke-width="%s" opacity="%s" marker-end="url(#%s)" data-from="%s" data-to="%s"/>`+"\n",
			c.D(), gantt.ColorConnector, n(gantt.ConnectorWidth), n(gantt.ConnectorOpacity), gantt.ArrowheadID,
			esc(c.FromID), esc(c.ToID))
	}
	sb.WriteString("</g>\n")

	sb.WriteString(`<g class="bars">` + "\n")
	for _, bar := range b.Bars {
		writeBar(sb, bar)
	}
	sb.WriteString("</g>\n")

	sb.WriteString("</g>\n</svg>\n")
}

func writeBar(sb *strings.Builder, b gantt.Bar) {
	fmt.Fprintf(sb, `<g class="bar" data-task-id="%s">`, esc(b.TaskID))
	fmt.Fprintf(sb, `<rect class="bar-bg" x="%s" y="%s" width="%s" height="%s" rx="%s" fill="%s" stroke="%s"/>`,
		n(b.X), n(b.Y), n(b.Width), n(b.Height), n(b.Radius), gantt.ColorBarBackground, gantt.ColorBarStroke)
	fmt.Fprintf(sb, `<rect class="bar-progress" x="%s" y="%s" width="%s" height="%s" rx="%s" fill="%s" data-task-id="%s"/>`,
		n(b.X), n(b.Y), n(b.ProgressWidth), n(b.Height), n(b.Radius), b.ProgressColor, esc(b.TaskID))
	if b.Label != nil {
		fmt.Fprintf(sb, `<text x="%s" y="%s" text-anchor="middle" dominant-baseline="middle" font-size="%d" font-weight="600" fill="%s" pointer-events="none">%s</text>`,
			n(b.Label.X), n(b.Label.Y), smallFontSize, b.Label.Color, esc(b.Label.Text))
	}
	sb.WriteString("</g>\n")
}

func writeRail(sb *strings.Builder, s gantt.Scene) {
	r := s.Rail
	fmt.Fprintf(sb, `<svg class="gantt-rail" x="0" y="0" width="%s" height="%s" overflow="hidden">`+"\n", n(r.Width), n(r.Height))
	fmt.Fprintf(sb, `<rect width="%s" height="%s" fill="#ffffff"/>`+"\n", n(r.Width), n(r.Height))
	fmt.Fprintf(sb, `<g class="row-rail" transform="%s">`+"\n", s.Projections.RailSVG)

	for _, it := range r.Items {
		writeRailItem(sb, it)
	}

	sb.WriteString("</g>\n</svg>\n")
}

func writeRailItem(sb *strings.Builder, it gantt.RailItem) {
	group := it.Kind == gantt.RowGroup

	// Group headers toggle on the whole block; tasks only on the glyph.
	fmt.Fprintf(sb, `<g class="rail-item rail-%s" data-row-id="%s"`, it.Kind, esc(it.RowID))
	if group {
		fmt.Fprintf(sb, ` data-toggle="group" data-group-key="%s" cursor="pointer"`, esc(it.GroupKey))
	}
	sb.WriteString(">")

	weight := "normal"
	size := labelFontSize
	if group {
		weight = "bold"
		size = labelFontSize + 2
		fmt.Fprintf(sb, `<rect x="%s" y="%s" width="%s" height="%s" fill="%s"/>`,
			n(-gantt.MarginLeft), n(it.Top), n(gantt.MarginLeft), n(it.Height), gantt.ColorGroupFill)
	}
	if it.Glyph != "" {
		sb.WriteString(`<text class="rail-glyph"`)
		if !group && it.Clickable {
			fmt.Fprintf(sb, ` data-toggle="task" data-task-id="%s" cursor="pointer"`, esc(it.RowID))
		}
		fmt.Fprintf(sb, ` x="%s" y="%s" text-anchor="middle" dominant-baseline="middle" font-size="%d" fill="%s">%s</text>`,
			n(it.GlyphX), n(it.TextY), smallFontSize, gantt.ColorAxis, esc(it.Glyph))
	}

	textY := it.TextY
	if it.Resource != "" {
		textY -= 6
	}
	sb.WriteString(`<text`)
	if !group {
		fmt.Fprintf(sb, ` class="rail-label" data-task-id="%s" cursor="pointer"`, esc(it.RowID))
	}
	fmt.Fprintf(sb, ` x="%s" y="%s" text-anchor="end" dominant-baseline="middle" font-size="%d" font-weight="%s" fill="%s">%s</text>`,
		n(it.TextX), n(textY), size, weight, gantt.ColorLabelDark, esc(it.Text))
	if it.Resource != "" {
		fmt.Fprintf(sb, `<text x="%s" y="%s" text-anchor="end" dominant-baseline="middle" font-size="%d" fill="%s">(%s)</text>`,
			n(it.TextX), n(it.TextY+8), smallFontSize, gantt.ColorResource, esc(it.Resource))
	}
	sb.WriteString("</g>\n")
}

func writeHeader(sb *strings.Builder, s gantt.Scene) {
	h := s.Header
	fmt.Fprintf(sb, `<svg class="gantt-header" x="0" y="0" width="%s" height="%s" overflow="hidden">`+"\n", n(h.Width), n(h.Height))
	fmt.Fprintf(sb, `<rect width="%s" height="%s" fill="#ffffff"/>`+"\n", n(h.Width), n(h.Height))
	fmt.Fprintf(sb, `<g class="date-header" transform="%s">`+"\n", s.Projections.HeaderSVG)

	fmt.Fprintf(sb, `<line x1="0" y1="0" x2="%s" y2="0" stroke="%s"/>`+"\n", n(h.AxisLength), gantt.ColorAxis)
	for _, t := range h.Ticks {
		fmt.Fprintf(sb, `<g class="tick" transform="translate(%s,0)"><line y2="-6" stroke="%s"/><text y="-10" text-anchor="middle" font-size="%d" fill="%s">%s</text></g>`+"\n",
			n(t.X), gantt.ColorAxis, smallFontSize+1, gantt.ColorAxis, esc(t.Label))
	}

	sb.WriteString("</g>\n</svg>\n")
}

// n prints coordinates with at most two decimals.
func n(v float64) string {
	return strconv.FormatFloat(math.Round(v*100)/100, 'f', -1, 64)
}

func esc(s string) string {
	return html.EscapeString(s)
}

package gantt_test

import (
	"math"
	"reflect"
	"testing"
	"time"

	"gantt-chart/internal/gantt"
)

const eps = 1e-9

func approx(a, b float64) bool {
	return math.Abs(a-b) < eps
}

func TestNewDateRange(t *testing.T) {
	tasks := []gantt.Task{
		{ID: "a", Start: day(2025, 1, 10), End: day(2025, 1, 20)},
		{ID: "b", Start: day(2025, 1, 5), End: day(2025, 2, 1)},
	}
	r, ok := gantt.NewDateRange(tasks, 30)
	if !ok {
		t.Fatal("expected a range")
	}
	if !r.Min.Equal(day(2024, 12, 6)) {
		t.Errorf("Min = %v", r.Min)
	}
	if !r.Max.Equal(day(2025, 3, 3)) {
		t.Errorf("Max = %v", r.Max)
	}

	if _, ok := gantt.NewDateRange(nil, 30); ok {
		t.Error("empty list must not produce a range")
	}
}

func TestTimeScale(t *testing.T) {
	domain := gantt.DateRange{Min: day(2025, 1, 1), Max: day(2025, 1, 11)}
	ts := gantt.NewTimeScale(domain, 1290) // chart width 1000

	if ts.Width != 1000 {
		t.Fatalf("Width = %v, want 1000", ts.Width)
	}
	if got := ts.Position(day(2025, 1, 1)); !approx(got, 0) {
		t.Errorf("Position(min) = %v", got)
	}
	if got := ts.Position(day(2025, 1, 6)); !approx(got, 500) {
		t.Errorf("Position(mid) = %v", got)
	}
	if got := ts.Position(day(2025, 1, 11)); !approx(got, 1000) {
		t.Errorf("Position(max) = %v", got)
	}
	if got := ts.Invert(500); !got.Equal(day(2025, 1, 6)) {
		t.Errorf("Invert(500) = %v", got)
	}

	wider := gantt.NewTimeScale(domain, 2290)
	if wider.Domain != ts.Domain {
		t.Error("width change must keep the domain")
	}
	if got := wider.Position(day(2025, 1, 6)); !approx(got, 1000) {
		t.Errorf("wider Position(mid) = %v", got)
	}
}

func TestTimeScaleTicks(t *testing.T) {
	domain := gantt.DateRange{Min: day(2025, 1, 15), Max: day(2025, 4, 1)}
	ts := gantt.NewTimeScale(domain, 1290)

	months := ts.MonthTicks()
	var labels []string
	for _, tk := range months {
		labels = append(labels, tk.Label)
	}
	if want := []string{"Feb 2025", "Mar 2025", "Apr 2025"}; !reflect.DeepEqual(labels, want) {
		t.Errorf("month labels = %v, want %v", labels, want)
	}

	weeks := ts.WeekTicks()
	if len(weeks) == 0 {
		t.Fatal("expected week ticks")
	}
	for _, tk := range weeks {
		if tk.Time.Weekday() != time.Sunday {
			t.Errorf("week tick %v is not a Sunday", tk.Time)
		}
		if tk.Time.Before(domain.Min) || tk.Time.After(domain.Max) {
			t.Errorf("week tick %v outside domain", tk.Time)
		}
	}
	if !weeks[0].Time.Equal(day(2025, 1, 19)) {
		t.Errorf("first week tick = %v, want 2025-01-19", weeks[0].Time)
	}
}

func TestRowScale(t *testing.T) {
	rows := []gantt.Row{
		{ID: "group-S1", Kind: gantt.RowGroup},
		{ID: "a", Kind: gantt.RowTask},
		{ID: "b", Kind: gantt.RowTask},
	}
	rs := gantt.NewRowScale(rows)

	if got := rs.TotalHeight(); got != gantt.GroupRowHeight+2*gantt.RowHeight {
		t.Errorf("TotalHeight = %v", got)
	}

	g, _ := rs.Band("group-S1")
	if g.Top != gantt.RowPadding/2 || g.Height != gantt.GroupRowHeight-gantt.RowPadding {
		t.Errorf("group band = %+v", g)
	}
	b, ok := rs.Band("b")
	if !ok {
		t.Fatal("b missing")
	}
	if want := gantt.GroupRowHeight + gantt.RowHeight + gantt.RowHeight/2; b.Center() != want {
		t.Errorf("b center = %v, want %v", b.Center(), want)
	}
	if _, ok := rs.Band("missing"); ok {
		t.Error("unknown row must not have a band")
	}
}

func TestProgressPolicy(t *testing.T) {
	tests := []struct {
		progress  float64
		color     string
		textColor string
	}{
		{0, gantt.ColorNotStarted, gantt.ColorLabelDark},
		{1, gantt.ColorInProgress, gantt.ColorLabelDark},
		{50, gantt.ColorInProgress, gantt.ColorLabelDark},
		{51, gantt.ColorInProgress, gantt.ColorLabelLight},
		{99.9, gantt.ColorInProgress, gantt.ColorLabelLight},
		{100, gantt.ColorComplete, gantt.ColorLabelLight},
	}
	for _, tt := range tests {
		if got := gantt.ProgressColor(tt.progress); got != tt.color {
			t.Errorf("ProgressColor(%v) = %s, want %s", tt.progress, got, tt.color)
		}
		if got := gantt.LabelColor(tt.progress); got != tt.textColor {
			t.Errorf("LabelColor(%v) = %s, want %s", tt.progress, got, tt.textColor)
		}
	}
}

func TestProgressWidthMonotonic(t *testing.T) {
	const w = 317.0
	if got := gantt.ProgressWidth(w, 0); got != 0 {
		t.Errorf("width at 0 = %v", got)
	}
	if got := gantt.ProgressWidth(w, 100); !approx(got, w) {
		t.Errorf("width at 100 = %v", got)
	}

	prev := -1.0
	for p := 0.0; p <= 100; p += 0.25 {
		got := gantt.ProgressWidth(w, p)
		if got < prev {
			t.Fatalf("width decreased at %v: %v < %v", p, got, prev)
		}
		// Continuity: a step of 0.25 moves the fill by exactly w*0.25/100.
		if prev >= 0 && math.Abs(got-prev-w*0.0025) > 1e-6 {
			t.Fatalf("jump at %v: %v -> %v", p, prev, got)
		}
		prev = got
	}

	if got := gantt.ProgressWidth(w, 140); !approx(got, w) {
		t.Errorf("over-full progress must clamp, got %v", got)
	}
	if got := gantt.ProgressWidth(w, -5); got != 0 {
		t.Errorf("negative progress must clamp, got %v", got)
	}
}

func TestLayoutBars(t *testing.T) {
	tasks := []gantt.Task{
		{ID: "done", Start: day(2025, 1, 2), End: day(2025, 1, 4), Progress: 100},
		{ID: "todo", Start: day(2025, 1, 5), End: day(2025, 1, 8), Progress: 0},
		{ID: "bad", Start: day(2025, 1, 9), End: day(2025, 1, 7), Progress: 30},
	}
	domain := gantt.DateRange{Min: day(2025, 1, 1), Max: day(2025, 1, 11)}
	ts := gantt.NewTimeScale(domain, 1290)
	model := gantt.BuildRows(tasks, gantt.RowOptions{GroupBy: gantt.GroupByNone})
	rs := gantt.NewRowScale(model.Rows)

	bars, warnings := gantt.LayoutBars(model.Rows, ts, rs)
	if len(bars) != 3 {
		t.Fatalf("got %d bars", len(bars))
	}

	done := bars[0]
	if !approx(done.X, 100) || !approx(done.Width, 200) || !approx(done.ProgressWidth, 200) {
		t.Errorf("done bar = %+v", done)
	}
	if done.Label == nil || done.Label.Text != "100%" || done.Label.Color != gantt.ColorLabelLight {
		t.Errorf("done label = %+v", done.Label)
	}
	band, _ := rs.Band("done")
	if done.Y != band.Center()-gantt.BarHeight/2 {
		t.Errorf("done Y = %v", done.Y)
	}

	if bars[1].Label != nil {
		t.Error("no label at zero progress")
	}
	if bars[1].ProgressColor != gantt.ColorNotStarted {
		t.Errorf("todo color = %s", bars[1].ProgressColor)
	}

	if bars[2].Width != 0 || !approx(bars[2].X, 800) {
		t.Errorf("inverted bar = %+v", bars[2])
	}
	if len(warnings) != 1 || warnings[0].Code != gantt.WarnInvertedInterval || warnings[0].TaskID != "bad" {
		t.Errorf("warnings = %+v", warnings)
	}
}

func TestRouteConnector(t *testing.T) {
	from := gantt.Point{X: 100, Y: 25}
	to := gantt.Point{X: 300, Y: 175}
	ctrl, path := gantt.RouteConnector(from, to)

	// Offset is capped at 30, plus a lift of 20 above the higher center.
	if ctrl.X != 200 || ctrl.Y != 25-30-20 {
		t.Errorf("control = %+v", ctrl)
	}
	c := gantt.Connector{Path: path}
	if got, want := c.D(), "M100,25L120,25Q200,-25,280,175L300,175"; got != want {
		t.Errorf("D() = %q, want %q", got, want)
	}

	near := gantt.Point{X: 300, Y: 45}
	ctrl, _ = gantt.RouteConnector(from, near)
	if ctrl.Y != 25-10-20 {
		t.Errorf("near control Y = %v, want %v", ctrl.Y, 25-10-20)
	}
}

func TestRouteConnectorsVisibilityGuard(t *testing.T) {
	tasks := []gantt.Task{
		{ID: "a", Sprint: "S1", Start: day(2025, 1, 2), End: day(2025, 1, 4)},
		{ID: "b", Sprint: "S2", Start: day(2025, 1, 5), End: day(2025, 1, 8), Dependencies: []string{"a", "ghost"}},
		{ID: "c", Sprint: "S2", Start: day(2025, 1, 9), End: day(2025, 1, 10), Dependencies: []string{"b"}},
	}
	domain, _ := gantt.NewDateRange(tasks, 30)
	ts := gantt.NewTimeScale(domain, 2000)

	route := func(opt gantt.RowOptions) []gantt.Connector {
		model := gantt.BuildRows(tasks, opt)
		return gantt.RouteConnectors(model.Rows, tasks, ts, gantt.NewRowScale(model.Rows))
	}

	all := route(gantt.RowOptions{GroupBy: gantt.GroupBySprint})
	if len(all) != 2 {
		t.Fatalf("got %d connectors, want 2 (ghost skipped)", len(all))
	}

	hidden := route(gantt.RowOptions{GroupBy: gantt.GroupBySprint, CollapsedGroups: gantt.NewIDSet("S1")})
	for _, c := range hidden {
		if c.FromID == "a" {
			t.Error("connector drawn from a collapsed predecessor")
		}
	}
	if len(hidden) != 1 {
		t.Errorf("got %d connectors, want 1", len(hidden))
	}

	succHidden := route(gantt.RowOptions{GroupBy: gantt.GroupBySprint, CollapsedGroups: gantt.NewIDSet("S2")})
	if len(succHidden) != 0 {
		t.Errorf("got %d connectors with successors hidden", len(succHidden))
	}
}

func TestEndToEndScenario(t *testing.T) {
	tasks := []gantt.Task{
		{ID: "a", Start: day(2025, 1, 1), End: day(2025, 1, 10), Progress: 100},
		{ID: "b", Start: day(2025, 1, 11), End: day(2025, 1, 20), Progress: 50, Dependencies: []string{"a"}},
	}
	c := gantt.NewChart(gantt.Options{GroupBy: gantt.GroupByNone})
	c.SetDataset("demo", tasks)

	scene, ok := c.Render(day(2025, 1, 5))
	if !ok {
		t.Fatal("nothing rendered")
	}
	if got := rowIDs(scene.Rows); !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Fatalf("rows = %v", got)
	}

	ts, _ := c.TimeScale()
	if !(ts.Position(day(2025, 1, 10)) < ts.Position(day(2025, 1, 11))) {
		t.Error("a must end left of b's start")
	}

	if len(scene.Body.Connectors) != 1 {
		t.Fatalf("connectors = %d", len(scene.Body.Connectors))
	}
	conn := scene.Body.Connectors[0]
	if conn.FromID != "a" || conn.ToID != "b" {
		t.Errorf("connector %s -> %s", conn.FromID, conn.ToID)
	}
	if !approx(conn.From.X, ts.Position(day(2025, 1, 10))) || !approx(conn.To.X, ts.Position(day(2025, 1, 11))) {
		t.Errorf("connector endpoints %+v -> %+v", conn.From, conn.To)
	}

	b := scene.Body.Bars[1]
	if b.TaskID != "b" || !approx(b.ProgressWidth, b.Width*0.5) {
		t.Errorf("b progress width %v of %v", b.ProgressWidth, b.Width)
	}
}

func TestBuildSceneSurfaces(t *testing.T) {
	tasks := sprintFixture()
	domain, _ := gantt.NewDateRange(tasks, 30)
	today := day(2025, 1, 15)
	scene := gantt.BuildScene(tasks, domain, 2000, gantt.RowOptions{GroupBy: gantt.GroupBySprint, CollapsedTasks: gantt.NewIDSet("fe")}, gantt.IdentityTransform(), today)

	if scene.Header.Height != gantt.HeaderHeight || scene.Rail.Width != gantt.MarginLeft {
		t.Errorf("surface sizes header=%v rail=%v", scene.Header.Height, scene.Rail.Width)
	}
	if scene.Body.Width != 2000-gantt.MarginLeft {
		t.Errorf("body width = %v", scene.Body.Width)
	}
	if want := scene.Body.RowsHeight + gantt.MarginTop + gantt.MarginBottom; scene.Height != want {
		t.Errorf("height = %v, want %v", scene.Height, want)
	}
	if scene.Body.TodayX == nil {
		t.Fatal("today is inside the domain")
	}

	glyphs := map[string]string{}
	for _, it := range scene.Rail.Items {
		glyphs[it.RowID] = it.Glyph
		if it.Clickable != (it.Glyph != "") {
			t.Errorf("%s: clickable = %v with glyph %q", it.RowID, it.Clickable, it.Glyph)
		}
	}
	if glyphs["group-S1"] != gantt.GlyphExpanded || glyphs["fe"] != gantt.GlyphCollapsed || glyphs["be"] != "" {
		t.Errorf("glyphs = %v", glyphs)
	}
	if len(scene.Rail.Items) != len(scene.Rows) {
		t.Errorf("rail items %d, rows %d", len(scene.Rail.Items), len(scene.Rows))
	}
}

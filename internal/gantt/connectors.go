package gantt

import (
	"math"
	"strings"
)

// Connector routing constants.
const (
	ConnectorStub      = 20.0
	ConnectorMaxOffset = 30.0
	ConnectorLift      = 20.0
	ConnectorWidth     = 2.0
	ConnectorOpacity   = 0.6

	ArrowheadID = "arrowhead"
	// ArrowheadPath is drawn in a "0 -5 10 10" view box with refX 5.
	ArrowheadPath = "M0,-5L10,0L0,5"
)

// PathOp is one drawing command of a connector path.
type PathOp struct {
	Op     string    `json:"op"` // M, L or Q
	Points []float64 `json:"points"`
}

// Point is a surface coordinate.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Connector is a routed dependency arrow from a predecessor's end to a
// successor's start.
type Connector struct {
	FromID  string   `json:"from_id"`
	ToID    string   `json:"to_id"`
	From    Point    `json:"from"`
	To      Point    `json:"to"`
	Control Point    `json:"control"`
	Path    []PathOp `json:"path"`
}

// D renders the path as an SVG path-data string.
func (c Connector) D() string {
	var sb strings.Builder
	for _, op := range c.Path {
		sb.WriteString(op.Op)
		for i, p := range op.Points {
			if i > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(num(p))
		}
	}
	return sb.String()
}

// RouteConnector computes the connector between two endpoints: a stub out of
// the predecessor, a quadratic curve whose control point sits above the
// higher row center, and a stub into the successor.
func RouteConnector(from, to Point) (Point, []PathOp) {
	midX := (from.X + to.X) / 2
	offset := math.Min(math.Abs(to.Y-from.Y)/2, ConnectorMaxOffset)
	ctrl := Point{X: midX, Y: math.Min(from.Y, to.Y) - offset - ConnectorLift}

	return ctrl, []PathOp{
		{Op: "M", Points: []float64{from.X, from.Y}},
		{Op: "L", Points: []float64{from.X + ConnectorStub, from.Y}},
		{Op: "Q", Points: []float64{ctrl.X, ctrl.Y, to.X - ConnectorStub, to.Y}},
		{Op: "L", Points: []float64{to.X, to.Y}},
	}
}

// RouteConnectors draws one connector per dependency whose both ends are
// visible. Unknown predecessors and collapsed-away rows are skipped; arrows
// never reveal hidden rows.
func RouteConnectors(rows []Row, tasks []Task, ts TimeScale, rs RowScale) []Connector {
	byID := make(map[string]*Task, len(tasks))
	for i := range tasks {
		byID[tasks[i].ID] = &tasks[i]
	}

	var out []Connector
	for _, r := range rows {
		if r.Kind != RowTask || r.Task == nil || len(r.Task.Dependencies) == 0 {
			continue
		}
		toBand, ok := rs.Band(r.ID)
		if !ok {
			continue
		}
		toStart, _, _ := TaskSpan(*r.Task, ts)

		for _, depID := range r.Task.Dependencies {
			dep, ok := byID[depID]
			if !ok {
				continue
			}
			fromBand, ok := rs.Band(depID)
			if !ok {
				continue
			}
			_, fromEnd, _ := TaskSpan(*dep, ts)

			from := Point{X: fromEnd, Y: fromBand.Center()}
			to := Point{X: toStart, Y: toBand.Center()}
			ctrl, path := RouteConnector(from, to)
			out = append(out, Connector{
				FromID:  depID,
				ToID:    r.ID,
				From:    from,
				To:      to,
				Control: ctrl,
				Path:    path,
			})
		}
	}
	return out
}

package gantt

import "time"

// DateRange is the frozen time-axis domain of one dataset.
type DateRange struct {
	Min time.Time `json:"min"`
	Max time.Time `json:"max"`
}

// NewDateRange spans the earliest start and latest end of tasks, padded by
// paddingDays on each side. It returns false for an empty task list.
func NewDateRange(tasks []Task, paddingDays int) (DateRange, bool) {
	if len(tasks) == 0 {
		return DateRange{}, false
	}

	lo, hi := tasks[0].Start, tasks[0].Start
	for _, t := range tasks {
		for _, d := range [2]time.Time{t.Start, t.End} {
			if d.Before(lo) {
				lo = d
			}
			if d.After(hi) {
				hi = d
			}
		}
	}

	return DateRange{
		Min: lo.AddDate(0, 0, -paddingDays),
		Max: hi.AddDate(0, 0, paddingDays),
	}, true
}

// Span returns the length of the range.
func (r DateRange) Span() time.Duration {
	return r.Max.Sub(r.Min)
}

// ChartWidth is the drawable width of the body for a total surface width.
func ChartWidth(totalWidth float64) float64 {
	return totalWidth - MarginLeft - MarginRight
}

// TimeScale maps instants in a frozen domain linearly onto [0, Width].
type TimeScale struct {
	Domain DateRange
	Width  float64
}

// NewTimeScale builds the scale for a total surface width. The domain is
// never recomputed here; callers pass the frozen range.
func NewTimeScale(domain DateRange, totalWidth float64) TimeScale {
	return TimeScale{Domain: domain, Width: ChartWidth(totalWidth)}
}

// Position returns the x coordinate of t.
func (s TimeScale) Position(t time.Time) float64 {
	span := s.Domain.Span()
	if span <= 0 {
		return s.Width / 2
	}
	return float64(t.Sub(s.Domain.Min)) / float64(span) * s.Width
}

// Invert returns the instant drawn at x.
func (s TimeScale) Invert(x float64) time.Time {
	if s.Width == 0 {
		return s.Domain.Min
	}
	offset := time.Duration(x / s.Width * float64(s.Domain.Span()))
	return s.Domain.Min.Add(offset)
}

// Tick is a labelled position on the time axis.
type Tick struct {
	Time  time.Time `json:"time"`
	X     float64   `json:"x"`
	Label string    `json:"label,omitempty"`
}

// MonthTicks returns one tick per calendar month boundary inside the domain.
func (s TimeScale) MonthTicks() []Tick {
	lo := s.Domain.Min
	t := time.Date(lo.Year(), lo.Month(), 1, 0, 0, 0, 0, lo.Location())
	if t.Before(lo) {
		t = t.AddDate(0, 1, 0)
	}

	var ticks []Tick
	for ; !t.After(s.Domain.Max); t = t.AddDate(0, 1, 0) {
		ticks = append(ticks, Tick{Time: t, X: s.Position(t), Label: t.Format("Jan 2006")})
	}
	return ticks
}

// WeekTicks returns one tick per Sunday midnight inside the domain.
func (s TimeScale) WeekTicks() []Tick {
	lo := s.Domain.Min
	t := time.Date(lo.Year(), lo.Month(), lo.Day(), 0, 0, 0, 0, lo.Location())
	t = t.AddDate(0, 0, -int(t.Weekday()))
	if t.Before(lo) {
		t = t.AddDate(0, 0, 7)
	}

	var ticks []Tick
	for ; !t.After(s.Domain.Max); t = t.AddDate(0, 0, 7) {
		ticks = append(ticks, Tick{Time: t, X: s.Position(t)})
	}
	return ticks
}

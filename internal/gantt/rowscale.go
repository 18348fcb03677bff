package gantt

// Band is the vertical extent a row is drawn in.
type Band struct {
	Top    float64 `json:"top"`
	Height float64 `json:"height"`
}

// Center returns the vertical middle of the band.
func (b Band) Center() float64 {
	return b.Top + b.Height/2
}

// RowScale maps row ids onto stacked vertical bands.
type RowScale struct {
	bands map[string]Band
	total float64
}

// NewRowScale stacks rows top to bottom. Each row owns a slot of RowHeight
// (GroupRowHeight for headers); the drawn band is inset by half of
// RowPadding on each side.
func NewRowScale(rows []Row) RowScale {
	s := RowScale{bands: make(map[string]Band, len(rows))}
	for _, r := range rows {
		slot := RowHeight
		if r.Kind == RowGroup {
			slot = GroupRowHeight
		}
		s.bands[r.ID] = Band{Top: s.total + RowPadding/2, Height: slot - RowPadding}
		s.total += slot
	}
	return s
}

// Band returns the band of rowID, or false when the row is not laid out.
func (s RowScale) Band(rowID string) (Band, bool) {
	b, ok := s.bands[rowID]
	return b, ok
}

// TotalHeight is the sum of all row slots.
func (s RowScale) TotalHeight() float64 {
	return s.total
}

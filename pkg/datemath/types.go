package datemath

import "time"

// ParseResult holds a resolved date. IsAllDay is set when the input carried
// no time of day.
type ParseResult struct {
	AbsoluteTime time.Time
	IsAllDay     bool
}

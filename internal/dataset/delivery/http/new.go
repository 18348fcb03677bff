package http

import (
	"time"

	"gantt-chart/internal/dataset"
	"gantt-chart/pkg/datemath"
	"gantt-chart/pkg/log"
)

type handler struct {
	l        log.Logger
	uc       dataset.UseCase
	dateMath *datemath.Parser
	now      func() time.Time
}

// New creates a new HTTP handler for the dataset domain. dateMath resolves
// task dates given as "2025-01-14", RFC3339 or relative phrases.
func New(l log.Logger, uc dataset.UseCase, dateMath *datemath.Parser) *handler {
	return &handler{
		l:        l,
		uc:       uc,
		dateMath: dateMath,
		now:      time.Now,
	}
}

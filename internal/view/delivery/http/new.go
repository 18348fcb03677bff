package http

import (
	"gantt-chart/internal/view"
	"gantt-chart/pkg/datemath"
	"gantt-chart/pkg/log"
)

type handler struct {
	l        log.Logger
	uc       view.UseCase
	dateMath *datemath.Parser
}

// New creates a new HTTP handler for the view domain.
func New(l log.Logger, uc view.UseCase, dateMath *datemath.Parser) *handler {
	return &handler{
		l:        l,
		uc:       uc,
		dateMath: dateMath,
	}
}

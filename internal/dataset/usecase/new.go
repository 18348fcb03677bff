package usecase

import (
	"context"
	"time"

	"gantt-chart/internal/dataset"
	"gantt-chart/internal/dataset/repository"
	"gantt-chart/pkg/datemath"
	"gantt-chart/pkg/gcalendar"
	pkgLog "gantt-chart/pkg/log"
)

// CalendarSource lists calendar events. *gcalendar.Client satisfies it.
type CalendarSource interface {
	ListEvents(ctx context.Context, req gcalendar.ListEventsRequest) ([]gcalendar.Event, error)
}

type implUseCase struct {
	l          pkgLog.Logger
	repo       repository.Repository
	calendar   CalendarSource
	calendarID string
	dateMath   *datemath.Parser
	now        func() time.Time
}

// New creates a new dataset UseCase instance. calendar may be nil, in which
// case ImportCalendar reports dataset.ErrCalendarUnavailable.
func New(
	l pkgLog.Logger,
	repo repository.Repository,
	calendar CalendarSource,
	calendarID string,
	dateMath *datemath.Parser,
) dataset.UseCase {
	return &implUseCase{
		l:          l,
		repo:       repo,
		calendar:   calendar,
		calendarID: calendarID,
		dateMath:   dateMath,
		now:        time.Now,
	}
}

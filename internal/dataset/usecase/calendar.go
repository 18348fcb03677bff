package usecase

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"gantt-chart/internal/dataset"
	"gantt-chart/internal/gantt"
	"gantt-chart/pkg/gcalendar"
)

const (
	defaultImportBack    = -30 // days before now
	defaultImportForward = 90  // days after From
)

// ImportCalendar turns the calendar events in [From, To) into a new dataset.
// Events are grouped by ISO week (sprint) and calendar (project); progress
// is the elapsed share of each event at import time.
func (uc *implUseCase) ImportCalendar(ctx context.Context, input dataset.ImportCalendarInput) (dataset.CreateOutput, error) {
	if uc.calendar == nil {
		return dataset.CreateOutput{}, dataset.ErrCalendarUnavailable
	}

	now := uc.now()
	from, to := input.From, input.To
	if from.IsZero() {
		from = now.AddDate(0, 0, defaultImportBack)
	}
	if to.IsZero() {
		to = from.AddDate(0, 0, defaultImportForward)
	}
	if !to.After(from) {
		return dataset.CreateOutput{}, dataset.ErrInvalidRange
	}

	calendarID := input.CalendarID
	if calendarID == "" {
		calendarID = uc.calendarID
	}

	events, err := uc.calendar.ListEvents(ctx, gcalendar.ListEventsRequest{
		CalendarID: calendarID,
		TimeMin:    from,
		TimeMax:    to,
		Location:   uc.dateMath.Location(),
	})
	if err != nil {
		uc.l.Errorf(ctx, "dataset.usecase.ImportCalendar: %v", err)
		return dataset.CreateOutput{}, fmt.Errorf("import calendar %s: %w", calendarID, err)
	}
	if len(events) == 0 {
		return dataset.CreateOutput{}, dataset.ErrEmptyDataset
	}

	tasks := make([]gantt.Task, 0, len(events))
	for _, ev := range events {
		tasks = append(tasks, eventToTask(ev, calendarID, now))
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		name = fmt.Sprintf("Calendar %s %s..%s", calendarID, from.Format("2006-01-02"), to.Format("2006-01-02"))
	}

	uc.l.Infof(ctx, "dataset.usecase.ImportCalendar: calendar=%s events=%d", calendarID, len(events))
	return uc.Create(ctx, dataset.CreateInput{
		Name:   name,
		Source: dataset.SourceCalendar,
		Tasks:  tasks,
	})
}

func eventToTask(ev gcalendar.Event, calendarID string, now time.Time) gantt.Task {
	name := ev.Summary
	if name == "" {
		name = "(untitled)"
	}
	project := ev.CalendarName
	if project == "" {
		project = calendarID
	}
	year, week := ev.StartTime.ISOWeek()

	return gantt.Task{
		ID:       ev.ID,
		Name:     name,
		Resource: ev.Organizer,
		Start:    ev.StartTime,
		End:      ev.EndTime,
		Progress: elapsedPercent(ev.StartTime, ev.EndTime, now),
		Sprint:   fmt.Sprintf("%d-W%02d", year, week),
		Project:  project,
	}
}

// elapsedPercent is how much of [start, end] lies before now, in whole percent.
func elapsedPercent(start, end, now time.Time) float64 {
	switch {
	case !now.After(start):
		return 0
	case !now.Before(end):
		return 100
	}
	share := float64(now.Sub(start)) / float64(end.Sub(start))
	return math.Round(share * 100)
}

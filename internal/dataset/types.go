package dataset

import (
	"time"

	"gantt-chart/internal/gantt"
)

// Source records where a dataset came from.
type Source string

const (
	SourceAPI      Source = "api"
	SourceDemo     Source = "demo"
	SourceFile     Source = "file"
	SourceCalendar Source = "calendar"
)

// --- Dataset Domain Model ---

// Dataset is an immutable, identified task list. Its ID is the identity the
// chart freezes its date range on; changing tasks means creating a new one.
type Dataset struct {
	ID        string
	Name      string
	Source    Source
	Tasks     []gantt.Task
	TaskCount int
	CreatedAt time.Time
}

// --- UseCase Inputs ---

type CreateInput struct {
	Name   string
	Source Source
	Tasks  []gantt.Task
}

type ListInput struct {
	Source Source
	Limit  int
	Offset int
}

type ImportCalendarInput struct {
	Name       string
	CalendarID string
	From       time.Time
	To         time.Time
}

// --- UseCase Outputs ---

type CreateOutput struct {
	Dataset Dataset
}

type ListOutput struct {
	Datasets []Dataset
	Total    int
	Limit    int
	Offset   int
}

type DetailOutput struct {
	Dataset Dataset
}

package repository

import (
	"time"

	"gantt-chart/internal/dataset"
	"gantt-chart/internal/gantt"
)

// CreateDatasetOptions holds parameters for inserting a new Dataset.
type CreateDatasetOptions struct {
	ID        string
	Name      string
	Source    dataset.Source
	Tasks     []gantt.Task
	CreatedAt time.Time
}

// GetOneDatasetOptions holds filter parameters for fetching a single Dataset.
// All non-empty fields are applied as AND conditions.
type GetOneDatasetOptions struct {
	ID     string
	Name   string
	Source dataset.Source
}

// ListDatasetsOptions holds filter and pagination parameters for listing
// Datasets. Listed datasets carry a task count but no tasks.
type ListDatasetsOptions struct {
	Source dataset.Source
	Limit  int
	Offset int
}

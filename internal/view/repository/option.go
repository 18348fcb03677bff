package repository

import (
	"time"

	"gantt-chart/internal/gantt"
)

// CreateSessionOptions holds parameters for storing a new session.
type CreateSessionOptions struct {
	DatasetID string
	Title     string
	Chart     *gantt.Chart
	CreatedAt time.Time
}

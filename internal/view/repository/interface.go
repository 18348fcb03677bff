package repository

import (
	"context"

	"gantt-chart/internal/view"
)

// Repository is the composed interface for the view session store.
type Repository interface {
	SessionRepository
}

// SessionRepository holds live sessions. Sessions are not persisted; an
// evicted or expired session is simply gone.
type SessionRepository interface {
	CreateSession(ctx context.Context, opt CreateSessionOptions) (*view.Session, error)
	// GetSession returns nil and no error when id is unknown.
	GetSession(ctx context.Context, id string) (*view.Session, error)
	DeleteSession(ctx context.Context, id string) error
	CountSessions(ctx context.Context) int
}

package memory

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"gantt-chart/internal/view"
	"gantt-chart/internal/view/repository"
	"gantt-chart/pkg/log"
)

const (
	defaultMaxSessions = 1000
	defaultSessionTTL  = 30 * time.Minute
)

// Config bounds the session store.
type Config struct {
	MaxSessions int
	TTL         time.Duration
}

type implRepository struct {
	sessions *expirable.LRU[string, *view.Session]
	l        log.Logger
}

// New creates an in-memory session store. Least recently used sessions are
// evicted past MaxSessions and idle ones expire after TTL.
func New(l log.Logger, cfg Config) repository.Repository {
	if cfg.MaxSessions <= 0 {
		cfg.MaxSessions = defaultMaxSessions
	}
	if cfg.TTL <= 0 {
		cfg.TTL = defaultSessionTTL
	}

	r := &implRepository{l: l}
	r.sessions = expirable.NewLRU[string, *view.Session](cfg.MaxSessions, r.onEvict, cfg.TTL)
	return r
}

func (r *implRepository) onEvict(id string, s *view.Session) {
	r.l.Debugf(context.Background(), "%s: session %s (dataset %s) evicted", r.dsn("onEvict"), id, s.DatasetID)
}

func (r *implRepository) CreateSession(ctx context.Context, opt repository.CreateSessionOptions) (*view.Session, error) {
	if opt.Chart == nil {
		return nil, fmt.Errorf("%s: chart is required", r.dsn("CreateSession"))
	}
	s := &view.Session{
		ID:        uuid.NewString(),
		DatasetID: opt.DatasetID,
		Title:     opt.Title,
		Chart:     opt.Chart,
		CreatedAt: opt.CreatedAt,
	}
	r.sessions.Add(s.ID, s)
	return s, nil
}

func (r *implRepository) GetSession(ctx context.Context, id string) (*view.Session, error) {
	s, ok := r.sessions.Get(id)
	if !ok {
		return nil, nil
	}
	return s, nil
}

func (r *implRepository) DeleteSession(ctx context.Context, id string) error {
	r.sessions.Remove(id)
	return nil
}

func (r *implRepository) CountSessions(ctx context.Context) int {
	return r.sessions.Len()
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("view/repository/memory.%s", method)
}

package usecase

import (
	"time"

	"gantt-chart/internal/dataset"
	"gantt-chart/internal/gantt"
	"gantt-chart/internal/view"
	"gantt-chart/internal/view/repository"
	pkgLog "gantt-chart/pkg/log"
)

// Config holds chart defaults applied to new views.
type Config struct {
	Width              float64
	GroupBy            gantt.GroupBy
	PaddingDays        int
	InitialScrollDelay time.Duration
}

type implUseCase struct {
	l        pkgLog.Logger
	repo     repository.Repository
	datasets dataset.UseCase
	cfg      Config
	now      func() time.Time
}

// New creates a new view UseCase instance.
func New(l pkgLog.Logger, repo repository.Repository, datasets dataset.UseCase, cfg Config) view.UseCase {
	if cfg.Width <= 0 {
		cfg.Width = gantt.DefaultWidth
	}
	if !cfg.GroupBy.Valid() {
		cfg.GroupBy = gantt.GroupBySprint
	}
	if cfg.PaddingDays <= 0 {
		cfg.PaddingDays = gantt.DefaultPaddingDays
	}
	if cfg.InitialScrollDelay <= 0 {
		cfg.InitialScrollDelay = 100 * time.Millisecond
	}
	return &implUseCase{
		l:        l,
		repo:     repo,
		datasets: datasets,
		cfg:      cfg,
		now:      time.Now,
	}
}

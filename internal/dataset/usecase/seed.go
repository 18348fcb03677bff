package usecase

import (
	"context"
	"fmt"
	"time"

	"gantt-chart/internal/dataset"
	"gantt-chart/internal/dataset/repository"
	"gantt-chart/internal/dataset/taskfile"
)

// SeedDemos stores each embedded demo dataset unless a demo with the same
// name already exists. It returns how many were created.
func (uc *implUseCase) SeedDemos(ctx context.Context, now time.Time) (int, error) {
	demos, err := taskfile.Demos(uc.dateMath, now)
	if err != nil {
		return 0, fmt.Errorf("load demos: %w", err)
	}

	created := 0
	for _, d := range demos {
		existing, err := uc.repo.GetOneDataset(ctx, repository.GetOneDatasetOptions{
			Name:   d.Name,
			Source: dataset.SourceDemo,
		})
		if err != nil {
			return created, fmt.Errorf("look up demo %q: %w", d.Name, err)
		}
		if existing.ID != "" {
			continue
		}

		out, err := uc.Create(ctx, dataset.CreateInput{
			Name:   d.Name,
			Source: dataset.SourceDemo,
			Tasks:  d.Tasks,
		})
		if err != nil {
			return created, fmt.Errorf("seed demo %q: %w", d.Name, err)
		}
		uc.l.Infof(ctx, "dataset.usecase.SeedDemos: seeded %q as %s", d.Name, out.Dataset.ID)
		created++
	}
	return created, nil
}

package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"gantt-chart/internal/dataset"
	"gantt-chart/internal/dataset/repository"
)

const (
	defaultLimit = 20
	maxLimit     = 100
)

// Create validates and stores a new immutable dataset under a fresh id.
func (uc *implUseCase) Create(ctx context.Context, input dataset.CreateInput) (dataset.CreateOutput, error) {
	if err := dataset.ValidateTasks(input.Tasks); err != nil {
		uc.l.Warnf(ctx, "dataset.usecase.Create: invalid tasks: %v", err)
		return dataset.CreateOutput{}, err
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		name = "Untitled"
	}
	source := input.Source
	if source == "" {
		source = dataset.SourceAPI
	}

	d, err := uc.repo.CreateDataset(ctx, repository.CreateDatasetOptions{
		ID:        uuid.NewString(),
		Name:      name,
		Source:    source,
		Tasks:     input.Tasks,
		CreatedAt: uc.now().UTC(),
	})
	if err != nil {
		uc.l.Errorf(ctx, "dataset.usecase.Create: %v", err)
		return dataset.CreateOutput{}, fmt.Errorf("create dataset: %w", err)
	}

	uc.l.Infof(ctx, "dataset.usecase.Create: id=%s source=%s tasks=%d", d.ID, d.Source, d.TaskCount)
	return dataset.CreateOutput{Dataset: d}, nil
}

func (uc *implUseCase) List(ctx context.Context, input dataset.ListInput) (dataset.ListOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	offset := input.Offset
	if offset < 0 {
		offset = 0
	}

	items, total, err := uc.repo.ListDatasets(ctx, repository.ListDatasetsOptions{
		Source: input.Source,
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		uc.l.Errorf(ctx, "dataset.usecase.List: %v", err)
		return dataset.ListOutput{}, fmt.Errorf("list datasets: %w", err)
	}

	return dataset.ListOutput{
		Datasets: items,
		Total:    total,
		Limit:    limit,
		Offset:   offset,
	}, nil
}

func (uc *implUseCase) Detail(ctx context.Context, id string) (dataset.DetailOutput, error) {
	if strings.TrimSpace(id) == "" {
		return dataset.DetailOutput{}, dataset.ErrDatasetNotFound
	}

	d, err := uc.repo.GetOneDataset(ctx, repository.GetOneDatasetOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "dataset.usecase.Detail: %v", err)
		return dataset.DetailOutput{}, fmt.Errorf("get dataset: %w", err)
	}
	if d.ID == "" {
		return dataset.DetailOutput{}, dataset.ErrDatasetNotFound
	}
	return dataset.DetailOutput{Dataset: d}, nil
}

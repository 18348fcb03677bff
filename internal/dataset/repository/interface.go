package repository

import (
	"context"

	"gantt-chart/internal/dataset"
)

// Repository is the composed interface for the dataset data store.
type Repository interface {
	DatasetRepository
}

// DatasetRepository defines all data access methods for the Dataset entity.
// Datasets are immutable once created, so there is no update.
type DatasetRepository interface {
	CreateDataset(ctx context.Context, opt CreateDatasetOptions) (dataset.Dataset, error)
	GetOneDataset(ctx context.Context, opt GetOneDatasetOptions) (dataset.Dataset, error)
	ListDatasets(ctx context.Context, opt ListDatasetsOptions) ([]dataset.Dataset, int, error)
}

package http

import (
	"errors"
	"net/http"

	"gantt-chart/internal/dataset"
	pkgErrors "gantt-chart/pkg/errors"
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, dataset.ErrDatasetNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, "dataset not found")
	case errors.Is(err, dataset.ErrEmptyDataset),
		errors.Is(err, dataset.ErrMissingTaskID),
		errors.Is(err, dataset.ErrDuplicateTaskID),
		errors.Is(err, dataset.ErrReservedTaskID),
		errors.Is(err, dataset.ErrInvalidRange):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, dataset.ErrCalendarUnavailable):
		return pkgErrors.NewHTTPError(http.StatusServiceUnavailable, "calendar import is not configured")
	default:
		return pkgErrors.ErrInternalServerError
	}
}

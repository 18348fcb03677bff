package http

import (
	"errors"
	"net/http"

	"gantt-chart/internal/dataset"
	"gantt-chart/internal/view"
	pkgErrors "gantt-chart/pkg/errors"
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, view.ErrViewNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, "view not found")
	case errors.Is(err, dataset.ErrDatasetNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, "dataset not found")
	case errors.Is(err, view.ErrGroupNotFound),
		errors.Is(err, view.ErrTaskNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, view.ErrTaskNotVisible),
		errors.Is(err, view.ErrTaskNotCollapsible),
		errors.Is(err, view.ErrNothingToRender):
		return pkgErrors.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, view.ErrInvalidWidth),
		errors.Is(err, view.ErrInvalidGroupBy),
		errors.Is(err, view.ErrInvalidFormat),
		errors.Is(err, view.ErrInvalidGesture):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}

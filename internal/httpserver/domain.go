package httpserver

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"gantt-chart/internal/dataset"
	datasetHTTP "gantt-chart/internal/dataset/delivery/http"
	datasetRepo "gantt-chart/internal/dataset/repository/sqlite"
	datasetUC "gantt-chart/internal/dataset/usecase"
	"gantt-chart/internal/middleware"
	viewHTTP "gantt-chart/internal/view/delivery/http"
	viewRepo "gantt-chart/internal/view/repository/memory"
	viewUC "gantt-chart/internal/view/usecase"
)

// setupDatasetDomain wires repository, use case and handler for datasets
// and registers /api/v1/datasets. Demo datasets are seeded when enabled.
func (srv HTTPServer) setupDatasetDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) (dataset.UseCase, error) {
	// 1. Repository
	repo := datasetRepo.New(srv.db, srv.l)

	// 2. UseCase
	uc := datasetUC.New(srv.l, repo, srv.calendar, srv.calendarID, srv.dateMath)

	if srv.seedDemo {
		n, err := uc.SeedDemos(ctx, time.Now())
		if err != nil {
			return nil, fmt.Errorf("seed demo datasets: %w", err)
		}
		srv.l.Infof(ctx, "Seeded %d demo dataset(s)", n)
	}

	// 3. HTTP Handler
	h := datasetHTTP.New(srv.l, uc, srv.dateMath)

	// 4. Routes
	datasetHTTP.RegisterRoutes(api, h, mw)

	if srv.calendar == nil {
		srv.l.Infof(ctx, "Google Calendar not configured, calendar import disabled")
	}
	srv.l.Infof(ctx, "Dataset domain registered")
	return uc, nil
}

// setupViewDomain wires the in-memory session store and registers
// /api/v1/views on top of the dataset use case.
func (srv HTTPServer) setupViewDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware, datasets dataset.UseCase) {
	repo := viewRepo.New(srv.l, srv.sessions)
	uc := viewUC.New(srv.l, repo, datasets, srv.chart)
	h := viewHTTP.New(srv.l, uc, srv.dateMath)
	viewHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "View domain registered")
}

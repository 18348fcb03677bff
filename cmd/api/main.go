package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"gantt-chart/config"
	_ "gantt-chart/docs" // Swagger docs
	datasetRepo "gantt-chart/internal/dataset/repository/sqlite"
	datasetUC "gantt-chart/internal/dataset/usecase"
	"gantt-chart/internal/gantt"
	"gantt-chart/internal/httpserver"
	"gantt-chart/internal/middleware"
	viewRepo "gantt-chart/internal/view/repository/memory"
	viewUC "gantt-chart/internal/view/usecase"
	"gantt-chart/pkg/datemath"
	"gantt-chart/pkg/gcalendar"
	"gantt-chart/pkg/log"
)

// @title       Gantt Chart API
// @description Stores task datasets and renders them as Gantt charts with grouping, hierarchy, dependencies and a zoomable viewport.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Gantt Chart API...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. DateMath parser
	dateMathParser, err := datemath.NewParser(cfg.Chart.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Chart.Timezone, err)
		dateMathParser, _ = datemath.NewParser("UTC")
	}

	// 4. Storage
	db, err := datasetRepo.Open(cfg.Storage.SQLitePath)
	if err != nil {
		logger.Error(ctx, "Failed to open dataset store: ", err)
		return
	}
	defer db.Close()
	logger.Infof(ctx, "Dataset store: %s", cfg.Storage.SQLitePath)

	// 5. Google Calendar client (optional)
	var calendar datasetUC.CalendarSource
	if cfg.GoogleCalendar.CredentialsPath != "" {
		calendarClient, calErr := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath, cfg.GoogleCalendar.TokenPath)
		if calErr != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", calErr)
			logger.Warn(ctx, "→ Run `ganttctl auth calendar` to generate token.json")
		} else {
			calendar = calendarClient
			logger.Info(ctx, "✅ Google Calendar initialized")
		}
	}

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		DB:          db,
		DateMath:    dateMathParser,
		Calendar:    calendar,
		CalendarID:  cfg.GoogleCalendar.CalendarID,
		SeedDemo:    cfg.Storage.SeedDemo,
		Chart: viewUC.Config{
			Width:              cfg.Chart.Width,
			GroupBy:            gantt.GroupBy(cfg.Chart.GroupBy),
			PaddingDays:        cfg.Chart.PaddingDays,
			InitialScrollDelay: cfg.View.InitialScrollDelay,
		},
		Sessions: viewRepo.Config{
			MaxSessions: cfg.View.MaxSessions,
			TTL:         cfg.View.SessionTTL,
		},
		RateLimit: middleware.Config{
			RequestsPerMin: cfg.RateLimit.RequestsPerMin,
			MaxClients:     cfg.RateLimit.MaxClients,
		},
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

package httpserver

import (
	"database/sql"
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	datasetUC "gantt-chart/internal/dataset/usecase"
	"gantt-chart/internal/middleware"
	viewRepo "gantt-chart/internal/view/repository/memory"
	viewUC "gantt-chart/internal/view/usecase"
	"gantt-chart/pkg/datemath"
	"gantt-chart/pkg/log"
)

const shutdownTimeout = 10 * time.Second

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Storage
	db *sql.DB

	// Dataset domain
	dateMath   *datemath.Parser
	calendar   datasetUC.CalendarSource
	calendarID string
	seedDemo   bool

	// View domain
	chart    viewUC.Config
	sessions viewRepo.Config

	rateLimit middleware.Config
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	DB *sql.DB

	DateMath *datemath.Parser
	// Calendar is optional; calendar import answers 503 without it.
	Calendar   datasetUC.CalendarSource
	CalendarID string
	SeedDemo   bool

	Chart    viewUC.Config
	Sessions viewRepo.Config

	RateLimit middleware.Config
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.New(),
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		db:          cfg.DB,
		dateMath:    cfg.DateMath,
		calendar:    cfg.Calendar,
		calendarID:  cfg.CalendarID,
		seedDemo:    cfg.SeedDemo,
		chart:       cfg.Chart,
		sessions:    cfg.Sessions,
		rateLimit:   cfg.RateLimit,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.db == nil {
		return errors.New("database is required")
	}
	if srv.dateMath == nil {
		return errors.New("date parser is required")
	}
	return nil
}

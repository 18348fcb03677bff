package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	RateLimit  RateLimitConfig

	// Gantt specifics
	Chart   ChartConfig
	Storage StorageConfig
	View    ViewConfig

	// Optional calendar import
	GoogleCalendar GoogleCalendarConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type RateLimitConfig struct {
	RequestsPerMin int
	MaxClients     int
}

// ChartConfig holds the defaults applied to new views.
type ChartConfig struct {
	Width       float64
	GroupBy     string
	PaddingDays int
	Timezone    string // resolves "today" in task files and calendar windows
}

type StorageConfig struct {
	SQLitePath string
	SeedDemo   bool
}

type ViewConfig struct {
	SessionTTL         time.Duration
	MaxSessions        int
	InitialScrollDelay time.Duration
}

type GoogleCalendarConfig struct {
	CredentialsPath string
	TokenPath       string
	CalendarID      string
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/gantt/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/gantt/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")
	cfg.RateLimit.RequestsPerMin = viper.GetInt("rate_limit.requests_per_min")
	cfg.RateLimit.MaxClients = viper.GetInt("rate_limit.max_clients")

	// Chart
	cfg.Chart.Width = viper.GetFloat64("chart.width")
	cfg.Chart.GroupBy = viper.GetString("chart.group_by")
	cfg.Chart.PaddingDays = viper.GetInt("chart.padding_days")
	cfg.Chart.Timezone = viper.GetString("chart.timezone")

	// Storage
	cfg.Storage.SQLitePath = viper.GetString("storage.sqlite_path")
	cfg.Storage.SeedDemo = viper.GetBool("storage.seed_demo")
	if dbPath := viper.GetString("gantt_db_path"); dbPath != "" {
		cfg.Storage.SQLitePath = dbPath
	}

	// View sessions
	cfg.View.SessionTTL = viper.GetDuration("view.session_ttl")
	cfg.View.MaxSessions = viper.GetInt("view.max_sessions")
	cfg.View.InitialScrollDelay = viper.GetDuration("view.initial_scroll_delay")

	// Google Calendar
	cfg.GoogleCalendar.CredentialsPath = viper.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.TokenPath = viper.GetString("google_calendar.token_path")
	cfg.GoogleCalendar.CalendarID = viper.GetString("google_calendar.calendar_id")
	if googleCreds := viper.GetString("google_calendar_credentials"); googleCreds != "" {
		cfg.GoogleCalendar.CredentialsPath = googleCreds
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("rate_limit.requests_per_min", 120)
	viper.SetDefault("rate_limit.max_clients", 10000)

	// Chart defaults
	viper.SetDefault("chart.width", 2000)
	viper.SetDefault("chart.group_by", "sprint")
	viper.SetDefault("chart.padding_days", 30)
	viper.SetDefault("chart.timezone", "UTC")

	viper.SetDefault("storage.sqlite_path", "gantt.db")
	viper.SetDefault("storage.seed_demo", true)

	viper.SetDefault("view.session_ttl", "30m")
	viper.SetDefault("view.max_sessions", 1000)
	viper.SetDefault("view.initial_scroll_delay", "100ms")

	viper.SetDefault("google_calendar.token_path", "token.json")
	viper.SetDefault("google_calendar.calendar_id", "primary")
}

// validate rejects values the chart cannot work with.
func validate(cfg *Config) error {
	switch cfg.Chart.GroupBy {
	case "sprint", "project", "none":
	default:
		return fmt.Errorf("chart.group_by: unknown grouping %q", cfg.Chart.GroupBy)
	}
	if cfg.Chart.Width <= 0 {
		return fmt.Errorf("chart.width must be positive")
	}
	if cfg.Chart.PaddingDays < 0 {
		return fmt.Errorf("chart.padding_days must not be negative")
	}
	if cfg.Storage.SQLitePath == "" {
		return fmt.Errorf("storage.sqlite_path is required")
	}
	return nil
}

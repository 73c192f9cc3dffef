package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config aggregates runtime configuration for the report generator.
type Config struct {
	Inputs  InputConfig
	Output  OutputConfig
	Logger  LoggerConfig
	Metrics MetricsConfig
	Report  ReportConfig
}

// InputConfig names the CSV exports to ingest.
type InputConfig struct {
	ActiveCSV string
	ClosedCSV string
}

// OutputConfig controls where run artifacts land.
type OutputConfig struct {
	DocumentPath string
	ChartsDir    string
}

// LoggerConfig configures logging behavior.
type LoggerConfig struct {
	Level string
}

// MetricsConfig holds the optional Pushgateway target. Empty means
// metrics stay process-local.
type MetricsConfig struct {
	PushURL string
}

// ReportConfig carries the report definition: the matching literals,
// the store catalog, and the recency window. DefinitionPath optionally
// points at a YAML file overriding the list-shaped values.
type ReportConfig struct {
	DefinitionPath     string
	Title              string
	Team               string
	WindowDays         int
	StoreCatalog       []string
	ExcludedRequesters []string
	RequesterAliases   []Alias
	TechnicianNames    []string
}

// Alias rewrites one requester substring to its canonical store name.
type Alias struct {
	From string `yaml:"from"`
	To   string `yaml:"to"`
}

// Load reads configuration from environment variables, applying defaults where possible.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Inputs: InputConfig{
			ActiveCSV: getEnv("REPORT_ACTIVE_CSV", "active_tickets.csv"),
			ClosedCSV: getEnv("REPORT_CLOSED_CSV", "closed_tickets.csv"),
		},
		Output: OutputConfig{
			DocumentPath: getEnv("REPORT_OUTPUT_PDF", "Weekly_Analysis_Report.pdf"),
			ChartsDir:    getEnv("REPORT_CHARTS_DIR", "charts"),
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		Metrics: MetricsConfig{
			PushURL: getEnv("METRICS_PUSH_URL", ""),
		},
		Report: defaultReport(),
	}

	cfg.Report.DefinitionPath = getEnv("REPORT_DEFINITION", "report.yaml")
	cfg.Report.WindowDays = getEnvAsInt("REPORT_WINDOW_DAYS", cfg.Report.WindowDays)

	if err := cfg.Report.applyDefinitionFile(); err != nil {
		return nil, err
	}
	if cfg.Report.WindowDays <= 0 {
		return nil, fmt.Errorf("invalid REPORT_WINDOW_DAYS: %d", cfg.Report.WindowDays)
	}

	return cfg, nil
}

// Window returns the recency window as a duration.
func (r ReportConfig) Window() time.Duration {
	return time.Duration(r.WindowDays) * 24 * time.Hour
}

// WindowLabel renders the window for chart and document titles.
func (r ReportConfig) WindowLabel() string {
	return fmt.Sprintf("Last %d Days", r.WindowDays)
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return parsed
}

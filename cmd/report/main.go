package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/prometheus/client_golang/prometheus/push"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/spec-kit/ticket-reports/internal/config"
	"github.com/spec-kit/ticket-reports/internal/events"
	"github.com/spec-kit/ticket-reports/internal/observability"
	"github.com/spec-kit/ticket-reports/internal/service"
	"github.com/spec-kit/ticket-reports/pkg/util"
)

const pushJobName = "ticket_report"

var (
	flagActive     string
	flagClosed     string
	flagOut        string
	flagChartsDir  string
	flagWindowDays int
	flagDefinition string
	flagPushURL    string
	flagLogLevel   string
)

var rootCmd = &cobra.Command{
	Use:   "report",
	Short: "Generate the weekly closed-ticket analysis report",
	Long: `report ingests the active and closed helpdesk CSV exports, applies the
weekly filtering and aggregation rules, renders the store and assignee
charts, and writes the paginated PDF report into the working directory.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd.Context())
	},
}

func init() {
	flags := rootCmd.Flags()
	flags.StringVar(&flagActive, "active", "", "active tickets CSV path (overrides REPORT_ACTIVE_CSV)")
	flags.StringVar(&flagClosed, "closed", "", "closed tickets CSV path (overrides REPORT_CLOSED_CSV)")
	flags.StringVar(&flagOut, "out", "", "output PDF path (overrides REPORT_OUTPUT_PDF)")
	flags.StringVar(&flagChartsDir, "charts-dir", "", "chart artifact directory (overrides REPORT_CHARTS_DIR)")
	flags.IntVar(&flagWindowDays, "window-days", 0, "recency window in days (overrides REPORT_WINDOW_DAYS)")
	flags.StringVar(&flagDefinition, "definition", "", "report definition YAML path (overrides REPORT_DEFINITION)")
	flags.StringVar(&flagPushURL, "push-url", "", "Pushgateway base URL for run metrics (overrides METRICS_PUSH_URL)")
	flags.StringVar(&flagLogLevel, "log-level", "", "log level (overrides LOG_LEVEL)")
}

func run(ctx context.Context) error {
	applyFlagEnv()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Sync() //nolint:errcheck

	dispatcher := events.NewInMemoryDispatcher()
	progress := service.NewProgressService(dispatcher, logger)
	progress.RegisterHandlers()

	reports := service.NewReportService(cfg, service.ReportDependencies{Dispatcher: dispatcher})

	summary, err := reports.Run(ctx)
	if err != nil {
		stageErr := util.ToStageError(err)
		logger.Error("report run failed",
			zap.String("stage", stageErr.Stage),
			zap.Error(stageErr))
		return err
	}

	logger.Info("report run completed",
		zap.String("run_id", summary.RunID),
		zap.String("document", summary.DocumentPath),
		zap.Int("pages", summary.Pages),
		zap.Int("charts_rendered", len(summary.Rendered)),
		zap.Int("charts_skipped", len(summary.Skipped)))

	if cfg.Metrics.PushURL != "" {
		if err := push.New(cfg.Metrics.PushURL, pushJobName).Gatherer(observability.Registry).Push(); err != nil {
			logger.Warn("failed to push metrics", zap.String("url", cfg.Metrics.PushURL), zap.Error(err))
		} else {
			logger.Info("metrics pushed", zap.String("url", cfg.Metrics.PushURL))
		}
	}

	return nil
}

// applyFlagEnv maps set flags onto the env vars config.Load reads, so
// flags and env share one override path.
func applyFlagEnv() {
	pairs := []struct {
		key, val string
	}{
		{"REPORT_ACTIVE_CSV", flagActive},
		{"REPORT_CLOSED_CSV", flagClosed},
		{"REPORT_OUTPUT_PDF", flagOut},
		{"REPORT_CHARTS_DIR", flagChartsDir},
		{"REPORT_DEFINITION", flagDefinition},
		{"METRICS_PUSH_URL", flagPushURL},
		{"LOG_LEVEL", flagLogLevel},
	}
	for _, p := range pairs {
		if p.val != "" {
			os.Setenv(p.key, p.val)
		}
	}
	if flagWindowDays > 0 {
		os.Setenv("REPORT_WINDOW_DAYS", strconv.Itoa(flagWindowDays))
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("report: %v", err)
	}
}

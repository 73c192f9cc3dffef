package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/ticket-reports/internal/analysis"
	"github.com/spec-kit/ticket-reports/internal/config"
	"github.com/spec-kit/ticket-reports/internal/document"
	"github.com/spec-kit/ticket-reports/internal/domain"
	"github.com/spec-kit/ticket-reports/internal/events"
	"github.com/spec-kit/ticket-reports/internal/ingest"
	"github.com/spec-kit/ticket-reports/internal/normalize"
	"github.com/spec-kit/ticket-reports/internal/observability"
	"github.com/spec-kit/ticket-reports/internal/render"
	"github.com/spec-kit/ticket-reports/pkg/util"
)

// ReportService runs the report pipeline: ingest, normalize, analyze,
// render, document. Stages run strictly in order; each consumes its
// input fully before the next starts.
type ReportService struct {
	cfg        *config.Config
	dispatcher events.Dispatcher
	clock      func() time.Time
}

// ReportDependencies bundles collaborators for the report service.
type ReportDependencies struct {
	Dispatcher events.Dispatcher
	// Clock supplies the run's wall-clock instant; nil means time.Now.
	Clock func() time.Time
}

// RunSummary describes one completed run.
type RunSummary struct {
	RunID        string
	Views        domain.SummaryViews
	Rendered     []render.Artifact
	Skipped      []string
	DocumentPath string
	Pages        int
}

// NewReportService creates the service.
func NewReportService(cfg *config.Config, deps ReportDependencies) *ReportService {
	clock := deps.Clock
	if clock == nil {
		clock = time.Now
	}
	return &ReportService{
		cfg:        cfg,
		dispatcher: deps.Dispatcher,
		clock:      clock,
	}
}

// Run executes one full report run. The returned error is always a
// *util.StageError naming the failed stage.
func (s *ReportService) Run(ctx context.Context) (*RunSummary, error) {
	runID := uuid.NewString()
	now := s.clock()

	s.publish(ctx, runID, events.EventRunStarted, events.RunStartedPayload{
		ActivePath: s.cfg.Inputs.ActiveCSV,
		ClosedPath: s.cfg.Inputs.ClosedCSV,
	})

	started := time.Now()
	active, err := s.load(ctx, runID, s.cfg.Inputs.ActiveCSV, ingest.SourceActive)
	if err != nil {
		return nil, err
	}
	closed, err := s.load(ctx, runID, s.cfg.Inputs.ClosedCSV, ingest.SourceClosed)
	if err != nil {
		return nil, err
	}
	s.stageDone(ctx, runID, util.StageIngest, started, map[string]int{
		"active_rows": len(active.Rows),
		"closed_rows": len(closed.Rows),
	})

	started = time.Now()
	merged := normalize.Merge(
		normalize.Input{Rows: active.Rows, HasTeam: active.HasTeamColumn},
		normalize.Input{Rows: closed.Rows, HasTeam: closed.HasTeamColumn},
		normalize.Params{
			Team:   s.cfg.Report.Team,
			Window: s.cfg.Report.Window(),
			Now:    now,
		},
	)
	observability.ActiveTickets.Set(float64(merged.ActiveCount))
	observability.ClosedTickets.Set(float64(merged.ClosedCount))
	observability.ReclassifiedTickets.Set(float64(merged.Reclassified))
	s.stageDone(ctx, runID, util.StageNormalize, started, map[string]int{
		"active":         merged.ActiveCount,
		"closed":         merged.ClosedCount,
		"reclassified":   merged.Reclassified,
		"team_filtered":  merged.TeamFiltered,
		"window_dropped": merged.WindowDropped,
	})

	started = time.Now()
	built := analysis.NewBuilder(s.cfg.Report).Build(merged.Tickets)
	observability.ExcludedTickets.Set(float64(built.Excluded))
	observability.StoreMatchedTickets.Set(float64(built.StoreMatched))
	s.stageDone(ctx, runID, util.StageAnalyze, started, map[string]int{
		"closed_analyzed": built.ClosedTotal,
		"excluded":        built.Excluded,
		"store_matched":   built.StoreMatched,
		"technicians":     len(built.Views.Technicians),
	})

	started = time.Now()
	renderer := render.NewRenderer(s.cfg.Output.ChartsDir, s.cfg.Report.WindowLabel())
	charts, err := renderer.RenderAll(built.Views)
	if err != nil {
		return nil, util.NewStageError(util.StageRender, "chart rendering failed", err)
	}
	for _, a := range charts.Rendered {
		s.publish(ctx, runID, events.EventChartRendered, events.ChartRenderedPayload{
			Name: a.Name, Path: a.Path, Groups: a.Groups,
		})
	}
	for _, name := range charts.Skipped {
		s.publish(ctx, runID, events.EventChartSkipped, events.ChartSkippedPayload{
			Name: name, Reason: "empty view",
		})
	}
	s.stageDone(ctx, runID, util.StageRender, started, map[string]int{
		"rendered": len(charts.Rendered),
		"skipped":  len(charts.Skipped),
	})

	started = time.Now()
	pages, err := document.Generate(s.cfg.Output.DocumentPath, document.Params{
		Title:       s.cfg.Report.Title,
		WindowLabel: s.cfg.Report.WindowLabel(),
		ChartsDir:   s.cfg.Output.ChartsDir,
		GeneratedAt: now,
	}, built.Views)
	if err != nil {
		return nil, util.NewStageError(util.StageDocument, "document generation failed", err)
	}
	s.publish(ctx, runID, events.EventDocumentWritten, events.DocumentWrittenPayload{
		Path:  s.cfg.Output.DocumentPath,
		Pages: pages,
	})
	s.stageDone(ctx, runID, util.StageDocument, started, map[string]int{"pages": pages})

	return &RunSummary{
		RunID:        runID,
		Views:        built.Views,
		Rendered:     charts.Rendered,
		Skipped:      charts.Skipped,
		DocumentPath: s.cfg.Output.DocumentPath,
		Pages:        pages,
	}, nil
}

func (s *ReportService) load(ctx context.Context, runID, path, label string) (*ingest.Collection, error) {
	col, err := ingest.Load(path, label)
	if err != nil {
		return nil, util.NewStageError(util.StageIngest, "load "+label+" tickets", err)
	}
	s.publish(ctx, runID, events.EventSourceLoaded, events.SourceLoadedPayload{
		Source:        label,
		Rows:          len(col.Rows),
		CoercedTimes:  col.CoercedTimes,
		HasTeamColumn: col.HasTeamColumn,
	})
	return col, nil
}

func (s *ReportService) stageDone(ctx context.Context, runID, stage string, started time.Time, counts map[string]int) {
	elapsed := time.Since(started)
	observability.StageDurationSeconds.WithLabelValues(stage).Observe(elapsed.Seconds())
	s.publish(ctx, runID, events.EventStageCompleted, events.StageCompletedPayload{
		Stage:    stage,
		Duration: elapsed,
		Counts:   counts,
	})
}

func (s *ReportService) publish(ctx context.Context, runID string, typ events.EventType, payload interface{}) {
	if s.dispatcher == nil {
		return
	}
	s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      typ,
		RunID:     runID,
		Timestamp: time.Now(),
		Payload:   payload,
	})
}

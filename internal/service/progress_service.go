package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/ticket-reports/internal/events"
	"github.com/spec-kit/ticket-reports/internal/observability"
)

// ProgressService turns run events into stage-boundary progress lines
// and metric updates.
type ProgressService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewProgressService creates the service.
func NewProgressService(dispatcher events.Dispatcher, logger *zap.Logger) *ProgressService {
	return &ProgressService{dispatcher: dispatcher, logger: logger}
}

// RegisterHandlers subscribes to run events.
func (p *ProgressService) RegisterHandlers() {
	if p.dispatcher == nil {
		return
	}
	p.dispatcher.Subscribe(events.EventRunStarted, p.handleRunStarted)
	p.dispatcher.Subscribe(events.EventSourceLoaded, p.handleSourceLoaded)
	p.dispatcher.Subscribe(events.EventStageCompleted, p.handleStageCompleted)
	p.dispatcher.Subscribe(events.EventChartRendered, p.handleChartRendered)
	p.dispatcher.Subscribe(events.EventChartSkipped, p.handleChartSkipped)
	p.dispatcher.Subscribe(events.EventDocumentWritten, p.handleDocumentWritten)
}

func (p *ProgressService) handleRunStarted(ctx context.Context, event events.Event) {
	payload, ok := event.Payload.(events.RunStartedPayload)
	if !ok {
		return
	}
	p.logger.Info("run started",
		zap.String("run_id", event.RunID),
		zap.String("active", payload.ActivePath),
		zap.String("closed", payload.ClosedPath))
}

func (p *ProgressService) handleSourceLoaded(ctx context.Context, event events.Event) {
	payload, ok := event.Payload.(events.SourceLoadedPayload)
	if !ok {
		return
	}
	observability.TicketsLoaded.WithLabelValues(payload.Source).Add(float64(payload.Rows))
	observability.TimestampsCoerced.WithLabelValues(payload.Source).Add(float64(payload.CoercedTimes))
	p.logger.Info("tickets loaded",
		zap.String("run_id", event.RunID),
		zap.String("source", payload.Source),
		zap.Int("rows", payload.Rows),
		zap.Int("coerced_times", payload.CoercedTimes),
		zap.Bool("has_team_column", payload.HasTeamColumn))
}

func (p *ProgressService) handleStageCompleted(ctx context.Context, event events.Event) {
	payload, ok := event.Payload.(events.StageCompletedPayload)
	if !ok {
		return
	}
	p.logger.Info("stage completed",
		zap.String("run_id", event.RunID),
		zap.String("stage", payload.Stage),
		zap.Duration("duration", payload.Duration),
		zap.Any("counts", payload.Counts))
}

func (p *ProgressService) handleChartRendered(ctx context.Context, event events.Event) {
	payload, ok := event.Payload.(events.ChartRenderedPayload)
	if !ok {
		return
	}
	observability.ChartsRendered.Inc()
	p.logger.Info("chart rendered",
		zap.String("run_id", event.RunID),
		zap.String("chart", payload.Name),
		zap.String("path", payload.Path),
		zap.Int("groups", payload.Groups))
}

func (p *ProgressService) handleChartSkipped(ctx context.Context, event events.Event) {
	payload, ok := event.Payload.(events.ChartSkippedPayload)
	if !ok {
		return
	}
	observability.ChartsSkipped.Inc()
	p.logger.Info("chart skipped",
		zap.String("run_id", event.RunID),
		zap.String("chart", payload.Name),
		zap.String("reason", payload.Reason))
}

func (p *ProgressService) handleDocumentWritten(ctx context.Context, event events.Event) {
	payload, ok := event.Payload.(events.DocumentWrittenPayload)
	if !ok {
		return
	}
	observability.DocumentPages.Set(float64(payload.Pages))
	p.logger.Info("document written",
		zap.String("run_id", event.RunID),
		zap.String("path", payload.Path),
		zap.Int("pages", payload.Pages))
}

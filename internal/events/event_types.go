package events

import "time"

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventRunStarted      EventType = "run_started"
	EventSourceLoaded    EventType = "source_loaded"
	EventStageCompleted  EventType = "stage_completed"
	EventChartRendered   EventType = "chart_rendered"
	EventChartSkipped    EventType = "chart_skipped"
	EventDocumentWritten EventType = "document_written"
)

// Event represents a run lifecycle event emitted by the pipeline.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	RunID     string      `json:"run_id"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// RunStartedPayload payload.
type RunStartedPayload struct {
	ActivePath string `json:"active_path"`
	ClosedPath string `json:"closed_path"`
}

// SourceLoadedPayload payload.
type SourceLoadedPayload struct {
	Source        string `json:"source"`
	Rows          int    `json:"rows"`
	CoercedTimes  int    `json:"coerced_times"`
	HasTeamColumn bool   `json:"has_team_column"`
}

// StageCompletedPayload payload.
type StageCompletedPayload struct {
	Stage    string         `json:"stage"`
	Duration time.Duration  `json:"duration"`
	Counts   map[string]int `json:"counts,omitempty"`
}

// ChartRenderedPayload payload.
type ChartRenderedPayload struct {
	Name   string `json:"name"`
	Path   string `json:"path"`
	Groups int    `json:"groups"`
}

// ChartSkippedPayload payload.
type ChartSkippedPayload struct {
	Name   string `json:"name"`
	Reason string `json:"reason"`
}

// DocumentWrittenPayload payload.
type DocumentWrittenPayload struct {
	Path  string `json:"path"`
	Pages int    `json:"pages"`
}

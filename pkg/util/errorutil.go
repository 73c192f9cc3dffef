package util

import (
	"errors"
	"fmt"
)

// Pipeline stage names used for error tagging and metrics labels.
const (
	StageIngest    = "ingest"
	StageNormalize = "normalize"
	StageAnalyze   = "analyze"
	StageRender    = "render"
	StageDocument  = "document"
)

// StageError standardizes pipeline failures, tagging each with the
// stage that raised it.
type StageError struct {
	Stage   string
	Message string
	Err     error
}

func (e *StageError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Stage, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Stage, e.Message)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

// NewStageError constructs a StageError.
func NewStageError(stage, message string, err error) *StageError {
	return &StageError{Stage: stage, Message: message, Err: err}
}

// ToStageError converts generic errors to StageError for exit diagnostics.
func ToStageError(err error) *StageError {
	if err == nil {
		return nil
	}
	var stageErr *StageError
	if errors.As(err, &stageErr) {
		return stageErr
	}
	return &StageError{Stage: "run", Message: "report run failed", Err: err}
}

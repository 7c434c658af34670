package logging

import (
	"log/slog"

	"github.com/google/uuid"
)

// Attribute keys shared across packages.
const (
	FieldRunID   = "run_id"
	FieldSource  = "source"
	FieldFrame   = "frame"
	FieldRanking = "ranking"
	FieldWorker  = "worker"
)

// NewRunID returns a fresh identifier for one extraction run.
func NewRunID() string {
	return uuid.NewString()
}

// WithRun tags logger with a run ID and the source being processed.
func WithRun(logger *slog.Logger, runID, source string) *slog.Logger {
	return logger.With(slog.String(FieldRunID, runID), slog.String(FieldSource, source))
}

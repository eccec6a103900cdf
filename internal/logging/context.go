package logging

import (
	"context"
	"log/slog"
)

const (
	// FieldComponent is the standardized structured logging key for component names.
	FieldComponent = "component"
	// FieldRunID is the standardized structured logging key for build run identifiers.
	FieldRunID = "run_id"
	// FieldSubject is the structured logging key for the subject directory being scanned.
	FieldSubject = "subject"
	// FieldFile is the structured logging key for metadata file paths.
	FieldFile = "file"
	// FieldEventType classifies warnings for filtering.
	FieldEventType = "event_type"
	// FieldImpact is the user-facing consequence of a warning.
	FieldImpact = "impact"
	// FieldAlert flags warnings or anomalies that should stand out in structured logs.
	FieldAlert = "alert"
	// FieldStage names the build stage emitting the log line.
	FieldStage = "stage"
)

type stageKey struct{}

// WithStage stores the current build stage on the context.
func WithStage(ctx context.Context, stage string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, stageKey{}, stage)
}

// StageFromContext returns the stage stored by WithStage.
func StageFromContext(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	stage, ok := ctx.Value(stageKey{}).(string)
	return stage, ok && stage != ""
}

// WithContext returns a logger augmented with the stage carried by ctx. The
// run identifier is attached by the handler built in New.
func WithContext(ctx context.Context, logger *slog.Logger) *slog.Logger {
	if logger == nil {
		logger = NewNop()
	}
	if stage, ok := StageFromContext(ctx); ok {
		return logger.With(String(FieldStage, stage))
	}
	return logger
}

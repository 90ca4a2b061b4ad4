package logging

import (
	"context"
)

type runIDKeyType struct{}

var runIDKey = runIDKeyType{}

type splitKeyType struct{}

var splitKey = splitKeyType{}

// WithRunID attaches a build run identifier to the context so every log line
// emitted during the run can be correlated.
func WithRunID(ctx context.Context, runID string) context.Context {
	return context.WithValue(ctx, runIDKey, runID)
}

// GetRunID returns the run identifier carried by the context, if any.
func GetRunID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(runIDKey).(string)
	return id, ok
}

// WithSplit attaches the name of the split currently being produced.
func WithSplit(ctx context.Context, split string) context.Context {
	return context.WithValue(ctx, splitKey, split)
}

// GetSplit returns the split name carried by the context, if any.
func GetSplit(ctx context.Context) (string, bool) {
	s, ok := ctx.Value(splitKey).(string)
	return s, ok
}

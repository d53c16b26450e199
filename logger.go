package anticlust

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with anticlust-specific context.
// This provides structured logging with consistent field names across
// a call to Variance or Diversity.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output. This is the
// default used when no logger is configured via WithLogger.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithN adds the element count field to the logger.
func (l *Logger) WithN(n int) *Logger {
	return &Logger{Logger: l.Logger.With("n", n)}
}

// WithK adds the cluster count field to the logger.
func (l *Logger) WithK(k int) *Logger {
	return &Logger{Logger: l.Logger.With("k", k)}
}

// LogRun logs the result of one complete call to the exchange optimizer.
func (l *Logger) LogRun(ctx context.Context, n, k, swaps int, objective float64, err error) {
	if err != nil {
		l.ErrorContext(ctx, "anticlust run failed",
			"n", n,
			"k", k,
			"error", err,
		)
		return
	}
	l.InfoContext(ctx, "anticlust run completed",
		"n", n,
		"k", k,
		"swaps", swaps,
		"objective", objective,
	)
}

// LogSwap logs a single committed swap during the exchange loop.
func (l *Logger) LogSwap(ctx context.Context, i, j int, objectiveBefore, objectiveAfter float64) {
	l.DebugContext(ctx, "swap committed",
		"i", i,
		"j", j,
		"objective_before", objectiveBefore,
		"objective_after", objectiveAfter,
	)
}

// LogSkip logs that element i was left in place because no partner improved
// the objective.
func (l *Logger) LogSkip(ctx context.Context, i int) {
	l.DebugContext(ctx, "no improving partner found", "i", i)
}

// LogTrace walks a per-candidate trace produced by a call made with
// WithTrace, logging one LogSwap per committed candidate and one LogSkip
// per element whose candidates were all evaluated but none committed.
// Trace entries for the same element are contiguous (the exchange loop
// visits elements in id order), so a single pass suffices. A nil or empty
// trace (WithTrace not set) logs nothing.
func (l *Logger) LogTrace(ctx context.Context, trace []SwapTrace) {
	if len(trace) == 0 {
		return
	}

	currentElement := trace[0].Element
	committed := false
	flush := func() {
		if !committed {
			l.LogSkip(ctx, currentElement)
		}
	}

	for _, t := range trace {
		if t.Element != currentElement {
			flush()
			currentElement = t.Element
			committed = false
		}
		if t.Committed {
			l.LogSwap(ctx, t.Element, t.Partner, t.ObjectiveBefore, t.ObjectiveAfter)
			committed = true
		}
	}
	flush()
}

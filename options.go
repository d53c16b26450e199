package anticlust

import (
	"log/slog"

	"github.com/statunizaga/anticlust/engine"
)

type options struct {
	metricsCollector MetricsCollector
	logger           *Logger
	engineOpts       []engine.Option
}

// Option configures a call to Variance or Diversity.
//
// Today options primarily exist to avoid exploding the entry-point
// signature with every ambient-stack knob.
type Option func(*options)

// WithMetricsCollector configures a metrics collector for monitoring calls.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &anticlust.BasicMetricsCollector{}
//	result, _ := anticlust.Variance(ctx, data, n, m, k, frequencies, clusters,
//	    anticlust.WithMetricsCollector(metrics))
//	stats := metrics.GetStats()
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for a call.
// Pass nil to disable logging.
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

// WithTrace requests that the result carry a trace with one entry per
// candidate evaluated for each element, marking the one committed. Off by default to
// avoid the allocation on the hot path.
func WithTrace() Option {
	return func(o *options) {
		o.engineOpts = append(o.engineOpts, engine.WithTrace())
	}
}

// WithMaxIterations bounds the number of passes engine.RunToFixedPoint
// performs. It has no effect on Variance/Diversity, which always run
// exactly one pass per spec.
func WithMaxIterations(n int) Option {
	return func(o *options) {
		o.engineOpts = append(o.engineOpts, engine.WithMaxIterations(n))
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}

package smallworld

import (
	"runtime"

	"go.uber.org/zap"
)

// Option configures Run and Sweep.
type Option func(*options)

type options struct {
	logger      *zap.Logger
	parallelism int
	metrics     bool
}

func defaultOptions() options {
	return options{
		logger:      zap.NewNop(),
		parallelism: runtime.GOMAXPROCS(0),
		metrics:     true,
	}
}

func resolveOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithLogger sets the logger; nil keeps the no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithParallelism bounds the number of concurrent Sweep trials. Values < 1
// are ignored.
func WithParallelism(n int) Option {
	return func(o *options) {
		if n >= 1 {
			o.parallelism = n
		}
	}
}

// WithoutMetrics skips the all-pairs metrics summary in Run, which is the
// dominant cost on large rings.
func WithoutMetrics() Option {
	return func(o *options) {
		o.metrics = false
	}
}

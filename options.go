package recallgo

import (
	"io"
	"log/slog"
	"os"
	"runtime"

	"github.com/hupe1980/recallgo/resource"
)

type options struct {
	accelerated       bool
	report            bool
	reportWriter      io.Writer
	datasetLabel      string
	logger            *Logger
	metricsCollector  MetricsCollector
	controller        *resource.Controller
	searchConcurrency int
}

// Option configures evaluation behavior.
type Option func(*options)

// WithAcceleratedIndex selects the half-precision (float16) index backend.
// Results are still exact nearest neighbors over the stored codes; the
// encoding applies a small, documented rounding. Backing memory is reserved
// from the configured resource controller, and exhaustion surfaces as
// ErrResourceExhausted rather than falling back to the full-precision path.
func WithAcceleratedIndex() Option {
	return func(o *options) {
		o.accelerated = true
	}
}

// WithoutReport disables the formatted report. The recall table is still
// returned; only the side-channel output is suppressed.
func WithoutReport() Option {
	return func(o *options) {
		o.report = false
	}
}

// WithReportWriter redirects the formatted report.
// The default writer is os.Stdout. Passing nil restores the default.
func WithReportWriter(w io.Writer) Option {
	return func(o *options) {
		if w == nil {
			w = os.Stdout
		}
		o.reportWriter = w
	}
}

// WithDatasetLabel sets the dataset name used in the report title.
func WithDatasetLabel(label string) Option {
	return func(o *options) {
		if label != "" {
			o.datasetLabel = label
		}
	}
}

// WithLogger configures structured logging for the evaluation.
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

// WithMetricsCollector configures a metrics collector.
// Pass nil to disable metrics collection.
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithResourceController sets the controller the accelerated backend
// reserves its backing memory from. Without one, no limits are enforced.
func WithResourceController(rc *resource.Controller) Option {
	return func(o *options) {
		o.controller = rc
	}
}

// WithSearchConcurrency bounds the number of queries searched in parallel.
// Defaults to GOMAXPROCS. Values below 1 restore the default.
func WithSearchConcurrency(n int) Option {
	return func(o *options) {
		if n >= 1 {
			o.searchConcurrency = n
		}
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		report:            true,
		reportWriter:      os.Stdout,
		datasetLabel:      "unnamed dataset",
		logger:            NoopLogger(),
		metricsCollector:  NoopMetricsCollector{},
		searchConcurrency: runtime.GOMAXPROCS(0),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}

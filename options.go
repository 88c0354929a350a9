package geoquad

import (
	"fmt"
	"log/slog"
	"runtime"
)

type options struct {
	precision        uint
	maxRings         int
	maxCells         int
	batchConcurrency int
	metricsCollector MetricsCollector
	logger           *Logger
}

// Option configures a Grid.
type Option func(*options)

// WithPrecision sets the number of bits per axis (1..16).
//
// Cell height is 180/2^p degrees and cell width 360/2^p degrees. Codes of
// different precisions are not comparable.
//
// Default: Precision (16).
func WithPrecision(p uint) Option {
	return func(o *options) {
		o.precision = p
	}
}

// WithMaxRings bounds the Nearby radius, in multiples of the latitude step.
// A radius spanning more rows than this fails with ErrRange.
//
// Default: DefaultMaxRings.
func WithMaxRings(n int) Option {
	return func(o *options) {
		o.maxRings = n
	}
}

// WithMaxCells bounds the number of cells a single Nearby call may visit.
// Near the poles one degree of arc spans many more cells than at the
// equator, so the ring bound alone does not cap memory.
//
// Default: DefaultMaxCells.
func WithMaxCells(n int) Option {
	return func(o *options) {
		o.maxCells = n
	}
}

// WithBatchConcurrency sets the number of goroutines CreateBatch may use.
// If n <= 0, GOMAXPROCS is used.
func WithBatchConcurrency(n int) Option {
	return func(o *options) {
		o.batchConcurrency = n
	}
}

// WithMetricsCollector configures a metrics collector for monitoring operations.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &geoquad.BasicMetricsCollector{}
//	grid, _ := geoquad.New(geoquad.WithMetricsCollector(metrics))
//	// ... use grid ...
//	stats := metrics.GetStats()
//	fmt.Printf("Nearby: %d, Avg cells: %d\n", stats.NearbyCount, stats.NearbyAvgCells)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for operations.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := geoquad.NewJSONLogger(slog.LevelDebug)
//	grid, _ := geoquad.New(geoquad.WithLogger(logger))
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

func applyOptions(optFns []Option) (options, error) {
	o := options{
		precision:        Precision,
		maxRings:         DefaultMaxRings,
		maxCells:         DefaultMaxCells,
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}

	if o.precision < 1 || o.precision > Precision {
		return o, fmt.Errorf("%w: got %d", ErrInvalidPrecision, o.precision)
	}
	if o.maxRings <= 0 {
		return o, fmt.Errorf("%w: max rings must be positive, got %d", ErrInvalidOption, o.maxRings)
	}
	if o.maxCells <= 0 {
		return o, fmt.Errorf("%w: max cells must be positive, got %d", ErrInvalidOption, o.maxCells)
	}
	if o.batchConcurrency <= 0 {
		o.batchConcurrency = runtime.GOMAXPROCS(0)
	}
	return o, nil
}

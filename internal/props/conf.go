package props

import (
	"runtime"
	"time"
)

// Option is a functional option for configuring Run.
type Option func(*config)

// ProgressFunc receives the number of evaluated samples and the total.
type ProgressFunc func(done, total int)

type config struct {
	samples          int
	seed             int64
	tolerance        float64
	scale            float64
	workerCount      int
	tasksPerSecond   float64
	burst            int
	progress         ProgressFunc
	progressInterval time.Duration
}

func createConfig(opts ...Option) *config {
	cfg := &config{
		samples:          10_000,
		seed:             1,
		tolerance:        1e-9,
		scale:            1e3,
		workerCount:      runtime.GOMAXPROCS(0),
		progressInterval: 100 * time.Millisecond,
	}

	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithSamples sets how many samples each property is checked against.
// If not specified, defaults to 10,000.
func WithSamples(n int) Option {
	return func(cfg *config) {
		if n > 0 {
			cfg.samples = n
		}
	}
}

// WithSeed sets the base seed of the sample generator. Runs with the same
// seed and sample count see the same operands.
func WithSeed(seed int64) Option {
	return func(cfg *config) {
		cfg.seed = seed
	}
}

// WithTolerance sets the relative tolerance of approximate comparisons.
// If not specified, defaults to 1e-9.
func WithTolerance(tol float64) Option {
	return func(cfg *config) {
		if tol > 0 {
			cfg.tolerance = tol
		}
	}
}

// WithScale bounds generated components to [-scale, scale].
// If not specified, defaults to 1000.
func WithScale(scale float64) Option {
	return func(cfg *config) {
		if scale > 0 {
			cfg.scale = scale
		}
	}
}

// WithWorkerCount sets how many properties are checked concurrently.
// If not specified, defaults to runtime.GOMAXPROCS(0).
func WithWorkerCount(count int) Option {
	return func(cfg *config) {
		if count > 0 {
			cfg.workerCount = count
		}
	}
}

// WithRateLimit throttles how many properties start per second.
func WithRateLimit(propertiesPerSecond float64, burst int) Option {
	return func(cfg *config) {
		if propertiesPerSecond > 0 && burst > 0 {
			cfg.tasksPerSecond = propertiesPerSecond
			cfg.burst = burst
		}
	}
}

// WithProgress registers fn to be called as samples are evaluated. Calls
// are serialized and throttled to the progress interval; a final call with
// done == total is always made on success.
func WithProgress(fn ProgressFunc) Option {
	return func(cfg *config) {
		cfg.progress = fn
	}
}

// WithProgressInterval sets the minimum time between progress calls.
// If not specified, defaults to 100ms.
func WithProgressInterval(d time.Duration) Option {
	return func(cfg *config) {
		if d > 0 {
			cfg.progressInterval = d
		}
	}
}

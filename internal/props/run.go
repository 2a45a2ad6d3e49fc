package props

import (
	"context"
	"errors"
	"math/rand"
	"sync/atomic"
	"time"

	"github.com/utkarsh5026/cplxme/cplx"
	"github.com/utkarsh5026/cplxme/internal/workers"
	"golang.org/x/time/rate"
)

// maxRecordedFailures caps the counter-examples kept per report.
const maxRecordedFailures = 5

// ctxCheckEvery is how many samples run between context checks.
const ctxCheckEvery = 1024

// Failure is a sample that violated a property.
type Failure struct {
	Sample Sample
	Err    error
}

// Report summarizes one property run.
type Report struct {
	Property    string
	Description string
	Samples     int
	Passed      int
	Skipped     int
	Violations  int
	Failures    []Failure // first maxRecordedFailures violations
	Duration    time.Duration
}

// Failed reports whether any sample violated the property.
func (r Report) Failed() bool {
	return r.Violations > 0
}

type indexedProperty struct {
	index int
	prop  Property
}

// Run checks every property against freshly generated samples and returns
// one report per property, in the order given. Violations are reported in
// the Report, not as an error; the returned error is non-nil only when the
// run itself was interrupted.
func Run(ctx context.Context, properties []Property, opts ...Option) ([]Report, error) {
	cfg := createConfig(opts...)

	total := len(properties) * cfg.samples
	var done atomic.Int64
	throttle := &rate.Sometimes{Interval: cfg.progressInterval}

	report := func() {
		if cfg.progress == nil {
			return
		}
		throttle.Do(func() {
			cfg.progress(int(done.Load()), total)
		})
	}

	tasks := make([]indexedProperty, len(properties))
	for i, p := range properties {
		tasks[i] = indexedProperty{index: i, prop: p}
	}

	// every property fits in the task buffer, so submission never blocks
	poolOpts := []workers.Option{
		workers.WithWorkerCount(cfg.workerCount),
		workers.WithTaskBuffer(len(tasks)),
	}
	if cfg.tasksPerSecond > 0 {
		poolOpts = append(poolOpts, workers.WithRateLimit(cfg.tasksPerSecond, cfg.burst))
	}
	pool := workers.New[indexedProperty, Report](poolOpts...)
	debugLog("checking %d properties x %d samples on %d workers", len(tasks), cfg.samples, pool.WorkerCount())

	reports, err := pool.Process(ctx, tasks, func(ctx context.Context, t indexedProperty) (Report, error) {
		return checkProperty(ctx, t, cfg, func() {
			done.Add(1)
			report()
		})
	})
	if err != nil {
		return reports, err
	}

	if cfg.progress != nil {
		cfg.progress(total, total)
	}
	return reports, nil
}

func checkProperty(ctx context.Context, t indexedProperty, cfg *config, onSample func()) (Report, error) {
	start := time.Now()
	gen := newGenerator(cfg.seed+int64(t.index), cfg.scale)

	r := Report{
		Property:    t.prop.Name,
		Description: t.prop.Description,
		Samples:     cfg.samples,
	}

	for i := range cfg.samples {
		if i%ctxCheckEvery == 0 {
			if err := ctx.Err(); err != nil {
				return r, err
			}
		}

		s := gen.sample(t.prop.Arity)
		err := t.prop.Check(s, cfg.tolerance)
		switch {
		case err == nil:
			r.Passed++
		case errors.Is(err, ErrSkipSample):
			r.Skipped++
		default:
			r.Violations++
			if len(r.Failures) < maxRecordedFailures {
				r.Failures = append(r.Failures, Failure{Sample: s, Err: err})
			}
		}
		onSample()
	}

	r.Duration = time.Since(start)
	debugLog("property %s: passed=%d skipped=%d violations=%d in %v",
		r.Property, r.Passed, r.Skipped, r.Violations, r.Duration)
	return r, nil
}

// generator produces samples with components uniform in [-scale, scale].
type generator struct {
	rng   *rand.Rand
	scale float64
}

func newGenerator(seed int64, scale float64) *generator {
	return &generator{
		rng:   rand.New(rand.NewSource(seed)), // #nosec G404 -- reproducible test data, not security sensitive
		scale: scale,
	}
}

func (g *generator) component() float64 {
	return (g.rng.Float64()*2 - 1) * g.scale
}

func (g *generator) number() cplx.Number {
	return cplx.New(g.component(), g.component())
}

// sample fills the first arity operands; an arity outside 1..3 fills all.
func (g *generator) sample(arity int) Sample {
	if arity < 1 || arity > 3 {
		arity = 3
	}

	var s Sample
	operands := []*cplx.Number{&s.A, &s.B, &s.C}
	for _, op := range operands[:arity] {
		*op = g.number()
	}
	return s
}

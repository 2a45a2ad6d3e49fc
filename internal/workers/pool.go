// Package workers runs a slice of independent tasks on a bounded set of
// goroutines and returns their results in input order.
package workers

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"
)

var (
	ErrTaskPanicked = errors.New("task panicked")
)

// ProcessFunc processes a single task. Returning an error stops the pool.
type ProcessFunc[T, R any] func(ctx context.Context, task T) (R, error)

type indexedTask[T any] struct {
	index int
	task  T
}

type result[R any] struct {
	value R
	err   error
	index int
}

// Pool processes tasks of type T into results of type R.
//
// Type parameters:
//   - T: The input task type
//   - R: The result type
type Pool[T, R any] struct {
	cfg *config
}

// New creates a Pool. Default configuration: workers = GOMAXPROCS,
// buffer = worker count, no rate limit.
func New[T, R any](opts ...Option) *Pool[T, R] {
	return &Pool[T, R]{cfg: createConfig(opts...)}
}

// WorkerCount returns the configured number of workers.
func (p *Pool[T, R]) WorkerCount() int {
	return p.cfg.workerCount
}

// Process runs processFn over tasks concurrently and returns the results in
// the same order as tasks. The first error cancels the remaining work and
// is returned together with whatever results were already collected.
func (p *Pool[T, R]) Process(ctx context.Context, tasks []T, processFn ProcessFunc[T, R]) ([]R, error) {
	if len(tasks) == 0 {
		return []R{}, nil
	}

	g, ctx := errgroup.WithContext(ctx)

	taskChan := make(chan indexedTask[T], p.cfg.taskBuffer)
	resultChan := make(chan result[R], len(tasks))

	numWorkers := min(p.cfg.workerCount, len(tasks))
	for range numWorkers {
		g.Go(func() error {
			return p.worker(ctx, taskChan, resultChan, processFn)
		})
	}

	g.Go(func() error {
		defer close(taskChan)
		for idx, task := range tasks {
			select {
			case taskChan <- indexedTask[T]{index: idx, task: task}:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})

	results := make([]R, len(tasks))
	var collectWg sync.WaitGroup
	collectWg.Add(1)
	go func() {
		defer collectWg.Done()
		for r := range resultChan {
			if r.err == nil {
				results[r.index] = r.value
			}
		}
	}()

	err := g.Wait()
	close(resultChan)
	collectWg.Wait()

	return results, err
}

func (p *Pool[T, R]) worker(
	ctx context.Context,
	taskChan <-chan indexedTask[T],
	resultChan chan<- result[R],
	processFn ProcessFunc[T, R],
) error {
	for {
		select {
		case t, ok := <-taskChan:
			if !ok {
				return nil
			}

			if err := ctx.Err(); err != nil {
				return err
			}

			if p.cfg.limiter != nil {
				if err := p.cfg.limiter.Wait(ctx); err != nil {
					return err
				}
			}

			value, err := processWithRecovery(ctx, t.task, processFn)
			resultChan <- result[R]{value: value, err: err, index: t.index}
			if err != nil {
				return err
			}
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// processWithRecovery converts a panic in processFn into an error wrapping
// ErrTaskPanicked so one bad task cannot crash the process.
func processWithRecovery[T, R any](ctx context.Context, task T, processFn ProcessFunc[T, R]) (value R, err error) {
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 4096)
			n := runtime.Stack(buf, false)
			err = fmt.Errorf("%w: %v\nstack trace:\n%s", ErrTaskPanicked, r, buf[:n])
		}
	}()

	return processFn(ctx, task)
}

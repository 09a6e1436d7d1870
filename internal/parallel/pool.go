// Package parallel provides controlled-concurrency helpers for evaluating
// batches of formulas against independent copies of a variable environment.
// The lattice package performs no locking and guarantees none is needed as
// long as each environment copy has a single mutator; this package upholds
// that contract by handing every evaluation its own deep copy.
package parallel

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"github.com/rs/zerolog"

	"github.com/gitrdm/golattice/pkg/lattice"
)

// WorkerPool manages a pool of goroutines for parallel formula evaluation.
// It provides controlled concurrency with backpressure handling to prevent
// resource exhaustion on large batches.
type WorkerPool struct {
	maxWorkers   int
	taskChan     chan func()
	workerWg     sync.WaitGroup
	shutdownChan chan struct{}
	once         sync.Once
}

// NewWorkerPool creates a new worker pool with the specified number of
// workers. If maxWorkers is 0 or negative, it defaults to the number of CPU
// cores.
func NewWorkerPool(maxWorkers int) *WorkerPool {
	if maxWorkers <= 0 {
		maxWorkers = runtime.NumCPU()
	}

	pool := &WorkerPool{
		maxWorkers:   maxWorkers,
		taskChan:     make(chan func(), maxWorkers*2), // Buffered channel for backpressure
		shutdownChan: make(chan struct{}),
	}

	for i := 0; i < maxWorkers; i++ {
		pool.workerWg.Add(1)
		go pool.worker()
	}

	return pool
}

// worker is the main worker loop that processes tasks from the channel.
func (wp *WorkerPool) worker() {
	defer wp.workerWg.Done()

	for {
		select {
		case task := <-wp.taskChan:
			if task != nil {
				task()
			}
		case <-wp.shutdownChan:
			return
		}
	}
}

// Submit submits a task to the worker pool for execution. If the pool is
// full, this call will block until a worker becomes available.
func (wp *WorkerPool) Submit(ctx context.Context, task func()) error {
	select {
	case wp.taskChan <- task:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-wp.shutdownChan:
		return ErrPoolShutdown
	}
}

// Shutdown gracefully shuts down the worker pool, waiting for all currently
// executing tasks to complete.
func (wp *WorkerPool) Shutdown() {
	wp.once.Do(func() {
		close(wp.shutdownChan)
		close(wp.taskChan)
		wp.workerWg.Wait()
	})
}

// ErrPoolShutdown is returned when trying to submit tasks to a shutdown pool.
var ErrPoolShutdown = fmt.Errorf("worker pool has been shutdown")

// EvaluateAll interprets every formula of the batch against the base
// environment, in parallel. Each formula is evaluated against its own deep
// copy of base, so the evaluations see identical state, never interfere, and
// base itself is never mutated. Results are returned in input order.
//
// Failed interpretations are ordinary Result errors in the returned slice;
// EvaluateAll itself only fails when the context is cancelled before the
// whole batch was submitted.
func EvaluateAll(ctx context.Context, log zerolog.Logger, base *lattice.Env, formulas []*lattice.Formula, workers int) ([]lattice.Result[lattice.AVar], error) {
	pool := NewWorkerPool(workers)
	defer pool.Shutdown()

	results := make([]lattice.Result[lattice.AVar], len(formulas))
	var wg sync.WaitGroup

	log.Debug().
		Int("formulas", len(formulas)).
		Int("workers", pool.maxWorkers).
		Msg("evaluating formula batch")

	for i, f := range formulas {
		i, f := i, f
		wg.Add(1)
		err := pool.Submit(ctx, func() {
			defer wg.Done()
			env := base.Clone()
			results[i] = env.Interpret(f)
		})
		if err != nil {
			wg.Done()
			wg.Wait()
			return nil, err
		}
	}
	wg.Wait()

	failed := 0
	for _, r := range results {
		if !r.IsOk() {
			failed++
		}
	}
	log.Debug().
		Int("ok", len(results)-failed).
		Int("failed", failed).
		Msg("formula batch evaluated")

	return results, nil
}

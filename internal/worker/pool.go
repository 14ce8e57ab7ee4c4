// Package worker runs the CLI's per-line encode/decode step on a fixed set of
// goroutines and puts the results back in input order.
package worker

import (
	"sync"
	"sync/atomic"

	"github.com/lgbarn/chesscodec-go/internal/codec"
)

// WorkItem is one input line to be processed.
type WorkItem struct {
	Line       string
	LineNumber int // 1-based line in the input
	Index      int // position among submitted items
}

// ProcessResult is the outcome of processing one line.
type ProcessResult struct {
	Index      int
	LineNumber int
	Input      string
	Code       string      // compressed text of the game
	Game       *codec.Game // decoded game (nil on error)
	Err        error
}

// ProcessFunc turns one line into its result.
type ProcessFunc func(item WorkItem) ProcessResult

// Pool feeds submitted lines to its workers and collects their results.
type Pool struct {
	process ProcessFunc
	workers int
	in      chan WorkItem
	out     chan ProcessResult
	running sync.WaitGroup
	stopped atomic.Bool
}

type settings struct {
	workers int
	backlog int
}

// PoolOption adjusts how NewPool sizes the pool.
type PoolOption func(*settings)

// WithWorkers sets how many goroutines Start launches. Values below one are
// ignored.
func WithWorkers(n int) PoolOption {
	return func(s *settings) {
		if n > 0 {
			s.workers = n
		}
	}
}

// WithBufferSize sets how many lines and results may wait in the queues.
// Values below one are ignored.
func WithBufferSize(size int) PoolOption {
	return func(s *settings) {
		if size > 0 {
			s.backlog = size
		}
	}
}

// NewPool returns an idle pool around process. Without options it has a
// single worker and room for 10 queued items each way.
func NewPool(process ProcessFunc, opts ...PoolOption) *Pool {
	s := settings{workers: 1, backlog: 10}
	for _, opt := range opts {
		opt(&s)
	}
	return &Pool{
		process: process,
		workers: s.workers,
		in:      make(chan WorkItem, s.backlog),
		out:     make(chan ProcessResult, s.backlog),
	}
}

// Start launches the workers.
func (p *Pool) Start() {
	p.running.Add(p.workers)
	for i := 0; i < p.workers; i++ {
		go p.run()
	}
}

func (p *Pool) run() {
	defer p.running.Done()
	for item := range p.in {
		// After Stop the queue is still drained so Submit never blocks.
		if p.stopped.Load() {
			continue
		}
		p.out <- p.process(item)
	}
}

// Submit queues item, blocking while the queue is full.
func (p *Pool) Submit(item WorkItem) {
	p.in <- item
}

// Stop makes the workers discard whatever is still queued.
func (p *Pool) Stop() {
	p.stopped.Store(true)
}

// IsStopped reports whether Stop has been called.
func (p *Pool) IsStopped() bool {
	return p.stopped.Load()
}

// Close ends submission, waits for the workers and then closes Results.
func (p *Pool) Close() {
	close(p.in)
	p.running.Wait()
	close(p.out)
}

// Results yields processed items in completion order; see Reorder.
func (p *Pool) Results() <-chan ProcessResult {
	return p.out
}

package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// WorkerPool is a fixed set of goroutines draining a shared queue.
//
// Jobs submitted with Submit are tracked so Wait can block until every one
// of them has finished. WorkerPool is safe for concurrent use.
type WorkerPool struct {
	workers int
	queue   chan func()

	// wg tracks worker goroutines, pending tracks submitted jobs.
	wg      sync.WaitGroup
	pending sync.WaitGroup

	mu      sync.RWMutex
	running atomic.Bool
}

// NewWorkerPool starts a pool with the given number of workers.
// If workers is 0 or negative, GOMAXPROCS is used.
func NewWorkerPool(workers int) *WorkerPool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	p := &WorkerPool{
		workers: workers,
		queue:   make(chan func(), workers*2),
	}
	p.running.Store(true)
	for range workers {
		p.wg.Go(p.worker)
	}
	return p
}

func (p *WorkerPool) worker() {
	for job := range p.queue {
		job()
	}
}

// Submit queues fn and reports whether it was accepted. It blocks while the
// queue is full and returns false once the pool is closed.
func (p *WorkerPool) Submit(fn func()) bool {
	if fn == nil {
		return false
	}
	p.mu.RLock()
	defer p.mu.RUnlock()
	if !p.running.Load() {
		return false
	}
	p.pending.Add(1)
	p.queue <- func() {
		defer p.pending.Done()
		fn()
	}
	return true
}

// Wait blocks until every accepted job has returned.
func (p *WorkerPool) Wait() {
	p.pending.Wait()
}

// ExecuteAll runs every job and waits for all of them. On a closed pool the
// jobs run on the calling goroutine.
func (p *WorkerPool) ExecuteAll(work []func()) {
	var done sync.WaitGroup
	for _, fn := range work {
		if fn == nil {
			continue
		}
		done.Add(1)
		job := func() {
			defer done.Done()
			fn()
		}
		if !p.Submit(job) {
			job()
		}
	}
	done.Wait()
}

// Map applies fn to every element of in on the pool and returns the results
// in input order.
func Map[T, R any](p *WorkerPool, in []T, fn func(T) R) []R {
	out := make([]R, len(in))
	work := make([]func(), len(in))
	for i, v := range in {
		work[i] = func() { out[i] = fn(v) }
	}
	p.ExecuteAll(work)
	return out
}

// Close stops accepting work, lets queued jobs finish and stops the
// workers. Close is safe to call multiple times.
func (p *WorkerPool) Close() {
	p.mu.Lock()
	if !p.running.CompareAndSwap(true, false) {
		p.mu.Unlock()
		return
	}
	close(p.queue)
	p.mu.Unlock()
	p.wg.Wait()
}

// Workers returns the number of workers in the pool.
func (p *WorkerPool) Workers() int {
	return p.workers
}

// IsRunning reports whether the pool still accepts work.
func (p *WorkerPool) IsRunning() bool {
	return p.running.Load()
}

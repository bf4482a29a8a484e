// Package worker runs CPU-heavy tasks, such as bcrypt, on a fixed number of
// goroutines so request bursts queue instead of starving the scheduler.
package worker

import (
	"context"
	"runtime"
	"sync"
)

// Task represents a unit of work executed by the pool.
type Task func()

// Pool defines a simple worker pool.
type Pool interface {
	// Do runs t on a worker and waits for it. It gives up with ctx.Err()
	// only while t is still queued; a started task always completes.
	Do(ctx context.Context, t Task) error
	Stop()
}

// NewPool creates a pool with n workers. n<=0 means one per CPU.
func NewPool(n int) Pool {
	if n <= 0 {
		n = runtime.NumCPU()
	}
	p := &pool{jobs: make(chan Task)}
	p.wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer p.wg.Done()
			for job := range p.jobs {
				if job != nil {
					job()
				}
			}
		}()
	}
	return p
}

type pool struct {
	jobs chan Task
	wg   sync.WaitGroup
}

func (p *pool) Do(ctx context.Context, t Task) error {
	done := make(chan struct{})
	job := func() {
		defer close(done)
		t()
	}
	select {
	case p.jobs <- job:
	case <-ctx.Done():
		return ctx.Err()
	}
	<-done
	return nil
}

func (p *pool) Stop() {
	close(p.jobs)
	p.wg.Wait()
}

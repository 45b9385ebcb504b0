package workpool

import (
	"context"

	"golang.org/x/sync/semaphore"
)

// Pool bounds how many model-inference calls run at once. Callers block in
// Do until a slot frees up or their context is cancelled; the work function
// itself is not cancelled mid-flight.
type Pool struct {
	sem *semaphore.Weighted
}

func New(size int) *Pool {
	if size <= 0 {
		size = 1
	}
	return &Pool{sem: semaphore.NewWeighted(int64(size))}
}

func (p *Pool) Do(ctx context.Context, fn func() error) error {
	if err := p.sem.Acquire(ctx, 1); err != nil {
		return err
	}
	defer p.sem.Release(1)
	return fn()
}

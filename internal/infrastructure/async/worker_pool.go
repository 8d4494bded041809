package async

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

type Task func(ctx context.Context)

const defaultTaskTimeout = 5 * time.Second

type WorkerPool struct {
	tasks   chan Task
	wg      sync.WaitGroup
	ctx     context.Context
	cancel  context.CancelFunc
	log     *zap.Logger
	timeout time.Duration

	// closing is closed by Shutdown so blocked submitters give up at once;
	// inflight counts submitters that may still send on tasks.
	mu       sync.RWMutex
	closed   bool
	closing  chan struct{}
	inflight sync.WaitGroup
}

type PoolOption func(*WorkerPool)

// WithQueue buffers up to n tasks so Submit does not wait for an idle worker.
func WithQueue(n int) PoolOption {
	return func(p *WorkerPool) {
		if n > 0 {
			p.tasks = make(chan Task, n)
		}
	}
}

func WithTaskTimeout(d time.Duration) PoolOption {
	return func(p *WorkerPool) {
		if d > 0 {
			p.timeout = d
		}
	}
}

func NewWorkerPool(parent context.Context, size int, log *zap.Logger, opts ...PoolOption) *WorkerPool {
	if size < 1 {
		size = 1
	}
	if log == nil {
		log = zap.NewNop()
	}
	ctx, cancel := context.WithCancel(parent)
	p := &WorkerPool{
		tasks:   make(chan Task),
		closing: make(chan struct{}),
		ctx:     ctx,
		cancel:  cancel,
		log:     log,
		timeout: defaultTaskTimeout,
	}
	for _, opt := range opts {
		opt(p)
	}

	for i := 0; i < size; i++ {
		p.wg.Add(1)
		go p.worker(i)
	}

	return p
}

func (p *WorkerPool) worker(id int) {
	defer p.wg.Done()

	for {
		select {
		case <-p.ctx.Done():
			return
		case task, ok := <-p.tasks:
			if !ok {
				return
			}

			taskCtx, cancel := context.WithTimeout(p.ctx, p.timeout)
			func() {
				defer func() {
					if r := recover(); r != nil {
						p.log.Error("task panicked", zap.Int("worker", id), zap.Any("panic", r))
					}
				}()
				task(taskCtx)
			}()
			cancel()
		}
	}
}

// Submit hands the task to a worker. It reports false when the pool is shut
// down or ctx ends first; the task is then dropped.
func (p *WorkerPool) Submit(ctx context.Context, task Task) bool {
	p.mu.RLock()
	if p.closed {
		p.mu.RUnlock()
		return false
	}
	p.inflight.Add(1)
	p.mu.RUnlock()
	defer p.inflight.Done()

	select {
	case <-p.closing:
		return false
	case <-p.ctx.Done():
		return false
	case <-ctx.Done():
		return false
	case p.tasks <- task:
		return true
	}
}

// Shutdown stops accepting tasks, lets the workers drain the queue and waits
// for them. Submitters blocked on a busy pool are released right away. Queued
// tasks still running when ctx ends are cancelled.
func (p *WorkerPool) Shutdown(ctx context.Context) error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil
	}
	p.closed = true
	close(p.closing)
	p.mu.Unlock()

	done := make(chan struct{})
	go func() {
		p.inflight.Wait()
		close(p.tasks)
		p.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		p.cancel()
		return nil
	case <-ctx.Done():
		p.cancel()
		<-done
		return ctx.Err()
	}
}

package favicon

import (
	"context"
	"errors"
	"sync"

	"github.com/bnema/favicache/internal/application/port"
	"github.com/bnema/favicache/internal/logging"
)

// DefaultWriteQueueSize is the capacity of the pending task channel.
const DefaultWriteQueueSize = 256

// ErrQueueClosed is returned by Submit after Close.
var ErrQueueClosed = errors.New("write queue closed")

// WriteQueue runs store writes on a single background goroutine.
// Tasks run in submission order. Submit waits for room when the queue is full.
type WriteQueue struct {
	tasks chan func(context.Context)
	ctx   context.Context
	done  chan struct{}

	mu        sync.RWMutex
	closed    bool
	closeOnce sync.Once

	onDrop func()
}

var _ port.WriteQueue = (*WriteQueue)(nil)

// NewWriteQueue starts the worker. Tasks receive ctx, so it should carry the logger.
func NewWriteQueue(ctx context.Context, size int) *WriteQueue {
	if size <= 0 {
		size = DefaultWriteQueueSize
	}
	q := &WriteQueue{
		tasks: make(chan func(context.Context), size),
		ctx:   logging.WithComponent(ctx, "write-queue"),
		done:  make(chan struct{}),
	}
	go q.run()
	return q
}

// OnDrop registers a callback invoked whenever Submit refuses a task.
// Must be called before the first Submit.
func (q *WriteQueue) OnDrop(fn func()) {
	q.onDrop = fn
}

// Submit enqueues task, waiting while the queue is full.
// It fails if the queue is closed or ctx is done first.
func (q *WriteQueue) Submit(ctx context.Context, task func(context.Context)) error {
	err := q.submit(ctx, task)
	if err != nil && q.onDrop != nil {
		q.onDrop()
	}
	return err
}

func (q *WriteQueue) submit(ctx context.Context, task func(context.Context)) error {
	q.mu.RLock()
	defer q.mu.RUnlock()

	if q.closed {
		return ErrQueueClosed
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	// The worker never takes mu, so waiting here cannot stall it.
	select {
	case q.tasks <- task:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Drain waits until every task accepted before the call has run.
func (q *WriteQueue) Drain(ctx context.Context) error {
	barrier := make(chan struct{})

	q.mu.RLock()
	if q.closed {
		q.mu.RUnlock()
		select {
		case <-q.done:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	select {
	case q.tasks <- func(context.Context) { close(barrier) }:
	case <-ctx.Done():
		q.mu.RUnlock()
		return ctx.Err()
	}
	q.mu.RUnlock()

	select {
	case <-barrier:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close stops accepting tasks and waits for the queued ones to finish.
func (q *WriteQueue) Close() {
	q.closeOnce.Do(func() {
		q.mu.Lock()
		q.closed = true
		close(q.tasks)
		q.mu.Unlock()
	})
	<-q.done
}

func (q *WriteQueue) run() {
	defer close(q.done)
	for task := range q.tasks {
		task(q.ctx)
	}
}

package worker

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/pet-shop/internal/metrics"
)

const (
	defaultQueueSize = 100
	defaultTimeout   = 5 * time.Second
)

// Task is a best-effort side effect. Its error is logged and counted, never
// returned to whoever submitted it.
type Task struct {
	Name string
	Run  func(ctx context.Context) error
}

// Submitter is what request-path code depends on.
type Submitter interface {
	Submit(t Task)
}

type Options struct {
	QueueSize int
	Timeout   time.Duration
}

// Runner drains a bounded queue with a single goroutine. Submit never blocks:
// when the queue is full the task is dropped.
type Runner struct {
	log     zerolog.Logger
	queue   chan Task
	timeout time.Duration

	base   context.Context
	cancel context.CancelFunc
	done   chan struct{}

	mu     sync.RWMutex
	closed bool

	// pending counts accepted tasks that have not finished.
	pendingMu sync.Mutex
	idle      *sync.Cond
	pending   int
}

func NewRunner(log zerolog.Logger, opts Options) *Runner {
	size := opts.QueueSize
	if size <= 0 {
		size = defaultQueueSize
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	base, cancel := context.WithCancel(context.Background())

	r := &Runner{
		log:     log.With().Str("component", "worker").Logger(),
		queue:   make(chan Task, size),
		timeout: timeout,
		base:    base,
		cancel:  cancel,
		done:    make(chan struct{}),
	}
	r.idle = sync.NewCond(&r.pendingMu)

	go r.loop()
	return r
}

func (r *Runner) Submit(t Task) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.closed {
		r.drop(t, "runner closed")
		return
	}

	r.track(1)
	select {
	case r.queue <- t:
	default:
		r.track(-1)
		r.drop(t, "queue full")
	}
}

// Flush blocks until no accepted task is waiting or running. It is safe to
// call while other goroutines keep submitting.
func (r *Runner) Flush() {
	r.pendingMu.Lock()
	defer r.pendingMu.Unlock()

	for r.pending > 0 {
		r.idle.Wait()
	}
}

func (r *Runner) track(delta int) {
	r.pendingMu.Lock()
	defer r.pendingMu.Unlock()

	r.pending += delta
	if r.pending == 0 {
		r.idle.Broadcast()
	}
}

// Close stops accepting tasks, lets queued ones finish, then stops the worker.
// In-flight tasks are cancelled if ctx expires first.
func (r *Runner) Close(ctx context.Context) error {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return nil
	}
	r.closed = true
	close(r.queue)
	r.mu.Unlock()

	select {
	case <-r.done:
		r.cancel()
		return nil
	case <-ctx.Done():
		r.cancel()
		<-r.done
		return ctx.Err()
	}
}

func (r *Runner) loop() {
	defer close(r.done)

	for t := range r.queue {
		r.run(t)
		r.track(-1)
	}
}

func (r *Runner) run(t Task) {
	ctx, cancel := context.WithTimeout(r.base, r.timeout)
	defer cancel()

	err := safeRun(ctx, t)
	if err != nil {
		metrics.BackgroundTasksTotal.WithLabelValues(t.Name, "error").Inc()
		r.log.Error().Err(err).Str("task", t.Name).Msg("background task failed")
		return
	}

	metrics.BackgroundTasksTotal.WithLabelValues(t.Name, "ok").Inc()
}

func (r *Runner) drop(t Task, why string) {
	metrics.BackgroundTasksTotal.WithLabelValues(t.Name, "dropped").Inc()
	r.log.Warn().Str("task", t.Name).Str("why", why).Msg("background task dropped")
}

func safeRun(ctx context.Context, t Task) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("panic: %v", p)
		}
	}()
	return t.Run(ctx)
}

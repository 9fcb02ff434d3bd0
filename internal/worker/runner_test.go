package worker

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestRunner_RunsSubmittedTasks(t *testing.T) {
	r := NewRunner(zerolog.Nop(), Options{QueueSize: 10})
	defer r.Close(context.Background())

	var n int32
	for i := 0; i < 5; i++ {
		r.Submit(Task{Name: "count", Run: func(context.Context) error {
			atomic.AddInt32(&n, 1)
			return nil
		}})
	}
	r.Flush()

	if got := atomic.LoadInt32(&n); got != 5 {
		t.Fatalf("expected 5 runs, got %d", got)
	}
}

func TestRunner_FlushWhileSubmitting(t *testing.T) {
	r := NewRunner(zerolog.Nop(), Options{QueueSize: 1000})
	defer r.Close(context.Background())

	var n int32
	var producers sync.WaitGroup
	for p := 0; p < 4; p++ {
		producers.Add(1)
		go func() {
			defer producers.Done()
			for i := 0; i < 50; i++ {
				r.Submit(Task{Name: "count", Run: func(context.Context) error {
					atomic.AddInt32(&n, 1)
					return nil
				}})
				if i%10 == 0 {
					r.Flush()
				}
			}
		}()
	}

	producers.Wait()
	r.Flush()

	if got := atomic.LoadInt32(&n); got != 200 {
		t.Fatalf("expected 200 runs, got %d", got)
	}
}

func TestRunner_FailuresAndPanicsAreSwallowed(t *testing.T) {
	r := NewRunner(zerolog.Nop(), Options{QueueSize: 10})
	defer r.Close(context.Background())

	ran := make(chan struct{}, 1)
	r.Submit(Task{Name: "fails", Run: func(context.Context) error {
		return errors.New("boom")
	}})
	r.Submit(Task{Name: "panics", Run: func(context.Context) error {
		panic("kaboom")
	}})
	r.Submit(Task{Name: "after", Run: func(context.Context) error {
		ran <- struct{}{}
		return nil
	}})
	r.Flush()

	select {
	case <-ran:
	default:
		t.Fatalf("worker died after a failing task")
	}
}

func TestRunner_DropsWhenFull(t *testing.T) {
	r := NewRunner(zerolog.Nop(), Options{QueueSize: 1})
	defer r.Close(context.Background())

	release := make(chan struct{})
	started := make(chan struct{})
	r.Submit(Task{Name: "blocker", Run: func(context.Context) error {
		close(started)
		<-release
		return nil
	}})
	<-started

	var ran int32
	task := Task{Name: "filler", Run: func(context.Context) error {
		atomic.AddInt32(&ran, 1)
		return nil
	}}

	done := make(chan struct{})
	go func() {
		r.Submit(task) // fills the single slot
		r.Submit(task) // dropped
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatalf("Submit blocked on a full queue")
	}

	close(release)
	r.Flush()

	if got := atomic.LoadInt32(&ran); got != 1 {
		t.Fatalf("expected exactly one filler to run, got %d", got)
	}
}

func TestRunner_TaskGetsDeadline(t *testing.T) {
	r := NewRunner(zerolog.Nop(), Options{Timeout: 50 * time.Millisecond})
	defer r.Close(context.Background())

	var hadDeadline atomic.Bool
	r.Submit(Task{Name: "deadline", Run: func(ctx context.Context) error {
		_, ok := ctx.Deadline()
		hadDeadline.Store(ok)
		return nil
	}})
	r.Flush()

	if !hadDeadline.Load() {
		t.Fatalf("task context has no deadline")
	}
}

func TestRunner_SubmitAfterClose(t *testing.T) {
	r := NewRunner(zerolog.Nop(), Options{})
	if err := r.Close(context.Background()); err != nil {
		t.Fatalf("close: %v", err)
	}

	called := false
	r.Submit(Task{Name: "late", Run: func(context.Context) error {
		called = true
		return nil
	}})
	r.Flush()

	if called {
		t.Fatalf("task ran after close")
	}
	if err := r.Close(context.Background()); err != nil {
		t.Fatalf("second close: %v", err)
	}
}

package audit

import (
	"context"

	"github.com/BruksfildServices01/pet-shop/internal/worker"
)

type Event struct {
	ActorID    string
	ActorEmail string
	Action     string
	Entity     string
	EntityID   string
	Metadata   any
}

type Writer interface {
	Write(ctx context.Context, ev Event) error
}

// Dispatcher records audit events off the request path. A lost audit entry
// never fails the operation that produced it.
type Dispatcher struct {
	writer Writer
	tasks  worker.Submitter
}

func NewDispatcher(writer Writer, tasks worker.Submitter) *Dispatcher {
	return &Dispatcher{writer: writer, tasks: tasks}
}

func (d *Dispatcher) Dispatch(ev Event) {
	if d == nil {
		return
	}

	d.tasks.Submit(worker.Task{
		Name: "audit_" + ev.Action,
		Run: func(ctx context.Context) error {
			return d.writer.Write(ctx, ev)
		},
	})
}

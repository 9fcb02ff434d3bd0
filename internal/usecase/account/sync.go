package account

import (
	"context"

	"github.com/BruksfildServices01/pet-shop/internal/domain/identity"
	"github.com/BruksfildServices01/pet-shop/internal/worker"
)

const (
	taskSessionSync     = "session_sync"
	taskUserMaterialize = "user_materialize"
)

// scheduleSessionSync pushes the relational values back into the session
// store. The relational row already holds the truth, so a failed sync only
// delays the next resolve's agreement.
func scheduleSessionSync(
	tasks worker.Submitter,
	sessions identity.SessionTransport,
	userID string,
	patch identity.MetadataPatch,
) {
	tasks.Submit(worker.Task{
		Name: taskSessionSync,
		Run: func(ctx context.Context) error {
			return sessions.UpdateSessionMetadata(ctx, userID, patch)
		},
	})
}

func scheduleMaterialize(
	tasks worker.Submitter,
	users identity.UserRepository,
	rec identity.UserRecord,
) {
	tasks.Submit(worker.Task{
		Name: taskUserMaterialize,
		Run: func(ctx context.Context) error {
			return users.CreateIfAbsent(ctx, rec)
		},
	})
}

package driven

import (
	"context"
	"time"

	"github.com/panseek/panseek/internal/core/domain"
)

// TransferStore persists transfer tasks. The tracker service layers
// the monotone status machine on top; stores only hold state.
type TransferStore interface {
	// Save stores or replaces a task by ID.
	Save(ctx context.Context, task domain.TransferTask) error

	// Get retrieves a task by ID.
	// Returns domain.ErrNotFound if no such task exists.
	Get(ctx context.Context, id string) (*domain.TransferTask, error)

	// List returns all tasks ordered by StartedAt descending.
	List(ctx context.Context) ([]domain.TransferTask, error)

	// EvictTerminal removes completed and failed tasks that finished
	// before cutoff, returning how many were removed.
	EvictTerminal(ctx context.Context, cutoff time.Time) (int, error)

	// Count returns the number of stored tasks.
	Count(ctx context.Context) (int, error)
}

package driving

import (
	"context"

	"github.com/panseek/panseek/internal/core/domain"
)

// TransferMonitor exposes the transfer task registry for inspection.
type TransferMonitor interface {
	// ListTransfers returns tracked tasks, newest first.
	ListTransfers(ctx context.Context) ([]domain.TransferTask, error)

	// GetTransfer returns one task by ID.
	// Returns domain.ErrNotFound if no such task exists.
	GetTransfer(ctx context.Context, id string) (*domain.TransferTask, error)
}

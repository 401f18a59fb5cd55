package driven

import (
	"context"

	"github.com/panseek/panseek/internal/core/domain"
)

// SessionStore keeps the most recent search session per owner.
//
// Concurrency contract: implementations must provide atomic per-key
// read-modify-write. Handler invocations for the same owner may race;
// the store is keyed, last-writer-wins, with no multi-key operations.
type SessionStore interface {
	// Put stores or unconditionally replaces the owner's session.
	Put(ctx context.Context, session domain.SearchSession) error

	// Get retrieves the owner's session.
	// Returns domain.ErrNoSession if the owner has none.
	Get(ctx context.Context, ownerID string) (*domain.SearchSession, error)

	// SetPage atomically updates the page cursor of the owner's
	// session. Returns domain.ErrNoSession if the owner has none.
	SetPage(ctx context.Context, ownerID string, page int) error
}

package driving

import (
	"context"

	"github.com/panseek/panseek/internal/core/domain"
)

// SearchService exposes one-shot grouped search to non-conversational
// actors (CLI, MCP).
type SearchService interface {
	// Search queries the gateway and returns the grouped result list.
	// An empty slice is a normal "no results" outcome.
	Search(ctx context.Context, keyword string) ([]domain.ResultItem, error)
}

// ResolveService turns a result item into an immediately usable link.
type ResolveService interface {
	// Resolve produces the immediate resolution for item. For
	// provisional resolutions the caller must invoke Resolution.Start
	// after delivering its reply.
	Resolve(ctx context.Context, item domain.ResultItem) (*domain.Resolution, error)
}

package driven

import (
	"context"

	"github.com/panseek/panseek/internal/core/domain"
)

// SearchGateway queries the remote aggregated netdisk search service.
type SearchGateway interface {
	// Search looks up keyword across all sources, filtered to the two
	// supported backend kinds. An empty reply is a normal outcome;
	// network failures, non-success statuses and malformed bodies are
	// reported as errors wrapping domain.ErrGatewayUnavailable.
	Search(ctx context.Context, keyword string) (*domain.SearchReply, error)
}

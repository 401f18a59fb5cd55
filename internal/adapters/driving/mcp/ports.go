package mcp

import (
	"github.com/panseek/panseek/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP
// server. This provides a single injection point for dependency
// injection.
type Ports struct {
	// Search provides grouped netdisk search.
	Search driving.SearchService

	// Resolve turns a result into a usable link.
	Resolve driving.ResolveService

	// Transfers exposes the task registry. Optional.
	Transfers driving.TransferMonitor
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Search == nil {
		return ErrMissingSearchService
	}
	if p.Resolve == nil {
		return ErrMissingResolveService
	}
	// Transfers is optional
	return nil
}

// Package mcp provides an MCP (Model Context Protocol) server adapter
// for PanSeek. It lets AI assistants run netdisk searches and resolve
// results into usable share links.
package mcp

import "errors"

// ErrMissingSearchService is returned when the search service is not provided.
var ErrMissingSearchService = errors.New("mcp: search service is required")

// ErrMissingResolveService is returned when the resolve service is not provided.
var ErrMissingResolveService = errors.New("mcp: resolve service is required")

// Package domain contains the core business entities for PanSeek.
// These types have no dependencies on infrastructure and are shared
// across all ports and adapters.
package domain

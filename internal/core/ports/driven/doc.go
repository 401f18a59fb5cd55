// Package driven defines the driven ports: interfaces the core needs
// implemented by infrastructure adapters (network collaborators,
// storage, configuration).
package driven

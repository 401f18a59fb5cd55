package driven

import "github.com/panseek/panseek/internal/core/domain"

// ConfigStore loads and persists the runtime configuration.
type ConfigStore interface {
	// Config returns the current configuration.
	Config() domain.Config

	// Save persists cfg and makes it the current configuration.
	Save(cfg domain.Config) error

	// Watch registers a callback invoked with the new configuration
	// whenever the backing store changes out of band. Returns a stop
	// function. Implementations without change detection may return a
	// no-op stop.
	Watch(onChange func(domain.Config)) (stop func(), err error)
}

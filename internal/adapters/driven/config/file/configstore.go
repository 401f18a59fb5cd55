// Package file provides the TOML-backed configuration store.
// Configuration lives in a TOML file within the panseek config
// directory; trigger literals and collaborator endpoints are all
// supplied here, never embedded in code.
package file

import (
	"errors"
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/pelletier/go-toml/v2"

	"github.com/panseek/panseek/internal/core/domain"
	"github.com/panseek/panseek/internal/core/ports/driven"
	"github.com/panseek/panseek/internal/logger"
)

// configFileName is the file inside the config directory.
const configFileName = "config.toml"

// Ensure ConfigStore implements the interface.
var _ driven.ConfigStore = (*ConfigStore)(nil)

// ConfigStore is a file-based implementation of driven.ConfigStore
// using TOML.
type ConfigStore struct {
	mu       sync.RWMutex
	filePath string
	cfg      domain.Config
}

// NewConfigStore creates a TOML-based config store. If configDir is
// empty, defaults to ~/.panseek. A missing file yields the defaults;
// it is written on the first Save.
func NewConfigStore(configDir string) (*ConfigStore, error) {
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		configDir = filepath.Join(home, ".panseek")
	}

	// Ensure directory exists
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return nil, err
	}

	s := &ConfigStore{
		filePath: filepath.Join(configDir, configFileName),
		cfg:      domain.DefaultConfig(),
	}

	if err := s.load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	return s, nil
}

// Path returns the config file path.
func (s *ConfigStore) Path() string {
	return s.filePath
}

// Config returns the current configuration.
func (s *ConfigStore) Config() domain.Config {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg
}

// Save persists cfg and makes it the current configuration.
func (s *ConfigStore) Save(cfg domain.Config) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}
	if err := os.WriteFile(s.filePath, data, 0600); err != nil {
		return err
	}
	s.cfg = cfg
	return nil
}

// load reads the config file into memory. Values absent from the file
// keep their defaults.
func (s *ConfigStore) load() error {
	data, err := os.ReadFile(s.filePath)
	if err != nil {
		return err
	}

	cfg := domain.DefaultConfig()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return err
	}

	s.mu.Lock()
	s.cfg = cfg
	s.mu.Unlock()
	return nil
}

// Watch reloads the configuration whenever the file changes out of
// band and hands the new configuration to onChange. The directory is
// watched rather than the file so editor rename-and-replace saves are
// still observed.
func (s *ConfigStore) Watch(onChange func(domain.Config)) (func(), error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := watcher.Add(filepath.Dir(s.filePath)); err != nil {
		watcher.Close()
		return nil, err
	}

	done := make(chan struct{})
	go func() {
		for {
			select {
			case <-done:
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != s.filePath {
					continue
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
					continue
				}
				if err := s.load(); err != nil {
					logger.Warn("Config: reload failed: %v", err)
					continue
				}
				logger.Info("Config: reloaded from %s", s.filePath)
				onChange(s.Config())
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logger.Warn("Config: watch error: %v", err)
			}
		}
	}()

	stop := func() {
		close(done)
		watcher.Close()
	}
	return stop, nil
}

// Package cli provides the cobra command tree for PanSeek.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/panseek/panseek/internal/adapters/driven/config/file"
	"github.com/panseek/panseek/internal/adapters/driven/converter"
	"github.com/panseek/panseek/internal/adapters/driven/gateway"
	"github.com/panseek/panseek/internal/adapters/driven/storage/memory"
	"github.com/panseek/panseek/internal/adapters/driven/storage/sqlite"
	"github.com/panseek/panseek/internal/core/domain"
	"github.com/panseek/panseek/internal/core/ports/driven"
	"github.com/panseek/panseek/internal/core/ports/driving"
	"github.com/panseek/panseek/internal/core/services"
	"github.com/panseek/panseek/internal/logger"
)

// version is the CLI version, overridable at build time via ldflags.
var version = "0.1.0"

// Persistent flags.
var (
	flagConfigDir string
	flagVerbose   bool
)

// Wired services. Tests replace these with mocks via setService
// helpers instead of going through initServices.
var (
	messageHandler  driving.MessageHandler
	searchService   driving.SearchService
	resolveService  driving.ResolveService
	transferMonitor driving.TransferMonitor

	dispatcher *services.Dispatcher
	tracker    *services.TransferTracker
	store      *file.ConfigStore
	journal    *sqlite.Store
)

var rootCmd = &cobra.Command{
	Use:   "panseek",
	Short: "Netdisk resource search bot engine",
	Long: `PanSeek is the session engine behind a netdisk search chat bot.
It searches aggregated quark and baidu shares, pages results, and
resolves picks into usable share links, transferring quark content
in the background.`,
	SilenceUsage:      true,
	PersistentPreRunE: initServices,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "config directory (default ~/.panseek)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable verbose logging")
}

// initServices wires the adapters and core services. It is a no-op
// when a test has already injected services.
func initServices(_ *cobra.Command, _ []string) error {
	logger.SetVerbose(flagVerbose)

	if messageHandler != nil {
		return nil
	}

	var err error
	store, err = file.NewConfigStore(flagConfigDir)
	if err != nil {
		return fmt.Errorf("open config store: %w", err)
	}
	cfg := store.Config()

	transfers, err := buildTransferStore(cfg)
	if err != nil {
		return fmt.Errorf("open transfer store: %w", err)
	}
	tracker = services.NewTransferTracker(transfers, cfg.Tracker)

	conv := converter.NewClient(cfg.Converter)
	resolver := services.NewResolver(conv, conv, tracker, cfg.Converter)

	dispatcher = services.NewDispatcher(
		gateway.NewClient(cfg.Gateway),
		memory.NewSessionStore(),
		resolver,
		cfg,
	)

	messageHandler = dispatcher
	searchService = dispatcher
	resolveService = resolver
	transferMonitor = tracker
	return nil
}

// buildTransferStore picks the durable journal or the in-memory
// registry, per configuration.
func buildTransferStore(cfg domain.Config) (driven.TransferStore, error) {
	if !cfg.Tracker.Journal {
		return memory.NewTransferStore(), nil
	}
	var err error
	journal, err = sqlite.NewStore("")
	if err != nil {
		return nil, err
	}
	return journal, nil
}

package cli

import (
	"fmt"
	"os"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/panseek/panseek/internal/adapters/driving/tui"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Open an interactive chat view against the dispatcher",
	Long: `Opens a terminal chat view wired to the same dispatcher a chat
bridge uses. Useful for trying trigger literals and paging locally
before deploying behind a host.

Controls:
  Enter    - Send the message
  Esc, q   - Quit`,
	RunE: runChat,
}

func init() {
	rootCmd.AddCommand(chatCmd)
}

func runChat(cmd *cobra.Command, _ []string) error {
	// Add panic recovery to get stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in chat view: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	if tracker != nil {
		tracker.Start(cmd.Context())
		defer tracker.Stop()
	}

	app := tui.NewApp(messageHandler)
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("chat view error: %w", err)
	}
	return nil
}

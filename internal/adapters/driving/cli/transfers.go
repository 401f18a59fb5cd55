package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/panseek/panseek/internal/core/domain"
)

var transfersJSON bool

var transfersCmd = &cobra.Command{
	Use:   "transfers",
	Short: "List tracked background transfers",
	Long: `Lists the transfer tasks in the registry, newest first. With the
SQLite journal enabled this covers past runs as well; otherwise it
shows the current process only.`,
	RunE: runTransfers,
}

func init() {
	transfersCmd.Flags().BoolVar(&transfersJSON, "json", false, "output tasks as JSON")
	rootCmd.AddCommand(transfersCmd)
}

func runTransfers(cmd *cobra.Command, _ []string) error {
	if transferMonitor == nil {
		return errors.New("transfer monitor not configured")
	}

	tasks, err := transferMonitor.ListTransfers(cmd.Context())
	if err != nil {
		return fmt.Errorf("list transfers: %w", err)
	}

	if transfersJSON {
		data, err := json.MarshalIndent(tasks, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal tasks: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	if len(tasks) == 0 {
		cmd.Println("No tracked transfers.")
		return nil
	}

	for _, task := range tasks {
		cmd.Printf("%s  %-12s  %s -> %s", task.StartedAt.Format("2006-01-02 15:04:05"), task.Status, task.Title, task.DestPath)
		if task.Status == domain.TransferFailed && task.Error != "" {
			cmd.Printf("  (%s)", task.Error)
		}
		cmd.Println()
	}
	cmd.Printf("\n%d tasks\n", len(tasks))
	return nil
}

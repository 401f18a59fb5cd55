package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/panseek/panseek/internal/core/domain"
)

var (
	searchLimit int
	searchJSON  bool
)

var searchCmd = &cobra.Command{
	Use:   "search [keyword]",
	Short: "Run a one-shot netdisk search",
	Long: `Searches the aggregated gateway once and prints the grouped
result list, without touching any chat session. Quark and baidu
results are interleaved in blocks of five, the same order a chat
user sees.`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "n", 0, "maximum number of results (0 = all)")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	keyword := args[0]

	if searchService == nil {
		return errors.New("search service not configured")
	}

	results, err := searchService.Search(cmd.Context(), keyword)
	if err != nil {
		if errors.Is(err, domain.ErrEmptyKeyword) {
			return errors.New("keyword must not be empty")
		}
		return fmt.Errorf("search failed: %w", err)
	}
	if searchLimit > 0 && len(results) > searchLimit {
		results = results[:searchLimit]
	}

	if searchJSON {
		return outputSearchJSON(cmd, results)
	}
	return outputSearchTable(cmd, keyword, results)
}

func outputSearchJSON(cmd *cobra.Command, results []domain.ResultItem) error {
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputSearchTable(cmd *cobra.Command, keyword string, results []domain.ResultItem) error {
	if len(results) == 0 {
		cmd.Printf("No results for %q.\n", keyword)
		return nil
	}

	cmd.Printf("Results for %q:\n\n", keyword)
	for i, item := range results {
		cmd.Printf("%3d. %s [%s]\n", i+1, item.Title, item.Backend)
		cmd.Printf("     %s", item.RawLink)
		if item.AccessCode != "" {
			cmd.Printf("  (code: %s)", item.AccessCode)
		}
		cmd.Println()
	}
	cmd.Printf("\n%d results\n", len(results))
	return nil
}

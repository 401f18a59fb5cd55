package cli

import (
	"bufio"
	"fmt"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"github.com/panseek/panseek/internal/logger"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the message handler over a stdio line protocol",
	Long: `Runs the dispatcher behind a line protocol for chat bridges.

Each inbound line is "<owner-id>\t<text>"; a line without a tab is
treated as owner "default". Each reply is written as
"<owner-id>\t<text>" with newlines inside the text escaped as "\n".

Lines are handled concurrently, the way a chat host delivers
messages: two quick messages from one user may race, which the
session store is built to tolerate.`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	if tracker != nil {
		tracker.Start(ctx)
		defer tracker.Stop()
	}

	stop, err := watchConfig()
	if err != nil {
		logger.Warn("Serve: config watch unavailable: %v", err)
	} else {
		defer stop()
	}

	var outMu sync.Mutex
	emit := func(ownerID, text string) {
		outMu.Lock()
		defer outMu.Unlock()
		escaped := strings.ReplaceAll(text, "\n", `\n`)
		fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", ownerID, escaped)
	}

	var wg sync.WaitGroup
	scanner := bufio.NewScanner(cmd.InOrStdin())
	scanner.Buffer(make([]byte, 0, 64*1024), 64*1024)

	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}

		ownerID, text := "default", line
		if i := strings.IndexByte(line, '\t'); i >= 0 {
			ownerID, text = line[:i], line[i+1:]
		}

		wg.Add(1)
		go func(ownerID, text string) {
			defer wg.Done()
			err := messageHandler.HandleMessage(ctx, ownerID, text, func(reply string) {
				emit(ownerID, reply)
			})
			if err != nil {
				logger.Warn("Serve: handler error for %s: %v", ownerID, err)
			}
		}(ownerID, text)
	}

	wg.Wait()
	return scanner.Err()
}

// watchConfig pushes config file changes into the dispatcher.
func watchConfig() (func(), error) {
	if store == nil || dispatcher == nil {
		return func() {}, nil
	}
	return store.Watch(dispatcher.UpdateConfig)
}

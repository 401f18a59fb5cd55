// Command panseek runs the netdisk search bot engine: the stdio
// bridge, the local chat view, one-shot search, and the MCP server.
package main

import (
	"os"

	"github.com/panseek/panseek/internal/adapters/driving/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}

// Package main is the entry point for the corekit CLI.
package main

import (
	"os"

	"github.com/thoreinstein/corekit/cmd/corekit/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}

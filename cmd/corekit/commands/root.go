// Package commands implements the CLI commands for corekit.
package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/corekit/applog"
	"github.com/thoreinstein/corekit/cmd"
)

// debug holds the value of the -d/--debug flag.
var debug bool

// quiet holds the value of the -q/--quiet flag.
var quiet bool

// logFile holds the path to the optional JSON log file.
var logFile string

// logCloser releases the log file after command execution.
var logCloser io.Closer

func init() {
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false,
		"enable debug-level tracing of file operations")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false,
		"suppress non-error output")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "",
		"write logs to file in JSON format")

	rootCmd.Version = cmd.Version
	rootCmd.SetVersionTemplate("corekit version {{.Version}}\n")

	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
}

var rootCmd = &cobra.Command{
	Use:   "corekit",
	Short: "Utilities for layered configuration files",
	Long: `corekit works with layered configuration files: it converts between
JSON, XML, YAML, TOML, and key=value text, reads merged settings views,
hashes files, probes hosts, and manages numbered backup chains.`,
	Example: `  # Re-encode a JSON config as YAML
  corekit convert --from json --to yaml app.json app.yaml

  # Read a key from a merged system/user settings view
  corekit get --system /etc/app/config.yaml --user ~/.config/app/config.yaml server

  # Divert a file into its backup chain
  corekit backup app.yaml`,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		if quiet {
			applog.Discard()
			return nil
		}
		closer, err := applog.Setup(debug, logFile)
		if err != nil {
			return err
		}
		logCloser = closer
		return nil
	},
	PersistentPostRun: func(_ *cobra.Command, _ []string) {
		if logCloser != nil {
			logCloser.Close()
		}
	},
}

// Execute runs the root command, printing the failure before reporting it
// to main.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return err
}

package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/corekit/format"
	"github.com/thoreinstein/corekit/settings"
)

var (
	getSystemPath string
	getUserPath   string
	getFormat     string
)

func init() {
	getCmd.Flags().StringVar(&getSystemPath, "system", "", "system-level settings file")
	getCmd.Flags().StringVar(&getUserPath, "user", "", "user-level settings file")
	getCmd.Flags().StringVar(&getFormat, "format", "yaml", "settings file format")
	rootCmd.AddCommand(getCmd)
}

var getCmd = &cobra.Command{
	Use:   "get [KEY]",
	Short: "Read a key from a merged settings view",
	Long: `Get merges the system-level file, then the user-level file, user values
winning, and prints the value bound to KEY. Missing files contribute
nothing. Without KEY the whole merged view is printed as the chosen
format.`,
	Example: `  corekit get --system /etc/app/config.yaml --user ~/.config/app/config.yaml server
  corekit get --user ~/.config/app/config.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runGet,
}

func runGet(_ *cobra.Command, args []string) error {
	return runGetWithWriter(os.Stdout, args)
}

func runGetWithWriter(w io.Writer, args []string) error {
	view, err := settings.Read(getSystemPath, getUserPath, format.Format(getFormat))
	if err != nil {
		return err
	}

	if len(args) == 0 {
		text, err := format.Encode(format.Format(getFormat), view, nil)
		if err != nil {
			return err
		}
		fmt.Fprint(w, text)
		return nil
	}

	value, ok := view[args[0]]
	if !ok {
		return errors.Newf("key %q not present in merged view", args[0])
	}
	fmt.Fprintf(w, "%v\n", value)
	return nil
}

package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/corekit/fops"
	"github.com/thoreinstein/corekit/format"
)

var (
	convertFrom   string
	convertTo     string
	convertBackup bool
)

func init() {
	convertCmd.Flags().StringVar(&convertFrom, "from", "", "source format: json, xml, yaml, toml, kv")
	convertCmd.Flags().StringVar(&convertTo, "to", "", "destination format: json, xml, yaml, toml, kv")
	convertCmd.Flags().BoolVar(&convertBackup, "backup", false, "back up the destination before writing")
	convertCmd.MarkFlagRequired("from")
	convertCmd.MarkFlagRequired("to")
	rootCmd.AddCommand(convertCmd)
}

var convertCmd = &cobra.Command{
	Use:   "convert --from FORMAT --to FORMAT SOURCE DEST",
	Short: "Re-encode a configuration file in another format",
	Long: `Convert reads SOURCE in one format and writes DEST in another.

Output line endings are normalized to a single newline style with exactly
one trailing newline. With --backup, an existing DEST is first renamed
into its numbered backup chain (DEST.bak, DEST.bak.1, ...).`,
	Example: `  corekit convert --from json --to yaml app.json app.yaml
  corekit convert --from kv --to toml legacy.conf app.toml --backup`,
	Args: cobra.ExactArgs(2),
	RunE: runConvert,
}

func runConvert(_ *cobra.Command, args []string) error {
	return runConvertWithWriter(os.Stdout, args[0], args[1])
}

func runConvertWithWriter(w io.Writer, source, dest string) error {
	reg := format.Default()

	data, err := fops.ReadConvert(reg, source, format.Format(convertFrom), false, nil)
	if err != nil {
		return err
	}
	if err := fops.WriteConvert(reg, dest, format.Format(convertTo), data, nil, convertBackup); err != nil {
		return err
	}

	fmt.Fprintf(w, "converted %s (%s) to %s (%s)\n", source, convertFrom, dest, convertTo)
	return nil
}

package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/corekit/fops"
)

func init() {
	rootCmd.AddCommand(backupCmd)
}

var backupCmd = &cobra.Command{
	Use:   "backup PATH",
	Short: "Divert a file into its numbered backup chain",
	Long: `Backup renames PATH to the first unused name in its backup chain:
PATH.bak, then PATH.bak.1, PATH.bak.2, and so on. Existing backups are
never overwritten. A missing PATH is a no-op.`,
	Example: `  corekit backup app.yaml`,
	Args:    cobra.ExactArgs(1),
	RunE:    runBackup,
}

func runBackup(_ *cobra.Command, args []string) error {
	return runBackupWithWriter(os.Stdout, args[0])
}

func runBackupWithWriter(w io.Writer, path string) error {
	target, err := fops.BackupPath(path)
	if err != nil {
		return err
	}
	if target == "" {
		fmt.Fprintf(w, "%s does not exist, nothing to back up\n", path)
		return nil
	}
	fmt.Fprintf(w, "backed up %s to %s\n", path, target)
	return nil
}

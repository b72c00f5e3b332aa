package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/corekit/hashutil"
)

var hashAlgo string

func init() {
	hashCmd.Flags().StringVar(&hashAlgo, "algo", "sha256", "digest algorithm: md5, sha256, base64")
	rootCmd.AddCommand(hashCmd)
}

var hashCmd = &cobra.Command{
	Use:   "hash FILE",
	Short: "Print a digest of a file",
	Example: `  corekit hash app.yaml
  corekit hash --algo md5 app.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runHash,
}

func runHash(_ *cobra.Command, args []string) error {
	return runHashWithWriter(os.Stdout, args[0])
}

func runHashWithWriter(w io.Writer, path string) error {
	var (
		digest string
		err    error
	)
	switch hashAlgo {
	case "md5":
		digest, err = hashutil.MD5(path)
	case "sha256":
		digest, err = hashutil.SHA256(path)
	case "base64":
		digest, err = hashutil.EncodeBase64(path)
	default:
		return errors.Newf("unknown algorithm %q", hashAlgo)
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "%s  %s\n", digest, path)
	return nil
}

package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/corekit/netprobe"
)

var pingTimeout time.Duration

func init() {
	pingCmd.Flags().DurationVar(&pingTimeout, "timeout", 5*time.Second, "probe timeout")
	rootCmd.AddCommand(pingCmd)
}

var pingCmd = &cobra.Command{
	Use:   "ping HOST",
	Short: "Check whether a host answers an ICMP echo",
	Long: `Ping sends a single ICMP echo to HOST and reports whether it answered.
Hosts that drop ICMP are reported as down. When HOST is an IP address its
version is printed alongside the result.`,
	Args: cobra.ExactArgs(1),
	RunE: runPing,
}

func runPing(cmd *cobra.Command, args []string) error {
	return runPingWithWriter(cmd, os.Stdout, args[0])
}

func runPingWithWriter(cmd *cobra.Command, w io.Writer, host string) error {
	if v := netprobe.AddressVersion(host); v != 0 {
		fmt.Fprintf(w, "%s is an IPv%d address\n", host, v)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if netprobe.HostIsUp(ctx, host) {
		fmt.Fprintf(w, "%s is up\n", host)
		return nil
	}
	fmt.Fprintf(w, "%s is down\n", host)
	return nil
}

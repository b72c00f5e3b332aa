// Package netprobe provides basic network reachability and address checks.
package netprobe

import (
	"context"
	"log/slog"
	"net/netip"
	"os/exec"
	"runtime"
)

// AddressVersion reports the IP version of address: 4 for IPv4, 6 for
// IPv6, or 0 when address is not a valid IP address at all.
func AddressVersion(address string) int {
	addr, err := netip.ParseAddr(address)
	if err != nil {
		slog.Warn("not a valid IP address", "address", address)
		return 0
	}
	if addr.Is4() || addr.Is4In6() {
		return 4
	}
	return 6
}

// HostIsUp sends a single ICMP echo to address using the system ping
// command and reports whether the host answered. Hosts that drop ICMP will
// be reported as down. The context bounds the probe.
func HostIsUp(ctx context.Context, address string) bool {
	countFlag := "-c"
	if runtime.GOOS == "windows" {
		countFlag = "-n"
	}

	cmd := exec.CommandContext(ctx, "ping", countFlag, "1", address)
	slog.Debug("pinging host", "address", address)
	return cmd.Run() == nil
}

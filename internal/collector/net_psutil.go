//go:build darwin || windows

package collector

import (
	"context"
	"fmt"

	psnet "github.com/shirou/gopsutil/v4/net"

	"github.com/nhdewitt/hostsnap/internal/netrate"
)

func collectCounters(ctx context.Context) (netrate.Reading, error) {
	counters, err := psnet.IOCountersWithContext(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("reading interface counters: %w", err)
	}

	ifaces, err := psnet.InterfacesWithContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing interfaces: %w", err)
	}

	up := make(map[string]bool, len(ifaces))
	for _, ifc := range ifaces {
		up[ifc.Name] = hasFlag(ifc.Flags, "up")
	}

	// Nominal link speed is not exposed on these platforms; SpeedMbps
	// stays nil.
	reading := make(netrate.Reading, len(counters))
	for _, c := range counters {
		reading[c.Name] = netrate.InterfaceCounters{
			Up:      up[c.Name],
			RxBytes: c.BytesRecv,
			TxBytes: c.BytesSent,
		}
	}

	return reading, nil
}

func hasFlag(flags []string, want string) bool {
	for _, f := range flags {
		if f == want {
			return true
		}
	}
	return false
}

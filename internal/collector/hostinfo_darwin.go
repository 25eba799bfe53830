//go:build darwin

package collector

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/shirou/gopsutil/v4/host"
	"golang.org/x/sys/unix"

	"github.com/nhdewitt/hostsnap/internal/snapshot"
)

func collectHostInfo(ctx context.Context) (snapshot.HostInfo, error) {
	hostname, err := os.Hostname()
	if err != nil {
		return snapshot.HostInfo{}, fmt.Errorf("reading hostname: %w", err)
	}

	info := snapshot.HostInfo{
		Hostname:     hostname,
		FQDN:         resolveFQDN(ctx, hostname),
		OSName:       "macOS",
		Machine:      runtime.GOARCH,
		LogicalCPUs:  logicalCPUs(),
		PhysicalCPUs: physicalCPUs(),
	}

	hi, err := host.InfoWithContext(ctx)
	if err != nil {
		return snapshot.HostInfo{}, fmt.Errorf("reading host info: %w", err)
	}

	info.OSVersion = hi.PlatformVersion
	info.Kernel = hi.KernelVersion
	if hi.KernelArch != "" {
		info.Machine = hi.KernelArch
	}
	if hi.BootTime > 0 {
		info.BootTime = time.Unix(int64(hi.BootTime), 0)
	}

	return info, nil
}

func logicalCPUs() int {
	if n, err := unix.SysctlUint32("hw.logicalcpu"); err == nil && n > 0 {
		return int(n)
	}
	return runtime.NumCPU()
}

func physicalCPUs() *int {
	n, err := unix.SysctlUint32("hw.physicalcpu")
	if err != nil || n == 0 {
		return nil
	}

	v := int(n)
	return &v
}

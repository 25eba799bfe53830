//go:build windows

package collector

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/yusufpapurcu/wmi"
	"golang.org/x/sys/windows/registry"

	"github.com/nhdewitt/hostsnap/internal/snapshot"
)

// Win32_OperatingSystem maps to the WMI class of the same name. The
// field names tell the library which properties to load.
type Win32_OperatingSystem struct {
	Caption        string
	Version        string
	LastBootUpTime time.Time
}

// Win32_Processor maps to the WMI class of the same name, one row per
// socket.
type Win32_Processor struct {
	NumberOfCores             uint32
	NumberOfLogicalProcessors uint32
}

func collectHostInfo(ctx context.Context) (snapshot.HostInfo, error) {
	hostname, err := os.Hostname()
	if err != nil {
		return snapshot.HostInfo{}, fmt.Errorf("reading hostname: %w", err)
	}

	info := snapshot.HostInfo{
		Hostname: hostname,
		FQDN:     resolveFQDN(ctx, hostname),
		OSName:   "Windows",
		Machine:  runtime.GOARCH,
		Kernel:   kernelBuild(),
	}

	var osRows []Win32_OperatingSystem
	if err := wmi.Query(wmi.CreateQuery(&osRows, ""), &osRows); err == nil && len(osRows) > 0 {
		if caption := strings.TrimSpace(osRows[0].Caption); caption != "" {
			info.OSName = caption
		}
		info.OSVersion = osRows[0].Version
		info.BootTime = osRows[0].LastBootUpTime
	}

	var cpuRows []Win32_Processor
	if err := wmi.Query(wmi.CreateQuery(&cpuRows, ""), &cpuRows); err == nil && len(cpuRows) > 0 {
		var logical, physical int
		for _, p := range cpuRows {
			logical += int(p.NumberOfLogicalProcessors)
			physical += int(p.NumberOfCores)
		}
		info.LogicalCPUs = logical
		if physical > 0 {
			info.PhysicalCPUs = &physical
		}
	}

	if info.LogicalCPUs == 0 {
		info.LogicalCPUs = runtime.NumCPU()
	}

	return info, nil
}

func kernelBuild() (build string) {
	k, err := registry.OpenKey(registry.LOCAL_MACHINE,
		`SOFTWARE\Microsoft\Windows NT\CurrentVersion`, registry.QUERY_VALUE)
	if err != nil {
		return build
	}
	defer k.Close()

	build, _, _ = k.GetStringValue("CurrentBuildNumber")

	return build
}

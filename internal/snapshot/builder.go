package snapshot

import (
	"context"
	"time"

	"github.com/nhdewitt/hostsnap/internal/analysis"
	"github.com/nhdewitt/hostsnap/internal/netrate"
)

// HostInfoSource reports the machine's identity.
type HostInfoSource interface {
	HostInfo(ctx context.Context) (HostInfo, error)
}

// CPUSource samples CPU busy percent over the window and reads the load
// averages where the platform has them. The window wait blocks; ctx
// cancellation aborts it.
type CPUSource interface {
	CPUSample(ctx context.Context, window time.Duration) (CPUSample, error)
}

// MemorySource reads physical memory and swap usage.
type MemorySource interface {
	Memory(ctx context.Context) (MemoryStats, error)
}

// DiskSource reads filesystem usage for one path.
type DiskSource interface {
	Usage(ctx context.Context, path string) (DiskStats, error)
}

// RouteSource names the interface the default route leaves through.
// false means the routing table named none, which is an answer, not an
// error.
type RouteSource interface {
	DefaultInterface(ctx context.Context) (string, bool)
}

// ContainerSource lists running containers when a daemon is reachable.
type ContainerSource interface {
	Containers(ctx context.Context) ([]ContainerInfo, error)
}

// ProcessSource counts processes on the host.
type ProcessSource interface {
	ProcessCount(ctx context.Context) (int, error)
}

// Sources holds the collaborators a snapshot is assembled from. Route,
// Containers, and Processes are optional; leaving one nil marks its
// section absent rather than failing the build.
type Sources struct {
	Host       HostInfoSource
	CPU        CPUSource
	Memory     MemorySource
	Disk       DiskSource
	Counters   netrate.CounterSource
	Route      RouteSource
	Containers ContainerSource
	Processes  ProcessSource
}

// Config carries the per-cycle collection parameters.
type Config struct {
	DiskPath   string
	CPUWindow  time.Duration
	NetWindow  time.Duration
	Exclusions netrate.Exclusions
}

// Build runs one complete collection cycle and assembles the snapshot.
// Collaborator failures are caught here, at the boundary: a failed probe
// leaves its section absent with the failure recorded as the note, and
// the rest of the snapshot is unaffected. The only error Build itself
// returns is ctx cancellation, so a shutdown signal arriving mid-cycle
// surfaces instead of masquerading as a row of absent metrics.
func Build(ctx context.Context, src Sources, cfg Config) (Snapshot, error) {
	snap := Snapshot{TakenAt: time.Now()}

	host, err := src.Host.HostInfo(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return Snapshot{}, ctx.Err()
		}
		snap.Host = Absent[HostInfo]("host info: " + err.Error())
		snap.UptimeSeconds = Absent[uint64]("host info unavailable")
	} else {
		snap.Host = Present(host)
		snap.SMT = analysis.SMT(analysis.CPUCapacity{
			Logical:  host.LogicalCPUs,
			Physical: host.PhysicalCPUs,
		})
		if host.BootTime.IsZero() || snap.TakenAt.Before(host.BootTime) {
			snap.UptimeSeconds = Absent[uint64]("boot time unavailable")
		} else {
			snap.UptimeSeconds = Present(uint64(snap.TakenAt.Sub(host.BootTime).Seconds()))
		}
	}

	cpu, err := src.CPU.CPUSample(ctx, cfg.CPUWindow)
	if err != nil {
		if ctx.Err() != nil {
			return Snapshot{}, ctx.Err()
		}
		snap.CPU = Absent[CPUSample]("cpu sample: " + err.Error())
	} else {
		var load1 *float64
		if cpu.Load != nil {
			load1 = &cpu.Load.Load1
		}
		cpu.LoadPerCPU = analysis.NormalizeLoad(load1, hostLogical(snap.Host))
		cpu.Health = analysis.Classify(cpu.BusyPercent, cpu.LoadPerCPU)
		snap.CPU = Present(cpu)
	}

	mem, err := src.Memory.Memory(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return Snapshot{}, ctx.Err()
		}
		snap.Memory = Absent[MemoryStats]("memory: " + err.Error())
	} else {
		snap.Memory = Present(mem)
	}

	disk, err := src.Disk.Usage(ctx, cfg.DiskPath)
	if err != nil {
		if ctx.Err() != nil {
			return Snapshot{}, ctx.Err()
		}
		snap.Disk = Absent[DiskStats]("disk " + cfg.DiskPath + ": " + err.Error())
	} else {
		snap.Disk = Present(disk)
	}

	net, err := netrate.SampleRates(ctx, src.Counters, cfg.NetWindow)
	if err != nil {
		if ctx.Err() != nil {
			return Snapshot{}, ctx.Err()
		}
		snap.Network = Absent[netrate.Snapshot]("network sample: " + err.Error())
		snap.Uplink = Absent[netrate.InterfaceRate]("no network sample")
	} else {
		snap.Network = Present(net)

		var route string
		var routeOK bool
		if src.Route != nil {
			route, routeOK = src.Route.DefaultInterface(ctx)
		}
		if uplink, ok := netrate.SelectUplink(net, route, routeOK, cfg.Exclusions); ok {
			snap.Uplink = Present(uplink)
		} else {
			snap.Uplink = Absent[netrate.InterfaceRate]("no uplink identified")
		}
	}

	if src.Processes == nil {
		snap.Processes = Absent[int]("probe disabled")
	} else if n, err := src.Processes.ProcessCount(ctx); err != nil {
		if ctx.Err() != nil {
			return Snapshot{}, ctx.Err()
		}
		snap.Processes = Absent[int]("process count: " + err.Error())
	} else {
		snap.Processes = Present(n)
	}

	if src.Containers == nil {
		snap.Containers = Absent[[]ContainerInfo]("probe disabled")
	} else if list, err := src.Containers.Containers(ctx); err != nil {
		if ctx.Err() != nil {
			return Snapshot{}, ctx.Err()
		}
		snap.Containers = Absent[[]ContainerInfo]("containers: " + err.Error())
	} else {
		snap.Containers = Present(list)
	}

	return snap, nil
}

func hostLogical(host Field[HostInfo]) int {
	if !host.OK {
		return 0
	}
	return host.Value.LogicalCPUs
}

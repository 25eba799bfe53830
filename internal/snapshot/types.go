// Package snapshot assembles one point-in-time view of the host. A
// Snapshot is built fresh each cycle, handed to the renderer, and
// discarded; nothing in it is shared or mutated afterwards.
package snapshot

import (
	"time"

	"github.com/nhdewitt/hostsnap/internal/analysis"
	"github.com/nhdewitt/hostsnap/internal/netrate"
)

// Field carries a metric that may be legitimately absent. OK false means
// the value could not be determined on this host right now; Note says
// why, in a form fit for display. An absent metric is never coerced to a
// zero value, because zero is a real measurement for almost everything
// collected here.
type Field[T any] struct {
	Value T
	OK    bool
	Note  string
}

// Present wraps a successfully collected value.
func Present[T any](v T) Field[T] {
	return Field[T]{Value: v, OK: true}
}

// Absent marks a value that could not be collected, with the reason.
func Absent[T any](note string) Field[T] {
	return Field[T]{Note: note}
}

// HostInfo is the slow-changing identity of the machine.
type HostInfo struct {
	Hostname     string
	FQDN         string
	OSName       string
	OSVersion    string
	Kernel       string
	Machine      string
	LogicalCPUs  int
	PhysicalCPUs *int // nil when the physical core count is unknown
	BootTime     time.Time
}

// CPUSample is the CPU view over one sampling window. BusyPercent and
// Load come from the collector; LoadPerCPU and Health are derived during
// assembly. Load is nil on platforms without load averages.
type CPUSample struct {
	BusyPercent float64
	Load        *analysis.LoadSample
	LoadPerCPU  *float64
	Health      analysis.Health
}

// MemoryStats covers physical memory and swap in bytes.
type MemoryStats struct {
	Total       uint64
	Used        uint64
	Available   uint64
	UsedPercent float64
	SwapTotal   uint64
	SwapUsed    uint64
	SwapFree    uint64
	SwapPercent float64
}

// DiskStats is the usage of one mounted filesystem.
type DiskStats struct {
	Path        string
	Total       uint64
	Used        uint64
	Free        uint64
	UsedPercent float64
}

// ContainerInfo is one running container as reported by the local daemon.
type ContainerInfo struct {
	Name  string
	Image string
	State string
}

// Snapshot is the complete result of one collection cycle. Every section
// stands alone: a probe that failed leaves its Field absent with a note
// and the rest of the snapshot intact.
type Snapshot struct {
	TakenAt time.Time

	Host          Field[HostInfo]
	SMT           analysis.SMTStatus
	UptimeSeconds Field[uint64]

	CPU     Field[CPUSample]
	Memory  Field[MemoryStats]
	Disk    Field[DiskStats]
	Network Field[netrate.Snapshot]
	Uplink  Field[netrate.InterfaceRate]

	Processes  Field[int]
	Containers Field[[]ContainerInfo]
}

// Package collector implements the snapshot source interfaces with the
// local operating system's facilities. Each platform gets its own files
// behind build tags; the exported surface is identical everywhere, and
// anything a platform cannot answer comes back as an explicit error or
// absence rather than a fabricated zero.
package collector

import (
	"context"
	"time"

	"github.com/nhdewitt/hostsnap/internal/netrate"
	"github.com/nhdewitt/hostsnap/internal/snapshot"
)

// System reads host telemetry from the running OS. The zero value is
// ready to use.
type System struct{}

func NewSystem() System { return System{} }

func (System) HostInfo(ctx context.Context) (snapshot.HostInfo, error) {
	return collectHostInfo(ctx)
}

func (System) CPUSample(ctx context.Context, window time.Duration) (snapshot.CPUSample, error) {
	return collectCPU(ctx, window)
}

func (System) Memory(ctx context.Context) (snapshot.MemoryStats, error) {
	return collectMemory(ctx)
}

func (System) Usage(ctx context.Context, path string) (snapshot.DiskStats, error) {
	return collectDisk(ctx, path)
}

func (System) Counters(ctx context.Context) (netrate.Reading, error) {
	return collectCounters(ctx)
}

func (System) DefaultInterface(ctx context.Context) (string, bool) {
	return defaultRoute(ctx)
}

func (System) ProcessCount(ctx context.Context) (int, error) {
	return countProcesses(ctx)
}

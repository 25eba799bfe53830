//go:build darwin || windows

package collector

import (
	"context"
	"fmt"
	"log"

	"github.com/shirou/gopsutil/v4/mem"

	"github.com/nhdewitt/hostsnap/internal/snapshot"
)

func collectMemory(ctx context.Context) (snapshot.MemoryStats, error) {
	v, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return snapshot.MemoryStats{}, fmt.Errorf("reading virtual memory: %w", err)
	}

	s, err := mem.SwapMemoryWithContext(ctx)
	if err != nil {
		log.Printf("failed to read swap stats: %v", err)
		s = &mem.SwapMemoryStat{}
	}

	return snapshot.MemoryStats{
		Total:       v.Total,
		Used:        v.Used,
		Available:   v.Available,
		UsedPercent: percent(v.Used, v.Total),
		SwapTotal:   s.Total,
		SwapUsed:    s.Used,
		SwapFree:    s.Free,
		SwapPercent: percent(s.Used, s.Total),
	}, nil
}

//go:build darwin

package collector

import (
	"context"
	"fmt"
	"time"

	"github.com/shirou/gopsutil/v4/load"

	"github.com/nhdewitt/hostsnap/internal/analysis"
	"github.com/nhdewitt/hostsnap/internal/snapshot"
)

func collectCPU(ctx context.Context, window time.Duration) (snapshot.CPUSample, error) {
	busy, err := sampleBusyPercent(ctx, window)
	if err != nil {
		return snapshot.CPUSample{}, err
	}

	avg, err := load.AvgWithContext(ctx)
	if err != nil {
		return snapshot.CPUSample{}, fmt.Errorf("reading load averages: %w", err)
	}

	return snapshot.CPUSample{
		BusyPercent: busy,
		Load: &analysis.LoadSample{
			Load1:  avg.Load1,
			Load5:  avg.Load5,
			Load15: avg.Load15,
		},
	}, nil
}

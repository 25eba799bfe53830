//go:build darwin || windows

package collector

import (
	"context"
	"fmt"
	"time"

	"github.com/shirou/gopsutil/v4/cpu"
)

// sampleBusyPercent takes two aggregate CPU time readings separated by
// the window and derives busy time from the delta. The wait selects on
// ctx so cancellation is honored mid-window; gopsutil's own interval
// sampling would sleep through it.
func sampleBusyPercent(ctx context.Context, window time.Duration) (float64, error) {
	first, err := cpu.TimesWithContext(ctx, false)
	if err != nil {
		return 0, fmt.Errorf("reading cpu times: %w", err)
	}
	if len(first) == 0 {
		return 0, fmt.Errorf("no aggregate cpu times reported")
	}

	timer := time.NewTimer(window)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return 0, ctx.Err()
	case <-timer.C:
	}

	second, err := cpu.TimesWithContext(ctx, false)
	if err != nil {
		return 0, fmt.Errorf("reading cpu times: %w", err)
	}
	if len(second) == 0 {
		return 0, fmt.Errorf("no aggregate cpu times reported")
	}

	return busyFromTimes(first[0], second[0]), nil
}

func busyFromTimes(first, second cpu.TimesStat) float64 {
	totalDelta := totalTime(second) - totalTime(first)
	idleDelta := second.Idle - first.Idle

	if totalDelta <= 0 {
		return 0.0
	}

	busy := totalDelta - idleDelta
	if busy < 0 {
		busy = 0
	}

	return busy / totalDelta * 100.0
}

// Guest time is already folded into User by the platforms that report
// it, so it is not added here.
func totalTime(t cpu.TimesStat) float64 {
	return t.User + t.System + t.Idle + t.Nice + t.Iowait + t.Irq + t.Softirq + t.Steal
}

// Package netrate derives per-interface transfer rates from two readings of
// the kernel's cumulative byte counters, and picks the interface most likely
// to be the host's uplink. The rate math is pure; only SampleRates touches
// the clock, and only for the wait between the two readings.
package netrate

import (
	"context"
	"fmt"
	"sort"
	"time"
)

// InterfaceCounters is one interface's cumulative counters and link state
// at a single reading.
type InterfaceCounters struct {
	Up        bool
	SpeedMbps *int // nil when the kernel reports no nominal link speed
	RxBytes   uint64
	TxBytes   uint64
}

// Reading is one coherent pass over every interface on the host, keyed by
// interface name.
type Reading map[string]InterfaceCounters

// InterfaceRate is the derived view of one interface over the sampling
// window. Link state, speed, and the cumulative counters come from the
// second reading. RxBps and TxBps can be negative when a counter reset
// (reboot, driver reload) lands inside the window; the value is reported
// as computed rather than masked.
type InterfaceRate struct {
	Name      string
	Up        bool
	SpeedMbps *int
	RxBps     float64
	TxBps     float64
	RxBytes   uint64
	TxBytes   uint64
}

// Snapshot is the result of one sampling pass. Interfaces are ordered
// up-first, then by descending combined rate, then by name, so renderers
// can print them as-is. Totals cover only interfaces that were up at the
// second reading.
type Snapshot struct {
	SampleSeconds float64
	TotalRxBps    float64
	TotalTxBps    float64
	Interfaces    []InterfaceRate
}

// Compute derives per-interface rates from two readings taken
// sampleSeconds apart. Non-positive windows are clamped to 0.1s so a
// misconfigured caller gets large-but-finite rates instead of a division
// by zero. Only interfaces present in both readings produce a rate;
// anything that appeared or vanished between the two passes is dropped.
func Compute(first, second Reading, sampleSeconds float64) Snapshot {
	if sampleSeconds <= 0 {
		sampleSeconds = 0.1
	}

	rates := make([]InterfaceRate, 0, len(second))
	var totalRx, totalTx float64

	for name, cur := range second {
		prev, ok := first[name]
		if !ok {
			continue
		}

		rx := (float64(cur.RxBytes) - float64(prev.RxBytes)) / sampleSeconds
		tx := (float64(cur.TxBytes) - float64(prev.TxBytes)) / sampleSeconds

		rates = append(rates, InterfaceRate{
			Name:      name,
			Up:        cur.Up,
			SpeedMbps: cur.SpeedMbps,
			RxBps:     rx,
			TxBps:     tx,
			RxBytes:   cur.RxBytes,
			TxBytes:   cur.TxBytes,
		})

		if cur.Up {
			totalRx += rx
			totalTx += tx
		}
	}

	sort.Slice(rates, func(i, j int) bool {
		a, b := rates[i], rates[j]
		if a.Up != b.Up {
			return a.Up
		}
		at, bt := a.RxBps+a.TxBps, b.RxBps+b.TxBps
		if at != bt {
			return at > bt
		}
		return a.Name < b.Name
	})

	return Snapshot{
		SampleSeconds: sampleSeconds,
		TotalRxBps:    totalRx,
		TotalTxBps:    totalTx,
		Interfaces:    rates,
	}
}

// CounterSource provides one coherent reading of every interface's
// cumulative counters and link state.
type CounterSource interface {
	Counters(ctx context.Context) (Reading, error)
}

// SampleRates takes two counter readings separated by the sampling window
// and derives transfer rates from the difference. The wait between the
// readings is intentional and blocking; cancelling ctx aborts it.
func SampleRates(ctx context.Context, src CounterSource, window time.Duration) (Snapshot, error) {
	first, err := src.Counters(ctx)
	if err != nil {
		return Snapshot{}, fmt.Errorf("reading interface counters: %w", err)
	}

	timer := time.NewTimer(window)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return Snapshot{}, ctx.Err()
	case <-timer.C:
	}

	second, err := src.Counters(ctx)
	if err != nil {
		return Snapshot{}, fmt.Errorf("reading interface counters: %w", err)
	}

	return Compute(first, second, window.Seconds()), nil
}

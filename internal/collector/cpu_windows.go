//go:build windows

package collector

import (
	"context"
	"time"

	"github.com/nhdewitt/hostsnap/internal/snapshot"
)

func collectCPU(ctx context.Context, window time.Duration) (snapshot.CPUSample, error) {
	busy, err := sampleBusyPercent(ctx, window)
	if err != nil {
		return snapshot.CPUSample{}, err
	}

	// Windows has no load averages. Load stays nil so the reading shows
	// up as absent instead of a fabricated zero.
	return snapshot.CPUSample{BusyPercent: busy}, nil
}

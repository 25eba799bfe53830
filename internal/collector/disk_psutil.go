//go:build darwin || windows

package collector

import (
	"context"
	"fmt"

	"github.com/shirou/gopsutil/v4/disk"

	"github.com/nhdewitt/hostsnap/internal/snapshot"
)

func collectDisk(ctx context.Context, path string) (snapshot.DiskStats, error) {
	usage, err := disk.UsageWithContext(ctx, path)
	if err != nil {
		return snapshot.DiskStats{}, fmt.Errorf("disk usage %s: %w", path, err)
	}

	return snapshot.DiskStats{
		Path:        path,
		Total:       usage.Total,
		Used:        usage.Used,
		Free:        usage.Free,
		UsedPercent: usage.UsedPercent,
	}, nil
}

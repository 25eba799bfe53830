//go:build linux

package collector

import (
	"context"
	"fmt"

	"golang.org/x/sys/unix"

	"github.com/nhdewitt/hostsnap/internal/snapshot"
)

func collectDisk(ctx context.Context, path string) (snapshot.DiskStats, error) {
	var stat unix.Statfs_t
	if err := unix.Statfs(path, &stat); err != nil {
		return snapshot.DiskStats{}, fmt.Errorf("statfs %s: %w", path, err)
	}

	bsize := uint64(stat.Bsize)
	total := stat.Blocks * bsize
	free := stat.Bavail * bsize
	used := (stat.Blocks - stat.Bfree) * bsize

	return snapshot.DiskStats{
		Path:  path,
		Total: total,
		Used:  used,
		Free:  free,
		// Root-reserved blocks are excluded from the denominator, so 100%
		// here means full for an unprivileged writer.
		UsedPercent: percent(used, used+free),
	}, nil
}

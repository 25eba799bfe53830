//go:build darwin

package collector

import (
	"context"
	"fmt"

	"github.com/shirou/gopsutil/v4/host"
)

func countProcesses(ctx context.Context) (int, error) {
	info, err := host.InfoWithContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("reading host info: %w", err)
	}

	return int(info.Procs), nil
}

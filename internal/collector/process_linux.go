//go:build linux

package collector

import (
	"context"
	"fmt"
	"os"
	"strconv"
)

func countProcesses(ctx context.Context) (int, error) {
	entries, err := os.ReadDir("/proc")
	if err != nil {
		return 0, fmt.Errorf("reading /proc: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}

	return countNumericNames(names), nil
}

// countNumericNames counts the entries whose name is a plain PID number,
// which is exactly the set of processes under /proc.
func countNumericNames(names []string) int {
	count := 0
	for _, name := range names {
		if _, err := strconv.Atoi(name); err == nil {
			count++
		}
	}
	return count
}

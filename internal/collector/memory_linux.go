//go:build linux

package collector

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/nhdewitt/hostsnap/internal/snapshot"
)

type memRaw struct {
	Total     uint64
	Available uint64
	SwapTotal uint64
	SwapFree  uint64
}

func collectMemory(ctx context.Context) (snapshot.MemoryStats, error) {
	f, err := os.Open("/proc/meminfo")
	if err != nil {
		return snapshot.MemoryStats{}, fmt.Errorf("opening /proc/meminfo: %w", err)
	}
	defer f.Close()

	raw, err := parseMemInfoFrom(f)
	if err != nil {
		return snapshot.MemoryStats{}, err
	}

	used := raw.Total - raw.Available
	swapUsed := raw.SwapTotal - raw.SwapFree

	return snapshot.MemoryStats{
		Total:       raw.Total,
		Used:        used,
		Available:   raw.Available,
		UsedPercent: percent(used, raw.Total),
		SwapTotal:   raw.SwapTotal,
		SwapUsed:    swapUsed,
		SwapFree:    raw.SwapFree,
		SwapPercent: percent(swapUsed, raw.SwapTotal),
	}, nil
}

func parseMemInfoFrom(r io.Reader) (memRaw, error) {
	var raw memRaw

	targets := map[string]*uint64{
		"MemTotal":     &raw.Total,
		"MemAvailable": &raw.Available,
		"SwapTotal":    &raw.SwapTotal,
		"SwapFree":     &raw.SwapFree,
	}

	found := 0
	scanner := bufio.NewScanner(r)

	for scanner.Scan() && found < len(targets) {
		fields := strings.Fields(scanner.Text())
		if len(fields) < 2 {
			continue
		}

		key := strings.TrimSuffix(fields[0], ":")
		target, ok := targets[key]
		if !ok {
			continue
		}

		value, err := strconv.ParseUint(fields[1], 10, 64)
		if err != nil {
			return memRaw{}, fmt.Errorf("parsing %s: %w", key, err)
		}

		*target = value * 1024 // /proc/meminfo reports kB
		found++
	}

	if err := scanner.Err(); err != nil {
		return memRaw{}, fmt.Errorf("reading /proc/meminfo: %w", err)
	}
	if found < len(targets) {
		return memRaw{}, fmt.Errorf("missing fields in /proc/meminfo: found %d of %d", found, len(targets))
	}

	return raw, nil
}

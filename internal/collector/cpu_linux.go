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
	"time"

	"github.com/nhdewitt/hostsnap/internal/analysis"
	"github.com/nhdewitt/hostsnap/internal/snapshot"
)

// cpuRaw holds the aggregate jiffy counters from the "cpu" line of
// /proc/stat.
type cpuRaw struct {
	User    uint64
	Nice    uint64
	System  uint64
	Idle    uint64
	IOWait  uint64
	IRQ     uint64
	SoftIRQ uint64
	Steal   uint64
}

// Guest and GuestNice are already folded into User and Nice by the
// kernel, so they are not added here (that would double-count).
func (c cpuRaw) total() uint64 {
	return c.User + c.Nice + c.System + c.Idle + c.IOWait + c.IRQ + c.SoftIRQ + c.Steal
}

func (c cpuRaw) idleAll() uint64 {
	return c.Idle + c.IOWait
}

func collectCPU(ctx context.Context, window time.Duration) (snapshot.CPUSample, error) {
	first, err := readProcStat()
	if err != nil {
		return snapshot.CPUSample{}, fmt.Errorf("reading /proc/stat: %w", err)
	}

	timer := time.NewTimer(window)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return snapshot.CPUSample{}, ctx.Err()
	case <-timer.C:
	}

	second, err := readProcStat()
	if err != nil {
		return snapshot.CPUSample{}, fmt.Errorf("reading /proc/stat: %w", err)
	}

	load, err := parseLoadAvg()
	if err != nil {
		return snapshot.CPUSample{}, fmt.Errorf("reading /proc/loadavg: %w", err)
	}

	return snapshot.CPUSample{
		BusyPercent: busyPercent(first, second),
		Load:        load,
	}, nil
}

// busyPercent derives CPU busy time from two jiffy snapshots. A counter
// that moved backwards means the kernel restarted mid-window; the sample
// reports idle rather than garbage.
func busyPercent(first, second cpuRaw) float64 {
	if second.total() < first.total() || second.idleAll() < first.idleAll() {
		return 0.0
	}

	totalDelta := second.total() - first.total()
	idleDelta := second.idleAll() - first.idleAll()
	if totalDelta == 0 {
		return 0.0
	}

	return percent(totalDelta-idleDelta, totalDelta)
}

func readProcStat() (cpuRaw, error) {
	f, err := os.Open("/proc/stat")
	if err != nil {
		return cpuRaw{}, err
	}
	defer f.Close()

	return parseProcStatFrom(f)
}

func parseProcStatFrom(r io.Reader) (cpuRaw, error) {
	scanner := bufio.NewScanner(r)

	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(line, "cpu ") {
			return parseCPULine(line)
		}
	}

	if err := scanner.Err(); err != nil {
		return cpuRaw{}, err
	}
	return cpuRaw{}, fmt.Errorf("aggregate cpu line not found")
}

func parseCPULine(line string) (cpuRaw, error) {
	fields := strings.Fields(line)
	if len(fields) < 9 {
		return cpuRaw{}, fmt.Errorf("insufficient fields: %d", len(fields))
	}

	parse := makeUintParser(fields, "/proc/stat")

	return cpuRaw{
		User:    parse(1),
		Nice:    parse(2),
		System:  parse(3),
		Idle:    parse(4),
		IOWait:  parse(5),
		IRQ:     parse(6),
		SoftIRQ: parse(7),
		Steal:   parse(8),
	}, nil
}

func parseLoadAvg() (*analysis.LoadSample, error) {
	data, err := os.ReadFile("/proc/loadavg")
	if err != nil {
		return nil, err
	}

	return parseLoadAvgFrom(string(data))
}

func parseLoadAvgFrom(s string) (*analysis.LoadSample, error) {
	fields := strings.Fields(s)
	if len(fields) < 3 {
		return nil, fmt.Errorf("insufficient fields: %d", len(fields))
	}

	var load analysis.LoadSample
	var err error

	load.Load1, err = strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return nil, fmt.Errorf("parsing load1: %w", err)
	}

	load.Load5, err = strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return nil, fmt.Errorf("parsing load5: %w", err)
	}

	load.Load15, err = strconv.ParseFloat(fields[2], 64)
	if err != nil {
		return nil, fmt.Errorf("parsing load15: %w", err)
	}

	return &load, nil
}

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

	"github.com/nhdewitt/hostsnap/internal/netrate"
)

func collectCounters(ctx context.Context) (netrate.Reading, error) {
	f, err := os.Open("/proc/net/dev")
	if err != nil {
		return nil, fmt.Errorf("opening /proc/net/dev: %w", err)
	}
	defer f.Close()

	reading, err := parseNetDevFrom(f)
	if err != nil {
		return nil, err
	}

	for name, c := range reading {
		c.Up = linkUp(name)
		c.SpeedMbps = linkSpeed(name)
		reading[name] = c
	}

	return reading, nil
}

func parseNetDevFrom(r io.Reader) (netrate.Reading, error) {
	result := make(netrate.Reading)
	scanner := bufio.NewScanner(r)

	for scanner.Scan() {
		line := scanner.Text()

		if strings.TrimSpace(line) == "" {
			continue
		}

		split := strings.SplitN(line, ":", 2)
		if len(split) != 2 {
			continue
		}

		iface := strings.TrimSpace(split[0])
		values := strings.Fields(split[1])

		if len(values) < 16 {
			continue
		}

		parse := makeUintParser(values, "/proc/net/dev:"+iface)

		// /proc/net/dev standard: 0: bytes_in, 8: bytes_out
		result[iface] = netrate.InterfaceCounters{
			RxBytes: parse(0),
			TxBytes: parse(8),
		}
	}

	return result, scanner.Err()
}

func linkUp(name string) bool {
	data, err := os.ReadFile("/sys/class/net/" + name + "/operstate")
	if err != nil {
		return false
	}

	state := strings.TrimSpace(string(data))
	// Loopback reports "unknown" while perfectly operational.
	return state == "up" || state == "unknown"
}

func linkSpeed(name string) *int {
	data, err := os.ReadFile("/sys/class/net/" + name + "/speed")
	if err != nil {
		return nil
	}

	// Virtual and wireless devices report -1 here.
	v, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil || v <= 0 {
		return nil
	}

	return &v
}

// /proc/net/route flag bit
const routeFlagUp = 0x1

func defaultRoute(ctx context.Context) (string, bool) {
	f, err := os.Open("/proc/net/route")
	if err != nil {
		return "", false
	}
	defer f.Close()

	return parseRouteFrom(f)
}

func parseRouteFrom(r io.Reader) (string, bool) {
	scanner := bufio.NewScanner(r)

	scanner.Scan() // header

	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) < 4 {
			continue
		}

		// Iface  Destination  Gateway  Flags ...
		if fields[1] != "00000000" {
			continue
		}

		flags, err := strconv.ParseUint(fields[3], 16, 64)
		if err != nil || flags&routeFlagUp == 0 {
			continue
		}

		return fields[0], true
	}

	return "", false
}

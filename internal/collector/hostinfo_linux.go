//go:build linux

package collector

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/tklauser/go-sysconf"
	"golang.org/x/sys/unix"

	"github.com/nhdewitt/hostsnap/internal/snapshot"
)

func collectHostInfo(ctx context.Context) (snapshot.HostInfo, error) {
	hostname, err := os.Hostname()
	if err != nil {
		return snapshot.HostInfo{}, fmt.Errorf("reading hostname: %w", err)
	}

	osName, osVersion := readOSRelease()
	kernel, machine := readUname()

	info := snapshot.HostInfo{
		Hostname:     hostname,
		FQDN:         resolveFQDN(ctx, hostname),
		OSName:       osName,
		OSVersion:    osVersion,
		Kernel:       kernel,
		Machine:      machine,
		LogicalCPUs:  logicalCPUs(),
		PhysicalCPUs: countPhysicalCores(),
	}

	if btime := readBootTime(); btime > 0 {
		info.BootTime = time.Unix(btime, 0)
	}

	return info, nil
}

func readOSRelease() (name, version string) {
	f, err := os.Open("/etc/os-release")
	if err != nil {
		return "Linux", ""
	}
	defer f.Close()

	return parseOSReleaseFrom(f)
}

func parseOSReleaseFrom(r io.Reader) (name, version string) {
	name = "Linux"
	scanner := bufio.NewScanner(r)

	for scanner.Scan() {
		line := scanner.Text()

		if strings.HasPrefix(line, "NAME=") {
			name = strings.Trim(line[5:], `"`)
		} else if strings.HasPrefix(line, "VERSION_ID=") {
			version = strings.Trim(line[11:], `"`)
		}

		if name != "Linux" && version != "" {
			break
		}
	}

	name = strings.TrimSpace(name)
	version = strings.TrimSpace(version)

	if name == "" {
		name = "Linux"
	}

	return name, version
}

func readUname() (kernel, machine string) {
	var uts unix.Utsname
	if err := unix.Uname(&uts); err != nil {
		return "", ""
	}

	return charsToString(uts.Release[:]), charsToString(uts.Machine[:])
}

// charsToString converts a NUL-terminated C char buffer to a Go string.
// It accepts both signed and unsigned byte representations.
func charsToString[T ~int8 | ~uint8](ca []T) string {
	buf := make([]byte, 0, len(ca))

	for _, c := range ca {
		if c == 0 {
			break
		}
		buf = append(buf, byte(c))
	}

	return string(buf)
}

func logicalCPUs() int {
	if n, err := sysconf.Sysconf(sysconf.SC_NPROCESSORS_ONLN); err == nil && n > 0 {
		return int(n)
	}
	return runtime.NumCPU()
}

// countPhysicalCores walks the sysfs CPU topology and counts distinct
// (package, core) pairs. Returns nil when the topology is unreadable,
// which the capacity analysis treats as unknown rather than zero.
func countPhysicalCores() *int {
	dirs, err := filepath.Glob("/sys/devices/system/cpu/cpu[0-9]*")
	if err != nil || len(dirs) == 0 {
		return nil
	}

	type coreKey struct {
		pkg  string
		core string
	}
	seen := make(map[coreKey]struct{})

	for _, dir := range dirs {
		pkg, err := os.ReadFile(filepath.Join(dir, "topology", "physical_package_id"))
		if err != nil {
			continue
		}
		core, err := os.ReadFile(filepath.Join(dir, "topology", "core_id"))
		if err != nil {
			continue
		}

		seen[coreKey{
			pkg:  strings.TrimSpace(string(pkg)),
			core: strings.TrimSpace(string(core)),
		}] = struct{}{}
	}

	if len(seen) == 0 {
		return nil
	}

	n := len(seen)
	return &n
}

func readBootTime() int64 {
	f, err := os.Open("/proc/stat")
	if err != nil {
		return 0
	}
	defer f.Close()

	return parseBootTimeFrom(f)
}

func parseBootTimeFrom(r io.Reader) int64 {
	scanner := bufio.NewScanner(r)

	for scanner.Scan() {
		line := scanner.Text()

		if strings.HasPrefix(line, "btime ") {
			fields := strings.Fields(line)
			if len(fields) >= 2 {
				btime, err := strconv.ParseInt(fields[1], 10, 64)
				if err != nil {
					return 0
				}
				return btime
			}
		}
	}

	return 0
}

//go:build darwin

package collector

import (
	"context"
	"os/exec"
	"strings"
)

// defaultRoute asks the routing table which interface the default route
// uses. Any failure (no route, command missing, sandboxed) is the
// explicit no-route answer, never an error.
func defaultRoute(ctx context.Context) (string, bool) {
	out, err := exec.CommandContext(ctx, "route", "-n", "get", "default").Output()
	if err != nil {
		return "", false
	}

	return parseRouteGet(out)
}

func parseRouteGet(out []byte) (string, bool) {
	for _, line := range strings.Split(string(out), "\n") {
		line = strings.TrimSpace(line)

		if rest, ok := strings.CutPrefix(line, "interface:"); ok {
			if name := strings.TrimSpace(rest); name != "" {
				return name, true
			}
		}
	}

	return "", false
}

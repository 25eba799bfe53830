//go:build windows

package collector

import "context"

// No default-route probe on Windows; uplink selection falls back to the
// traffic heuristic.
func defaultRoute(ctx context.Context) (string, bool) {
	return "", false
}

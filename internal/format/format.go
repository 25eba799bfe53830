// Package format renders byte counts, transfer rates, durations, and
// percentages as human-readable strings. Every function is pure: identical
// inputs always produce byte-identical output, with no locale or clock
// dependence.
package format

import "fmt"

var byteUnits = []string{"B", "KB", "MB", "GB", "TB", "PB"}

// Bytes renders a cumulative byte count with binary (1024) scaling.
// The base unit prints as an integer; every scaled unit keeps two decimals.
func Bytes(n uint64) string {
	x := float64(n)
	i := 0
	for x >= 1024 && i < len(byteUnits)-1 {
		x /= 1024
		i++
	}
	if i == 0 {
		return fmt.Sprintf("%d %s", n, byteUnits[i])
	}
	return fmt.Sprintf("%.2f %s", x, byteUnits[i])
}

// Rate renders a bytes-per-second rate with the same binary scaling as Bytes
// plus a "/s" suffix. Negative rates (possible after a counter reset) never
// scale past the base unit, so the sign stays visible.
func Rate(bps float64) string {
	x := bps
	i := 0
	for x >= 1024 && i < len(byteUnits)-1 {
		x /= 1024
		i++
	}
	if i == 0 {
		return fmt.Sprintf("%.0f %s/s", x, byteUnits[i])
	}
	return fmt.Sprintf("%.2f %s/s", x, byteUnits[i])
}

// Uptime renders elapsed seconds as the two most-significant non-zero units:
// "3d 7h", "7h 12m", or "12m 31s". Units below the second one are dropped
// from display only; the caller keeps the exact value.
func Uptime(seconds uint64) string {
	days := seconds / 86400
	rem := seconds % 86400
	hours := rem / 3600
	rem %= 3600
	mins := rem / 60
	secs := rem % 60

	if days > 0 {
		return fmt.Sprintf("%dd %dh", days, hours)
	}
	if hours > 0 {
		return fmt.Sprintf("%dh %dm", hours, mins)
	}
	return fmt.Sprintf("%dm %ds", mins, secs)
}

// Percent renders a percentage with one decimal place.
func Percent(p float64) string {
	return fmt.Sprintf("%.1f%%", p)
}

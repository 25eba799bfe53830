//go:build linux

package collector

import (
	"strings"
	"testing"
)

const sampleMemInfo = `MemTotal:       16384000 kB
MemFree:         2048000 kB
MemAvailable:    8192000 kB
Buffers:          512000 kB
Cached:          4096000 kB
SwapCached:            0 kB
SwapTotal:       4194304 kB
SwapFree:        4194304 kB
Dirty:               128 kB
`

func TestParseMemInfoFrom(t *testing.T) {
	raw, err := parseMemInfoFrom(strings.NewReader(sampleMemInfo))
	if err != nil {
		t.Fatalf("parseMemInfoFrom: %v", err)
	}

	if want := uint64(16384000) * 1024; raw.Total != want {
		t.Errorf("Total = %d, want %d (kB scaled to bytes)", raw.Total, want)
	}
	if want := uint64(8192000) * 1024; raw.Available != want {
		t.Errorf("Available = %d, want %d", raw.Available, want)
	}
	if want := uint64(4194304) * 1024; raw.SwapTotal != want {
		t.Errorf("SwapTotal = %d, want %d", raw.SwapTotal, want)
	}
	if raw.SwapTotal != raw.SwapFree {
		t.Errorf("SwapFree = %d, want equal to SwapTotal for unused swap", raw.SwapFree)
	}
}

func TestParseMemInfoFromMissingFields(t *testing.T) {
	input := "MemTotal: 1000 kB\nMemFree: 500 kB\n"

	if _, err := parseMemInfoFrom(strings.NewReader(input)); err == nil {
		t.Error("expected an error when required fields are missing")
	}
}

func TestParseMemInfoFromBadNumber(t *testing.T) {
	input := "MemTotal: abc kB\n"

	if _, err := parseMemInfoFrom(strings.NewReader(input)); err == nil {
		t.Error("expected an error for a non-numeric value")
	}
}

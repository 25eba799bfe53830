package main

import (
	"testing"
	"time"
)

func TestNextSleep(t *testing.T) {
	tests := []struct {
		name     string
		interval time.Duration
		elapsed  time.Duration
		want     time.Duration
	}{
		{"fast cycle", 2 * time.Second, 300 * time.Millisecond, 1700 * time.Millisecond},
		{"instant cycle", 500 * time.Millisecond, 0, 500 * time.Millisecond},
		{"exact interval", time.Second, time.Second, 0},
		{"slow cycle", time.Second, 3 * time.Second, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := nextSleep(tt.interval, tt.elapsed); got != tt.want {
				t.Errorf("nextSleep(%v, %v) = %v, want %v", tt.interval, tt.elapsed, got, tt.want)
			}
		})
	}
}

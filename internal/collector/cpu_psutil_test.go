//go:build darwin || windows

package collector

import (
	"math"
	"testing"

	"github.com/shirou/gopsutil/v4/cpu"
)

func TestBusyFromTimes(t *testing.T) {
	tests := []struct {
		name   string
		first  cpu.TimesStat
		second cpu.TimesStat
		want   float64
	}{
		{
			"QuarterBusy",
			cpu.TimesStat{User: 100, System: 50, Idle: 850},
			cpu.TimesStat{User: 150, System: 100, Idle: 1150},
			25.0,
		},
		{
			"FullyIdle",
			cpu.TimesStat{Idle: 1000},
			cpu.TimesStat{Idle: 2000},
			0.0,
		},
		{
			"NoElapsedTime",
			cpu.TimesStat{User: 100, Idle: 900},
			cpu.TimesStat{User: 100, Idle: 900},
			0.0,
		},
		{
			"CounterWentBackwards",
			cpu.TimesStat{User: 100, Idle: 1000},
			cpu.TimesStat{User: 50, Idle: 500},
			0.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := busyFromTimes(tt.first, tt.second)
			if math.Abs(got-tt.want) > 0.0001 {
				t.Errorf("busyFromTimes() = %v, want %v", got, tt.want)
			}
		})
	}
}

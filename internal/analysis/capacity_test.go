package analysis

import "testing"

func intPtr(n int) *int { return &n }

func floatPtr(f float64) *float64 { return &f }

func TestSMT(t *testing.T) {
	tests := []struct {
		name string
		cap  CPUCapacity
		want SMTStatus
	}{
		{"HyperthreadedDesktop", CPUCapacity{Logical: 8, Physical: intPtr(4)}, SMTOn},
		{"SMTDisabled", CPUCapacity{Logical: 4, Physical: intPtr(4)}, SMTOff},
		{"SingleCore", CPUCapacity{Logical: 1, Physical: intPtr(1)}, SMTOff},
		{"MissingPhysical", CPUCapacity{Logical: 8, Physical: nil}, SMTUnknown},
		{"ZeroPhysical", CPUCapacity{Logical: 8, Physical: intPtr(0)}, SMTUnknown},
		{"NegativePhysical", CPUCapacity{Logical: 8, Physical: intPtr(-1)}, SMTUnknown},
		{"ZeroLogical", CPUCapacity{Logical: 0, Physical: intPtr(4)}, SMTUnknown},
		{"InconsistentTopology", CPUCapacity{Logical: 2, Physical: intPtr(4)}, SMTUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SMT(tt.cap); got != tt.want {
				t.Errorf("SMT(Logical=%d) = %v, want %v", tt.cap.Logical, got, tt.want)
			}
		})
	}
}

func TestSMTStatusString(t *testing.T) {
	tests := []struct {
		status SMTStatus
		want   string
	}{
		{SMTOn, "on"},
		{SMTOff, "off"},
		{SMTUnknown, "unknown"},
	}

	for _, tt := range tests {
		if got := tt.status.String(); got != tt.want {
			t.Errorf("SMTStatus(%d).String() = %q, want %q", tt.status, got, tt.want)
		}
	}
}

func TestNormalizeLoad(t *testing.T) {
	tests := []struct {
		name    string
		load1   *float64
		logical int
		want    *float64
	}{
		{"TypicalQuarterLoad", floatPtr(2.0), 8, floatPtr(0.25)},
		{"FullyLoaded", floatPtr(4.0), 4, floatPtr(1.0)},
		{"UncappedAboveOne", floatPtr(16.0), 4, floatPtr(4.0)},
		{"AbsentLoad", nil, 8, nil},
		{"ZeroLogical", floatPtr(2.0), 0, nil},
		{"NegativeLogical", floatPtr(2.0), -1, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeLoad(tt.load1, tt.logical)
			if (got == nil) != (tt.want == nil) {
				t.Fatalf("NormalizeLoad() = %v, want %v", got, tt.want)
			}
			if got != nil && *got != *tt.want {
				t.Errorf("NormalizeLoad() = %v, want %v", *got, *tt.want)
			}
		})
	}
}

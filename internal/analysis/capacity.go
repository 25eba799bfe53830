// Package analysis derives capacity and health judgments from measurements
// already taken elsewhere. Everything here is pure: no OS reads, no clock,
// no environment access, so identical inputs always produce identical
// results.
package analysis

// CPUCapacity describes the processor topology of the sampled host.
// Physical is nil when the core count could not be determined.
type CPUCapacity struct {
	Logical  int
	Physical *int
}

// SMTStatus reports whether simultaneous multithreading is active.
type SMTStatus int

const (
	SMTUnknown SMTStatus = iota // Topology missing or inconsistent
	SMTOn                       // More logical CPUs than physical cores
	SMTOff                      // Logical count equals physical count
)

// String returns the display name for an SMTStatus.
func (s SMTStatus) String() string {
	switch s {
	case SMTOn:
		return "on"
	case SMTOff:
		return "off"
	default:
		return "unknown"
	}
}

// SMT determines simultaneous-multithreading status from CPU topology.
// A missing or non-positive count on either side yields unknown. More
// logical CPUs than physical cores means SMT is on; equal counts mean it
// is off. Fewer logical CPUs than physical cores is inconsistent data and
// also yields unknown.
func SMT(c CPUCapacity) SMTStatus {
	if c.Physical == nil || *c.Physical <= 0 || c.Logical <= 0 {
		return SMTUnknown
	}
	if c.Logical > *c.Physical {
		return SMTOn
	}
	if c.Logical == *c.Physical {
		return SMTOff
	}
	return SMTUnknown
}

// LoadSample is a load-average triple. The three values are read in one
// pass and are present or absent together.
type LoadSample struct {
	Load1  float64
	Load5  float64
	Load15 float64
}

// NormalizeLoad divides the 1-minute load average by the logical CPU count,
// yielding per-CPU load demand. Returns nil when the load is absent or the
// CPU count is non-positive. The result is not capped: values above 1.0
// mean demand exceeds capacity, which is exactly what the health bands
// need to see.
func NormalizeLoad(load1 *float64, logical int) *float64 {
	if load1 == nil || logical <= 0 {
		return nil
	}
	frac := *load1 / float64(logical)
	return &frac
}

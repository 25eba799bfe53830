package analysis

// Health classifies how loaded a host is, ordered from least to most
// loaded so the values compare meaningfully with < and >.
type Health int

const (
	HealthOK Health = iota
	HealthBusy
	HealthSaturated
	HealthOverloaded
)

// String returns the display label for a Health band.
func (h Health) String() string {
	switch h {
	case HealthOK:
		return "OK"
	case HealthBusy:
		return "BUSY"
	case HealthSaturated:
		return "SATURATED"
	case HealthOverloaded:
		return "OVERLOADED"
	}
	return "UNKNOWN"
}

// Load-fraction band edges. An edge value belongs to the busier band.
const (
	loadBusy       = 0.60
	loadSaturated  = 0.90
	loadOverloaded = 1.10
)

// CPU-percent band edges, used only when no load average is available.
const (
	cpuBusy       = 60.0
	cpuSaturated  = 85.0
	cpuOverloaded = 95.0
)

// Classify assigns a health band. The normalized load fraction is the
// preferred signal whenever it is present, because it reflects demand over
// the last minute rather than a single instant; the instantaneous CPU busy
// percent is the fallback. Comparisons are strictly less-than, so a value
// sitting exactly on an edge lands in the busier band.
func Classify(cpuPercent float64, loadFrac *float64) Health {
	if loadFrac != nil {
		switch f := *loadFrac; {
		case f < loadBusy:
			return HealthOK
		case f < loadSaturated:
			return HealthBusy
		case f < loadOverloaded:
			return HealthSaturated
		default:
			return HealthOverloaded
		}
	}

	switch {
	case cpuPercent < cpuBusy:
		return HealthOK
	case cpuPercent < cpuSaturated:
		return HealthBusy
	case cpuPercent < cpuOverloaded:
		return HealthSaturated
	default:
		return HealthOverloaded
	}
}

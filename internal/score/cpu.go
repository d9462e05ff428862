package score

import "github.com/GabrielRod726/hardware-diagnostic/internal/domain"

// CPUScore rates the processor from core count (weight 0.4), current
// utilization (0.4, lower is better), and clock frequency (0.2).
func CPUScore(c domain.CPUInfo) float64 {
	var cores float64
	switch {
	case c.LogicalCores <= 1:
		cores = 2.0
	case c.LogicalCores == 2:
		cores = 4.0
	case c.LogicalCores <= 4:
		cores = 6.0
	case c.LogicalCores <= 8:
		cores = 8.0
	default:
		cores = 10.0
	}

	var usage float64
	switch {
	case c.UsagePercent < 30.0:
		usage = 10.0
	case c.UsagePercent < 60.0:
		usage = 7.0
	case c.UsagePercent < 85.0:
		usage = 4.0
	default:
		usage = 1.0
	}

	var freq float64
	switch {
	case c.FrequencyMHz < 2000:
		freq = 3.0
	case c.FrequencyMHz < 3000:
		freq = 6.0
	case c.FrequencyMHz < 4000:
		freq = 8.0
	default:
		freq = 10.0
	}

	return clamp(cores*0.4 + usage*0.4 + freq*0.2)
}

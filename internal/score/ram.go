package score

import "github.com/GabrielRod726/hardware-diagnostic/internal/domain"

// RAMScore rates primary memory from usage (weight 0.5, lower is
// better), swap pressure (0.3), and total capacity (0.2).
func RAMScore(m domain.MemoryInfo) float64 {
	var usage float64
	switch {
	case m.UsedPercent < 60.0:
		usage = 10.0
	case m.UsedPercent < 75.0:
		usage = 7.0
	case m.UsedPercent < 90.0:
		usage = 4.0
	default:
		usage = 1.0
	}

	// A host without swap configured scores a flat neutral value:
	// acceptable, not ideal.
	var swap float64
	switch {
	case m.SwapTotalBytes == 0:
		swap = 8.0
	case m.SwapUsedPercent < 10.0:
		swap = 10.0
	case m.SwapUsedPercent < 30.0:
		swap = 7.0
	case m.SwapUsedPercent < 50.0:
		swap = 4.0
	default:
		swap = 1.0
	}

	totalGiB := float64(m.TotalBytes) / float64(1<<30)
	var capacity float64
	switch {
	case totalGiB < 4:
		capacity = 3.0
	case totalGiB < 8:
		capacity = 6.0
	case totalGiB < 16:
		capacity = 8.0
	default:
		capacity = 10.0
	}

	return clamp(usage*0.5 + swap*0.3 + capacity*0.2)
}

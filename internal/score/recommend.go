package score

import (
	"fmt"
	"strings"

	"github.com/GabrielRod726/hardware-diagnostic/internal/domain"
)

// Recommendations builds the ordered advice list for a snapshot and its
// overall score: one general message for the score band, then component
// warnings as their conditions fire, then one closing action for the
// category. The first and last entries always exist.
func Recommendations(c domain.CPUInfo, m domain.MemoryInfo, disks []domain.DiskInfo, overall float64) []string {
	category := CategoryFor(overall)
	recs := make([]string, 0, 8)

	switch category {
	case Discard:
		recs = append(recs, "🛑 CONSIDER REPLACEMENT: machine is in critical condition")
	case UrgentMaintenance:
		recs = append(recs, "⚠️ URGENT MAINTENANCE: machine requires immediate intervention")
	case UseWithCaution:
		recs = append(recs, "🔶 USE WITH CAUTION: monitor performance regularly")
	default:
		recs = append(recs, "✅ GOOD CONDITION: machine is suitable for normal use")
	}

	if c.UsagePercent > 80.0 {
		recs = append(recs, "🔴 CPU: very high load - check for runaway processes")
	}
	if c.LogicalCores < 2 {
		recs = append(recs, "🟡 CPU: single core detected - limits multitasking")
	}

	if m.UsedPercent > 85.0 {
		recs = append(recs, "🔴 RAM: usage above 85% - consider adding memory")
	}
	if m.TotalBytes < 4<<30 {
		recs = append(recs, "🟡 RAM: insufficient memory for modern workloads")
	}
	if m.SwapUsedPercent > 50.0 {
		recs = append(recs, "🔴 SWAP: excessive swap activity - running low on RAM")
	}

	for _, d := range disks {
		if d.UsedPercent > 90.0 {
			recs = append(recs, fmt.Sprintf("🔴 DISK %s: nearly full (%.1f%%)", d.Device, d.UsedPercent))
		}
		if strings.Contains(d.DriveType, "HDD") && overall < cautionBelow {
			recs = append(recs, fmt.Sprintf("🟡 DISK %s: HDD may be limiting performance", d.Device))
		}
		if float64(d.FreeBytes)/1e9 < 10.0 {
			recs = append(recs, fmt.Sprintf("🔴 DISK %s: less than 10GB free", d.Device))
		}
	}

	switch category {
	case Discard:
		recs = append(recs, "📋 Recommended action: replace the equipment")
	case UrgentMaintenance:
		recs = append(recs, "📋 Recommended action: urgent technical maintenance")
	case UseWithCaution:
		recs = append(recs, "📋 Recommended action: continuous monitoring")
	default:
		recs = append(recs, "📋 Recommended action: regular preventive maintenance")
	}

	return recs
}

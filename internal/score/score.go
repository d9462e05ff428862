// Package score turns a hardware snapshot into a normalized health score.
//
// Every factor is a fixed-threshold step function: a metric falls into a
// band, the band maps to a fixed factor value, and the factors combine by
// fixed weights. Component scores (CPU, RAM, disk) and the overall score
// are clamped to [0, 10]. The package is pure: no I/O, no state, safe for
// concurrent use on independent snapshots.
package score

import (
	"math"

	"github.com/GabrielRod726/hardware-diagnostic/internal/domain"
)

// Component weights for the overall score.
const (
	cpuWeight  = 0.4
	ramWeight  = 0.3
	diskWeight = 0.3
)

// Result is the full outcome of one evaluation. Recommendations are
// ordered: the general category message first, component warnings in
// emission order, the closing action last. The slice is never empty.
type Result struct {
	Overall         float64  `json:"overall"`
	CPU             float64  `json:"cpu"`
	RAM             float64  `json:"ram"`
	Disk            float64  `json:"disk"`
	Category        Category `json:"category"`
	Recommendations []string `json:"recommendations"`
}

// Evaluate scores a snapshot: three component scores, the weighted
// overall, the category, and the recommendation list.
func Evaluate(snap domain.Snapshot) Result {
	cpu := CPUScore(snap.CPU)
	ram := RAMScore(snap.Memory)
	disk := DiskScore(snap.Disks)
	overall := clamp(cpu*cpuWeight + ram*ramWeight + disk*diskWeight)

	return Result{
		Overall:         overall,
		CPU:             cpu,
		RAM:             ram,
		Disk:            disk,
		Category:        CategoryFor(overall),
		Recommendations: Recommendations(snap.CPU, snap.Memory, snap.Disks, overall),
	}
}

func clamp(v float64) float64 {
	return math.Min(10.0, math.Max(0.0, v))
}

package score

import (
	"strings"

	"github.com/GabrielRod726/hardware-diagnostic/internal/domain"
)

// DiskScore rates storage as the unweighted mean of each volume's
// composite score. No volumes at all is neutral: absence of data is
// not penalized.
func DiskScore(disks []domain.DiskInfo) float64 {
	if len(disks) == 0 {
		return 5.0
	}

	var sum float64
	for _, d := range disks {
		sum += diskComposite(d)
	}
	return clamp(sum / float64(len(disks)))
}

// diskComposite rates one volume from usage (weight 0.5, lower is
// better), drive type (0.3), and free space (0.2). Free space bands
// are in decimal gigabytes (10^9 bytes); RAM capacity bands use the
// binary divisor.
func diskComposite(d domain.DiskInfo) float64 {
	var usage float64
	switch {
	case d.UsedPercent < 70.0:
		usage = 10.0
	case d.UsedPercent < 85.0:
		usage = 7.0
	case d.UsedPercent < 95.0:
		usage = 4.0
	default:
		usage = 1.0
	}

	var kind float64
	switch {
	case strings.Contains(d.DriveType, "SSD"), strings.Contains(d.DriveType, "NVMe"):
		kind = 10.0
	case strings.Contains(d.DriveType, "HDD"):
		kind = 6.0
	default:
		kind = 8.0
	}

	freeGB := float64(d.FreeBytes) / 1e9
	var free float64
	switch {
	case freeGB > 100:
		free = 10.0
	case freeGB > 50:
		free = 8.0
	case freeGB > 20:
		free = 6.0
	case freeGB > 10:
		free = 4.0
	default:
		free = 1.0
	}

	return clamp(usage*0.5 + kind*0.3 + free*0.2)
}

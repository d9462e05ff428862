package collect

import (
	"context"
	"fmt"
	"runtime"
	"sort"
	"strings"

	"github.com/jaypipes/ghw"
	"github.com/shirou/gopsutil/v3/disk"

	"github.com/GabrielRod726/hardware-diagnostic/internal/domain"
)

var ignoredFSTypes = map[string]struct{}{
	"autofs":     {},
	"cgroup":     {},
	"cgroup2":    {},
	"configfs":   {},
	"debugfs":    {},
	"devfs":      {},
	"devpts":     {},
	"devtmpfs":   {},
	"fusectl":    {},
	"hugetlbfs":  {},
	"mqueue":     {},
	"proc":       {},
	"pstore":     {},
	"overlay":    {},
	"squashfs":   {},
	"securityfs": {},
	"sysfs":      {},
	"tmpfs":      {},
	"tracefs":    {},
}

// sampleDisks enumerates mounted volumes with capacity, usage, and a
// drive-type label. Volumes that fail to stat are skipped with a note;
// a missing block-device inventory only costs the type labels.
func sampleDisks(ctx context.Context, all bool) ([]domain.DiskInfo, error) {
	parts, err := disk.PartitionsWithContext(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("partitions: %w", err)
	}

	partsByMount := make(map[string]disk.PartitionStat, len(parts))
	for _, p := range parts {
		if p.Mountpoint == "" {
			continue
		}
		if _, ok := partsByMount[p.Mountpoint]; !ok {
			partsByMount[p.Mountpoint] = p
		}
	}

	types, typesErr := driveTypesByMount()

	var problems []string
	if typesErr != nil {
		problems = append(problems, fmt.Sprintf("drive types: %v", typesErr))
	}

	out := make([]domain.DiskInfo, 0, len(parts))
	for _, mp := range selectMountpoints(parts, all) {
		usage, err := disk.UsageWithContext(ctx, mp)
		if err != nil || usage == nil {
			problems = append(problems, fmt.Sprintf("usage %s: %v", mp, err))
			continue
		}

		var device, fstype string
		if p, ok := partsByMount[mp]; ok {
			device = strings.TrimSpace(p.Device)
			fstype = strings.TrimSpace(p.Fstype)
		}
		if fstype == "" {
			fstype = strings.TrimSpace(usage.Fstype)
		}
		if device == "" {
			device = mp
		}

		out = append(out, domain.DiskInfo{
			Device:      device,
			Mountpoint:  mp,
			Filesystem:  fstype,
			DriveType:   types[mp],
			TotalBytes:  usage.Total,
			UsedBytes:   usage.Used,
			FreeBytes:   usage.Free,
			UsedPercent: domain.PercentOf(usage.Used, usage.Total),
		})
	}

	if len(problems) > 0 {
		return out, fmt.Errorf("%s", strings.Join(problems, "; "))
	}
	return out, nil
}

// selectMountpoints picks which mounts represent real volumes. The
// curated mode keeps the root filesystem, removable-media mounts, and
// anything backed by a /dev device that is not a loopback; all mode
// keeps every named mountpoint regardless of filesystem type.
func selectMountpoints(parts []disk.PartitionStat, all bool) []string {
	selected := make(map[string]struct{})

	if all {
		for _, p := range parts {
			if p.Mountpoint != "" {
				selected[p.Mountpoint] = struct{}{}
			}
		}
		return sortedKeys(selected)
	}

	switch runtime.GOOS {
	case "windows":
		for _, p := range parts {
			mp := p.Mountpoint
			if len(mp) >= 2 && mp[1] == ':' {
				selected[mp] = struct{}{}
			}
		}
	default:
		selected["/"] = struct{}{}
		for _, p := range parts {
			mp := strings.TrimSpace(p.Mountpoint)
			if mp == "" || mp == "/" {
				continue
			}
			if _, ignore := ignoredFSTypes[p.Fstype]; ignore {
				continue
			}
			if strings.HasPrefix(mp, "/mnt/") || mp == "/mnt" || strings.HasPrefix(mp, "/media/") || strings.HasPrefix(mp, "/run/media/") {
				selected[mp] = struct{}{}
				continue
			}
			dev := strings.TrimSpace(p.Device)
			if strings.HasPrefix(dev, "/dev/") && !strings.Contains(dev, "loop") {
				selected[mp] = struct{}{}
			}
		}
	}

	if len(selected) == 0 {
		for _, p := range parts {
			if p.Mountpoint != "" {
				selected[p.Mountpoint] = struct{}{}
				break
			}
		}
	}

	return sortedKeys(selected)
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// driveTypesByMount maps mountpoints to HDD/SSD/NVMe labels from the
// block-device inventory.
func driveTypesByMount() (map[string]string, error) {
	info, err := ghw.Block()
	if err != nil {
		return nil, err
	}

	types := make(map[string]string)
	for _, d := range info.Disks {
		label := driveTypeLabel(d.DriveType.String(), d.StorageController.String())
		if label == "" {
			continue
		}
		for _, p := range d.Partitions {
			if p == nil || p.MountPoint == "" {
				continue
			}
			types[p.MountPoint] = label
		}
	}
	return types, nil
}

// driveTypeLabel condenses ghw's drive type and storage controller
// into one label. NVMe wins over the generic SSD type; an unknown type
// falls back to the controller name.
func driveTypeLabel(driveType, controller string) string {
	controller = strings.TrimSpace(controller)
	if strings.EqualFold(controller, "nvme") {
		return "NVMe"
	}
	driveType = strings.TrimSpace(driveType)
	if driveType == "" || strings.EqualFold(driveType, "unknown") {
		if controller != "" && !strings.EqualFold(controller, "unknown") {
			return strings.ToUpper(controller)
		}
		return ""
	}
	return strings.ToUpper(driveType)
}

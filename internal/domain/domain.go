// Package domain holds the value types exchanged between the collector,
// the scoring engine, and the renderers. All of them are plain data:
// constructed once per collection pass and never mutated afterwards.
package domain

import "time"

type CPUInfo struct {
	Model         string  `json:"model"`
	LogicalCores  int     `json:"logicalCores"`
	PhysicalCores int     `json:"physicalCores"`
	UsagePercent  float64 `json:"usagePercent"`
	FrequencyMHz  uint64  `json:"frequencyMHz"`
}

type MemoryInfo struct {
	TotalBytes      uint64  `json:"totalBytes"`
	UsedBytes       uint64  `json:"usedBytes"`
	FreeBytes       uint64  `json:"freeBytes"`
	UsedPercent     float64 `json:"usedPercent"`
	SwapTotalBytes  uint64  `json:"swapTotalBytes"`
	SwapUsedBytes   uint64  `json:"swapUsedBytes"`
	SwapUsedPercent float64 `json:"swapUsedPercent"`
}

type DiskInfo struct {
	Device      string  `json:"device"`
	Mountpoint  string  `json:"mountpoint"`
	Filesystem  string  `json:"filesystem"`
	DriveType   string  `json:"driveType,omitempty"`
	TotalBytes  uint64  `json:"totalBytes"`
	UsedBytes   uint64  `json:"usedBytes"`
	FreeBytes   uint64  `json:"freeBytes"`
	UsedPercent float64 `json:"usedPercent"`
}

type GPUInfo struct {
	Vendor  string `json:"vendor"`
	Product string `json:"product"`
}

type ProcessInfo struct {
	PID           int     `json:"pid"`
	Name          string  `json:"name"`
	CPUPercent    float64 `json:"cpuPercent,omitempty"`
	MemoryBytes   uint64  `json:"memoryBytes,omitempty"`
	MemoryPercent float64 `json:"memoryPercent,omitempty"`
}

// Snapshot is one point-in-time capture of the host. Warnings carries
// non-fatal collection problems (unreadable partitions, missing sensors)
// so a partial read still produces a usable snapshot.
type Snapshot struct {
	Hostname    string        `json:"hostname"`
	Platform    string        `json:"platform"`
	TakenAt     time.Time     `json:"takenAt"`
	CPU         CPUInfo       `json:"cpu"`
	Memory      MemoryInfo    `json:"memory"`
	Disks       []DiskInfo    `json:"disks"`
	GPUs        []GPUInfo     `json:"gpus,omitempty"`
	TopByCPU    []ProcessInfo `json:"topByCpu,omitempty"`
	TopByMemory []ProcessInfo `json:"topByMemory,omitempty"`
	Warnings    []string      `json:"warnings,omitempty"`
}

// PercentOf returns used/total as a percentage, 0.0 when total is zero.
func PercentOf(used, total uint64) float64 {
	if total == 0 {
		return 0.0
	}
	return float64(used) / float64(total) * 100.0
}

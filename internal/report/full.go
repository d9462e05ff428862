package report

import (
	"fmt"
	"strings"

	"github.com/GabrielRod726/hardware-diagnostic/internal/domain"
)

// Full renders the detailed hardware sections of the complete report.
// Sections with nothing collected (GPUs, processes, warnings) are
// omitted entirely rather than printed empty.
func (r *Renderer) Full(snap *domain.Snapshot) string {
	var b strings.Builder

	b.WriteString("\n" + banner() + "\n")
	b.WriteString(r.title("", centered("📄 COMPLETE REPORT")) + "\n")
	b.WriteString(banner() + "\n")

	b.WriteString("\n=== CPU INFORMATION ===\n")
	b.WriteString(fmt.Sprintf("Model: %s\n", snap.CPU.Model))
	b.WriteString(fmt.Sprintf("Logical cores: %d\n", snap.CPU.LogicalCores))
	b.WriteString(fmt.Sprintf("Physical cores: %d\n", snap.CPU.PhysicalCores))
	b.WriteString(fmt.Sprintf("Frequency: %d MHz\n", snap.CPU.FrequencyMHz))
	b.WriteString(fmt.Sprintf("Usage: %.1f%%\n", snap.CPU.UsagePercent))
	b.WriteString(progressBar(snap.CPU.UsagePercent) + "\n")

	b.WriteString("\n=== MEMORY INFORMATION ===\n")
	b.WriteString(fmt.Sprintf("Total: %s GB\n", gb(snap.Memory.TotalBytes)))
	b.WriteString(fmt.Sprintf("Used: %s GB (%.1f%%)\n", gb(snap.Memory.UsedBytes), snap.Memory.UsedPercent))
	b.WriteString(fmt.Sprintf("Free: %s GB\n", gb(snap.Memory.FreeBytes)))
	b.WriteString(progressBar(snap.Memory.UsedPercent) + "\n")
	if snap.Memory.SwapTotalBytes > 0 {
		b.WriteString(fmt.Sprintf("Swap total: %s GB\n", gb(snap.Memory.SwapTotalBytes)))
		b.WriteString(fmt.Sprintf("Swap used: %s GB (%.1f%%)\n", gb(snap.Memory.SwapUsedBytes), snap.Memory.SwapUsedPercent))
	}

	b.WriteString("\n=== STORAGE INFORMATION ===\n")
	if len(snap.Disks) == 0 {
		b.WriteString("No volumes found.\n")
	}
	for i, d := range snap.Disks {
		b.WriteString(fmt.Sprintf("Disk %d:\n", i+1))
		b.WriteString(fmt.Sprintf("  Device: %s\n", d.Device))
		b.WriteString(fmt.Sprintf("  Mountpoint: %s\n", d.Mountpoint))
		b.WriteString(fmt.Sprintf("  Filesystem: %s\n", d.Filesystem))
		if d.DriveType != "" {
			b.WriteString(fmt.Sprintf("  Type: %s\n", d.DriveType))
		}
		b.WriteString(fmt.Sprintf("  Capacity: %s GB\n", gb(d.TotalBytes)))
		b.WriteString(fmt.Sprintf("  Used: %s GB\n", gb(d.UsedBytes)))
		b.WriteString(fmt.Sprintf("  Free: %s GB\n", gb(d.FreeBytes)))
		b.WriteString(fmt.Sprintf("  Usage: %.1f%%\n", d.UsedPercent))
		b.WriteString("  " + progressBar(d.UsedPercent) + "\n")
	}

	if len(snap.GPUs) > 0 {
		b.WriteString("\n=== GPU INFORMATION ===\n")
		for i, g := range snap.GPUs {
			b.WriteString(fmt.Sprintf("GPU %d: %s %s\n", i+1, g.Vendor, g.Product))
		}
	}

	if len(snap.TopByCPU) > 0 || len(snap.TopByMemory) > 0 {
		b.WriteString("\n=== TOP PROCESSES ===\n")
		if len(snap.TopByCPU) > 0 {
			b.WriteString("By CPU:\n")
			for i, p := range snap.TopByCPU {
				b.WriteString(fmt.Sprintf("  %d. %s (PID %d): %.1f%% CPU\n", i+1, p.Name, p.PID, p.CPUPercent))
			}
		}
		if len(snap.TopByMemory) > 0 {
			b.WriteString("By memory:\n")
			for i, p := range snap.TopByMemory {
				b.WriteString(fmt.Sprintf("  %d. %s (PID %d): %s GB (%.1f%%)\n", i+1, p.Name, p.PID, gb(p.MemoryBytes), p.MemoryPercent))
			}
		}
	}

	if len(snap.Warnings) > 0 {
		b.WriteString("\n=== WARNINGS ===\n")
		for _, w := range snap.Warnings {
			b.WriteString("  • " + w + "\n")
		}
	}

	return b.String()
}

package score

import (
	"testing"

	"github.com/GabrielRod726/hardware-diagnostic/internal/domain"
)

func TestDiskScore_NoDisks(t *testing.T) {
	// Absence of data is neutral, not a penalty.
	if got := DiskScore(nil); got != 5.0 {
		t.Errorf("DiskScore(nil) = %v, want exactly 5.0", got)
	}
	if got := DiskScore([]domain.DiskInfo{}); got != 5.0 {
		t.Errorf("DiskScore(empty) = %v, want exactly 5.0", got)
	}
}

func TestDiskScore_WornHDD(t *testing.T) {
	// 96% used (1.0), HDD (6.0), 5 GB free (1.0):
	// 1.0*0.5 + 6.0*0.3 + 1.0*0.2 = 2.5
	disks := []domain.DiskInfo{
		{Device: "sda1", DriveType: "HDD", UsedPercent: 96.0, FreeBytes: 5_000_000_000},
	}

	got := DiskScore(disks)
	if !almostEqual(got, 2.5) {
		t.Errorf("DiskScore = %v, want 2.5", got)
	}
}

func TestDiskScore_MeanAcrossVolumes(t *testing.T) {
	// A pristine NVMe (10.0) averaged with the worn HDD (2.5).
	disks := []domain.DiskInfo{
		{Device: "nvme0n1p1", DriveType: "NVMe", UsedPercent: 20.0, FreeBytes: 500_000_000_000},
		{Device: "sda1", DriveType: "HDD", UsedPercent: 96.0, FreeBytes: 5_000_000_000},
	}

	got := DiskScore(disks)
	if !almostEqual(got, (10.0+2.5)/2) {
		t.Errorf("DiskScore = %v, want %v", got, (10.0+2.5)/2)
	}
}

func TestDiskScore_DriveTypeFactor(t *testing.T) {
	// Usage and free space pinned to their best bands, so the composite
	// is 10*0.5 + kind*0.3 + 10*0.2.
	cases := []struct {
		driveType string
		want      float64
	}{
		{"SSD", 10.0},
		{"NVMe", 10.0},
		{"HDD", 6.0},
		{"", 8.0},
		{"VIRTUAL", 8.0},
	}

	for _, c := range cases {
		disks := []domain.DiskInfo{
			{Device: "disk0", DriveType: c.driveType, UsedPercent: 10.0, FreeBytes: 200_000_000_000},
		}
		got := DiskScore(disks)
		want := 10.0*0.5 + c.want*0.3 + 10.0*0.2
		if !almostEqual(got, want) {
			t.Errorf("type=%q: DiskScore = %v, want %v", c.driveType, got, want)
		}
	}
}

func TestDiskScore_UsageBands(t *testing.T) {
	cases := []struct {
		usage float64
		want  float64
	}{
		{0.0, 10.0},
		{69.9, 10.0},
		{70.0, 7.0},
		{84.9, 7.0},
		{85.0, 4.0},
		{94.9, 4.0},
		{95.0, 1.0},
		{100.0, 1.0},
	}

	for _, c := range cases {
		disks := []domain.DiskInfo{
			{Device: "disk0", DriveType: "SSD", UsedPercent: c.usage, FreeBytes: 200_000_000_000},
		}
		got := DiskScore(disks)
		want := c.want*0.5 + 10.0*0.3 + 10.0*0.2
		if !almostEqual(got, want) {
			t.Errorf("usage=%.1f%%: DiskScore = %v, want %v", c.usage, got, want)
		}
	}
}

func TestDiskScore_FreeSpaceBands(t *testing.T) {
	// Free space banding uses decimal gigabytes and strict lower
	// bounds: exactly 100 GB is not "over 100".
	cases := []struct {
		freeBytes uint64
		want      float64
	}{
		{150_000_000_000, 10.0},
		{100_000_000_001, 10.0},
		{100_000_000_000, 8.0},
		{50_000_000_001, 8.0},
		{50_000_000_000, 6.0},
		{20_000_000_001, 6.0},
		{20_000_000_000, 4.0},
		{10_000_000_001, 4.0},
		{10_000_000_000, 1.0},
		{0, 1.0},
	}

	for _, c := range cases {
		disks := []domain.DiskInfo{
			{Device: "disk0", DriveType: "SSD", UsedPercent: 10.0, FreeBytes: c.freeBytes},
		}
		got := DiskScore(disks)
		want := 10.0*0.5 + 10.0*0.3 + c.want*0.2
		if !almostEqual(got, want) {
			t.Errorf("free=%d bytes: DiskScore = %v, want %v", c.freeBytes, got, want)
		}
	}
}

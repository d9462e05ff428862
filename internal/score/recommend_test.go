package score

import (
	"strings"
	"testing"

	"github.com/GabrielRod726/hardware-diagnostic/internal/domain"
)

func healthyCPU() domain.CPUInfo {
	return domain.CPUInfo{Model: "test-cpu", LogicalCores: 8, UsagePercent: 15.0, FrequencyMHz: 3600}
}

func healthyMemory() domain.MemoryInfo {
	return domain.MemoryInfo{TotalBytes: 16 << 30, UsedPercent: 40.0, SwapTotalBytes: 4 << 30, SwapUsedPercent: 2.0}
}

func healthyDisks() []domain.DiskInfo {
	return []domain.DiskInfo{
		{Device: "nvme0n1p2", DriveType: "NVMe", UsedPercent: 35.0, FreeBytes: 400_000_000_000},
	}
}

func TestRecommendations_HealthyHostGetsExactlyTwo(t *testing.T) {
	recs := Recommendations(healthyCPU(), healthyMemory(), healthyDisks(), 9.0)

	if len(recs) != 2 {
		t.Fatalf("healthy host should only get the general and closing lines, got %d: %v", len(recs), recs)
	}
	if !strings.Contains(recs[0], "GOOD CONDITION") {
		t.Errorf("first line should be the good-condition notice, got %q", recs[0])
	}
	if !strings.Contains(recs[1], "regular preventive maintenance") {
		t.Errorf("closing line should be preventive maintenance, got %q", recs[1])
	}
}

func TestRecommendations_GeneralAndClosingPerBand(t *testing.T) {
	cases := []struct {
		overall     string
		score       float64
		wantFirst   string
		wantClosing string
	}{
		{"discard", 1.0, "CONSIDER REPLACEMENT", "replace the equipment"},
		{"urgent", 4.0, "URGENT MAINTENANCE", "urgent technical maintenance"},
		{"caution", 6.0, "USE WITH CAUTION", "continuous monitoring"},
		{"good", 9.0, "GOOD CONDITION", "regular preventive maintenance"},
	}

	for _, c := range cases {
		recs := Recommendations(healthyCPU(), healthyMemory(), healthyDisks(), c.score)
		if len(recs) == 0 {
			t.Fatalf("%s: recommendations must never be empty", c.overall)
		}
		if !strings.Contains(recs[0], c.wantFirst) {
			t.Errorf("%s: first = %q, want it to contain %q", c.overall, recs[0], c.wantFirst)
		}
		last := recs[len(recs)-1]
		if !strings.Contains(last, c.wantClosing) {
			t.Errorf("%s: closing = %q, want it to contain %q", c.overall, last, c.wantClosing)
		}
	}
}

func TestRecommendations_CPUWarnings(t *testing.T) {
	hot := healthyCPU()
	hot.UsagePercent = 81.0
	recs := Recommendations(hot, healthyMemory(), healthyDisks(), 6.0)
	if !containsSubstring(recs, "very high load") {
		t.Errorf("81%% load should warn about high load, got %v", recs)
	}

	// 80% is the threshold, not inside the warning range.
	warm := healthyCPU()
	warm.UsagePercent = 80.0
	recs = Recommendations(warm, healthyMemory(), healthyDisks(), 6.0)
	if containsSubstring(recs, "very high load") {
		t.Errorf("exactly 80%% load should not warn, got %v", recs)
	}

	single := healthyCPU()
	single.LogicalCores = 1
	recs = Recommendations(single, healthyMemory(), healthyDisks(), 6.0)
	if !containsSubstring(recs, "limits multitasking") {
		t.Errorf("single core should warn about multitasking, got %v", recs)
	}
}

func TestRecommendations_MemoryWarnings(t *testing.T) {
	tight := healthyMemory()
	tight.UsedPercent = 86.0
	recs := Recommendations(healthyCPU(), tight, healthyDisks(), 6.0)
	if !containsSubstring(recs, "consider adding memory") {
		t.Errorf("86%% usage should warn about memory pressure, got %v", recs)
	}

	small := healthyMemory()
	small.TotalBytes = 2 << 30
	recs = Recommendations(healthyCPU(), small, healthyDisks(), 6.0)
	if !containsSubstring(recs, "insufficient memory") {
		t.Errorf("2 GiB total should warn about capacity, got %v", recs)
	}

	// Exactly 4 GiB is enough to stay quiet.
	four := healthyMemory()
	four.TotalBytes = 4 << 30
	recs = Recommendations(healthyCPU(), four, healthyDisks(), 6.0)
	if containsSubstring(recs, "insufficient memory") {
		t.Errorf("4 GiB total should not warn, got %v", recs)
	}

	swapping := healthyMemory()
	swapping.SwapUsedPercent = 51.0
	recs = Recommendations(healthyCPU(), swapping, healthyDisks(), 6.0)
	if !containsSubstring(recs, "excessive swap activity") {
		t.Errorf("51%% swap should warn about swapping, got %v", recs)
	}
}

func TestRecommendations_DiskWarnings(t *testing.T) {
	full := []domain.DiskInfo{
		{Device: "sda1", DriveType: "SSD", UsedPercent: 95.5, FreeBytes: 40_000_000_000},
	}
	recs := Recommendations(healthyCPU(), healthyMemory(), full, 6.0)
	if !containsSubstring(recs, "DISK sda1: nearly full (95.5%)") {
		t.Errorf("a 95.5%% disk should be named with its usage, got %v", recs)
	}

	lowFree := []domain.DiskInfo{
		{Device: "sdb1", DriveType: "SSD", UsedPercent: 50.0, FreeBytes: 9_000_000_000},
	}
	recs = Recommendations(healthyCPU(), healthyMemory(), lowFree, 6.0)
	if !containsSubstring(recs, "DISK sdb1: less than 10GB free") {
		t.Errorf("9 GB free should warn, got %v", recs)
	}
}

func TestRecommendations_HDDBottleneckDependsOnOverall(t *testing.T) {
	hdd := []domain.DiskInfo{
		{Device: "sda1", DriveType: "HDD", UsedPercent: 50.0, FreeBytes: 200_000_000_000},
	}

	recs := Recommendations(healthyCPU(), healthyMemory(), hdd, 6.9)
	if !containsSubstring(recs, "HDD may be limiting performance") {
		t.Errorf("HDD on a 6.9 host should flag the bottleneck, got %v", recs)
	}

	// At 7.0 the host is in good condition and the HDD stops mattering.
	recs = Recommendations(healthyCPU(), healthyMemory(), hdd, 7.0)
	if containsSubstring(recs, "HDD may be limiting performance") {
		t.Errorf("HDD on a 7.0 host should not flag, got %v", recs)
	}
}

func TestRecommendations_EmissionOrder(t *testing.T) {
	cpu := domain.CPUInfo{LogicalCores: 1, UsagePercent: 90.0, FrequencyMHz: 1500}
	mem := domain.MemoryInfo{TotalBytes: 2 << 30, UsedPercent: 95.0, SwapTotalBytes: 4 << 30, SwapUsedPercent: 60.0}
	disks := []domain.DiskInfo{
		{Device: "sda1", DriveType: "HDD", UsedPercent: 96.0, FreeBytes: 5_000_000_000},
		{Device: "sdb1", DriveType: "HDD", UsedPercent: 92.0, FreeBytes: 4_000_000_000},
	}

	recs := Recommendations(cpu, mem, disks, 2.0)

	wantOrder := []string{
		"CONSIDER REPLACEMENT",
		"very high load",
		"limits multitasking",
		"consider adding memory",
		"insufficient memory",
		"excessive swap activity",
		"DISK sda1: nearly full",
		"DISK sda1: HDD",
		"DISK sda1: less than 10GB",
		"DISK sdb1: nearly full",
		"DISK sdb1: HDD",
		"DISK sdb1: less than 10GB",
		"replace the equipment",
	}
	if len(recs) != len(wantOrder) {
		t.Fatalf("got %d recommendations, want %d: %v", len(recs), len(wantOrder), recs)
	}
	for i, want := range wantOrder {
		if !strings.Contains(recs[i], want) {
			t.Errorf("recommendation %d = %q, want it to contain %q", i, recs[i], want)
		}
	}
}

func containsSubstring(list []string, sub string) bool {
	for _, s := range list {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

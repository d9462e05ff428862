package score

import (
	"testing"

	"github.com/GabrielRod726/hardware-diagnostic/internal/domain"
)

func TestRAMScore_NoSwapMidLoad(t *testing.T) {
	// 8 GiB at 85% with no swap configured:
	// usage 4.0*0.5 + swap neutral 8.0*0.3 + capacity 8.0*0.2 = 6.0
	m := domain.MemoryInfo{TotalBytes: 8 << 30, UsedPercent: 85.0}

	got := RAMScore(m)
	if !almostEqual(got, 6.0) {
		t.Errorf("RAMScore = %v, want 6.0", got)
	}
}

func TestRAMScore_UsageBands(t *testing.T) {
	cases := []struct {
		usage float64
		want  float64
	}{
		{0.0, 10.0},
		{59.9, 10.0},
		{60.0, 7.0},
		{74.9, 7.0},
		{75.0, 4.0},
		{89.9, 4.0},
		{90.0, 1.0},
		{100.0, 1.0},
	}

	for _, c := range cases {
		// Swap absent (8.0) and capacity pinned at 32 GiB (10.0).
		got := RAMScore(domain.MemoryInfo{TotalBytes: 32 << 30, UsedPercent: c.usage})
		want := c.want*0.5 + 8.0*0.3 + 10.0*0.2
		if !almostEqual(got, want) {
			t.Errorf("usage=%.1f%%: RAMScore = %v, want %v", c.usage, got, want)
		}
	}
}

func TestRAMScore_SwapNeutralWhenAbsent(t *testing.T) {
	// Zero total swap must not read as "0% of swap used" (a 10.0); it
	// scores the flat neutral 8.0.
	withSwap := domain.MemoryInfo{TotalBytes: 32 << 30, UsedPercent: 10.0, SwapTotalBytes: 2 << 30, SwapUsedPercent: 0.0}
	noSwap := domain.MemoryInfo{TotalBytes: 32 << 30, UsedPercent: 10.0}

	gotWith := RAMScore(withSwap)
	gotWithout := RAMScore(noSwap)

	if !almostEqual(gotWith, 10.0*0.5+10.0*0.3+10.0*0.2) {
		t.Errorf("idle swap should score 10.0: RAMScore = %v", gotWith)
	}
	if !almostEqual(gotWithout, 10.0*0.5+8.0*0.3+10.0*0.2) {
		t.Errorf("absent swap should score the neutral 8.0: RAMScore = %v", gotWithout)
	}
	if gotWithout >= gotWith {
		t.Errorf("no swap (%v) should rank below idle swap (%v)", gotWithout, gotWith)
	}
}

func TestRAMScore_SwapBands(t *testing.T) {
	cases := []struct {
		swapUsage float64
		want      float64
	}{
		{0.0, 10.0},
		{9.9, 10.0},
		{10.0, 7.0},
		{29.9, 7.0},
		{30.0, 4.0},
		{49.9, 4.0},
		{50.0, 1.0},
		{100.0, 1.0},
	}

	for _, c := range cases {
		got := RAMScore(domain.MemoryInfo{
			TotalBytes:      32 << 30,
			UsedPercent:     10.0,
			SwapTotalBytes:  4 << 30,
			SwapUsedPercent: c.swapUsage,
		})
		want := 10.0*0.5 + c.want*0.3 + 10.0*0.2
		if !almostEqual(got, want) {
			t.Errorf("swap=%.1f%%: RAMScore = %v, want %v", c.swapUsage, got, want)
		}
	}
}

func TestRAMScore_CapacityBands(t *testing.T) {
	cases := []struct {
		totalBytes uint64
		want       float64
	}{
		{1 << 30, 3.0},
		{4<<30 - 1, 3.0},
		{4 << 30, 6.0},
		{8<<30 - 1, 6.0},
		{8 << 30, 8.0},
		{16<<30 - 1, 8.0},
		{16 << 30, 10.0},
		{128 << 30, 10.0},
	}

	for _, c := range cases {
		got := RAMScore(domain.MemoryInfo{TotalBytes: c.totalBytes, UsedPercent: 10.0})
		want := 10.0*0.5 + 8.0*0.3 + c.want*0.2
		if !almostEqual(got, want) {
			t.Errorf("total=%d bytes: RAMScore = %v, want %v", c.totalBytes, got, want)
		}
	}
}

func TestRAMScore_ZeroedHost(t *testing.T) {
	// All-zero memory info must not panic and stays in range:
	// usage 10.0*0.5 + neutral swap 8.0*0.3 + capacity 3.0*0.2 = 8.0.
	got := RAMScore(domain.MemoryInfo{})
	if !almostEqual(got, 8.0) {
		t.Errorf("RAMScore of zeroed host = %v, want 8.0", got)
	}
}

package collect

import (
	"testing"

	"github.com/GabrielRod726/hardware-diagnostic/internal/domain"
)

func TestTopByCPU_RanksAndTruncates(t *testing.T) {
	procs := []domain.ProcessInfo{
		{PID: 1, Name: "idle", CPUPercent: 0},
		{PID: 2, Name: "worker", CPUPercent: 35.0},
		{PID: 3, Name: "browser", CPUPercent: 60.0},
		{PID: 4, Name: "shell", CPUPercent: 1.5},
	}

	got := topByCPU(procs, 2)

	if len(got) != 2 {
		t.Fatalf("got %d entries, want 2", len(got))
	}
	if got[0].Name != "browser" || got[1].Name != "worker" {
		t.Errorf("ranking = [%s %s], want [browser worker]", got[0].Name, got[1].Name)
	}
}

func TestTopByCPU_DropsIdleProcesses(t *testing.T) {
	procs := []domain.ProcessInfo{
		{PID: 1, Name: "idle-a", CPUPercent: 0},
		{PID: 2, Name: "idle-b", CPUPercent: 0},
	}

	if got := topByCPU(procs, 5); len(got) != 0 {
		t.Errorf("idle-only hosts should rank nothing, got %v", got)
	}
}

func TestTopByMemory_RanksByResidentBytes(t *testing.T) {
	procs := []domain.ProcessInfo{
		{PID: 1, Name: "tiny", MemoryBytes: 10 << 20},
		{PID: 2, Name: "huge", MemoryBytes: 4 << 30},
		{PID: 3, Name: "medium", MemoryBytes: 500 << 20},
		{PID: 4, Name: "ghost", MemoryBytes: 0},
	}

	got := topByMemory(procs, 10)

	if len(got) != 3 {
		t.Fatalf("got %d entries, want 3 (zero-RSS dropped)", len(got))
	}
	if got[0].Name != "huge" || got[1].Name != "medium" || got[2].Name != "tiny" {
		t.Errorf("ranking = [%s %s %s], want [huge medium tiny]", got[0].Name, got[1].Name, got[2].Name)
	}
}

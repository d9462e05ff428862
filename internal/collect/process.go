package collect

import (
	"context"
	"math"
	"runtime"
	"sort"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/process"

	"github.com/GabrielRod726/hardware-diagnostic/internal/domain"
)

// sampleTopProcesses ranks the heaviest processes by CPU and by
// resident memory. Per-process CPU is measured as the delta between
// two time reads spaced one sample interval apart, normalized by core
// count, so it lines up with the aggregate utilization window.
func sampleTopProcesses(ctx context.Context, n int, interval time.Duration, memTotal uint64) ([]domain.ProcessInfo, []domain.ProcessInfo, error) {
	procs, err := process.ProcessesWithContext(ctx)
	if err != nil {
		return nil, nil, err
	}

	cores := runtime.NumCPU()
	if cores < 1 {
		cores = 1
	}

	prev := make(map[int32]float64, len(procs))
	for _, p := range procs {
		if p == nil {
			continue
		}
		if times, err := p.TimesWithContext(ctx); err == nil {
			prev[p.Pid] = procTimesTotal(times)
		}
	}

	start := time.Now()
	select {
	case <-ctx.Done():
		return nil, nil, ctx.Err()
	case <-time.After(interval):
	}
	elapsed := time.Since(start).Seconds()

	all := make([]domain.ProcessInfo, 0, len(procs))
	for _, p := range procs {
		if p == nil {
			continue
		}
		name, _ := p.NameWithContext(ctx)
		info := domain.ProcessInfo{PID: int(p.Pid), Name: name}

		if times, err := p.TimesWithContext(ctx); err == nil {
			if prevTotal, ok := prev[p.Pid]; ok && elapsed > 0 {
				delta := procTimesTotal(times) - prevTotal
				if delta < 0 {
					delta = 0
				}
				info.CPUPercent = math.Min(delta/elapsed*100/float64(cores), 100)
			}
		}
		if mi, err := p.MemoryInfoWithContext(ctx); err == nil && mi != nil {
			info.MemoryBytes = mi.RSS
			info.MemoryPercent = domain.PercentOf(mi.RSS, memTotal)
		}

		if info.Name == "" && info.CPUPercent == 0 && info.MemoryBytes == 0 {
			continue
		}
		all = append(all, info)
	}

	return topByCPU(all, n), topByMemory(all, n), nil
}

func topByCPU(procs []domain.ProcessInfo, n int) []domain.ProcessInfo {
	ranked := make([]domain.ProcessInfo, 0, len(procs))
	for _, p := range procs {
		if p.CPUPercent > 0 {
			ranked = append(ranked, p)
		}
	}
	sort.Slice(ranked, func(i, j int) bool { return ranked[i].CPUPercent > ranked[j].CPUPercent })
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

func topByMemory(procs []domain.ProcessInfo, n int) []domain.ProcessInfo {
	ranked := make([]domain.ProcessInfo, 0, len(procs))
	for _, p := range procs {
		if p.MemoryBytes > 0 {
			ranked = append(ranked, p)
		}
	}
	sort.Slice(ranked, func(i, j int) bool { return ranked[i].MemoryBytes > ranked[j].MemoryBytes })
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

func procTimesTotal(t *cpu.TimesStat) float64 {
	if t == nil {
		return 0
	}
	return t.User + t.System + t.Idle + t.Nice + t.Iowait + t.Irq + t.Softirq + t.Steal + t.Guest + t.GuestNice
}

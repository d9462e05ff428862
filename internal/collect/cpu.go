package collect

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"

	"github.com/GabrielRod726/hardware-diagnostic/internal/domain"
)

// sampleCPU reads model, core counts, current frequency, and aggregate
// utilization measured over the given interval. Partial reads return
// whatever was gathered plus an error describing the gaps.
func sampleCPU(ctx context.Context, interval time.Duration) (domain.CPUInfo, error) {
	info := domain.CPUInfo{Model: "Unknown"}
	var problems []string

	infos, err := cpu.InfoWithContext(ctx)
	if err != nil {
		problems = append(problems, fmt.Sprintf("cpu info: %v", err))
	} else if len(infos) > 0 {
		if model := strings.TrimSpace(infos[0].ModelName); model != "" {
			info.Model = model
		}
	}

	logical, err := cpu.CountsWithContext(ctx, true)
	if err != nil {
		problems = append(problems, fmt.Sprintf("logical cores: %v", err))
	} else {
		info.LogicalCores = logical
	}

	physical, err := cpu.CountsWithContext(ctx, false)
	if err != nil {
		problems = append(problems, fmt.Sprintf("physical cores: %v", err))
	} else {
		info.PhysicalCores = physical
	}

	info.FrequencyMHz = currentFrequencyMHz(infos)

	percents, err := cpu.PercentWithContext(ctx, interval, false)
	if err != nil {
		problems = append(problems, fmt.Sprintf("cpu usage: %v", err))
	} else if len(percents) > 0 {
		info.UsagePercent = percents[0]
	}

	if len(problems) > 0 {
		return info, fmt.Errorf("%s", strings.Join(problems, "; "))
	}
	return info, nil
}

// currentFrequencyMHz prefers the live scaling frequency on Linux and
// falls back to the advertised frequency from the CPU inventory, which
// is all most platforms expose.
func currentFrequencyMHz(infos []cpu.InfoStat) uint64 {
	if runtime.GOOS == "linux" {
		if mhz, err := linuxScalingFreqMHz(); err == nil && mhz > 0 {
			return mhz
		}
	}

	var sum float64
	var n int
	for _, i := range infos {
		if i.Mhz <= 0 {
			continue
		}
		sum += i.Mhz
		n++
	}
	if n == 0 {
		return 0
	}
	return uint64(sum / float64(n))
}

// linuxScalingFreqMHz averages scaling_cur_freq across the online CPUs.
func linuxScalingFreqMHz() (uint64, error) {
	const cpuRoot = "/sys/devices/system/cpu"

	entries, err := os.ReadDir(cpuRoot)
	if err != nil {
		return 0, err
	}

	var sumKHz, count int64
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.HasPrefix(name, "cpu") {
			continue
		}
		if _, err := strconv.Atoi(strings.TrimPrefix(name, "cpu")); err != nil {
			continue
		}

		base := cpuRoot + "/" + name
		kHz, err := readIntFromFile(base + "/cpufreq/scaling_cur_freq")
		if err != nil || kHz <= 0 {
			kHz, err = readIntFromFile(base + "/cpufreq/cpuinfo_cur_freq")
		}
		if err == nil && kHz > 0 {
			sumKHz += kHz
			count++
		}
	}

	if count == 0 {
		return 0, fmt.Errorf("no cpufreq data found")
	}
	return uint64(sumKHz / count / 1000), nil
}

func readIntFromFile(path string) (int64, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}
	s := strings.TrimSpace(string(b))
	if s == "" {
		return 0, fmt.Errorf("empty")
	}
	return strconv.ParseInt(s, 10, 64)
}

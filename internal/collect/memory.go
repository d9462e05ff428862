package collect

import (
	"context"

	"github.com/shirou/gopsutil/v3/mem"

	"github.com/GabrielRod726/hardware-diagnostic/internal/domain"
)

// sampleMemory reads primary memory and swap. Percentages are derived
// from the byte totals so a zero total reads as 0% instead of dividing
// by zero, and free space follows the total-minus-used convention.
func sampleMemory(ctx context.Context) (domain.MemoryInfo, error) {
	vm, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return domain.MemoryInfo{}, err
	}
	if vm == nil {
		return domain.MemoryInfo{}, nil
	}

	info := domain.MemoryInfo{
		TotalBytes:  vm.Total,
		UsedBytes:   vm.Used,
		UsedPercent: domain.PercentOf(vm.Used, vm.Total),
	}
	if vm.Total >= vm.Used {
		info.FreeBytes = vm.Total - vm.Used
	}

	sm, err := mem.SwapMemoryWithContext(ctx)
	if err != nil {
		return info, err
	}
	if sm != nil {
		info.SwapTotalBytes = sm.Total
		info.SwapUsedBytes = sm.Used
		info.SwapUsedPercent = domain.PercentOf(sm.Used, sm.Total)
	}

	return info, nil
}

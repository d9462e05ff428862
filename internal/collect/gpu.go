package collect

import (
	"strings"

	"github.com/jaypipes/ghw"

	"github.com/GabrielRod726/hardware-diagnostic/internal/domain"
)

// sampleGPUs inventories graphics adapters from the generic PCI data.
// Purely informational: nothing downstream scores on it.
func sampleGPUs() ([]domain.GPUInfo, error) {
	info, err := ghw.GPU()
	if err != nil {
		return nil, err
	}

	gpus := make([]domain.GPUInfo, 0, len(info.GraphicsCards))
	for _, card := range info.GraphicsCards {
		if card == nil || card.DeviceInfo == nil {
			continue
		}
		g := domain.GPUInfo{}
		if card.DeviceInfo.Vendor != nil {
			g.Vendor = strings.TrimSpace(card.DeviceInfo.Vendor.Name)
		}
		if card.DeviceInfo.Product != nil {
			g.Product = strings.TrimSpace(card.DeviceInfo.Product.Name)
		}
		if g.Vendor == "" && g.Product == "" {
			continue
		}
		gpus = append(gpus, g)
	}
	return gpus, nil
}

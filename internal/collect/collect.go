// Package collect reads the host's hardware state into a single
// point-in-time snapshot. Collection is best-effort: anything that
// cannot be read becomes a warning on the snapshot instead of failing
// the whole pass, so a partial view still scores and renders.
package collect

import (
	"context"
	"fmt"
	"runtime"
	"strings"
	"time"

	"github.com/shirou/gopsutil/v3/host"
	"golang.org/x/sync/errgroup"

	"github.com/GabrielRod726/hardware-diagnostic/internal/domain"
)

// DefaultSampleInterval is the window over which aggregate CPU
// utilization is measured. It bounds the wall time of a collection
// pass; the other probes run concurrently inside it.
const DefaultSampleInterval = 500 * time.Millisecond

type Options struct {
	// SampleInterval is the CPU utilization measurement window.
	SampleInterval time.Duration
	// AllPartitions includes pseudo and virtual filesystems instead of
	// the curated physical-volume selection.
	AllPartitions bool
	// TopProcesses is how many processes to rank by CPU and by memory.
	// Zero disables process collection.
	TopProcesses int
	// GPU toggles graphics adapter inventory.
	GPU bool
}

func DefaultOptions() Options {
	return Options{
		SampleInterval: DefaultSampleInterval,
		TopProcesses:   5,
		GPU:            true,
	}
}

// Snapshot gathers one capture of the host. Memory is read up front
// (one cheap probe, and the process ranking needs the total); CPU,
// disk, GPU and process probes then fan out concurrently, so the call
// blocks for roughly one sample interval. Only CPU and memory are
// essential: the pass fails when both are unreadable, anything less
// degrades to warnings.
func Snapshot(ctx context.Context, opts Options) (*domain.Snapshot, error) {
	if opts.SampleInterval <= 0 {
		opts.SampleInterval = DefaultSampleInterval
	}

	snap := &domain.Snapshot{TakenAt: time.Now().UTC()}
	fillHostInfo(ctx, snap)

	memInfo, memErr := sampleMemory(ctx)

	var (
		cpuInfo domain.CPUInfo
		cpuErr  error
		disks   []domain.DiskInfo
		diskErr error
		gpus    []domain.GPUInfo
		gpuErr  error
		topCPU  []domain.ProcessInfo
		topMem  []domain.ProcessInfo
		procErr error
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		cpuInfo, cpuErr = sampleCPU(gctx, opts.SampleInterval)
		return nil
	})
	g.Go(func() error {
		disks, diskErr = sampleDisks(gctx, opts.AllPartitions)
		return nil
	})
	if opts.GPU {
		g.Go(func() error {
			gpus, gpuErr = sampleGPUs()
			return nil
		})
	}
	if opts.TopProcesses > 0 {
		g.Go(func() error {
			topCPU, topMem, procErr = sampleTopProcesses(gctx, opts.TopProcesses, opts.SampleInterval, memInfo.TotalBytes)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if cpuErr != nil && memErr != nil {
		return nil, fmt.Errorf("host state unreadable: cpu: %v; memory: %v", cpuErr, memErr)
	}

	snap.CPU = cpuInfo
	snap.Memory = memInfo
	snap.Disks = disks
	snap.GPUs = gpus
	snap.TopByCPU = topCPU
	snap.TopByMemory = topMem

	for _, e := range []struct {
		name string
		err  error
	}{
		{"cpu", cpuErr},
		{"memory", memErr},
		{"disks", diskErr},
		{"gpu", gpuErr},
		{"processes", procErr},
	} {
		if e.err != nil {
			snap.Warnings = append(snap.Warnings, fmt.Sprintf("%s: %v", e.name, e.err))
		}
	}

	return snap, nil
}

func fillHostInfo(ctx context.Context, snap *domain.Snapshot) {
	info, err := host.InfoWithContext(ctx)
	if err != nil || info == nil {
		snap.Platform = runtime.GOOS
		return
	}
	snap.Hostname = info.Hostname
	snap.Platform = strings.TrimSpace(info.Platform + " " + info.PlatformVersion)
	if snap.Platform == "" {
		snap.Platform = runtime.GOOS
	}
}

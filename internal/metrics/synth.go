package metrics

import (
	"fmt"
	"math"
	"math/rand"
	"time"
)

// SynthSource generates plausible-looking system metrics from seeded random
// walks. It stands in for an OS collector so the dashboard renders the same
// on any machine, and deterministically under a fixed seed.
type SynthSource struct {
	rng   *rand.Rand
	tick  int
	cores []float64
	mem   float64
	swap  float64
	disks []DiskUsage
}

// NewSynthSource creates a source with the given core count and seed.
func NewSynthSource(coreCount int, seed int64) *SynthSource {
	s := &SynthSource{
		rng:   rand.New(rand.NewSource(seed)),
		cores: make([]float64, coreCount),
	}
	for i := range s.cores {
		s.cores[i] = 10 + s.rng.Float64()*40
	}
	s.mem = 35 + s.rng.Float64()*20
	s.swap = s.rng.Float64() * 5
	s.disks = []DiskUsage{
		{Device: "/dev/nvme0n1p2", Mount: "/", TotalBytes: 512 << 30},
		{Device: "/dev/nvme0n1p1", Mount: "/boot", TotalBytes: 1 << 30},
		{Device: "/dev/sda1", Mount: "/data", TotalBytes: 4096 << 30},
		{Device: "tmpfs", Mount: "/run", TotalBytes: 16 << 30},
	}
	for i := range s.disks {
		used := float64(s.disks[i].TotalBytes) * (0.2 + s.rng.Float64()*0.6)
		s.disks[i].UsedBytes = int64(used)
		s.disks[i].FreeBytes = s.disks[i].TotalBytes - s.disks[i].UsedBytes
	}
	return s
}

// Next advances the walks one step and returns the resulting snapshot. The
// first core entry is the average of the rest.
func (s *SynthSource) Next() Snapshot {
	s.tick++

	cores := make([]CoreUsage, 0, len(s.cores)+1)
	sum := 0.0
	for i := range s.cores {
		// Random walk with a slow sine drift so graphs show shape
		drift := 15 * math.Sin(float64(s.tick)/20+float64(i))
		s.cores[i] = clampPct(s.cores[i] + s.rng.Float64()*10 - 5 + drift*0.1)
		sum += s.cores[i]
	}
	avg := 0.0
	if len(s.cores) > 0 {
		avg = sum / float64(len(s.cores))
	}
	cores = append(cores, CoreUsage{Name: "AVG", Percent: avg})
	for i, v := range s.cores {
		cores = append(cores, CoreUsage{Name: fmt.Sprintf("CPU%d", i), Percent: v})
	}

	s.mem = clampPct(s.mem + s.rng.Float64()*2 - 1)
	s.swap = clampPct(s.swap + s.rng.Float64()*0.6 - 0.3)

	disks := make([]DiskUsage, len(s.disks))
	copy(disks, s.disks)
	for i := range disks {
		disks[i].ReadPerSec = s.rng.Float64() * 50 * 1024 * 1024
		disks[i].WritePerSec = s.rng.Float64() * 20 * 1024 * 1024
	}

	return Snapshot{
		Time:   time.Now(),
		Cores:  cores,
		Memory: MemoryUsage{UsedPercent: s.mem, SwapPercent: s.swap},
		Disks:  disks,
	}
}

func clampPct(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

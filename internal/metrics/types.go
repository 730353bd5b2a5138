// Package metrics defines the snapshot types the dashboard renders, keeps
// their history in ring buffers, and converts both into the numeric series
// and string rows the widgets consume. Collection itself lives behind the
// Source interface; this repo ships a synthetic source so the dashboard is
// runnable anywhere.
package metrics

import "time"

// Snapshot is one sample of everything the dashboard displays.
type Snapshot struct {
	Time   time.Time
	Cores  []CoreUsage
	Memory MemoryUsage
	Disks  []DiskUsage
}

// CoreUsage is the utilization of one CPU core. The producer may prepend an
// aggregate "AVG" entry; it is treated like any other core except for
// styling.
type CoreUsage struct {
	Name    string
	Percent float64
}

// MemoryUsage is main and swap memory utilization.
type MemoryUsage struct {
	UsedPercent float64
	SwapPercent float64
}

// DiskUsage is one mounted filesystem with its throughput rates.
type DiskUsage struct {
	Device      string
	Mount       string
	UsedBytes   int64
	FreeBytes   int64
	TotalBytes  int64
	ReadPerSec  float64
	WritePerSec float64
}

// Source produces snapshots for the dashboard.
type Source interface {
	Next() Snapshot
}

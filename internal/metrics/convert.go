package metrics

import (
	"fmt"

	"github.com/gridtop/gridtop/internal/chart"
	"github.com/gridtop/gridtop/internal/theme"
)

// CoreDatasets converts per-core history into chart datasets, one per core.
// The first series is the aggregate and uses the theme's average style; the
// rest cycle through the theme's core palette.
func CoreDatasets(h *History, th theme.Theme, marker chart.Marker) []chart.Dataset {
	out := make([]chart.Dataset, 0, h.CoreCount())
	for i := 0; i < h.CoreCount(); i++ {
		style := th.AvgCore
		if i > 0 {
			style = th.Core(i - 1)
		}
		out = append(out, chart.Dataset{
			Points: seriesPoints(h.Core(i)),
			Type:   chart.Line,
			Marker: marker,
			Style:  style,
		})
	}
	return out
}

// MemoryDatasets converts memory history into named Mem and Swap datasets.
// The names feed the chart legend.
func MemoryDatasets(h *History, th theme.Theme, marker chart.Marker) []chart.Dataset {
	return []chart.Dataset{
		{
			Name:   "Mem",
			Points: seriesPoints(h.Memory()),
			Type:   chart.Line,
			Marker: marker,
			Style:  th.MemMain,
		},
		{
			Name:   "Swap",
			Points: seriesPoints(h.Swap()),
			Type:   chart.Line,
			Marker: marker,
			Style:  th.MemSwap,
		},
	}
}

func seriesPoints(values []float64) []chart.Point {
	pts := make([]chart.Point, len(values))
	for i, v := range values {
		pts[i] = chart.Point{X: float64(i), Y: v}
	}
	return pts
}

// CoreRows renders the latest snapshot's cores as name/percent table rows.
func CoreRows(snap Snapshot) [][]string {
	rows := make([][]string, len(snap.Cores))
	for i, c := range snap.Cores {
		rows[i] = []string{c.Name, fmt.Sprintf("%.0f%%", c.Percent)}
	}
	return rows
}

// DiskRows renders disk usage as table rows: device, mount, used, free,
// total, read rate, write rate.
func DiskRows(disks []DiskUsage) [][]string {
	rows := make([][]string, len(disks))
	for i, d := range disks {
		rows[i] = []string{
			d.Device,
			d.Mount,
			FormatBytes(d.UsedBytes),
			FormatBytes(d.FreeBytes),
			FormatBytes(d.TotalBytes),
			FormatRate(d.ReadPerSec),
			FormatRate(d.WritePerSec),
		}
	}
	return rows
}

// FormatBytes renders a byte count compactly ("512B", "4.2MB", "462GB").
// Values stay within five characters until the petabyte range.
func FormatBytes(b int64) string {
	f := float64(b)
	for _, unit := range []string{"B", "KB", "MB", "GB", "TB"} {
		if f < 1000 {
			if f < 10 && unit != "B" {
				return fmt.Sprintf("%.1f%s", f, unit)
			}
			return fmt.Sprintf("%.0f%s", f, unit)
		}
		f /= 1000
	}
	return fmt.Sprintf("%.0fPB", f)
}

// FormatRate renders a bytes-per-second rate ("4.2MB/s").
func FormatRate(bytesPerSec float64) string {
	return FormatBytes(int64(bytesPerSec)) + "/s"
}

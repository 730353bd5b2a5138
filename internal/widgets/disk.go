package widgets

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/gridtop/gridtop/internal/geom"
	"github.com/gridtop/gridtop/internal/metrics"
	"github.com/gridtop/gridtop/internal/render"
	"github.com/gridtop/gridtop/internal/table"
	"github.com/gridtop/gridtop/internal/theme"
)

// DiskTable lists mounted filesystems with usage and throughput. The size
// and rate columns are fixed-width; device and mount flex over the rest and
// drop out first on narrow terminals.
type DiskTable struct {
	theme theme.Theme
	opts  Options
	tbl   *table.TextTable
	rows  [][]string
}

// NewDiskTable creates the disk table widget.
func NewDiskTable(th theme.Theme, opts Options) *DiskTable {
	tbl := &table.TextTable{
		Columns: []table.Column{
			{Name: "Disk", MinWidth: 4, Flex: 0.4},
			{Name: "Mount", MinWidth: 5, Flex: 0.6},
			{Name: "Used", HardWidth: 5},
			{Name: "Free", HardWidth: 6},
			{Name: "Total", HardWidth: 6},
			{Name: "R/s", HardWidth: 7},
			{Name: "W/s", HardWidth: 7},
		},
		Styles: table.Styles{
			Header:   th.TableHeader,
			Row:      th.Text,
			Selected: th.SelectedRow,
			Index:    th.TextMuted,
		},
		ShowGap:         opts.TableGap,
		ShowScrollIndex: opts.ShowScrollIndex,
	}
	return &DiskTable{theme: th, opts: opts, tbl: tbl}
}

// UpdateData replaces the cached disk rows from the snapshot.
func (w *DiskTable) UpdateData(snap metrics.Snapshot, _ *metrics.History) {
	w.rows = metrics.DiskRows(snap.Disks)
}

// Draw renders the disk table into area.
func (w *DiskTable) Draw(buf *render.Buffer, area geom.Rect, ctx Context) {
	title := " Disks "
	if ctx.Expanded {
		title = " Disks ── Esc to go back "
	}
	inner := frame(buf, area, title, w.theme, w.opts, ctx)
	if inner.Empty() {
		return
	}
	scroll := ctx.Scroll
	if scroll == nil {
		scroll = &table.ScrollContext{}
	}
	w.tbl.Draw(buf, inner, w.rows, scroll)
}

// HandleKey moves the disk selection.
func (w *DiskTable) HandleKey(msg tea.KeyMsg, ctx Context) EventResult {
	return tableScroll(msg, ctx, len(w.rows))
}

// HandleMouse scrolls the disk selection with the wheel.
func (w *DiskTable) HandleMouse(msg tea.MouseMsg, ctx Context) EventResult {
	return tableWheel(msg, ctx, len(w.rows))
}

package widgets

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/gridtop/gridtop/internal/chart"
	"github.com/gridtop/gridtop/internal/geom"
	"github.com/gridtop/gridtop/internal/metrics"
	"github.com/gridtop/gridtop/internal/render"
	"github.com/gridtop/gridtop/internal/table"
	"github.com/gridtop/gridtop/internal/theme"
)

// CPUGraph renders per-core utilization history as a multi-series line
// chart. The y range is padded half a percent past [0,100] so flat-lined
// series at either extreme stay visible instead of merging into the border.
type CPUGraph struct {
	theme    theme.Theme
	opts     Options
	datasets []chart.Dataset
	histSize int
}

// NewCPUGraph creates the CPU chart widget.
func NewCPUGraph(th theme.Theme, opts Options) *CPUGraph {
	return &CPUGraph{theme: th, opts: opts, histSize: metrics.DefaultHistorySize}
}

// UpdateData replaces the cached core series from history.
func (w *CPUGraph) UpdateData(_ metrics.Snapshot, hist *metrics.History) {
	w.histSize = hist.Size()
	w.datasets = metrics.CoreDatasets(hist, w.theme, w.opts.marker())
}

// Draw renders the chart into area.
func (w *CPUGraph) Draw(buf *render.Buffer, area geom.Rect, ctx Context) {
	title := " CPU "
	if ctx.Expanded {
		title = " CPU ── Esc to go back "
	}
	inner := frame(buf, area, title, w.theme, w.opts, ctx)
	if inner.Empty() {
		return
	}

	c := chart.New(w.datasets...)
	c.XAxis = chart.Axis{Bounds: [2]float64{0, float64(geom.Max(w.histSize-1, 1))}}
	c.YAxis = chart.Axis{
		Labels: []string{"0%", "100%"},
		Bounds: [2]float64{-0.5, 100.5},
		Style:  w.theme.Axis,
	}
	c.BorderStyle = w.theme.Border
	c.Draw(buf, inner)
}

// HandleKey ignores all keys; expansion is routed by the dashboard.
func (w *CPUGraph) HandleKey(tea.KeyMsg, Context) EventResult { return NotHandled }

// HandleMouse ignores all mouse events.
func (w *CPUGraph) HandleMouse(tea.MouseMsg, Context) EventResult { return NotHandled }

// CPULegend lists every core with its current utilization, colored to match
// the chart series.
type CPULegend struct {
	theme theme.Theme
	opts  Options
	tbl   *table.TextTable
	rows  [][]string
}

// NewCPULegend creates the per-core legend table widget.
func NewCPULegend(th theme.Theme, opts Options) *CPULegend {
	tbl := &table.TextTable{
		Columns: []table.Column{
			{Name: "CPU", MinWidth: 4, Flex: 0.5},
			{Name: "Use%", MinWidth: 4, Flex: 0.5},
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
	// Row colors match the chart: the aggregate first, then the core cycle.
	tbl.RowStyle = func(i int) lipgloss.Style {
		if i == 0 {
			return th.AvgCore
		}
		return th.Core(i - 1)
	}
	return &CPULegend{theme: th, opts: opts, tbl: tbl}
}

// UpdateData replaces the cached name/percent rows from the snapshot.
func (w *CPULegend) UpdateData(snap metrics.Snapshot, _ *metrics.History) {
	w.rows = metrics.CoreRows(snap)
}

// Draw renders the legend table into area.
func (w *CPULegend) Draw(buf *render.Buffer, area geom.Rect, ctx Context) {
	inner := frame(buf, area, "", w.theme, w.opts, ctx)
	if inner.Empty() {
		return
	}
	scroll := ctx.Scroll
	if scroll == nil {
		scroll = &table.ScrollContext{}
	}
	w.tbl.Draw(buf, inner, w.rows, scroll)
}

// HandleKey moves the core selection.
func (w *CPULegend) HandleKey(msg tea.KeyMsg, ctx Context) EventResult {
	return tableScroll(msg, ctx, len(w.rows))
}

// HandleMouse scrolls the core selection with the wheel.
func (w *CPULegend) HandleMouse(msg tea.MouseMsg, ctx Context) EventResult {
	return tableWheel(msg, ctx, len(w.rows))
}

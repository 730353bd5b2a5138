package widgets

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/gridtop/gridtop/internal/chart"
	"github.com/gridtop/gridtop/internal/geom"
	"github.com/gridtop/gridtop/internal/metrics"
	"github.com/gridtop/gridtop/internal/render"
	"github.com/gridtop/gridtop/internal/theme"
)

// MemGraph renders main and swap memory history as two named series; the
// names give the chart its in-plot legend box.
type MemGraph struct {
	theme    theme.Theme
	opts     Options
	datasets []chart.Dataset
	histSize int
}

// NewMemGraph creates the memory chart widget.
func NewMemGraph(th theme.Theme, opts Options) *MemGraph {
	return &MemGraph{theme: th, opts: opts, histSize: metrics.DefaultHistorySize}
}

// UpdateData replaces the cached memory and swap series from history.
func (w *MemGraph) UpdateData(_ metrics.Snapshot, hist *metrics.History) {
	w.histSize = hist.Size()
	w.datasets = metrics.MemoryDatasets(hist, w.theme, w.opts.marker())
}

// Draw renders the chart into area.
func (w *MemGraph) Draw(buf *render.Buffer, area geom.Rect, ctx Context) {
	title := " Memory "
	if ctx.Expanded {
		title = " Memory ── Esc to go back "
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
func (w *MemGraph) HandleKey(tea.KeyMsg, Context) EventResult { return NotHandled }

// HandleMouse ignores all mouse events.
func (w *MemGraph) HandleMouse(tea.MouseMsg, Context) EventResult { return NotHandled }

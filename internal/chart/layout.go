package chart

import (
	"github.com/mattn/go-runewidth"

	"github.com/gridtop/gridtop/internal/geom"
)

// Position is a single cell coordinate.
type Position struct {
	X int
	Y int
}

// ChartLayout is the resolved placement of every chart element inside the
// bounding rectangle. It is ephemeral: recomputed on every draw call.
// Absent elements (no room, or not requested) have their Has flag unset.
type ChartLayout struct {
	LabelX    int // row for x-axis labels
	HasLabelX bool
	LabelY    int // column for y-axis labels
	HasLabelY bool
	AxisX     int // row for the x tick line
	HasAxisX  bool
	AxisY     int // column for the y tick line
	HasAxisY  bool
	TitleX    Position
	HasTitleX bool
	TitleY    Position
	HasTitleY bool

	LegendArea geom.Rect
	HasLegend  bool

	// GraphArea is the plot rectangle. Empty when the bounds cannot fit a
	// single graph row or column after reservations.
	GraphArea geom.Rect
}

// LayoutEngine resolves chart element placement for a bounding rectangle.
type LayoutEngine interface {
	Layout(bounds geom.Rect) ChartLayout
}

// Layout computes the internal chart layout for the given bounds. Each
// reservation consumes space for the next, and every step is individually
// guarded: when room runs out the element is skipped, never overlapped.
func (c *Chart) Layout(bounds geom.Rect) ChartLayout {
	var layout ChartLayout
	if bounds.Empty() {
		return layout
	}

	x := bounds.Left()
	y := bounds.Bottom() - 1

	// Bottom row: x-axis labels
	if c.XAxis.HasLabels() && y > bounds.Top() {
		layout.LabelX = y
		layout.HasLabelX = true
		y--
	}

	// Left columns: y-axis labels (width also reserves room for the first
	// x-axis label, which hangs left of the y axis)
	if c.YAxis.HasLabels() {
		layout.LabelY = x
		layout.HasLabelY = true
	}
	x += c.labelColumnWidth(bounds)

	// One row for the x tick line
	if c.XAxis.HasLabels() && y > bounds.Top() {
		layout.AxisX = y
		layout.HasAxisX = true
		y--
	}

	// One column for the y tick line
	if c.YAxis.HasLabels() && x+1 < bounds.Right() {
		layout.AxisY = x
		layout.HasAxisY = true
		x++
	}

	if x < bounds.Right() && y > 1 {
		layout.GraphArea = geom.NewRect(x, bounds.Top(), bounds.Right()-x, y-bounds.Top()+1)
	}

	if c.XAxis.Title != "" {
		w := runewidth.StringWidth(c.XAxis.Title)
		if w < layout.GraphArea.Width && layout.GraphArea.Height > 2 {
			layout.TitleX = Position{X: x + layout.GraphArea.Width - w, Y: y}
			layout.HasTitleX = true
		}
	}

	if c.YAxis.Title != "" {
		w := runewidth.StringWidth(c.YAxis.Title)
		if w+1 < layout.GraphArea.Width && layout.GraphArea.Height > 2 {
			layout.TitleY = Position{X: x, Y: bounds.Top()}
			layout.HasTitleY = true
		}
	}

	// Legend: shown only when it stays strictly under the constraint
	// fraction of the plot area in both dimensions. Strict comparisons are
	// deliberate; the hide/show boundary is user-visible at resize.
	if inner := c.maxDatasetNameWidth(); inner > 0 {
		legendWidth := inner + 2
		legendHeight := len(c.Datasets) + 2
		maxWidth := c.LegendConstraints[0].Apply(layout.GraphArea.Width)
		maxHeight := c.LegendConstraints[1].Apply(layout.GraphArea.Height)
		if legendWidth < maxWidth && legendHeight < maxHeight {
			layout.LegendArea = geom.NewRect(
				layout.GraphArea.Right()-legendWidth,
				layout.GraphArea.Top(),
				legendWidth,
				legendHeight,
			)
			layout.HasLegend = true
		}
	}

	return layout
}

// labelColumnWidth returns the width reserved left of the y axis: the widest
// y label, or the first x label if wider, capped at a third of the total
// width so labels cannot swallow the chart on narrow terminals.
func (c *Chart) labelColumnWidth(bounds geom.Rect) int {
	maxWidth := c.YAxis.maxLabelWidth()
	if len(c.XAxis.Labels) > 0 {
		maxWidth = geom.Max(maxWidth, runewidth.StringWidth(c.XAxis.Labels[0]))
	}
	return geom.Min(maxWidth, bounds.Width/3)
}

// maxDatasetNameWidth returns the display width of the widest dataset name.
func (c *Chart) maxDatasetNameWidth() int {
	w := 0
	for _, d := range c.Datasets {
		w = geom.Max(w, d.NameWidth())
	}
	return w
}

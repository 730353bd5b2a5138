package chart

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/gridtop/gridtop/internal/geom"
	"github.com/gridtop/gridtop/internal/render"
)

// DefaultLegendConstraints hides the legend once it would occupy a quarter
// or more of the plot area in either dimension.
var DefaultLegendConstraints = [2]geom.Ratio{{Num: 1, Den: 4}, {Num: 1, Den: 4}}

// Chart renders datasets with axes and an optional legend into a bounding
// rectangle. It owns no toolkit state: construct one per draw call or reuse
// it, either way Draw is a pure function of the fields.
type Chart struct {
	XAxis    Axis
	YAxis    Axis
	Datasets []Dataset

	// LegendConstraints caps the legend size as a fraction of the plot
	// area; the legend is hidden when it would not fit strictly under both.
	LegendConstraints [2]geom.Ratio

	// BorderStyle is used for the legend box border.
	BorderStyle lipgloss.Style

	// Background restores the cells under the legend and titles before they
	// are drawn on top of plotted data.
	Background lipgloss.Style

	series SeriesRenderer
}

// New creates a chart over the given datasets with default legend
// constraints.
func New(datasets ...Dataset) *Chart {
	return &Chart{
		Datasets:          datasets,
		LegendConstraints: DefaultLegendConstraints,
		series:            seriesRenderer{},
	}
}

// WithSeriesRenderer overrides the rasterizer. Used by tests; the default
// renderer handles both marker kinds.
func (c *Chart) WithSeriesRenderer(r SeriesRenderer) *Chart {
	c.series = r
	return c
}

// Draw performs one full layout and render pass into buf at area. Writes
// happen in a fixed order (labels, tick lines, series, legend, titles)
// because later writers may overwrite earlier ones; the axis corner glyph
// in particular must land after both tick lines.
func (c *Chart) Draw(buf *render.Buffer, area geom.Rect) {
	if area.Empty() {
		return
	}
	if c.series == nil {
		c.series = seriesRenderer{}
	}

	layout := c.Layout(area)
	graph := layout.GraphArea
	if graph.Width < 1 || graph.Height < 1 {
		return
	}

	c.renderXLabels(buf, layout, area, graph)
	c.renderYLabels(buf, layout, area, graph)

	if layout.HasAxisX {
		for x := graph.Left(); x < graph.Right(); x++ {
			buf.SetCell(x, layout.AxisX, render.LineHorizontal, c.XAxis.Style)
		}
	}
	if layout.HasAxisY {
		for y := graph.Top(); y < graph.Bottom(); y++ {
			buf.SetCell(layout.AxisY, y, render.LineVertical, c.YAxis.Style)
		}
	}
	// The corner glyph must land after both tick lines
	if layout.HasAxisX && layout.HasAxisY {
		buf.SetCell(layout.AxisY, layout.AxisX, render.CornerBottomLeft, c.XAxis.Style)
	}

	for _, ds := range c.Datasets {
		c.series.RenderSeries(buf, graph, ds, c.XAxis.Bounds, c.YAxis.Bounds)
	}

	c.renderLegend(buf, layout, c.Background)

	if layout.HasTitleX {
		width := geom.SaturatingSub(graph.Right(), layout.TitleX.X)
		buf.Fill(geom.NewRect(layout.TitleX.X, layout.TitleX.Y, width, 1), ' ', c.Background)
		buf.SetString(layout.TitleX.X, layout.TitleX.Y, c.XAxis.Title, width, c.XAxis.Style)
	}
	if layout.HasTitleY {
		width := geom.SaturatingSub(graph.Right(), layout.TitleY.X)
		buf.Fill(geom.NewRect(layout.TitleY.X, layout.TitleY.Y, width, 1), ' ', c.Background)
		buf.SetString(layout.TitleY.X, layout.TitleY.Y, c.YAxis.Title, width, c.YAxis.Style)
	}
}

// renderXLabels places x-axis labels along the label row. The first label
// hangs left of the y axis; the rest sit left of their tick positions.
// A single label has no tick spacing to anchor to and is skipped.
func (c *Chart) renderXLabels(buf *render.Buffer, layout ChartLayout, bounds, graph geom.Rect) {
	if !layout.HasLabelX {
		return
	}
	labels := c.XAxis.Labels
	if len(labels) < 2 {
		return
	}
	tickSpacing := graph.Width / (len(labels) - 1)
	for i, label := range labels {
		labelWidth := runewidth.StringWidth(label)
		if i == 0 {
			labelWidth = geom.Min(labelWidth, geom.SaturatingSub(graph.Left(), bounds.Left()))
		} else {
			labelWidth = geom.Min(labelWidth, tickSpacing)
		}
		x := graph.Left() + i*tickSpacing - labelWidth
		buf.SetString(x, layout.LabelX, label, labelWidth, c.XAxis.Style)
	}
}

// renderYLabels places y-axis labels in the label column, bottom to top,
// evenly spread over the graph height.
func (c *Chart) renderYLabels(buf *render.Buffer, layout ChartLayout, bounds, graph geom.Rect) {
	if !layout.HasLabelY {
		return
	}
	labels := c.YAxis.Labels
	if len(labels) == 0 {
		return
	}
	labelWidth := geom.SaturatingSub(graph.Left(), bounds.Left())
	span := geom.Max(len(labels)-1, 1)
	for i, label := range labels {
		dy := i * (graph.Height - 1) / span
		if dy < graph.Bottom() {
			buf.SetString(layout.LabelY, graph.Bottom()-1-dy, label, labelWidth, c.YAxis.Style)
		}
	}
}

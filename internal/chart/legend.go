package chart

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/gridtop/gridtop/internal/render"
)

// renderLegend draws the bordered legend box with one dataset name per row,
// in dataset order. The area is restyled to the chart's background first so
// the box does not inherit data styling drawn underneath it. Names beyond
// the box height are truncated; upstream sizing makes that unreachable, the
// check is purely defensive.
func (c *Chart) renderLegend(buf *render.Buffer, layout ChartLayout, background lipgloss.Style) {
	if !layout.HasLegend {
		return
	}
	area := layout.LegendArea

	buf.Fill(area, ' ', background)
	render.DrawBox(buf, area, c.BorderStyle)

	innerWidth := area.Width - 2
	for i, ds := range c.Datasets {
		if i >= area.Height-2 {
			break
		}
		buf.SetString(area.Left()+1, area.Top()+1+i, ds.Name, innerWidth, ds.Style)
	}
}

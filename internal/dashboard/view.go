package dashboard

import (
	"github.com/gridtop/gridtop/internal/geom"
	"github.com/gridtop/gridtop/internal/render"
)

// minimum terminal size below which nothing useful fits
const (
	minWidth  = 20
	minHeight = 8
)

// renderFrame draws one full frame: every visible widget into a shared cell
// buffer, then the footer line below it.
func (m Model) renderFrame() string {
	if m.width < minWidth || m.height < minHeight {
		return "Terminal too small for gridtop"
	}

	content := m.renderContentRect()
	buf := render.NewBuffer(content)

	if m.expanded {
		m.widgets[m.focused].Draw(buf, content, m.widgetContext(m.focused))
	} else {
		areas := m.layoutAreas(content)
		for id, area := range areas {
			if !area.Empty() {
				m.widgets[id].Draw(buf, area, m.widgetContext(focusArea(id)))
			}
		}
	}

	if m.showHelp {
		m.renderHelpOverlay(buf, content)
	}

	return buf.String() + "\n" + m.help.View(m.keys)
}

// renderContentRect returns the buffer rectangle above the footer line.
func (m Model) renderContentRect() geom.Rect {
	return geom.NewRect(0, 0, m.width, geom.Max(m.height-1, 1))
}

// layoutAreas splits the content area into the four widget slots: the CPU
// chart with its legend across the top, memory and disks across the bottom.
// The legend side follows the left_legend setting.
func (m Model) layoutAreas(content geom.Rect) [focusCount]geom.Rect {
	var areas [focusCount]geom.Rect

	topHeight := content.Height / 2
	legendWidth := geom.Clamp(content.Width/5, 10, 16)
	graphWidth := geom.SaturatingSub(content.Width, legendWidth)

	if m.cfg.LeftLegend {
		areas[focusCPULegend] = geom.NewRect(content.Left(), content.Top(), legendWidth, topHeight)
		areas[focusCPUGraph] = geom.NewRect(content.Left()+legendWidth, content.Top(), graphWidth, topHeight)
	} else {
		areas[focusCPUGraph] = geom.NewRect(content.Left(), content.Top(), graphWidth, topHeight)
		areas[focusCPULegend] = geom.NewRect(content.Left()+graphWidth, content.Top(), legendWidth, topHeight)
	}

	bottomTop := content.Top() + topHeight
	bottomHeight := content.Height - topHeight
	memWidth := content.Width / 2
	areas[focusMemGraph] = geom.NewRect(content.Left(), bottomTop, memWidth, bottomHeight)
	areas[focusDiskTable] = geom.NewRect(content.Left()+memWidth, bottomTop, content.Width-memWidth, bottomHeight)

	return areas
}

// renderHelpOverlay draws the key binding reference centered over the frame.
func (m Model) renderHelpOverlay(buf *render.Buffer, content geom.Rect) {
	lines := []string{}
	keyWidth := 0
	for _, group := range m.keys.FullHelp() {
		for _, b := range group {
			keyWidth = geom.Max(keyWidth, len(b.Help().Key))
		}
	}
	for gi, group := range m.keys.FullHelp() {
		if gi > 0 {
			lines = append(lines, "")
		}
		for _, b := range group {
			h := b.Help()
			pad := keyWidth - len(h.Key)
			line := h.Key
			for i := 0; i < pad; i++ {
				line += " "
			}
			lines = append(lines, line+"  "+h.Desc)
		}
	}

	innerWidth := 0
	for _, l := range lines {
		innerWidth = geom.Max(innerWidth, len(l))
	}
	boxWidth := geom.Min(innerWidth+4, content.Width)
	boxHeight := geom.Min(len(lines)+2, content.Height)
	box := geom.NewRect(
		content.Left()+(content.Width-boxWidth)/2,
		content.Top()+(content.Height-boxHeight)/2,
		boxWidth,
		boxHeight,
	)

	buf.Fill(box, ' ', m.theme.Text)
	render.DrawBox(buf, box, m.theme.HighlightedBorder)
	render.DrawBoxTitle(buf, box, " Keys ", m.theme.Title)
	for i, line := range lines {
		if i >= box.Height-2 {
			break
		}
		buf.SetString(box.Left()+2, box.Top()+1+i, line, box.Width-4, m.theme.Text)
	}
}

package render

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/gridtop/gridtop/internal/geom"
)

// Box-drawing runes shared by borders, axis lines and the legend frame.
const (
	LineHorizontal   = '─'
	LineVertical     = '│'
	CornerTopLeft    = '┌'
	CornerTopRight   = '┐'
	CornerBottomLeft = '└'
	CornerBottomRight = '┘'
)

// DrawBox draws a single-line border around r. Rectangles too small to hold
// a border are skipped.
func DrawBox(buf *Buffer, r geom.Rect, style lipgloss.Style) {
	if r.Width < 2 || r.Height < 2 {
		return
	}
	for x := r.Left() + 1; x < r.Right()-1; x++ {
		buf.SetCell(x, r.Top(), LineHorizontal, style)
		buf.SetCell(x, r.Bottom()-1, LineHorizontal, style)
	}
	for y := r.Top() + 1; y < r.Bottom()-1; y++ {
		buf.SetCell(r.Left(), y, LineVertical, style)
		buf.SetCell(r.Right()-1, y, LineVertical, style)
	}
	buf.SetCell(r.Left(), r.Top(), CornerTopLeft, style)
	buf.SetCell(r.Right()-1, r.Top(), CornerTopRight, style)
	buf.SetCell(r.Left(), r.Bottom()-1, CornerBottomLeft, style)
	buf.SetCell(r.Right()-1, r.Bottom()-1, CornerBottomRight, style)
}

// DrawBoxTitle writes a title into the top border of r, offset one cell
// from the corner, truncated to the border width.
func DrawBoxTitle(buf *Buffer, r geom.Rect, title string, style lipgloss.Style) {
	if r.Width < 4 || r.Height < 2 || title == "" {
		return
	}
	maxWidth := geom.Min(runewidth.StringWidth(title), r.Width-2)
	buf.SetString(r.Left()+1, r.Top(), title, maxWidth, style)
}

// Package render provides the character-cell buffer that all widgets draw
// into. A frame is produced by sequential writes (labels, tick lines, data
// series, legend, titles); later writes overwrite earlier ones, and that
// ordering is part of the drawing contract.
package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/gridtop/gridtop/internal/geom"
)

// Cell is a single terminal character cell with its display style.
type Cell struct {
	Rune  rune
	Style lipgloss.Style
}

// Buffer is a grid of cells covering a rectangle. Writes outside the
// rectangle are silently dropped, so callers never need to pre-clip.
type Buffer struct {
	area  geom.Rect
	cells []Cell
}

// NewBuffer creates a buffer covering area, filled with spaces.
func NewBuffer(area geom.Rect) *Buffer {
	b := &Buffer{
		area:  area,
		cells: make([]Cell, area.Area()),
	}
	for i := range b.cells {
		b.cells[i].Rune = ' '
	}
	return b
}

// Area returns the rectangle the buffer covers.
func (b *Buffer) Area() geom.Rect { return b.area }

func (b *Buffer) index(x, y int) (int, bool) {
	if !b.area.Contains(x, y) {
		return 0, false
	}
	return (y-b.area.Top())*b.area.Width + (x - b.area.Left()), true
}

// At returns the cell at (x, y). Out-of-bounds reads return a blank cell.
func (b *Buffer) At(x, y int) Cell {
	i, ok := b.index(x, y)
	if !ok {
		return Cell{Rune: ' '}
	}
	return b.cells[i]
}

// SetCell writes a rune and style at (x, y).
func (b *Buffer) SetCell(x, y int, r rune, style lipgloss.Style) {
	i, ok := b.index(x, y)
	if !ok {
		return
	}
	b.cells[i] = Cell{Rune: r, Style: style}
}

// SetRune writes a rune at (x, y), keeping the cell's existing style.
func (b *Buffer) SetRune(x, y int, r rune) {
	i, ok := b.index(x, y)
	if !ok {
		return
	}
	b.cells[i].Rune = r
}

// SetString writes s starting at (x, y), truncated to maxWidth display
// columns. Wide runes occupy two cells; the continuation cell is blanked.
// Returns the column after the last cell written.
func (b *Buffer) SetString(x, y int, s string, maxWidth int, style lipgloss.Style) int {
	if maxWidth <= 0 {
		return x
	}
	remaining := maxWidth
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 || w > remaining {
			break
		}
		b.SetCell(x, y, r, style)
		for i := 1; i < w; i++ {
			b.SetCell(x+i, y, ' ', style)
		}
		x += w
		remaining -= w
	}
	return x
}

// SetStyle applies style to every cell in r, keeping the runes.
func (b *Buffer) SetStyle(r geom.Rect, style lipgloss.Style) {
	for y := r.Top(); y < r.Bottom(); y++ {
		for x := r.Left(); x < r.Right(); x++ {
			if i, ok := b.index(x, y); ok {
				b.cells[i].Style = style
			}
		}
	}
}

// Fill writes the same rune and style into every cell of r.
func (b *Buffer) Fill(r geom.Rect, ch rune, style lipgloss.Style) {
	for y := r.Top(); y < r.Bottom(); y++ {
		for x := r.Left(); x < r.Right(); x++ {
			b.SetCell(x, y, ch, style)
		}
	}
}

// String renders the buffer as styled terminal output, one line per row.
func (b *Buffer) String() string {
	var out strings.Builder
	for y := b.area.Top(); y < b.area.Bottom(); y++ {
		if y > b.area.Top() {
			out.WriteByte('\n')
		}
		for x := b.area.Left(); x < b.area.Right(); x++ {
			cell := b.At(x, y)
			out.WriteString(cell.Style.Render(string(cell.Rune)))
		}
	}
	return out.String()
}

// Lines returns the buffer contents as plain strings, one per row, without
// styling. Intended for tests and debugging.
func (b *Buffer) Lines() []string {
	lines := make([]string, 0, b.area.Height)
	for y := b.area.Top(); y < b.area.Bottom(); y++ {
		var line strings.Builder
		for x := b.area.Left(); x < b.area.Right(); x++ {
			line.WriteRune(b.At(x, y).Rune)
		}
		lines = append(lines, line.String())
	}
	return lines
}

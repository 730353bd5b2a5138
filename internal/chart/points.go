package chart

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/gridtop/gridtop/internal/geom"
	"github.com/gridtop/gridtop/internal/render"
)

// Braille rendering uses a 2x4 dot matrix per character cell. Unicode
// braille starts at U+2800 (blank); each dot maps to one bit:
//
//	Col 0  Col 1
//	Row 0:  bit 0  bit 3
//	Row 1:  bit 1  bit 4
//	Row 2:  bit 2  bit 5
//	Row 3:  bit 6  bit 7
const brailleBase = '⠀'

// brailleBits maps [subRow][subCol] to the bit offset in the braille rune.
var brailleBits = [4][2]uint8{
	{0, 3},
	{1, 4},
	{2, 5},
	{6, 7},
}

// dotRune is the marker glyph for MarkerDot datasets.
const dotRune = '•'

// SeriesRenderer rasterizes one dataset into the plot area.
type SeriesRenderer interface {
	RenderSeries(buf *render.Buffer, area geom.Rect, ds Dataset, xBounds, yBounds [2]float64)
}

// dotGrid accumulates sub-cell dots for one dataset before flushing them to
// the buffer. One grid per dataset: dots within a dataset merge into
// combined braille glyphs, while a later dataset's flush overwrites shared
// cells entirely (last write wins, no blending).
type dotGrid struct {
	area   geom.Rect
	xScale int
	yScale int
	bits   []uint8 // per cell, braille bit mask (dot marker uses bit 0)
}

func newDotGrid(area geom.Rect, marker Marker) *dotGrid {
	xs, ys := marker.Resolution()
	return &dotGrid{
		area:   area,
		xScale: xs,
		yScale: ys,
		bits:   make([]uint8, area.Area()),
	}
}

// set marks the sub-cell dot at grid coordinates (dx, dy), where dy counts
// down from the top of the dot grid.
func (g *dotGrid) set(dx, dy int) {
	if dx < 0 || dy < 0 || dx >= g.area.Width*g.xScale || dy >= g.area.Height*g.yScale {
		return
	}
	cell := (dy/g.yScale)*g.area.Width + dx/g.xScale
	if g.xScale == 1 && g.yScale == 1 {
		g.bits[cell] |= 1
		return
	}
	g.bits[cell] |= 1 << brailleBits[dy%g.yScale][dx%g.xScale]
}

// flush writes the accumulated dots into the buffer. Cells without dots are
// left untouched so earlier layers show through.
func (g *dotGrid) flush(buf *render.Buffer, style lipgloss.Style) {
	for i, bits := range g.bits {
		if bits == 0 {
			continue
		}
		x := g.area.Left() + i%g.area.Width
		y := g.area.Top() + i/g.area.Width
		if g.xScale == 1 && g.yScale == 1 {
			buf.SetCell(x, y, dotRune, style)
		} else {
			buf.SetCell(x, y, brailleBase|rune(bits), style)
		}
	}
}

// mapToGrid maps data value v in [lo, hi] onto [0, steps-1]. Values outside
// the bounds are clipped: not drawn, not an error.
func mapToGrid(v, lo, hi float64, steps int) (int, bool) {
	if steps <= 0 || hi <= lo || v < lo || v > hi {
		return 0, false
	}
	d := int((v - lo) / (hi - lo) * float64(steps-1))
	return geom.Clamp(d, 0, steps-1), true
}

// seriesRenderer is the built-in SeriesRenderer used by Chart.
type seriesRenderer struct{}

// RenderSeries draws a dataset into area using the affine mapping from the
// axis bounds to the sub-cell dot grid. Line datasets additionally connect
// consecutive points with Bresenham segments at the same resolution.
func (seriesRenderer) RenderSeries(buf *render.Buffer, area geom.Rect, ds Dataset, xBounds, yBounds [2]float64) {
	if area.Empty() || len(ds.Points) == 0 {
		return
	}

	grid := newDotGrid(area, ds.Marker)
	xSteps := area.Width * grid.xScale
	ySteps := area.Height * grid.yScale

	plot := func(p Point) (int, int, bool) {
		dx, okX := mapToGrid(p.X, xBounds[0], xBounds[1], xSteps)
		dy, okY := mapToGrid(p.Y, yBounds[0], yBounds[1], ySteps)
		if !okX || !okY {
			return 0, 0, false
		}
		// y grows upward in data space, downward in the grid
		return dx, ySteps - 1 - dy, true
	}

	for _, p := range ds.Points {
		if dx, dy, ok := plot(p); ok {
			grid.set(dx, dy)
		}
	}

	if ds.Type == Line {
		for i := 1; i < len(ds.Points); i++ {
			x1, y1, ok1 := plot(ds.Points[i-1])
			x2, y2, ok2 := plot(ds.Points[i])
			if ok1 && ok2 {
				drawSegment(grid, x1, y1, x2, y2)
			}
		}
	}

	grid.flush(buf, ds.Style)
}

// drawSegment rasterizes a line between two dot-grid coordinates using
// Bresenham's algorithm.
func drawSegment(grid *dotGrid, x1, y1, x2, y2 int) {
	dx := abs(x2 - x1)
	dy := -abs(y2 - y1)
	sx := 1
	if x1 > x2 {
		sx = -1
	}
	sy := 1
	if y1 > y2 {
		sy = -1
	}
	err := dx + dy

	for {
		grid.set(x1, y1)
		if x1 == x2 && y1 == y2 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x1 += sx
		}
		if e2 <= dx {
			err += dx
			y1 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

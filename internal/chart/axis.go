// Package chart implements the terminal chart rendering engine: layout
// resolution for axis labels, tick lines, titles and legend inside a
// bounding rectangle, plus data-series rasterization at sub-cell marker
// resolution.
//
// The engine is pure and synchronous. Every draw call recomputes the layout
// from scratch; degenerate space never errors, it only hides elements.
package chart

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/gridtop/gridtop/internal/geom"
)

// GraphType selects how a dataset's points are connected.
type GraphType int

const (
	// Scatter draws isolated points only.
	Scatter GraphType = iota
	// Line connects consecutive points with rasterized segments.
	Line
)

// Marker selects the rasterization resolution for a dataset. The set of
// markers is closed; each carries a fixed sub-cell resolution multiplier.
type Marker int

const (
	// MarkerDot plots one dot per character cell.
	MarkerDot Marker = iota
	// MarkerBraille subdivides each cell into a 2x4 braille dot grid.
	MarkerBraille
)

// Resolution returns the horizontal and vertical sub-cell multipliers for
// the marker.
func (m Marker) Resolution() (xScale, yScale int) {
	switch m {
	case MarkerBraille:
		return 2, 4
	default:
		return 1, 1
	}
}

// Point is a single data-space sample.
type Point struct {
	X float64
	Y float64
}

// Dataset is one named series of points. The chart never mutates or retains
// it past the draw call.
type Dataset struct {
	Name   string
	Points []Point
	Type   GraphType
	Marker Marker
	Style  lipgloss.Style
}

// NameWidth returns the display width of the dataset name.
func (d Dataset) NameWidth() int {
	return runewidth.StringWidth(d.Name)
}

// Axis describes one chart axis. Labels and Title are optional; Bounds is
// the data-space range mapped onto the plot area.
type Axis struct {
	Labels []string
	Bounds [2]float64
	Title  string
	Style  lipgloss.Style
}

// HasLabels reports whether the axis reserves label space.
func (a Axis) HasLabels() bool { return len(a.Labels) > 0 }

// maxLabelWidth returns the display width of the widest label.
func (a Axis) maxLabelWidth() int {
	w := 0
	for _, l := range a.Labels {
		w = geom.Max(w, runewidth.StringWidth(l))
	}
	return w
}

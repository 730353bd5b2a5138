// Package geom provides the rectangle and ratio primitives shared by the
// chart and table rendering engines.
//
// All coordinates are terminal character cells. Arithmetic that could go
// negative uses saturating helpers so degenerate areas collapse to empty
// rectangles instead of wrapping.
package geom

// Rect is an axis-aligned rectangle in character cells.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// NewRect creates a rectangle at (x, y) with the given dimensions.
// Negative dimensions are clamped to zero.
func NewRect(x, y, width, height int) Rect {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// Left returns the leftmost column of the rectangle.
func (r Rect) Left() int { return r.X }

// Right returns the first column past the right edge.
func (r Rect) Right() int { return r.X + r.Width }

// Top returns the topmost row of the rectangle.
func (r Rect) Top() int { return r.Y }

// Bottom returns the first row past the bottom edge.
func (r Rect) Bottom() int { return r.Y + r.Height }

// Area returns the number of cells the rectangle covers.
func (r Rect) Area() int { return r.Width * r.Height }

// Empty reports whether the rectangle covers no cells.
// Empty rectangles short-circuit all layout and render logic downstream.
func (r Rect) Empty() bool { return r.Width == 0 || r.Height == 0 }

// Contains reports whether the cell at (x, y) lies inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.Left() && x < r.Right() && y >= r.Top() && y < r.Bottom()
}

// Inner returns the rectangle shrunk by one cell on every side, as used for
// the content area inside a border. Shrinking an already small rectangle
// yields an empty one.
func (r Rect) Inner() Rect {
	return NewRect(r.X+1, r.Y+1, r.Width-2, r.Height-2)
}

// Ratio is a size constraint expressed as a fraction num/den of some length.
type Ratio struct {
	Num int
	Den int
}

// Apply resolves the ratio against a length, flooring the result.
// A zero denominator resolves to zero rather than dividing.
func (c Ratio) Apply(length int) int {
	if c.Den == 0 {
		return 0
	}
	return length * c.Num / c.Den
}

// SaturatingSub returns a-b, clamped at zero.
func SaturatingSub(a, b int) int {
	if b >= a {
		return 0
	}
	return a - b
}

// Clamp restricts v to the range [lo, hi]. If hi < lo, lo wins.
func Clamp(v, lo, hi int) int {
	if hi < lo {
		hi = lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Min returns the smaller of two ints.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two ints.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

package table

import "github.com/gridtop/gridtop/internal/geom"

// Direction is the scroll direction signal attached to the last navigation
// event.
type Direction int

const (
	DirectionNone Direction = iota
	DirectionUp
	DirectionDown
)

// ScrollContext is the scroll and selection state for one tabular widget.
// It is owned by the composition layer and passed into draw and event
// handling calls; the engine itself holds no copy.
type ScrollContext struct {
	// Selected is the index of the currently selected item.
	Selected int
	// PreviousOffset is the first visible index produced by the last draw.
	PreviousOffset int
	// Direction is the direction of the last selection movement.
	Direction Direction
	// Resized is set by the composition layer after a terminal resize and
	// consumed by the next StartPosition call.
	Resized bool
}

// MoveUp moves the selection up one item. Returns false when already at the
// first item.
func (c *ScrollContext) MoveUp() bool {
	if c.Selected <= 0 {
		return false
	}
	c.Selected--
	c.Direction = DirectionUp
	return true
}

// MoveDown moves the selection down one item. Returns false when already at
// the last item.
func (c *ScrollContext) MoveDown(itemCount int) bool {
	if c.Selected >= itemCount-1 {
		return false
	}
	c.Selected++
	c.Direction = DirectionDown
	return true
}

// ClampSelection pulls the selection back into range after the item count
// shrinks.
func (c *ScrollContext) ClampSelection(itemCount int) {
	c.Selected = geom.Clamp(c.Selected, 0, geom.Max(itemCount-1, 0))
}

// StartPosition computes the index of the first visible item. It is a pure
// reducer over the context and the current geometry; the caller stores the
// result back into PreviousOffset (and clears Resized) for the next frame.
//
// After a resize the offset moves just enough to keep the selection inside
// the window, preferring the smallest shift so the view stays stable. On
// Down the offset follows the selection past the last visible row; Up is
// symmetric. The result is always clamped to [0, max(0, itemCount-visibleRows)].
func StartPosition(itemCount, visibleRows int, ctx ScrollContext) int {
	if visibleRows <= 0 || itemCount <= visibleRows {
		return 0
	}
	maxOffset := itemCount - visibleRows
	offset := ctx.PreviousOffset

	if ctx.Resized {
		if ctx.Selected < offset {
			offset = ctx.Selected
		} else if ctx.Selected > offset+visibleRows-1 {
			offset = ctx.Selected - visibleRows + 1
		}
	}

	switch ctx.Direction {
	case DirectionDown:
		if ctx.Selected > offset+visibleRows-1 {
			offset = ctx.Selected - visibleRows + 1
		}
	case DirectionUp:
		if ctx.Selected < offset {
			offset = ctx.Selected
		}
	}

	return geom.Clamp(offset, 0, maxOffset)
}

// Package table implements the generic tabular rendering engine: greedy
// column-width allocation, clamped scroll-window tracking, and the text
// table renderer built on both. Every tabular widget in the dashboard goes
// through this package.
package table

// Column describes one table column for width allocation.
type Column struct {
	Name string
	// MinWidth is the hard lower bound; a column that cannot get at least
	// this many cells is dropped entirely, never shrunk below it.
	MinWidth int
	// Flex is the column's proportional share of leftover width after all
	// minimums are satisfied.
	Flex float64
	// HardWidth, when positive, fixes the column width exactly and ignores
	// Flex sizing.
	HardWidth int
}

// Allocate distributes totalWidth across cols. It returns the widths of the
// columns that fit, in input order, and the indexes of those columns so
// callers can truncate header and row rendering to the same set.
//
// Hard-width columns receive exactly their width when it fits in the
// remaining space. Flex columns are admitted at their minimum width first;
// a column whose minimum cannot be satisfied is dropped and its space freed
// for later columns. Leftover width is then split across the surviving flex
// columns proportionally to their Flex ratios, floored, with the remainder
// handed out one cell at a time so no column exceeds its ratio-implied
// share by more than one cell.
func Allocate(totalWidth int, cols []Column) (widths []int, kept []int) {
	if totalWidth <= 0 || len(cols) == 0 {
		return nil, nil
	}

	type slot struct {
		index int
		width int
		flex  float64
	}

	remaining := totalWidth
	var slots []slot
	for i, col := range cols {
		switch {
		case col.HardWidth > 0:
			if col.HardWidth <= remaining {
				slots = append(slots, slot{index: i, width: col.HardWidth})
				remaining -= col.HardWidth
			}
		default:
			if col.MinWidth <= remaining {
				slots = append(slots, slot{index: i, width: col.MinWidth, flex: col.Flex})
				remaining -= col.MinWidth
			}
		}
	}

	flexSum := 0.0
	for _, s := range slots {
		flexSum += s.flex
	}

	if remaining > 0 && flexSum > 0 {
		leftover := remaining
		distributed := 0
		for i := range slots {
			extra := int(float64(leftover) * slots[i].flex / flexSum)
			slots[i].width += extra
			distributed += extra
		}
		// Hand out the rounding remainder one cell per flex column
		for i := range slots {
			if distributed >= leftover {
				break
			}
			if slots[i].flex > 0 {
				slots[i].width++
				distributed++
			}
		}
	}

	widths = make([]int, 0, len(slots))
	kept = make([]int, 0, len(slots))
	for _, s := range slots {
		widths = append(widths, s.width)
		kept = append(kept, s.index)
	}
	return widths, kept
}

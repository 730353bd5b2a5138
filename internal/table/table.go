package table

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/gridtop/gridtop/internal/geom"
	"github.com/gridtop/gridtop/internal/render"
)

// Styles holds the per-role styles for a text table.
type Styles struct {
	Header   lipgloss.Style
	Row      lipgloss.Style
	Selected lipgloss.Style
	Index    lipgloss.Style
}

// TextTable renders string rows under a fixed column set. The column set
// and gap/index options are decided at construction; scroll and selection
// state arrives per call through a ScrollContext owned by the caller.
type TextTable struct {
	Columns []Column
	Styles  Styles

	// ShowGap leaves a blank row between the header and the data when
	// there is room for it.
	ShowGap bool
	// ShowScrollIndex renders a "sel of total" marker right-aligned on the
	// header row.
	ShowScrollIndex bool

	// RowStyle, when set, picks the style for an unselected row by its
	// absolute index (used for per-core colored legends).
	RowStyle func(index int) lipgloss.Style
}

// headerRows returns how many rows the header occupies within height.
func (t *TextTable) headerRows(height int) int {
	rows := 1
	if t.ShowGap && height > 2 {
		rows = 2
	}
	return rows
}

// VisibleRows returns how many data rows fit in a table of the given
// height.
func (t *TextTable) VisibleRows(height int) int {
	if height <= 0 {
		return 0
	}
	return geom.Max(height-t.headerRows(height), 0)
}

// Draw renders the header and the visible window of rows into area. The
// scroll offset is recomputed from ctx and stored back for the next frame.
// Columns that cannot fit their minimum width are dropped entirely.
func (t *TextTable) Draw(buf *render.Buffer, area geom.Rect, rows [][]string, ctx *ScrollContext) {
	if area.Empty() {
		return
	}

	ctx.ClampSelection(len(rows))
	visible := t.VisibleRows(area.Height)
	offset := StartPosition(len(rows), visible, *ctx)
	ctx.PreviousOffset = offset
	ctx.Resized = false

	// One separator cell between adjacent columns
	widths, kept := Allocate(area.Width-(len(t.Columns)-1), t.Columns)
	if len(kept) == 0 {
		return
	}

	x := area.Left()
	for i, col := range kept {
		buf.SetString(x, area.Top(), t.Columns[col].Name, widths[i], t.Styles.Header)
		x += widths[i] + 1
	}

	if t.ShowScrollIndex && len(rows) > 0 {
		index := fmt.Sprintf("%d of %d", ctx.Selected+1, len(rows))
		w := runewidth.StringWidth(index)
		if w < area.Width {
			buf.SetString(area.Right()-w, area.Top(), index, w, t.Styles.Index)
		}
	}

	y := area.Top() + t.headerRows(area.Height)
	for i := offset; i < len(rows) && i < offset+visible; i++ {
		style := t.Styles.Row
		if t.RowStyle != nil {
			style = t.RowStyle(i)
		}
		if i == ctx.Selected {
			style = t.Styles.Selected
			// Extend the selection background across the full row
			buf.Fill(geom.NewRect(area.Left(), y, area.Width, 1), ' ', style)
		}

		x = area.Left()
		for j, col := range kept {
			if col < len(rows[i]) {
				buf.SetString(x, y, rows[i][col], widths[j], style)
			}
			x += widths[j] + 1
		}
		y++
	}
}

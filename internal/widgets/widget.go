// Package widgets adapts the chart and table engines into the dashboard's
// panel set. Widgets cache converted display data between refreshes and draw
// into a shared cell buffer; scroll and selection state is owned by the
// dashboard and passed in per call.
package widgets

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/gridtop/gridtop/internal/chart"
	"github.com/gridtop/gridtop/internal/geom"
	"github.com/gridtop/gridtop/internal/metrics"
	"github.com/gridtop/gridtop/internal/render"
	"github.com/gridtop/gridtop/internal/table"
	"github.com/gridtop/gridtop/internal/theme"
)

// EventResult tells the event router what a widget did with an input event.
type EventResult int

const (
	// NotHandled propagates the event to the parent.
	NotHandled EventResult = iota
	// Handled consumed the event and changed state; a redraw is needed.
	Handled
	// HandledNoRedraw consumed the event without changing visible state.
	HandledNoRedraw
)

// Context is the per-widget state owned by the dashboard, passed into draw
// and event calls. Widgets never retain it.
type Context struct {
	Selected bool
	Expanded bool
	Scroll   *table.ScrollContext
}

// Options are display flags consumed at widget construction only.
type Options struct {
	DotMarker       bool
	ShowBorder      bool
	ShowScrollIndex bool
	TableGap        bool
}

func (o Options) marker() chart.Marker {
	if o.DotMarker {
		return chart.MarkerDot
	}
	return chart.MarkerBraille
}

// Widget is one dashboard panel. Draw performs a full layout and render pass
// into the buffer at area; degenerate areas render nothing. UpdateData swaps
// the cached display data ahead of the next draw without rendering.
type Widget interface {
	Draw(buf *render.Buffer, area geom.Rect, ctx Context)
	UpdateData(snap metrics.Snapshot, hist *metrics.History)
	HandleKey(msg tea.KeyMsg, ctx Context) EventResult
	HandleMouse(msg tea.MouseMsg, ctx Context) EventResult
}

// frame draws the widget border and title when borders are enabled and
// returns the remaining content area.
func frame(buf *render.Buffer, area geom.Rect, title string, th theme.Theme, opts Options, ctx Context) geom.Rect {
	if !opts.ShowBorder {
		return area
	}
	if area.Width < 2 || area.Height < 2 {
		return geom.NewRect(area.X, area.Y, 0, 0)
	}
	render.DrawBox(buf, area, th.WidgetBorder(ctx.Selected))
	render.DrawBoxTitle(buf, area, title, th.Title)
	return area.Inner()
}

// tableScroll is the shared key navigation for tabular widgets. Movement at
// a list edge is consumed without a redraw so the event never leaks to the
// parent as unhandled.
func tableScroll(msg tea.KeyMsg, ctx Context, itemCount int) EventResult {
	if ctx.Scroll == nil {
		return NotHandled
	}
	switch msg.String() {
	case "up", "k":
		if ctx.Scroll.MoveUp() {
			return Handled
		}
		return HandledNoRedraw
	case "down", "j":
		if ctx.Scroll.MoveDown(itemCount) {
			return Handled
		}
		return HandledNoRedraw
	}
	return NotHandled
}

// tableWheel maps mouse wheel events onto the same selection movement as the
// arrow keys.
func tableWheel(msg tea.MouseMsg, ctx Context, itemCount int) EventResult {
	if ctx.Scroll == nil {
		return NotHandled
	}
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		if ctx.Scroll.MoveUp() {
			return Handled
		}
		return HandledNoRedraw
	case tea.MouseButtonWheelDown:
		if ctx.Scroll.MoveDown(itemCount) {
			return Handled
		}
		return HandledNoRedraw
	}
	return NotHandled
}

package dashboard

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/gridtop/gridtop/internal/config"
	"github.com/gridtop/gridtop/internal/logger"
	"github.com/gridtop/gridtop/internal/metrics"
	"github.com/gridtop/gridtop/internal/table"
	"github.com/gridtop/gridtop/internal/theme"
	"github.com/gridtop/gridtop/internal/widgets"
)

// focusArea identifies one widget slot in the frame.
type focusArea int

const (
	focusCPUGraph focusArea = iota
	focusCPULegend
	focusMemGraph
	focusDiskTable
	focusCount
)

// Model is the Bubble Tea model for the dashboard.
type Model struct {
	cfg    *config.Config
	theme  theme.Theme
	log    logger.Logger
	source metrics.Source
	hist   *metrics.History
	snap   metrics.Snapshot

	widgets [focusCount]widgets.Widget
	scrolls [focusCount]*table.ScrollContext

	focused    focusArea
	expanded   bool
	showHelp   bool
	width      int
	height     int
	lastUpdate time.Time
	quitting   bool

	keys keyMap
	help help.Model
}

// tickMsg signals a periodic metric refresh.
type tickMsg time.Time

// NewModel creates the dashboard model over a metric source.
func NewModel(cfg *config.Config, source metrics.Source, log logger.Logger) Model {
	th := theme.Default()
	opts := widgets.Options{
		DotMarker:       cfg.DotMarker,
		ShowBorder:      cfg.ShowBorder,
		ShowScrollIndex: cfg.ShowScrollIndex,
		TableGap:        cfg.TableGap,
	}

	m := Model{
		cfg:    cfg,
		theme:  th,
		log:    log,
		source: source,
		hist:   metrics.NewHistory(cfg.EffectiveHistorySize()),
		keys:   defaultKeyMap(),
		help:   help.New(),
	}
	m.widgets[focusCPUGraph] = widgets.NewCPUGraph(th, opts)
	m.widgets[focusCPULegend] = widgets.NewCPULegend(th, opts)
	m.widgets[focusMemGraph] = widgets.NewMemGraph(th, opts)
	m.widgets[focusDiskTable] = widgets.NewDiskTable(th, opts)
	for i := range m.scrolls {
		m.scrolls[i] = &table.ScrollContext{}
	}
	return m
}

// Init starts the refresh timer and takes the first sample immediately so
// the first frame is not empty.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		func() tea.Msg { return tickMsg(time.Now()) },
		m.tickCmd(),
	)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.widgets[m.focused].HandleMouse(msg, m.widgetContext(m.focused))
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		// The scroll trackers keep the selection visible on the next draw
		for _, s := range m.scrolls {
			s.Resized = true
		}
		return m, nil

	case tickMsg:
		m.refresh(time.Time(msg))
		return m, m.tickCmd()
	}

	return m, nil
}

// View renders the dashboard.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return m.renderFrame()
}

// tickCmd returns a command that sends a tick after the refresh interval.
func (m Model) tickCmd() tea.Cmd {
	return tea.Tick(m.cfg.RefreshInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// refresh pulls the next snapshot and pushes it into every widget.
func (m *Model) refresh(at time.Time) {
	m.snap = m.source.Next()
	m.hist.Push(m.snap)
	m.lastUpdate = at
	for _, w := range m.widgets {
		w.UpdateData(m.snap, m.hist)
	}
	m.log.Debug("refreshed %d cores, %d disks", len(m.snap.Cores), len(m.snap.Disks))
}

// widgetContext builds the per-call context for one widget slot.
func (m Model) widgetContext(id focusArea) widgets.Context {
	return widgets.Context{
		Selected: m.focused == id,
		Expanded: m.expanded && m.focused == id,
		Scroll:   m.scrolls[id],
	}
}

// cycleFocus moves focus to the next or previous widget slot.
func (m *Model) cycleFocus(backward bool) {
	step := 1
	if backward {
		step = int(focusCount) - 1
	}
	m.focused = focusArea((int(m.focused) + step) % int(focusCount))
}

// SecondsSinceUpdate returns how many seconds have passed since the last
// refresh.
func (m Model) SecondsSinceUpdate() int {
	if m.lastUpdate.IsZero() {
		return 0
	}
	return int(time.Since(m.lastUpdate).Seconds())
}

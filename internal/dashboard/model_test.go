package dashboard

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gridtop/gridtop/internal/config"
	"github.com/gridtop/gridtop/internal/logger"
	"github.com/gridtop/gridtop/internal/metrics"
)

func init() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

func testModel() Model {
	cfg := config.Default()
	cfg.Cores = 2
	return NewModel(cfg, metrics.NewSynthSource(cfg.Cores, 42), logger.Noop())
}

// sized returns a model that has seen a window size and one refresh tick.
func sized(t *testing.T, width, height int) Model {
	t.Helper()
	m := testModel()
	next, _ := m.Update(tea.WindowSizeMsg{Width: width, Height: height})
	m = next.(Model)
	next, cmd := m.Update(tickMsg(time.Now()))
	require.NotNil(t, cmd, "tick should schedule the next tick")
	return next.(Model)
}

func TestInitSchedulesRefresh(t *testing.T) {
	m := testModel()
	assert.NotNil(t, m.Init())
}

func TestWindowSizeMarksScrollsResized(t *testing.T) {
	m := testModel()
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m = next.(Model)

	assert.Equal(t, 100, m.width)
	assert.Equal(t, 30, m.height)
	for _, s := range m.scrolls {
		assert.True(t, s.Resized)
	}
}

func TestTickRefreshesSnapshot(t *testing.T) {
	m := sized(t, 100, 30)

	assert.NotEmpty(t, m.snap.Cores)
	assert.NotEmpty(t, m.snap.Disks)
	assert.Equal(t, m.hist.CoreCount(), len(m.snap.Cores))
	assert.False(t, m.lastUpdate.IsZero())
}

func TestQuitKey(t *testing.T) {
	m := sized(t, 100, 30)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	m = next.(Model)

	assert.True(t, m.quitting)
	require.NotNil(t, cmd)
	_, isQuit := cmd().(tea.QuitMsg)
	assert.True(t, isQuit)
	assert.Empty(t, m.View())
}

func TestFocusCycling(t *testing.T) {
	m := sized(t, 100, 30)
	assert.Equal(t, focusCPUGraph, m.focused)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(Model)
	assert.Equal(t, focusCPULegend, m.focused)

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m = next.(Model)
	assert.Equal(t, focusCPUGraph, m.focused)

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m = next.(Model)
	assert.Equal(t, focusDiskTable, m.focused)
}

func TestExpandCollapse(t *testing.T) {
	m := sized(t, 100, 30)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(Model)
	assert.True(t, m.expanded)

	// Tab is inert while expanded
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(Model)
	assert.Equal(t, focusCPUGraph, m.focused)

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(Model)
	assert.False(t, m.expanded)
}

func TestFocusedTableConsumesNavigation(t *testing.T) {
	m := sized(t, 100, 30)
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab}) // focus the CPU legend
	m = next.(Model)

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(Model)
	assert.Equal(t, 1, m.scrolls[focusCPULegend].Selected)

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m = next.(Model)
	assert.Equal(t, 0, m.scrolls[focusCPULegend].Selected)
}

func TestHelpOverlayToggle(t *testing.T) {
	m := sized(t, 100, 30)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("?")})
	m = next.(Model)
	assert.True(t, m.showHelp)
	assert.Contains(t, m.View(), "Keys")

	// Any key closes the overlay
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(Model)
	assert.False(t, m.showHelp)
	assert.False(t, m.expanded, "key that closed help should not also expand")
}

func TestViewRendersWidgets(t *testing.T) {
	m := sized(t, 100, 30)
	out := m.View()

	assert.Contains(t, out, " CPU ")
	assert.Contains(t, out, " Memory ")
	assert.Contains(t, out, " Disks ")
	assert.Contains(t, out, "┌")
}

func TestViewExpandedWidget(t *testing.T) {
	m := sized(t, 100, 30)
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(Model)

	out := m.View()
	assert.Contains(t, out, "Esc to go back")
	assert.NotContains(t, out, " Disks ")
}

func TestViewTooSmall(t *testing.T) {
	m := testModel()
	next, _ := m.Update(tea.WindowSizeMsg{Width: 10, Height: 3})
	m = next.(Model)
	assert.Contains(t, m.View(), "too small")
}

func TestLayoutAreasTileContent(t *testing.T) {
	m := sized(t, 100, 31)
	content := m.renderContentRect()
	areas := m.layoutAreas(content)

	total := 0
	for _, a := range areas {
		total += a.Area()
	}
	assert.Equal(t, content.Area(), total, "widget areas should tile the content exactly")
}

func TestLayoutLeftLegend(t *testing.T) {
	m := sized(t, 100, 30)
	content := m.renderContentRect()

	areas := m.layoutAreas(content)
	assert.Less(t, areas[focusCPUGraph].Left(), areas[focusCPULegend].Left())

	m.cfg.LeftLegend = true
	areas = m.layoutAreas(content)
	assert.Less(t, areas[focusCPULegend].Left(), areas[focusCPUGraph].Left())
}

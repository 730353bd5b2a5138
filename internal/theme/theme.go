// Package theme defines the dashboard color palette and the per-role styles
// consumed by the rendering engine. Widgets treat styles as opaque attribute
// bags; every color decision lives here.
package theme

import "github.com/charmbracelet/lipgloss"

// Dashboard color palette
const (
	ColorBorder      = lipgloss.Color("#2A2A4A") // Muted purple-gray border
	ColorHighlight   = lipgloss.Color("#FF2E97") // Neon pink for the focused widget
	ColorAxis        = lipgloss.Color("#6B6B8D") // Purple-gray axis lines and labels
	ColorText        = lipgloss.Color("#FFFFFF") // Primary text
	ColorTextMuted   = lipgloss.Color("#6B6B8D") // Secondary text
	ColorSelectedBg  = lipgloss.Color("#2A2A4A") // Selected table row background
	ColorAvgCore     = lipgloss.Color("#FF2E97") // Average-CPU series
	ColorMemMain     = lipgloss.Color("#00FFFF") // Memory series
	ColorMemSwap     = lipgloss.Color("#BF40FF") // Swap series
	ColorTableHeader = lipgloss.Color("#B4B4D0") // Table header row
)

// coreColors is the cycle applied to per-core CPU series and their legend
// rows. Indexing wraps, so any core count is covered.
var coreColors = []lipgloss.Color{
	"#00FFFF", // cyan
	"#39FF14", // green
	"#FFAA00", // amber
	"#BF40FF", // purple
	"#FF5555", // red
	"#55AAFF", // blue
}

// Theme holds every style role the widgets draw with.
type Theme struct {
	Border            lipgloss.Style
	HighlightedBorder lipgloss.Style
	Title             lipgloss.Style
	Axis              lipgloss.Style
	Text              lipgloss.Style
	TextMuted         lipgloss.Style
	TableHeader       lipgloss.Style
	SelectedRow       lipgloss.Style
	AvgCore           lipgloss.Style
	MemMain           lipgloss.Style
	MemSwap           lipgloss.Style

	cores []lipgloss.Style
}

// Default returns the standard dashboard theme.
func Default() Theme {
	t := Theme{
		Border:            lipgloss.NewStyle().Foreground(ColorBorder),
		HighlightedBorder: lipgloss.NewStyle().Foreground(ColorHighlight),
		Title:             lipgloss.NewStyle().Foreground(ColorText).Bold(true),
		Axis:              lipgloss.NewStyle().Foreground(ColorAxis),
		Text:              lipgloss.NewStyle().Foreground(ColorText),
		TextMuted:         lipgloss.NewStyle().Foreground(ColorTextMuted),
		TableHeader:       lipgloss.NewStyle().Foreground(ColorTableHeader).Bold(true),
		SelectedRow:       lipgloss.NewStyle().Foreground(ColorText).Background(ColorSelectedBg),
		AvgCore:           lipgloss.NewStyle().Foreground(ColorAvgCore),
		MemMain:           lipgloss.NewStyle().Foreground(ColorMemMain),
		MemSwap:           lipgloss.NewStyle().Foreground(ColorMemSwap),
	}
	t.cores = make([]lipgloss.Style, len(coreColors))
	for i, c := range coreColors {
		t.cores[i] = lipgloss.NewStyle().Foreground(c)
	}
	return t
}

// Core returns the style for the i-th CPU core series, wrapping around the
// color cycle.
func (t Theme) Core(i int) lipgloss.Style {
	if len(t.cores) == 0 {
		return t.Text
	}
	if i < 0 {
		i = 0
	}
	return t.cores[i%len(t.cores)]
}

// WidgetBorder picks the border style based on focus.
func (t Theme) WidgetBorder(selected bool) lipgloss.Style {
	if selected {
		return t.HighlightedBorder
	}
	return t.Border
}

package render

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gridtop/gridtop/internal/geom"
)

func init() {
	// Plain output so Lines()/String() assertions see bare runes
	lipgloss.SetColorProfile(termenv.Ascii)
}

func TestNewBufferStartsBlank(t *testing.T) {
	b := NewBuffer(geom.NewRect(0, 0, 4, 2))
	lines := b.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, "    ", lines[0])
	assert.Equal(t, "    ", lines[1])
}

func TestSetCellRespectsBounds(t *testing.T) {
	b := NewBuffer(geom.NewRect(1, 1, 3, 3))

	b.SetCell(1, 1, 'a', lipgloss.NewStyle())
	b.SetCell(3, 3, 'z', lipgloss.NewStyle())
	// Out of bounds, silently dropped
	b.SetCell(0, 0, 'X', lipgloss.NewStyle())
	b.SetCell(4, 1, 'X', lipgloss.NewStyle())
	b.SetCell(1, 4, 'X', lipgloss.NewStyle())

	assert.Equal(t, 'a', b.At(1, 1).Rune)
	assert.Equal(t, 'z', b.At(3, 3).Rune)
	assert.Equal(t, ' ', b.At(0, 0).Rune)
	assert.Equal(t, ' ', b.At(4, 1).Rune)
}

func TestSetStringTruncates(t *testing.T) {
	b := NewBuffer(geom.NewRect(0, 0, 10, 1))

	next := b.SetString(0, 0, "hello world", 5, lipgloss.NewStyle())
	assert.Equal(t, 5, next)
	assert.Equal(t, "hello     ", b.Lines()[0])
}

func TestSetStringZeroWidth(t *testing.T) {
	b := NewBuffer(geom.NewRect(0, 0, 5, 1))
	next := b.SetString(2, 0, "abc", 0, lipgloss.NewStyle())
	assert.Equal(t, 2, next)
	assert.Equal(t, "     ", b.Lines()[0])
}

func TestSetStringWideRunes(t *testing.T) {
	b := NewBuffer(geom.NewRect(0, 0, 6, 1))

	// CJK runes are two columns wide; three of them don't fit in 5 columns.
	next := b.SetString(0, 0, "日本語", 5, lipgloss.NewStyle())
	assert.Equal(t, 4, next)
	assert.Equal(t, '日', b.At(0, 0).Rune)
	assert.Equal(t, '本', b.At(2, 0).Rune)
	assert.Equal(t, ' ', b.At(4, 0).Rune)
}

func TestFillAndSetStyle(t *testing.T) {
	b := NewBuffer(geom.NewRect(0, 0, 4, 3))
	b.Fill(geom.NewRect(1, 1, 2, 1), '#', lipgloss.NewStyle())

	assert.Equal(t, []string{
		"    ",
		" ## ",
		"    ",
	}, b.Lines())

	// Restyling keeps runes intact
	b.SetStyle(geom.NewRect(0, 0, 4, 3), lipgloss.NewStyle().Bold(true))
	assert.Equal(t, '#', b.At(1, 1).Rune)
}

func TestStringJoinsRows(t *testing.T) {
	b := NewBuffer(geom.NewRect(0, 0, 2, 2))
	b.SetRune(0, 0, 'a')
	b.SetRune(1, 1, 'b')
	assert.Equal(t, "a \n b", b.String())
}

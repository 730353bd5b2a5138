package table

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllocateDropsColumnUnderMinimum(t *testing.T) {
	// 5 and 10 fit within 20; the third column's minimum of 10 exceeds the
	// remaining 5 cells, so it is dropped rather than shrunk.
	widths, kept := Allocate(20, []Column{
		{MinWidth: 5, Flex: 1},
		{MinWidth: 10, Flex: 1},
		{MinWidth: 10, Flex: 1},
	})

	require.Equal(t, []int{0, 1}, kept)
	assert.Len(t, widths, 2)
	assert.LessOrEqual(t, widths[0]+widths[1], 20)
	assert.GreaterOrEqual(t, widths[0], 5)
	assert.GreaterOrEqual(t, widths[1], 10)
}

func TestAllocateHardWidths(t *testing.T) {
	widths, kept := Allocate(10, []Column{
		{HardWidth: 4},
		{MinWidth: 3, Flex: 1},
		{HardWidth: 9},
	})

	assert.Equal(t, []int{0, 1}, kept)
	// The hard column keeps exactly its width; the flex column absorbs the
	// leftover freed by the dropped third column.
	assert.Equal(t, []int{4, 6}, widths)
}

func TestAllocateMidListDropFreesSpace(t *testing.T) {
	widths, kept := Allocate(12, []Column{
		{MinWidth: 13, Flex: 1},
		{MinWidth: 5, Flex: 1},
	})

	assert.Equal(t, []int{1}, kept)
	assert.Equal(t, []int{12}, widths)
}

func TestAllocateFlexDistribution(t *testing.T) {
	// 4 cells left over after minimums, split 2:1:1 across flex ratios
	widths, kept := Allocate(16, []Column{
		{MinWidth: 4, Flex: 2},
		{MinWidth: 4, Flex: 1},
		{MinWidth: 4, Flex: 1},
	})

	require.Equal(t, []int{0, 1, 2}, kept)
	assert.Equal(t, []int{6, 5, 5}, widths)
}

func TestAllocateNeverExceedsTotal(t *testing.T) {
	tests := []struct {
		name  string
		total int
		cols  []Column
	}{
		{name: "tight fit", total: 9, cols: []Column{{MinWidth: 3, Flex: 1}, {MinWidth: 3, Flex: 1}, {MinWidth: 3, Flex: 1}}},
		{name: "excess space", total: 100, cols: []Column{{MinWidth: 2, Flex: 1}, {HardWidth: 7}}},
		{name: "nothing fits", total: 2, cols: []Column{{MinWidth: 5, Flex: 1}, {HardWidth: 8}}},
		{name: "zero flex", total: 30, cols: []Column{{MinWidth: 4}, {MinWidth: 4}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			widths, kept := Allocate(tt.total, tt.cols)
			require.Len(t, widths, len(kept))

			sum := 0
			for i, w := range widths {
				col := tt.cols[kept[i]]
				if col.HardWidth > 0 {
					assert.Equal(t, col.HardWidth, w)
				} else {
					assert.GreaterOrEqual(t, w, col.MinWidth)
				}
				sum += w
			}
			assert.LessOrEqual(t, sum, tt.total)
		})
	}
}

func TestAllocateDegenerateInput(t *testing.T) {
	widths, kept := Allocate(0, []Column{{MinWidth: 1}})
	assert.Empty(t, widths)
	assert.Empty(t, kept)

	widths, kept = Allocate(10, nil)
	assert.Empty(t, widths)
	assert.Empty(t, kept)
}

func TestAllocateRemainderWithinOneCell(t *testing.T) {
	// 7 leftover cells over three equal flex columns: floor gives 2 each,
	// the remainder cell goes to the first column only.
	widths, _ := Allocate(13, []Column{
		{MinWidth: 2, Flex: 1},
		{MinWidth: 2, Flex: 1},
		{MinWidth: 2, Flex: 1},
	})

	for _, w := range widths {
		assert.LessOrEqual(t, w, 2+7/3+1)
	}
	assert.Equal(t, []int{5, 4, 4}, widths)
}

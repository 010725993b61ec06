package logic

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// grid of 7 items, 3 per row, each row 4 lines tall starting at line 2
func gridCells() []Cell {
	var cells []Cell
	for i := 0; i < 7; i++ {
		row, col := i/3, i%3
		top := 2 + row*4
		cells = append(cells, Cell{Row: row, Col: col, Top: top, Bottom: top + 4})
	}
	return cells
}

func TestNavigatorMoves(t *testing.T) {
	n := NewNavigator()
	n.UpdateLayout(gridCells(), 100)

	assert.Equal(t, 1, n.Move("right"))
	assert.Equal(t, 4, n.Move("down"))
	assert.Equal(t, 6, n.Move("down"), "short last row picks nearest column")
	assert.Equal(t, 6, n.Move("down"), "no row below keeps cursor")
	assert.Equal(t, 3, n.Move("up"))
	assert.Equal(t, 2, n.Move("left"))
	assert.Equal(t, 0, n.Move("home"))
	assert.Equal(t, 0, n.Move("left"))
	assert.Equal(t, 6, n.Move("end"))
}

func TestNavigatorScrollsCursorIntoView(t *testing.T) {
	n := NewNavigator()
	n.UpdateLayout(gridCells(), 5)

	n.SetIndex(6)
	assert.Equal(t, 9, n.ViewportOffset())

	n.SetIndex(0)
	assert.Equal(t, 2, n.ViewportOffset())
}

func TestNavigatorPages(t *testing.T) {
	n := NewNavigator()
	n.UpdateLayout(gridCells(), 5)

	assert.Equal(t, 3, n.Move("pagedown"))
	assert.Equal(t, 0, n.Move("pageup"))
}

func TestNavigatorClampsOnShrink(t *testing.T) {
	n := NewNavigator()
	n.UpdateLayout(gridCells(), 100)
	n.SetIndex(6)

	n.UpdateLayout(gridCells()[:2], 100)
	assert.Equal(t, 1, n.Index())

	n.UpdateLayout(nil, 100)
	assert.Equal(t, 0, n.Index())
	assert.Equal(t, 0, n.Move("down"))
}

package logic

// Cell is where an item sits in the current layout, in terminal lines
type Cell struct {
	Row    int // visual row, continuous across groups
	Col    int
	Top    int // first line
	Bottom int // line after the last
}

// Navigator moves the keyboard cursor over laid-out items and keeps it in view
type Navigator struct {
	cells          []Cell
	index          int
	viewportOffset int
	viewportHeight int
}

// NewNavigator creates a new navigator
func NewNavigator() *Navigator {
	return &Navigator{}
}

// UpdateLayout replaces the cell table after a layout pass. The cursor is clamped.
func (n *Navigator) UpdateLayout(cells []Cell, viewportHeight int) {
	n.cells = cells
	n.viewportHeight = viewportHeight
	n.SetIndex(n.index)
}

// Index returns the cursor position in render order
func (n *Navigator) Index() int {
	return n.index
}

// ViewportOffset returns the first visible line
func (n *Navigator) ViewportOffset() int {
	return n.viewportOffset
}

// SetViewportOffset scrolls without moving the cursor
func (n *Navigator) SetViewportOffset(offset int) {
	if offset < 0 {
		offset = 0
	}
	n.viewportOffset = offset
}

// SetIndex moves the cursor and scrolls it into view
func (n *Navigator) SetIndex(index int) int {
	if len(n.cells) == 0 {
		n.index = 0
		return 0
	}
	if index < 0 {
		index = 0
	}
	if index >= len(n.cells) {
		index = len(n.cells) - 1
	}
	n.index = index
	n.ensureVisible()
	return n.index
}

// Move applies a direction and returns the new cursor index
func (n *Navigator) Move(direction string) int {
	if len(n.cells) == 0 {
		return 0
	}
	cur := n.cells[n.index]

	switch direction {
	case "left":
		return n.SetIndex(n.index - 1)
	case "right":
		return n.SetIndex(n.index + 1)
	case "up":
		return n.SetIndex(n.nearestInRow(cur.Row-1, cur.Col))
	case "down":
		return n.SetIndex(n.nearestInRow(cur.Row+1, cur.Col))
	case "home":
		return n.SetIndex(0)
	case "end":
		return n.SetIndex(len(n.cells) - 1)
	case "pageup":
		return n.SetIndex(n.nearestToLine(cur.Top-n.pageSize(), cur.Col))
	case "pagedown":
		return n.SetIndex(n.nearestToLine(cur.Top+n.pageSize(), cur.Col))
	}
	return n.index
}

func (n *Navigator) pageSize() int {
	if n.viewportHeight > 1 {
		return n.viewportHeight - 1
	}
	return 1
}

// nearestInRow finds the item in row closest to col. Missing rows keep the cursor.
func (n *Navigator) nearestInRow(row, col int) int {
	best, bestDist := n.index, -1
	for i, c := range n.cells {
		if c.Row != row {
			continue
		}
		d := abs(c.Col - col)
		if bestDist < 0 || d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

// nearestToLine finds the row whose top is closest to line, then the closest column in it
func (n *Navigator) nearestToLine(line, col int) int {
	row, bestDist := -1, -1
	for _, c := range n.cells {
		d := abs(c.Top - line)
		if bestDist < 0 || d < bestDist {
			row, bestDist = c.Row, d
		}
	}
	if row < 0 {
		return n.index
	}
	return n.nearestInRow(row, col)
}

func (n *Navigator) ensureVisible() {
	if n.viewportHeight <= 0 {
		return
	}
	c := n.cells[n.index]
	if c.Top < n.viewportOffset {
		n.viewportOffset = c.Top
	} else if c.Bottom > n.viewportOffset+n.viewportHeight {
		n.viewportOffset = c.Bottom - n.viewportHeight
	}
	if n.viewportOffset < 0 {
		n.viewportOffset = 0
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

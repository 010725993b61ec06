// Package layout places items of a presentation on a character grid and
// converts between terminal cells and the pixel space used for hit-testing.
package layout

import (
	"filegrip/internal/domain"
	"filegrip/internal/geometry"
	"filegrip/internal/ui/logic"
	"filegrip/internal/ui/services/selection"
)

// A terminal cell counts as this many pixels in gesture space
const (
	CellWidthPx  = 8
	CellHeightPx = 16
)

// Tile sizes, in terminal columns and lines
const (
	TileWidth     = 18
	TileHeight    = 3
	TallTileExtra = 3 // masonry tiles with a thumbnail are taller
	Gap           = 1
	HeaderHeight  = 1
)

// Slot is where one item is drawn, relative to the top of the content
type Slot struct {
	ID    string
	Index int // render index
	Item  domain.Item
	Row   int
	Col   int
	X     int
	Y     int
	W     int
	H     int
}

// Header is a group label line
type Header struct {
	Label     string
	Count     int
	Collapsed bool
	Y         int
}

// Layout is the outcome of one layout pass
type Layout struct {
	Mode    domain.ViewMode
	Width   int
	Height  int // total content lines
	Slots   []Slot
	Headers []Header
}

// Compute lays out groups for a viewport width. Collapsed groups keep their
// header but place no items.
func Compute(groups []logic.Group, collapsed func(string) bool, mode domain.ViewMode, width int) Layout {
	if width < TileWidth {
		width = TileWidth
	}
	l := Layout{Mode: mode, Width: width}

	y, row, index := 0, 0, 0
	for _, g := range groups {
		isCollapsed := g.Label != "" && collapsed != nil && collapsed(g.Label)
		if g.Label != "" {
			l.Headers = append(l.Headers, Header{Label: g.Label, Count: len(g.Items), Collapsed: isCollapsed, Y: y})
			y += HeaderHeight
		}
		if isCollapsed || len(g.Items) == 0 {
			continue
		}

		var placed []Slot
		var height, rows int
		switch mode {
		case domain.ViewList:
			placed, height, rows = placeList(g.Items, width)
		case domain.ViewMasonry:
			placed, height, rows = placeMasonry(g.Items, width)
		default:
			placed, height, rows = placeGrid(g.Items, width)
		}

		for _, s := range placed {
			s.Y += y
			s.Row += row
			s.Index = index
			index++
			l.Slots = append(l.Slots, s)
		}
		y += height
		row += rows
	}
	l.Height = y
	return l
}

// Columns returns how many tiles fit side by side
func Columns(width int) int {
	cols := (width + Gap) / (TileWidth + Gap)
	if cols < 1 {
		return 1
	}
	return cols
}

func placeGrid(items []domain.Item, width int) ([]Slot, int, int) {
	cols := Columns(width)
	slots := make([]Slot, len(items))
	for i, item := range items {
		r, c := i/cols, i%cols
		slots[i] = Slot{
			ID:   item.ID,
			Item: item,
			Row:  r,
			Col:  c,
			X:    c * (TileWidth + Gap),
			Y:    r * (TileHeight + Gap),
			W:    TileWidth,
			H:    TileHeight,
		}
	}
	rows := (len(items) + cols - 1) / cols
	return slots, rows * (TileHeight + Gap), rows
}

func placeList(items []domain.Item, width int) ([]Slot, int, int) {
	slots := make([]Slot, len(items))
	for i, item := range items {
		slots[i] = Slot{ID: item.ID, Item: item, Row: i, Y: i, W: width, H: 1}
	}
	return slots, len(items), len(items)
}

// placeMasonry drops each tile into the shortest column. Rows follow
// placement order so vertical navigation still moves between neighbours.
func placeMasonry(items []domain.Item, width int) ([]Slot, int, int) {
	cols := Columns(width)
	heights := make([]int, cols)
	slots := make([]Slot, len(items))
	for i, item := range items {
		c := 0
		for j := 1; j < cols; j++ {
			if heights[j] < heights[c] {
				c = j
			}
		}
		h := TileHeight
		if item.HasThumbnail {
			h += TallTileExtra
		}
		slots[i] = Slot{
			ID:   item.ID,
			Item: item,
			Row:  i / cols,
			Col:  c,
			X:    c * (TileWidth + Gap),
			Y:    heights[c],
			W:    TileWidth,
			H:    h,
		}
		heights[c] += h + Gap
	}

	tallest := 0
	for _, h := range heights {
		if h > tallest {
			tallest = h
		}
	}
	return slots, tallest, (len(items) + cols - 1) / cols
}

// Cells converts slots into the cursor navigation table
func (l Layout) Cells() []logic.Cell {
	cells := make([]logic.Cell, len(l.Slots))
	for i, s := range l.Slots {
		cells[i] = logic.Cell{Row: s.Row, Col: s.Col, Top: s.Y, Bottom: s.Y + s.H}
	}
	return cells
}

// Order returns the ids of all slots in render order
func (l Layout) Order() []string {
	ids := make([]string, len(l.Slots))
	for i, s := range l.Slots {
		ids[i] = s.ID
	}
	return ids
}

// Visible returns the slots that overlap the viewport lines [scroll, scroll+height)
func (l Layout) Visible(scroll, height int) []Slot {
	var out []Slot
	for _, s := range l.Slots {
		if s.Y+s.H > scroll && s.Y < scroll+height {
			out = append(out, s)
		}
	}
	return out
}

// HeaderAt returns the header drawn on content line y
func (l Layout) HeaderAt(y int) (Header, bool) {
	for _, h := range l.Headers {
		if h.Y == y {
			return h, true
		}
	}
	return Header{}, false
}

// Regions returns the pixel rectangles of the visible slots for the
// selection registry. originX and originY are the screen cell where content
// line scroll is drawn.
func (l Layout) Regions(scroll, height, originX, originY int) []selection.Region {
	visible := l.Visible(scroll, height)
	regions := make([]selection.Region, len(visible))
	for i, s := range visible {
		regions[i] = selection.Region{
			ID: s.ID,
			Rect: geometry.Rect{
				X: float64((originX + s.X) * CellWidthPx),
				Y: float64((originY + s.Y - scroll) * CellHeightPx),
				W: float64(s.W * CellWidthPx),
				H: float64(s.H * CellHeightPx),
			},
		}
	}
	return regions
}

// ToPixels maps a terminal cell to the centre of its pixel box
func ToPixels(x, y int) geometry.Point {
	return geometry.Point{
		X: float64(x*CellWidthPx + CellWidthPx/2),
		Y: float64(y*CellHeightPx + CellHeightPx/2),
	}
}

// ToCell maps a pixel position back to a terminal cell
func ToCell(p geometry.Point) (int, int) {
	return int(p.X) / CellWidthPx, int(p.Y) / CellHeightPx
}

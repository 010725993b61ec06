package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"filegrip/internal/ui/mouse"
)

type cell struct {
	ch    string // empty for the second half of a wide rune
	style *lipgloss.Style
}

// Canvas is a fixed-size grid of styled cells. Tiles are positioned freely
// on it, which a line-oriented join cannot do for masonry layouts.
type Canvas struct {
	w, h  int
	cells [][]cell
	clip  *mouse.Rect
}

// NewCanvas creates a blank canvas
func NewCanvas(w, h int) *Canvas {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	c := &Canvas{w: w, h: h, cells: make([][]cell, h)}
	for y := range c.cells {
		row := make([]cell, w)
		for x := range row {
			row[x] = cell{ch: " "}
		}
		c.cells[y] = row
	}
	return c
}

// Width returns the canvas width in cells
func (c *Canvas) Width() int { return c.w }

// Height returns the canvas height in cells
func (c *Canvas) Height() int { return c.h }

// Clip restricts drawing to r until Unclip is called
func (c *Canvas) Clip(r mouse.Rect) { c.clip = &r }

// Unclip lifts the drawing restriction
func (c *Canvas) Unclip() { c.clip = nil }

func (c *Canvas) inside(x, y int) bool {
	if c.clip != nil && !c.clip.Contains(x, y) {
		return false
	}
	return x >= 0 && y >= 0 && x < c.w && y < c.h
}

func (c *Canvas) right() int {
	if c.clip != nil && c.clip.X+c.clip.W < c.w {
		return c.clip.X + c.clip.W
	}
	return c.w
}

// Put writes text starting at (x, y), clipped to the canvas, and returns
// the number of columns written
func (c *Canvas) Put(x, y int, text string, style *lipgloss.Style) int {
	start := x
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if x+w > c.right() {
			break
		}
		if c.inside(x, y) && c.inside(x+w-1, y) {
			c.place(x, y, string(r), style)
			if w == 2 {
				c.place(x+1, y, "", style)
			}
		}
		x += w
	}
	return x - start
}

// Set writes a single glyph, keeping nothing of what was there
func (c *Canvas) Set(x, y int, ch string, style *lipgloss.Style) {
	if c.inside(x, y) {
		c.place(x, y, ch, style)
	}
}

// place writes one cell and blanks any wide rune it cuts in half
func (c *Canvas) place(x, y int, ch string, style *lipgloss.Style) {
	row := c.cells[y]
	if row[x].ch == "" && ch != "" && x > 0 {
		row[x-1].ch = " "
	}
	if x+1 < c.w && row[x+1].ch == "" && runewidth.StringWidth(row[x].ch) == 2 {
		row[x+1].ch = " "
	}
	row[x] = cell{ch: ch, style: style}
}

// Paint changes the style of a rectangle and keeps its glyphs
func (c *Canvas) Paint(x, y, w, h int, style *lipgloss.Style) {
	for yy := y; yy < y+h; yy++ {
		for xx := x; xx < x+w; xx++ {
			if c.inside(xx, yy) {
				c.cells[yy][xx].style = style
			}
		}
	}
}

// Line draws a straight run of glyphs between two cells
func (c *Canvas) Line(x0, y0, x1, y1 int, ch string, style *lipgloss.Style) {
	dx, dy := abs(x1-x0), -abs(y1-y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		c.Set(x0, y0, ch, style)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// Box draws a single-line frame
func (c *Canvas) Box(x, y, w, h int, style *lipgloss.Style) {
	if w < 1 || h < 1 {
		return
	}
	x1, y1 := x+w-1, y+h-1
	for xx := x; xx <= x1; xx++ {
		c.Set(xx, y, "─", style)
		c.Set(xx, y1, "─", style)
	}
	for yy := y; yy <= y1; yy++ {
		c.Set(x, yy, "│", style)
		c.Set(x1, yy, "│", style)
	}
	c.Set(x, y, "┌", style)
	c.Set(x1, y, "┐", style)
	c.Set(x, y1, "└", style)
	c.Set(x1, y1, "┘", style)
}

// Render serialises the canvas, styling runs of cells that share a style
func (c *Canvas) Render() string {
	lines := make([]string, c.h)
	for y, row := range c.cells {
		var line, run strings.Builder
		var current *lipgloss.Style
		flush := func() {
			if run.Len() == 0 {
				return
			}
			if current != nil {
				line.WriteString(current.Render(run.String()))
			} else {
				line.WriteString(run.String())
			}
			run.Reset()
		}
		for _, cl := range row {
			if cl.style != current {
				flush()
				current = cl.style
			}
			run.WriteString(cl.ch)
		}
		flush()
		lines[y] = line.String()
	}
	return strings.Join(lines, "\n")
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

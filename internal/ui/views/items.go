package views

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/mattn/go-runewidth"

	"filegrip/internal/domain"
	"filegrip/internal/ui/layout"
	"filegrip/internal/ui/mouse"
)

// Icon returns the glyph shown in front of an item name
func Icon(item domain.Item) string {
	switch {
	case item.IsDir:
		return "▸"
	case item.HasThumbnail:
		return "▣"
	default:
		return "·"
	}
}

// SizeLabel is the human readable size, empty for folders
func SizeLabel(item domain.Item) string {
	if item.IsDir {
		return ""
	}
	return humanize.Bytes(uint64(item.Size))
}

// ModifiedLabel is the relative modification time
func ModifiedLabel(item domain.Item, now time.Time) string {
	if item.Modified == nil {
		return ""
	}
	return humanize.RelTime(*item.Modified, now, "ago", "from now")
}

// slotStyle picks the background for a slot. The live gesture wins over the
// stored selection so the user sees what a release would select.
func (r *Renderer) slotStyle(s ViewState, id string) *lipgloss.Style {
	cursor := id == s.Cursor
	switch {
	case s.Under[id]:
		return &r.styles.Under
	case s.Selected[id] && cursor:
		return &r.styles.CursorOnSel
	case s.Selected[id]:
		return &r.styles.Selected
	case cursor:
		return &r.styles.Cursor
	}
	return nil
}

func (r *Renderer) nameStyle(s ViewState, item domain.Item, bg *lipgloss.Style) *lipgloss.Style {
	if bg != nil {
		return bg
	}
	if s.Matches[item.ID] {
		return &r.styles.Highlight
	}
	if item.IsDir {
		return &r.styles.Folder
	}
	return &r.styles.Name
}

func (r *Renderer) drawItems(c *Canvas, s ViewState, area mouse.Rect) {
	c.Clip(area)
	defer c.Unclip()

	for _, h := range s.Layout.Headers {
		y := area.Y + h.Y - s.Scroll
		if y >= area.Y && y < area.Y+area.H {
			r.drawHeader(c, h, area.X, y, area.W)
		}
	}
	for _, slot := range s.Layout.Visible(s.Scroll, area.H) {
		x, y := area.X+slot.X, area.Y+slot.Y-s.Scroll
		if s.Layout.Mode == domain.ViewList {
			r.drawRow(c, s, slot, x, y)
			continue
		}
		r.drawTile(c, s, slot, x, y)
	}
}

func (r *Renderer) drawRow(c *Canvas, s ViewState, slot layout.Slot, x, y int) {
	item := slot.Item
	bg := r.slotStyle(s, item.ID)
	if bg != nil {
		c.Paint(x, y, slot.W, 1, bg)
	}

	right := runewidth.FillLeft(SizeLabel(item), 9) + "  " + runewidth.FillRight(ModifiedLabel(item, r.now()), 16)
	rightW := runewidth.StringWidth(right)
	nameW := slot.W - rightW - 4
	if nameW < 8 {
		nameW = slot.W - 3
		right = ""
	}

	c.Put(x+1, y, Icon(item), r.nameStyle(s, item, bg))
	c.Put(x+3, y, runewidth.Truncate(item.Name, nameW, "…"), r.nameStyle(s, item, bg))
	if right != "" {
		detail := &r.styles.Detail
		if bg != nil {
			detail = bg
		}
		c.Put(x+slot.W-rightW-1, y, right, detail)
	}
}

func (r *Renderer) drawTile(c *Canvas, s ViewState, slot layout.Slot, x, y int) {
	item := slot.Item
	bg := r.slotStyle(s, item.ID)
	if bg != nil {
		c.Paint(x, y, slot.W, slot.H, bg)
	}

	top := y
	if slot.H > layout.TileHeight {
		r.drawTileThumbnail(c, s, item, x, y, slot.W, slot.H-layout.TileHeight)
		top = y + slot.H - layout.TileHeight
	}

	name := Icon(item) + " " + item.Name
	c.Put(x+1, top, runewidth.Truncate(name, slot.W-2, "…"), r.nameStyle(s, item, bg))

	detail := &r.styles.Detail
	if bg != nil {
		detail = bg
	}
	size := SizeLabel(item)
	if item.IsDir {
		size = "folder"
	}
	c.Put(x+3, top+1, runewidth.Truncate(size, slot.W-4, "…"), detail)
	c.Put(x+3, top+2, runewidth.Truncate(ModifiedLabel(item, r.now()), slot.W-4, "…"), detail)
}

func (r *Renderer) drawTileThumbnail(c *Canvas, s ViewState, item domain.Item, x, y, w, h int) {
	if s.Thumbnail != nil {
		if img := s.Thumbnail(item.ID); img != nil && img.Decoded != nil {
			r.drawImage(c, img, x+1, y, w-2, h)
			return
		}
	}
	placeholder := strings.Repeat("░", w-2)
	for i := 0; i < h; i++ {
		c.Put(x+1, y+i, placeholder, &r.styles.Dim)
	}
}

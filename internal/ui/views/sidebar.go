package views

import (
	"github.com/mattn/go-runewidth"

	"filegrip/internal/domain"
	"filegrip/internal/ui/mouse"
)

// SidebarZones returns one region per visible entry. Data is the entry index.
func SidebarZones(entries []domain.SidebarEntry, area mouse.Rect) []mouse.Region {
	var zones []mouse.Region
	for i := range entries {
		if i >= area.H {
			break
		}
		zones = append(zones, mouse.Region{
			ID:   RegionSidebar,
			Rect: mouse.Rect{X: area.X, Y: area.Y + i, W: area.W, H: 1},
			Data: i,
		})
	}
	return zones
}

func (r *Renderer) drawSidebar(c *Canvas, s ViewState, area mouse.Rect) {
	for y := area.Y; y < area.Y+area.H; y++ {
		c.Set(area.X+area.W, y, "│", &r.styles.Separator)
	}
	for i, e := range s.Sidebar {
		if i >= area.H {
			return
		}
		style := &r.styles.Sidebar
		if e.Path == s.Location {
			style = &r.styles.SidebarActive
		}
		if s.SidebarFocused && i == s.SidebarIndex {
			style = &r.styles.SidebarCursor
			c.Paint(area.X, area.Y+i, area.W, 1, style)
		}

		y := area.Y + i
		label := " " + e.Icon + " " + e.Label
		if e.Detail == "" {
			c.Put(area.X, y, runewidth.Truncate(label, area.W, "…"), style)
			continue
		}
		detail := e.Detail + " "
		room := area.W - runewidth.StringWidth(detail) - 1
		if room < 4 {
			c.Put(area.X, y, runewidth.Truncate(label, area.W, "…"), style)
			continue
		}
		c.Put(area.X, y, runewidth.Truncate(label, room, "…"), style)
		detailStyle := &r.styles.Detail
		if s.SidebarFocused && i == s.SidebarIndex {
			detailStyle = style
		}
		c.Put(area.X+area.W-runewidth.StringWidth(detail), y, detail, detailStyle)
	}
}

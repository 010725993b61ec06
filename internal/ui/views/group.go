package views

import (
	"fmt"

	"github.com/mattn/go-runewidth"

	"filegrip/internal/ui/layout"
	"filegrip/internal/ui/mouse"
)

// HeaderZones returns the clickable group header lines inside the grid area.
// Data is the group label.
func HeaderZones(l layout.Layout, scroll int, area mouse.Rect) []mouse.Region {
	var zones []mouse.Region
	for _, h := range l.Headers {
		y := area.Y + h.Y - scroll
		if y < area.Y || y >= area.Y+area.H {
			continue
		}
		zones = append(zones, mouse.Region{
			ID:   RegionHeader,
			Rect: mouse.Rect{X: area.X, Y: y, W: area.W, H: 1},
			Data: h.Label,
		})
	}
	return zones
}

// HeaderLabel formats a group header line
func HeaderLabel(h layout.Header) string {
	arrow := "▼"
	if h.Collapsed {
		arrow = "▶"
	}
	return fmt.Sprintf("%s %s (%d)", arrow, h.Label, h.Count)
}

func (r *Renderer) drawHeader(c *Canvas, h layout.Header, x, y, width int) {
	label := runewidth.Truncate(HeaderLabel(h), width-1, "…")
	n := c.Put(x, y, label, &r.styles.Header)
	if rest := width - n - 2; rest > 0 {
		for i := 0; i < rest; i++ {
			c.Set(x+n+1+i, y, "─", &r.styles.Separator)
		}
	}
}

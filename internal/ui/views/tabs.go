package views

import (
	"fmt"

	"github.com/mattn/go-runewidth"

	"filegrip/internal/ui/mouse"
)

// Hit region ids
const (
	RegionTab        = "tab"
	RegionNewTab     = "tab:new"
	RegionSidebar    = "sidebar"
	RegionHeader     = "header"
	RegionGrid       = "grid"
	maxTabTitleWidth = 20
)

// TabView is one entry of the tab bar
type TabView struct {
	ID     string
	Title  string
	Active bool
}

func tabLabel(t TabView, index int) string {
	title := runewidth.Truncate(t.Title, maxTabTitleWidth, "…")
	if index < 9 {
		return fmt.Sprintf(" %d %s ", index+1, title)
	}
	return fmt.Sprintf(" %s ", title)
}

// TabZones returns the clickable cells of the tab bar. Each tab's Data is
// its id; the trailing "+" opens a new tab.
func TabZones(tabs []TabView, area mouse.Rect) []mouse.Region {
	var zones []mouse.Region
	x := area.X
	limit := area.X + area.W
	for i, t := range tabs {
		w := runewidth.StringWidth(tabLabel(t, i))
		if x+w > limit {
			w = limit - x
		}
		if w <= 0 {
			return zones
		}
		zones = append(zones, mouse.Region{ID: RegionTab, Rect: mouse.Rect{X: x, Y: area.Y, W: w, H: 1}, Data: t.ID})
		x += w + 1
	}
	if x+3 <= limit {
		zones = append(zones, mouse.Region{ID: RegionNewTab, Rect: mouse.Rect{X: x, Y: area.Y, W: 3, H: 1}})
	}
	return zones
}

func (r *Renderer) drawTabs(c *Canvas, tabs []TabView, area mouse.Rect) {
	zones := TabZones(tabs, area)
	for i, z := range zones {
		if z.ID == RegionNewTab {
			c.Put(z.Rect.X, z.Rect.Y, " + ", &r.styles.TabPlus)
			continue
		}
		style := &r.styles.Tab
		if tabs[i].Active {
			style = &r.styles.TabActive
		}
		label := runewidth.Truncate(tabLabel(tabs[i], i), z.Rect.W, "")
		c.Put(z.Rect.X, z.Rect.Y, label, style)
	}
}

package views

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"filegrip/internal/ui/services/sorting"
)

// OverlayView is the open sort or group chooser
type OverlayView struct {
	Title   string
	Options []sorting.Option
	Cursor  int
}

// popup is a framed box drawn over a greyed-out screen
type popup struct {
	title string
	lines []string
	// styles per line; nil uses the plain overlay text style
	styles []*lipgloss.Style
	footer string
}

func (r *Renderer) overlayPopup(o *OverlayView) popup {
	p := popup{title: o.Title, footer: "↑/↓ move · enter choose · esc close"}
	for i, opt := range o.Options {
		marker := "  "
		style := &r.styles.Name
		if opt.Active {
			marker = "✓ "
			style = &r.styles.OverlayActive
		}
		if i == o.Cursor {
			style = &r.styles.OverlayCursor
		}
		p.lines = append(p.lines, marker+opt.Label)
		p.styles = append(p.styles, style)
	}
	return p
}

func (r *Renderer) confirmPopup(question string) popup {
	return popup{
		title:  "Confirm",
		lines:  []string{question},
		styles: []*lipgloss.Style{&r.styles.Name},
		footer: "y open · n cancel",
	}
}

// drawPopup mutes everything already drawn and centres the box on top
func (r *Renderer) drawPopup(c *Canvas, p popup) {
	c.Paint(0, 0, c.Width(), c.Height(), &r.styles.Muted)

	inner := runewidth.StringWidth(p.title)
	for _, l := range p.lines {
		if w := runewidth.StringWidth(l); w > inner {
			inner = w
		}
	}
	if w := runewidth.StringWidth(p.footer); w > inner {
		inner = w
	}
	inner += 2
	if inner > c.Width()-4 {
		inner = c.Width() - 4
	}
	w := inner + 2
	h := len(p.lines) + 4
	x := (c.Width() - w) / 2
	y := (c.Height() - h) / 2

	blank := runewidth.FillRight("", inner)
	for yy := y + 1; yy < y+h-1; yy++ {
		c.Put(x+1, yy, blank, &r.styles.Name)
	}
	c.Box(x, y, w, h, &r.styles.Marquee)
	c.Put(x+2, y, " "+p.title+" ", &r.styles.Title)
	for i, l := range p.lines {
		style := &r.styles.Name
		if i < len(p.styles) && p.styles[i] != nil {
			style = p.styles[i]
		}
		line := runewidth.FillRight(runewidth.Truncate(" "+l, inner, "…"), inner)
		c.Put(x+1, y+1+i, line, style)
	}
	c.Put(x+2, y+h-2, runewidth.Truncate(p.footer, inner-1, "…"), &r.styles.Help)
}

// renderFailed is the whole-screen message shown when the backend is gone
func (r *Renderer) renderFailed(message string, width, height int) string {
	box := r.styles.ErrorScreen.Render(message + "\n\n" + r.styles.Help.Render("Press q to quit"))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}

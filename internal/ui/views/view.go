package views

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"filegrip/internal/domain"
	"filegrip/internal/geometry"
	"filegrip/internal/thumbnails"
	"filegrip/internal/ui/layout"
	"filegrip/internal/ui/mouse"
	"filegrip/internal/ui/state"
)

// GestureView is the live marquee or lasso, in screen pixels
type GestureView struct {
	Lasso  bool
	Box    geometry.Rect
	Points []geometry.Point
	Glow   []geometry.Point
}

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width          int
	Height         int
	Tabs           []TabView
	Location       string
	Info           string
	Filter         string
	Loading        bool
	Sidebar        []domain.SidebarEntry
	SidebarIndex   int
	SidebarFocused bool
	Layout         layout.Layout
	Scroll         int
	Cursor         string
	Selected       map[string]bool
	Under          map[string]bool
	Matches        map[string]bool
	Gesture        *GestureView
	ShowPreview    bool
	Preview        *domain.Item
	Thumbnail      func(id string) *thumbnails.Image
	Overlay        *OverlayView
	Prompt         string
	Input          string
	Confirm        string
	Status         string
	StatusLevel    state.StatusLevel
	Failed         string
	Empty          string
	HelpLine       string
}

// Renderer handles all view rendering
type Renderer struct {
	styles *Styles
	scaled map[scaledKey][][]lipgloss.Style
	now    func() time.Time
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	return &Renderer{
		styles: NewStyles(),
		scaled: make(map[scaledKey][][]lipgloss.Style),
		now:    time.Now,
	}
}

// SetClock replaces the time source used for relative dates
func (r *Renderer) SetClock(now func() time.Time) {
	r.now = now
}

// Render produces the complete view
func (r *Renderer) Render(s ViewState) string {
	if s.Width <= 0 || s.Height <= 0 {
		return ""
	}
	if s.Failed != "" {
		return r.renderFailed(s.Failed, s.Width, s.Height)
	}

	f := NewFrame(s.Width, s.Height, s.ShowPreview)
	c := NewCanvas(s.Width, s.Height)

	r.drawTabs(c, s.Tabs, f.TabBar)
	r.drawLocation(c, s, f.Location)
	if f.HasSidebar {
		r.drawSidebar(c, s, f.Sidebar)
	}
	switch {
	case len(s.Layout.Slots) > 0 || len(s.Layout.Headers) > 0:
		r.drawItems(c, s, f.Grid)
	case s.Loading:
		c.Put(f.Grid.X+1, f.Grid.Y, "Loading…", &r.styles.Dim)
	case s.Empty != "":
		c.Put(f.Grid.X+1, f.Grid.Y, s.Empty, &r.styles.Dim)
	}
	if s.Gesture != nil {
		r.drawGesture(c, s.Gesture, f.Grid)
	}
	if f.HasPreview {
		r.drawPreview(c, s, f.Preview)
	}
	r.drawStatus(c, s, f.Status)
	r.drawPrompt(c, s, f.Prompt)

	switch {
	case s.Overlay != nil:
		r.drawPopup(c, r.overlayPopup(s.Overlay))
	case s.Confirm != "":
		r.drawPopup(c, r.confirmPopup(s.Confirm))
	}
	return c.Render()
}

func (r *Renderer) drawLocation(c *Canvas, s ViewState, area mouse.Rect) {
	right := s.Info
	if s.Filter != "" {
		right = fmt.Sprintf("[Filter: %s]  %s", s.Filter, right)
	}
	rightW := runewidth.StringWidth(right)
	room := area.W - rightW - 3
	if room < 10 {
		room = area.W - 2
		right = ""
	}
	c.Put(area.X+1, area.Y, runewidth.Truncate(s.Location, room, "…"), &r.styles.Location)
	if right != "" {
		style := &r.styles.Dim
		if s.Filter != "" {
			style = &r.styles.Filter
		}
		c.Put(area.X+area.W-rightW-1, area.Y, right, style)
	}
}

func (r *Renderer) drawStatus(c *Canvas, s ViewState, area mouse.Rect) {
	if s.Status == "" {
		return
	}
	style := &r.styles.StatusInfo
	switch s.StatusLevel {
	case state.StatusWarning:
		style = &r.styles.StatusWarning
	case state.StatusError:
		style = &r.styles.StatusError
	}
	c.Put(area.X+1, area.Y, runewidth.Truncate(s.Status, area.W-2, "…"), style)
}

func (r *Renderer) drawPrompt(c *Canvas, s ViewState, area mouse.Rect) {
	if s.Prompt != "" {
		n := c.Put(area.X+1, area.Y, s.Prompt, &r.styles.Title)
		c.Put(area.X+1+n, area.Y, s.Input, &r.styles.Name)
		return
	}
	help := s.HelpLine
	if help == "" {
		help = "Press ? for help"
	}
	c.Put(area.X+1, area.Y, runewidth.Truncate(help, area.W-2, "…"), &r.styles.Help)
}

// drawGesture outlines the marquee, or traces the lasso with its glow on top
func (r *Renderer) drawGesture(c *Canvas, g *GestureView, area mouse.Rect) {
	c.Clip(area)
	defer c.Unclip()

	if !g.Lasso {
		x0, y0 := layout.ToCell(geometry.Point{X: g.Box.X, Y: g.Box.Y})
		x1, y1 := layout.ToCell(geometry.Point{X: g.Box.X + g.Box.W, Y: g.Box.Y + g.Box.H})
		c.Box(x0, y0, x1-x0+1, y1-y0+1, &r.styles.Marquee)
		return
	}

	for i := 1; i < len(g.Points); i++ {
		x0, y0 := layout.ToCell(g.Points[i-1])
		x1, y1 := layout.ToCell(g.Points[i])
		c.Line(x0, y0, x1, y1, "•", &r.styles.Lasso)
	}
	for _, p := range g.Glow {
		x, y := layout.ToCell(p)
		c.Set(x, y, "●", &r.styles.LassoGlow)
	}
}

package views

import "filegrip/internal/ui/mouse"

// Fixed chrome sizes, in cells
const (
	SidebarWidth = 24
	PreviewWidth = 34
	TopLines     = 2 // tab bar and location line
	BottomLines  = 2 // status and prompt lines
)

// Frame splits the terminal into the areas the renderer draws
type Frame struct {
	Width      int
	Height     int
	TabBar     mouse.Rect
	Location   mouse.Rect
	Sidebar    mouse.Rect
	Grid       mouse.Rect
	Preview    mouse.Rect
	Status     mouse.Rect
	Prompt     mouse.Rect
	HasSidebar bool
	HasPreview bool
}

// NewFrame computes the areas for a terminal size. The sidebar and preview
// are dropped when the grid would be narrower than one tile.
func NewFrame(width, height int, preview bool) Frame {
	f := Frame{Width: width, Height: height}
	bodyH := height - TopLines - BottomLines
	if bodyH < 1 {
		bodyH = 1
	}
	f.TabBar = mouse.Rect{X: 0, Y: 0, W: width, H: 1}
	f.Location = mouse.Rect{X: 0, Y: 1, W: width, H: 1}
	f.Status = mouse.Rect{X: 0, Y: TopLines + bodyH, W: width, H: 1}
	f.Prompt = mouse.Rect{X: 0, Y: TopLines + bodyH + 1, W: width, H: 1}

	gridX, gridW := 0, width
	if width >= SidebarWidth+minGrid {
		f.HasSidebar = true
		f.Sidebar = mouse.Rect{X: 0, Y: TopLines, W: SidebarWidth - 1, H: bodyH}
		gridX = SidebarWidth
		gridW = width - SidebarWidth
	}
	if preview && gridW >= PreviewWidth+minGrid {
		f.HasPreview = true
		f.Preview = mouse.Rect{X: width - PreviewWidth + 1, Y: TopLines, W: PreviewWidth - 1, H: bodyH}
		gridW -= PreviewWidth
	}
	if gridW < 1 {
		gridW = 1
	}
	f.Grid = mouse.Rect{X: gridX, Y: TopLines, W: gridW, H: bodyH}
	return f
}

const minGrid = 20

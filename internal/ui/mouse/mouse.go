// Package mouse maps terminal cells to named screen regions and recognises
// double clicks. Item hit-testing happens in pixel space in the selection
// registry; this package covers the chrome around it.
package mouse

import (
	"sync"
	"time"
)

// DoubleClickThreshold is the longest gap between two clicks of a double click
const DoubleClickThreshold = 400 * time.Millisecond

// Rect is a region in terminal cells. The right and bottom edges are exclusive.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the cell (x, y) lies inside r
func (r Rect) Contains(x, y int) bool {
	return r.W > 0 && r.H > 0 && x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Region is a named rectangle with optional payload
type Region struct {
	ID   string
	Rect Rect
	Data interface{}
}

// HitMap holds the regions of the last render
type HitMap struct {
	mu      sync.RWMutex
	regions []Region
}

// NewHitMap creates an empty hit map
func NewHitMap() *HitMap {
	return &HitMap{}
}

// Add registers a region. Later regions sit on top of earlier ones.
func (h *HitMap) Add(id string, r Rect, data interface{}) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.regions = append(h.regions, Region{ID: id, Rect: r, Data: data})
}

// AddRect is Add with the rectangle spelled out
func (h *HitMap) AddRect(id string, x, y, w, hgt int, data interface{}) {
	h.Add(id, Rect{X: x, Y: y, W: w, H: hgt}, data)
}

// Clear drops every region
func (h *HitMap) Clear() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.regions = nil
}

// Regions returns a copy of the registered regions
func (h *HitMap) Regions() []Region {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return append([]Region(nil), h.regions...)
}

// Test returns the topmost region containing (x, y), or nil
func (h *HitMap) Test(x, y int) *Region {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for i := len(h.regions) - 1; i >= 0; i-- {
		if h.regions[i].Rect.Contains(x, y) {
			r := h.regions[i]
			return &r
		}
	}
	return nil
}

// ClickResult describes one click
type ClickResult struct {
	Region        *Region
	IsDoubleClick bool
}

// Handler tracks click timing on top of a hit map
type Handler struct {
	HitMap *HitMap

	now        func() time.Time
	lastClick  time.Time
	lastID     string
	lastX      int
	lastY      int
	dragging   bool
	dragRegion string
}

// NewHandler creates a handler with an empty hit map
func NewHandler() *Handler {
	return &Handler{HitMap: NewHitMap(), now: time.Now}
}

// SetClock replaces the time source
func (h *Handler) SetClock(now func() time.Time) {
	h.now = now
}

// HandleClick resolves a click. A second click on the same region (or the
// same cell when no region is hit) within the threshold is a double click;
// the click after a double click starts over.
func (h *Handler) HandleClick(x, y int) ClickResult {
	region := h.HitMap.Test(x, y)
	id := ""
	if region != nil {
		id = region.ID
	}

	now := h.now()
	same := id == h.lastID
	if id == "" {
		same = x == h.lastX && y == h.lastY
	}
	double := !h.lastClick.IsZero() && same && now.Sub(h.lastClick) <= DoubleClickThreshold

	if double {
		h.lastClick = time.Time{}
	} else {
		h.lastClick = now
	}
	h.lastID, h.lastX, h.lastY = id, x, y

	return ClickResult{Region: region, IsDoubleClick: double}
}

// StartDrag marks the start of a drag that began on region
func (h *Handler) StartDrag(region string) {
	h.dragging = true
	h.dragRegion = region
}

// EndDrag ends the current drag
func (h *Handler) EndDrag() {
	h.dragging = false
	h.dragRegion = ""
}

// IsDragging reports whether a drag is in progress
func (h *Handler) IsDragging() bool {
	return h.dragging
}

// DragRegion returns the region the current drag started on
func (h *Handler) DragRegion() string {
	return h.dragRegion
}

// Clear forgets regions and click history
func (h *Handler) Clear() {
	h.HitMap.Clear()
	h.lastClick = time.Time{}
	h.lastID = ""
	h.EndDrag()
}

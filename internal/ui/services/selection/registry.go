package selection

import (
	"sync"

	"filegrip/internal/geometry"
)

// Region is one item's last known on-screen rectangle
type Region struct {
	ID   string
	Rect geometry.Rect
}

// Registry maps item ids to rectangles. The presentation layer replaces it
// after every layout pass; gestures only read it.
type Registry struct {
	mu      sync.RWMutex
	regions []Region
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{}
}

// Replace swaps in the regions of a new layout pass
func (r *Registry) Replace(regions []Region) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.regions = append([]Region(nil), regions...)
}

// Add registers one more region on top of the existing ones
func (r *Registry) Add(id string, rect geometry.Rect) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.regions = append(r.regions, Region{ID: id, Rect: rect})
}

// Clear drops all regions
func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.regions = nil
}

// Regions returns a copy of all regions in registration order
func (r *Registry) Regions() []Region {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]Region(nil), r.regions...)
}

// Rect looks up the rectangle of an item
func (r *Registry) Rect(id string) (geometry.Rect, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, reg := range r.regions {
		if reg.ID == id {
			return reg.Rect, true
		}
	}
	return geometry.Rect{}, false
}

// Test returns the topmost region containing p, the one registered last
func (r *Registry) Test(p geometry.Point) (Region, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := len(r.regions) - 1; i >= 0; i-- {
		if r.regions[i].Rect.Contains(p) {
			return r.regions[i], true
		}
	}
	return Region{}, false
}

// Intersecting returns the ids of regions overlapping box, in registration order
func (r *Registry) Intersecting(box geometry.Rect) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var hits []string
	for _, reg := range r.regions {
		if box.Intersects(reg.Rect) {
			hits = append(hits, reg.ID)
		}
	}
	return hits
}

// CentersInside returns the ids of regions whose centre lies inside poly
func (r *Registry) CentersInside(poly []geometry.Point) []string {
	if len(poly) < 3 {
		return nil
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	var hits []string
	for _, reg := range r.regions {
		if geometry.PointInPolygon(reg.Rect.Center(), poly) {
			hits = append(hits, reg.ID)
		}
	}
	return hits
}

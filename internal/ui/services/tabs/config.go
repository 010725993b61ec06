package tabs

import "filegrip/internal/domain"

// SetViewMode changes how the active tab lays out items
func (s *Service) SetViewMode(mode domain.ViewMode) {
	s.updateActive(func(t *Tab) []interface{} {
		t.ViewMode = mode
		return s.viewChanged(t)
	})
}

// SetGroupMode changes the grouping strategy of the active tab
func (s *Service) SetGroupMode(mode domain.GroupMode) {
	s.updateActive(func(t *Tab) []interface{} {
		t.GroupMode = mode
		return s.viewChanged(t)
	})
}

// SetSortMode changes the sort attribute of the active tab
func (s *Service) SetSortMode(mode domain.SortMode) {
	s.updateActive(func(t *Tab) []interface{} {
		t.SortMode = mode
		return s.viewChanged(t)
	})
}

// SetSortOrder changes the sort direction of the active tab
func (s *Service) SetSortOrder(order domain.SortOrder) {
	s.updateActive(func(t *Tab) []interface{} {
		t.SortOrder = order
		return s.viewChanged(t)
	})
}

// UpdateScroll records the scroll offset of the active tab
func (s *Service) UpdateScroll(offset int) {
	s.updateActive(func(t *Tab) []interface{} {
		t.ScrollTop = offset
		return nil
	})
}

// SetRenderOrder records the on-screen order of item ids for the active tab
func (s *Service) SetRenderOrder(ids []string) {
	s.updateActive(func(t *Tab) []interface{} {
		t.RenderOrder = append([]string(nil), ids...)
		return nil
	})
}

// RenderOrder returns the active tab's on-screen order
func (s *Service) RenderOrder() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string(nil), s.active().RenderOrder...)
}

// Selection returns the active tab's selection
func (s *Service) Selection() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string(nil), s.active().Selection...)
}

// SetSelection replaces the active tab's selection
func (s *Service) SetSelection(ids []string) {
	s.updateActive(func(t *Tab) []interface{} {
		t.Selection = append([]string{}, ids...)
		return []interface{}{SelectionChangedEvent{TabID: t.ID, Selection: append([]string(nil), t.Selection...)}}
	})
}

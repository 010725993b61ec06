package query

import (
	"strings"

	"filegrip/internal/domain"
	"filegrip/internal/ui/logic"
	"filegrip/internal/ui/services/groups"
)

// Service answers lookups over the current presentation: what is at an
// index, where an id is, which items are visible
type Service struct {
	groups  []logic.Group
	order   []string
	items   map[string]domain.Item
	index   map[string]int
	groupOf map[string]string
}

// NewService creates a new query service
func NewService() *Service {
	return &Service{
		items:   make(map[string]domain.Item),
		index:   make(map[string]int),
		groupOf: make(map[string]string),
	}
}

// Update rebuilds the lookup tables from a presentation pass
func (s *Service) Update(p groups.Presentation) {
	s.groups = p.Groups
	s.order = append([]string(nil), p.Order...)
	s.items = make(map[string]domain.Item)
	s.index = make(map[string]int, len(p.Order))
	s.groupOf = make(map[string]string)

	for _, g := range p.Groups {
		for _, item := range g.Items {
			s.items[item.ID] = item
			s.groupOf[item.ID] = g.Label
		}
	}
	for i, id := range s.order {
		s.index[id] = i
	}
}

// Groups returns the groups of the current presentation, collapsed ones included
func (s *Service) Groups() []logic.Group {
	return s.groups
}

// Order returns the render order
func (s *Service) Order() []string {
	return append([]string(nil), s.order...)
}

// Len returns the number of laid out items
func (s *Service) Len() int {
	return len(s.order)
}

// MaxIndex returns the largest valid render index, or 0 when empty
func (s *Service) MaxIndex() int {
	if len(s.order) == 0 {
		return 0
	}
	return len(s.order) - 1
}

// IndexOf returns the render index of id, or -1 when it is not laid out
func (s *Service) IndexOf(id string) int {
	if i, ok := s.index[id]; ok {
		return i
	}
	return -1
}

// Item looks up an item by id, collapsed groups included
func (s *Service) Item(id string) (domain.Item, bool) {
	item, ok := s.items[id]
	return item, ok
}

// ItemAt returns the item at a render index
func (s *Service) ItemAt(index int) (domain.Item, bool) {
	if index < 0 || index >= len(s.order) {
		return domain.Item{}, false
	}
	return s.Item(s.order[index])
}

// IndexInfo returns the item and group at a render index
func (s *Service) IndexInfo(index int) *IndexInfo {
	item, ok := s.ItemAt(index)
	if !ok {
		return nil
	}
	return &IndexInfo{Index: index, Item: item, Group: s.groupOf[item.ID]}
}

// GroupOf returns the label of the group holding id
func (s *Service) GroupOf(id string) string {
	return s.groupOf[id]
}

// Items resolves ids to items, skipping unknown ones
func (s *Service) Items(ids []string) []domain.Item {
	out := make([]domain.Item, 0, len(ids))
	for _, id := range ids {
		if item, ok := s.items[id]; ok {
			out = append(out, item)
		}
	}
	return out
}

// Paths resolves ids to paths, skipping unknown ones
func (s *Service) Paths(ids []string) []string {
	items := s.Items(ids)
	paths := make([]string, len(items))
	for i, item := range items {
		paths[i] = item.Path
	}
	return paths
}

// Matching returns the render indices of items whose name contains text
func (s *Service) Matching(text string) []int {
	needle := strings.ToLower(text)
	var matches []int
	for i, id := range s.order {
		if strings.Contains(strings.ToLower(s.items[id].Name), needle) {
			matches = append(matches, i)
		}
	}
	return matches
}

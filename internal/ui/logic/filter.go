package logic

import (
	"strings"

	"filegrip/internal/domain"
)

// MatchesFilter reports whether an item's name contains the query, ignoring case.
// An empty query matches everything.
func MatchesFilter(item domain.Item, query string) bool {
	if query == "" {
		return true
	}
	return strings.Contains(strings.ToLower(item.Name), strings.ToLower(query))
}

// FilterItems keeps the items whose names match query, preserving order
func FilterItems(items []domain.Item, query string) []domain.Item {
	if query == "" {
		return items
	}
	out := make([]domain.Item, 0, len(items))
	for _, item := range items {
		if MatchesFilter(item, query) {
			out = append(out, item)
		}
	}
	return out
}

// FilterHidden drops dot-files unless showHidden is set
func FilterHidden(items []domain.Item, showHidden bool) []domain.Item {
	if showHidden {
		return items
	}
	out := make([]domain.Item, 0, len(items))
	for _, item := range items {
		if !strings.HasPrefix(item.Name, ".") {
			out = append(out, item)
		}
	}
	return out
}

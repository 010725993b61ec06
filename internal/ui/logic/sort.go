package logic

import (
	"sort"
	"strings"

	"filegrip/internal/domain"
)

// SortItems returns a sorted copy of items. Ties keep their input order;
// descending order reverses the ascending result instead of the comparator.
func SortItems(items []domain.Item, mode domain.SortMode, order domain.SortOrder) []domain.Item {
	sorted := make([]domain.Item, len(items))
	copy(sorted, items)

	less := lessFor(mode)
	if less != nil {
		sort.SliceStable(sorted, func(i, j int) bool {
			return less(sorted[i], sorted[j])
		})
	}

	if order == domain.OrderDesc {
		for i, j := 0, len(sorted)-1; i < j; i, j = i+1, j-1 {
			sorted[i], sorted[j] = sorted[j], sorted[i]
		}
	}
	return sorted
}

func lessFor(mode domain.SortMode) func(a, b domain.Item) bool {
	switch mode {
	case domain.SortName:
		return func(a, b domain.Item) bool { return NaturalCompare(a.Name, b.Name) < 0 }
	case domain.SortDate:
		return func(a, b domain.Item) bool { return a.ModifiedUnix() < b.ModifiedUnix() }
	case domain.SortSize:
		return func(a, b domain.Item) bool { return a.Size < b.Size }
	case domain.SortType:
		return func(a, b domain.Item) bool { return strings.Compare(a.Ext, b.Ext) < 0 }
	default:
		return nil
	}
}

// SortGroups reorders the items inside each group. Membership and group order are untouched.
func SortGroups(groups []Group, mode domain.SortMode, order domain.SortOrder) []Group {
	out := make([]Group, len(groups))
	for i, g := range groups {
		out[i] = Group{Label: g.Label, Items: SortItems(g.Items, mode, order)}
	}
	return out
}

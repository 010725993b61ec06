package domain

// ViewMode is how a tab lays out its items
type ViewMode string

const (
	ViewGrid    ViewMode = "grid"
	ViewList    ViewMode = "list"
	ViewMasonry ViewMode = "masonry"
)

// ViewModes in cycling order
var ViewModes = []ViewMode{ViewGrid, ViewList, ViewMasonry}

// GroupMode selects a grouping strategy
type GroupMode string

const (
	GroupNone GroupMode = "none"
	GroupType GroupMode = "type"
	GroupDate GroupMode = "date"
	GroupSize GroupMode = "size"
	GroupKind GroupMode = "kind"
	GroupExt  GroupMode = "ext"
)

// GroupModes in overlay order
var GroupModes = []GroupMode{GroupNone, GroupType, GroupDate, GroupSize, GroupKind, GroupExt}

// SortMode selects the attribute items are ordered by
type SortMode string

const (
	SortName SortMode = "name"
	SortDate SortMode = "date"
	SortSize SortMode = "size"
	SortType SortMode = "type"
)

// SortModes in overlay order
var SortModes = []SortMode{SortName, SortDate, SortSize, SortType}

// SortOrder is ascending or descending
type SortOrder string

const (
	OrderAsc  SortOrder = "asc"
	OrderDesc SortOrder = "desc"
)

// Toggle flips the order
func (o SortOrder) Toggle() SortOrder {
	if o == OrderDesc {
		return OrderAsc
	}
	return OrderDesc
}

func (v ViewMode) Valid() bool  { return contains(ViewModes, v) }
func (g GroupMode) Valid() bool { return contains(GroupModes, g) }
func (s SortMode) Valid() bool  { return contains(SortModes, s) }
func (o SortOrder) Valid() bool { return o == OrderAsc || o == OrderDesc }

// Next returns the view mode after v, wrapping around
func (v ViewMode) Next() ViewMode {
	for i, m := range ViewModes {
		if m == v {
			return ViewModes[(i+1)%len(ViewModes)]
		}
	}
	return ViewGrid
}

func contains[T comparable](list []T, v T) bool {
	for _, x := range list {
		if x == v {
			return true
		}
	}
	return false
}

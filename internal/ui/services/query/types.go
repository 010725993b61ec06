package query

import "filegrip/internal/domain"

// IndexInfo describes what sits at a render index
type IndexInfo struct {
	Index int
	Item  domain.Item
	Group string // label of the group holding the item
}

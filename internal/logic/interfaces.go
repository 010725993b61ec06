package logic

import "filegrip/internal/domain"

// ListingStore provides access to the most recent listing of each location
type ListingStore interface {
	GetListing(location string) ([]domain.Item, bool)
	GetAllLocations() []string
	PutListing(location string, items []domain.Item)
	RemoveListing(location string)
	Invalidate(location string)
	IsStale(location string) bool
}

// ItemIndex resolves item ids across every stored listing
type ItemIndex interface {
	GetItem(id string) (domain.Item, bool)
}

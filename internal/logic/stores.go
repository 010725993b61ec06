package logic

import (
	"path/filepath"
	"sort"
	"sync"

	"filegrip/internal/domain"
)

type listingEntry struct {
	items []domain.Item
	stale bool
}

// MemoryListingStore is an in-memory implementation of ListingStore.
// Tabs share it so switching back to a location shows the last listing
// immediately while a fresh one is requested.
type MemoryListingStore struct {
	mu       sync.RWMutex
	listings map[string]*listingEntry
	byID     map[string]domain.Item
}

// NewMemoryListingStore creates a new memory-based listing store
func NewMemoryListingStore() *MemoryListingStore {
	return &MemoryListingStore{
		listings: make(map[string]*listingEntry),
		byID:     make(map[string]domain.Item),
	}
}

func key(location string) string {
	if domain.IsVirtual(location) {
		return location
	}
	return filepath.Clean(location)
}

func (s *MemoryListingStore) GetListing(location string) ([]domain.Item, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entry, ok := s.listings[key(location)]
	if !ok {
		return nil, false
	}
	items := make([]domain.Item, len(entry.items))
	copy(items, entry.items)
	return items, true
}

func (s *MemoryListingStore) GetAllLocations() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]string, 0, len(s.listings))
	for k := range s.listings {
		result = append(result, k)
	}
	sort.Strings(result)
	return result
}

func (s *MemoryListingStore) PutListing(location string, items []domain.Item) {
	s.mu.Lock()
	defer s.mu.Unlock()

	k := key(location)
	if old, ok := s.listings[k]; ok {
		for _, item := range old.items {
			delete(s.byID, item.ID)
		}
	}
	stored := make([]domain.Item, len(items))
	copy(stored, items)
	s.listings[k] = &listingEntry{items: stored}
	for _, item := range stored {
		s.byID[item.ID] = item
	}
}

func (s *MemoryListingStore) RemoveListing(location string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	k := key(location)
	if old, ok := s.listings[k]; ok {
		for _, item := range old.items {
			delete(s.byID, item.ID)
		}
		delete(s.listings, k)
	}
}

// Invalidate marks a listing as out of date without dropping it
func (s *MemoryListingStore) Invalidate(location string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if entry, ok := s.listings[key(location)]; ok {
		entry.stale = true
	}
}

// IsStale reports whether a location needs relisting. Unknown locations are stale.
func (s *MemoryListingStore) IsStale(location string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entry, ok := s.listings[key(location)]
	return !ok || entry.stale
}

func (s *MemoryListingStore) GetItem(id string) (domain.Item, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	item, ok := s.byID[id]
	return item, ok
}

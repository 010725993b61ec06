package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventListingRequested  EventType = "ListingRequested"
	EventListingLoaded     EventType = "ListingLoaded"
	EventListingFailed     EventType = "ListingFailed"
	EventDirectoryChanged  EventType = "DirectoryChanged"
	EventWatchRequested    EventType = "WatchRequested"
	EventThumbnailResolved EventType = "ThumbnailResolved"
	EventSidebarLoaded     EventType = "SidebarLoaded"
	EventBackendReady      EventType = "BackendReady"
	EventBackendFailed     EventType = "BackendFailed"
	EventFileOpened        EventType = "FileOpened"
	EventError             EventType = "Error"
	EventConfigChanged     EventType = "ConfigChanged"
	EventFavoritesChanged  EventType = "FavoritesChanged"
	EventAppReady          EventType = "AppReady"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// ListingRequestedEvent asks the listing provider to list a location
type ListingRequestedEvent struct {
	Location string
}

func (e ListingRequestedEvent) Type() EventType { return EventListingRequested }

// ListingLoadedEvent carries the items of a location
type ListingLoadedEvent struct {
	Location string
	Items    []Item
}

func (e ListingLoadedEvent) Type() EventType { return EventListingLoaded }

// ListingFailedEvent is emitted when a listing could not be read.
// Consumers treat it as an empty listing.
type ListingFailedEvent struct {
	Location string
	Err      error
}

func (e ListingFailedEvent) Type() EventType { return EventListingFailed }

// DirectoryChangedEvent is emitted by the watcher when a watched directory changes
type DirectoryChangedEvent struct {
	Path string
}

func (e DirectoryChangedEvent) Type() EventType { return EventDirectoryChanged }

// WatchRequestedEvent replaces the set of watched directories
type WatchRequestedEvent struct {
	Paths []string
}

func (e WatchRequestedEvent) Type() EventType { return EventWatchRequested }

// ThumbnailResolvedEvent is emitted when a thumbnail lands in the client cache
type ThumbnailResolvedEvent struct {
	ID string
}

func (e ThumbnailResolvedEvent) Type() EventType { return EventThumbnailResolved }

// SidebarLoadedEvent carries the sidebar shortcuts
type SidebarLoadedEvent struct {
	Entries []SidebarEntry
}

func (e SidebarLoadedEvent) Type() EventType { return EventSidebarLoaded }

// BackendReadyEvent is emitted once the startup connectivity check passes
type BackendReadyEvent struct{}

func (e BackendReadyEvent) Type() EventType { return EventBackendReady }

// BackendFailedEvent is emitted when the backend never became reachable
type BackendFailedEvent struct {
	Message string
	Err     error
}

func (e BackendFailedEvent) Type() EventType { return EventBackendFailed }

// FileOpenedEvent is emitted after a file was handed to the platform opener
type FileOpenedEvent struct {
	Path string
	Err  error
}

func (e FileOpenedEvent) Type() EventType { return EventFileOpened }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

// ConfigChangedEvent is emitted when configuration needs to be saved
type ConfigChangedEvent struct {
	Favorites []string
}

func (e ConfigChangedEvent) Type() EventType { return EventConfigChanged }

// FavoritesChangedEvent is emitted when the favourites list changes
type FavoritesChangedEvent struct {
	Favorites []string
}

func (e FavoritesChangedEvent) Type() EventType { return EventFavoritesChanged }

// AppReadyEvent is emitted when the app is fully initialized and ready
type AppReadyEvent struct {
	HasExistingConfig bool
}

func (e AppReadyEvent) Type() EventType { return EventAppReady }

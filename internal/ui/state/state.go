package state

import (
	"filegrip/internal/domain"
)

// StatusLevel colours the status line
type StatusLevel int

const (
	StatusInfo StatusLevel = iota
	StatusWarning
	StatusError
)

// AppState contains the UI state that is not owned by a service
type AppState struct {
	// Backend
	BackendReady bool
	BackendError string // non-empty once startup failed for good

	// Sidebar
	Sidebar      []domain.SidebarEntry
	SidebarIndex int

	// Listings in flight, by location
	Loading map[string]bool

	// UI state
	ViewportHeight int  // lines available for the item area
	ShowHelp       bool // help pager is running
	ShowPreview    bool
	StatusMessage  string
	StatusLevel    StatusLevel

	// Paths waiting for the open confirmation
	PendingOpen []string
}

// NewAppState creates a new application state
func NewAppState() *AppState {
	return &AppState{
		Loading:        make(map[string]bool),
		ViewportHeight: 20,
	}
}

// SetStatus replaces the status line
func (s *AppState) SetStatus(level StatusLevel, message string) {
	s.StatusLevel = level
	s.StatusMessage = message
}

// ClearStatus empties the status line
func (s *AppState) ClearStatus() {
	s.StatusMessage = ""
	s.StatusLevel = StatusInfo
}

// SetSidebar replaces the sidebar entries and keeps the cursor in range
func (s *AppState) SetSidebar(entries []domain.SidebarEntry) {
	s.Sidebar = entries
	s.MoveSidebar(0)
}

// MoveSidebar moves the sidebar cursor, clamped to the entries
func (s *AppState) MoveSidebar(delta int) {
	s.SidebarIndex += delta
	if s.SidebarIndex >= len(s.Sidebar) {
		s.SidebarIndex = len(s.Sidebar) - 1
	}
	if s.SidebarIndex < 0 {
		s.SidebarIndex = 0
	}
}

// SidebarEntry returns the entry under the sidebar cursor
func (s *AppState) SidebarEntry() (domain.SidebarEntry, bool) {
	if s.SidebarIndex < 0 || s.SidebarIndex >= len(s.Sidebar) {
		return domain.SidebarEntry{}, false
	}
	return s.Sidebar[s.SidebarIndex], true
}

// SetLoading records whether a listing is in flight
func (s *AppState) SetLoading(location string, loading bool) {
	if loading {
		s.Loading[location] = true
		return
	}
	delete(s.Loading, location)
}

// IsLoading reports whether a listing for location is in flight
func (s *AppState) IsLoading(location string) bool {
	return s.Loading[location]
}

// Failed reports whether the UI is stuck on the startup error
func (s *AppState) Failed() bool {
	return s.BackendError != ""
}

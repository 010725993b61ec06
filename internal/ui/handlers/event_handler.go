package handlers

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"filegrip/internal/domain"
	"filegrip/internal/eventbus"
	"filegrip/internal/ui/coordinator"
	"filegrip/internal/ui/state"
)

// EventHandler handles domain events and updates state
type EventHandler struct {
	state *state.AppState
	coord *coordinator.Coordinator
	log   logrus.FieldLogger
}

// NewEventHandler creates a new event handler
func NewEventHandler(appState *state.AppState, coord *coordinator.Coordinator) *EventHandler {
	return &EventHandler{
		state: appState,
		coord: coord,
		log:   logrus.WithField("component", "ui-events"),
	}
}

// HandleEvent processes domain events and returns any necessary commands
func (h *EventHandler) HandleEvent(event eventbus.DomainEvent) tea.Cmd {
	switch e := event.(type) {
	case eventbus.BackendReadyEvent:
		h.state.BackendReady = true
		location := h.coord.Tabs.ActiveTab().Location
		h.state.SetLoading(location, true)
		h.coord.RequestListing(location)

	case eventbus.BackendFailedEvent:
		h.state.BackendReady = false
		h.state.BackendError = e.Message
		if h.state.BackendError == "" {
			h.state.BackendError = "Backend failed to start"
		}

	case eventbus.ListingLoadedEvent:
		h.state.SetLoading(e.Location, false)
		h.coord.ListingLoaded(e.Location, e.Items)

	case eventbus.ListingFailedEvent:
		// A failed listing shows as an empty one
		h.state.SetLoading(e.Location, false)
		if h.coord.ListingLoaded(e.Location, nil) {
			h.state.SetStatus(state.StatusWarning, fmt.Sprintf("Could not list %s", domain.Title(e.Location)))
		}

	case eventbus.DirectoryChangedEvent:
		h.coord.DirectoryChanged(e.Path)

	case eventbus.SidebarLoadedEvent:
		h.state.SetSidebar(e.Entries)

	case eventbus.FavoritesChangedEvent:
		if h.coord.Tabs.ActiveTab().Location == domain.FavoritesLocation {
			h.coord.Refresh()
		}

	case eventbus.FileOpenedEvent:
		if e.Err != nil {
			h.state.SetStatus(state.StatusWarning, fmt.Sprintf("Could not open %s", domain.NameOf(e.Path)))
		}

	case eventbus.ErrorEvent:
		h.state.SetStatus(state.StatusError, fmt.Sprintf("Error: %s", e.Message))

	case eventbus.ThumbnailResolvedEvent:
		// Nothing to update; the message itself triggers a redraw

	default:
		h.log.WithField("type", event.Type()).Debug("unhandled event")
	}

	return nil
}

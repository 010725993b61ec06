package ui

import (
	"filegrip/internal/eventbus"
)

// EventMsg wraps a domain event for the UI
type EventMsg struct {
	Event eventbus.DomainEvent
}

// glowMsg runs one lasso glow frame; frame is the gesture frame it was scheduled for
type glowMsg struct {
	frame uint64
}

// clearStatusMsg clears the status line unless a newer message replaced it
type clearStatusMsg struct {
	seq int
}

// quitMsg signals that the application should quit
type quitMsg struct{}

// pauseRenderingMsg signals to pause Bubble Tea rendering
type pauseRenderingMsg struct{}

// resumeRenderingMsg signals to resume Bubble Tea rendering
type resumeRenderingMsg struct{}

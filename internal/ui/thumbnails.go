package ui

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/atotto/clipboard"

	"filegrip/internal/domain"
	"filegrip/internal/eventbus"
	"filegrip/internal/thumbnails"
)

// observeThumbnails keeps one observer per thumbnail on screen: the cursor
// item when the preview shows, and visible masonry tiles. Observers for
// items that scrolled away are cancelled.
func (m *Model) observeThumbnails() {
	if m.thumbs == nil {
		return
	}

	wanted := make(map[string]bool)
	if m.state.ShowPreview && m.frame.HasPreview {
		if item, ok := m.coord.CursorItem(); ok && item.HasThumbnail {
			wanted[item.ID] = true
		}
	}
	if m.coord.Tabs.ActiveTab().ViewMode == domain.ViewMasonry {
		for _, s := range m.coord.Layout().Visible(m.coord.Navigator.ViewportOffset(), m.frame.Grid.H) {
			if s.Item.HasThumbnail {
				wanted[s.ID] = true
			}
		}
	}

	for id, cancel := range m.observers {
		_, cached := m.thumbs.Get(id)
		if !wanted[id] || cached {
			cancel()
			delete(m.observers, id)
		}
	}
	for id := range wanted {
		if _, ok := m.observers[id]; ok {
			continue
		}
		if _, cached := m.thumbs.Get(id); cached {
			continue
		}
		m.observers[id] = m.thumbs.Observe(m.ctx, id, m.thumbnailResolved)
	}
}

// thumbnailResolved runs on the cache's goroutine; it only wakes the UI up
func (m *Model) thumbnailResolved(img *thumbnails.Image) {
	if m.bus != nil && img != nil {
		m.bus.Publish(eventbus.ThumbnailResolvedEvent{ID: img.ID})
	}
}

// writeClipboard copies text to the system clipboard
func writeClipboard(text string) error {
	return clipboard.WriteAll(text)
}

// expandLocation turns typed text into a location: "~" is the home
// directory, relative paths hang off base and virtual locations pass as is
func expandLocation(text, base, home string) string {
	text = strings.TrimSpace(text)
	switch {
	case text == "":
		return ""
	case domain.IsVirtual(text):
		return text
	case text == "~":
		return home
	case strings.HasPrefix(text, "~/"):
		return filepath.Join(home, text[2:])
	case filepath.IsAbs(text):
		return filepath.Clean(text)
	}
	if domain.IsVirtual(base) {
		base = home
	}
	return filepath.Join(domain.ResolvePath(base), text)
}

func userHome() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return string(filepath.Separator)
	}
	return home
}

package domain

import (
	"path"
	"strings"
	"time"
)

// Location schemes understood by the browser
const (
	VirtualScheme = "virtual://"
	DriveScheme   = "drive://"

	HomeLocation      = "virtual://home"
	FavoritesLocation = "virtual://favorites"
	RecentLocation    = "virtual://recent"
	TrashLocation     = "virtual://trash"
)

// Item is a file-system entry as seen by the view layer.
// Items are snapshots; nothing in the browser mutates them after listing.
type Item struct {
	ID           string
	Path         string
	Name         string
	Ext          string // lowercase, without the dot
	IsDir        bool
	Size         int64
	Modified     *time.Time
	HasThumbnail bool
}

// ModifiedUnix returns the modification time in milliseconds, 0 when unknown
func (i Item) ModifiedUnix() int64 {
	if i.Modified == nil {
		return 0
	}
	return i.Modified.UnixMilli()
}

// SidebarKind distinguishes sidebar shortcuts
type SidebarKind string

const (
	SidebarFolder  SidebarKind = "folder"
	SidebarDrive   SidebarKind = "drive"
	SidebarVirtual SidebarKind = "virtual"
)

// SidebarEntry is a navigable shortcut shown in the sidebar
type SidebarEntry struct {
	Label  string
	Path   string
	Kind   SidebarKind
	Icon   string
	Detail string // free space for drives
}

// IsVirtual reports whether the location has no backing directory
func IsVirtual(location string) bool {
	return strings.HasPrefix(location, VirtualScheme)
}

// ResolvePath maps a location to a filesystem path. Virtual locations resolve to "".
func ResolvePath(location string) string {
	if IsVirtual(location) {
		return ""
	}
	if strings.HasPrefix(location, DriveScheme) {
		return strings.TrimPrefix(location, DriveScheme)
	}
	return location
}

// Title is the tab label for a location
func Title(location string) string {
	s := strings.TrimPrefix(location, VirtualScheme)
	s = strings.TrimPrefix(s, DriveScheme)
	s = strings.ReplaceAll(s, "\\", "/")
	s = strings.TrimRight(s, "/")
	if i := strings.LastIndex(s, "/"); i >= 0 {
		s = s[i+1:]
	}
	if s == "" {
		return "Tab"
	}
	return s
}

// NameOf returns the last segment of a path
func NameOf(p string) string {
	p = strings.TrimRight(strings.ReplaceAll(p, "\\", "/"), "/")
	if p == "" {
		return ""
	}
	return path.Base(p)
}

// ExtOf returns the lowercase extension of a name. A leading dot is not an extension.
func ExtOf(name string) string {
	dot := strings.LastIndex(name, ".")
	if dot <= 0 {
		return ""
	}
	return strings.ToLower(name[dot+1:])
}

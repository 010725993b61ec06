// Package sidebar supplies the navigable shortcuts shown next to the item
// view: virtual places, home folders, mounted drives and favourites.
package sidebar

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/shirou/gopsutil/v3/disk"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"filegrip/internal/domain"
	"filegrip/internal/eventbus"
	"filegrip/internal/listing"
)

// HomeFolders are the well-known folders listed when they exist
var HomeFolders = []string{"Desktop", "Documents", "Downloads", "Pictures", "Music", "Videos"}

// Virtual places, always present
var VirtualEntries = []domain.SidebarEntry{
	{Label: "Home", Path: domain.HomeLocation, Kind: domain.SidebarVirtual, Icon: "⌂"},
	{Label: "Favorites", Path: domain.FavoritesLocation, Kind: domain.SidebarVirtual, Icon: "★"},
	{Label: "Recent", Path: domain.RecentLocation, Kind: domain.SidebarVirtual, Icon: "◷"},
	{Label: "Trash", Path: domain.TrashLocation, Kind: domain.SidebarVirtual, Icon: "✗"},
}

var pseudoFS = map[string]bool{
	"proc": true, "sysfs": true, "tmpfs": true, "devtmpfs": true, "devpts": true,
	"cgroup": true, "cgroup2": true, "overlay": true, "squashfs": true, "mqueue": true,
	"autofs": true, "securityfs": true, "debugfs": true, "tracefs": true, "pstore": true,
	"bpf": true, "configfs": true, "fusectl": true, "hugetlbfs": true, "binfmt_misc": true,
	"nsfs": true, "ramfs": true, "efivarfs": true,
}

// Provider builds sidebar entries
type Provider struct {
	home       string
	favorites  Favorites
	partitions func(ctx context.Context) ([]disk.PartitionStat, error)
	usage      func(ctx context.Context, path string) (*disk.UsageStat, error)
	log        logrus.FieldLogger
}

// Option customises a Provider
type Option func(*Provider)

// WithPartitions replaces the mounted partition source
func WithPartitions(fn func(ctx context.Context) ([]disk.PartitionStat, error)) Option {
	return func(p *Provider) { p.partitions = fn }
}

// WithUsage replaces the disk usage source
func WithUsage(fn func(ctx context.Context, path string) (*disk.UsageStat, error)) Option {
	return func(p *Provider) { p.usage = fn }
}

// NewProvider creates a provider rooted at the user's home directory
func NewProvider(home string, favorites Favorites, opts ...Option) *Provider {
	p := &Provider{
		home:      home,
		favorites: favorites,
		partitions: func(ctx context.Context) ([]disk.PartitionStat, error) {
			return disk.PartitionsWithContext(ctx, false)
		},
		usage: disk.UsageWithContext,
		log:   logrus.WithField("component", "sidebar"),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Entries returns virtual places, existing home folders, drives and
// favourites, in that order
func (p *Provider) Entries(ctx context.Context) []domain.SidebarEntry {
	entries := append([]domain.SidebarEntry(nil), VirtualEntries...)
	entries = append(entries, p.Folders()...)
	entries = append(entries, p.Drives(ctx)...)
	entries = append(entries, p.Favorites()...)
	return entries
}

// Folders returns the home folders that exist
func (p *Provider) Folders() []domain.SidebarEntry {
	if p.home == "" {
		return nil
	}
	var out []domain.SidebarEntry
	for _, name := range HomeFolders {
		path := filepath.Join(p.home, name)
		if info, err := os.Stat(path); err == nil && info.IsDir() {
			out = append(out, domain.SidebarEntry{Label: name, Path: path, Kind: domain.SidebarFolder, Icon: "▸"})
		}
	}
	return out
}

// Drives returns real mounted filesystems with their free space. Usage is
// probed in parallel; a drive whose usage cannot be read is still listed.
func (p *Provider) Drives(ctx context.Context) []domain.SidebarEntry {
	parts, err := p.partitions(ctx)
	if err != nil {
		p.log.WithError(err).Warn("failed to list partitions")
		return nil
	}

	seen := make(map[string]bool)
	var mounts []string
	for _, part := range parts {
		if pseudoFS[part.Fstype] || seen[part.Mountpoint] || part.Mountpoint == "" {
			continue
		}
		if strings.HasPrefix(part.Mountpoint, "/snap/") || strings.HasPrefix(part.Mountpoint, "/boot") {
			continue
		}
		seen[part.Mountpoint] = true
		mounts = append(mounts, part.Mountpoint)
	}
	sort.Strings(mounts)

	entries := make([]domain.SidebarEntry, len(mounts))
	g, gctx := errgroup.WithContext(ctx)
	for i, mount := range mounts {
		i, mount := i, mount
		entries[i] = domain.SidebarEntry{
			Label: driveLabel(mount),
			Path:  domain.DriveScheme + mount,
			Kind:  domain.SidebarDrive,
			Icon:  "◼",
		}
		g.Go(func() error {
			usage, err := p.usage(gctx, mount)
			if err != nil {
				p.log.WithError(err).WithField("mount", mount).Debug("disk usage unavailable")
				return nil
			}
			entries[i].Detail = humanize.Bytes(usage.Free) + " free"
			return nil
		})
	}
	_ = g.Wait()
	return entries
}

func driveLabel(mount string) string {
	if mount == "/" {
		return "Root"
	}
	if base := filepath.Base(mount); base != "." && base != string(filepath.Separator) {
		return base
	}
	return mount
}

// Favorites returns the favourite directories as entries
func (p *Provider) Favorites() []domain.SidebarEntry {
	if p.favorites == nil {
		return nil
	}
	var out []domain.SidebarEntry
	for _, path := range p.favorites.List() {
		out = append(out, domain.SidebarEntry{Label: domain.NameOf(path), Path: path, Kind: domain.SidebarFolder, Icon: "★"})
	}
	return out
}

// Virtual lists the items of virtual://home and virtual://favorites. Other
// virtual places have no source.
func (p *Provider) Virtual(location string) ([]domain.Item, bool) {
	var entries []domain.SidebarEntry
	switch location {
	case domain.HomeLocation:
		entries = append(p.Folders(), p.Drives(context.Background())...)
	case domain.FavoritesLocation:
		entries = p.Favorites()
	default:
		return nil, false
	}

	items := make([]domain.Item, 0, len(entries))
	for _, e := range entries {
		path := domain.ResolvePath(e.Path)
		item := domain.Item{ID: listing.ItemID(path), Path: path, Name: e.Label, IsDir: true}
		if info, err := os.Stat(path); err == nil {
			mod := info.ModTime()
			item.Modified = &mod
		}
		items = append(items, item)
	}
	return items, true
}

// Publish loads the entries and announces them on the bus
func (p *Provider) Publish(ctx context.Context, bus eventbus.EventBus) {
	bus.Publish(eventbus.SidebarLoadedEvent{Entries: p.Entries(ctx)})
}

// Attach republishes the entries whenever the favourites change
func (p *Provider) Attach(bus eventbus.EventBus) func() {
	return bus.Subscribe(eventbus.EventFavoritesChanged, func(eventbus.DomainEvent) {
		p.Publish(context.Background(), bus)
	})
}

package logic

import (
	"math"
	"time"

	"filegrip/internal/domain"
)

// Group is a labelled run of items produced by a grouping pass
type Group struct {
	Label string
	Items []domain.Item
}

const (
	kib = 1024
	mib = 1024 * kib
	gib = 1024 * mib
)

// Fixed bucket labels
const (
	LabelFolders   = "Folders"
	LabelFiles     = "Files"
	LabelFolder    = "Folder"
	LabelImages    = "Images"
	LabelVideos    = "Videos"
	LabelAudio     = "Audio"
	LabelDocuments = "Documents"
	LabelOther     = "Other"
	LabelUnknown   = "Unknown"
)

var typeBuckets = []struct {
	label string
	exts  map[string]bool
}{
	{LabelImages, set("png", "jpg", "jpeg", "webp", "gif")},
	{LabelVideos, set("mp4", "mov", "mkv", "avi")},
	{LabelAudio, set("mp3", "wav", "flac")},
	{LabelDocuments, set("pdf", "doc", "docx", "txt")},
}

func set(values ...string) map[string]bool {
	m := make(map[string]bool, len(values))
	for _, v := range values {
		m[v] = true
	}
	return m
}

// orderedBuckets collects items under labels in first-encounter order
type orderedBuckets struct {
	order []string
	items map[string][]domain.Item
}

func newBuckets() *orderedBuckets {
	return &orderedBuckets{items: make(map[string][]domain.Item)}
}

func (b *orderedBuckets) add(label string, item domain.Item) {
	if _, ok := b.items[label]; !ok {
		b.order = append(b.order, label)
	}
	b.items[label] = append(b.items[label], item)
}

func (b *orderedBuckets) groups() []Group {
	out := make([]Group, 0, len(b.order))
	for _, label := range b.order {
		out = append(out, Group{Label: label, Items: b.items[label]})
	}
	return out
}

// GroupItems partitions items into labelled groups. now anchors the date buckets.
// Every input item lands in exactly one group.
func GroupItems(items []domain.Item, mode domain.GroupMode, now time.Time) []Group {
	switch mode {
	case domain.GroupKind:
		return groupByKind(items)
	case domain.GroupType:
		return groupByType(items)
	case domain.GroupSize:
		return groupBySize(items)
	case domain.GroupDate:
		return groupByDate(items, now)
	case domain.GroupExt:
		return groupByExt(items)
	default:
		return []Group{{Label: "", Items: items}}
	}
}

func groupByKind(items []domain.Item) []Group {
	var folders, files []domain.Item
	for _, item := range items {
		if item.IsDir {
			folders = append(folders, item)
		} else {
			files = append(files, item)
		}
	}

	var out []Group
	if len(folders) > 0 {
		out = append(out, Group{Label: LabelFolders, Items: folders})
	}
	if len(files) > 0 {
		out = append(out, Group{Label: LabelFiles, Items: files})
	}
	return out
}

// TypeLabel returns the type bucket an item belongs to
func TypeLabel(item domain.Item) string {
	if item.IsDir {
		return LabelFolders
	}
	for _, b := range typeBuckets {
		if b.exts[item.Ext] {
			return b.label
		}
	}
	return LabelOther
}

func groupByType(items []domain.Item) []Group {
	buckets := newBuckets()
	for _, item := range items {
		buckets.add(TypeLabel(item), item)
	}

	fixed := []string{LabelFolders, LabelImages, LabelVideos, LabelAudio, LabelDocuments, LabelOther}
	var out []Group
	for _, label := range fixed {
		if items := buckets.items[label]; len(items) > 0 {
			out = append(out, Group{Label: label, Items: items})
		}
	}
	return out
}

// SizeLabel returns the size bucket for a file of the given byte count
func SizeLabel(size int64) string {
	switch {
	case size < 100*kib:
		return "Tiny"
	case size < mib:
		return "Small"
	case size < 100*mib:
		return "Medium"
	case size < gib:
		return "Large"
	default:
		return "Huge"
	}
}

func groupBySize(items []domain.Item) []Group {
	buckets := newBuckets()
	var folders []domain.Item
	for _, item := range items {
		if item.IsDir {
			folders = append(folders, item)
			continue
		}
		buckets.add(SizeLabel(item.Size), item)
	}

	out := buckets.groups()
	if len(folders) > 0 {
		out = append(out, Group{Label: LabelFolder, Items: folders})
	}
	return out
}

// DateLabel returns the recency bucket for a modification time relative to now.
// A missing time or the Unix epoch is Unknown. Days are floored, so a time in
// the future counts as negative days and falls into This week.
func DateLabel(modified *time.Time, now time.Time) string {
	if modified == nil || modified.IsZero() || modified.Unix() == 0 {
		return LabelUnknown
	}

	days := int(math.Floor(now.Sub(*modified).Hours() / 24))
	switch {
	case days == 0:
		return "Today"
	case days == 1:
		return "Yesterday"
	case days < 7:
		return "This week"
	case days < 30:
		return "This month"
	case days < 365:
		return "This year"
	default:
		return "Older"
	}
}

// groupByDate emits buckets in first-encounter order, not chronological order
func groupByDate(items []domain.Item, now time.Time) []Group {
	buckets := newBuckets()
	for _, item := range items {
		buckets.add(DateLabel(item.Modified, now), item)
	}
	return buckets.groups()
}

func groupByExt(items []domain.Item) []Group {
	buckets := newBuckets()
	var folders []domain.Item
	for _, item := range items {
		if item.IsDir {
			folders = append(folders, item)
			continue
		}
		key := item.Ext
		if key == "" {
			key = LabelOther
		}
		buckets.add("."+key, item)
	}

	out := buckets.groups()
	if len(folders) > 0 {
		out = append(out, Group{Label: LabelFolder, Items: folders})
	}
	return out
}

// Flatten concatenates the items of all groups in order
func Flatten(groups []Group) []domain.Item {
	var n int
	for _, g := range groups {
		n += len(g.Items)
	}
	out := make([]domain.Item, 0, n)
	for _, g := range groups {
		out = append(out, g.Items...)
	}
	return out
}

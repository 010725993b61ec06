package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"filegrip/internal/domain"
	"filegrip/internal/geometry"
	"filegrip/internal/ui/logic"
)

func items(ids ...string) []domain.Item {
	out := make([]domain.Item, len(ids))
	for i, id := range ids {
		out[i] = domain.Item{ID: id, Name: id}
	}
	return out
}

func TestColumns(t *testing.T) {
	assert.Equal(t, 1, Columns(10))
	assert.Equal(t, 1, Columns(TileWidth))
	assert.Equal(t, 2, Columns(2*TileWidth+Gap))
	assert.Equal(t, 4, Columns(80))
}

func TestGridWrapsRows(t *testing.T) {
	groups := []logic.Group{{Items: items("a", "b", "c")}}
	l := Compute(groups, nil, domain.ViewGrid, 2*TileWidth+Gap)

	require.Len(t, l.Slots, 3)
	assert.Equal(t, []string{"a", "b", "c"}, l.Order())
	c := l.Slots[2]
	assert.Equal(t, 1, c.Row)
	assert.Equal(t, 0, c.Col)
	assert.Equal(t, TileHeight+Gap, c.Y)
	assert.Equal(t, 2*(TileHeight+Gap), l.Height)
}

func TestHeadersAndCollapsedGroups(t *testing.T) {
	groups := []logic.Group{
		{Label: "Folders", Items: items("d")},
		{Label: "Files", Items: items("a", "b")},
		{Label: "Other", Items: items("z")},
	}
	collapsed := func(label string) bool { return label == "Files" }
	l := Compute(groups, collapsed, domain.ViewList, 40)

	require.Len(t, l.Headers, 3)
	assert.True(t, l.Headers[1].Collapsed)
	assert.Equal(t, 2, l.Headers[1].Count)
	assert.Equal(t, []string{"d", "z"}, l.Order())

	// Folders header, d, Files header, Other header, z
	assert.Equal(t, 0, l.Headers[0].Y)
	assert.Equal(t, 1, l.Slots[0].Y)
	assert.Equal(t, 2, l.Headers[1].Y)
	assert.Equal(t, 3, l.Headers[2].Y)
	assert.Equal(t, 4, l.Slots[1].Y)
	assert.Equal(t, 1, l.Slots[1].Index)
	assert.Equal(t, 1, l.Slots[1].Row, "rows continue across groups")

	h, ok := l.HeaderAt(2)
	assert.True(t, ok)
	assert.Equal(t, "Files", h.Label)
}

func TestMasonryUsesShortestColumn(t *testing.T) {
	list := items("a", "b", "c")
	list[0].HasThumbnail = true
	l := Compute([]logic.Group{{Items: list}}, nil, domain.ViewMasonry, 2*TileWidth+Gap)

	require.Len(t, l.Slots, 3)
	assert.Equal(t, TileHeight+TallTileExtra, l.Slots[0].H)
	// b sits next to a, c goes under b because column 1 is shorter
	assert.Equal(t, 1, l.Slots[1].Col)
	assert.Equal(t, 1, l.Slots[2].Col)
	assert.Equal(t, TileHeight+Gap, l.Slots[2].Y)
	// b and c stacked outgrow the tall tile
	assert.Equal(t, 2*(TileHeight+Gap), l.Height)
}

func TestCellsMatchSlots(t *testing.T) {
	l := Compute([]logic.Group{{Items: items("a", "b")}}, nil, domain.ViewList, 30)
	cells := l.Cells()
	require.Len(t, cells, 2)
	assert.Equal(t, logic.Cell{Row: 1, Col: 0, Top: 1, Bottom: 2}, cells[1])
}

func TestRegionsArePixelRectsOfVisibleSlots(t *testing.T) {
	l := Compute([]logic.Group{{Items: items("a", "b", "c")}}, nil, domain.ViewList, 30)

	regions := l.Regions(1, 1, 2, 3)
	require.Len(t, regions, 1)
	assert.Equal(t, "b", regions[0].ID)
	assert.Equal(t, geometry.Rect{X: 16, Y: 48, W: 240, H: 16}, regions[0].Rect)
}

func TestPixelConversionRoundTrips(t *testing.T) {
	p := ToPixels(3, 5)
	assert.Equal(t, geometry.Point{X: 28, Y: 88}, p)
	x, y := ToCell(p)
	assert.Equal(t, 3, x)
	assert.Equal(t, 5, y)
}

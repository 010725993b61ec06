package query

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"filegrip/internal/domain"
	"filegrip/internal/ui/logic"
	"filegrip/internal/ui/services/groups"
)

func presentation() groups.Presentation {
	return groups.Presentation{
		Groups: []logic.Group{
			{Label: "Folders", Items: []domain.Item{{ID: "d", Name: "src", Path: "/p/src", IsDir: true}}},
			{Label: "Files", Items: []domain.Item{
				{ID: "a", Name: "main.go", Path: "/p/main.go"},
				{ID: "b", Name: "Makefile", Path: "/p/Makefile"},
			}},
		},
		Order: []string{"d", "a", "b"},
	}
}

func TestLookups(t *testing.T) {
	s := NewService()
	s.Update(presentation())

	assert.Equal(t, 3, s.Len())
	assert.Equal(t, 2, s.MaxIndex())
	assert.Equal(t, 1, s.IndexOf("a"))
	assert.Equal(t, -1, s.IndexOf("missing"))

	item, ok := s.ItemAt(2)
	assert.True(t, ok)
	assert.Equal(t, "Makefile", item.Name)

	_, ok = s.ItemAt(3)
	assert.False(t, ok)

	info := s.IndexInfo(0)
	if assert.NotNil(t, info) {
		assert.Equal(t, "Folders", info.Group)
	}
	assert.Nil(t, s.IndexInfo(-1))
}

func TestCollapsedItemsAreKnownButNotIndexed(t *testing.T) {
	p := presentation()
	p.Order = []string{"d"}

	s := NewService()
	s.Update(p)

	_, ok := s.Item("a")
	assert.True(t, ok)
	assert.Equal(t, -1, s.IndexOf("a"))
	assert.Equal(t, "Files", s.GroupOf("a"))
}

func TestPathsSkipUnknown(t *testing.T) {
	s := NewService()
	s.Update(presentation())
	assert.Equal(t, []string{"/p/main.go", "/p/src"}, s.Paths([]string{"a", "zzz", "d"}))
}

func TestMatching(t *testing.T) {
	s := NewService()
	s.Update(presentation())
	assert.Equal(t, []int{1, 2}, s.Matching("MA"))
	assert.Nil(t, s.Matching("nothing"))
}

func TestEmpty(t *testing.T) {
	s := NewService()
	assert.Equal(t, 0, s.MaxIndex())
	assert.Empty(t, s.Order())
}

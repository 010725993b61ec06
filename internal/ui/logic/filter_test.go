package logic

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"filegrip/internal/domain"
)

func TestFilterItems(t *testing.T) {
	items := []domain.Item{file("Report.pdf", 0), file("photo.jpg", 0), file("report-old.pdf", 0)}
	assert.Equal(t, []string{"Report.pdf", "report-old.pdf"}, ids(FilterItems(items, "REPORT")))
	assert.Len(t, FilterItems(items, ""), 3)
	assert.Empty(t, FilterItems(items, "zzz"))
}

func TestFilterHidden(t *testing.T) {
	items := []domain.Item{file(".env", 0), file("main.go", 0), dir(".git")}
	assert.Equal(t, []string{"main.go"}, ids(FilterHidden(items, false)))
	assert.Len(t, FilterHidden(items, true), 3)
}

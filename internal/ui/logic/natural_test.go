package logic

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNaturalCompareOrdersNumbersByValue(t *testing.T) {
	names := []string{"file2", "file10", "file1"}
	sort.Slice(names, func(i, j int) bool { return NaturalCompare(names[i], names[j]) < 0 })
	assert.Equal(t, []string{"file1", "file2", "file10"}, names)
}

func TestNaturalCompare(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"a", "a", 0},
		{"abc", "ABC", 0},
		{"apple", "Banana", -1},
		{"Banana", "apple", 1},
		{"img9.png", "img10.png", -1},
		{"img010", "img10", 0},
		{"file", "file1", -1},
		{"file1", "file", 1},
		{"2", "10", -1},
		{"x99999999999999999999999", "x100000000000000000000000", -1},
		{"1abc", "abc", -1},
		{"", "a", -1},
		{"", "", 0},
	}
	for _, tt := range tests {
		t.Run(tt.a+"_vs_"+tt.b, func(t *testing.T) {
			got := NaturalCompare(tt.a, tt.b)
			switch {
			case tt.want < 0:
				assert.Negative(t, got)
			case tt.want > 0:
				assert.Positive(t, got)
			default:
				assert.Zero(t, got)
			}
		})
	}
}

func TestSplitRuns(t *testing.T) {
	assert.Equal(t, []run{
		{text: "track", numeric: false},
		{text: "07", numeric: true},
		{text: "-mix", numeric: false},
	}, splitRuns("track07-mix"))
	assert.Nil(t, splitRuns(""))
}

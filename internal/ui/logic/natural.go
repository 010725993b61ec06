package logic

import (
	"strings"
	"sync"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// collators are not safe for concurrent use, so each comparison borrows one
var collators = sync.Pool{
	New: func() any {
		return collate.New(language.Und, collate.IgnoreCase)
	},
}

type run struct {
	text    string
	numeric bool
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// splitRuns breaks s into alternating runs of digits and non-digits
func splitRuns(s string) []run {
	var runs []run
	start, digits := 0, false
	for i, r := range s {
		d := isDigit(r)
		if i == 0 {
			digits = d
			continue
		}
		if d != digits {
			runs = append(runs, run{text: s[start:i], numeric: digits})
			start, digits = i, d
		}
	}
	if start < len(s) {
		runs = append(runs, run{text: s[start:], numeric: digits})
	}
	return runs
}

// compareNumeric compares two digit strings by value without parsing,
// so arbitrarily long runs cannot overflow
func compareNumeric(a, b string) int {
	a = strings.TrimLeft(a, "0")
	b = strings.TrimLeft(b, "0")
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	return strings.Compare(a, b)
}

// NaturalCompare orders names so that embedded numbers compare by value:
// "file2" sorts before "file10". Text runs compare case-insensitively.
// When one name runs out of runs first it sorts first.
func NaturalCompare(a, b string) int {
	ar, br := splitRuns(a), splitRuns(b)

	c := collators.Get().(*collate.Collator)
	defer collators.Put(c)

	for i := 0; i < len(ar) && i < len(br); i++ {
		x, y := ar[i], br[i]
		var cmp int
		switch {
		case x.numeric && y.numeric:
			cmp = compareNumeric(x.text, y.text)
		case x.numeric || y.numeric:
			cmp = strings.Compare(normaliseRun(x), normaliseRun(y))
		default:
			cmp = c.CompareString(x.text, y.text)
			if cmp == 0 {
				cmp = strings.Compare(strings.ToLower(x.text), strings.ToLower(y.text))
			}
		}
		if cmp != 0 {
			return cmp
		}
	}

	switch {
	case len(ar) < len(br):
		return -1
	case len(ar) > len(br):
		return 1
	}
	return 0
}

func normaliseRun(r run) string {
	if !r.numeric {
		return strings.ToLower(r.text)
	}
	if t := strings.TrimLeft(r.text, "0"); t != "" {
		return t
	}
	return "0"
}

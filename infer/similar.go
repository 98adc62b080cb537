package infer

import (
	"unicode/utf8"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// Similarity returns an edit-distance ratio in [0, 1] between two strings:
// 1 minus the Levenshtein distance over the longer length. The exact
// algorithm is a replaceable strategy; only the fixed threshold it is
// compared against is contractual.
func Similarity(a, b string) float64 {
	if a == b {
		return 1
	}

	longer := utf8.RuneCountInString(a)
	if n := utf8.RuneCountInString(b); n > longer {
		longer = n
	}
	if longer == 0 {
		return 1
	}

	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(a, b, false)
	distance := dmp.DiffLevenshtein(diffs)

	return 1 - float64(distance)/float64(longer)
}

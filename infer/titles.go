package infer

import (
	"regexp"
	"strings"
)

// stoplistRes match normalized titles that are navigation chrome rather than
// documentation topics. Matching candidates are discarded entirely, never
// merged.
var stoplistRes = []*regexp.Regexp{
	regexp.MustCompile(`^(home|menu|search|login|sign|account|profile|settings|help|support|contact|about|privacy|terms|cookie)`),
	regexp.MustCompile(`^(skip|jump|back|next|previous|top|bottom)`),
	regexp.MustCompile(`^(page \d+|page\d+|\d+ of \d+)$`),
}

// NormalizeTitle lower-cases, trims, and collapses internal whitespace so
// trivially different spellings of a heading compare equal.
func NormalizeTitle(title string) string {
	return strings.Join(strings.Fields(strings.ToLower(title)), " ")
}

// ValidTitle reports whether a title can name a module or submodule.
// Too-short titles and navigation chrome are rejected.
func ValidTitle(title string) bool {
	normalized := NormalizeTitle(title)
	if len(normalized) < 3 {
		return false
	}
	for _, re := range stoplistRes {
		if re.MatchString(normalized) {
			return false
		}
	}
	return true
}

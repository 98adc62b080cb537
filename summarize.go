package docatlas

import (
	"regexp"
	"strings"
)

// sentenceEndRe locates sentence boundaries: terminal punctuation followed
// by whitespace.
var sentenceEndRe = regexp.MustCompile(`[.!?]\s+`)

// summarizeCharFallback caps the character fallback when no full sentences
// are available.
const summarizeCharFallback = 200

// minSentenceWords filters out fragments too short to be real sentences.
const minSentenceWords = 3

// Summarize extracts the leading sentences of text, up to maxSentences.
// Fragments shorter than three words are not counted as sentences. When no
// usable sentence exists, the first 200 characters are returned with an
// ellipsis. Empty input yields an empty string; callers that must never
// produce an empty description fall back to TitleDescription.
func Summarize(text string, maxSentences int) string {
	text = strings.TrimSpace(text)
	if text == "" || maxSentences <= 0 {
		return ""
	}

	var sentences []string
	start := 0
	for _, loc := range sentenceEndRe.FindAllStringIndex(text, -1) {
		sentence := strings.TrimSpace(text[start : loc[0]+1])
		start = loc[1]
		if len(strings.Fields(sentence)) >= minSentenceWords {
			sentences = append(sentences, sentence)
		}
		if len(sentences) == maxSentences {
			break
		}
	}
	if len(sentences) < maxSentences {
		if tail := strings.TrimSpace(text[start:]); len(strings.Fields(tail)) >= minSentenceWords {
			sentences = append(sentences, tail)
		}
	}

	if len(sentences) > 0 {
		return strings.Join(sentences, " ")
	}

	if len(text) > summarizeCharFallback {
		return strings.TrimSpace(text[:summarizeCharFallback]) + "..."
	}
	return text
}

// TitleDescription synthesizes a description from a title alone, used when a
// node has no body text to summarize. Never returns an empty string for a
// non-empty title.
func TitleDescription(title string, isModule bool) string {
	title = strings.TrimSpace(title)
	if isModule {
		return "Module for " + title + "."
	}
	return "Functionality related to " + title + "."
}

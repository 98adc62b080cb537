// Package goquery provides CSS-selector based implementations of
// docatlas.Cleaner and docatlas.LinkExtractor.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/docatlas/docatlas"
	"golang.org/x/net/html"
)

// noiseSelector matches page regions that are never content. Removal happens
// before block extraction so nav link text is never mistaken for content.
const noiseSelector = "script, style, noscript, template, iframe, svg, nav, header, footer, aside, form"

// hiddenSelector matches elements hidden from rendering.
const hiddenSelector = `[hidden], [aria-hidden="true"]`

// blockSelector matches the elements that become text blocks, visited in
// document order.
const blockSelector = "h1, h2, h3, h4, p, li"

// Compile-time interface verification.
var _ docatlas.Cleaner = (*Cleaner)(nil)

// Cleaner strips non-content markup and emits typed text blocks.
type Cleaner struct{}

// NewCleaner creates a new Cleaner.
func NewCleaner() *Cleaner {
	return &Cleaner{}
}

// Clean parses HTML, removes noise and hidden regions, and returns the
// remaining text blocks in reading order. net/html repairs malformed markup,
// so a broken page degrades to best-effort extraction instead of an error.
func (c *Cleaner) Clean(rawHTML string) ([]docatlas.TextBlock, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, docatlas.Errorf(docatlas.EUNSUPPORTED, "failed to parse HTML: %v", err)
	}

	doc.Find(noiseSelector).Remove()
	doc.Find(hiddenSelector).Remove()
	doc.Find(`[style]`).Each(func(_ int, sel *goquery.Selection) {
		if style, _ := sel.Attr("style"); isDisplayNone(style) {
			sel.Remove()
		}
	})

	var blocks []docatlas.TextBlock
	doc.Find(blockSelector).Each(func(_ int, sel *goquery.Selection) {
		if len(sel.Nodes) == 0 {
			return
		}
		text := collapseWhitespace(nodeText(sel.Nodes[0]))
		if text == "" {
			return
		}
		blocks = append(blocks, classify(sel.Nodes[0].Data, text))
	})

	return blocks, nil
}

// classify maps an element name to a typed block.
func classify(tag string, text string) docatlas.TextBlock {
	switch tag {
	case "h1", "h2", "h3", "h4":
		return docatlas.TextBlock{
			Kind:  docatlas.BlockHeading,
			Level: int(tag[1] - '0'),
			Text:  text,
		}
	case "li":
		return docatlas.TextBlock{Kind: docatlas.BlockListItem, Text: text}
	default:
		return docatlas.TextBlock{Kind: docatlas.BlockParagraph, Text: text}
	}
}

// nodeText walks a node's subtree and concatenates its text nodes,
// separating them with spaces.
func nodeText(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(node *html.Node) {
		if node.Type == html.TextNode {
			sb.WriteString(node.Data)
			sb.WriteByte(' ')
			return
		}
		for child := node.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(n)
	return sb.String()
}

// collapseWhitespace squeezes runs of whitespace into single spaces and
// trims the ends.
func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// isDisplayNone reports whether an inline style hides the element.
func isDisplayNone(style string) bool {
	style = strings.ReplaceAll(strings.ToLower(style), " ", "")
	return strings.Contains(style, "display:none") || strings.Contains(style, "visibility:hidden")
}

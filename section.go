package docatlas

import "strings"

// Section is a per-page tree node built from one heading and its owned body
// text. A child's level is strictly greater than its parent's; trees are
// built bottom-up from a linear scan and are acyclic by construction.
type Section struct {
	Title     string
	Level     int
	Body      string
	Children  []*Section
	SourceURL string
}

// PageSections pairs one page's section forest with its source URL.
type PageSections struct {
	SourceURL string
	Sections  []*Section
}

// AppendBody appends text to the section's aggregated body.
func (s *Section) AppendBody(text string) {
	if s.Body == "" {
		s.Body = text
		return
	}
	s.Body += " " + text
}

// BuildSections reconstructs a section forest from a flat block stream using
// a stack of open sections keyed by level. A heading of level L closes every
// open section of level >= L and opens a new section under the surviving
// top of stack, or at the page root when the stack empties. Non-heading
// blocks attach to the body of the current top of stack.
//
// Body text appearing before the first heading becomes a synthetic level-1
// "Overview" section so no content is dropped.
func BuildSections(blocks []TextBlock, sourceURL string) []*Section {
	var roots []*Section
	var stack []*Section

	for _, block := range blocks {
		if block.Kind == BlockHeading {
			section := &Section{
				Title:     block.Text,
				Level:     block.Level,
				SourceURL: sourceURL,
			}
			for len(stack) > 0 && stack[len(stack)-1].Level >= block.Level {
				stack = stack[:len(stack)-1]
			}
			if len(stack) > 0 {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, section)
			} else {
				roots = append(roots, section)
			}
			stack = append(stack, section)
			continue
		}

		if len(stack) > 0 {
			stack[len(stack)-1].AppendBody(block.Text)
			continue
		}

		// Headingless preamble.
		roots = append(roots, &Section{
			Title:     "Overview",
			Level:     1,
			Body:      block.Text,
			SourceURL: sourceURL,
		})
	}

	return roots
}

// Walk visits the section and all its descendants depth-first.
func (s *Section) Walk(fn func(*Section)) {
	fn(s)
	for _, child := range s.Children {
		child.Walk(fn)
	}
}

// WordCount returns the number of whitespace-separated words in the body.
func (s *Section) WordCount() int {
	return len(strings.Fields(s.Body))
}

package docatlas

// BlockKind classifies a text block extracted from a cleaned page.
type BlockKind string

// Text block kinds.
const (
	BlockHeading   BlockKind = "heading"
	BlockParagraph BlockKind = "paragraph"
	BlockListItem  BlockKind = "list_item"
)

// TextBlock is one typed block of page text in document order.
// Level is 1-4 for headings and 0 otherwise.
type TextBlock struct {
	Kind  BlockKind
	Level int
	Text  string
}

// Cleaner strips non-content markup from a page and emits its text blocks.
type Cleaner interface {
	// Clean parses HTML, removes noise regions (script, style, nav,
	// header, footer, aside, hidden elements), and returns the remaining
	// text blocks in reading order. Malformed HTML degrades to
	// best-effort extraction rather than failing the page.
	Clean(html string) ([]TextBlock, error)
}

package docatlas_test

import (
	"testing"

	"github.com/docatlas/docatlas"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func heading(level int, text string) docatlas.TextBlock {
	return docatlas.TextBlock{Kind: docatlas.BlockHeading, Level: level, Text: text}
}

func paragraph(text string) docatlas.TextBlock {
	return docatlas.TextBlock{Kind: docatlas.BlockParagraph, Text: text}
}

func TestBuildSections(t *testing.T) {
	t.Parallel()

	t.Run("nests deeper headings under shallower ones", func(t *testing.T) {
		t.Parallel()

		blocks := []docatlas.TextBlock{
			heading(1, "Guide"),
			paragraph("Intro text."),
			heading(2, "Install"),
			paragraph("Install text."),
			heading(3, "From source"),
			heading(2, "Usage"),
		}

		roots := docatlas.BuildSections(blocks, "https://example.com/guide")

		require.Len(t, roots, 1)
		guide := roots[0]
		assert.Equal(t, "Guide", guide.Title)
		assert.Equal(t, "Intro text.", guide.Body)
		require.Len(t, guide.Children, 2)

		install := guide.Children[0]
		assert.Equal(t, "Install", install.Title)
		assert.Equal(t, "Install text.", install.Body)
		require.Len(t, install.Children, 1)
		assert.Equal(t, "From source", install.Children[0].Title)

		assert.Equal(t, "Usage", guide.Children[1].Title)
		assert.Equal(t, "https://example.com/guide", install.SourceURL)
	})

	t.Run("same-level headings become siblings", func(t *testing.T) {
		t.Parallel()

		blocks := []docatlas.TextBlock{
			heading(2, "First"),
			heading(2, "Second"),
			heading(2, "Third"),
		}

		roots := docatlas.BuildSections(blocks, "https://example.com")

		require.Len(t, roots, 3)
		for _, root := range roots {
			assert.Equal(t, 2, root.Level)
			assert.Empty(t, root.Children)
		}
	})

	t.Run("heading level decrease pops back to the right parent", func(t *testing.T) {
		t.Parallel()

		blocks := []docatlas.TextBlock{
			heading(1, "A"),
			heading(3, "A.deep"),
			heading(2, "A.mid"),
		}

		roots := docatlas.BuildSections(blocks, "https://example.com")

		require.Len(t, roots, 1)
		require.Len(t, roots[0].Children, 2)
		assert.Equal(t, "A.deep", roots[0].Children[0].Title)
		assert.Equal(t, "A.mid", roots[0].Children[1].Title)
	})

	t.Run("body before first heading becomes an overview section", func(t *testing.T) {
		t.Parallel()

		blocks := []docatlas.TextBlock{
			paragraph("Orphan text."),
			heading(1, "Real heading"),
		}

		roots := docatlas.BuildSections(blocks, "https://example.com")

		require.Len(t, roots, 2)
		assert.Equal(t, "Overview", roots[0].Title)
		assert.Equal(t, 1, roots[0].Level)
		assert.Equal(t, "Orphan text.", roots[0].Body)
		assert.Equal(t, "Real heading", roots[1].Title)
	})

	t.Run("aggregates multiple body blocks with spaces", func(t *testing.T) {
		t.Parallel()

		blocks := []docatlas.TextBlock{
			heading(1, "H"),
			paragraph("One."),
			docatlas.TextBlock{Kind: docatlas.BlockListItem, Text: "Two."},
		}

		roots := docatlas.BuildSections(blocks, "https://example.com")

		require.Len(t, roots, 1)
		assert.Equal(t, "One. Two.", roots[0].Body)
	})

	t.Run("child level is always strictly greater than parent level", func(t *testing.T) {
		t.Parallel()

		blocks := []docatlas.TextBlock{
			heading(2, "a"), heading(1, "b"), heading(4, "c"),
			heading(3, "d"), heading(3, "e"), heading(1, "f"),
			heading(2, "g"), heading(2, "h"), heading(4, "i"),
		}

		roots := docatlas.BuildSections(blocks, "https://example.com")

		var check func(parent *docatlas.Section)
		check = func(parent *docatlas.Section) {
			for _, child := range parent.Children {
				assert.Greater(t, child.Level, parent.Level)
				check(child)
			}
		}
		for _, root := range roots {
			check(root)
		}
	})

	t.Run("empty input yields empty forest", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, docatlas.BuildSections(nil, "https://example.com"))
	})
}

func TestSection_Walk(t *testing.T) {
	t.Parallel()

	root := &docatlas.Section{
		Title: "root",
		Level: 1,
		Children: []*docatlas.Section{
			{Title: "a", Level: 2, Children: []*docatlas.Section{{Title: "b", Level: 3}}},
			{Title: "c", Level: 2},
		},
	}

	var titles []string
	root.Walk(func(s *docatlas.Section) { titles = append(titles, s.Title) })

	assert.Equal(t, []string{"root", "a", "b", "c"}, titles)
}

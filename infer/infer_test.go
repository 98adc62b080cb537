package infer_test

import (
	"testing"

	"github.com/docatlas/docatlas"
	"github.com/docatlas/docatlas/infer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func section(title string, level int, body string, children ...*docatlas.Section) *docatlas.Section {
	return &docatlas.Section{Title: title, Level: level, Body: body, Children: children}
}

func forest(url string, sections ...*docatlas.Section) docatlas.PageSections {
	return docatlas.PageSections{SourceURL: url, Sections: sections}
}

func TestEngine_Infer(t *testing.T) {
	t.Parallel()

	t.Run("merges exact and near-duplicate titles across pages", func(t *testing.T) {
		t.Parallel()

		engine := infer.NewEngine()

		modules := engine.Infer([]docatlas.PageSections{
			forest("https://example.com/a",
				section("User Management", 1, "Create and manage user accounts in the admin panel.")),
			forest("https://example.com/b",
				section("user managment", 1, "Additional notes about user accounts.")),
		})

		require.Len(t, modules, 1)
		assert.Equal(t, "user managment", modules[0].Name, "shorter spelling wins as canonical")
		assert.Equal(t, []string{"https://example.com/a", "https://example.com/b"}, modules[0].SourceURLs)
	})

	t.Run("level 3-4 sections become submodules of the nearest module", func(t *testing.T) {
		t.Parallel()

		engine := infer.NewEngine()

		modules := engine.Infer([]docatlas.PageSections{
			forest("https://example.com/docs",
				section("Billing", 2, "Billing lets you manage invoices and payments for your account.",
					section("Invoices", 3, "Invoices are generated on the first day of each month.",
						section("Invoice templates", 4, "Templates customize the generated invoice layout.")),
					section("Payment methods", 3, "Cards and bank transfers are supported today."))),
		})

		require.Len(t, modules, 1)
		billing := modules[0]
		assert.Equal(t, "Billing", billing.Name)

		var names []string
		for _, sub := range billing.Submodules {
			names = append(names, sub.Name)
		}
		assert.ElementsMatch(t, []string{"Invoices", "Invoice templates", "Payment methods"}, names)
	})

	t.Run("level 2 under level 1 is its own module", func(t *testing.T) {
		t.Parallel()

		engine := infer.NewEngine()

		modules := engine.Infer([]docatlas.PageSections{
			forest("https://example.com",
				section("Platform Guide", 1, "The platform guide covers everything you need.",
					section("Access Control", 2, "Access control governs who can see what content."))),
		})

		require.Len(t, modules, 2)
		assert.Equal(t, "Platform Guide", modules[0].Name)
		assert.Equal(t, "Access Control", modules[1].Name)
	})

	t.Run("stoplisted titles are discarded entirely", func(t *testing.T) {
		t.Parallel()

		engine := infer.NewEngine()

		modules := engine.Infer([]docatlas.PageSections{
			forest("https://example.com",
				section("Home", 1, "Welcome to the site, look around."),
				section("Skip to content", 1, "Accessibility link text."),
				section("Search", 2, "Search the site for anything."),
				section("API Reference", 1, "The API reference lists all available endpoints.")),
		})

		require.Len(t, modules, 1)
		assert.Equal(t, "API Reference", modules[0].Name)
	})

	t.Run("descriptions degrade to title-derived sentences", func(t *testing.T) {
		t.Parallel()

		engine := infer.NewEngine()

		modules := engine.Infer([]docatlas.PageSections{
			forest("https://example.com",
				section("Webhooks Setup", 1, "",
					section("Retry Policy", 3, ""))),
		})

		require.Len(t, modules, 1)
		assert.Equal(t, "Module for Webhooks Setup.", modules[0].Description)
		require.Len(t, modules[0].Submodules, 1)
		assert.Equal(t, "Functionality related to Retry Policy.", modules[0].Submodules[0].Description)
	})

	t.Run("module description prefers children body text", func(t *testing.T) {
		t.Parallel()

		engine := infer.NewEngine()

		modules := engine.Infer([]docatlas.PageSections{
			forest("https://example.com",
				section("Deployments", 1, "Parent body text that should not be used here.",
					section("Rolling updates", 3, "Rolling updates replace instances gradually without downtime."))),
		})

		require.Len(t, modules, 1)
		assert.Equal(t, "Rolling updates replace instances gradually without downtime.", modules[0].Description)
	})

	t.Run("confidence stays within bounds for any input", func(t *testing.T) {
		t.Parallel()

		engine := infer.NewEngine()

		long := ""
		for i := 0; i < 80; i++ {
			long += "Detailed sentence number with several useful words in it. "
		}

		modules := engine.Infer([]docatlas.PageSections{
			forest("https://example.com",
				section("Config", 1, ""),
				section("Observability and Monitoring", 2, long,
					section("Dashboards", 3, long))),
		})

		require.NotEmpty(t, modules)
		for _, m := range modules {
			assert.GreaterOrEqual(t, m.Confidence, docatlas.MinConfidence)
			assert.LessOrEqual(t, m.Confidence, docatlas.MaxConfidence)
			for _, sub := range m.Submodules {
				assert.GreaterOrEqual(t, sub.Confidence, docatlas.MinConfidence)
				assert.LessOrEqual(t, sub.Confidence, docatlas.MaxConfidence)
			}
		}
	})

	t.Run("merging the same forest twice is idempotent", func(t *testing.T) {
		t.Parallel()

		engine := infer.NewEngine()

		page := forest("https://example.com/docs",
			section("Access Control", 1, "Access control governs permissions across the system.",
				section("Role bindings", 3, "Role bindings attach roles to users or groups.")))

		once := engine.Infer([]docatlas.PageSections{page})
		twice := engine.Infer([]docatlas.PageSections{page, page})

		require.Len(t, twice, 1)
		assert.Equal(t, once[0].Name, twice[0].Name)
		assert.Equal(t, once[0].SourceURLs, twice[0].SourceURLs, "same source URL never duplicates")
		require.Len(t, twice[0].Submodules, len(once[0].Submodules))
		assert.Equal(t, once[0].Submodules[0].Name, twice[0].Submodules[0].Name)
	})

	t.Run("orders modules by descending confidence with stable ties", func(t *testing.T) {
		t.Parallel()

		engine := infer.NewEngine()

		modules := engine.Infer([]docatlas.PageSections{
			forest("https://example.com",
				// One-word title, no body: low confidence.
				section("Glossary", 1, ""),
				// Rich body and a child: high confidence.
				section("Data Pipelines", 1, "Data pipelines move records between systems on a schedule.",
					section("Batch jobs", 3, "Batch jobs process accumulated records at fixed intervals.")),
				// Identical scores keep first-seen order.
				section("Alpha Topic", 2, ""),
				section("Beta Topic", 2, "")),
		})

		require.Len(t, modules, 4)
		assert.Equal(t, "Data Pipelines", modules[0].Name)
		alphaIdx, betaIdx := -1, -1
		for i, m := range modules {
			switch m.Name {
			case "Alpha Topic":
				alphaIdx = i
			case "Beta Topic":
				betaIdx = i
			}
		}
		assert.Less(t, alphaIdx, betaIdx, "ties broken by first-seen order")
	})

	t.Run("no forests yields no modules", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, infer.NewEngine().Infer(nil))
	})
}

func TestSimilarity(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 1.0, infer.Similarity("same", "same"))
	assert.Equal(t, 1.0, infer.Similarity("", ""))

	typo := infer.Similarity("user management", "user managment")
	assert.GreaterOrEqual(t, typo, 0.8, "single-letter typo stays above the merge threshold")

	different := infer.Similarity("billing", "deployment guide")
	assert.Less(t, different, 0.5)
}

func TestNormalizeTitle(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "user management", infer.NormalizeTitle("  User   Management "))
}

func TestValidTitle(t *testing.T) {
	t.Parallel()

	assert.True(t, infer.ValidTitle("API Reference"))
	assert.False(t, infer.ValidTitle("Home"))
	assert.False(t, infer.ValidTitle("Sign in"))
	assert.False(t, infer.ValidTitle("Page 3"))
	assert.False(t, infer.ValidTitle("ab"))
	assert.False(t, infer.ValidTitle("   "))
}

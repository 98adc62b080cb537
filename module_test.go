package docatlas_test

import (
	"encoding/json"
	"testing"

	"github.com/docatlas/docatlas"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClampConfidence(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0.3, docatlas.ClampConfidence(0.1))
	assert.Equal(t, 0.95, docatlas.ClampConfidence(1.2))
	assert.Equal(t, 0.7, docatlas.ClampConfidence(0.7))
}

func TestCatalog_MarshalIndent(t *testing.T) {
	t.Parallel()

	t.Run("matches the serialization contract", func(t *testing.T) {
		t.Parallel()

		catalog := &docatlas.Catalog{
			Modules: []*docatlas.Module{
				{
					Name:        "User Management",
					Description: "Manage users.",
					Confidence:  0.8,
					SourceURLs:  []string{"https://example.com/users"},
					Submodules: []*docatlas.Submodule{
						{
							Name:        "Roles",
							Description: "Assign roles.",
							Confidence:  0.5,
							SourceURLs:  []string{"https://example.com/users"},
						},
					},
				},
			},
		}

		data, err := catalog.MarshalIndent()
		require.NoError(t, err)

		var decoded map[string]any
		require.NoError(t, json.Unmarshal(data, &decoded))

		modules, ok := decoded["modules"].([]any)
		require.True(t, ok)
		require.Len(t, modules, 1)

		module, ok := modules[0].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "User Management", module["name"])
		assert.Contains(t, module, "description")
		assert.Contains(t, module, "confidence")
		assert.Contains(t, module, "source_urls")
		assert.Contains(t, module, "submodules")
	})

	t.Run("empty catalog serializes arrays, not null", func(t *testing.T) {
		t.Parallel()

		data, err := (&docatlas.Catalog{}).MarshalIndent()
		require.NoError(t, err)
		assert.JSONEq(t, `{"modules": []}`, string(data))

		data, err = (&docatlas.Catalog{Modules: []*docatlas.Module{{Name: "m"}}}).MarshalIndent()
		require.NoError(t, err)
		assert.Contains(t, string(data), `"submodules": []`)
	})
}

func TestFingerprint(t *testing.T) {
	t.Parallel()

	a := docatlas.Fingerprint("https://example.com/docs")
	b := docatlas.Fingerprint("https://example.com/docs")
	c := docatlas.Fingerprint("https://example.com/other")

	assert.Len(t, a, 16, "fingerprints are fixed length")
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}

package docatlas

import "encoding/json"

// Confidence bounds for modules and submodules.
const (
	MinConfidence = 0.3
	MaxConfidence = 0.95
)

// Submodule is a finer-grained topic under a Module, inferred from a
// level-3/4 heading.
type Submodule struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Confidence  float64  `json:"confidence"`
	SourceURLs  []string `json:"source_urls"`
}

// Module is a top-level documentation category inferred from level-1/2
// headings, aggregated across pages. Derived, not owned by any page;
// lifetime is one pipeline run.
type Module struct {
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Confidence  float64      `json:"confidence"`
	SourceURLs  []string     `json:"source_urls"`
	Submodules  []*Submodule `json:"submodules"`
}

// Catalog is the final serialized result consumed by UI/API/CLI callers.
type Catalog struct {
	Modules []*Module `json:"modules"`
}

// MarshalIndent renders the catalog as indented JSON. A catalog with no
// modules serializes with an empty array, never null.
func (c *Catalog) MarshalIndent() ([]byte, error) {
	if c.Modules == nil {
		c.Modules = []*Module{}
	}
	for _, m := range c.Modules {
		if m.Submodules == nil {
			m.Submodules = []*Submodule{}
		}
	}
	return json.MarshalIndent(c, "", "  ")
}

// ClampConfidence clamps v into [MinConfidence, MaxConfidence].
func ClampConfidence(v float64) float64 {
	if v < MinConfidence {
		return MinConfidence
	}
	if v > MaxConfidence {
		return MaxConfidence
	}
	return v
}

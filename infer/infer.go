// Package infer merges per-page section trees into a deduplicated
// module/submodule catalog with generated descriptions and confidence
// scores.
package infer

import (
	"sort"
	"strings"

	"github.com/docatlas/docatlas"
)

// Tunable constants. The thresholds and weights are empirically chosen in
// the scoring heuristic; treat them as configuration, not derived values.
const (
	// DefaultSimilarityThreshold is the edit-distance ratio above which
	// two normalized titles merge into one candidate.
	DefaultSimilarityThreshold = 0.8

	// DefaultTopChildren caps how many children contribute body text to a
	// module description, so one noisy child cannot dominate it.
	DefaultTopChildren = 5

	moduleBaseConfidence    = 0.6
	submoduleBaseConfidence = 0.5
	wordBonusPerWord        = 0.01
	wordBonusCap            = 0.2
	childBonus              = 0.1
	shortTitlePenalty       = 0.1

	moduleSummarySentences    = 3
	submoduleSummarySentences = 2
)

// maxModuleLevel separates module headings (1-2) from submodule
// headings (3-4).
const maxModuleLevel = 2

// Engine infers the cross-page catalog from section forests.
type Engine struct {
	// SimilarityThreshold overrides DefaultSimilarityThreshold when > 0.
	SimilarityThreshold float64

	// TopChildren overrides DefaultTopChildren when > 0.
	TopChildren int
}

// NewEngine creates an Engine with default thresholds.
func NewEngine() *Engine {
	return &Engine{}
}

func (e *Engine) threshold() float64 {
	if e.SimilarityThreshold > 0 {
		return e.SimilarityThreshold
	}
	return DefaultSimilarityThreshold
}

func (e *Engine) topChildren() int {
	if e.TopChildren > 0 {
		return e.TopChildren
	}
	return DefaultTopChildren
}

// candidate accumulates every occurrence of one merged title.
type candidate struct {
	title      string // canonical display title
	normalized string
	bodies     []string
	sources    []string
	children   []*candidate
	order      int // first-seen position, tie-breaker for output ordering
}

// Infer merges the per-page forests into the final module catalog.
// Modules come from level 1-2 sections, submodules from level 3-4 sections
// under their nearest level 1-2 ancestor. Output is ordered by descending
// confidence with first-seen order breaking ties.
func (e *Engine) Infer(forests []docatlas.PageSections) []*docatlas.Module {
	var modules []*candidate
	order := 0

	for _, forest := range forests {
		for _, root := range forest.Sections {
			e.collectModules(root, forest.SourceURL, &modules, &order)
		}
	}

	result := make([]*docatlas.Module, 0, len(modules))
	for _, m := range modules {
		result = append(result, e.buildModule(m))
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Confidence > result[j].Confidence
	})
	for _, m := range result {
		sort.SliceStable(m.Submodules, func(i, j int) bool {
			return m.Submodules[i].Confidence > m.Submodules[j].Confidence
		})
	}
	return result
}

// collectModules walks a section tree, folding level 1-2 sections into the
// module candidate list and attaching their level 3-4 descendants as
// submodule candidates.
func (e *Engine) collectModules(s *docatlas.Section, sourceURL string, modules *[]*candidate, order *int) {
	if s.Level > maxModuleLevel {
		// A deep section with no module ancestor cannot anchor anything.
		return
	}

	if ValidTitle(s.Title) {
		module := e.merge(modules, s.Title, s.Body, sourceURL, order)
		for _, child := range s.Children {
			if child.Level > maxModuleLevel {
				e.collectSubmodules(child, sourceURL, module, order)
			}
		}
	}

	// Level 2 sections nested under level 1 are modules in their own right.
	for _, child := range s.Children {
		if child.Level <= maxModuleLevel {
			e.collectModules(child, sourceURL, modules, order)
		}
	}
}

// collectSubmodules attaches a level 3-4 section and its level 3-4
// descendants to the enclosing module candidate.
func (e *Engine) collectSubmodules(s *docatlas.Section, sourceURL string, module *candidate, order *int) {
	if s.Level > 4 {
		return
	}
	if ValidTitle(s.Title) {
		e.merge(&module.children, s.Title, s.Body, sourceURL, order)
	}
	for _, child := range s.Children {
		e.collectSubmodules(child, sourceURL, module, order)
	}
}

// merge folds one occurrence of a title into the candidate list: an
// existing candidate with an identical or sufficiently similar normalized
// title absorbs it, otherwise a new candidate is appended. Returns the
// candidate that absorbed the occurrence.
func (e *Engine) merge(candidates *[]*candidate, title, body, sourceURL string, order *int) *candidate {
	normalized := NormalizeTitle(title)

	for _, existing := range *candidates {
		if existing.normalized == normalized || Similarity(existing.normalized, normalized) >= e.threshold() {
			// The shorter title tends to be the more canonical spelling.
			if len(title) < len(existing.title) {
				existing.title = title
				existing.normalized = normalized
			}
			if body != "" {
				existing.bodies = append(existing.bodies, body)
			}
			existing.sources = append(existing.sources, sourceURL)
			return existing
		}
	}

	c := &candidate{
		title:      title,
		normalized: normalized,
		sources:    []string{sourceURL},
		order:      *order,
	}
	if body != "" {
		c.bodies = append(c.bodies, body)
	}
	*order++
	*candidates = append(*candidates, c)
	return c
}

// buildModule renders a merged candidate into the output type.
func (e *Engine) buildModule(m *candidate) *docatlas.Module {
	description := e.describeModule(m)

	module := &docatlas.Module{
		Name:        m.title,
		Description: description,
		Confidence:  confidence(moduleBaseConfidence, description, m.normalized, len(m.children) > 0),
		SourceURLs:  docatlas.DedupePreserveOrder(m.sources),
		Submodules:  make([]*docatlas.Submodule, 0, len(m.children)),
	}

	for _, child := range m.children {
		description := describeSubmodule(child)
		module.Submodules = append(module.Submodules, &docatlas.Submodule{
			Name:        child.title,
			Description: description,
			Confidence:  confidence(submoduleBaseConfidence, description, child.normalized, false),
			SourceURLs:  docatlas.DedupePreserveOrder(child.sources),
		})
	}

	return module
}

// describeModule summarizes the top children's combined body text when the
// module has children, its own body otherwise, and degrades to a
// title-derived sentence when both are empty.
func (e *Engine) describeModule(m *candidate) string {
	if len(m.children) > 0 {
		var parts []string
		for i, child := range m.children {
			if i == e.topChildren() {
				break
			}
			parts = append(parts, child.bodies...)
		}
		if summary := docatlas.Summarize(strings.Join(parts, " "), moduleSummarySentences); summary != "" {
			return summary
		}
	}
	if summary := docatlas.Summarize(strings.Join(m.bodies, " "), moduleSummarySentences); summary != "" {
		return summary
	}
	return docatlas.TitleDescription(m.title, true)
}

func describeSubmodule(c *candidate) string {
	if summary := docatlas.Summarize(strings.Join(c.bodies, " "), submoduleSummarySentences); summary != "" {
		return summary
	}
	return docatlas.TitleDescription(c.title, false)
}

// confidence applies the fixed scoring formula: base, plus a capped bonus
// per description word, plus a structure bonus for children, minus a
// penalty for one-word titles, clamped into the contractual range.
func confidence(base float64, description, normalizedTitle string, hasChildren bool) float64 {
	score := base

	wordBonus := wordBonusPerWord * float64(len(strings.Fields(description)))
	if wordBonus > wordBonusCap {
		wordBonus = wordBonusCap
	}
	score += wordBonus

	if hasChildren {
		score += childBonus
	}
	if len(strings.Fields(normalizedTitle)) < 2 {
		score -= shortTitlePenalty
	}

	return docatlas.ClampConfidence(score)
}

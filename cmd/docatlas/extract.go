package main

import (
	"fmt"
	"os"

	"github.com/docatlas/docatlas"
	"github.com/docatlas/docatlas/pipeline"
)

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	result, err := deps.Runner.Run(deps.Ctx, pipeline.Options{
		Roots:          c.URLs,
		MaxPages:       c.MaxPages,
		MaxDepth:       c.MaxDepth,
		AllowedDomains: c.Domain,
		UseSitemap:     c.Sitemap,
	})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docatlas.ErrorMessage(err))
		return err
	}

	data, err := result.Catalog().MarshalIndent()
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docatlas.ErrorMessage(err))
		return err
	}

	if c.Output != "" {
		if err := os.WriteFile(c.Output, append(data, '\n'), 0644); err != nil {
			return fmt.Errorf("failed to write %q: %w", c.Output, err)
		}
		fmt.Fprintf(deps.Stdout, "Wrote %d modules from %d pages to %s\n",
			len(result.Modules), result.Pages, c.Output)
	} else {
		fmt.Fprintln(deps.Stdout, string(data))
	}

	for _, url := range result.Skipped {
		fmt.Fprintf(deps.Stderr, "skipped: %s\n", url)
	}
	for _, url := range result.Failed {
		fmt.Fprintf(deps.Stderr, "failed: %s\n", url)
	}

	return nil
}

package main

import (
	"fmt"

	"github.com/docatlas/docatlas"
)

// Run executes the cache stats command.
func (c *CacheStatsCmd) Run(deps *Dependencies) error {
	n, err := deps.Cache.Size(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docatlas.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "%d cached pages\n", n)
	return nil
}

// Run executes the cache clear command.
func (c *CacheClearCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm clearing the cache\n")
		return docatlas.Errorf(docatlas.EINVALID, "use --force to confirm clearing the cache")
	}

	if err := deps.Cache.Clear(deps.Ctx); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docatlas.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, "Cache cleared")
	return nil
}

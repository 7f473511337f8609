package main

import (
	"fmt"

	"github.com/fwojciec/ghdocs"
)

// Run executes the browse command.
func (c *BrowseCmd) Run(deps *Dependencies) error {
	result, err := deps.Browser.Browse(deps.Ctx, c.Repository, c.Path)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", ghdocs.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, ghdocs.FormatBrowseResult(result))
	return nil
}

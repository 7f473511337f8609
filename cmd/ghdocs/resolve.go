package main

import (
	"fmt"

	"github.com/fwojciec/ghdocs"
)

// Run executes the resolve command.
func (c *ResolveCmd) Run(deps *Dependencies) error {
	res, err := deps.Resolver.Resolve(deps.Ctx, c.Repository)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", ghdocs.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, res.DocsPath)
	return nil
}

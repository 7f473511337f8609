package main

import (
	"fmt"

	"github.com/fwojciec/ghdocs"
)

// Run executes the mappings command.
func (c *MappingsCmd) Run(deps *Dependencies) error {
	fmt.Fprintln(deps.Stdout, ghdocs.FormatMappings(deps.Resolver.Mappings()))
	return nil
}

package main

import (
	"fmt"

	"github.com/fwojciec/leadgen"
)

// Run executes the clear command.
func (c *ClearCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return leadgen.Errorf(leadgen.EINVALID, "use --force to confirm deletion")
	}

	if err := deps.Store.Save(deps.Ctx, c.Owner, nil); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", leadgen.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Cleared all leads for %q\n", c.Owner)
	return nil
}

package main

import (
	"fmt"

	"github.com/fwojciec/leadgen"
)

// Run executes the enhance command.
func (c *EnhanceCmd) Run(deps *Dependencies) error {
	result, err := deps.Enhancer.EnhanceExisting(deps.Ctx, c.Owner)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", leadgen.ErrorMessage(err))
		return err
	}

	if result.Processed == 0 {
		fmt.Fprintln(deps.Stdout, "No leads need enhancement.")
		return nil
	}

	fmt.Fprintf(deps.Stdout, "Processed %d leads, %d gained an email", result.Processed, result.Improved)
	if result.Remaining > 0 {
		fmt.Fprintf(deps.Stdout, " (%d remaining, run again to continue)", result.Remaining)
	}
	fmt.Fprintln(deps.Stdout)

	return nil
}

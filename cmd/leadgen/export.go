package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fwojciec/leadgen"
)

// Run executes the export command.
func (c *ExportCmd) Run(deps *Dependencies) error {
	leads, err := deps.Store.Load(deps.Ctx, c.Owner)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", leadgen.ErrorMessage(err))
		return err
	}

	var out io.Writer = deps.Stdout
	if c.Out != "" {
		f, err := os.Create(c.Out)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: failed to create %q: %s\n", c.Out, err)
			return err
		}
		defer f.Close()
		out = f
	}

	if err := leadgen.WriteCSV(out, leads); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", leadgen.ErrorMessage(err))
		return err
	}

	if c.Out != "" {
		fmt.Fprintf(deps.Stdout, "Exported %d leads to %s\n", len(leads), c.Out)
	}
	return nil
}

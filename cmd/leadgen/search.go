package main

import (
	"fmt"

	"github.com/fwojciec/leadgen"
)

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	leads, err := deps.Searcher.FindLeads(deps.Ctx, c.Type, c.Location, c.Count)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", leadgen.ErrorMessage(err))
		return err
	}

	existing, err := deps.Store.Load(deps.Ctx, c.Owner)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", leadgen.ErrorMessage(err))
		return err
	}

	merged := leadgen.MergeLeads(existing, leads)
	if err := deps.Store.Save(deps.Ctx, c.Owner, merged); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", leadgen.ErrorMessage(err))
		return err
	}

	if len(leads) > 0 && leads[0].Source == "demo_data" {
		fmt.Fprintln(deps.Stdout, "All search sources failed; showing demo data.")
	}

	fmt.Fprintf(deps.Stdout, "Found %d leads (%d new) for %q in %q\n",
		len(leads), len(merged)-len(existing), c.Type, c.Location)
	for _, l := range leads {
		fmt.Fprintf(deps.Stdout, "  %-30s  %-14s  %-20s  %s\n", l.Name, l.Phone, l.LeadType, l.Website)
	}

	return nil
}

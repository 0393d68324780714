package main

import (
	"fmt"

	"github.com/fwojciec/leadgen"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	leads, err := deps.Store.Load(deps.Ctx, c.Owner)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", leadgen.ErrorMessage(err))
		return err
	}

	if c.Type != "" {
		leads = leadgen.FilterByType(leads, c.Type)
	}

	if len(leads) == 0 {
		fmt.Fprintln(deps.Stdout, "No leads found. Use 'leadgen search' to find some.")
		return nil
	}

	leadgen.SortByCreatedAt(leads)
	for _, l := range leads {
		fmt.Fprintf(deps.Stdout, "%-30s  %-14s  %-25s  %-20s  %s\n",
			l.Name, l.Phone, l.Email, l.LeadType, l.Website)
	}

	stats := leadgen.ComputeStats(leads)
	fmt.Fprintf(deps.Stdout, "\n%d leads: %d with phone, %d with email, %d with website, %d complete\n",
		stats.Total, stats.WithPhone, stats.WithEmail, stats.WithWebsite, stats.CompleteProfiles)

	return nil
}

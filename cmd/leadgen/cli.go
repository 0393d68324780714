package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/leadgen"
	"github.com/fwojciec/leadgen/search"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	Logger   *slog.Logger
	Store    leadgen.LeadStore
	Searcher *search.Searcher
	Enhancer *search.Enhancer
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Search  SearchCmd  `cmd:"" help:"Search for business leads"`
	List    ListCmd    `cmd:"" help:"List stored leads"`
	Export  ExportCmd  `cmd:"" help:"Export stored leads to CSV"`
	Enhance EnhanceCmd `cmd:"" help:"Re-run contact extraction over stored leads missing an email"`
	Clear   ClearCmd   `cmd:"" help:"Delete all stored leads for an owner"`
}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Type     string `arg:"" help:"Business type to search for, e.g. dentist"`
	Location string `arg:"" help:"Location to search in, e.g. Austin"`
	Count    int    `short:"n" default:"10" help:"Number of leads to find (max 50)"`
	Owner    string `default:"default" help:"Lead collection to save into"`
	Browser  bool   `help:"Fetch pages with a headless browser instead of plain HTTP"`
	Taxonomy string `help:"Path to a YAML taxonomy overriding the built-in classification vocabulary"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	Owner string `default:"default" help:"Lead collection to list"`
	Type  string `help:"Only show leads of this lead type"`
}

// ExportCmd is the "export" subcommand.
type ExportCmd struct {
	Owner string `default:"default" help:"Lead collection to export"`
	Out   string `short:"o" help:"Output file (default stdout)"`
}

// EnhanceCmd is the "enhance" subcommand.
type EnhanceCmd struct {
	Owner   string `default:"default" help:"Lead collection to enhance"`
	Browser bool   `help:"Fetch pages with a headless browser instead of plain HTTP"`
}

// ClearCmd is the "clear" subcommand.
type ClearCmd struct {
	Owner string `default:"default" help:"Lead collection to clear"`
	Force bool   `help:"Confirm deletion"`
}

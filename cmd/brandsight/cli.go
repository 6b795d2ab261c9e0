package main

import (
	"context"
	"io"
	"log/slog"

	"brandsight"
	"brandsight/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	DB       *sqlite.DB
	Insights brandsight.InsightStore
	Service  brandsight.InsightService
	Logger   *slog.Logger
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Fetch  FetchCmd  `cmd:"" help:"Fetch brand insights for a storefront URL"`
	Serve  ServeCmd  `cmd:"" help:"Serve the insights HTTP API"`
	List   ListCmd   `cmd:"" help:"List stored insight snapshots"`
	Show   ShowCmd   `cmd:"" help:"Show a stored insight snapshot"`
	Delete DeleteCmd `cmd:"" help:"Delete a stored insight snapshot"`
}

// FetchCmd is the "fetch" subcommand.
type FetchCmd struct {
	URL    string `arg:"" help:"Storefront URL"`
	NoSave bool   `help:"Print the result without storing a snapshot"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr string `short:"a" default:":8000" help:"Listen address"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	WebsiteURL string `short:"u" help:"Filter by storefront URL"`
	Brand      string `short:"b" help:"Filter by brand name"`
	Limit      int    `short:"n" help:"Maximum number of snapshots to list"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	ID string `arg:"" help:"Insight snapshot ID"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	ID    string `arg:"" help:"Insight snapshot ID"`
	Force bool   `help:"Confirm deletion"`
}

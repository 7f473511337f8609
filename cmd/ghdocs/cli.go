package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/ghdocs"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdin    io.Reader
	Stdout   io.Writer
	Stderr   io.Writer
	Logger   *slog.Logger
	Resolver ghdocs.Resolver
	Browser  ghdocs.Browser
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Token     string  `help:"GitHub API token (unauthenticated when empty)" env:"GITHUB_TOKEN"`
	Config    string  `short:"c" help:"Path to YAML config file" env:"GHDOCS_CONFIG"`
	APIURL    string  `name:"api-url" help:"GitHub API base URL" env:"GHDOCS_API_URL"`
	RateLimit float64 `name:"rate-limit" help:"Maximum GitHub requests per second (0 disables pacing)" env:"GHDOCS_RATE_LIMIT" default:"0"`
	Verbose   bool    `short:"v" help:"Enable debug logging"`

	Serve    ServeCmd    `cmd:"" default:"1" help:"Serve the docs tools over MCP stdio (default)"`
	Browse   BrowseCmd   `cmd:"" help:"Browse a repository's documentation folder"`
	Resolve  ResolveCmd  `cmd:"" help:"Print the documentation folder of a repository"`
	Mappings MappingsCmd `cmd:"" help:"List known repository mappings"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct{}

// BrowseCmd is the "browse" subcommand.
type BrowseCmd struct {
	Repository string `arg:"" help:"Repository name, owner/repo, or GitHub URL"`
	Path       string `arg:"" optional:"" help:"Path relative to the docs folder"`
}

// ResolveCmd is the "resolve" subcommand.
type ResolveCmd struct {
	Repository string `arg:"" help:"Repository name, owner/repo, or GitHub URL"`
}

// MappingsCmd is the "mappings" subcommand.
type MappingsCmd struct{}

package main

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/fwojciec/ghdocs/mcp"
)

// Run executes the serve command.
func (c *ServeCmd) Run(deps *Dependencies) error {
	srv := mcp.NewServer(deps.Browser)
	srv.ErrorLog = slog.NewLogLogger(deps.Logger.Handler(), slog.LevelError)

	deps.Logger.Info("serving MCP over stdio", "name", mcp.ServerName, "version", mcp.ServerVersion)

	err := srv.ServeStdio(deps.Ctx, deps.Stdin, deps.Stdout)
	if err == nil || errors.Is(err, context.Canceled) || errors.Is(err, io.EOF) {
		deps.Logger.Info("server stopped")
		return nil
	}
	return err
}

// Package mcp exposes the docs browser as Model Context Protocol tools.
package mcp

import (
	"context"
	"fmt"
	"io"
	"log"

	"github.com/fwojciec/ghdocs"
	mcpgo "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

const (
	ServerName    = "github-docs-explorer"
	ServerVersion = "0.1.0"
)

// Tool names.
const (
	ToolBrowseDocs       = "browse_docs"
	ToolAddRepoMapping   = "add_repo_mapping"
	ToolListRepoMappings = "list_repo_mappings"
)

// Server registers the docs tools on an MCP server.
type Server struct {
	browser ghdocs.Browser
	mcp     *server.MCPServer

	// ErrorLog receives transport errors from the stdio loop. Nil discards them.
	ErrorLog *log.Logger
}

// NewServer creates a Server with all tools registered.
func NewServer(browser ghdocs.Browser) *Server {
	s := &Server{browser: browser}
	s.mcp = server.NewMCPServer(
		ServerName,
		ServerVersion,
		server.WithToolCapabilities(true),
		server.WithRecovery(),
	)

	s.mcp.AddTool(mcpgo.NewTool(ToolBrowseDocs,
		mcpgo.WithDescription("Browse documentation files in a GitHub repository"),
		mcpgo.WithString("repository",
			mcpgo.Required(),
			mcpgo.Description("Repository name, owner/repo format, or full GitHub URL"),
		),
		mcpgo.WithString("path",
			mcpgo.Description("Relative path within the docs directory (optional)"),
		),
	), s.HandleBrowseDocs)

	s.mcp.AddTool(mcpgo.NewTool(ToolAddRepoMapping,
		mcpgo.WithDescription("Add a new repository mapping"),
		mcpgo.WithString("name",
			mcpgo.Required(),
			mcpgo.Description("Short name for the repository"),
		),
		mcpgo.WithString("url",
			mcpgo.Required(),
			mcpgo.Description("Full GitHub URL for the repository"),
		),
		mcpgo.WithString("docsPath",
			mcpgo.Required(),
			mcpgo.Description("Path to the documentation directory within the repository"),
		),
	), s.HandleAddRepoMapping)

	s.mcp.AddTool(mcpgo.NewTool(ToolListRepoMappings,
		mcpgo.WithDescription("List the known repository mappings"),
	), s.HandleListRepoMappings)

	return s
}

// MCPServer returns the underlying protocol server.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcp
}

// ServeStdio serves the tools over the given streams until ctx is done or
// stdin is closed.
func (s *Server) ServeStdio(ctx context.Context, stdin io.Reader, stdout io.Writer) error {
	stdio := server.NewStdioServer(s.mcp)
	errLog := s.ErrorLog
	if errLog == nil {
		errLog = log.New(io.Discard, "", 0)
	}
	stdio.SetErrorLogger(errLog)
	return stdio.Listen(ctx, stdin, stdout)
}

// HandleBrowseDocs handles the browse_docs tool.
func (s *Server) HandleBrowseDocs(ctx context.Context, req mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
	repository, err := req.RequireString("repository")
	if err != nil {
		return invalidArguments(ToolBrowseDocs, err), nil
	}
	path, err := optionalString(req, "path")
	if err != nil {
		return invalidArguments(ToolBrowseDocs, err), nil
	}

	result, err := s.browser.Browse(ctx, repository, path)
	if err != nil {
		return mcpgo.NewToolResultError("Error browsing docs: " + err.Error()), nil
	}
	return mcpgo.NewToolResultText(ghdocs.FormatBrowseResult(result)), nil
}

// HandleAddRepoMapping handles the add_repo_mapping tool.
func (s *Server) HandleAddRepoMapping(_ context.Context, req mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
	name, err := req.RequireString("name")
	if err != nil {
		return invalidArguments(ToolAddRepoMapping, err), nil
	}
	url, err := req.RequireString("url")
	if err != nil {
		return invalidArguments(ToolAddRepoMapping, err), nil
	}
	docsPath, err := req.RequireString("docsPath")
	if err != nil {
		return invalidArguments(ToolAddRepoMapping, err), nil
	}

	s.browser.AddRepositoryMapping(name, url, docsPath)
	return mcpgo.NewToolResultText(ghdocs.FormatMappingAdded(name, url, docsPath)), nil
}

// HandleListRepoMappings handles the list_repo_mappings tool.
func (s *Server) HandleListRepoMappings(_ context.Context, _ mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
	return mcpgo.NewToolResultText(ghdocs.FormatMappings(s.browser.RepositoryMappings())), nil
}

func optionalString(req mcpgo.CallToolRequest, key string) (string, error) {
	v, ok := req.GetArguments()[key]
	if !ok || v == nil {
		return "", nil
	}
	str, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("argument %q is not a string", key)
	}
	return str, nil
}

// invalidArguments reports malformed arguments as a flagged tool result so the
// client can show the message instead of a bare protocol fault.
func invalidArguments(tool string, err error) *mcpgo.CallToolResult {
	return mcpgo.NewToolResultError(fmt.Sprintf("Invalid arguments for %s tool: %v", tool, err))
}

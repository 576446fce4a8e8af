package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/ziadkadry99/casefile/internal/content"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Server wraps an MCP server that exposes the case-study content to agents.
type Server struct {
	site *content.Site
	mcp  *server.MCPServer
}

// NewServer creates a new MCP server over the given site content.
func NewServer(site *content.Site) *Server {
	s := &Server{site: site}

	s.mcp = server.NewMCPServer(
		"casefile",
		Version,
		server.WithToolCapabilities(false),
	)

	s.registerTools()

	return s
}

// registerTools adds all tool definitions and their handlers to the MCP server.
func (s *Server) registerTools() {
	s.mcp.AddTool(searchContentTool, s.handleSearchContent)
	s.mcp.AddTool(listPagesTool, s.handleListPages)
	s.mcp.AddTool(getSectionTool, s.handleGetSection)
}

// Serve starts the MCP server on stdio. Stdout is used for MCP protocol
// messages; all logging must go to stderr.
func (s *Server) Serve() error {
	return server.ServeStdio(s.mcp)
}

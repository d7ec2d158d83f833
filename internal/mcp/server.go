// ABOUTME: MCP server setup for the energy-balance tracker.
// ABOUTME: Wraps the MCP server with the active user's store and engine.
package mcp

import (
	"context"

	"github.com/harperreed/balance/internal/repo"
	"github.com/harperreed/balance/internal/summary"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Server wraps the MCP server with storage access for one user.
type Server struct {
	mcpServer *mcp.Server
	store     *repo.Store
	engine    *summary.Engine
}

// NewServer creates an MCP server over the active user's store.
func NewServer(store *repo.Store) (*Server, error) {
	mcpServer := mcp.NewServer(
		&mcp.Implementation{
			Name:    "balance",
			Version: "1.0.0",
		},
		nil,
	)

	s := &Server{
		mcpServer: mcpServer,
		store:     store,
		engine:    summary.NewEngine(store),
	}

	s.registerTools()
	s.registerResources()

	return s, nil
}

// Serve starts the MCP server using stdio transport.
func (s *Server) Serve(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcp.StdioTransport{})
}

// ABOUTME: MCP server exposing notebox notes to AI agents.
// ABOUTME: Provides tools, resources, and prompts backed by a NoteStore.

package mcp

import (
	"context"

	"github.com/harper/notebox/internal/db"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type Server struct {
	server *mcp.Server
	store  db.NoteStore
}

func NewServer(store db.NoteStore, version string) *Server {
	s := &Server{store: store}

	s.server = mcp.NewServer(
		&mcp.Implementation{
			Name:    "notebox",
			Version: version,
		},
		&mcp.ServerOptions{
			HasTools:     true,
			HasResources: true,
			HasPrompts:   true,
		},
	)

	s.registerTools()
	s.registerResources()
	s.registerPrompts()

	return s
}

// Serve speaks MCP over stdin/stdout until ctx is cancelled or the client disconnects.
func (s *Server) Serve(ctx context.Context) error {
	return s.server.Run(ctx, &mcp.StdioTransport{})
}

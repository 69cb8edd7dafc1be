// ABOUTME: MCP resources exposing notes as readable markdown documents.
// ABOUTME: Notes are addressed as notebox://note/{id}.

package mcp

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/harper/notebox/internal/db"
	"github.com/harper/notebox/internal/models"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const noteURIPrefix = "notebox://note/"

func (s *Server) registerResources() {
	s.server.AddResourceTemplate(
		&mcp.ResourceTemplate{
			URITemplate: noteURIPrefix + "{id}",
			Name:        "Note",
			Description: "Access individual notes by ID",
			MIMEType:    "text/markdown",
		},
		s.handleReadResource,
	)
}

func (s *Server) handleReadResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	raw, ok := strings.CutPrefix(req.Params.URI, noteURIPrefix)
	if !ok {
		return nil, fmt.Errorf("invalid resource URI: %s", req.Params.URI)
	}
	id, err := models.ParseNoteID(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid note ID in %s", req.Params.URI)
	}

	note, err := s.store.GetByID(ctx, id)
	if errors.Is(err, db.ErrNoteNotFound) {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get note: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{
			{
				URI:      req.Params.URI,
				MIMEType: "text/markdown",
				Text:     fmt.Sprintf("# %s\n\n%s", note.Title, note.Content),
			},
		},
	}, nil
}

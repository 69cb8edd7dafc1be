// ABOUTME: MCP tools for note CRUD and search.
// ABOUTME: Validation and messages match the HTTP API.

package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/harper/notebox/internal/db"
	"github.com/harper/notebox/internal/models"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerTools() {
	s.server.AddTool(&mcp.Tool{
		Name:        "list_notes",
		Description: "List all notes, most recently updated first",
		InputSchema: json.RawMessage(`{"type": "object", "properties": {}}`),
	}, s.handleListNotes)

	s.server.AddTool(&mcp.Tool{
		Name:        "get_note",
		Description: "Get a note by ID",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"id": {"type": "integer", "description": "Note ID"}
			},
			"required": ["id"]
		}`),
	}, s.handleGetNote)

	s.server.AddTool(&mcp.Tool{
		Name:        "create_note",
		Description: "Create a new note with title and content",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"title": {"type": "string", "description": "Note title"},
				"content": {"type": "string", "description": "Note content (markdown)"}
			},
			"required": ["title", "content"]
		}`),
	}, s.handleCreateNote)

	s.server.AddTool(&mcp.Tool{
		Name:        "update_note",
		Description: "Update a note's title or content. Omitted fields are kept.",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"id": {"type": "integer", "description": "Note ID"},
				"title": {"type": "string", "description": "New title"},
				"content": {"type": "string", "description": "New content"}
			},
			"required": ["id"]
		}`),
	}, s.handleUpdateNote)

	s.server.AddTool(&mcp.Tool{
		Name:        "delete_note",
		Description: "Delete a note",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"id": {"type": "integer", "description": "Note ID"}
			},
			"required": ["id"]
		}`),
	}, s.handleDeleteNote)

	s.server.AddTool(&mcp.Tool{
		Name:        "search_notes",
		Description: "Case-insensitive substring search over titles and content",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"query": {"type": "string", "description": "Search text"}
			},
			"required": ["query"]
		}`),
	}, s.handleSearchNotes)
}

type idParams struct {
	ID models.NoteID `json:"id"`
}

func (s *Server) handleListNotes(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	notes, err := s.store.ListAll(ctx)
	if err != nil {
		return toolError("Failed to fetch notes: %v", err), nil
	}
	return toolJSON(notes)
}

func (s *Server) handleGetNote(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params idParams
	if err := decodeArgs(req, &params); err != nil {
		return toolError("Invalid note ID"), nil
	}

	note, err := s.store.GetByID(ctx, params.ID)
	if errors.Is(err, db.ErrNoteNotFound) {
		return toolError("Note not found"), nil
	}
	if err != nil {
		return toolError("Failed to fetch note: %v", err), nil
	}
	return toolJSON(note)
}

func (s *Server) handleCreateNote(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params struct {
		Title   string `json:"title"`
		Content string `json:"content"`
	}
	if err := decodeArgs(req, &params); err != nil {
		return toolError("Invalid request payload"), nil
	}
	if strings.TrimSpace(params.Title) == "" || strings.TrimSpace(params.Content) == "" {
		return toolError("Title and content are required"), nil
	}

	note, err := s.store.Create(ctx, params.Title, params.Content)
	if err != nil {
		return toolError("Failed to create note: %v", err), nil
	}
	return toolJSON(note)
}

func (s *Server) handleUpdateNote(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params struct {
		ID models.NoteID `json:"id"`
		models.NotePatch
	}
	if err := decodeArgs(req, &params); err != nil {
		return toolError("Invalid request payload"), nil
	}
	for _, field := range []*string{params.Title, params.Content} {
		if field != nil && strings.TrimSpace(*field) == "" {
			return toolError("Title and content cannot be empty"), nil
		}
	}

	note, err := s.store.Update(ctx, params.ID, params.NotePatch)
	if errors.Is(err, db.ErrNoteNotFound) {
		return toolError("Note not found"), nil
	}
	if err != nil {
		return toolError("Failed to update note: %v", err), nil
	}
	return toolJSON(note)
}

func (s *Server) handleDeleteNote(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params idParams
	if err := decodeArgs(req, &params); err != nil {
		return toolError("Invalid note ID"), nil
	}

	deleted, err := s.store.Delete(ctx, params.ID)
	if err != nil {
		return toolError("Failed to delete note: %v", err), nil
	}
	if !deleted {
		return toolError("Note not found"), nil
	}
	return toolText(fmt.Sprintf("Deleted note %s", params.ID)), nil
}

func (s *Server) handleSearchNotes(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params struct {
		Query string `json:"query"`
	}
	if err := decodeArgs(req, &params); err != nil {
		return toolError("Invalid request payload"), nil
	}

	var (
		notes []*models.Note
		err   error
	)
	if strings.TrimSpace(params.Query) == "" {
		notes, err = s.store.ListAll(ctx)
	} else {
		notes, err = s.store.Search(ctx, params.Query)
	}
	if err != nil {
		return toolError("Failed to search notes: %v", err), nil
	}
	return toolJSON(notes)
}

func decodeArgs(req *mcp.CallToolRequest, dst any) error {
	if req.Params == nil || len(req.Params.Arguments) == 0 {
		return nil
	}
	return json.Unmarshal(req.Params.Arguments, dst)
}

func toolText(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}
}

func toolJSON(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, err
	}
	return toolText(string(data)), nil
}

func toolError(format string, args ...any) *mcp.CallToolResult {
	res := toolText(fmt.Sprintf(format, args...))
	res.IsError = true
	return res
}

// ABOUTME: MCP prompts for common note-taking workflows.
// ABOUTME: Prompts steer the agent toward the notebox tools.

package mcp

import (
	"context"
	"errors"
	"fmt"

	"github.com/harper/notebox/internal/db"
	"github.com/harper/notebox/internal/models"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerPrompts() {
	s.server.AddPrompt(&mcp.Prompt{
		Name:        "create-meeting-notes",
		Description: "Create structured meeting notes with attendees, agenda, and action items",
		Arguments: []*mcp.PromptArgument{
			{
				Name:        "meeting_title",
				Description: "Title of the meeting",
				Required:    true,
			},
		},
	}, s.getMeetingNotesPrompt)

	s.server.AddPrompt(&mcp.Prompt{
		Name:        "summarize-note",
		Description: "Generate a summary of an existing note",
		Arguments: []*mcp.PromptArgument{
			{
				Name:        "note_id",
				Description: "ID of the note to summarize",
				Required:    true,
			},
		},
	}, s.getSummarizeNotePrompt)
}

func userPrompt(text string) *mcp.GetPromptResult {
	return &mcp.GetPromptResult{
		Messages: []*mcp.PromptMessage{
			{
				Role:    "user",
				Content: &mcp.TextContent{Text: text},
			},
		},
	}
}

func (s *Server) getMeetingNotesPrompt(ctx context.Context, req *mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	meetingTitle := req.Params.Arguments["meeting_title"]
	if meetingTitle == "" {
		meetingTitle = "Meeting"
	}

	return userPrompt(fmt.Sprintf(`Create meeting notes for: %s

Please structure the notes with the following sections:

## Attendees
- [List attendees]

## Agenda
1. [Topic 1]
2. [Topic 2]

## Discussion Notes
[Key points discussed]

## Action Items
- [ ] [Action 1] - @owner - Due: [date]

Use the create_note tool to save this note with the meeting title as its title.`, meetingTitle)), nil
}

func (s *Server) getSummarizeNotePrompt(ctx context.Context, req *mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	id, err := models.ParseNoteID(req.Params.Arguments["note_id"])
	if err != nil {
		return nil, fmt.Errorf("invalid note_id %q", req.Params.Arguments["note_id"])
	}

	note, err := s.store.GetByID(ctx, id)
	if errors.Is(err, db.ErrNoteNotFound) {
		return nil, fmt.Errorf("note %s not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get note: %w", err)
	}

	return userPrompt(fmt.Sprintf(`Summarize the following note in a few sentences, then list any action items it contains.

Title: %s

%s

If the summary should be kept, use the update_note tool on note %s to append it under a "## Summary" heading.`,
		note.Title, note.Content, note.ID)), nil
}

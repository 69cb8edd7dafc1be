// ABOUTME: HTTP client for a remote notebox server.
// ABOUTME: Implements db.NoteStore so the CLI can target a server instead of a local file.

// Package client talks to the notebox JSON API.
//
// [Client] mirrors the server routes one to one. A 404 from a note lookup
// surfaces as [db.ErrNoteNotFound]; any other non-2xx response becomes an
// [*APIError] carrying the status code and the server's error message.
package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/harper/notebox/internal/db"
	"github.com/harper/notebox/internal/models"
)

const defaultTimeout = 30 * time.Second

// APIError is a non-2xx response from the server.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("server returned %d", e.StatusCode)
	}
	return fmt.Sprintf("server returned %d: %s", e.StatusCode, e.Message)
}

type errorBody struct {
	Error string `json:"error"`
}

type Client struct {
	http *resty.Client
}

var _ db.NoteStore = (*Client)(nil)

// New returns a client for the server at baseURL, e.g. http://localhost:3000.
func New(baseURL string) *Client {
	return &Client{
		http: resty.New().
			SetBaseURL(baseURL).
			SetTimeout(defaultTimeout).
			SetHeader("Accept", "application/json"),
	}
}

func (c *Client) request(ctx context.Context) *resty.Request {
	return c.http.R().SetContext(ctx).SetError(&errorBody{})
}

func (c *Client) ListAll(ctx context.Context) ([]*models.Note, error) {
	var notes []*models.Note
	resp, err := c.request(ctx).SetResult(&notes).Get("/api/notes")
	if err := check(resp, err); err != nil {
		return nil, err
	}
	return nonNil(notes), nil
}

func (c *Client) GetByID(ctx context.Context, id models.NoteID) (*models.Note, error) {
	var note models.Note
	resp, err := c.request(ctx).
		SetPathParam("id", id.String()).
		SetResult(&note).
		Get("/api/notes/{id}")
	if err := check(resp, err); err != nil {
		return nil, err
	}
	return &note, nil
}

func (c *Client) Create(ctx context.Context, title, content string) (*models.Note, error) {
	var note models.Note
	resp, err := c.request(ctx).
		SetBody(map[string]string{"title": title, "content": content}).
		SetResult(&note).
		Post("/api/notes")
	if err := check(resp, err); err != nil {
		return nil, err
	}
	return &note, nil
}

func (c *Client) Update(ctx context.Context, id models.NoteID, patch models.NotePatch) (*models.Note, error) {
	var note models.Note
	resp, err := c.request(ctx).
		SetPathParam("id", id.String()).
		SetBody(patch).
		SetResult(&note).
		Put("/api/notes/{id}")
	if err := check(resp, err); err != nil {
		return nil, err
	}
	return &note, nil
}

// Delete reports false without error when the note did not exist.
func (c *Client) Delete(ctx context.Context, id models.NoteID) (bool, error) {
	resp, err := c.request(ctx).
		SetPathParam("id", id.String()).
		Delete("/api/notes/{id}")
	err = check(resp, err)
	if errors.Is(err, db.ErrNoteNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Search sends term as a single escaped path segment. Dots are escaped too so
// terms like "." or ".." are not read as relative path segments.
func (c *Client) Search(ctx context.Context, term string) ([]*models.Note, error) {
	var notes []*models.Note
	resp, err := c.request(ctx).
		SetRawPathParam("query", escapeSegment(term)).
		SetResult(&notes).
		Get("/api/notes/search/{query}")
	if err := check(resp, err); err != nil {
		return nil, err
	}
	return nonNil(notes), nil
}

// Ping calls the health endpoint.
func (c *Client) Ping(ctx context.Context) error {
	resp, err := c.request(ctx).Get("/api/health")
	return check(resp, err)
}

func check(resp *resty.Response, err error) error {
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	if !resp.IsError() {
		return nil
	}
	if resp.StatusCode() == http.StatusNotFound {
		if body, ok := resp.Error().(*errorBody); ok && body.Error == "Note not found" {
			return db.ErrNoteNotFound
		}
	}
	apiErr := &APIError{StatusCode: resp.StatusCode()}
	if body, ok := resp.Error().(*errorBody); ok {
		apiErr.Message = body.Error
	}
	return apiErr
}

func escapeSegment(s string) string {
	return strings.ReplaceAll(url.PathEscape(s), ".", "%2E")
}

func nonNil(notes []*models.Note) []*models.Note {
	if notes == nil {
		return []*models.Note{}
	}
	return notes
}

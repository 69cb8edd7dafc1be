// ABOUTME: Tests for the HTTP client against an in-process notebox server.
// ABOUTME: Verifies the client honours the same contract as the local store.

package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/harper/notebox/internal/api"
	"github.com/harper/notebox/internal/db"
	"github.com/harper/notebox/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T) *Client {
	t.Helper()
	store, err := db.OpenStore(filepath.Join(t.TempDir(), "client.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	srv := httptest.NewServer(api.NewServer(store).Handler())
	t.Cleanup(srv.Close)
	return New(srv.URL)
}

func strPtr(s string) *string { return &s }

func TestClientRoundTrip(t *testing.T) {
	ctx := context.Background()
	c := newTestClient(t)

	notes, err := c.ListAll(ctx)
	require.NoError(t, err)
	assert.NotNil(t, notes)
	assert.Empty(t, notes)

	created, err := c.Create(ctx, "Groceries", "milk, eggs")
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	got, err := c.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Groceries", got.Title)
	assert.True(t, got.CreatedAt.Equal(created.CreatedAt))

	updated, err := c.Update(ctx, created.ID, models.NotePatch{Content: strPtr("milk")})
	require.NoError(t, err)
	assert.Equal(t, "Groceries", updated.Title)
	assert.Equal(t, "milk", updated.Content)
	assert.True(t, updated.UpdatedAt.After(created.UpdatedAt))

	found, err := c.Search(ctx, "GROC")
	require.NoError(t, err)
	require.Len(t, found, 1)

	deleted, err := c.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = c.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestClientNotFound(t *testing.T) {
	ctx := context.Background()
	c := newTestClient(t)

	_, err := c.GetByID(ctx, 42)
	assert.True(t, errors.Is(err, db.ErrNoteNotFound), "got %v", err)

	_, err = c.Update(ctx, 42, models.NotePatch{Title: strPtr("x")})
	assert.True(t, errors.Is(err, db.ErrNoteNotFound), "got %v", err)
}

func TestClientValidationError(t *testing.T) {
	c := newTestClient(t)

	_, err := c.Create(context.Background(), "", "body")
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr), "got %v", err)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, "Title and content are required", apiErr.Message)
}

func TestClientSearchEscapesTerm(t *testing.T) {
	ctx := context.Background()
	c := newTestClient(t)

	_, err := c.Create(ctx, "50% off / today", "sale")
	require.NoError(t, err)
	_, err = c.Create(ctx, "other", "nothing")
	require.NoError(t, err)

	found, err := c.Search(ctx, "50% off / t")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "50% off / today", found[0].Title)

	all, err := c.Search(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestClientSearchDotTerms(t *testing.T) {
	ctx := context.Background()
	c := newTestClient(t)

	_, err := c.Create(ctx, "release v1.2", "single dot")
	require.NoError(t, err)
	_, err = c.Create(ctx, "wait", "and then...")
	require.NoError(t, err)
	_, err = c.Create(ctx, "plain", "nothing")
	require.NoError(t, err)

	found, err := c.Search(ctx, ".")
	require.NoError(t, err)
	assert.Len(t, found, 2)

	found, err = c.Search(ctx, "..")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "wait", found[0].Title)
}

func TestEscapeSegment(t *testing.T) {
	assert.Equal(t, "%2E%2E", escapeSegment(".."))
	assert.Equal(t, "a%2Fb%20c%25", escapeSegment("a/b c%"))
}

func TestClientPing(t *testing.T) {
	c := newTestClient(t)
	assert.NoError(t, c.Ping(context.Background()))
}

func TestClientUnreachable(t *testing.T) {
	c := New("http://127.0.0.1:1")
	_, err := c.ListAll(context.Background())
	assert.Error(t, err)
}

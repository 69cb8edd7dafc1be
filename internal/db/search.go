// ABOUTME: Substring search over note titles and content.
// ABOUTME: Case-insensitive LIKE matching with literal wildcards.

package db

import (
	"context"
	"fmt"
	"strings"

	"github.com/harper/notebox/internal/models"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// Search returns notes whose title or content contains term, most recently updated first.
// An empty term matches every note; callers decide whether that is what they want.
func (s *Store) Search(ctx context.Context, term string) ([]*models.Note, error) {
	pattern := "%" + likeEscaper.Replace(term) + "%"
	rows, err := s.conn.QueryContext(ctx,
		`SELECT `+noteColumns+` FROM notes
		 WHERE title LIKE ? ESCAPE '\' OR content LIKE ? ESCAPE '\'
		 ORDER BY updated_at DESC, id DESC`,
		pattern, pattern,
	)
	if err != nil {
		return nil, fmt.Errorf("search notes: %w", err)
	}
	return collectNotes(rows)
}

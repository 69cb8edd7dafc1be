// ABOUTME: Note model representing a titled text note with timestamps.
// ABOUTME: Provides the partial-update patch type and JSON shape helpers.

package models

import (
	"strconv"
	"time"
)

// NoteID is the store-assigned identifier. Zero means not yet persisted.
type NoteID int64

func (id NoteID) MarshalJSON() ([]byte, error) {
	if id == 0 {
		return []byte("null"), nil
	}
	return []byte(strconv.FormatInt(int64(id), 10)), nil
}

// UnmarshalJSON accepts a number, a quoted number or null.
func (id *NoteID) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "null" {
		*id = 0
		return nil
	}
	if unquoted, err := strconv.Unquote(s); err == nil {
		s = unquoted
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return err
	}
	*id = NoteID(n)
	return nil
}

func (id NoteID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

// ParseNoteID parses a path or argument segment into a NoteID.
func ParseNoteID(s string) (NoteID, error) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, err
	}
	return NoteID(n), nil
}

type Note struct {
	ID        NoteID    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewNote returns an unpersisted note. The store assigns ID and timestamps.
func NewNote(title, content string) *Note {
	return &Note{
		Title:   title,
		Content: content,
	}
}

// Persisted reports whether the store has assigned an ID.
func (n *Note) Persisted() bool {
	return n.ID != 0
}

// NotePatch carries the optional fields of an update. Nil keeps the stored value.
type NotePatch struct {
	Title   *string `json:"title,omitempty"`
	Content *string `json:"content,omitempty"`
}

// Apply copies the supplied fields onto n.
func (p NotePatch) Apply(n *Note) {
	if p.Title != nil {
		n.Title = *p.Title
	}
	if p.Content != nil {
		n.Content = *p.Content
	}
}

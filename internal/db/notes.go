// ABOUTME: Note store backed by SQLite.
// ABOUTME: Owns id and timestamp assignment for create, update and delete.

package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/harper/notebox/internal/models"
)

var ErrNoteNotFound = errors.New("note not found")

// NoteStore is the set of note operations shared by the local store and the API client.
type NoteStore interface {
	ListAll(ctx context.Context) ([]*models.Note, error)
	GetByID(ctx context.Context, id models.NoteID) (*models.Note, error)
	Create(ctx context.Context, title, content string) (*models.Note, error)
	Update(ctx context.Context, id models.NoteID, patch models.NotePatch) (*models.Note, error)
	Delete(ctx context.Context, id models.NoteID) (bool, error)
	Search(ctx context.Context, term string) ([]*models.Note, error)
}

const noteColumns = `id, title, content, created_at, updated_at`

// Store serializes writes with mu; each mutation also runs in its own transaction.
type Store struct {
	conn *sql.DB
	mu   sync.Mutex
	now  func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithClock replaces time.Now as the source of timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

func NewStore(conn *sql.DB, opts ...Option) *Store {
	s := &Store{conn: conn, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// OpenStore opens the database at path and wraps it in a Store.
func OpenStore(path string, opts ...Option) (*Store, error) {
	conn, err := Open(path)
	if err != nil {
		return nil, err
	}
	return NewStore(conn, opts...), nil
}

func (s *Store) Close() error {
	return s.conn.Close()
}

func (s *Store) Ping(ctx context.Context) error {
	return s.conn.PingContext(ctx)
}

func (s *Store) ListAll(ctx context.Context) ([]*models.Note, error) {
	rows, err := s.conn.QueryContext(ctx,
		`SELECT `+noteColumns+` FROM notes ORDER BY updated_at DESC, id DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	return collectNotes(rows)
}

func (s *Store) GetByID(ctx context.Context, id models.NoteID) (*models.Note, error) {
	note, err := scanNote(s.conn.QueryRowContext(ctx,
		`SELECT `+noteColumns+` FROM notes WHERE id = ?`, int64(id),
	))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNoteNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get note %d: %w", id, err)
	}
	return note, nil
}

func (s *Store) Create(ctx context.Context, title, content string) (*models.Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now().UnixNano()
	result, err := s.conn.ExecContext(ctx,
		`INSERT INTO notes (title, content, created_at, updated_at) VALUES (?, ?, ?, ?)`,
		title, content, now, now,
	)
	if err != nil {
		return nil, fmt.Errorf("create note: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("create note: %w", err)
	}

	return &models.Note{
		ID:        models.NoteID(id),
		Title:     title,
		Content:   content,
		CreatedAt: fromNanos(now),
		UpdatedAt: fromNanos(now),
	}, nil
}

// Update applies patch and always resets updated_at, even when no field changes.
// The new updated_at is strictly later than the previous one.
func (s *Store) Update(ctx context.Context, id models.NoteID, patch models.NotePatch) (*models.Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.conn.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin update: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	note, err := scanNote(tx.QueryRowContext(ctx,
		`SELECT `+noteColumns+` FROM notes WHERE id = ?`, int64(id),
	))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNoteNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load note %d: %w", id, err)
	}

	patch.Apply(note)
	updated := s.now().UnixNano()
	if prev := note.UpdatedAt.UnixNano(); updated <= prev {
		updated = prev + 1
	}

	if _, err := tx.ExecContext(ctx,
		`UPDATE notes SET title = ?, content = ?, updated_at = ? WHERE id = ?`,
		note.Title, note.Content, updated, int64(id),
	); err != nil {
		return nil, fmt.Errorf("update note %d: %w", id, err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit update: %w", err)
	}

	note.UpdatedAt = fromNanos(updated)
	return note, nil
}

func (s *Store) Delete(ctx context.Context, id models.NoteID) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	result, err := s.conn.ExecContext(ctx, `DELETE FROM notes WHERE id = ?`, int64(id))
	if err != nil {
		return false, fmt.Errorf("delete note %d: %w", id, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanNote(row rowScanner) (*models.Note, error) {
	var (
		note             models.Note
		id               int64
		created, updated int64
	)
	if err := row.Scan(&id, &note.Title, &note.Content, &created, &updated); err != nil {
		return nil, err
	}
	note.ID = models.NoteID(id)
	note.CreatedAt = fromNanos(created)
	note.UpdatedAt = fromNanos(updated)
	return &note, nil
}

func collectNotes(rows *sql.Rows) ([]*models.Note, error) {
	defer func() { _ = rows.Close() }()

	notes := []*models.Note{}
	for rows.Next() {
		note, err := scanNote(rows)
		if err != nil {
			return nil, err
		}
		notes = append(notes, note)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return notes, nil
}

func fromNanos(ns int64) time.Time {
	return time.Unix(0, ns).UTC()
}

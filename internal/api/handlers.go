// ABOUTME: Note handlers for the JSON API.
// ABOUTME: Validate input, call the store and map outcomes to status codes.

package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"github.com/harper/notebox/internal/db"
	"github.com/harper/notebox/internal/models"
)

type createNoteRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

func (s *Server) handleListNotes(w http.ResponseWriter, r *http.Request) {
	notes, err := s.store.ListAll(r.Context())
	if err != nil {
		s.serverError(w, r, err, "Failed to fetch notes")
		return
	}
	respondJSON(w, http.StatusOK, notes)
}

func (s *Server) handleGetNote(w http.ResponseWriter, r *http.Request) {
	id, ok := parseNoteID(w, r)
	if !ok {
		return
	}

	note, err := s.store.GetByID(r.Context(), id)
	if errors.Is(err, db.ErrNoteNotFound) {
		respondError(w, http.StatusNotFound, "Note not found")
		return
	}
	if err != nil {
		s.serverError(w, r, err, "Failed to fetch note")
		return
	}
	respondJSON(w, http.StatusOK, note)
}

func (s *Server) handleCreateNote(w http.ResponseWriter, r *http.Request) {
	var req createNoteRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Content) == "" {
		respondError(w, http.StatusBadRequest, "Title and content are required")
		return
	}

	note, err := s.store.Create(r.Context(), req.Title, req.Content)
	if err != nil {
		s.serverError(w, r, err, "Failed to create note")
		return
	}
	respondJSON(w, http.StatusCreated, note)
}

func (s *Server) handleUpdateNote(w http.ResponseWriter, r *http.Request) {
	id, ok := parseNoteID(w, r)
	if !ok {
		return
	}

	var patch models.NotePatch
	if err := decodeJSON(w, r, &patch); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if blank(patch.Title) || blank(patch.Content) {
		respondError(w, http.StatusBadRequest, "Title and content cannot be empty")
		return
	}

	note, err := s.store.Update(r.Context(), id, patch)
	if errors.Is(err, db.ErrNoteNotFound) {
		respondError(w, http.StatusNotFound, "Note not found")
		return
	}
	if err != nil {
		s.serverError(w, r, err, "Failed to update note")
		return
	}
	respondJSON(w, http.StatusOK, note)
}

func (s *Server) handleDeleteNote(w http.ResponseWriter, r *http.Request) {
	id, ok := parseNoteID(w, r)
	if !ok {
		return
	}

	deleted, err := s.store.Delete(r.Context(), id)
	if err != nil {
		s.serverError(w, r, err, "Failed to delete note")
		return
	}
	if !deleted {
		respondError(w, http.StatusNotFound, "Note not found")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Note deleted successfully"})
}

// handleSearchNotes treats a blank query as a request for every note.
func (s *Server) handleSearchNotes(w http.ResponseWriter, r *http.Request) {
	term, err := url.PathUnescape(mux.Vars(r)["query"])
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid search query")
		return
	}

	var notes []*models.Note
	if strings.TrimSpace(term) == "" {
		notes, err = s.store.ListAll(r.Context())
	} else {
		notes, err = s.store.Search(r.Context(), term)
	}
	if err != nil {
		s.serverError(w, r, err, "Failed to search notes")
		return
	}
	respondJSON(w, http.StatusOK, notes)
}

type pinger interface {
	Ping(ctx context.Context) error
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if p, ok := s.store.(pinger); ok {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := p.Ping(ctx); err != nil {
			s.requestLogger(r).Warn().Err(err).Msg("health check failed")
			respondJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
			return
		}
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

// parseNoteID writes a 400 and returns false when the {id} segment is not an integer.
func parseNoteID(w http.ResponseWriter, r *http.Request) (models.NoteID, bool) {
	id, err := models.ParseNoteID(mux.Vars(r)["id"])
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid note ID")
		return 0, false
	}
	return id, true
}

var errTrailingData = errors.New("unexpected data after JSON value")

// decodeJSON treats an empty body as an empty object and rejects anything
// after the first JSON value.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return err
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return errTrailingData
	}
	return nil
}

func blank(s *string) bool {
	return s != nil && strings.TrimSpace(*s) == ""
}

// serverError logs the underlying failure and sends a generic 500.
func (s *Server) serverError(w http.ResponseWriter, r *http.Request, err error, message string) {
	s.requestLogger(r).Error().Err(err).Msg(message)
	respondError(w, http.StatusInternalServerError, message)
}

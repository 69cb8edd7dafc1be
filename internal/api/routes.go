// ABOUTME: Ordered route table for the notebox HTTP surface.
// ABOUTME: Literal paths are registered before parameterized ones.

package api

import (
	"net/http"
)

type route struct {
	name    string
	method  string
	path    string
	handler http.Handler
}

// routes is evaluated in order; the first match wins.
func (s *Server) routes() []route {
	return []route{
		{"listNotes", http.MethodGet, "/api/notes", http.HandlerFunc(s.handleListNotes)},
		{"createNote", http.MethodPost, "/api/notes", http.HandlerFunc(s.handleCreateNote)},
		{"searchNotes", http.MethodGet, "/api/notes/search/{query:.*}", http.HandlerFunc(s.handleSearchNotes)},
		{"getNote", http.MethodGet, "/api/notes/{id}", http.HandlerFunc(s.handleGetNote)},
		{"updateNote", http.MethodPut, "/api/notes/{id}", http.HandlerFunc(s.handleUpdateNote)},
		{"deleteNote", http.MethodDelete, "/api/notes/{id}", http.HandlerFunc(s.handleDeleteNote)},

		{"apiHealth", http.MethodGet, "/api/health", http.HandlerFunc(s.handleHealth)},
		{"health", http.MethodGet, "/health", http.HandlerFunc(s.handleHealth)},
		{"metrics", http.MethodGet, "/metrics", s.metrics.handler()},

		{"index", http.MethodGet, "/", http.HandlerFunc(handleIndex)},
		{"script", http.MethodGet, "/app.js", http.HandlerFunc(handleScript)},
	}
}

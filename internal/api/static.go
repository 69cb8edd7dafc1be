// ABOUTME: Serves the embedded single-page web UI.
// ABOUTME: The page talks to the JSON API with fetch.

package api

import (
	_ "embed"
	"net/http"
)

var (
	//go:embed web/index.html
	indexHTML []byte

	//go:embed web/app.js
	appJS []byte
)

func handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(indexHTML)
}

func handleScript(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/javascript; charset=utf-8")
	_, _ = w.Write(appJS)
}

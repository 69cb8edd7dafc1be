// ABOUTME: Integration tests for notebox CLI commands.
// ABOUTME: Builds the binary and runs full workflows against local and remote stores.

package main

import (
	"encoding/json"
	"net/http/httptest"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/harper/notebox/internal/api"
	"github.com/harper/notebox/internal/db"
)

var noteboxBin string

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "notebox-bin-*")
	if err != nil {
		panic(err)
	}
	noteboxBin = filepath.Join(dir, "notebox")

	cmd := exec.Command("go", "build", "-o", noteboxBin, ".")
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		panic(err)
	}

	code := m.Run()
	_ = os.RemoveAll(dir)
	os.Exit(code)
}

func runNotebox(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := exec.Command(noteboxBin, args...) //nolint:gosec // Running our own test binary is expected in integration tests
	cmd.Dir = t.TempDir()
	cmd.Env = append(os.Environ(), "NO_COLOR=1", "EDITOR=true")
	out, err := cmd.CombinedOutput()
	return string(out), err
}

var createdID = regexp.MustCompile(`Created note (\d+)`)

func addNote(t *testing.T, flags []string, title, content string) string {
	t.Helper()
	args := append(append([]string{}, flags...), "add", title, "--content", content)
	out, err := runNotebox(t, args...)
	if err != nil {
		t.Fatalf("add failed: %v\n%s", err, out)
	}
	m := createdID.FindStringSubmatch(out)
	if m == nil {
		t.Fatalf("expected 'Created note <id>' in output: %s", out)
	}
	return m[1]
}

func TestAddListShowDelete(t *testing.T) {
	local := []string{"--db", filepath.Join(t.TempDir(), "test.db")}

	id := addNote(t, local, "Test Note", "Test content here")

	out, err := runNotebox(t, append(local, "list")...)
	if err != nil {
		t.Fatalf("list failed: %v\n%s", err, out)
	}
	if !strings.Contains(out, "Test Note") {
		t.Errorf("expected 'Test Note' in list: %s", out)
	}

	out, err = runNotebox(t, append(local, "show", id)...)
	if err != nil {
		t.Fatalf("show failed: %v\n%s", err, out)
	}
	if !strings.Contains(out, "Test content") {
		t.Errorf("expected 'Test content' in show: %s", out)
	}

	out, err = runNotebox(t, append(local, "edit", id, "--title", "Renamed")...)
	if err != nil {
		t.Fatalf("edit failed: %v\n%s", err, out)
	}
	out, _ = runNotebox(t, append(local, "show", id)...)
	if !strings.Contains(out, "Renamed") {
		t.Errorf("expected renamed title in show: %s", out)
	}

	out, err = runNotebox(t, append(local, "rm", id, "--force")...)
	if err != nil {
		t.Fatalf("rm failed: %v\n%s", err, out)
	}
	if !strings.Contains(out, "Deleted") {
		t.Errorf("expected 'Deleted' in output: %s", out)
	}

	out, err = runNotebox(t, append(local, "show", id)...)
	if err == nil {
		t.Errorf("expected show of deleted note to fail: %s", out)
	}
}

func TestAddRejectsEmptyContent(t *testing.T) {
	local := []string{"--db", filepath.Join(t.TempDir(), "test.db")}

	out, err := runNotebox(t, append(local, "add", "Empty", "--content", "   ")...)
	if err == nil {
		t.Fatalf("expected add to fail: %s", out)
	}

	out, _ = runNotebox(t, append(local, "list")...)
	if !strings.Contains(out, "No notes found") {
		t.Errorf("expected no notes after rejected add: %s", out)
	}
}

func TestSearch(t *testing.T) {
	local := []string{"--db", filepath.Join(t.TempDir(), "test.db")}

	addNote(t, local, "Go Programming", "Learn about goroutines")
	addNote(t, local, "Cooking", "How to make pasta")

	out, _ := runNotebox(t, append(local, "search", "GOROUTINES")...)
	if !strings.Contains(out, "Go Programming") {
		t.Errorf("expected 'Go Programming' in search: %s", out)
	}
	if strings.Contains(out, "Cooking") {
		t.Errorf("did not expect 'Cooking' in search: %s", out)
	}
}

func TestExportImport(t *testing.T) {
	src := []string{"--db", filepath.Join(t.TempDir(), "src.db")}
	dst := []string{"--db", filepath.Join(t.TempDir(), "dst.db")}
	archivePath := filepath.Join(t.TempDir(), "notes.json")

	addNote(t, src, "Keep me", "archived body")

	out, err := runNotebox(t, append(src, "export", "--output", archivePath)...)
	if err != nil {
		t.Fatalf("export failed: %v\n%s", err, out)
	}
	data, err := os.ReadFile(archivePath)
	if err != nil {
		t.Fatal(err)
	}
	if !json.Valid(data) {
		t.Fatalf("export is not valid JSON: %s", data)
	}

	out, err = runNotebox(t, append(dst, "import", archivePath)...)
	if err != nil {
		t.Fatalf("import failed: %v\n%s", err, out)
	}
	if !strings.Contains(out, "Imported 1 notes") {
		t.Errorf("expected import count: %s", out)
	}

	out, _ = runNotebox(t, append(dst, "list")...)
	if !strings.Contains(out, "Keep me") {
		t.Errorf("expected imported note in list: %s", out)
	}
}

func TestRemoteServer(t *testing.T) {
	store, err := db.OpenStore(filepath.Join(t.TempDir(), "remote.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = store.Close() })
	srv := httptest.NewServer(api.NewServer(store).Handler())
	t.Cleanup(srv.Close)

	remote := []string{"--server", srv.URL}
	id := addNote(t, remote, "Remote Note", "over the wire")

	out, err := runNotebox(t, append(remote, "show", id)...)
	if err != nil {
		t.Fatalf("show failed: %v\n%s", err, out)
	}
	if !strings.Contains(out, "over the wire") {
		t.Errorf("expected content in show: %s", out)
	}

	out, err = runNotebox(t, append(remote, "rm", id, "--force")...)
	if err != nil {
		t.Fatalf("rm failed: %v\n%s", err, out)
	}

	notes, err := store.ListAll(t.Context())
	if err != nil {
		t.Fatal(err)
	}
	if len(notes) != 0 {
		t.Errorf("expected remote store to be empty, got %d notes", len(notes))
	}
}

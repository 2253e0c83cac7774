package quill

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeContent(t *testing.T, dir, name, body string) {
	t.Helper()
	path := filepath.Join(dir, filepath.FromSlash(name))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestSourceLoad(t *testing.T) {
	dir := t.TempDir()
	writeContent(t, dir, "first.md", "---\ntitle: First\ndate: 2023-01-01\n---\nbody\n")
	writeContent(t, dir, "nested/second.md", "---\ntitle: Second\ndate: 2023-01-02\n---\nbody\n")
	writeContent(t, dir, "notes.txt", "not content")
	writeContent(t, dir, "wip.md", "---\ntitle: WIP\ndate: 2023-01-03\ndraft: true\n---\nbody\n")

	src := &Source{Dir: dir}
	items, err := src.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("Load returned %d items, want 2 (drafts and non-markdown excluded)", len(items))
	}

	src.IncludeDrafts = true
	items, err = src.Load()
	if err != nil {
		t.Fatalf("Load(drafts): %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("Load with drafts returned %d items, want 3", len(items))
	}
}

func TestSourceLoadNamesBrokenFile(t *testing.T) {
	dir := t.TempDir()
	writeContent(t, dir, "good.md", "---\ntitle: Good\ndate: 2023-01-01\n---\nbody\n")
	writeContent(t, dir, "bad.md", "---\ntitle: Bad\ndate: not-a-date\n---\nbody\n")

	src := &Source{Dir: dir}
	_, err := src.Load()
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("error = %v, want *ValidationError", err)
	}
	if ve.File != "bad.md" {
		t.Errorf("File = %q, error must name the broken file", ve.File)
	}
}

func TestSourceLoadSlugFromNestedPath(t *testing.T) {
	dir := t.TempDir()
	writeContent(t, dir, "2023/06/My Post.md", "---\ntitle: My Post\ndate: 2023-06-16\n---\nbody\n")

	src := &Source{Dir: dir}
	items, err := src.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if items[0].Slug != "my-post" {
		t.Errorf("Slug = %q, want slug from file basename", items[0].Slug)
	}
}

package quill

import (
	"path/filepath"
	"testing"
)

func openTestCache(t *testing.T) *RenderCache {
	t.Helper()
	c, err := OpenRenderCache(filepath.Join(t.TempDir(), "render.db"))
	if err != nil {
		t.Fatalf("OpenRenderCache: %v", err)
	}
	t.Cleanup(func() { c.Close() })
	return c
}

func TestRenderCachePutGet(t *testing.T) {
	c := openTestCache(t)

	key := ContentKey("# Hello")
	if _, ok, err := c.Get(key); err != nil || ok {
		t.Fatalf("Get(miss) = ok=%v err=%v, want miss", ok, err)
	}

	if err := c.Put(key, "<h1>Hello</h1>"); err != nil {
		t.Fatalf("Put: %v", err)
	}
	html, ok, err := c.Get(key)
	if err != nil || !ok {
		t.Fatalf("Get(hit) = ok=%v err=%v", ok, err)
	}
	if html != "<h1>Hello</h1>" {
		t.Errorf("Get = %q", html)
	}

	// Put on an existing key replaces.
	if err := c.Put(key, "<h1>Hi</h1>"); err != nil {
		t.Fatalf("Put(replace): %v", err)
	}
	html, _, _ = c.Get(key)
	if html != "<h1>Hi</h1>" {
		t.Errorf("Get after replace = %q", html)
	}
}

func TestRenderCachePrune(t *testing.T) {
	c := openTestCache(t)

	keep := ContentKey("keep")
	drop := ContentKey("drop")
	if err := c.Put(keep, "a"); err != nil {
		t.Fatal(err)
	}
	if err := c.Put(drop, "b"); err != nil {
		t.Fatal(err)
	}

	if err := c.Prune(map[string]bool{keep: true}); err != nil {
		t.Fatalf("Prune: %v", err)
	}
	if _, ok, _ := c.Get(keep); !ok {
		t.Error("live key was pruned")
	}
	if _, ok, _ := c.Get(drop); ok {
		t.Error("stale key survived prune")
	}

	// An empty live set clears everything.
	if err := c.Prune(map[string]bool{}); err != nil {
		t.Fatalf("Prune(empty): %v", err)
	}
	if _, ok, _ := c.Get(keep); ok {
		t.Error("key survived full prune")
	}
}

func TestContentKey(t *testing.T) {
	a := ContentKey("body")
	b := ContentKey("body")
	if a != b {
		t.Error("same body must yield the same key")
	}
	if a == ContentKey("other body") {
		t.Error("different bodies must yield different keys")
	}
	if len(a) != 64 {
		t.Errorf("key length = %d, want 64 hex chars", len(a))
	}
}

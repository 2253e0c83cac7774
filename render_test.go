package quill

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func buildTestSite(t *testing.T, paginate, posts int) (string, *BuildResult) {
	t.Helper()

	contentDir := t.TempDir()
	outDir := t.TempDir()
	for i := 0; i < posts; i++ {
		body := fmt.Sprintf(`---
title: Post %02d
date: 2023-01-%02d
description: Number %d
tags:
  - go
---
Body of post %d with **bold** text.
`, i, i+1, i, i)
		writeContent(t, contentDir, fmt.Sprintf("post-%02d.md", i), body)
	}

	cfg, err := ParseConfig([]byte(fmt.Sprintf(`
baseURL: https://example.com/
title: Test Site
paginate: %d
menu:
  main:
    - {name: Home, url: /, weight: 1}
social:
  - {name: GitHub, icon: github, url: https://github.com/}
`, paginate)))
	if err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}

	app := New(cfg,
		WithContentDir(contentDir),
		WithStaticDir(filepath.Join(contentDir, "static")), // absent, skipped
		WithOutputDir(outDir),
		WithCachePath(filepath.Join(t.TempDir(), "render.db")),
	)
	res, err := app.Build(context.Background())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return outDir, res
}

func readOutput(t *testing.T, outDir, rel string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(outDir, filepath.FromSlash(rel)))
	if err != nil {
		t.Fatalf("expected output file %s: %v", rel, err)
	}
	return string(data)
}

func TestBuildOutputs(t *testing.T) {
	outDir, res := buildTestSite(t, 5, 12)

	if res.Posts != 12 {
		t.Errorf("BuildResult.Posts = %d, want 12", res.Posts)
	}

	for _, rel := range []string{
		"index.html",
		"page/2/index.html",
		"page/3/index.html",
		"posts/post-00/index.html",
		"posts/post-11/index.html",
		"tags/index.html",
		"tags/go/index.html",
		"404.html",
		"robots.txt",
		"feed.xml",
		"sitemap.xml",
		"assets/style.css",
	} {
		if _, err := os.Stat(filepath.Join(outDir, filepath.FromSlash(rel))); err != nil {
			t.Errorf("missing output file %s", rel)
		}
	}

	// ceil(12/5) = 3 listing pages; a fourth must not exist.
	if _, err := os.Stat(filepath.Join(outDir, "page", "4")); !os.IsNotExist(err) {
		t.Error("page/4 exists, pagination produced too many pages")
	}
}

func TestBuildFrontPageOrdering(t *testing.T) {
	outDir, _ := buildTestSite(t, 5, 12)

	home := readOutput(t, outDir, "index.html")
	newest := strings.Index(home, "Post 11")
	older := strings.Index(home, "Post 07")
	if newest < 0 || older < 0 {
		t.Fatal("front page missing expected posts")
	}
	if newest > older {
		t.Error("front page not in newest-first order")
	}
	if strings.Contains(home, "Post 06") {
		t.Error("front page shows posts beyond the page size")
	}
	if !strings.Contains(home, "Page 1 of 3") {
		t.Error("front page missing pagination state")
	}
	if !strings.Contains(home, `href="/page/2/"`) {
		t.Error("front page missing link to page 2")
	}
}

func TestBuildPostPage(t *testing.T) {
	outDir, _ := buildTestSite(t, 5, 3)

	post := readOutput(t, outDir, "posts/post-00/index.html")
	if !strings.Contains(post, "<strong>bold</strong>") {
		t.Error("markdown body not rendered")
	}
	if !strings.Contains(post, `href="/tags/go/"`) {
		t.Error("post page missing tag link")
	}
	if !strings.Contains(post, `rel="canonical" href="https://example.com/posts/post-00/"`) {
		t.Error("post page missing canonical URL")
	}
}

func TestBuildFeed(t *testing.T) {
	outDir, _ := buildTestSite(t, 5, 3)

	feed := readOutput(t, outDir, "feed.xml")
	if !strings.Contains(feed, `<rss version="2.0">`) {
		t.Error("feed is not RSS 2.0")
	}
	if !strings.Contains(feed, "https://example.com/posts/post-02/") {
		t.Error("feed missing post link")
	}
	if strings.Index(feed, "Post 02") > strings.Index(feed, "Post 00") {
		t.Error("feed not newest-first")
	}
}

func TestBuildSitemap(t *testing.T) {
	outDir, _ := buildTestSite(t, 5, 12)

	sitemap := readOutput(t, outDir, "sitemap.xml")
	for _, loc := range []string{
		"https://example.com/page/2/",
		"https://example.com/posts/post-00/",
		"https://example.com/tags/",
		"https://example.com/tags/go/",
	} {
		if !strings.Contains(sitemap, loc) {
			t.Errorf("sitemap missing %s", loc)
		}
	}
}

func TestBuildRobots(t *testing.T) {
	outDir, _ := buildTestSite(t, 5, 1)

	robots := readOutput(t, outDir, "robots.txt")
	if !strings.Contains(robots, "Sitemap: https://example.com/sitemap.xml") {
		t.Errorf("robots.txt = %q", robots)
	}
}

func TestBuildTagPages(t *testing.T) {
	outDir, _ := buildTestSite(t, 5, 12)

	index := readOutput(t, outDir, "tags/index.html")
	if !strings.Contains(index, `href="/tags/go/"`) {
		t.Error("tag index missing tag link")
	}
	if !strings.Contains(index, ">12</span>") {
		t.Error("tag index missing post count")
	}

	listing := readOutput(t, outDir, "tags/go/index.html")
	if !strings.Contains(listing, "<h1>Go</h1>") {
		t.Error("tag listing missing heading")
	}
	// 12 tagged posts at 5 per page paginate like any listing.
	if _, err := os.Stat(filepath.Join(outDir, "tags", "go", "page", "3", "index.html")); err != nil {
		t.Error("tag listing missing page 3")
	}
}

func TestBuildFailsOnBrokenContent(t *testing.T) {
	contentDir := t.TempDir()
	writeContent(t, contentDir, "bad.md", "---\ntitle: Bad\n---\nno date\n")

	cfg := testConfig(10)
	cfg.Theme = "paper"
	app := New(cfg,
		WithContentDir(contentDir),
		WithOutputDir(t.TempDir()),
		WithCachePath(filepath.Join(t.TempDir(), "render.db")),
	)
	if _, err := app.Build(context.Background()); err == nil {
		t.Fatal("Build must fail when any content file is invalid")
	}
}

func TestInstallThemeUnknown(t *testing.T) {
	err := InstallTheme("neon", t.TempDir())
	if err == nil {
		t.Fatal("unknown theme must fail")
	}
	ce, ok := err.(*ConfigError)
	if !ok {
		t.Fatalf("error = %T, want *ConfigError", err)
	}
	if ce.Field != "theme" {
		t.Errorf("Field = %q, want theme", ce.Field)
	}
}

func TestInstallTheme(t *testing.T) {
	outDir := t.TempDir()
	if err := InstallTheme("ink", outDir); err != nil {
		t.Fatalf("InstallTheme: %v", err)
	}
	if _, err := os.Stat(filepath.Join(outDir, "assets", "style.css")); err != nil {
		t.Error("theme stylesheet not installed")
	}
}

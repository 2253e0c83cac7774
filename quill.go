// Package quill is a markdown site engine built with Go, Echo, and templ.
// It parses front-matter content files and a YAML configuration document,
// then renders a static site: paginated listings, posts, tag pages, an RSS
// feed, and a sitemap, with a live-reloading preview server for authoring.
//
// Users can replace any of the built-in templates via the ViewFuncs struct;
// quill handles parsing, validation, ordering, and output.
package quill

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/a-h/templ"

	"github.com/quillpress/quill/views"
)

// ViewFuncs holds the templ components the engine calls when rendering
// pages. This is the inversion-of-control mechanism that lets embedders
// own and customize all templates; DefaultViews supplies the built-ins.
type ViewFuncs struct {
	Home     func(site views.Site, listing views.Listing) templ.Component
	Post     func(site views.Site, post views.Post, related []views.Post) templ.Component
	TagIndex func(site views.Site, tags []views.TagCount) templ.Component
	NotFound func(site views.Site) templ.Component
}

// DefaultViews returns the built-in templates.
func DefaultViews() ViewFuncs {
	return ViewFuncs{
		Home:     views.Home,
		Post:     views.PostPage,
		TagIndex: views.TagIndex,
		NotFound: views.NotFound,
	}
}

// App is the central quill application. It wires together the source
// scanner, site model, render cache, and templates.
type App struct {
	Config SiteConfig
	Views  ViewFuncs

	contentDir string
	staticDir  string
	outputDir  string
	cachePath  string
	drafts     bool
}

// Option configures additional App behavior.
type Option func(*App)

// WithContentDir sets the directory scanned for markdown content (default "content").
func WithContentDir(dir string) Option {
	return func(a *App) { a.contentDir = dir }
}

// WithStaticDir sets the directory of user-owned static assets (default "static").
func WithStaticDir(dir string) Option {
	return func(a *App) { a.staticDir = dir }
}

// WithOutputDir sets the directory the site is rendered into (default "public").
func WithOutputDir(dir string) Option {
	return func(a *App) { a.outputDir = dir }
}

// WithCachePath sets the render cache location (default "data/render.db").
func WithCachePath(path string) Option {
	return func(a *App) { a.cachePath = path }
}

// WithDrafts includes draft content in the build.
func WithDrafts(include bool) Option {
	return func(a *App) { a.drafts = include }
}

// WithViews replaces the built-in templates.
func WithViews(v ViewFuncs) Option {
	return func(a *App) { a.Views = v }
}

// New creates a quill App for an already-validated configuration.
func New(cfg SiteConfig, opts ...Option) *App {
	a := &App{
		Config:     cfg,
		Views:      DefaultViews(),
		contentDir: "content",
		staticDir:  "static",
		outputDir:  "public",
		cachePath:  filepath.Join("data", "render.db"),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// BuildResult summarizes one completed build.
type BuildResult struct {
	Posts    int
	Files    int
	Duration time.Duration
}

// Build renders the whole site into the output directory: every post, the
// paginated listings, taxonomy pages, feeds, theme assets, and static
// files. Any load-time error (ParseError, ValidationError, ConfigError)
// aborts the build before a single page is written, so a broken site is
// never partially published.
func (a *App) Build(ctx context.Context) (*BuildResult, error) {
	start := time.Now()

	src := &Source{Dir: a.contentDir, IncludeDrafts: a.drafts}
	items, err := src.Load()
	if err != nil {
		return nil, err
	}

	site, err := NewSite(a.Config, items)
	if err != nil {
		return nil, err
	}

	cache, err := OpenRenderCache(a.cachePath)
	if err != nil {
		return nil, fmt.Errorf("quill: open render cache: %w", err)
	}
	defer cache.Close()

	r := &renderer{app: a, site: site, cache: cache}
	if err := r.renderAll(ctx); err != nil {
		return nil, err
	}

	if err := InstallTheme(a.Config.Theme, a.outputDir); err != nil {
		return nil, err
	}
	if err := CopyStatic(a.staticDir, a.outputDir); err != nil {
		return nil, fmt.Errorf("quill: copy static assets: %w", err)
	}

	return &BuildResult{
		Posts:    len(site.Posts),
		Files:    r.written,
		Duration: time.Since(start),
	}, nil
}

// EnvOr returns the value of the environment variable key, or fallback if empty.
func EnvOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// MustEnv returns the value of the environment variable key, or fatally exits if empty.
func MustEnv(key string) string {
	v := os.Getenv(key)
	if v == "" {
		log.Fatalf("quill: required environment variable %s is not set", key)
	}
	return v
}

package quill

import (
	"context"
	"errors"
	"io/fs"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// Serve builds the site, then serves the output directory on addr while
// watching the content and static directories. Edits trigger a debounced
// rebuild, so a burst of editor writes produces a single build.
func (a *App) Serve(ctx context.Context, addr string) error {
	if _, err := a.Build(ctx); err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := watchRecursive(watcher, a.contentDir); err != nil {
		return err
	}
	if err := watchRecursive(watcher, a.staticDir); err != nil {
		return err
	}

	rebuild := NewDebouncer(500*time.Millisecond, func() {
		res, err := a.Build(ctx)
		if err != nil {
			log.Printf("quill: rebuild failed: %v", err)
			return
		}
		log.Printf("quill: rebuilt %d posts, %d files in %s", res.Posts, res.Files, res.Duration)
	})
	defer rebuild.Stop()

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-watcher.Events:
				if !ok {
					return
				}
				// New subdirectories need their own watch.
				if ev.Op.Has(fsnotify.Create) {
					if info, err := os.Stat(ev.Name); err == nil && info.IsDir() {
						watcher.Add(ev.Name)
					}
				}
				rebuild.Trigger()
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.Printf("quill: watch error: %v", err)
			}
		}
	}()

	e := a.previewServer()
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		e.Shutdown(shutdownCtx)
	}()

	log.Printf("quill: preview server listening on %s", addr)
	if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (a *App) previewServer() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.HTTPErrorHandler = a.previewErrorHandler

	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogMethod: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			log.Printf("%s %s -> %d", v.Method, v.URI, v.Status)
			return nil
		},
	}))

	e.Use(middleware.Recover())

	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{
		Level: 5,
	}))

	e.Use(middleware.SecureWithConfig(middleware.SecureConfig{
		XSSProtection:      "1; mode=block",
		ContentTypeNosniff: "nosniff",
		XFrameOptions:      "DENY",
		ReferrerPolicy:     "strict-origin-when-cross-origin",
	}))

	// Previews must never be cached; the site rebuilds under the browser.
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Response().Header().Set("Cache-Control", "no-store")
			return next(c)
		}
	})

	e.Static("/", a.outputDir)

	return e
}

// previewErrorHandler serves the rendered 404 page for missing paths.
func (a *App) previewErrorHandler(err error, c echo.Context) {
	code := http.StatusInternalServerError
	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
	}
	if c.Response().Committed {
		return
	}
	if code == http.StatusNotFound {
		if body, readErr := os.ReadFile(filepath.Join(a.outputDir, "404.html")); readErr == nil {
			c.HTMLBlob(http.StatusNotFound, body)
			return
		}
	}
	c.String(code, http.StatusText(code))
}

// watchRecursive adds dir and every directory under it to the watcher.
// A missing directory is skipped rather than treated as an error.
func watchRecursive(w *fsnotify.Watcher, dir string) error {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return nil
	}
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return w.Add(path)
		}
		return nil
	})
}

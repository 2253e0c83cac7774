package quill

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

// RenderCache persists rendered HTML fragments between builds, keyed by a
// checksum of the source body. A cold cache produces byte-identical output;
// a warm one skips re-rendering unchanged items.
type RenderCache struct {
	db *sql.DB
}

// OpenRenderCache opens (or creates) the cache database at path, ensures
// the data directory exists, and bootstraps the schema.
func OpenRenderCache(path string) (*RenderCache, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// WAL so a watch-mode rebuild can read while the previous build's prune
	// finishes, busy_timeout so writers wait instead of failing, and
	// synchronous=NORMAL since losing a cache row only costs a re-render.
	if _, err := db.Exec(`
		PRAGMA journal_mode=WAL;
		PRAGMA busy_timeout=5000;
		PRAGMA synchronous=NORMAL;
	`); err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(4)
	c := &RenderCache{db: db}
	if err := c.ensureSchema(); err != nil {
		return nil, err
	}
	return c, nil
}

// Close closes the underlying database connection.
func (c *RenderCache) Close() error {
	return c.db.Close()
}

func (c *RenderCache) ensureSchema() error {
	_, err := c.db.Exec(`
CREATE TABLE IF NOT EXISTS fragments (
    key TEXT PRIMARY KEY,
    html TEXT NOT NULL,
    rendered_at TEXT NOT NULL
);
`)
	return err
}

// ContentKey derives the cache key for a content body.
func ContentKey(body string) string {
	sum := sha256.Sum256([]byte(body))
	return hex.EncodeToString(sum[:])
}

// Get returns the cached HTML for key, with ok reporting a hit.
func (c *RenderCache) Get(key string) (html string, ok bool, err error) {
	err = c.db.QueryRow(`SELECT html FROM fragments WHERE key = ?`, key).Scan(&html)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return html, true, nil
}

// Put upserts a rendered fragment.
func (c *RenderCache) Put(key, html string) error {
	_, err := c.db.Exec(`INSERT OR REPLACE INTO fragments (key, html, rendered_at) VALUES (?, ?, ?)`,
		key, html, time.Now().UTC().Format(time.RFC3339))
	return err
}

// Prune deletes every fragment whose key is not in live, dropping rows for
// content that was edited or removed since the previous build.
func (c *RenderCache) Prune(live map[string]bool) error {
	if len(live) == 0 {
		_, err := c.db.Exec(`DELETE FROM fragments`)
		return err
	}
	keys := make([]string, 0, len(live))
	args := make([]any, 0, len(live))
	for k := range live {
		keys = append(keys, "?")
		args = append(args, k)
	}
	_, err := c.db.Exec(`DELETE FROM fragments WHERE key NOT IN (`+strings.Join(keys, ",")+`)`, args...)
	return err
}

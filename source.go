package quill

import (
	"fmt"
	"io/fs"
	"os"
	"runtime"
	"sort"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
)

// Source discovers and parses content items under a directory tree.
type Source struct {
	Dir           string
	IncludeDrafts bool
}

// Load parses every markdown file under the source directory. Parsing is
// embarrassingly parallel: an item never observes another item's state, and
// no ordering is imposed here beyond a stable scan order — the chronological
// sort happens in NewSite. The first failure aborts the load, so a broken
// item is reported with its file identifier instead of silently dropping
// out of the published site.
func (s *Source) Load() ([]ContentItem, error) {
	fsys := os.DirFS(s.Dir)
	matches, err := doublestar.Glob(fsys, "**/*.md")
	if err != nil {
		return nil, fmt.Errorf("scan content dir %s: %w", s.Dir, err)
	}
	sort.Strings(matches)

	items := make([]ContentItem, len(matches))
	errs := make([]error, len(matches))
	sem := make(chan struct{}, runtime.NumCPU())
	var wg sync.WaitGroup
	for i, name := range matches {
		wg.Add(1)
		go func(i int, name string) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			raw, err := fs.ReadFile(fsys, name)
			if err != nil {
				errs[i] = fmt.Errorf("read %s: %w", name, err)
				return
			}
			items[i], errs[i] = ParseContent(name, raw)
		}(i, name)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	out := make([]ContentItem, 0, len(items))
	for _, it := range items {
		if it.Draft && !s.IncludeDrafts {
			continue
		}
		out = append(out, it)
	}
	return out, nil
}

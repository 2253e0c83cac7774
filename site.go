package quill

import (
	"sort"
	"strings"
)

// Site is the immutable build-time model: configuration plus all parsed
// content, ordered and indexed for rendering.
type Site struct {
	Config SiteConfig
	Posts  []ContentItem            // newest first
	ByTag  map[string][]ContentItem // taxonomy index, same ordering
}

// NewSite orders items by descending date (ties broken by slug so builds
// are deterministic), builds the taxonomy index, and rejects output-path
// collisions: two items rendering to the same location would silently
// overwrite each other, so the build fails instead.
func NewSite(cfg SiteConfig, items []ContentItem) (*Site, error) {
	posts := make([]ContentItem, len(items))
	copy(posts, items)
	sort.SliceStable(posts, func(i, j int) bool {
		if !posts[i].Date.Equal(posts[j].Date) {
			return posts[i].Date.After(posts[j].Date)
		}
		return posts[i].Slug < posts[j].Slug
	})

	seen := make(map[string]string, len(posts))
	byTag := make(map[string][]ContentItem)
	for _, p := range posts {
		link := p.Link()
		if other, ok := seen[link]; ok {
			return nil, &ValidationError{File: p.File, Field: "permalink", Msg: "output path " + link + " already used by " + other}
		}
		seen[link] = p.File
		for _, t := range p.Tags {
			byTag[t] = append(byTag[t], p)
		}
	}

	return &Site{Config: cfg, Posts: posts, ByTag: byTag}, nil
}

// Tags returns the sorted list of all tags in use.
func (s *Site) Tags() []string {
	tags := make([]string, 0, len(s.ByTag))
	for t := range s.ByTag {
		tags = append(tags, t)
	}
	sort.Strings(tags)
	return tags
}

// Post returns the post with the given slug, or ErrNotFound.
func (s *Site) Post(slug string) (ContentItem, error) {
	for _, p := range s.Posts {
		if p.Slug == slug {
			return p, nil
		}
	}
	return ContentItem{}, ErrNotFound
}

// Related returns posts that share at least one tag with current.
func (s *Site) Related(current ContentItem) []ContentItem {
	tagSet := make(map[string]struct{}, len(current.Tags))
	for _, t := range current.Tags {
		tagSet[strings.ToLower(t)] = struct{}{}
	}
	var related []ContentItem
	for _, p := range s.Posts {
		if p.Slug == current.Slug {
			continue
		}
		for _, t := range p.Tags {
			if _, ok := tagSet[t]; ok {
				related = append(related, p)
				break
			}
		}
	}
	return related
}

// Page is one listing page produced by pagination.
type Page struct {
	Number int
	Total  int
	Items  []ContentItem
}

// Paginate splits items into pages of the configured size. The page count
// is the ceiling of len(items)/size; an empty listing still yields one
// page so every section has a landing page.
func (s *Site) Paginate(items []ContentItem) []Page {
	size := s.Config.PageSize()
	total := (len(items) + size - 1) / size
	if total == 0 {
		total = 1
	}
	pages := make([]Page, 0, total)
	for n := 0; n < total; n++ {
		lo := n * size
		hi := lo + size
		if hi > len(items) {
			hi = len(items)
		}
		pages = append(pages, Page{Number: n + 1, Total: total, Items: items[lo:hi]})
	}
	return pages
}

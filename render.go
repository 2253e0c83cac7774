package quill

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/a-h/templ"

	"github.com/quillpress/quill/markdown"
	"github.com/quillpress/quill/views"
)

// RenderToFile writes a templ component to path, creating parent directories.
func RenderToFile(ctx context.Context, path string, cmp templ.Component) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := cmp.Render(ctx, f); err != nil {
		f.Close()
		return fmt.Errorf("render %s: %w", path, err)
	}
	return f.Close()
}

// renderer walks the site model and writes every output file for one build.
type renderer struct {
	app     *App
	site    *Site
	cache   *RenderCache
	written int
}

func (r *renderer) renderAll(ctx context.Context) error {
	bodies, err := r.renderBodies()
	if err != nil {
		return err
	}

	viewSite := r.viewSite()

	// Individual posts.
	for _, p := range r.site.Posts {
		post := r.viewPost(p, bodies[p.File])
		related := r.viewPosts(r.site.Related(p))
		out := r.outPath(p.Link())
		if err := r.write(ctx, out, r.app.Views.Post(viewSite, post, related)); err != nil {
			return err
		}
	}

	// Front page and its /page/N/ siblings.
	pages := r.site.Paginate(r.site.Posts)
	for _, pg := range pages {
		listing := r.listing("", "/", pg)
		if err := r.write(ctx, r.outPath(listingLink("/", pg.Number)), r.app.Views.Home(viewSite, listing)); err != nil {
			return err
		}
	}

	// Taxonomy: the tag index plus one paginated listing per tag.
	tags := r.site.Tags()
	counts := make([]views.TagCount, 0, len(tags))
	for _, tag := range tags {
		counts = append(counts, views.TagCount{
			Name:  tag,
			Count: len(r.site.ByTag[tag]),
			Link:  tagLink(tag),
		})
	}
	if err := r.write(ctx, r.outPath("/tags/"), r.app.Views.TagIndex(viewSite, counts)); err != nil {
		return err
	}
	for _, tag := range tags {
		base := tagLink(tag)
		for _, pg := range r.site.Paginate(r.site.ByTag[tag]) {
			listing := r.listing(TitleCase(tag), base, pg)
			if err := r.write(ctx, r.outPath(listingLink(base, pg.Number)), r.app.Views.Home(viewSite, listing)); err != nil {
				return err
			}
		}
	}

	// 404 page, robots.txt, feeds.
	if err := r.write(ctx, filepath.Join(r.app.outputDir, "404.html"), r.app.Views.NotFound(viewSite)); err != nil {
		return err
	}
	if err := r.writeRobots(); err != nil {
		return err
	}
	if err := WriteFeed(filepath.Join(r.app.outputDir, "feed.xml"), r.app.Config, r.site.Posts); err != nil {
		return err
	}
	r.written++
	if err := WriteSitemap(filepath.Join(r.app.outputDir, "sitemap.xml"), r.app.Config, r.site, len(pages)); err != nil {
		return err
	}
	r.written++

	return nil
}

// renderBodies converts every post body to HTML, going through the render
// cache so unchanged bodies skip the markdown pass. Stale cache rows are
// pruned afterwards.
func (r *renderer) renderBodies() (map[string]string, error) {
	bodies := make(map[string]string, len(r.site.Posts))
	live := make(map[string]bool, len(r.site.Posts))
	for _, p := range r.site.Posts {
		key := ContentKey(p.Body)
		live[key] = true
		html, ok, err := r.cache.Get(key)
		if err != nil {
			return nil, fmt.Errorf("render cache get: %w", err)
		}
		if !ok {
			var buf bytes.Buffer
			markdown.Render(&buf, p.Body)
			html = buf.String()
			if err := r.cache.Put(key, html); err != nil {
				return nil, fmt.Errorf("render cache put: %w", err)
			}
		}
		bodies[p.File] = html
	}
	if err := r.cache.Prune(live); err != nil {
		return nil, fmt.Errorf("render cache prune: %w", err)
	}
	return bodies, nil
}

func (r *renderer) write(ctx context.Context, path string, cmp templ.Component) error {
	if err := RenderToFile(ctx, path, cmp); err != nil {
		return err
	}
	r.written++
	return nil
}

func (r *renderer) writeRobots() error {
	body := fmt.Sprintf("User-agent: *\nAllow: /\n\nSitemap: %s/sitemap.xml\n", r.app.Config.BaseURL)
	if err := os.WriteFile(filepath.Join(r.app.outputDir, "robots.txt"), []byte(body), 0o644); err != nil {
		return err
	}
	r.written++
	return nil
}

// outPath maps a site-relative link to the index.html file backing it.
func (r *renderer) outPath(link string) string {
	rel := filepath.FromSlash(strings.Trim(link, "/"))
	return filepath.Join(r.app.outputDir, rel, "index.html")
}

func (r *renderer) viewSite() views.Site {
	cfg := r.app.Config
	menu := make([]views.MenuItem, 0, len(cfg.Menu.Main))
	for _, m := range cfg.Menu.Main {
		menu = append(menu, views.MenuItem{Name: m.Name, URL: m.URL})
	}
	social := make([]views.SocialItem, 0, len(cfg.Social))
	for _, s := range cfg.Social {
		social = append(social, views.SocialItem{Name: s.Name, Icon: s.Icon, URL: s.URL})
	}
	return views.Site{
		Title:        cfg.Title,
		BaseURL:      cfg.BaseURL,
		Description:  cfg.Description,
		Author:       cfg.Author,
		Copyright:    cfg.Copyright,
		LanguageCode: cfg.LanguageCode,
		Menu:         menu,
		Social:       social,
	}
}

func (r *renderer) viewPost(p ContentItem, content string) views.Post {
	return views.Post{
		Title:       p.Title,
		Date:        p.Date.Format("2006-01-02"),
		Description: p.Description,
		Link:        p.Link(),
		Tags:        p.Tags,
		Content:     content,
	}
}

func (r *renderer) viewPosts(items []ContentItem) []views.Post {
	out := make([]views.Post, 0, len(items))
	for _, p := range items {
		out = append(out, r.viewPost(p, ""))
	}
	return out
}

// listing assembles the view model for one page of a paginated section.
func (r *renderer) listing(heading, base string, pg Page) views.Listing {
	l := views.Listing{
		Heading: heading,
		Posts:   make([]views.Post, 0, len(pg.Items)),
		Number:  pg.Number,
		Total:   pg.Total,
	}
	for _, p := range pg.Items {
		l.Posts = append(l.Posts, r.viewPost(p, ""))
	}
	if pg.Number > 1 {
		l.PrevLink = listingLink(base, pg.Number-1)
	}
	if pg.Number < pg.Total {
		l.NextLink = listingLink(base, pg.Number+1)
	}
	return l
}

// listingLink returns the link for page n of the listing rooted at base.
// Page one is the root itself; later pages live under page/N/.
func listingLink(base string, n int) string {
	if n <= 1 {
		return base
	}
	return base + "page/" + strconv.Itoa(n) + "/"
}

func tagLink(tag string) string {
	return "/tags/" + url.PathEscape(tag) + "/"
}

package views

import (
	"bytes"
	"strconv"

	"github.com/a-h/templ"
)

func writePostCard(buf *bytes.Buffer, p Post) {
	buf.WriteString(`<article class="post-card">`)
	buf.WriteString(`<h2><a href="` + esc(p.Link) + `">` + esc(p.Title) + `</a></h2>`)
	buf.WriteString(`<time datetime="` + esc(p.Date) + `">` + esc(p.Date) + `</time>`)
	if p.Description != "" {
		buf.WriteString(`<p>` + esc(p.Description) + `</p>`)
	}
	writeTagList(buf, p.Tags)
	buf.WriteString(`</article>`)
}

func writeTagList(buf *bytes.Buffer, tags []string) {
	if len(tags) == 0 {
		return
	}
	buf.WriteString(`<ul class="tags">`)
	for _, t := range tags {
		buf.WriteString(`<li><a href="/tags/` + PathEscape(t) + `/">` + esc(t) + `</a></li>`)
	}
	buf.WriteString(`</ul>`)
}

func writePagination(buf *bytes.Buffer, l Listing) {
	if l.Total <= 1 {
		return
	}
	buf.WriteString(`<nav class="pagination">`)
	if l.PrevLink != "" {
		buf.WriteString(`<a class="prev" href="` + esc(l.PrevLink) + `">&larr; Newer</a>`)
	}
	buf.WriteString(`<span>Page ` + strconv.Itoa(l.Number) + ` of ` + strconv.Itoa(l.Total) + `</span>`)
	if l.NextLink != "" {
		buf.WriteString(`<a class="next" href="` + esc(l.NextLink) + `">Older &rarr;</a>`)
	}
	buf.WriteString(`</nav>`)
}

// Home renders a listing page: the front page and its /page/N/ siblings,
// and (with a heading) per-tag listings.
func Home(site Site, listing Listing) templ.Component {
	meta := PageMeta{
		Title:       site.Title,
		Description: site.Description,
		URL:         buildURL(site.BaseURL),
		OGType:      "website",
	}
	if listing.Heading != "" {
		meta.Title = listing.Heading + " · " + site.Title
	}
	return page(site, meta, WebsiteJsonLD(site), func(buf *bytes.Buffer) {
		if listing.Heading != "" {
			buf.WriteString(`<h1>` + esc(listing.Heading) + `</h1>`)
		}
		buf.WriteString(`<section class="post-list">`)
		for _, p := range listing.Posts {
			writePostCard(buf, p)
		}
		buf.WriteString(`</section>`)
		writePagination(buf, listing)
	})
}

// PostPage renders a single post with its related-posts footer.
func PostPage(site Site, post Post, related []Post) templ.Component {
	meta := PageMeta{
		Title:       post.Title + " · " + site.Title,
		Description: post.Description,
		URL:         absURL(site.BaseURL, post.Link),
		OGType:      "article",
	}
	return page(site, meta, BlogPostingJsonLD(site, post), func(buf *bytes.Buffer) {
		buf.WriteString(`<article class="post">`)
		buf.WriteString(`<h1>` + esc(post.Title) + `</h1>`)
		buf.WriteString(`<time datetime="` + esc(post.Date) + `">` + esc(post.Date) + `</time>`)
		writeTagList(buf, post.Tags)
		buf.WriteString(`<div class="post-body">`)
		buf.WriteString(post.Content) // pre-rendered, already sanitized by the markdown renderer
		buf.WriteString(`</div>`)
		buf.WriteString(`</article>`)
		if len(related) > 0 {
			buf.WriteString(`<aside class="related"><h2>Related</h2><ul>`)
			for _, r := range related {
				buf.WriteString(`<li><a href="` + esc(r.Link) + `">` + esc(r.Title) + `</a></li>`)
			}
			buf.WriteString(`</ul></aside>`)
		}
	})
}

// TagIndex renders the taxonomy landing page listing every tag in use.
func TagIndex(site Site, tags []TagCount) templ.Component {
	meta := PageMeta{
		Title:       "Tags · " + site.Title,
		Description: site.Description,
		URL:         absURL(site.BaseURL, "/tags/"),
		OGType:      "website",
	}
	return page(site, meta, "", func(buf *bytes.Buffer) {
		buf.WriteString(`<h1>Tags</h1>`)
		buf.WriteString(`<ul class="tag-index">`)
		for _, t := range tags {
			buf.WriteString(`<li><a href="` + esc(t.Link) + `">` + esc(t.Name) + `</a> <span class="count">` + strconv.Itoa(t.Count) + `</span></li>`)
		}
		buf.WriteString(`</ul>`)
	})
}

// NotFound renders the 404 page.
func NotFound(site Site) templ.Component {
	meta := PageMeta{
		Title:  "Not Found · " + site.Title,
		OGType: "website",
	}
	return page(site, meta, "", func(buf *bytes.Buffer) {
		buf.WriteString(`<section class="not-found">`)
		buf.WriteString(`<h1>404</h1>`)
		buf.WriteString(`<p>That page does not exist. <a href="/">Back to the front page.</a></p>`)
		buf.WriteString(`</section>`)
	})
}

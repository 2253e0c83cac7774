package views

import (
	"bytes"
	"context"
	"html"
	"io"

	"github.com/a-h/templ"
)

// component wraps a buffer-writing function as a templ.Component.
func component(fn func(*bytes.Buffer)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var buf bytes.Buffer
		fn(&buf)
		_, err := w.Write(buf.Bytes())
		return err
	})
}

func esc(s string) string {
	return html.EscapeString(s)
}

// writeHead emits the document head: charset, title, meta description,
// canonical URL, OpenGraph tags, feed discovery, and the theme stylesheet.
func writeHead(buf *bytes.Buffer, site Site, meta PageMeta) {
	buf.WriteString(`<head>`)
	buf.WriteString(`<meta charset="utf-8"/>`)
	buf.WriteString(`<meta name="viewport" content="width=device-width, initial-scale=1"/>`)
	buf.WriteString(`<title>` + esc(meta.Title) + `</title>`)
	if meta.Description != "" {
		buf.WriteString(`<meta name="description" content="` + esc(meta.Description) + `"/>`)
	}
	if meta.URL != "" {
		buf.WriteString(`<link rel="canonical" href="` + esc(meta.URL) + `"/>`)
		buf.WriteString(`<meta property="og:url" content="` + esc(meta.URL) + `"/>`)
	}
	buf.WriteString(`<meta property="og:title" content="` + esc(meta.Title) + `"/>`)
	if meta.Description != "" {
		buf.WriteString(`<meta property="og:description" content="` + esc(meta.Description) + `"/>`)
	}
	buf.WriteString(`<meta property="og:type" content="` + esc(meta.OGType) + `"/>`)
	buf.WriteString(`<meta property="og:site_name" content="` + esc(site.Title) + `"/>`)
	buf.WriteString(`<link rel="alternate" type="application/rss+xml" title="` + esc(site.Title) + `" href="/feed.xml"/>`)
	buf.WriteString(`<link rel="stylesheet" href="/assets/style.css"/>`)
	buf.WriteString(`</head>`)
}

func writeHeader(buf *bytes.Buffer, site Site) {
	buf.WriteString(`<header class="site-header">`)
	buf.WriteString(`<a class="site-title" href="/">` + esc(site.Title) + `</a>`)
	if len(site.Menu) > 0 {
		buf.WriteString(`<nav class="site-nav">`)
		for _, m := range site.Menu {
			buf.WriteString(`<a href="` + esc(m.URL) + `">` + esc(m.Name) + `</a>`)
		}
		buf.WriteString(`</nav>`)
	}
	buf.WriteString(`</header>`)
}

func writeFooter(buf *bytes.Buffer, site Site) {
	buf.WriteString(`<footer class="site-footer">`)
	if len(site.Social) > 0 {
		buf.WriteString(`<nav class="social">`)
		for _, s := range site.Social {
			buf.WriteString(`<a href="` + esc(s.URL) + `" rel="me" class="social-` + esc(s.Icon) + `">` + esc(s.Name) + `</a>`)
		}
		buf.WriteString(`</nav>`)
	}
	if site.Copyright != "" {
		buf.WriteString(`<p class="copyright">` + esc(site.Copyright) + `</p>`)
	}
	buf.WriteString(`</footer>`)
}

// page renders the full document shell around body.
func page(site Site, meta PageMeta, jsonLD string, body func(*bytes.Buffer)) templ.Component {
	return component(func(buf *bytes.Buffer) {
		buf.WriteString(`<!DOCTYPE html>`)
		buf.WriteString(`<html lang="` + esc(site.LanguageCode) + `">`)
		writeHead(buf, site, meta)
		buf.WriteString(`<body>`)
		writeHeader(buf, site)
		buf.WriteString(`<main>`)
		body(buf)
		buf.WriteString(`</main>`)
		writeFooter(buf, site)
		if jsonLD != "" {
			buf.WriteString(`<script type="application/ld+json">` + jsonLD + `</script>`)
		}
		buf.WriteString(`</body></html>`)
	})
}

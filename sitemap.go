package quill

import (
	"encoding/xml"
	"os"
	"strconv"
)

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod,omitempty"`
}

// WriteSitemap writes a sitemap covering the front page and its paginated
// siblings, every post, the tag index, and every tag listing.
func WriteSitemap(path string, cfg SiteConfig, site *Site, listingPages int) error {
	base := cfg.BaseURL
	urls := []sitemapURL{
		{Loc: BuildURL(base)},
	}
	for n := 2; n <= listingPages; n++ {
		urls = append(urls, sitemapURL{Loc: AbsURL(base, "/page/"+strconv.Itoa(n)+"/")})
	}
	for _, p := range site.Posts {
		urls = append(urls, sitemapURL{
			Loc:     AbsURL(base, p.Link()),
			LastMod: p.Date.Format("2006-01-02"),
		})
	}
	tags := site.Tags()
	if len(tags) > 0 {
		urls = append(urls, sitemapURL{Loc: AbsURL(base, "/tags/")})
	}
	for _, tag := range tags {
		urls = append(urls, sitemapURL{Loc: AbsURL(base, tagLink(tag))})
	}
	sitemap := sitemapURLSet{
		XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  urls,
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := f.Write([]byte(xml.Header)); err != nil {
		f.Close()
		return err
	}
	if err := xml.NewEncoder(f).Encode(sitemap); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

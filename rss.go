package quill

import (
	"encoding/xml"
	"os"
	"time"
)

type rssXML struct {
	XMLName xml.Name   `xml:"rss"`
	Version string     `xml:"version,attr"`
	Channel rssChannel `xml:"channel"`
}

type rssChannel struct {
	Title       string    `xml:"title"`
	Link        string    `xml:"link"`
	Description string    `xml:"description"`
	Language    string    `xml:"language,omitempty"`
	Copyright   string    `xml:"copyright,omitempty"`
	Items       []rssItem `xml:"item"`
}

type rssItem struct {
	Title       string `xml:"title"`
	Link        string `xml:"link"`
	Description string `xml:"description"`
	PubDate     string `xml:"pubDate"`
	GUID        string `xml:"guid"`
}

// WriteFeed writes an RSS 2.0 feed of posts to path. Posts are expected in
// site order, newest first.
func WriteFeed(path string, cfg SiteConfig, posts []ContentItem) error {
	items := make([]rssItem, 0, len(posts))
	for _, p := range posts {
		postURL := AbsURL(cfg.BaseURL, p.Link())
		items = append(items, rssItem{
			Title:       p.Title,
			Link:        postURL,
			Description: p.Description,
			PubDate:     p.Date.Format(time.RFC1123Z),
			GUID:        postURL,
		})
	}
	feed := rssXML{
		Version: "2.0",
		Channel: rssChannel{
			Title:       cfg.Title,
			Link:        BuildURL(cfg.BaseURL),
			Description: cfg.Description,
			Language:    cfg.LanguageCode,
			Copyright:   cfg.Copyright,
			Items:       items,
		},
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := f.Write([]byte(xml.Header)); err != nil {
		f.Close()
		return err
	}
	if err := xml.NewEncoder(f).Encode(feed); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

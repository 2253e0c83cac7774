package views

// Site holds the site-wide values every template receives, populated from
// the configuration document so nothing is hardcoded.
type Site struct {
	Title        string
	BaseURL      string
	Description  string
	Author       string
	Copyright    string
	LanguageCode string
	Menu         []MenuItem
	Social       []SocialItem
}

// MenuItem is one navigation link, already ordered by weight.
type MenuItem struct {
	Name string
	URL  string
}

// SocialItem is one social profile link with its icon identifier.
type SocialItem struct {
	Name string
	Icon string
	URL  string
}

// PageMeta carries per-page OpenGraph and SEO metadata into the <head>.
type PageMeta struct {
	Title       string
	Description string
	URL         string // canonical + og:url
	OGType      string // "website" or "article"
}

// Post is the render-ready form of a content item.
type Post struct {
	Title       string
	Date        string // display form, YYYY-MM-DD
	Description string
	Link        string
	Tags        []string
	Content     string // pre-rendered HTML body
}

// Listing is one page of a paginated post list.
type Listing struct {
	Heading  string
	Posts    []Post
	Number   int
	Total    int
	PrevLink string
	NextLink string
}

// TagCount is one entry on the taxonomy index page.
type TagCount struct {
	Name  string
	Count int
	Link  string
}

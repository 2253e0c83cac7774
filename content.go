package quill

import (
	"bytes"
	"errors"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/adrg/frontmatter"
	"gopkg.in/yaml.v3"
)

const fmDelimiter = "---"

// dateFormats lists the accepted date layouts, most specific first.
var dateFormats = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// FrontMatter mirrors the recognized header keys of a content file.
// Unrecognized keys are ignored so older engines can read newer content.
type FrontMatter struct {
	Title       string   `yaml:"title"`
	Date        string   `yaml:"date"`
	Description string   `yaml:"description,omitempty"`
	Permalink   string   `yaml:"permalink,omitempty"`
	Tags        []string `yaml:"tags,omitempty"`
	Draft       bool     `yaml:"draft,omitempty"`
}

// Encode re-serializes the recognized keys between front-matter delimiters.
// Parsing the result yields an equivalent mapping.
func (m FrontMatter) Encode() ([]byte, error) {
	out, err := yaml.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("encode front matter: %w", err)
	}
	var buf bytes.Buffer
	buf.WriteString(fmDelimiter + "\n")
	buf.Write(out)
	buf.WriteString(fmDelimiter + "\n")
	return buf.Bytes(), nil
}

// ContentItem is one parsed markdown file: the structured header plus the
// body, which stays opaque until render time. Items are immutable once
// parsed and never depend on one another.
type ContentItem struct {
	Title       string
	Date        time.Time
	Description string
	Permalink   string
	Tags        []string
	Draft       bool
	Slug        string
	Body        string
	File        string // source path relative to the content directory
}

// Link returns the site-relative output path for the item. An explicit
// permalink overrides the default /posts/<slug>/ location.
func (ci ContentItem) Link() string {
	if ci.Permalink != "" {
		return ci.Permalink
	}
	return "/posts/" + ci.Slug + "/"
}

// FrontMatter reconstructs the structured header of the item. Together
// with Encode this round-trips the recognized keys.
func (ci ContentItem) FrontMatter() FrontMatter {
	date := ci.Date.Format("2006-01-02")
	if !ci.Date.Equal(ci.Date.Truncate(24 * time.Hour)) {
		date = ci.Date.Format(time.RFC3339)
	}
	return FrontMatter{
		Title:       ci.Title,
		Date:        date,
		Description: ci.Description,
		Permalink:   ci.Permalink,
		Tags:        ci.Tags,
		Draft:       ci.Draft,
	}
}

// ParseContent splits the front-matter header from the body of a content
// file and validates the recognized fields. The body is preserved
// byte-for-byte. A malformed header fails with *ParseError; a recognized
// field with an invalid value fails with *ValidationError. Both name the
// file so a broken item is reported instead of silently dropped.
func ParseContent(file string, raw []byte) (ContentItem, error) {
	if err := checkDelimiters(raw); err != nil {
		return ContentItem{}, &ParseError{File: file, Err: err}
	}

	var fm FrontMatter
	body, err := frontmatter.Parse(bytes.NewReader(raw), &fm)
	if err != nil {
		return ContentItem{}, &ParseError{File: file, Err: err}
	}

	item := ContentItem{
		Title:       strings.TrimSpace(fm.Title),
		Description: strings.TrimSpace(fm.Description),
		Draft:       fm.Draft,
		Body:        string(body),
		File:        file,
	}

	if item.Title == "" {
		return ContentItem{}, &ValidationError{File: file, Field: "title", Msg: "must not be empty"}
	}

	if strings.TrimSpace(fm.Date) == "" {
		return ContentItem{}, &ValidationError{File: file, Field: "date", Msg: "required key is missing"}
	}
	date, err := parseDate(fm.Date)
	if err != nil {
		return ContentItem{}, &ValidationError{File: file, Field: "date", Msg: fmt.Sprintf("%q is not a calendar date", fm.Date)}
	}
	item.Date = date

	if fm.Tags != nil {
		item.Tags = NormalizeTags(fm.Tags)
		if len(item.Tags) == 0 {
			return ContentItem{}, &ValidationError{File: file, Field: "tags", Msg: "must not be empty when present"}
		}
	}

	if p := strings.TrimSpace(fm.Permalink); p != "" {
		item.Permalink = normalizePermalink(p)
	}

	item.Slug = slugFromFile(file)
	if item.Slug == "" {
		item.Slug = Slugify(item.Title)
	}
	if item.Slug == "" {
		return ContentItem{}, &ValidationError{File: file, Field: "title", Msg: "yields an empty slug"}
	}

	return item, nil
}

// checkDelimiters rejects an opened-but-unterminated header block up front,
// so the error names the actual problem instead of a decoder artifact.
func checkDelimiters(raw []byte) error {
	trimmed := bytes.TrimLeft(raw, "\n\r")
	if !bytes.HasPrefix(trimmed, []byte(fmDelimiter)) {
		return nil // no header block at all; validation will catch missing fields
	}
	rest := trimmed[len(fmDelimiter):]
	nl := bytes.IndexByte(rest, '\n')
	if nl < 0 {
		return errors.New("unterminated front matter delimiter")
	}
	rest = rest[nl+1:]
	for len(rest) > 0 {
		line := rest
		if i := bytes.IndexByte(rest, '\n'); i >= 0 {
			line = rest[:i]
			rest = rest[i+1:]
		} else {
			rest = nil
		}
		if string(bytes.TrimRight(line, " \t\r")) == fmDelimiter {
			return nil
		}
	}
	return errors.New("unterminated front matter delimiter")
}

func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateFormats {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}

// NormalizeTags lowercases, trims, and deduplicates tags, dropping empty
// entries while preserving first-occurrence order.
func NormalizeTags(tags []string) []string {
	seen := make(map[string]struct{}, len(tags))
	var out []string
	for _, t := range tags {
		t = strings.ToLower(strings.TrimSpace(t))
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}

func normalizePermalink(p string) string {
	p = path.Clean("/" + strings.Trim(p, "/"))
	if p == "/" {
		return "/"
	}
	return p + "/"
}

func slugFromFile(file string) string {
	base := path.Base(file)
	base = strings.TrimSuffix(base, path.Ext(base))
	return Slugify(base)
}

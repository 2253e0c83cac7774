package quill

import (
	"fmt"
	"net/url"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	defaultPaginate     = 10
	defaultTheme        = "paper"
	defaultLanguageCode = "en"
)

// MenuEntry is one navigation link. Weight determines display order,
// ascending; weights must be unique within a menu.
type MenuEntry struct {
	Name   string `yaml:"name"`
	URL    string `yaml:"url"`
	Weight int    `yaml:"weight"`
}

// SocialLink is one social profile rendered in the site footer.
type SocialLink struct {
	Name string `yaml:"name"`
	Icon string `yaml:"icon"`
	URL  string `yaml:"url"`
}

// Menu groups configured menus by name. The built-in views render "main";
// additional menus pass through untouched for custom ViewFuncs.
type Menu struct {
	Main []MenuEntry `yaml:"main"`
}

// SiteConfig holds all site-wide configuration for a quill site. It is
// loaded once per build and read-only afterwards.
type SiteConfig struct {
	BaseURL      string       `yaml:"baseURL"`
	LanguageCode string       `yaml:"languageCode"`
	Title        string       `yaml:"title"`
	Theme        string       `yaml:"theme"`
	Copyright    string       `yaml:"copyright"`
	Description  string       `yaml:"description"`
	Author       string       `yaml:"author"`
	Paginate     *int         `yaml:"paginate"` // nil means default; zero and negative are rejected
	Menu         Menu         `yaml:"menu"`
	Social       []SocialLink `yaml:"social"`
}

// PageSize returns the configured number of items per listing page.
func (c *SiteConfig) PageSize() int {
	if c.Paginate == nil {
		return defaultPaginate
	}
	return *c.Paginate
}

// LoadConfig reads and parses the site configuration document at path.
func LoadConfig(path string) (SiteConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return SiteConfig{}, fmt.Errorf("read config %s: %w", path, err)
	}
	return ParseConfig(data)
}

// ParseConfig decodes a SiteConfig from YAML and validates it. Decoding is
// a single pure transform: no defaults are applied until validation passes.
func ParseConfig(data []byte) (SiteConfig, error) {
	var cfg SiteConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return SiteConfig{}, &ConfigError{Field: "document", Msg: err.Error()}
	}
	if err := cfg.validate(); err != nil {
		return SiteConfig{}, err
	}
	cfg.setDefaults()
	// Menu order is fixed here so every consumer sees entries by weight.
	sort.SliceStable(cfg.Menu.Main, func(i, j int) bool {
		return cfg.Menu.Main[i].Weight < cfg.Menu.Main[j].Weight
	})
	return cfg, nil
}

func (c *SiteConfig) validate() error {
	if strings.TrimSpace(c.BaseURL) == "" {
		return &ConfigError{Field: "baseURL", Msg: "required key is missing"}
	}
	if u, err := url.Parse(c.BaseURL); err != nil || u.Scheme == "" || u.Host == "" {
		return &ConfigError{Field: "baseURL", Msg: fmt.Sprintf("%q is not an absolute URL", c.BaseURL)}
	}
	if strings.TrimSpace(c.Title) == "" {
		return &ConfigError{Field: "title", Msg: "required key is missing"}
	}
	if c.Paginate != nil && *c.Paginate <= 0 {
		return &ConfigError{Field: "paginate", Msg: fmt.Sprintf("must be a positive integer, got %d", *c.Paginate)}
	}
	weights := make(map[int]string, len(c.Menu.Main))
	for _, m := range c.Menu.Main {
		if strings.TrimSpace(m.URL) == "" {
			return &ConfigError{Field: "menu.main", Msg: fmt.Sprintf("entry %q has an empty url", m.Name)}
		}
		if other, ok := weights[m.Weight]; ok {
			return &ConfigError{Field: "menu.main", Msg: fmt.Sprintf("entries %q and %q share weight %d, ordering is ambiguous", other, m.Name, m.Weight)}
		}
		weights[m.Weight] = m.Name
	}
	for _, s := range c.Social {
		if strings.TrimSpace(s.URL) == "" {
			return &ConfigError{Field: "social", Msg: fmt.Sprintf("entry %q has an empty url", s.Name)}
		}
	}
	return nil
}

func (c *SiteConfig) setDefaults() {
	c.BaseURL = strings.TrimSuffix(c.BaseURL, "/")
	if c.LanguageCode == "" {
		c.LanguageCode = defaultLanguageCode
	}
	if c.Theme == "" {
		c.Theme = defaultTheme
	}
	if c.Paginate == nil {
		n := defaultPaginate
		c.Paginate = &n
	}
}

package quill

import (
	"errors"
	"testing"
)

const validConfig = `
baseURL: https://example.com/
title: My Site
theme: ink
paginate: 5
copyright: "© 2026 Me"
description: A site about things
author: Jo Doe

menu:
  main:
    - name: About
      url: /about/
      weight: 2
    - name: Home
      url: /
      weight: 1

social:
  - name: GitHub
    icon: github
    url: https://github.com/jodoe
`

func TestParseConfig(t *testing.T) {
	cfg, err := ParseConfig([]byte(validConfig))
	if err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}
	if cfg.BaseURL != "https://example.com" {
		t.Errorf("BaseURL = %q, want trailing slash trimmed", cfg.BaseURL)
	}
	if cfg.Title != "My Site" {
		t.Errorf("Title = %q", cfg.Title)
	}
	if cfg.Theme != "ink" {
		t.Errorf("Theme = %q", cfg.Theme)
	}
	if got := cfg.PageSize(); got != 5 {
		t.Errorf("PageSize() = %d, want 5", got)
	}
	if len(cfg.Menu.Main) != 2 {
		t.Fatalf("Menu.Main has %d entries, want 2", len(cfg.Menu.Main))
	}
	if cfg.Menu.Main[0].Name != "Home" || cfg.Menu.Main[1].Name != "About" {
		t.Errorf("menu not sorted by weight: %+v", cfg.Menu.Main)
	}
	if len(cfg.Social) != 1 || cfg.Social[0].Icon != "github" {
		t.Errorf("Social = %+v", cfg.Social)
	}
}

func TestParseConfigDefaults(t *testing.T) {
	cfg, err := ParseConfig([]byte("baseURL: https://example.com/\ntitle: T\n"))
	if err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}
	if cfg.LanguageCode != "en" {
		t.Errorf("LanguageCode = %q, want en", cfg.LanguageCode)
	}
	if cfg.Theme != "paper" {
		t.Errorf("Theme = %q, want paper", cfg.Theme)
	}
	if got := cfg.PageSize(); got != 10 {
		t.Errorf("PageSize() = %d, want 10", got)
	}
}

func TestParseConfigErrors(t *testing.T) {
	tests := []struct {
		name  string
		yaml  string
		field string
	}{
		{"missing baseURL", "title: T\n", "baseURL"},
		{"relative baseURL", "baseURL: /blog/\ntitle: T\n", "baseURL"},
		{"missing title", "baseURL: https://example.com/\n", "title"},
		{"zero paginate", "baseURL: https://example.com/\ntitle: T\npaginate: 0\n", "paginate"},
		{"negative paginate", "baseURL: https://example.com/\ntitle: T\npaginate: -3\n", "paginate"},
		{
			"duplicate menu weight",
			"baseURL: https://example.com/\ntitle: T\nmenu:\n  main:\n    - {name: A, url: /a/, weight: 1}\n    - {name: B, url: /b/, weight: 1}\n",
			"menu.main",
		},
		{
			"menu entry without url",
			"baseURL: https://example.com/\ntitle: T\nmenu:\n  main:\n    - {name: A, weight: 1}\n",
			"menu.main",
		},
		{
			"social entry without url",
			"baseURL: https://example.com/\ntitle: T\nsocial:\n  - {name: GitHub, icon: github}\n",
			"social",
		},
		{"not yaml", "{{{", "document"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseConfig([]byte(tt.yaml))
			var ce *ConfigError
			if !errors.As(err, &ce) {
				t.Fatalf("error = %v, want *ConfigError", err)
			}
			if ce.Field != tt.field {
				t.Errorf("Field = %q, want %q", ce.Field, tt.field)
			}
		})
	}
}

func TestParseConfigExplicitPaginateSurvives(t *testing.T) {
	cfg, err := ParseConfig([]byte("baseURL: https://example.com/\ntitle: T\npaginate: 1\n"))
	if err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}
	if got := cfg.PageSize(); got != 1 {
		t.Errorf("PageSize() = %d, want 1", got)
	}
}

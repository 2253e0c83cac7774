package quill

import "testing"

func TestSlugify(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Hello World", "hello-world"},
		{"  Already-Slugged  ", "already-slugged"},
		{"C'est l'été!", "c-est-l-t"},
		{"Go 1.24 Released", "go-1-24-released"},
		{"---", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := Slugify(tt.in); got != tt.want {
			t.Errorf("Slugify(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestBuildURL(t *testing.T) {
	tests := []struct {
		base string
		segs []string
		want string
	}{
		{"https://example.com", nil, "https://example.com"},
		{"https://example.com", []string{"posts", "hello"}, "https://example.com/posts/hello/"},
		{"https://example.com/sub", []string{"tags"}, "https://example.com/sub/tags/"},
	}
	for _, tt := range tests {
		if got := BuildURL(tt.base, tt.segs...); got != tt.want {
			t.Errorf("BuildURL(%q, %v) = %q, want %q", tt.base, tt.segs, got, tt.want)
		}
	}
}

func TestAbsURL(t *testing.T) {
	if got := AbsURL("https://example.com/", "/posts/hello/"); got != "https://example.com/posts/hello/" {
		t.Errorf("AbsURL = %q", got)
	}
	if got := AbsURL("https://example.com", "/posts/hello/"); got != "https://example.com/posts/hello/" {
		t.Errorf("AbsURL without trailing slash = %q", got)
	}
}

func TestTitleCase(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"release-notes", "Release Notes"},
		{"my_blog", "My Blog"},
		{"go", "Go"},
	}
	for _, tt := range tests {
		if got := TitleCase(tt.in); got != tt.want {
			t.Errorf("TitleCase(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFilterEmpty(t *testing.T) {
	got := FilterEmpty([]string{"a", "", "  ", "b"})
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Errorf("FilterEmpty = %v", got)
	}
}

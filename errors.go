package quill

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a requested post does not exist in the site.
var ErrNotFound = errors.New("quill: not found")

// ParseError reports a content file whose front-matter block could not be
// split from the body, for example an unterminated delimiter.
type ParseError struct {
	File string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: parse front matter: %v", e.File, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ValidationError reports a recognized front-matter field carrying an
// invalid value, such as an unparseable date.
type ValidationError struct {
	File  string
	Field string
	Msg   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: invalid %s: %s", e.File, e.Field, e.Msg)
}

// ConfigError reports a site configuration document that is missing a
// required key or contains an ambiguous value. All three error kinds are
// detected at load time, before anything is rendered; none are retried.
type ConfigError struct {
	Field string
	Msg   string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("site config: %s: %s", e.Field, e.Msg)
}

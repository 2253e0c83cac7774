package quill

import (
	"embed"
	"io/fs"
	"os"
	"path/filepath"
)

// Themes contains the stylesheets shipped with the engine, one directory
// per theme: paper, ink
//
//go:embed themes/*
var Themes embed.FS

// InstallTheme copies the named theme's assets into <outDir>/assets/.
// An unknown theme name is a configuration error.
func InstallTheme(name, outDir string) error {
	themeDir := "themes/" + name
	if _, err := fs.Stat(Themes, themeDir); err != nil {
		return &ConfigError{Field: "theme", Msg: "unknown theme " + name}
	}
	assetsDir := filepath.Join(outDir, "assets")
	if err := os.MkdirAll(assetsDir, 0o755); err != nil {
		return err
	}
	return fs.WalkDir(Themes, themeDir, func(p string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		data, err := fs.ReadFile(Themes, p)
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(themeDir, filepath.FromSlash(p))
		if err != nil {
			return err
		}
		dst := filepath.Join(assetsDir, rel)
		if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
			return err
		}
		return os.WriteFile(dst, data, 0o644)
	})
}

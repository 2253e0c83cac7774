package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"text/template"
	"time"

	"github.com/spf13/cobra"

	"github.com/quillpress/quill"
	"github.com/quillpress/quill/scaffold"
)

// scaffoldData holds the template variables passed to every scaffold template.
type scaffoldData struct {
	SiteName string
	Date     string
	Year     int
}

var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Create a new site or post",
}

var newSiteCmd = &cobra.Command{
	Use:   "site <name>",
	Short: "Scaffold a new site directory",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runNewSite(args[0])
	},
}

var newPostCmd = &cobra.Command{
	Use:   "post <title>",
	Short: "Create a draft post under content/",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runNewPost(args[0])
	},
}

func init() {
	newCmd.AddCommand(newSiteCmd)
	newCmd.AddCommand(newPostCmd)
	rootCmd.AddCommand(newCmd)
}

func runNewSite(name string) error {
	if _, err := os.Stat(name); err == nil {
		return fmt.Errorf("directory %q already exists", name)
	}

	now := time.Now()
	data := scaffoldData{
		SiteName: quill.TitleCase(filepath.Base(name)),
		Date:     now.Format("2006-01-02"),
		Year:     now.Year(),
	}

	fmt.Printf("Creating new site: %s\n\n", name)

	root := "templates"
	err := fs.WalkDir(scaffold.Templates, root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		relPath, err := filepath.Rel(root, filepath.FromSlash(path))
		if err != nil {
			return err
		}

		// Strip the .tmpl suffix; dotenv ships as .env.example.
		outPath := strings.TrimSuffix(filepath.Join(name, relPath), ".tmpl")
		if filepath.Base(outPath) == "dotenv" {
			outPath = filepath.Join(filepath.Dir(outPath), ".env.example")
		}

		if d.IsDir() {
			return os.MkdirAll(outPath, 0o755)
		}

		content, err := scaffold.Templates.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}

		tmpl, err := template.New(filepath.Base(path)).Parse(string(content))
		if err != nil {
			return fmt.Errorf("parse template %s: %w", path, err)
		}

		if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
			return err
		}

		f, err := os.Create(outPath)
		if err != nil {
			return fmt.Errorf("create %s: %w", outPath, err)
		}
		defer f.Close()

		if err := tmpl.Execute(f, data); err != nil {
			return fmt.Errorf("execute template %s: %w", path, err)
		}

		fmt.Printf("  created %s\n", outPath)
		return nil
	})
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println("Done! Next steps:")
	fmt.Println()
	fmt.Printf("  cd %s\n", name)
	fmt.Println("  quill serve")
	fmt.Println()
	fmt.Println("Edit config.yaml to set your baseURL and title.")
	return nil
}

func runNewPost(title string) error {
	slug := quill.Slugify(title)
	if slug == "" {
		return fmt.Errorf("cannot derive a slug from %q", title)
	}

	path := filepath.Join(siteDir, "content", slug+".md")
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists", path)
	}

	fm := quill.FrontMatter{
		Title: title,
		Date:  time.Now().Format("2006-01-02"),
		Draft: true,
	}
	header, err := fm.Encode()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	if err := os.WriteFile(path, append(header, '\n'), 0o644); err != nil {
		return err
	}

	fmt.Printf("Created %s\n", path)
	return nil
}

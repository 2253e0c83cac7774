package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/quillpress/quill"
)

var (
	siteDir    string
	configPath string
)

var rootCmd = &cobra.Command{
	Use:   "quill",
	Short: "quill is a markdown site engine",
	Long: `quill renders a directory of markdown content files and a YAML
configuration document into a static website: paginated listings, posts,
tag pages, an RSS feed, and a sitemap.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// A missing .env is fine; it only exists to override defaults.
		_ = godotenv.Load(filepath.Join(siteDir, ".env"))
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the quill version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("quill %s\n", version)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&siteDir, "dir", "d", ".", "site directory")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default <dir>/config.yaml)")
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func loadSiteConfig() (quill.SiteConfig, error) {
	path := configPath
	if path == "" {
		path = filepath.Join(siteDir, "config.yaml")
	}
	cfg, err := quill.LoadConfig(path)
	if err != nil {
		return quill.SiteConfig{}, err
	}
	if v := os.Getenv("QUILL_BASE_URL"); v != "" {
		cfg.BaseURL = v
	}
	return cfg, nil
}

func newApp(cfg quill.SiteConfig, outputDir string, drafts bool) *quill.App {
	if outputDir == "" {
		outputDir = quill.EnvOr("QUILL_OUTPUT_DIR", filepath.Join(siteDir, "public"))
	}
	return quill.New(cfg,
		quill.WithContentDir(filepath.Join(siteDir, "content")),
		quill.WithStaticDir(filepath.Join(siteDir, "static")),
		quill.WithOutputDir(outputDir),
		quill.WithCachePath(filepath.Join(siteDir, "data", "render.db")),
		quill.WithDrafts(drafts),
	)
}

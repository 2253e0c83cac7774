package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	buildDrafts bool
	buildOutput string
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Render the site into the output directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadSiteConfig()
		if err != nil {
			return err
		}
		app := newApp(cfg, buildOutput, buildDrafts)
		res, err := app.Build(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Printf("Built %d posts (%d files) in %s\n", res.Posts, res.Files, res.Duration)
		return nil
	},
}

func init() {
	buildCmd.Flags().BoolVar(&buildDrafts, "drafts", false, "include draft content")
	buildCmd.Flags().StringVarP(&buildOutput, "output", "o", "", "output directory (default <dir>/public)")
	rootCmd.AddCommand(buildCmd)
}

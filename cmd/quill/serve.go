package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	servePort   int
	serveDrafts bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Build the site and serve a live-reloading preview",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadSiteConfig()
		if err != nil {
			return err
		}
		app := newApp(cfg, "", serveDrafts)
		return app.Serve(cmd.Context(), fmt.Sprintf(":%d", servePort))
	},
}

func init() {
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 3000, "port to listen on")
	serveCmd.Flags().BoolVar(&serveDrafts, "drafts", true, "include draft content in the preview")
	rootCmd.AddCommand(serveCmd)
}

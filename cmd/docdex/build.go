package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mkarren/docdex/pkg/index"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build the index from the docs directory and cache it",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := index.Build(cfg.Docs.Dir)
		if err != nil {
			return err
		}
		manifest, err := index.SaveCache(cfg.Docs.CachePath, root)
		if err != nil {
			return err
		}
		fmt.Printf("Indexed %d documents (%d bytes) from %s\n",
			manifest.Docs, manifest.TotalSize, cfg.Docs.Dir)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(buildCmd)
}

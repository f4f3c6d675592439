package main

import (
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/mkarren/docdex/internal/cli"
	"github.com/mkarren/docdex/pkg/index"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Interactive prompt with tab completion",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}

		if cfg.Docs.Watch {
			watcher := index.NewWatcher(store, cfg.Docs.Dir)
			if err := watcher.Start(cmd.Context()); err != nil {
				log.Warnf("Docs watcher unavailable: %v", err)
			}
		}

		return cli.NewREPL(store, cfg.Docs.Dir, cfg.REPL).Run()
	},
}

func init() {
	rootCmd.AddCommand(replCmd)
}

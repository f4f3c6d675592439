package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/mkarren/docdex/pkg/remote"
)

var flagForce bool

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Check the remote source and refresh the index cache",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg.Remote.URL == "" {
			return fmt.Errorf("no remote url configured (set [remote] url in %s)", cfgPath)
		}

		store, err := openStore()
		if err != nil {
			return err
		}

		ttl := time.Duration(cfg.Remote.SyncIntervalMin) * time.Minute
		if flagForce {
			ttl = 0
		}
		timeout := time.Duration(cfg.Remote.TimeoutSec) * time.Second

		syncer := remote.NewSyncer(cfg.Remote.URL, cfg.Docs.CachePath, ttl, timeout, store)

		ctx, cancel := context.WithTimeout(cmd.Context(), 2*timeout)
		defer cancel()

		replaced, err := syncer.Refresh(ctx)
		if err != nil {
			return err
		}
		if replaced {
			fmt.Printf("Index updated (%d documents)\n", store.Current().DocCount())
		} else {
			fmt.Println("Index is up to date")
		}
		return nil
	},
}

func init() {
	syncCmd.Flags().BoolVarP(&flagForce, "force", "f", false, "check the remote even if the cache is fresh")
	rootCmd.AddCommand(syncCmd)
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mkarren/docdex/pkg/search"
)

var flagSearchLimit int

var searchCmd = &cobra.Command{
	Use:   "search <prefix>",
	Short: "List document paths by prefix",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}

		entries := search.New(store.Current()).Find(args[0], flagSearchLimit)
		if len(entries) == 0 {
			fmt.Printf("No documents match %q\n", args[0])
			return nil
		}
		for _, e := range entries {
			fmt.Println(e.Path)
		}
		return nil
	},
}

func init() {
	searchCmd.Flags().IntVarP(&flagSearchLimit, "limit", "l", 0, "maximum results (0 for all)")
	rootCmd.AddCommand(searchCmd)
}

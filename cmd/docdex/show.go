package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mkarren/docdex/internal/cli"
	"github.com/mkarren/docdex/pkg/resolve"
)

var (
	flagDetail  bool
	flagInstall bool
	flagRaw     bool
)

var showCmd = &cobra.Command{
	Use:   "show <phrase>...",
	Short: "Resolve a phrase and display its document",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}

		input := strings.Join(args, " ")
		res := resolve.Resolve(store.Current(), input, resolve.Options{
			Detail:  flagDetail,
			Install: flagInstall,
		})

		switch {
		case res.Exists:
			return cli.ShowDocument(cfg.Docs.Dir, res.Path, cfg.REPL.Render && !flagRaw)
		case res.Suggestions != nil:
			fmt.Printf("%q is ambiguous, possible continuations:\n", input)
			fmt.Println(cli.FormatSuggestions(res.Suggestions, cfg.REPL.SuggestLimit))
			return nil
		default:
			return fmt.Errorf("no document found for %q", input)
		}
	},
}

func init() {
	showCmd.Flags().BoolVar(&flagDetail, "detail", false, "prefer the detail variant when it exists")
	showCmd.Flags().BoolVar(&flagInstall, "install", false, "prefer the install variant when it exists")
	showCmd.Flags().BoolVar(&flagRaw, "raw", false, "print raw markdown without rendering")
	rootCmd.AddCommand(showCmd)
}
